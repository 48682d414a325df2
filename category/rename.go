package category

import "github.com/johnstarich/spendee-sankey/transaction"

// DefaultIncomeRenames relabels income categories which Spendee also uses for expenses
var DefaultIncomeRenames = map[string]string{
	"Gifts": "Gifted",
}

const fallbackIncomeSuffix = " Income"

// NormalizeIncome returns a copy of txns where every income category also used by an expense is relabeled.
// Labels are looked up in renames, otherwise the income suffix is appended. txns is not modified.
func NormalizeIncome(txns transaction.Transactions, renames map[string]string) transaction.Transactions {
	expenseNames := make(map[string]bool)
	for _, txn := range txns.Expenses() {
		expenseNames[txn.Category] = true
	}

	normalized := make(transaction.Transactions, len(txns))
	copy(normalized, txns)
	for i, txn := range normalized {
		if txn.Type != transaction.Income || !expenseNames[txn.Category] {
			continue
		}
		label, ok := renames[txn.Category]
		if !ok {
			label = txn.Category + fallbackIncomeSuffix
		}
		normalized[i].Category = label
	}
	return normalized
}
