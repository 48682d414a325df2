package flow

import (
	"sort"

	"github.com/johnstarich/spendee-sankey/transaction"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the signed sum of a category's transactions
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// Flow returns the total's absolute amount
func (c CategoryTotal) Flow() decimal.Decimal {
	return c.Amount.Abs()
}

// SumByCategory sums txns for each of the given category names. Totals are ordered by first appearance in txns.
// Names without any transactions are omitted.
func SumByCategory(txns transaction.Transactions, names []string) []CategoryTotal {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	indexes := make(map[string]int)
	var totals []CategoryTotal
	for _, txn := range txns {
		if !wanted[txn.Category] {
			continue
		}
		ix, exists := indexes[txn.Category]
		if !exists {
			ix = len(totals)
			indexes[txn.Category] = ix
			totals = append(totals, CategoryTotal{Category: txn.Category, Amount: decimal.Zero})
		}
		totals[ix].Amount = totals[ix].Amount.Add(txn.Amount)
	}
	return totals
}

// TotalIn returns the signed sum of all txns in the given categories
func TotalIn(txns transaction.Transactions, names []string) decimal.Decimal {
	total := decimal.Zero
	for _, categoryTotal := range SumByCategory(txns, names) {
		total = total.Add(categoryTotal.Amount)
	}
	return total
}

// sortByFlow sorts totals by ascending absolute amount. Equal flows keep their current order.
func sortByFlow(totals []CategoryTotal) {
	sort.SliceStable(totals, func(a, b int) bool {
		return totals[a].Flow().LessThan(totals[b].Flow())
	})
}
