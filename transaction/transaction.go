package transaction

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Type is a transaction's category type, either Income or Expense
type Type int

const (
	Expense Type = iota
	Income
)

// ParseType parses a 'Category Type' cell. Matching is case-insensitive
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense":
		return Expense, nil
	case "income":
		return Income, nil
	default:
		return 0, errors.Errorf("Unrecognized category type: %q", s)
	}
}

func (t Type) String() string {
	if t == Income {
		return "income"
	}
	return "expense"
}

// Transaction is the part of an exported record relevant to flow building. Amounts are signed: expenses are negative.
type Transaction struct {
	Type     Type
	Category string
	Amount   decimal.Decimal
}

// Transactions is an ordered set of transactions, in the order they were loaded
type Transactions []Transaction

// Filter returns a new Transactions with only the transactions matching keep
func (t Transactions) Filter(keep func(Transaction) bool) Transactions {
	filtered := make(Transactions, 0, len(t))
	for _, txn := range t {
		if keep(txn) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// Income returns only income-typed transactions
func (t Transactions) Income() Transactions {
	return t.Filter(func(txn Transaction) bool {
		return txn.Type == Income
	})
}

// Expenses returns only expense-typed transactions
func (t Transactions) Expenses() Transactions {
	return t.Filter(func(txn Transaction) bool {
		return txn.Type == Expense
	})
}

// Categories returns the distinct category names in order of first appearance
func (t Transactions) Categories() []string {
	seen := make(map[string]bool)
	var names []string
	for _, txn := range t {
		if !seen[txn.Category] {
			seen[txn.Category] = true
			names = append(names, txn.Category)
		}
	}
	return names
}

// Has returns true if any transaction has the given category name
func (t Transactions) Has(category string) bool {
	for _, txn := range t {
		if txn.Category == category {
			return true
		}
	}
	return false
}

// Sum adds together every transaction's signed amount
func (t Transactions) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range t {
		sum = sum.Add(txn.Amount)
	}
	return sum
}
