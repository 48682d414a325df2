package flow

import (
	"sort"

	"github.com/johnstarich/spendee-sankey/category"
	sErrors "github.com/johnstarich/spendee-sankey/errors"
	"github.com/johnstarich/spendee-sankey/transaction"
	"github.com/shopspring/decimal"
)

// Default node labels
const (
	IncomeNode      = "Income"
	SavingsNode     = "Savings"
	ExpensesNode    = "Expenses"
	SavingsCategory = "Savings"
)

// Options customize how an Emitter builds flows
type Options struct {
	// SavingsCategory is the expense category of transfers into savings accounts
	SavingsCategory string
	// AllowMissingSavings treats an absent SavingsCategory as zero instead of failing
	AllowMissingSavings bool
	// SkipZero drops edges with a zero amount
	SkipZero bool
	// IncomeRenames relabels income categories which collide with expense categories
	IncomeRenames map[string]string

	IncomeNode   string
	SavingsNode  string
	ExpensesNode string
}

// Emitter turns transactions into an ordered set of flow edges
type Emitter struct {
	categorizer *category.Categorizer
	opts        Options
}

// New returns an Emitter grouping expenses with categorizer. Empty labels in opts are set to their defaults.
func New(categorizer *category.Categorizer, opts Options) *Emitter {
	setDefault(&opts.SavingsCategory, SavingsCategory)
	setDefault(&opts.IncomeNode, IncomeNode)
	setDefault(&opts.SavingsNode, SavingsNode)
	setDefault(&opts.ExpensesNode, ExpensesNode)
	if opts.IncomeRenames == nil {
		opts.IncomeRenames = category.DefaultIncomeRenames
	}
	return &Emitter{
		categorizer: categorizer,
		opts:        opts,
	}
}

func setDefault(s *string, value string) {
	if *s == "" {
		*s = value
	}
}

type groupFlow struct {
	name          string
	subcategories []CategoryTotal
	flow          decimal.Decimal
}

func newGroupFlow(name string, subcategories []CategoryTotal) groupFlow {
	sortByFlow(subcategories)
	flow := decimal.Zero
	for _, sub := range subcategories {
		flow = flow.Add(sub.Flow())
	}
	return groupFlow{name: name, subcategories: subcategories, flow: flow}
}

// Flows returns every edge of the flow graph for txns:
// income categories into Income, Income into Savings and Expenses, Expenses into each group, and each group into its categories.
// Edges are complete or an error is returned, never both.
func (e *Emitter) Flows(txns transaction.Transactions) (Edges, error) {
	txns = category.NormalizeIncome(txns, e.opts.IncomeRenames)
	income, expenses := txns.Income(), txns.Expenses()

	savingsCategory := []string{e.opts.SavingsCategory}
	if !e.opts.AllowMissingSavings && !expenses.Has(e.opts.SavingsCategory) {
		return nil, &MissingCategoryError{Category: e.opts.SavingsCategory}
	}
	actualExpenses := expenses.Filter(func(txn transaction.Transaction) bool {
		return txn.Category != e.opts.SavingsCategory
	})
	if err := e.checkNodeConflicts(income, actualExpenses); err != nil {
		return nil, err
	}

	incomeTotal := income.Sum()
	// transfers to savings are negative expenses, so subtracting them adds them back to savings
	savings := txns.Sum().Sub(TotalIn(expenses, savingsCategory))

	var edges Edges
	add := func(source string, amount decimal.Decimal, destination string) {
		if e.opts.SkipZero && amount.IsZero() {
			return
		}
		edges = append(edges, Edge{Source: source, Amount: amount, Destination: destination})
	}

	incomeTotals := SumByCategory(income, income.Categories())
	sortByFlow(incomeTotals)
	for _, total := range incomeTotals {
		add(total.Category, total.Flow(), e.opts.IncomeNode)
	}

	if savings.IsNegative() {
		// spending more than earned draws down savings
		add(e.opts.SavingsNode, savings.Abs(), e.opts.IncomeNode)
	} else {
		add(e.opts.IncomeNode, savings, e.opts.SavingsNode)
	}
	add(e.opts.IncomeNode, incomeTotal.Sub(savings), e.opts.ExpensesNode)

	for _, group := range e.groupFlows(actualExpenses) {
		for _, sub := range group.subcategories {
			add(group.name, sub.Flow(), sub.Category)
		}
		add(e.opts.ExpensesNode, group.flow, group.name)
	}
	return edges, nil
}

// checkNodeConflicts fails if a category would share its node with a fixed node or a group, merging unrelated flows
func (e *Emitter) checkNodeConflicts(income, expenses transaction.Transactions) error {
	reserved := map[string]bool{
		e.opts.IncomeNode:            true,
		e.opts.SavingsNode:           true,
		e.opts.ExpensesNode:          true,
		e.categorizer.DefaultGroup(): true,
	}
	for _, group := range e.categorizer.Groups() {
		reserved[group.Name] = true
	}

	var errs sErrors.Errors
	for _, txns := range []transaction.Transactions{income, expenses} {
		for _, name := range txns.Categories() {
			if reserved[name] {
				errs.AddErr(&NodeConflictError{Category: name})
			}
		}
	}
	return errs.ErrOrNil()
}

// groupFlows returns every group with at least one category in expenses, ordered by ascending flow.
// Ties keep configuration order, with the default group last.
func (e *Emitter) groupFlows(expenses transaction.Transactions) []groupFlow {
	var groups []groupFlow
	for _, group := range e.categorizer.Groups() {
		subcategories := SumByCategory(expenses, group.Categories)
		if len(subcategories) > 0 {
			groups = append(groups, newGroupFlow(group.Name, subcategories))
		}
	}

	defaultGroup := e.categorizer.DefaultGroup()
	var unassigned []string
	for _, name := range expenses.Categories() {
		if e.categorizer.Classify(name) == defaultGroup {
			unassigned = append(unassigned, name)
		}
	}
	if len(unassigned) > 0 {
		groups = append(groups, newGroupFlow(defaultGroup, SumByCategory(expenses, unassigned)))
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].flow.LessThan(groups[b].flow)
	})
	return groups
}
