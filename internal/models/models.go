// Package models defines the core ledger entities: transactions, categories
// and monthly budgets. Identity and equality rules live here; validation of
// raw user input is the caller's job.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a transaction or category as income or expense.
type Kind string

const (
	// KindIncome marks money coming in.
	KindIncome Kind = "Income"
	// KindExpense marks money going out.
	KindExpense Kind = "Expense"
)

// DefaultDescription is substituted when a transaction is created with a
// blank description.
const DefaultDescription = "No description"

// Transaction is a single income or expense entry in the ledger.
// ID is process-unique and immutable after creation; updates go through the
// store as full replacement of the record, never partial field mutation.
type Transaction struct {
	ID          int
	Kind        Kind
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

// Equal reports whether two transactions are the same ledger entry.
// Identity is the ID alone.
func (t Transaction) Equal(other Transaction) bool {
	return t.ID == other.ID
}

// Category is a user-defined label for transactions. The same name may exist
// once under Income and once under Expense; those are distinct categories.
type Category struct {
	Name string
	Kind Kind
}

// CategoryKey is the identity of a category: the (name, kind) pair.
type CategoryKey struct {
	Name string
	Kind Kind
}

// Key returns the lookup/dedup key for the category.
func (c Category) Key() CategoryKey {
	return CategoryKey{Name: c.Name, Kind: c.Kind}
}

// Equal reports whether both name and kind match.
func (c Category) Equal(other Category) bool {
	return c.Key() == other.Key()
}

// Budget is a spending limit for one category in one calendar month.
type Budget struct {
	Category string
	Amount   decimal.Decimal
	Month    int
	Year     int
}

// BudgetKey is the identity of a budget: (category, month, year).
// Amount is deliberately excluded so that two budgets differing only in
// amount are the same budget for replace/delete purposes.
type BudgetKey struct {
	Category string
	Month    int
	Year     int
}

// Key returns the lookup/dedup key for the budget.
func (b Budget) Key() BudgetKey {
	return BudgetKey{Category: b.Category, Month: b.Month, Year: b.Year}
}

// Equal reports whether two budgets cover the same category and period.
func (b Budget) Equal(other Budget) bool {
	return b.Key() == other.Key()
}

// DefaultCategories returns the seed set used on first run, when no
// categories file exists yet.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Salary", Kind: KindIncome},
		{Name: "Freelance", Kind: KindIncome},
		{Name: "Investment", Kind: KindIncome},
		{Name: "Food", Kind: KindExpense},
		{Name: "Transport", Kind: KindExpense},
		{Name: "Entertainment", Kind: KindExpense},
		{Name: "Bills", Kind: KindExpense},
		{Name: "Shopping", Kind: KindExpense},
		{Name: "Healthcare", Kind: KindExpense},
		{Name: "Other", Kind: KindExpense},
	}
}
