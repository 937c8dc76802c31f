// Package finance holds the aggregation engine: pure functions that turn a
// transaction collection into totals, breakdowns and comparative figures.
// Nothing here touches the store or performs I/O; callers pass the slice to
// aggregate over (for example a month-filtered view).
//
// All sums use exact decimal arithmetic. Two-digit rounding happens only at
// formatting time so it never compounds across many small transactions.
package finance

import (
	"sort"

	"github.com/shopspring/decimal"

	"fjacquet/fintrack/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(txns []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Kind == models.KindIncome {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TotalExpenses sums the amounts of all expense transactions.
func TotalExpenses(txns []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Kind == models.KindExpense {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Balance is total income minus total expenses.
func Balance(txns []models.Transaction) decimal.Decimal {
	return TotalIncome(txns).Sub(TotalExpenses(txns))
}

// ExpensesByCategory maps each category name to its summed expense amount.
// Only Expense transactions contribute; categories with no expense records
// are absent from the result rather than present with zero.
func ExpensesByCategory(txns []models.Transaction) map[string]decimal.Decimal {
	byCategory := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if t.Kind != models.KindExpense {
			continue
		}
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
	}
	return byCategory
}

// CategoryExpenseForMonth sums expense amounts for one category within the
// given calendar month.
func CategoryExpenseForMonth(txns []models.Transaction, category string, month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Kind != models.KindExpense || t.Category != category {
			continue
		}
		if int(t.Date.Month()) == month && t.Date.Year() == year {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TransactionsForMonth filters to transactions dated in the given month and
// year, preserving input order.
func TransactionsForMonth(txns []models.Transaction, month, year int) []models.Transaction {
	filtered := []models.Transaction{}
	for _, t := range txns {
		if int(t.Date.Month()) == month && t.Date.Year() == year {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// TotalsForYear returns the year-to-date income and expense sums for the
// given calendar year.
func TotalsForYear(txns []models.Transaction, year int) (income, expenses decimal.Decimal) {
	income, expenses = decimal.Zero, decimal.Zero
	for _, t := range txns {
		if t.Date.Year() != year {
			continue
		}
		switch t.Kind {
		case models.KindIncome:
			income = income.Add(t.Amount)
		case models.KindExpense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return income, expenses
}

// PreviousMonth steps one month back, wrapping January to December of the
// prior year.
func PreviousMonth(month, year int) (int, int) {
	if month <= 1 {
		return 12, year - 1
	}
	return month - 1, year
}

// PercentChange computes the change from previous to current as a percentage
// of the previous value's magnitude. A zero previous value yields 0 rather
// than a division error.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(oneHundred)
}

// Utilization is actual spend as a percentage of the budgeted amount.
// A zero budget yields 0.
func Utilization(actual, budget decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}
	return actual.Div(budget).Mul(oneHundred)
}

// Share is part as a percentage of total, guarding the zero-total case.
func Share(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(oneHundred)
}

// CategoryAmount pairs a category name with an aggregated amount, for ranked
// listings.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// RankedExpenseCategories sorts an expenses-by-category map descending by
// amount, with category name ascending as the tie-break so output order is
// deterministic.
func RankedExpenseCategories(byCategory map[string]decimal.Decimal) []CategoryAmount {
	ranked := make([]CategoryAmount, 0, len(byCategory))
	for category, amount := range byCategory {
		ranked = append(ranked, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Amount.Equal(ranked[j].Amount) {
			return ranked[i].Amount.GreaterThan(ranked[j].Amount)
		}
		return ranked[i].Category < ranked[j].Category
	})
	return ranked
}

// TopExpenseCategories returns at most n ranked expense categories for the
// given transactions.
func TopExpenseCategories(txns []models.Transaction, n int) []CategoryAmount {
	ranked := RankedExpenseCategories(ExpensesByCategory(txns))
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
