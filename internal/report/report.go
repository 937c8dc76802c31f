// Package report assembles fixed-layout text reports from aggregation
// results: the monthly report, the statistics summary and the month
// comparison. Builders are pure functions of their inputs and produce
// deterministic, stably-ordered text.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/fintrack/internal/finance"
	"fjacquet/fintrack/internal/models"
)

const (
	reportWidth = 70
	statsWidth  = 80
)

// Formatter renders report text. Symbol is the display currency symbol; it
// only affects formatting, never arithmetic.
type Formatter struct {
	Symbol string
}

// NewFormatter creates a Formatter with the given currency symbol.
func NewFormatter(symbol string) *Formatter {
	return &Formatter{Symbol: symbol}
}

func (f *Formatter) money(amount decimal.Decimal) string {
	return f.Symbol + amount.StringFixed(2)
}

func percent(value decimal.Decimal) string {
	return value.StringFixed(1) + "%"
}

func signedPercent(value decimal.Decimal) string {
	if value.Sign() >= 0 {
		return "+" + value.StringFixed(1) + "%"
	}
	return value.StringFixed(1) + "%"
}

func monthName(month int) string {
	return time.Month(month).String()
}

func rule(width int) string {
	return strings.Repeat("-", width)
}

func banner(width int) string {
	return strings.Repeat("=", width)
}

// Monthly builds the monthly financial report: all-time totals, totals for
// the selected month, the expense-by-category breakdown sorted descending by
// amount, and budget-vs-actual lines for every budget covering the month.
func (f *Formatter) Monthly(txns []models.Transaction, budgets []models.Budget, month, year int) string {
	var sb strings.Builder
	sb.WriteString(banner(reportWidth) + "\n")
	fmt.Fprintf(&sb, "FINANCIAL REPORT - %s %d\n", monthName(month), year)
	sb.WriteString(banner(reportWidth) + "\n\n")

	sb.WriteString("OVERALL STATISTICS (All Time):\n")
	sb.WriteString(rule(reportWidth) + "\n")
	fmt.Fprintf(&sb, "Total Income:     %s\n", f.money(finance.TotalIncome(txns)))
	fmt.Fprintf(&sb, "Total Expenses:   %s\n", f.money(finance.TotalExpenses(txns)))
	fmt.Fprintf(&sb, "Balance:          %s\n\n", f.money(finance.Balance(txns)))

	monthTxns := finance.TransactionsForMonth(txns, month, year)
	monthIncome := finance.TotalIncome(monthTxns)
	monthExpenses := finance.TotalExpenses(monthTxns)

	fmt.Fprintf(&sb, "MONTHLY STATISTICS (%s %d):\n", monthName(month), year)
	sb.WriteString(rule(reportWidth) + "\n")
	fmt.Fprintf(&sb, "Monthly Income:   %s\n", f.money(monthIncome))
	fmt.Fprintf(&sb, "Monthly Expenses: %s\n", f.money(monthExpenses))
	fmt.Fprintf(&sb, "Monthly Balance:  %s\n\n", f.money(monthIncome.Sub(monthExpenses)))

	ranked := finance.RankedExpenseCategories(finance.ExpensesByCategory(monthTxns))
	if len(ranked) > 0 {
		sb.WriteString("EXPENSES BY CATEGORY:\n")
		sb.WriteString(rule(reportWidth) + "\n")
		for _, entry := range ranked {
			share := finance.Share(entry.Amount, monthExpenses)
			fmt.Fprintf(&sb, "%-25s %12s  (%s)\n",
				entry.Category+":", f.money(entry.Amount), percent(share))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("BUDGET VS ACTUAL:\n")
	sb.WriteString(rule(reportWidth) + "\n")
	f.writeBudgetVsActual(&sb, txns, budgets, month, year)

	sb.WriteString("\n" + banner(reportWidth) + "\n")
	fmt.Fprintf(&sb, "Report generated on: %s\n", time.Now().Format("2006-01-02"))
	sb.WriteString(banner(reportWidth))
	return sb.String()
}

// writeBudgetVsActual appends one line per budget covering the month, each
// with budget amount, actual spend, signed difference and utilization, plus
// an aggregate TOTAL line.
func (f *Formatter) writeBudgetVsActual(sb *strings.Builder, txns []models.Transaction, budgets []models.Budget, month, year int) {
	hasBudget := false
	totalBudget := decimal.Zero
	totalActual := decimal.Zero

	for _, b := range budgets {
		if b.Month != month || b.Year != year {
			continue
		}
		hasBudget = true
		actual := finance.CategoryExpenseForMonth(txns, b.Category, month, year)
		difference := b.Amount.Sub(actual)
		status := "Under"
		if difference.IsNegative() {
			status = "Over"
		}
		utilization := finance.Utilization(actual, b.Amount)

		totalBudget = totalBudget.Add(b.Amount)
		totalActual = totalActual.Add(actual)

		fmt.Fprintf(sb, "%-20s Budget: %12s | Actual: %12s | %s: %12s (%s)\n",
			b.Category+":", f.money(b.Amount), f.money(actual),
			status, f.money(difference.Abs()), percent(utilization))
	}

	if !hasBudget {
		sb.WriteString("No budgets set for this month.\n")
		return
	}

	sb.WriteString(rule(reportWidth) + "\n")
	totalDifference := totalBudget.Sub(totalActual)
	totalStatus := "Under"
	if totalDifference.IsNegative() {
		totalStatus = "Over"
	}
	fmt.Fprintf(sb, "%-20s Budget: %12s | Actual: %12s | %s: %12s (%s)\n",
		"TOTAL:", f.money(totalBudget), f.money(totalActual),
		totalStatus, f.money(totalDifference.Abs()),
		percent(finance.Utilization(totalActual, totalBudget)))
}

// Statistics builds the statistics summary for the selected month: current
// and previous month totals, month-over-month deltas, year-to-date figures,
// the top five expense categories and per-category budget status.
func (f *Formatter) Statistics(txns []models.Transaction, budgets []models.Budget, month, year int) string {
	var sb strings.Builder
	sb.WriteString(banner(statsWidth) + "\n")
	fmt.Fprintf(&sb, "FINANCIAL STATISTICS - %s %d\n", monthName(month), year)
	sb.WriteString(banner(statsWidth) + "\n\n")

	currentTxns := finance.TransactionsForMonth(txns, month, year)
	currentIncome := finance.TotalIncome(currentTxns)
	currentExpenses := finance.TotalExpenses(currentTxns)
	currentBalance := currentIncome.Sub(currentExpenses)

	fmt.Fprintf(&sb, "CURRENT MONTH (%s %d):\n", monthName(month), year)
	sb.WriteString(rule(statsWidth) + "\n")
	fmt.Fprintf(&sb, "Total Income:     %15s\n", f.money(currentIncome))
	fmt.Fprintf(&sb, "Total Expenses:   %15s\n", f.money(currentExpenses))
	fmt.Fprintf(&sb, "Net Balance:      %15s\n", f.money(currentBalance))
	fmt.Fprintf(&sb, "Transactions:     %15d\n\n", len(currentTxns))

	prevMonth, prevYear := finance.PreviousMonth(month, year)
	prevTxns := finance.TransactionsForMonth(txns, prevMonth, prevYear)
	prevIncome := finance.TotalIncome(prevTxns)
	prevExpenses := finance.TotalExpenses(prevTxns)
	prevBalance := prevIncome.Sub(prevExpenses)

	fmt.Fprintf(&sb, "PREVIOUS MONTH (%s %d):\n", monthName(prevMonth), prevYear)
	sb.WriteString(rule(statsWidth) + "\n")
	fmt.Fprintf(&sb, "Total Income:     %15s\n", f.money(prevIncome))
	fmt.Fprintf(&sb, "Total Expenses:   %15s\n", f.money(prevExpenses))
	fmt.Fprintf(&sb, "Net Balance:      %15s\n\n", f.money(prevBalance))

	sb.WriteString("MONTH-TO-MONTH COMPARISON:\n")
	sb.WriteString(rule(statsWidth) + "\n")
	fmt.Fprintf(&sb, "Income Change:    %15s (%s)\n",
		f.money(currentIncome.Sub(prevIncome)),
		signedPercent(finance.PercentChange(currentIncome, prevIncome)))
	fmt.Fprintf(&sb, "Expense Change:   %15s (%s)\n",
		f.money(currentExpenses.Sub(prevExpenses)),
		signedPercent(finance.PercentChange(currentExpenses, prevExpenses)))
	fmt.Fprintf(&sb, "Balance Change:   %15s (%s)\n\n",
		f.money(currentBalance.Sub(prevBalance)),
		signedPercent(finance.PercentChange(currentBalance, prevBalance)))

	ytdIncome, ytdExpenses := finance.TotalsForYear(txns, year)
	fmt.Fprintf(&sb, "YEAR-TO-DATE (%d):\n", year)
	sb.WriteString(rule(statsWidth) + "\n")
	fmt.Fprintf(&sb, "Total Income:     %15s\n", f.money(ytdIncome))
	fmt.Fprintf(&sb, "Total Expenses:   %15s\n", f.money(ytdExpenses))
	fmt.Fprintf(&sb, "Net Balance:      %15s\n", f.money(ytdIncome.Sub(ytdExpenses)))
	fmt.Fprintf(&sb, "Average Monthly:  %15s\n\n",
		f.money(ytdExpenses.Div(decimal.NewFromInt(int64(month)))))

	top := finance.TopExpenseCategories(currentTxns, 5)
	if len(top) > 0 {
		sb.WriteString("TOP SPENDING CATEGORIES (Current Month):\n")
		sb.WriteString(rule(statsWidth) + "\n")
		for _, entry := range top {
			share := finance.Share(entry.Amount, currentExpenses)
			fmt.Fprintf(&sb, "%-25s %14s  (%s)\n",
				entry.Category+":", f.money(entry.Amount), percent(share))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("BUDGET STATUS:\n")
	sb.WriteString(rule(statsWidth) + "\n")
	hasBudget := false
	for _, b := range budgets {
		if b.Month != month || b.Year != year {
			continue
		}
		hasBudget = true
		actual := finance.CategoryExpenseForMonth(txns, b.Category, month, year)
		utilization := finance.Utilization(actual, b.Amount)
		status := "On Track"
		if utilization.GreaterThan(decimal.NewFromInt(100)) {
			status = "Over Budget"
		}
		fmt.Fprintf(&sb, "%-20s Budget: %12s | Spent: %12s | %s (%s)\n",
			b.Category+":", f.money(b.Amount), f.money(actual), status, percent(utilization))
	}
	if !hasBudget {
		sb.WriteString("No budgets set for this month.\n")
	}

	sb.WriteString("\n" + banner(statsWidth) + "\n")
	fmt.Fprintf(&sb, "Generated on: %s\n", time.Now().Format("2006-01-02"))
	sb.WriteString(banner(statsWidth))
	return sb.String()
}

// CompareMonths builds a side-by-side comparison of the selected month and
// the month before it: income, expenses and balance for each, then absolute
// and percentage differences.
func (f *Formatter) CompareMonths(txns []models.Transaction, month, year int) string {
	prevMonth, prevYear := finance.PreviousMonth(month, year)

	currentTxns := finance.TransactionsForMonth(txns, month, year)
	currentIncome := finance.TotalIncome(currentTxns)
	currentExpenses := finance.TotalExpenses(currentTxns)
	currentBalance := currentIncome.Sub(currentExpenses)

	prevTxns := finance.TransactionsForMonth(txns, prevMonth, prevYear)
	prevIncome := finance.TotalIncome(prevTxns)
	prevExpenses := finance.TotalExpenses(prevTxns)
	prevBalance := prevIncome.Sub(prevExpenses)

	var sb strings.Builder
	sb.WriteString(banner(statsWidth) + "\n")
	sb.WriteString("MONTH COMPARISON\n")
	sb.WriteString(banner(statsWidth) + "\n\n")

	fmt.Fprintf(&sb, "%-40s %-40s\n",
		fmt.Sprintf("%s %d", monthName(month), year),
		fmt.Sprintf("%s %d", monthName(prevMonth), prevYear))
	sb.WriteString(rule(statsWidth) + "\n")
	fmt.Fprintf(&sb, "%-40s %-40s\n",
		"Income: "+f.money(currentIncome), "Income: "+f.money(prevIncome))
	fmt.Fprintf(&sb, "%-40s %-40s\n",
		"Expenses: "+f.money(currentExpenses), "Expenses: "+f.money(prevExpenses))
	fmt.Fprintf(&sb, "%-40s %-40s\n\n",
		"Balance: "+f.money(currentBalance), "Balance: "+f.money(prevBalance))

	sb.WriteString("DIFFERENCES:\n")
	sb.WriteString(rule(statsWidth) + "\n")
	fmt.Fprintf(&sb, "Income:   %s (%s)\n",
		f.money(currentIncome.Sub(prevIncome)),
		signedPercent(finance.PercentChange(currentIncome, prevIncome)))
	fmt.Fprintf(&sb, "Expenses: %s (%s)\n",
		f.money(currentExpenses.Sub(prevExpenses)),
		signedPercent(finance.PercentChange(currentExpenses, prevExpenses)))
	fmt.Fprintf(&sb, "Balance:  %s (%s)\n",
		f.money(currentBalance.Sub(prevBalance)),
		signedPercent(finance.PercentChange(currentBalance, prevBalance)))
	return sb.String()
}
