package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fjacquet/fintrack/internal/models"
)

func tx(id int, kind models.Kind, amount string, category string, y int, m time.Month, d int) models.Transaction {
	return models.Transaction{
		ID:       id,
		Kind:     kind,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

func januaryLedger() []models.Transaction {
	return []models.Transaction{
		tx(1, models.KindIncome, "5000", "Salary", 2024, time.January, 5),
		tx(2, models.KindExpense, "1200", "Food", 2024, time.January, 10),
		tx(3, models.KindExpense, "300", "Food", 2024, time.January, 20),
	}
}

func TestMonthly_TotalsAndBudgetVsActual(t *testing.T) {
	f := NewFormatter("$")
	budgets := []models.Budget{
		{Category: "Food", Amount: decimal.NewFromInt(1000), Month: 1, Year: 2024},
	}

	text := f.Monthly(januaryLedger(), budgets, 1, 2024)

	assert.Contains(t, text, "FINANCIAL REPORT - January 2024")
	assert.Contains(t, text, "Total Income:     $5000.00")
	assert.Contains(t, text, "Total Expenses:   $1500.00")
	assert.Contains(t, text, "Balance:          $3500.00")
	assert.Contains(t, text, "Monthly Income:   $5000.00")
	assert.Contains(t, text, "Monthly Balance:  $3500.00")

	// Food is the only expense category: 100% of monthly spend.
	assert.Contains(t, text, "Food:")
	assert.Contains(t, text, "$1500.00")
	assert.Contains(t, text, "(100.0%)")

	// Budget of 1000 against 1500 actual: over by 500 at 150% utilization.
	assert.Contains(t, text, "Over:")
	assert.Contains(t, text, "$500.00")
	assert.Contains(t, text, "(150.0%)")
	assert.Contains(t, text, "TOTAL:")
}

func TestMonthly_NoBudgets(t *testing.T) {
	f := NewFormatter("$")
	text := f.Monthly(januaryLedger(), nil, 1, 2024)
	assert.Contains(t, text, "No budgets set for this month.")
	assert.NotContains(t, text, "TOTAL:")
}

func TestMonthly_BudgetForOtherMonthExcluded(t *testing.T) {
	f := NewFormatter("$")
	budgets := []models.Budget{
		{Category: "Food", Amount: decimal.NewFromInt(1000), Month: 2, Year: 2024},
	}
	text := f.Monthly(januaryLedger(), budgets, 1, 2024)
	assert.Contains(t, text, "No budgets set for this month.")
}

func TestMonthly_CategoryBreakdownSortedDescending(t *testing.T) {
	f := NewFormatter("$")
	txns := []models.Transaction{
		tx(1, models.KindExpense, "50", "Transport", 2024, time.March, 1),
		tx(2, models.KindExpense, "200", "Bills", 2024, time.March, 2),
		tx(3, models.KindExpense, "120", "Food", 2024, time.March, 3),
	}

	text := f.Monthly(txns, nil, 3, 2024)
	bills := strings.Index(text, "Bills:")
	food := strings.Index(text, "Food:")
	transport := strings.Index(text, "Transport:")
	assert.True(t, bills < food && food < transport,
		"categories should be ordered by amount descending")
}

func TestStatistics_JanuaryWrapsToPreviousDecember(t *testing.T) {
	f := NewFormatter("$")
	txns := append(januaryLedger(),
		tx(4, models.KindIncome, "4000", "Salary", 2023, time.December, 5),
		tx(5, models.KindExpense, "1000", "Food", 2023, time.December, 9),
	)

	text := f.Statistics(txns, nil, 1, 2024)

	assert.Contains(t, text, "CURRENT MONTH (January 2024):")
	assert.Contains(t, text, "PREVIOUS MONTH (December 2023):")
	assert.Regexp(t, `Transactions:\s+3`, text)

	// Income moved 4000 -> 5000: +25%.
	assert.Contains(t, text, "(+25.0%)")

	// December 2023 is outside the 2024 year-to-date window.
	assert.Contains(t, text, "YEAR-TO-DATE (2024):")
	statsAfterYTD := text[strings.Index(text, "YEAR-TO-DATE"):]
	assert.Contains(t, statsAfterYTD, "$5000.00")
}

func TestStatistics_ZeroPreviousMonthReportsZeroPercent(t *testing.T) {
	f := NewFormatter("$")
	text := f.Statistics(januaryLedger(), nil, 1, 2024)

	// No December 2023 data: every change percentage guards the zero
	// denominator and reports 0%.
	assert.Contains(t, text, "Income Change:")
	assert.Contains(t, text, "(+0.0%)")
	assert.NotContains(t, text, "NaN")
}

func TestStatistics_AverageMonthlyExpense(t *testing.T) {
	f := NewFormatter("$")
	txns := append(januaryLedger(),
		tx(4, models.KindExpense, "500", "Transport", 2024, time.February, 10),
	)

	// YTD expenses through February: 2000, divided by month 2.
	text := f.Statistics(txns, nil, 2, 2024)
	assert.Contains(t, text, "Average Monthly:")
	assert.Contains(t, text, "$1000.00")
}

func TestStatistics_BudgetStatus(t *testing.T) {
	f := NewFormatter("$")
	budgets := []models.Budget{
		{Category: "Food", Amount: decimal.NewFromInt(1000), Month: 1, Year: 2024},
		{Category: "Transport", Amount: decimal.NewFromInt(100), Month: 1, Year: 2024},
	}

	text := f.Statistics(januaryLedger(), budgets, 1, 2024)
	// Food at 150% is over; Transport with no spend is on track.
	assert.Contains(t, text, "Over Budget")
	assert.Contains(t, text, "On Track")
	assert.Contains(t, text, "(0.0%)")
}

func TestCompareMonths(t *testing.T) {
	f := NewFormatter("$")
	txns := append(januaryLedger(),
		tx(4, models.KindIncome, "4000", "Salary", 2023, time.December, 5),
		tx(5, models.KindExpense, "3000", "Food", 2023, time.December, 9),
	)

	text := f.CompareMonths(txns, 1, 2024)

	assert.Contains(t, text, "MONTH COMPARISON")
	assert.Contains(t, text, "January 2024")
	assert.Contains(t, text, "December 2023")
	assert.Contains(t, text, "Income: $5000.00")
	assert.Contains(t, text, "Income: $4000.00")
	assert.Contains(t, text, "DIFFERENCES:")
	// Expenses dropped 3000 -> 1500: -50%.
	assert.Contains(t, text, "(-50.0%)")
}

func TestFormatter_DeterministicOutput(t *testing.T) {
	f := NewFormatter("$")
	txns := []models.Transaction{
		tx(1, models.KindExpense, "100", "Bills", 2024, time.March, 1),
		tx(2, models.KindExpense, "100", "Transport", 2024, time.March, 1),
		tx(3, models.KindExpense, "100", "Food", 2024, time.March, 1),
	}

	first := f.CompareMonths(txns, 3, 2024)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, f.CompareMonths(txns, 3, 2024))
	}
}
