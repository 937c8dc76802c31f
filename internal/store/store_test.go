package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/fintrack/internal/models"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	return s, dir
}

func testDate() time.Time {
	return time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
}

func TestOpen_FirstRunSeedsDefaults(t *testing.T) {
	s, _ := openTestStore(t)

	assert.Empty(t, s.Transactions())
	assert.Empty(t, s.Budgets())
	assert.Equal(t, models.DefaultCategories(), s.Categories())
	assert.Equal(t, 1, s.NextID())
}

func TestOpen_EmptyCategoriesFileIsNotReseeded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CategoriesFile), []byte(""), 0600))

	s, err := Open(dir)
	require.NoError(t, err)
	// The user deleted every category; an existing (empty) file wins over
	// the seed set.
	assert.Empty(t, s.Categories())
}

func TestNewTransaction_AssignsSequentialIDs(t *testing.T) {
	s, _ := openTestStore(t)

	first := s.NewTransaction(models.KindExpense, decimal.NewFromInt(10), "Food", "", testDate())
	second := s.NewTransaction(models.KindIncome, decimal.NewFromInt(20), "Salary", "Pay", testDate())

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, models.DefaultDescription, first.Description)
	assert.Equal(t, "Pay", second.Description)
}

func TestAddTransaction_PersistsAndReloads(t *testing.T) {
	s, dir := openTestStore(t)

	tx := s.NewTransaction(models.KindExpense, decimal.RequireFromString("12.34"), "Food", "Lunch", testDate())
	s.AddTransaction(tx)

	reloaded, err := Open(dir)
	require.NoError(t, err)
	txns := reloaded.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, 1, txns[0].ID)
	assert.Equal(t, models.KindExpense, txns[0].Kind)
	assert.True(t, decimal.RequireFromString("12.34").Equal(txns[0].Amount))
	assert.Equal(t, "Lunch", txns[0].Description)
}

func TestOpen_NextIDAdvancesPastRestoredIDs(t *testing.T) {
	s, dir := openTestStore(t)
	for i := 0; i < 3; i++ {
		s.AddTransaction(s.NewTransaction(models.KindExpense, decimal.NewFromInt(int64(i+1)), "Food", "", testDate()))
	}

	reloaded, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, reloaded.NextID())

	// New transactions never collide with restored ones.
	tx := reloaded.NewTransaction(models.KindIncome, decimal.NewFromInt(5), "Salary", "", testDate())
	assert.Equal(t, 4, tx.ID)
}

func TestRemoveTransaction(t *testing.T) {
	s, _ := openTestStore(t)
	first := s.NewTransaction(models.KindExpense, decimal.NewFromInt(1), "Food", "", testDate())
	second := s.NewTransaction(models.KindExpense, decimal.NewFromInt(2), "Food", "", testDate())
	s.AddTransaction(first)
	s.AddTransaction(second)

	s.RemoveTransaction(first)
	txns := s.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, second.ID, txns[0].ID)

	// Removing an absent transaction is a no-op.
	s.RemoveTransaction(first)
	assert.Len(t, s.Transactions(), 1)
}

func TestUpdateTransaction_ReplacesInPlaceKeepingID(t *testing.T) {
	s, _ := openTestStore(t)
	first := s.NewTransaction(models.KindExpense, decimal.NewFromInt(1), "Food", "", testDate())
	second := s.NewTransaction(models.KindExpense, decimal.NewFromInt(2), "Transport", "", testDate())
	s.AddTransaction(first)
	s.AddTransaction(second)

	updated := first
	updated.Amount = decimal.NewFromInt(99)
	updated.Category = "Bills"
	s.UpdateTransaction(first, updated)

	txns := s.Transactions()
	require.Len(t, txns, 2)
	assert.Equal(t, first.ID, txns[0].ID)
	assert.Equal(t, "Bills", txns[0].Category)
	assert.True(t, decimal.NewFromInt(99).Equal(txns[0].Amount))
	assert.Equal(t, "Transport", txns[1].Category)

	// Updating a transaction that is not present changes nothing.
	ghost := s.NewTransaction(models.KindExpense, decimal.NewFromInt(3), "Food", "", testDate())
	s.UpdateTransaction(ghost, updated)
	assert.Len(t, s.Transactions(), 2)
}

func TestAddCategory_DuplicateIgnored(t *testing.T) {
	s, _ := openTestStore(t)
	before := len(s.Categories())

	// Food/Expense is part of the default seed.
	s.AddCategory(models.Category{Name: "Food", Kind: models.KindExpense})
	assert.Len(t, s.Categories(), before)

	// The same name under Income is a distinct category.
	s.AddCategory(models.Category{Name: "Food", Kind: models.KindIncome})
	assert.Len(t, s.Categories(), before+1)
}

func TestRemoveCategory_NoCascade(t *testing.T) {
	s, _ := openTestStore(t)
	s.AddTransaction(s.NewTransaction(models.KindExpense, decimal.NewFromInt(10), "Food", "", testDate()))

	s.RemoveCategory(models.Category{Name: "Food", Kind: models.KindExpense})

	for _, c := range s.Categories() {
		assert.False(t, c.Name == "Food" && c.Kind == models.KindExpense)
	}
	// The referencing transaction keeps its dangling category name.
	txns := s.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, "Food", txns[0].Category)
}

func TestAddBudget_DuplicatePeriodRejected(t *testing.T) {
	s, _ := openTestStore(t)

	original := models.Budget{Category: "Food", Amount: decimal.NewFromInt(500), Month: 1, Year: 2024}
	require.NoError(t, s.AddBudget(original))

	// Same (category, month, year) with a different amount is the same key.
	conflicting := models.Budget{Category: "Food", Amount: decimal.NewFromInt(900), Month: 1, Year: 2024}
	err := s.AddBudget(conflicting)
	assert.ErrorIs(t, err, ErrBudgetExists)

	budgets := s.Budgets()
	require.Len(t, budgets, 1)
	assert.True(t, decimal.NewFromInt(500).Equal(budgets[0].Amount))

	// Explicit remove-then-add replaces it.
	s.RemoveBudget(original)
	require.NoError(t, s.AddBudget(conflicting))
	budgets = s.Budgets()
	require.Len(t, budgets, 1)
	assert.True(t, decimal.NewFromInt(900).Equal(budgets[0].Amount))
}

func TestBudgets_PersistAcrossReload(t *testing.T) {
	s, dir := openTestStore(t)
	require.NoError(t, s.AddBudget(models.Budget{Category: "Food", Amount: decimal.NewFromInt(500), Month: 1, Year: 2024}))
	require.NoError(t, s.AddBudget(models.Budget{Category: "Transport", Amount: decimal.RequireFromString("120.50"), Month: 2, Year: 2024}))

	reloaded, err := Open(dir)
	require.NoError(t, err)
	budgets := reloaded.Budgets()
	require.Len(t, budgets, 2)
	assert.Equal(t, "Food", budgets[0].Category)
	assert.True(t, decimal.RequireFromString("120.50").Equal(budgets[1].Amount))
}

func TestSubscribe_NotifiedOnEveryMutation(t *testing.T) {
	s, _ := openTestStore(t)

	notifications := 0
	s.Subscribe(func() { notifications++ })

	tx := s.NewTransaction(models.KindExpense, decimal.NewFromInt(1), "Food", "", testDate())
	s.AddTransaction(tx)
	s.AddCategory(models.Category{Name: "Gifts", Kind: models.KindExpense})
	require.NoError(t, s.AddBudget(models.Budget{Category: "Food", Amount: decimal.NewFromInt(100), Month: 1, Year: 2024}))
	s.RemoveTransaction(tx)

	assert.Equal(t, 4, notifications)

	// A silently-ignored duplicate insert is not a mutation.
	s.AddCategory(models.Category{Name: "Gifts", Kind: models.KindExpense})
	assert.Equal(t, 4, notifications)
}

func TestSnapshots_AreCopies(t *testing.T) {
	s, _ := openTestStore(t)
	s.AddTransaction(s.NewTransaction(models.KindExpense, decimal.NewFromInt(10), "Food", "", testDate()))

	snapshot := s.Transactions()
	snapshot[0].Category = "Tampered"

	assert.Equal(t, "Food", s.Transactions()[0].Category)
}

func TestOpen_ToleratesCorruptTransactionsFile(t *testing.T) {
	dir := t.TempDir()
	content := "garbage line\n1|Income|100.00|Salary|Pay|2024-01-05\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, TransactionsFile), []byte(content), 0600))

	s, err := Open(dir)
	require.NoError(t, err)
	require.Len(t, s.Transactions(), 1)
	assert.Equal(t, 2, s.NextID())
}
