// Package budget manages per-category monthly budgets
package budget

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/currencyutils"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/store"
)

var (
	category string
	amount   string
	replace  bool
)

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "List, set or remove monthly budgets",
	Run:   listFunc,
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a budget for a category and month",
	Long: `Set a budget for a category in the month selected with --month/--year.
If a budget already exists for that category and month, the command refuses
to overwrite it unless --replace is given.`,
	Run: setFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a budget for a category and month",
	Run:   removeFunc,
}

func init() {
	setCmd.Flags().StringVarP(&category, "category", "c", "", "Category name")
	setCmd.Flags().StringVarP(&amount, "amount", "a", "", "Budget amount (positive)")
	setCmd.Flags().BoolVarP(&replace, "replace", "r", false, "Replace an existing budget for the same period")
	_ = setCmd.MarkFlagRequired("category")
	_ = setCmd.MarkFlagRequired("amount")

	removeCmd.Flags().StringVarP(&category, "category", "c", "", "Category name")
	_ = removeCmd.MarkFlagRequired("category")

	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(removeCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	budgets := s.Budgets()
	if len(budgets) == 0 {
		fmt.Println("No budgets set.")
		return
	}

	fmt.Printf("%-20s %12s %7s %6s\n", "Category", "Amount", "Month", "Year")
	for _, b := range budgets {
		fmt.Printf("%-20s %12s %7d %6d\n",
			b.Category, root.Cfg.Currency.Symbol+b.Amount.StringFixed(2), b.Month, b.Year)
	}
}

func setFunc(cmd *cobra.Command, args []string) {
	if !root.ValidPeriod() {
		return
	}

	amt, err := currencyutils.ParsePositiveAmount(amount)
	if err != nil {
		root.Log.Errorf("Invalid amount: %v", err)
		return
	}

	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	b := models.Budget{Category: category, Amount: amt, Month: root.Month, Year: root.Year}
	err = s.AddBudget(b)
	if errors.Is(err, store.ErrBudgetExists) {
		if !replace {
			root.Log.Warnf("A budget for %q in %d/%d already exists; use --replace to overwrite",
				category, root.Month, root.Year)
			return
		}
		// Explicit confirmation given: remove the old entry, then insert.
		s.RemoveBudget(b)
		err = s.AddBudget(b)
	}
	if err != nil {
		root.Log.Errorf("Failed to set budget: %v", err)
		return
	}

	root.Log.Infof("Budget for %q set to %s for %d/%d", category, amt.StringFixed(2), root.Month, root.Year)
}

func removeFunc(cmd *cobra.Command, args []string) {
	if !root.ValidPeriod() {
		return
	}

	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	b := models.Budget{Category: category, Month: root.Month, Year: root.Year}
	found := false
	for _, existing := range s.Budgets() {
		if existing.Equal(b) {
			found = true
			break
		}
	}
	if !found {
		root.Log.Warnf("No budget for %q in %d/%d", category, root.Month, root.Year)
		return
	}

	s.RemoveBudget(b)
	root.Log.Infof("Removed budget for %q in %d/%d", category, root.Month, root.Year)
}
