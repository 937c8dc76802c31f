// Package list prints the recorded transactions
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/finance"
)

var all bool

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions for the selected month",
	Long: `List transactions for the month selected with --month/--year
(default: the current month). Use --all to list the entire ledger.`,
	Run: listFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&all, "all", "A", false, "List all transactions, not just the selected month")
}

func listFunc(cmd *cobra.Command, args []string) {
	if !all && !root.ValidPeriod() {
		return
	}

	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	txns := s.Transactions()
	if !all {
		txns = finance.TransactionsForMonth(txns, root.Month, root.Year)
	}

	if len(txns) == 0 {
		fmt.Println("No transactions found.")
		return
	}

	symbol := root.Cfg.Currency.Symbol
	fmt.Printf("%-5s %-8s %12s  %-15s %-30s %s\n", "ID", "Type", "Amount", "Category", "Description", "Date")
	for _, t := range txns {
		fmt.Printf("%-5d %-8s %12s  %-15s %-30s %s\n",
			t.ID, t.Kind, symbol+t.Amount.StringFixed(2), t.Category, t.Description,
			dateutils.ToISODate(t.Date))
	}
	fmt.Printf("\n%d transaction(s). Income: %s  Expenses: %s  Balance: %s\n",
		len(txns),
		symbol+finance.TotalIncome(txns).StringFixed(2),
		symbol+finance.TotalExpenses(txns).StringFixed(2),
		symbol+finance.Balance(txns).StringFixed(2))
}
