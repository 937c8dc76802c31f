// Package stats prints the financial statistics summary
package stats

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/fintrack/cmd/root"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show financial statistics for the selected month",
	Long: `Show statistics for the month selected with --month/--year: current
and previous month totals, month-over-month changes, year-to-date figures,
top spending categories and budget status.`,
	Run: statsFunc,
}

func statsFunc(cmd *cobra.Command, args []string) {
	if !root.ValidPeriod() {
		return
	}

	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	fmt.Println(root.Formatter().Statistics(s.Transactions(), s.Budgets(), root.Month, root.Year))
}
