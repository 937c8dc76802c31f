// Package report prints the monthly financial report
package report

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fjacquet/fintrack/cmd/root"
)

var output string

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the monthly financial report",
	Long: `Generate the financial report for the month selected with
--month/--year: all-time totals, monthly totals, expenses by category and
budget vs actual.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file instead of stdout")
}

func reportFunc(cmd *cobra.Command, args []string) {
	if !root.ValidPeriod() {
		return
	}

	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	text := root.Formatter().Monthly(s.Transactions(), s.Budgets(), root.Month, root.Year)

	if output != "" {
		if err := os.WriteFile(output, []byte(text), 0600); err != nil {
			root.Log.Errorf("Failed to write report: %v", err)
			return
		}
		root.Log.Infof("Report written to %s", output)
		return
	}
	fmt.Println(text)
}
