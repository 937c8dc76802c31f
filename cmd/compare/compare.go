// Package compare prints a side-by-side comparison of two adjacent months
package compare

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/fintrack/cmd/root"
)

// Cmd represents the compare command
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the selected month with the previous one",
	Run:   compareFunc,
}

func compareFunc(cmd *cobra.Command, args []string) {
	if !root.ValidPeriod() {
		return
	}

	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	fmt.Println(root.Formatter().CompareMonths(s.Transactions(), root.Month, root.Year))
}
