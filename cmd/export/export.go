// Package export writes the transaction table to a CSV file
package export

import (
	"github.com/spf13/cobra"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/export"
)

var output string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all transactions to CSV",
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "transactions.csv", "Output CSV file")
}

func exportFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	if err := export.WriteTransactionsCSV(s.Transactions(), output); err != nil {
		root.Log.Errorf("Failed to export transactions: %v", err)
		return
	}
	root.Log.Infof("Exported %d transaction(s) to %s", len(s.Transactions()), output)
}
