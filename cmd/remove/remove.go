// Package remove handles deleting a transaction by id
package remove

import (
	"github.com/spf13/cobra"

	"fjacquet/fintrack/cmd/root"
)

var id int

// Cmd represents the remove command
var Cmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete a transaction by id",
	Run:   removeFunc,
}

func init() {
	Cmd.Flags().IntVarP(&id, "id", "i", 0, "Transaction id to remove")
	_ = Cmd.MarkFlagRequired("id")
}

func removeFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	for _, t := range s.Transactions() {
		if t.ID == id {
			s.RemoveTransaction(t)
			root.Log.Infof("Removed transaction %d (%s %s, %s)", t.ID, t.Kind, t.Amount.StringFixed(2), t.Category)
			return
		}
	}
	root.Log.Warnf("No transaction with id %d", id)
}
