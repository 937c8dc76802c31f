// Package edit handles replacing an existing transaction's fields
package edit

import (
	"github.com/spf13/cobra"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/currencyutils"
	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/models"
)

var (
	id          int
	kind        string
	amount      string
	category    string
	description string
	date        string
)

// Cmd represents the edit command. Editing is a full replacement: the record
// keeps its id and position, every supplied field overwrites the old value.
var Cmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a transaction, replacing the fields you supply",
	Run:   editFunc,
}

func init() {
	Cmd.Flags().IntVarP(&id, "id", "i", 0, "Transaction id to edit")
	Cmd.Flags().StringVarP(&kind, "kind", "k", "", "New kind: Income or Expense")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "New amount (positive)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "New category name")
	Cmd.Flags().StringVarP(&description, "description", "n", "", "New description")
	Cmd.Flags().StringVarP(&date, "date", "t", "", "New transaction date")
	_ = Cmd.MarkFlagRequired("id")
}

func editFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	var old *models.Transaction
	for _, t := range s.Transactions() {
		if t.ID == id {
			existing := t
			old = &existing
			break
		}
	}
	if old == nil {
		root.Log.Warnf("No transaction with id %d", id)
		return
	}

	updated := *old
	if kind != "" {
		k, err := models.ParseKind(kind)
		if err != nil {
			root.Log.Errorf("Invalid kind: %v", err)
			return
		}
		updated.Kind = k
	}
	if amount != "" {
		amt, err := currencyutils.ParsePositiveAmount(amount)
		if err != nil {
			root.Log.Errorf("Invalid amount: %v", err)
			return
		}
		updated.Amount = amt
	}
	if category != "" {
		updated.Category = category
	}
	if description != "" {
		updated.Description = description
	}
	if date != "" {
		when, err := dateutils.ParseDate(date)
		if err != nil {
			root.Log.Errorf("Invalid date: %v", err)
			return
		}
		updated.Date = when
	}

	s.UpdateTransaction(*old, updated)
	root.Log.Infof("Updated transaction %d", id)
}
