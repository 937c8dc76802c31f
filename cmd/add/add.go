// Package add handles recording a new transaction
package add

import (
	"time"

	"github.com/spf13/cobra"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/currencyutils"
	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/models"
)

var (
	kind        string
	amount      string
	category    string
	description string
	date        string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record an income or expense transaction",
	Long: `Record a transaction in the ledger. The amount must be positive; the
kind (Income or Expense) determines the direction. The category should
match an existing category of the same kind.`,
	Run: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&kind, "kind", "k", "", "Transaction kind: Income or Expense")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Transaction amount (positive)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category name")
	Cmd.Flags().StringVarP(&description, "description", "n", "", "Description (optional)")
	Cmd.Flags().StringVarP(&date, "date", "t", "", "Transaction date (default: today)")
	_ = Cmd.MarkFlagRequired("kind")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("category")
}

func addFunc(cmd *cobra.Command, args []string) {
	k, err := models.ParseKind(kind)
	if err != nil {
		root.Log.Errorf("Invalid kind: %v", err)
		return
	}

	amt, err := currencyutils.ParsePositiveAmount(amount)
	if err != nil {
		root.Log.Errorf("Invalid amount: %v", err)
		return
	}

	when := time.Now()
	if date != "" {
		when, err = dateutils.ParseDate(date)
		if err != nil {
			root.Log.Errorf("Invalid date: %v", err)
			return
		}
	}

	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	// Categories are referenced by convention, not hard foreign key: warn on
	// an unknown pairing but record the transaction anyway.
	known := false
	for _, c := range s.Categories() {
		if c.Name == category && c.Kind == k {
			known = true
			break
		}
	}
	if !known {
		root.Log.Warnf("No %s category named %q exists; recording anyway", k, category)
	}

	t := s.NewTransaction(k, amt, category, description, when)
	s.AddTransaction(t)

	root.Log.Infof("Recorded %s of %s in %s (id %d)", t.Kind, t.Amount.StringFixed(2), t.Category, t.ID)
}
