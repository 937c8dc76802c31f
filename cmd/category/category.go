// Package category manages the user-defined category set
package category

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/models"
)

var (
	name string
	kind string
)

// Cmd represents the category command
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "List, add or remove categories",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a category",
	Run:   addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a category",
	Long: `Remove a category by name and kind. Transactions referencing the
category keep their reference; history is never rewritten.`,
	Run: removeFunc,
}

func init() {
	for _, c := range []*cobra.Command{addCmd, removeCmd} {
		c.Flags().StringVarP(&name, "name", "n", "", "Category name")
		c.Flags().StringVarP(&kind, "kind", "k", "", "Category kind: Income or Expense")
		_ = c.MarkFlagRequired("name")
		_ = c.MarkFlagRequired("kind")
	}
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	fmt.Printf("%-20s %s\n", "Name", "Kind")
	for _, c := range s.Categories() {
		fmt.Printf("%-20s %s\n", c.Name, c.Kind)
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	k, err := models.ParseKind(kind)
	if err != nil {
		root.Log.Errorf("Invalid kind: %v", err)
		return
	}
	if name == "" {
		root.Log.Error("Category name is required")
		return
	}

	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	c := models.Category{Name: name, Kind: k}
	for _, existing := range s.Categories() {
		if existing.Equal(c) {
			root.Log.Warnf("Category %q (%s) already exists", name, k)
			return
		}
	}

	s.AddCategory(c)
	root.Log.Infof("Added category %q (%s)", name, k)
}

func removeFunc(cmd *cobra.Command, args []string) {
	k, err := models.ParseKind(kind)
	if err != nil {
		root.Log.Errorf("Invalid kind: %v", err)
		return
	}

	s, err := root.OpenStore()
	if err != nil {
		root.Log.Errorf("Failed to open ledger: %v", err)
		return
	}

	c := models.Category{Name: name, Kind: k}
	found := false
	for _, existing := range s.Categories() {
		if existing.Equal(c) {
			found = true
			break
		}
	}
	if !found {
		root.Log.Warnf("No category %q (%s)", name, k)
		return
	}

	s.RemoveCategory(c)
	root.Log.Infof("Removed category %q (%s)", name, k)
}
