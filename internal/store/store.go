// Package store owns the in-memory ledger collections and their flat-file
// persistence. It is the sole mutation surface: every successful mutation is
// followed by a synchronous flush of all three files and a notification to
// subscribed listeners.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"fjacquet/fintrack/internal/codec"
	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/models"
)

// File names inside the data directory.
const (
	TransactionsFile = "transactions.txt"
	CategoriesFile   = "categories.txt"
	BudgetsFile      = "budgets.txt"
)

var log = config.Logger

// SetLogger allows setting a custom logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ErrBudgetExists is returned when adding a budget whose (category, month,
// year) is already taken. The caller decides whether to remove the existing
// entry and retry; the store never silently overwrites.
var ErrBudgetExists = fmt.Errorf("a budget for this category and month already exists")

// Store holds the ledger for one session. All access goes through its
// methods; accessors return copies so callers cannot mutate internal state.
type Store struct {
	mu           sync.Mutex
	dir          string
	transactions []models.Transaction
	categories   []models.Category
	budgets      []models.Budget
	nextID       int
	listeners    []func()
}

// Open loads the ledger from the given data directory, creating the
// directory if it does not exist. A missing transactions or budgets file
// yields an empty collection; a missing categories file yields the default
// seed set. Unreadable files are logged and treated as empty.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("error creating data directory %s: %w", dir, err)
	}

	s := &Store{dir: dir, nextID: 1}

	if data, ok := s.readFile(TransactionsFile); ok {
		s.transactions, s.nextID = codec.DecodeTransactions(data)
	} else {
		s.transactions = []models.Transaction{}
	}

	if data, ok := s.readFile(CategoriesFile); ok {
		s.categories = codec.DecodeCategories(data)
	} else {
		s.categories = models.DefaultCategories()
	}

	if data, ok := s.readFile(BudgetsFile); ok {
		s.budgets = codec.DecodeBudgets(data)
	} else {
		s.budgets = []models.Budget{}
	}

	log.WithFields(logrus.Fields{
		"dir":          dir,
		"transactions": len(s.transactions),
		"categories":   len(s.categories),
		"budgets":      len(s.budgets),
	}).Debug("Ledger loaded")

	return s, nil
}

// readFile reads one data file. The second return is false when the file
// does not exist; read errors are logged and reported as absent so the load
// falls back to an empty collection.
func (s *Store) readFile(name string) (string, bool) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Errorf("Error reading %s", path)
		}
		return "", false
	}
	return string(data), true
}

// Subscribe registers a listener invoked after every successful mutation.
// Dependent viewers use this to refresh themselves.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// NewTransaction constructs a transaction with the next auto-assigned ID and
// advances the counter. A blank description gets the default placeholder.
// The transaction is not added to the ledger; pass it to AddTransaction.
func (s *Store) NewTransaction(kind models.Kind, amount decimal.Decimal, category, description string, date time.Time) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if description == "" {
		description = models.DefaultDescription
	}
	t := models.Transaction{
		ID:          s.nextID,
		Kind:        kind,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
	s.nextID++
	return t
}

// NextID returns the next transaction ID that would be assigned.
func (s *Store) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID
}

// AddTransaction appends a transaction. Duplicate content is permitted; the
// ID is unique per construction.
func (s *Store) AddTransaction(t models.Transaction) {
	s.mu.Lock()
	s.transactions = append(s.transactions, t)
	s.mu.Unlock()
	s.flushAndNotify()
}

// RemoveTransaction removes the transaction with a matching ID. No-op if
// absent.
func (s *Store) RemoveTransaction(t models.Transaction) {
	s.mu.Lock()
	removed := false
	for i, existing := range s.transactions {
		if existing.Equal(t) {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.flushAndNotify()
	}
}

// UpdateTransaction replaces old with updated at the same position. The
// updated record keeps old's ID so identity is immutable. No-op if old is
// not present.
func (s *Store) UpdateTransaction(old, updated models.Transaction) {
	s.mu.Lock()
	replaced := false
	for i, existing := range s.transactions {
		if existing.Equal(old) {
			updated.ID = old.ID
			s.transactions[i] = updated
			replaced = true
			break
		}
	}
	s.mu.Unlock()
	if replaced {
		s.flushAndNotify()
	}
}

// AddCategory inserts the category unless an equal (name, kind) pair already
// exists, in which case the call is silently ignored.
func (s *Store) AddCategory(c models.Category) {
	s.mu.Lock()
	for _, existing := range s.categories {
		if existing.Equal(c) {
			s.mu.Unlock()
			log.WithFields(logrus.Fields{
				"name": c.Name,
				"kind": c.Kind,
			}).Debug("Category already exists, ignoring")
			return
		}
	}
	s.categories = append(s.categories, c)
	s.mu.Unlock()
	s.flushAndNotify()
}

// RemoveCategory removes the category matching (name, kind). Transactions
// referencing the name keep their dangling reference; there is no cascade.
func (s *Store) RemoveCategory(c models.Category) {
	s.mu.Lock()
	removed := false
	for i, existing := range s.categories {
		if existing.Equal(c) {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.flushAndNotify()
	}
}

// AddBudget inserts the budget. If a budget with the same (category, month,
// year) exists, ErrBudgetExists is returned and nothing changes; the caller
// must confirm replacement and call RemoveBudget first.
func (s *Store) AddBudget(b models.Budget) error {
	s.mu.Lock()
	for _, existing := range s.budgets {
		if existing.Equal(b) {
			s.mu.Unlock()
			return ErrBudgetExists
		}
	}
	s.budgets = append(s.budgets, b)
	s.mu.Unlock()
	s.flushAndNotify()
	return nil
}

// RemoveBudget removes the budget matching (category, month, year). No-op if
// absent.
func (s *Store) RemoveBudget(b models.Budget) {
	s.mu.Lock()
	removed := false
	for i, existing := range s.budgets {
		if existing.Equal(b) {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.flushAndNotify()
	}
}

// Transactions returns a copy of the transaction collection.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Budgets returns a copy of the budget collection.
func (s *Store) Budgets() []models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// flushAndNotify rewrites all three files and fires listener notifications.
// Save failures are logged but never roll back the in-memory mutation: the
// session's memory stays authoritative.
func (s *Store) flushAndNotify() {
	s.mu.Lock()
	files := map[string]string{
		TransactionsFile: codec.EncodeTransactions(s.transactions),
		CategoriesFile:   codec.EncodeCategories(s.categories),
		BudgetsFile:      codec.EncodeBudgets(s.budgets),
	}
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for name, data := range files {
		path := filepath.Join(s.dir, name)
		if err := os.WriteFile(path, []byte(data), 0600); err != nil {
			log.WithError(err).Errorf("Error saving %s", path)
		}
	}

	for _, fn := range listeners {
		fn()
	}
}

// Flush forces a rewrite of all three files without a mutation, for callers
// that want an explicit save point.
func (s *Store) Flush() {
	s.flushAndNotify()
}
