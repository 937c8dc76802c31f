// Package codec implements the line-oriented flat format used to persist the
// ledger. One record per line, fields joined by '|', amounts with exactly two
// fractional digits, dates as YYYY-MM-DD.
//
// The delimiter is not escaped: a '|' inside a category name or description
// breaks the round-trip. This is a documented limitation of the format, not
// something the codec tries to repair.
package codec

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"fjacquet/fintrack/internal/models"
)

// Delimiter separates fields within a record line.
const Delimiter = "|"

// DateLayout is the calendar date encoding used in transaction records.
const DateLayout = "2006-01-02"

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// EncodeTransactions renders transactions one per line, in input order.
func EncodeTransactions(txns []models.Transaction) string {
	var sb strings.Builder
	for _, t := range txns {
		sb.WriteString(strconv.Itoa(t.ID))
		sb.WriteString(Delimiter)
		sb.WriteString(string(t.Kind))
		sb.WriteString(Delimiter)
		sb.WriteString(t.Amount.StringFixed(2))
		sb.WriteString(Delimiter)
		sb.WriteString(t.Category)
		sb.WriteString(Delimiter)
		sb.WriteString(t.Description)
		sb.WriteString(Delimiter)
		sb.WriteString(t.Date.Format(DateLayout))
		sb.WriteString("\n")
	}
	return sb.String()
}

// DecodeTransactions parses the flat form back into transactions and returns
// the recovered next-ID counter: max(id)+1 over the decoded records, or 1 if
// none decoded. Malformed lines are skipped, never fatal.
func DecodeTransactions(data string) ([]models.Transaction, int) {
	txns := []models.Transaction{}
	maxID := 0
	for _, line := range splitLines(data) {
		parts := strings.Split(line, Delimiter)
		if len(parts) != 6 {
			log.WithField("line", line).Debug("Skipping malformed transaction record")
			continue
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil {
			log.WithField("line", line).Debug("Skipping transaction record with bad id")
			continue
		}
		amount, err := decimal.NewFromString(parts[2])
		if err != nil {
			log.WithField("line", line).Debug("Skipping transaction record with bad amount")
			continue
		}
		date, err := time.Parse(DateLayout, parts[5])
		if err != nil {
			log.WithField("line", line).Debug("Skipping transaction record with bad date")
			continue
		}
		txns = append(txns, models.Transaction{
			ID:          id,
			Kind:        models.Kind(parts[1]),
			Amount:      amount,
			Category:    parts[3],
			Description: parts[4],
			Date:        date,
		})
		if id > maxID {
			maxID = id
		}
	}
	return txns, maxID + 1
}

// EncodeCategories renders categories as name|kind lines.
func EncodeCategories(categories []models.Category) string {
	var sb strings.Builder
	for _, c := range categories {
		sb.WriteString(c.Name)
		sb.WriteString(Delimiter)
		sb.WriteString(string(c.Kind))
		sb.WriteString("\n")
	}
	return sb.String()
}

// DecodeCategories parses name|kind lines; lines with the wrong field count
// are skipped.
func DecodeCategories(data string) []models.Category {
	categories := []models.Category{}
	for _, line := range splitLines(data) {
		parts := strings.Split(line, Delimiter)
		if len(parts) != 2 {
			log.WithField("line", line).Debug("Skipping malformed category record")
			continue
		}
		categories = append(categories, models.Category{
			Name: parts[0],
			Kind: models.Kind(parts[1]),
		})
	}
	return categories
}

// EncodeBudgets renders budgets as category|amount|month|year lines.
func EncodeBudgets(budgets []models.Budget) string {
	var sb strings.Builder
	for _, b := range budgets {
		sb.WriteString(b.Category)
		sb.WriteString(Delimiter)
		sb.WriteString(b.Amount.StringFixed(2))
		sb.WriteString(Delimiter)
		sb.WriteString(strconv.Itoa(b.Month))
		sb.WriteString(Delimiter)
		sb.WriteString(strconv.Itoa(b.Year))
		sb.WriteString("\n")
	}
	return sb.String()
}

// DecodeBudgets parses category|amount|month|year lines; malformed lines are
// skipped.
func DecodeBudgets(data string) []models.Budget {
	budgets := []models.Budget{}
	for _, line := range splitLines(data) {
		parts := strings.Split(line, Delimiter)
		if len(parts) != 4 {
			log.WithField("line", line).Debug("Skipping malformed budget record")
			continue
		}
		amount, err := decimal.NewFromString(parts[1])
		if err != nil {
			log.WithField("line", line).Debug("Skipping budget record with bad amount")
			continue
		}
		month, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}
		year, err := strconv.Atoi(parts[3])
		if err != nil {
			continue
		}
		budgets = append(budgets, models.Budget{
			Category: parts[0],
			Amount:   amount,
			Month:    month,
			Year:     year,
		})
	}
	return budgets
}

// splitLines splits the raw file content into record lines, dropping empty
// lines so a trailing newline does not produce a phantom malformed record.
func splitLines(data string) []string {
	raw := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
