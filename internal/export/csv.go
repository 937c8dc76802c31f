// Package export writes the transaction table to CSV for use in spreadsheet
// tools. This is a convenience over the read-only transaction snapshot; the
// persisted flat files remain the source of truth.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"fjacquet/fintrack/internal/codec"
	"fjacquet/fintrack/internal/models"
)

var log = logrus.New()

// Global CSV delimiter, configurable via config or environment.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// txRow maps one transaction to a CSV row. Amount is a plain two-decimal
// number with no currency symbol or thousands separators.
type txRow struct {
	ID          int    `csv:"ID"`
	Kind        string `csv:"Type"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
	Date        string `csv:"Date"`
}

// WriteTransactionsCSV writes transactions to a CSV file, creating the
// target directory if needed.
func WriteTransactionsCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]txRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, txRow{
			ID:          t.ID,
			Kind:        string(t.Kind),
			Amount:      t.Amount.StringFixed(2),
			Category:    t.Category,
			Description: t.Description,
			Date:        t.Date.Format(codec.DateLayout),
		})
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(rows),
	}).Info("Successfully wrote transactions to CSV file")

	return nil
}
