// Package currencyutils provides amount parsing for raw user input.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`[€$£¥₹\s]`)

// ParseAmount parses a string amount into a decimal value. Currency symbols,
// whitespace and thousands separators are stripped first, so input like
// "$1,234.56" parses cleanly.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	standardized := symbolPattern.ReplaceAllString(amountStr, "")
	// Treat commas as thousands separators when a dot is also present,
	// otherwise as the decimal separator.
	if strings.Contains(standardized, ",") {
		if strings.Contains(standardized, ".") {
			standardized = strings.ReplaceAll(standardized, ",", "")
		} else {
			standardized = strings.ReplaceAll(standardized, ",", ".")
		}
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// ParsePositiveAmount parses an amount and rejects zero or negative values.
// Transactions and budgets only carry positive amounts; the kind carries the
// sign semantics.
func ParsePositiveAmount(amountStr string) (decimal.Decimal, error) {
	amount, err := ParseAmount(amountStr)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", amount)
	}
	return amount, nil
}
