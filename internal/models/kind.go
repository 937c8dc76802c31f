package models

import (
	"fmt"
	"strings"
)

// ParseKind converts a raw string into a Kind. Matching is case-insensitive
// so CLI input like "income" or "EXPENSE" is accepted; anything else is
// rejected at this boundary so the core only ever sees the two variants.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return KindIncome, nil
	case "expense":
		return KindExpense, nil
	default:
		return "", fmt.Errorf("invalid kind %q: must be Income or Expense", s)
	}
}

// IsValid reports whether the kind is one of the two known variants.
func (k Kind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

func (k Kind) String() string {
	return string(k)
}
