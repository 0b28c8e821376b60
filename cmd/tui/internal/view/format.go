package view

import (
	"fmt"

	"moneta/internal/api"
)

// FormatAmount renders a monetary amount with two decimals.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// ParseOptionalDate parses a YYYY-MM-DD field, treating blank as unset.
func ParseOptionalDate(s string) (*api.Date, error) {
	if s == "" {
		return nil, nil
	}

	d, err := api.ParseDate(s)
	if err != nil {
		return nil, err
	}

	return &d, nil
}
