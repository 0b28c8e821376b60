// Package statement parses bank statement CSV files locally, so the
// upload flow can show what a file contains before it is sent to the
// backend, and so the stub backend can process uploads the same way.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"moneta/internal/api"
)

// Record is one parsed statement line.
type Record struct {
	Date        api.Date
	Amount      float64
	Category    string
	Description string
	Currency    string
}

// RowError reports a statement line that could not be parsed.
// Line numbers are 1-based positions in the original file.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

// Preview is the result of parsing a statement: every well-formed row
// plus an explicit account of the rows that were not.
type Preview struct {
	Records []Record
	Errors  []RowError
}

// Rows is the number of data rows scanned, well-formed or not.
func (p *Preview) Rows() int {
	return len(p.Records) + len(p.Errors)
}

// Expected header columns. Category, description and currency are
// optional; date and amount are not.
const (
	colDate        = "date"
	colAmount      = "amount"
	colCategory    = "category"
	colDescription = "description"
	colCurrency    = "currency"
)

// Parse reads a statement CSV with a `date,amount[,category,description,
// currency]` header in any column order and any supported charset.
// Malformed rows are collected, never silently dropped; only a missing
// or unusable header fails the whole parse.
func Parse(r io.Reader) (*Preview, error) {
	utf8r, err := decodeUTF8(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty statement")
	}

	cols, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	preview := &Preview{}

	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header

		record, err := parseRow(cols, row)
		if err != nil {
			preview.Errors = append(preview.Errors, RowError{Line: line, Err: err})
			continue
		}

		preview.Records = append(preview.Records, record)
	}

	return preview, nil
}

type columns map[string]int

func mapHeader(header []string) (columns, error) {
	cols := make(columns, len(header))

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			cols[name] = i
		}
	}

	for _, required := range []string{colDate, colAmount} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("statement header is missing the %q column", required)
		}
	}

	return cols, nil
}

func parseRow(cols columns, row []string) (Record, error) {
	date, err := api.ParseDate(cell(row, cols, colDate))
	if err != nil {
		return Record{}, err
	}

	amount, err := parseAmount(cell(row, cols, colAmount))
	if err != nil {
		return Record{}, err
	}

	return Record{
		Date:        date,
		Amount:      amount,
		Category:    cell(row, cols, colCategory),
		Description: cell(row, cols, colDescription),
		Currency:    cell(row, cols, colCurrency),
	}, nil
}

// parseAmount accepts both "1234.56" and the European "1.234,56" form.
func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing amount")
	}

	clean := s
	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d.InexactFloat64(), nil
}

func cell(row []string, cols columns, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
