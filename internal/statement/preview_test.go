package statement_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneta/internal/statement"
)

func TestParse_WellFormed(t *testing.T) {
	csv := `date,amount,category,description,currency
2026-01-15,-52.30,Food & Dining,Groceries,EUR
2026-01-02,2000,Salary,January salary,EUR
`

	preview, err := statement.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, preview.Records, 2)
	assert.Empty(t, preview.Errors)
	assert.Equal(t, 2, preview.Rows())

	first := preview.Records[0]
	assert.Equal(t, "2026-01-15", first.Date.String())
	assert.Equal(t, -52.30, first.Amount)
	assert.Equal(t, "Food & Dining", first.Category)
	assert.Equal(t, "Groceries", first.Description)
	assert.Equal(t, "EUR", first.Currency)
}

func TestParse_ColumnOrderAndCaseInsensitiveHeader(t *testing.T) {
	csv := `Description,AMOUNT,Date
Coffee,-2.50,2026-02-01
`

	preview, err := statement.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, preview.Records, 1)
	assert.Equal(t, "Coffee", preview.Records[0].Description)
	assert.Equal(t, -2.5, preview.Records[0].Amount)
	assert.Empty(t, preview.Records[0].Category)
}

func TestParse_EuropeanAmounts(t *testing.T) {
	csv := `date,amount,description
2026-01-30,"-588,74",INSTITUTO GESTAO FINA
2026-01-09,"8.608,52",TFI Wise
`

	preview, err := statement.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, preview.Records, 2)
	assert.Equal(t, -588.74, preview.Records[0].Amount)
	assert.Equal(t, 8608.52, preview.Records[1].Amount)
}

func TestParse_MalformedRowsAreReportedNotDropped(t *testing.T) {
	csv := `date,amount,description
2026-01-15,-50,Groceries
not-a-date,-10,Bad date
2026-01-16,abc,Bad amount
2026-01-17,,Missing amount
2026-01-18,12.50,Fine
`

	preview, err := statement.Parse(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Len(t, preview.Records, 2)
	require.Len(t, preview.Errors, 3)
	assert.Equal(t, 5, preview.Rows())

	assert.Equal(t, 3, preview.Errors[0].Line)
	assert.Contains(t, preview.Errors[0].Error(), "row 3")
	assert.Equal(t, 4, preview.Errors[1].Line)
	assert.Equal(t, 5, preview.Errors[2].Line)
}

func TestParse_MissingRequiredHeader(t *testing.T) {
	_, err := statement.Parse(strings.NewReader("amount,description\n-5,Coffee\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"date"`)
}

func TestParse_UTF8BOMStripped(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("date,amount,description\n2026-01-15,-5,Café\n")...)

	preview, err := statement.Parse(bytes.NewReader(input))
	require.NoError(t, err)
	require.Len(t, preview.Records, 1)
	assert.Equal(t, "Café", preview.Records[0].Description)
}

func TestParse_Windows1252Decoded(t *testing.T) {
	// Windows-1252 encoded "Café" (é = 0xE9).
	input := []byte("date,amount,description\n2026-01-15,-5,")
	input = append(input, 'C', 'a', 'f', 0xE9, '\n')

	preview, err := statement.Parse(bytes.NewReader(input))
	require.NoError(t, err)
	require.Len(t, preview.Records, 1)
	assert.Equal(t, "Café", preview.Records[0].Description)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := statement.Parse(strings.NewReader(""))
	assert.Error(t, err)
}
