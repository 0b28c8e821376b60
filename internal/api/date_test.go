package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2026-01-15")
	require.NoError(t, err)

	assert.Equal(t, "2026-01-15", d.String())
	assert.Equal(t, "2026-01", d.MonthKey())
	assert.Equal(t, "January 2026", d.MonthLabel())

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-01-15"`, string(raw))

	var parsed Date
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.True(t, parsed.Equal(d.Time))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("15/01/2026")
	assert.Error(t, err)

	_, err = ParseDate("2026-13-40")
	assert.Error(t, err)
}

func TestDate_UnmarshalInsideStruct(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "date": "2025-12-20", "amount": -30, "category": "Food"}`), &tx))

	assert.Equal(t, "2025-12", tx.Date.MonthKey())
	assert.Equal(t, "December 2025", tx.Date.MonthLabel())
}
