package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moneta/internal/api"
	"moneta/internal/ledger"
)

func TestFilters_IdempotentToggles(t *testing.T) {
	f := ledger.NewFilters().AddAccount(1).AddCategory("Food")

	assert.Equal(t, []int{1}, f.AddAccount(1).Accounts())
	assert.Equal(t, []int{1}, f.RemoveAccount(99).Accounts())
	assert.Equal(t, []string{"Food"}, f.AddCategory("Food").Categories())
	assert.Equal(t, []string{"Food"}, f.RemoveCategory("Rent").Categories())

	assert.Empty(t, f.RemoveAccount(1).Accounts())
	assert.Empty(t, f.RemoveCategory("Food").Categories())
}

func TestFilters_ToggleFlips(t *testing.T) {
	f := ledger.NewFilters()

	f = f.ToggleAccount(3)
	assert.True(t, f.HasAccount(3))

	f = f.ToggleAccount(3)
	assert.False(t, f.HasAccount(3))

	f = f.ToggleCategory("Rent")
	assert.True(t, f.HasCategory("Rent"))

	f = f.ToggleCategory("Rent")
	assert.False(t, f.HasCategory("Rent"))
}

func TestFilters_MutatorsProduceCopies(t *testing.T) {
	base := ledger.NewFilters().AddAccount(1)

	widened := base.AddAccount(2)
	narrowed := base.RemoveAccount(1)

	assert.Equal(t, []int{1}, base.Accounts())
	assert.Equal(t, []int{1, 2}, widened.Accounts())
	assert.Empty(t, narrowed.Accounts())

	start := api.NewDate(2026, 1, 1)
	bounded := base.WithStart(&start)

	assert.Nil(t, base.Start())
	assert.NotNil(t, bounded.Start())

	// Mutating the caller's date after the fact must not leak in.
	start = api.NewDate(1999, 1, 1)
	assert.Equal(t, "2026-01-01", bounded.Start().String())
}

func TestFilters_Reset(t *testing.T) {
	end := api.NewDate(2026, 6, 30)
	f := ledger.NewFilters().
		AddAccount(1).
		AddCategory("Food").
		WithFlow(ledger.FlowExpense).
		WithEnd(&end)

	assert.True(t, f.Active())

	f = f.Reset()
	assert.False(t, f.Active())
	assert.Empty(t, f.Accounts())
	assert.Empty(t, f.Categories())
	assert.Nil(t, f.Start())
	assert.Nil(t, f.End())
	assert.Equal(t, ledger.FlowAll, f.Flow())
}

func TestFilters_ZeroValueBehavesLikeDefault(t *testing.T) {
	var f ledger.Filters

	assert.Equal(t, ledger.FlowAll, f.Flow())
	assert.False(t, f.Active())
	assert.True(t, f.Matches(api.Transaction{Date: api.NewDate(2026, 1, 1), Amount: -5}))
}
