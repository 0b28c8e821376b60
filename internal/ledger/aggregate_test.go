package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneta/internal/api"
	"moneta/internal/ledger"
)

func tx(id int, date string, amount float64, category string) api.Transaction {
	d, err := api.ParseDate(date)
	if err != nil {
		panic(err)
	}

	return api.Transaction{
		ID:       id,
		Date:     d,
		Amount:   amount,
		Category: category,
		Currency: "EUR",
	}
}

func txOnAccount(id int, date string, amount float64, category string, accountID int) api.Transaction {
	t := tx(id, date, amount, category)
	t.AccountID = &accountID

	return t
}

func TestGroupByMonth_Scenario(t *testing.T) {
	transactions := []api.Transaction{
		tx(1, "2026-01-15", -50, "Food"),
		tx(2, "2026-01-02", 2000, "Salary"),
		tx(3, "2025-12-20", -30, "Food"),
	}

	groups := ledger.GroupByMonth(transactions, ledger.NewFilters())
	require.Len(t, groups, 2)

	january := groups[0]
	assert.Equal(t, "January 2026", january.Month)
	assert.Equal(t, "2026-01", january.Key)
	assert.Equal(t, 50.0, january.TotalExpenses)
	assert.Equal(t, 2000.0, january.TotalIncome)
	assert.Equal(t, 1950.0, january.Net)
	require.Len(t, january.Transactions, 2)
	assert.Equal(t, 1, january.Transactions[0].ID)
	assert.Equal(t, 2, january.Transactions[1].ID)

	december := groups[1]
	assert.Equal(t, "December 2025", december.Month)
	assert.Equal(t, "2025-12", december.Key)
	assert.Equal(t, 30.0, december.TotalExpenses)
	assert.Equal(t, 0.0, december.TotalIncome)
	assert.Equal(t, -30.0, december.Net)
}

func TestGroupByMonth_EmptyInput(t *testing.T) {
	groups := ledger.GroupByMonth(nil, ledger.NewFilters())
	assert.Empty(t, groups)

	filtered := ledger.NewFilters().AddCategory("Food").WithFlow(ledger.FlowExpense)
	groups = ledger.GroupByMonth([]api.Transaction{}, filtered)
	assert.Empty(t, groups)
}

func TestGroupByMonth_FilterClauses(t *testing.T) {
	start := api.NewDate(2026, 1, 1)
	end := api.NewDate(2026, 1, 31)

	transactions := []api.Transaction{
		txOnAccount(1, "2026-01-15", -50, "Food", 1),
		txOnAccount(2, "2026-01-10", -20, "Transport", 2),
		tx(3, "2026-01-05", 2000, "Salary"), // no account id
		txOnAccount(4, "2026-02-03", -75, "Food", 1),
		txOnAccount(5, "2025-12-30", -10, "Food", 1),
	}

	tests := []struct {
		name    string
		filters ledger.Filters
		wantIDs []int
	}{
		{
			name:    "no restriction keeps everything",
			filters: ledger.NewFilters(),
			wantIDs: []int{4, 1, 2, 3, 5},
		},
		{
			name:    "expense flow drops income",
			filters: ledger.NewFilters().WithFlow(ledger.FlowExpense),
			wantIDs: []int{4, 1, 2, 5},
		},
		{
			name:    "income flow keeps non-negative amounts",
			filters: ledger.NewFilters().WithFlow(ledger.FlowIncome),
			wantIDs: []int{3},
		},
		{
			name:    "account filter keeps members and account-less transactions",
			filters: ledger.NewFilters().AddAccount(1),
			wantIDs: []int{4, 1, 3, 5},
		},
		{
			name:    "account filter is an OR over the selected set",
			filters: ledger.NewFilters().AddAccount(1).AddAccount(2),
			wantIDs: []int{4, 1, 2, 3, 5},
		},
		{
			name:    "category filter",
			filters: ledger.NewFilters().AddCategory("Food"),
			wantIDs: []int{4, 1, 5},
		},
		{
			name:    "start bound is inclusive",
			filters: ledger.NewFilters().WithStart(&start),
			wantIDs: []int{4, 1, 2, 3},
		},
		{
			name:    "end bound is inclusive",
			filters: ledger.NewFilters().WithEnd(&end),
			wantIDs: []int{1, 2, 3, 5},
		},
		{
			name: "all dimensions compose with AND",
			filters: ledger.NewFilters().
				WithFlow(ledger.FlowExpense).
				AddAccount(1).
				AddCategory("Food").
				WithStart(&start).
				WithEnd(&end),
			wantIDs: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int

			for _, group := range ledger.GroupByMonth(transactions, tt.filters) {
				for _, member := range group.Transactions {
					got = append(got, member.ID)
				}
			}

			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestGroupByMonth_StableSortOnEqualDates(t *testing.T) {
	transactions := []api.Transaction{
		tx(10, "2026-03-05", -5, "Food"),
		tx(11, "2026-03-05", -6, "Food"),
		tx(12, "2026-03-05", -7, "Food"),
	}

	groups := ledger.GroupByMonth(transactions, ledger.NewFilters())
	require.Len(t, groups, 1)

	got := make([]int, 0, 3)
	for _, member := range groups[0].Transactions {
		got = append(got, member.ID)
	}

	assert.Equal(t, []int{10, 11, 12}, got)
}

func TestGroupByMonth_GroupingComplete(t *testing.T) {
	transactions := []api.Transaction{
		tx(1, "2026-01-15", -50, "Food"),
		tx(2, "2025-11-02", 100, "Salary"),
		tx(3, "2026-01-02", 2000, "Salary"),
		tx(4, "2025-12-20", -30, "Food"),
		tx(5, "2025-11-20", -3, "Food"),
	}

	filters := ledger.NewFilters().AddCategory("Food").AddCategory("Salary")
	groups := ledger.GroupByMonth(transactions, filters)

	seen := make(map[int]int)
	for _, group := range groups {
		for _, member := range group.Transactions {
			seen[member.ID]++
		}
	}

	// Every filtered transaction lands in exactly one group.
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 1, 5: 1}, seen)

	// Month groups come out most-recent-first.
	keys := make([]string, 0, len(groups))
	for _, group := range groups {
		keys = append(keys, group.Key)
	}

	assert.Equal(t, []string{"2026-01", "2025-12", "2025-11"}, keys)
}

func TestGroupByMonth_AggregateInvariants(t *testing.T) {
	transactions := []api.Transaction{
		tx(1, "2026-01-15", -50.25, "Food"),
		tx(2, "2026-01-14", -0.75, "Food"),
		tx(3, "2026-01-02", 2000, "Salary"),
		tx(4, "2026-01-01", 0, "Salary"), // zero counts as income
	}

	groups := ledger.GroupByMonth(transactions, ledger.NewFilters())
	require.Len(t, groups, 1)

	group := groups[0]
	assert.GreaterOrEqual(t, group.TotalExpenses, 0.0)
	assert.GreaterOrEqual(t, group.TotalIncome, 0.0)
	assert.InDelta(t, 51.0, group.TotalExpenses, 1e-9)
	assert.InDelta(t, 2000.0, group.TotalIncome, 1e-9)
	assert.InDelta(t, group.TotalIncome-group.TotalExpenses, group.Net, 1e-9)
}

func TestGroupByMonth_DoesNotMutateInput(t *testing.T) {
	transactions := []api.Transaction{
		tx(1, "2026-01-02", 2000, "Salary"),
		tx(2, "2026-01-15", -50, "Food"),
	}

	_ = ledger.GroupByMonth(transactions, ledger.NewFilters())

	// Input order is untouched even though the output is date-descending.
	assert.Equal(t, 1, transactions[0].ID)
	assert.Equal(t, 2, transactions[1].ID)
}

func TestOverview(t *testing.T) {
	accounts := []api.Account{
		{ID: 1, Name: "Checking", Type: api.AccountChecking, CurrentBalance: 100, IsActive: true},
		{ID: 2, Name: "Savings", Type: api.AccountSavings, CurrentBalance: 500, IsActive: true},
		{ID: 3, Name: "Old checking", Type: api.AccountChecking, CurrentBalance: 25, IsActive: true},
		{ID: 4, Name: "Closed", Type: api.AccountCash, CurrentBalance: 999, IsActive: false},
	}

	overview := ledger.Overview(accounts)

	assert.Equal(t, 625.0, overview.TotalBalance)
	require.Len(t, overview.AccountsByType, 2)
	assert.Equal(t, api.AccountChecking, overview.AccountsByType[0].Type)
	assert.Equal(t, 2, overview.AccountsByType[0].Count)
	assert.Equal(t, 125.0, overview.AccountsByType[0].TotalBalance)
	assert.Equal(t, api.AccountSavings, overview.AccountsByType[1].Type)
}
