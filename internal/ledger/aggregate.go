package ledger

import (
	"slices"

	"moneta/internal/api"
)

// MonthGroup is one calendar month of the filtered ledger, rebuilt from
// scratch on every filter or data change and never mutated in place.
type MonthGroup struct {
	// Month is the display label, e.g. "January 2026".
	Month string
	// Key sorts lexicographically by recency, e.g. "2026-01".
	Key string
	// Transactions holds the month's entries, most recent first.
	Transactions []api.Transaction
	// TotalExpenses is the summed magnitude of negative amounts.
	TotalExpenses float64
	// TotalIncome is the summed magnitude of non-negative amounts.
	TotalIncome float64
	// Net is TotalIncome minus TotalExpenses.
	Net float64
}

// GroupByMonth filters, sorts and buckets transactions into month groups.
//
// The input slice is borrowed read-only: filtering copies into a fresh
// slice before sorting. The filter pass preserves input order; the sort is
// stable descending by date, so same-day entries keep their input order;
// groups come out most-recent-month-first.
func GroupByMonth(transactions []api.Transaction, filters Filters) []MonthGroup {
	filtered := make([]api.Transaction, 0, len(transactions))

	for _, tx := range transactions {
		if filters.Matches(tx) {
			filtered = append(filtered, tx)
		}
	}

	slices.SortStableFunc(filtered, func(a, b api.Transaction) int {
		return b.Date.Compare(a.Date.Time)
	})

	var groups []MonthGroup

	index := make(map[string]int)

	for _, tx := range filtered {
		key := tx.Date.MonthKey()

		i, ok := index[key]
		if !ok {
			groups = append(groups, MonthGroup{
				Month: tx.Date.MonthLabel(),
				Key:   key,
			})
			i = len(groups) - 1
			index[key] = i
		}

		groups[i].Transactions = append(groups[i].Transactions, tx)

		if tx.Amount < 0 {
			groups[i].TotalExpenses += -tx.Amount
		} else {
			groups[i].TotalIncome += tx.Amount
		}
	}

	for i := range groups {
		groups[i].Net = groups[i].TotalIncome - groups[i].TotalExpenses
	}

	return groups
}

// AccountTypeSummary aggregates the accounts of one type.
type AccountTypeSummary struct {
	Type         api.AccountType
	Count        int
	TotalBalance float64
}

// AccountsOverview sums balances across an account collection.
type AccountsOverview struct {
	TotalBalance   float64
	AccountsByType []AccountTypeSummary
}

// Overview aggregates account balances by type, in first-appearance order.
// Inactive accounts are excluded.
func Overview(accounts []api.Account) AccountsOverview {
	var overview AccountsOverview

	index := make(map[api.AccountType]int)

	for _, account := range accounts {
		if !account.IsActive {
			continue
		}

		overview.TotalBalance += account.CurrentBalance

		i, ok := index[account.Type]
		if !ok {
			overview.AccountsByType = append(overview.AccountsByType, AccountTypeSummary{Type: account.Type})
			i = len(overview.AccountsByType) - 1
			index[account.Type] = i
		}

		overview.AccountsByType[i].Count++
		overview.AccountsByType[i].TotalBalance += account.CurrentBalance
	}

	return overview
}
