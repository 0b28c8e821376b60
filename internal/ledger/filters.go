package ledger

import (
	"slices"

	"moneta/internal/api"
)

// Flow restricts the ledger view to one side of the ledger, derived from
// the amount sign.
type Flow string

const (
	FlowAll     Flow = "all"
	FlowExpense Flow = "expense"
	FlowIncome  Flow = "income"
)

// Filters is an immutable filter set over a transaction collection.
// Dimensions compose with AND semantics; selections within a dimension
// compose with OR. Every mutator returns a fresh value and never aliases
// the receiver's backing arrays, so old values stay valid snapshots.
type Filters struct {
	accounts   []int
	categories []string
	start      *api.Date
	end        *api.Date
	flow       Flow
}

// NewFilters returns the default, unrestricted filter set.
func NewFilters() Filters {
	return Filters{flow: FlowAll}
}

func (f Filters) Accounts() []int {
	return slices.Clone(f.accounts)
}

func (f Filters) Categories() []string {
	return slices.Clone(f.categories)
}

func (f Filters) Start() *api.Date { return cloneDate(f.start) }
func (f Filters) End() *api.Date   { return cloneDate(f.end) }

func (f Filters) Flow() Flow {
	if f.flow == "" {
		return FlowAll
	}

	return f.flow
}

func (f Filters) HasAccount(id int) bool {
	return slices.Contains(f.accounts, id)
}

func (f Filters) HasCategory(name string) bool {
	return slices.Contains(f.categories, name)
}

// Active reports whether any restriction is in effect.
func (f Filters) Active() bool {
	return len(f.accounts) > 0 || len(f.categories) > 0 ||
		f.start != nil || f.end != nil || f.Flow() != FlowAll
}

// AddAccount selects an account id. Adding a present member is a no-op.
func (f Filters) AddAccount(id int) Filters {
	if f.HasAccount(id) {
		return f.clone()
	}

	next := f.clone()
	next.accounts = append(next.accounts, id)

	return next
}

// RemoveAccount deselects an account id. Removing an absent member is a no-op.
func (f Filters) RemoveAccount(id int) Filters {
	next := f.clone()
	next.accounts = slices.DeleteFunc(next.accounts, func(member int) bool {
		return member == id
	})

	return next
}

// ToggleAccount flips the selection of an account id.
func (f Filters) ToggleAccount(id int) Filters {
	if f.HasAccount(id) {
		return f.RemoveAccount(id)
	}

	return f.AddAccount(id)
}

// AddCategory selects a category name. Adding a present member is a no-op.
func (f Filters) AddCategory(name string) Filters {
	if f.HasCategory(name) {
		return f.clone()
	}

	next := f.clone()
	next.categories = append(next.categories, name)

	return next
}

// RemoveCategory deselects a category name. Removing an absent member is a no-op.
func (f Filters) RemoveCategory(name string) Filters {
	next := f.clone()
	next.categories = slices.DeleteFunc(next.categories, func(member string) bool {
		return member == name
	})

	return next
}

// ToggleCategory flips the selection of a category name.
func (f Filters) ToggleCategory(name string) Filters {
	if f.HasCategory(name) {
		return f.RemoveCategory(name)
	}

	return f.AddCategory(name)
}

func (f Filters) WithFlow(flow Flow) Filters {
	next := f.clone()
	next.flow = flow

	return next
}

// WithStart sets the inclusive lower date bound; nil clears it.
func (f Filters) WithStart(start *api.Date) Filters {
	next := f.clone()
	next.start = cloneDate(start)

	return next
}

// WithEnd sets the inclusive upper date bound; nil clears it.
func (f Filters) WithEnd(end *api.Date) Filters {
	next := f.clone()
	next.end = cloneDate(end)

	return next
}

// Reset drops every restriction.
func (f Filters) Reset() Filters {
	return NewFilters()
}

// Matches reports whether a transaction satisfies every active dimension.
// A transaction with no account id is never excluded by account filtering.
func (f Filters) Matches(tx api.Transaction) bool {
	switch f.Flow() {
	case FlowExpense:
		if tx.Amount >= 0 {
			return false
		}
	case FlowIncome:
		if tx.Amount < 0 {
			return false
		}
	}

	if len(f.accounts) > 0 && tx.AccountID != nil && !f.HasAccount(*tx.AccountID) {
		return false
	}

	if len(f.categories) > 0 && !f.HasCategory(tx.Category) {
		return false
	}

	if f.start != nil && tx.Date.Before(f.start.Time) {
		return false
	}

	if f.end != nil && tx.Date.After(f.end.Time) {
		return false
	}

	return true
}

func (f Filters) clone() Filters {
	return Filters{
		accounts:   slices.Clone(f.accounts),
		categories: slices.Clone(f.categories),
		start:      cloneDate(f.start),
		end:        cloneDate(f.end),
		flow:       f.Flow(),
	}
}

func cloneDate(d *api.Date) *api.Date {
	if d == nil {
		return nil
	}

	copied := *d

	return &copied
}
