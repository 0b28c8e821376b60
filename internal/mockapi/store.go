package mockapi

import (
	"slices"
	"sync"
	"time"

	"moneta/internal/api"
	"moneta/internal/demo"
	"moneta/internal/statement"
)

// Store is the stub backend's process-local state. It exists so the
// dashboard can be developed and tested without the real service; nothing
// survives a restart.
type Store struct {
	mu sync.Mutex

	transactions []api.Transaction
	accounts     []api.Account
	categories   []api.Category

	nextTransactionID int
	nextAccountID     int
	nextCategoryID    int
}

// NewStore returns a store seeded with the demo dataset.
func NewStore() *Store {
	s := &Store{
		transactions: demo.Transactions(),
		accounts:     demo.Accounts(),
		categories:   demo.Categories(),
	}

	for _, tx := range s.transactions {
		s.nextTransactionID = max(s.nextTransactionID, tx.ID)
	}

	for _, account := range s.accounts {
		s.nextAccountID = max(s.nextAccountID, account.ID)
	}

	for _, category := range s.categories {
		s.nextCategoryID = max(s.nextCategoryID, category.ID)
	}

	return s
}

// transactionQuery mirrors the listing's optional query parameters.
type transactionQuery struct {
	Category  string
	StartDate *api.Date
	EndDate   *api.Date
}

func (s *Store) ListTransactions(q transactionQuery) []api.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]api.Transaction, 0, len(s.transactions))

	for _, tx := range s.transactions {
		if q.Category != "" && tx.Category != q.Category {
			continue
		}

		if q.StartDate != nil && tx.Date.Before(q.StartDate.Time) {
			continue
		}

		if q.EndDate != nil && tx.Date.After(q.EndDate.Time) {
			continue
		}

		out = append(out, tx)
	}

	return out
}

func (s *Store) CreateTransaction(data api.TransactionCreate) api.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertTransaction(data)
}

// insertTransaction assumes s.mu is held.
func (s *Store) insertTransaction(data api.TransactionCreate) api.Transaction {
	s.nextTransactionID++

	date := api.Today()
	if data.Date != nil {
		date = *data.Date
	}

	currency := data.Currency
	if currency == "" {
		currency = "EUR"
	}

	tx := api.Transaction{
		ID:          s.nextTransactionID,
		Date:        date,
		Amount:      data.Amount,
		Category:    data.Category,
		Description: data.Description,
		Currency:    currency,
		AccountID:   data.AccountID,
	}

	s.transactions = append(s.transactions, tx)

	return tx
}

func (s *Store) UpdateTransaction(id int, data api.TransactionUpdate) (api.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}

		tx := &s.transactions[i]

		if data.Amount != nil {
			tx.Amount = *data.Amount
		}

		if data.Category != nil {
			tx.Category = *data.Category
		}

		if data.Description != nil {
			tx.Description = *data.Description
		}

		if data.Date != nil {
			tx.Date = *data.Date
		}

		if data.Currency != nil {
			tx.Currency = *data.Currency
		}

		return *tx, true
	}

	return api.Transaction{}, false
}

func (s *Store) DeleteTransaction(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.transactions)
	s.transactions = slices.DeleteFunc(s.transactions, func(tx api.Transaction) bool {
		return tx.ID == id
	})

	return len(s.transactions) < before
}

// ImportStatement adds parsed statement records, skipping entries that
// duplicate an existing transaction on (date, amount, description).
func (s *Store) ImportStatement(records []statement.Record) (added, skipped []api.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type dupKey struct {
		Date        string
		Amount      float64
		Description string
	}

	seen := make(map[dupKey]bool, len(s.transactions))
	for _, tx := range s.transactions {
		seen[dupKey{tx.Date.String(), tx.Amount, tx.Description}] = true
	}

	for _, record := range records {
		key := dupKey{record.Date.String(), record.Amount, record.Description}
		if seen[key] {
			skipped = append(skipped, api.Transaction{
				Date:        record.Date,
				Amount:      record.Amount,
				Description: record.Description,
			})

			continue
		}

		seen[key] = true

		date := record.Date
		added = append(added, s.insertTransaction(api.TransactionCreate{
			Amount:      record.Amount,
			Category:    record.Category,
			Description: record.Description,
			Date:        &date,
			Currency:    record.Currency,
		}))
	}

	return added, skipped
}

func (s *Store) ListAccounts() []api.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.accounts)
}

func (s *Store) GetAccount(id int) (api.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.ID == id {
			return account, true
		}
	}

	return api.Account{}, false
}

func (s *Store) CreateAccount(data api.AccountCreate) api.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAccountID++

	currency := data.Currency
	if currency == "" {
		currency = "EUR"
	}

	account := api.Account{
		ID:             s.nextAccountID,
		Name:           data.Name,
		Type:           data.Type,
		Currency:       currency,
		CurrentBalance: data.InitialBalance,
		IsActive:       true,
	}

	s.accounts = append(s.accounts, account)

	return account
}

func (s *Store) UpdateAccount(id int, data api.AccountUpdate) (api.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID != id {
			continue
		}

		account := &s.accounts[i]

		if data.Name != nil {
			account.Name = *data.Name
		}

		if data.Type != nil {
			account.Type = *data.Type
		}

		if data.IsActive != nil {
			account.IsActive = *data.IsActive
		}

		return *account, true
	}

	return api.Account{}, false
}

func (s *Store) DeleteAccount(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.accounts)
	s.accounts = slices.DeleteFunc(s.accounts, func(account api.Account) bool {
		return account.ID == id
	})

	return len(s.accounts) < before
}

func (s *Store) ListCategories(categoryType api.CategoryType) []api.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]api.Category, 0, len(s.categories))

	for _, category := range s.categories {
		if categoryType != "" && category.Type != categoryType {
			continue
		}

		out = append(out, category)
	}

	return out
}

func (s *Store) CreateCategory(data api.CategoryCreate) api.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCategoryID++

	category := api.Category{
		ID:    s.nextCategoryID,
		Name:  data.Name,
		Type:  data.Type,
		Color: data.Color,
	}

	s.categories = append(s.categories, category)

	return category
}

// FinancialData assembles the dashboard payload for a year: the seeded
// net-worth curve, with income/expense columns recomputed from stored
// transactions for months that have any, and the headline numbers derived
// from current account balances.
func (s *Store) FinancialData(year int) api.FinancialData {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := demo.FinancialData(year)

	type sums struct {
		expenses float64
		income   float64
	}

	byMonth := make(map[time.Month]sums)

	for _, tx := range s.transactions {
		if tx.Date.Year() != year {
			continue
		}

		entry := byMonth[tx.Date.Month()]
		if tx.Amount < 0 {
			entry.expenses += -tx.Amount
		} else {
			entry.income += tx.Amount
		}

		byMonth[tx.Date.Month()] = entry
	}

	var netSavings float64

	for i := range data.MonthlyData {
		if entry, ok := byMonth[time.Month(i+1)]; ok {
			data.MonthlyData[i].Expenses = entry.expenses
			data.MonthlyData[i].Income = entry.income
			data.MonthlyData[i].Net = entry.income - entry.expenses
		}

		netSavings += data.MonthlyData[i].Net
	}

	data.NetSavings = netSavings

	var netWorth float64

	for _, account := range s.accounts {
		if account.IsActive {
			netWorth += account.CurrentBalance
		}
	}

	data.CurrentNetWorth = netWorth

	return data
}
