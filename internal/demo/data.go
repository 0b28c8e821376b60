// Package demo holds placeholder reference data. It backs two things:
// the fallback shown when a non-critical initial load fails, and the seed
// state of the local stub backend.
package demo

import "moneta/internal/api"

// Categories returns the default category set used when the backend's
// category listing is unavailable.
func Categories() []api.Category {
	return []api.Category{
		{ID: 1, Name: "Food & Dining", Type: api.CategoryExpense},
		{ID: 2, Name: "Transportation", Type: api.CategoryExpense},
		{ID: 3, Name: "Shopping", Type: api.CategoryExpense},
		{ID: 4, Name: "Entertainment", Type: api.CategoryExpense},
		{ID: 5, Name: "Bills & Utilities", Type: api.CategoryExpense},
		{ID: 6, Name: "Healthcare", Type: api.CategoryExpense},
		{ID: 7, Name: "Salary", Type: api.CategoryIncome},
		{ID: 8, Name: "Freelance", Type: api.CategoryIncome},
		{ID: 9, Name: "Investment", Type: api.CategoryIncome},
	}
}

// Accounts returns the stub backend's starting accounts.
func Accounts() []api.Account {
	return []api.Account{
		{ID: 1, Name: "Everyday Checking", Type: api.AccountChecking, Currency: "EUR", CurrentBalance: 3450.25, IsActive: true},
		{ID: 2, Name: "Rainy Day Savings", Type: api.AccountSavings, Currency: "EUR", CurrentBalance: 12800.00, IsActive: true},
		{ID: 3, Name: "Index Funds", Type: api.AccountInvestment, Currency: "EUR", CurrentBalance: 18500.00, IsActive: true},
		{ID: 4, Name: "Wallet", Type: api.AccountCash, Currency: "EUR", CurrentBalance: 85.50, IsActive: true},
	}
}

// Transactions returns the stub backend's starting ledger, spread over a
// few months so the grouped view has something to show.
func Transactions() []api.Transaction {
	checking, wallet := 1, 4

	return []api.Transaction{
		{ID: 1, Date: api.NewDate(2026, 1, 15), Amount: -52.30, Category: "Food & Dining", Description: "Groceries", Currency: "EUR", AccountID: &checking},
		{ID: 2, Date: api.NewDate(2026, 1, 10), Amount: -30.00, Category: "Transportation", Description: "Monthly transit pass", Currency: "EUR", AccountID: &checking},
		{ID: 3, Date: api.NewDate(2026, 1, 2), Amount: 2000.00, Category: "Salary", Description: "January salary", Currency: "EUR", AccountID: &checking},
		{ID: 4, Date: api.NewDate(2025, 12, 28), Amount: -120.00, Category: "Shopping", Description: "Winter boots", Currency: "EUR", AccountID: &wallet},
		{ID: 5, Date: api.NewDate(2025, 12, 20), Amount: -64.99, Category: "Bills & Utilities", Description: "Electricity", Currency: "EUR", AccountID: &checking},
		{ID: 6, Date: api.NewDate(2025, 12, 2), Amount: 2000.00, Category: "Salary", Description: "December salary", Currency: "EUR", AccountID: &checking},
		{ID: 7, Date: api.NewDate(2025, 11, 18), Amount: 350.00, Category: "Freelance", Description: "Site maintenance invoice", Currency: "EUR"},
		{ID: 8, Date: api.NewDate(2025, 11, 7), Amount: -45.80, Category: "Entertainment", Description: "Concert tickets", Currency: "EUR", AccountID: &wallet},
	}
}

// FinancialData returns a year of dashboard aggregates. NetWorth follows a
// fixed upward curve; income/expense columns are placeholders the stub
// backend overrides with real sums when it has transactions for the month.
func FinancialData(year int) api.FinancialData {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	netWorth := []float64{38000, 39200, 40100, 41000, 41800, 42500, 43200, 43900, 44600, 45300, 45800, 45800}
	expenses := []float64{2800, 2600, 3200, 2900, 3100, 2700, 3000, 2800, 2900, 3100, 2800, 3500}
	income := []float64{4500, 3800, 4100, 3800, 3900, 3400, 4000, 3500, 3600, 3800, 3300, 3500}

	monthly := make([]api.MonthlyData, 0, len(months))
	for i, m := range months {
		monthly = append(monthly, api.MonthlyData{
			Month:    m,
			NetWorth: netWorth[i],
			Expenses: expenses[i],
			Income:   income[i],
			Net:      income[i] - expenses[i],
		})
	}

	return api.FinancialData{
		Year:            year,
		CurrentNetWorth: 45800,
		NetSavings:      8200,
		MonthlyData:     monthly,
		AccountBreakdown: api.AccountBreakdown{
			Liquidity:   25000,
			Investments: 18500,
			OtherAssets: 2300,
		},
	}
}
