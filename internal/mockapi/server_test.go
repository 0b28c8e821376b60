package mockapi_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneta/internal/api"
	"moneta/internal/mockapi"
)

// newClient spins up the stub backend and points the real API client at
// it, so these tests exercise both sides of the wire contract.
func newClient(t *testing.T) *api.Client {
	t.Helper()

	ts := httptest.NewServer(mockapi.NewServer(mockapi.NewStore()).Handler())
	t.Cleanup(ts.Close)

	return api.New(ts.URL)
}

func TestTransactionLifecycle(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	date := api.NewDate(2026, 3, 1)
	created, err := client.CreateTransaction(ctx, api.TransactionCreate{
		Amount:      -15.90,
		Category:    "Food & Dining",
		Description: "Pizza night",
		Date:        &date,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "EUR", created.Currency)

	amount := -18.90
	updated, err := client.UpdateTransaction(ctx, created.ID, api.TransactionUpdate{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, -18.90, updated.Amount)
	assert.Equal(t, "Pizza night", updated.Description)

	txs, err := client.ListTransactions(ctx, api.ListTransactionsOptions{Category: "Food & Dining"})
	require.NoError(t, err)

	for _, tx := range txs {
		assert.Equal(t, "Food & Dining", tx.Category)
	}

	require.NoError(t, client.DeleteTransaction(ctx, created.ID))

	err = client.DeleteTransaction(ctx, created.ID)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "transaction not found", apiErr.Message)
}

func TestListTransactions_DateRange(t *testing.T) {
	client := newClient(t)

	start := api.NewDate(2026, 1, 1)
	end := api.NewDate(2026, 1, 31)

	txs, err := client.ListTransactions(context.Background(), api.ListTransactionsOptions{
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)
	require.NotEmpty(t, txs)

	for _, tx := range txs {
		assert.Equal(t, "2026-01", tx.Date.MonthKey())
	}
}

func TestCreateTransaction_ValidationErrors(t *testing.T) {
	client := newClient(t)

	_, err := client.CreateTransaction(context.Background(), api.TransactionCreate{Amount: -5})

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)

	msg, ok := apiErr.FieldError("category")
	assert.True(t, ok)
	assert.Equal(t, "field required", msg)

	_, ok = apiErr.FieldError("description")
	assert.True(t, ok)
}

func TestAccountValidationAndLifecycle(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	_, err := client.CreateAccount(ctx, api.AccountCreate{Name: "Broken", Type: "piggy-bank"})

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	msg, ok := apiErr.FieldError("account_type")
	assert.True(t, ok)
	assert.Equal(t, "unknown account type", msg)

	created, err := client.CreateAccount(ctx, api.AccountCreate{
		Name:           "Emergency fund",
		Type:           api.AccountSavings,
		InitialBalance: 1000,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, 1000.0, created.CurrentBalance)

	fetched, err := client.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)

	inactive := false
	updated, err := client.UpdateAccount(ctx, created.ID, api.AccountUpdate{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	require.NoError(t, client.DeleteAccount(ctx, created.ID))
}

func TestListCategories_ScopedByType(t *testing.T) {
	client := newClient(t)

	income, err := client.ListCategories(context.Background(), api.CategoryIncome)
	require.NoError(t, err)
	require.NotEmpty(t, income)

	for _, category := range income {
		assert.Equal(t, api.CategoryIncome, category.Type)
	}

	_, err = client.ListCategories(context.Background(), "savings")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
}

func TestFinancialData_ReflectsStoredTransactions(t *testing.T) {
	client := newClient(t)

	data, err := client.GetFinancialData(context.Background(), 2026)
	require.NoError(t, err)

	assert.Equal(t, 2026, data.Year)
	require.Len(t, data.MonthlyData, 12)

	// January has seeded transactions: 2000 salary, 52.30 + 30 expenses.
	january := data.MonthlyData[0]
	assert.InDelta(t, 82.30, january.Expenses, 1e-9)
	assert.InDelta(t, 2000.0, january.Income, 1e-9)
	assert.InDelta(t, january.Income-january.Expenses, january.Net, 1e-9)

	// Net worth mirrors the active account balances.
	accounts, err := client.ListAccounts(context.Background())
	require.NoError(t, err)

	var total float64
	for _, account := range accounts {
		if account.IsActive {
			total += account.CurrentBalance
		}
	}

	assert.InDelta(t, total, data.CurrentNetWorth, 1e-9)
}

func TestUploadStatement_AddsAndSkips(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	csv := `date,amount,category,description
2026-04-01,-9.90,Entertainment,Streaming
2026-04-02,-3.20,Food & Dining,Espresso
bad-date,-1,Food & Dining,Broken row
`

	result, err := client.UploadStatement(ctx, "statement.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.TransactionsProcessed)
	assert.Equal(t, 2, result.TransactionsAdded)
	assert.Equal(t, 1, result.TransactionsSkipped)
	assert.Equal(t, []string{"Streaming", "Espresso"}, result.Transactions)

	// A second upload of the same file only skips.
	result, err = client.UploadStatement(ctx, "statement.csv", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 0, result.TransactionsAdded)
	assert.Equal(t, 3, result.TransactionsSkipped)

	_, err = client.UploadStatement(ctx, "empty.csv", strings.NewReader(""))
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
}
