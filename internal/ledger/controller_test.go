package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"moneta/internal/api"
	"moneta/internal/ledger"
)

func TestController_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := ledger.NewMockClient(ctrl)
	c := ledger.NewController(client)

	assert.Equal(t, ledger.StateIdle, c.State())

	txs := []api.Transaction{tx(1, "2026-01-15", -50, "Food")}
	accounts := []api.Account{{ID: 1, Name: "Checking", Type: api.AccountChecking, IsActive: true}}
	categories := []api.Category{{ID: 1, Name: "Food", Type: api.CategoryExpense}}

	client.EXPECT().ListTransactions(gomock.Any(), api.ListTransactionsOptions{}).Return(txs, nil)
	client.EXPECT().ListAccounts(gomock.Any()).Return(accounts, nil)
	client.EXPECT().ListCategories(gomock.Any(), api.CategoryType("")).Return(categories, nil)

	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, ledger.StateLoaded, c.State())
	assert.Empty(t, c.Warnings())
	assert.Equal(t, txs, c.Transactions())
	assert.Equal(t, accounts, c.Accounts())
	assert.Equal(t, categories, c.Categories())
}

func TestController_LoadTransactionsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := ledger.NewMockClient(ctrl)
	c := ledger.NewController(client)

	boom := errors.New("connection refused")
	client.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, boom)

	err := c.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, ledger.StateFailed, c.State())
	assert.ErrorIs(t, c.LoadErr(), boom)
}

func TestController_LoadReferenceDataFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := ledger.NewMockClient(ctrl)
	c := ledger.NewController(client)

	client.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return([]api.Transaction{}, nil)
	client.EXPECT().ListAccounts(gomock.Any()).Return(nil, errors.New("503"))
	client.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return(nil, errors.New("503"))

	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, ledger.StateLoaded, c.State())
	assert.Len(t, c.Warnings(), 2)
	assert.Empty(t, c.Accounts())
	// Category picker still works, on the default set.
	assert.NotEmpty(t, c.Categories())
}

func TestController_AddTransactionPrepends(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := ledger.NewMockClient(ctrl)
	c := ledger.NewController(client)

	loadController(t, c, client, []api.Transaction{tx(1, "2026-01-02", 2000, "Salary")})

	created := tx(2, "2026-01-15", -50, "Food")
	client.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(&created, nil)

	got, err := c.AddTransaction(context.Background(), api.TransactionCreate{Amount: -50, Category: "Food"})
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)

	require.Len(t, c.Transactions(), 2)
	assert.Equal(t, 2, c.Transactions()[0].ID)
}

func TestController_MutationFailureLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := ledger.NewMockClient(ctrl)
	c := ledger.NewController(client)

	loadController(t, c, client, []api.Transaction{tx(1, "2026-01-02", 2000, "Salary")})

	boom := errors.New("500")
	client.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil, boom)
	client.EXPECT().DeleteTransaction(gomock.Any(), 1).Return(boom)

	_, err := c.AddTransaction(context.Background(), api.TransactionCreate{})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, c.Transactions(), 1)

	err = c.DeleteTransaction(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, c.Transactions(), 1)
}

func TestController_UpdateAndDeleteTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := ledger.NewMockClient(ctrl)
	c := ledger.NewController(client)

	loadController(t, c, client, []api.Transaction{
		tx(1, "2026-01-02", 2000, "Salary"),
		tx(2, "2026-01-15", -50, "Food"),
	})

	updated := tx(2, "2026-01-15", -60, "Food")
	client.EXPECT().UpdateTransaction(gomock.Any(), 2, gomock.Any()).Return(&updated, nil)

	amount := -60.0
	_, err := c.UpdateTransaction(context.Background(), 2, api.TransactionUpdate{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, -60.0, c.Transactions()[1].Amount)

	client.EXPECT().DeleteTransaction(gomock.Any(), 1).Return(nil)
	require.NoError(t, c.DeleteTransaction(context.Background(), 1))

	require.Len(t, c.Transactions(), 1)
	assert.Equal(t, 2, c.Transactions()[0].ID)
}

func TestController_FilterCommandsFeedGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := ledger.NewMockClient(ctrl)
	c := ledger.NewController(client)

	loadController(t, c, client, []api.Transaction{
		tx(1, "2026-01-15", -50, "Food"),
		tx(2, "2026-01-02", 2000, "Salary"),
		tx(3, "2025-12-20", -30, "Food"),
	})

	c.SetFlow(ledger.FlowExpense)
	c.ToggleCategoryFilter("Food")

	groups := c.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, 50.0, groups[0].TotalExpenses)
	assert.Equal(t, 0.0, groups[0].TotalIncome)

	c.ResetFilters()
	groups = c.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, 2000.0, groups[0].TotalIncome)
}

func TestController_AccountLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := ledger.NewMockClient(ctrl)
	c := ledger.NewController(client)

	loadController(t, c, client, nil)

	created := api.Account{ID: 5, Name: "New savings", Type: api.AccountSavings, IsActive: true}
	client.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(&created, nil)

	_, err := c.AddAccount(context.Background(), api.AccountCreate{Name: "New savings", Type: api.AccountSavings})
	require.NoError(t, err)
	require.Len(t, c.Accounts(), 1)
	assert.Equal(t, "New savings", c.AccountName(5))

	renamed := created
	renamed.Name = "Holiday fund"
	client.EXPECT().UpdateAccount(gomock.Any(), 5, gomock.Any()).Return(&renamed, nil)

	name := "Holiday fund"
	_, err = c.UpdateAccount(context.Background(), 5, api.AccountUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Holiday fund", c.Accounts()[0].Name)

	client.EXPECT().DeleteAccount(gomock.Any(), 5).Return(nil)
	require.NoError(t, c.DeleteAccount(context.Background(), 5))
	assert.Empty(t, c.Accounts())
}

func loadController(t *testing.T, c *ledger.Controller, client *ledger.MockClient, txs []api.Transaction) {
	t.Helper()

	client.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(txs, nil)
	client.EXPECT().ListAccounts(gomock.Any()).Return(nil, nil)
	client.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return(nil, nil)

	require.NoError(t, c.Load(context.Background()))
}
