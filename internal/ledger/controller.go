package ledger

import (
	"context"
	"fmt"
	"slices"

	"moneta/internal/api"
	"moneta/internal/demo"
)

//go:generate mockgen -source=controller.go -destination=client_mock.go -package=ledger
type Client interface {
	ListTransactions(ctx context.Context, opts api.ListTransactionsOptions) ([]api.Transaction, error)
	CreateTransaction(ctx context.Context, data api.TransactionCreate) (*api.Transaction, error)
	UpdateTransaction(ctx context.Context, id int, data api.TransactionUpdate) (*api.Transaction, error)
	DeleteTransaction(ctx context.Context, id int) error

	ListAccounts(ctx context.Context) ([]api.Account, error)
	CreateAccount(ctx context.Context, data api.AccountCreate) (*api.Account, error)
	UpdateAccount(ctx context.Context, id int, data api.AccountUpdate) (*api.Account, error)
	DeleteAccount(ctx context.Context, id int) error

	ListCategories(ctx context.Context, categoryType api.CategoryType) ([]api.Category, error)
	CreateCategory(ctx context.Context, data api.CategoryCreate) (*api.Category, error)
}

// LoadState tracks the controller's load lifecycle.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

// Controller owns the page-level collections (transactions, accounts,
// categories) and the active filter set, funneling every state transition
// through one update path. Local state only changes after the backend
// confirms a mutation.
//
// A Controller belongs to a single event loop and is not safe for
// concurrent use.
type Controller struct {
	client Client

	state    LoadState
	loadErr  error
	warnings []string

	transactions []api.Transaction
	accounts     []api.Account
	categories   []api.Category
	filters      Filters
}

func NewController(client Client) *Controller {
	return &Controller{
		client:  client,
		state:   StateIdle,
		filters: NewFilters(),
	}
}

// Load fetches the transaction ledger and reference data. Transactions are
// required: a failure there leaves the controller in StateFailed. Account
// and category listings degrade to placeholder data with a warning, the
// way the dashboard prefers a partial view over no view.
func (c *Controller) Load(ctx context.Context) error {
	c.state = StateLoading
	c.loadErr = nil
	c.warnings = nil

	txs, err := c.client.ListTransactions(ctx, api.ListTransactionsOptions{})
	if err != nil {
		c.state = StateFailed
		c.loadErr = err

		return fmt.Errorf("loading transactions: %w", err)
	}

	c.transactions = txs

	accounts, err := c.client.ListAccounts(ctx)
	if err != nil {
		c.warnings = append(c.warnings, fmt.Sprintf("accounts unavailable: %v", err))
		accounts = nil
	}

	c.accounts = accounts

	categories, err := c.client.ListCategories(ctx, "")
	if err != nil {
		c.warnings = append(c.warnings, fmt.Sprintf("categories unavailable, using defaults: %v", err))
		categories = demo.Categories()
	}

	c.categories = categories
	c.state = StateLoaded

	return nil
}

func (c *Controller) State() LoadState   { return c.state }
func (c *Controller) LoadErr() error     { return c.loadErr }
func (c *Controller) Warnings() []string { return c.warnings }
func (c *Controller) Filters() Filters   { return c.filters }

func (c *Controller) Transactions() []api.Transaction { return c.transactions }
func (c *Controller) Accounts() []api.Account         { return c.accounts }
func (c *Controller) Categories() []api.Category      { return c.categories }

// AccountName resolves an account id for display.
func (c *Controller) AccountName(id int) string {
	for _, account := range c.accounts {
		if account.ID == id {
			return account.Name
		}
	}

	return fmt.Sprintf("account %d", id)
}

// Groups returns the current filtered, month-grouped view of the ledger.
func (c *Controller) Groups() []MonthGroup {
	return GroupByMonth(c.transactions, c.filters)
}

// Overview returns balance totals for the loaded accounts.
func (c *Controller) Overview() AccountsOverview {
	return Overview(c.accounts)
}

// Filter commands. Each produces a fresh Filters value; callers re-read
// Groups afterwards.

func (c *Controller) ToggleAccountFilter(id int)       { c.filters = c.filters.ToggleAccount(id) }
func (c *Controller) ToggleCategoryFilter(name string) { c.filters = c.filters.ToggleCategory(name) }
func (c *Controller) SetFlow(flow Flow)                { c.filters = c.filters.WithFlow(flow) }
func (c *Controller) SetStartDate(start *api.Date)     { c.filters = c.filters.WithStart(start) }
func (c *Controller) SetEndDate(end *api.Date)         { c.filters = c.filters.WithEnd(end) }
func (c *Controller) ResetFilters()                    { c.filters = c.filters.Reset() }

// AddTransaction creates a transaction and, once the backend confirms,
// prepends it to the local ledger so the newest entry leads the view.
func (c *Controller) AddTransaction(ctx context.Context, data api.TransactionCreate) (*api.Transaction, error) {
	tx, err := c.client.CreateTransaction(ctx, data)
	if err != nil {
		return nil, err
	}

	c.transactions = append([]api.Transaction{*tx}, c.transactions...)

	return tx, nil
}

// UpdateTransaction applies a partial update and patches the local copy
// with the backend's authoritative response.
func (c *Controller) UpdateTransaction(ctx context.Context, id int, data api.TransactionUpdate) (*api.Transaction, error) {
	tx, err := c.client.UpdateTransaction(ctx, id, data)
	if err != nil {
		return nil, err
	}

	for i := range c.transactions {
		if c.transactions[i].ID == id {
			c.transactions[i] = *tx
			break
		}
	}

	return tx, nil
}

// DeleteTransaction removes a transaction locally only after the backend
// confirms the delete.
func (c *Controller) DeleteTransaction(ctx context.Context, id int) error {
	if err := c.client.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	c.transactions = slices.DeleteFunc(c.transactions, func(tx api.Transaction) bool {
		return tx.ID == id
	})

	return nil
}

func (c *Controller) AddAccount(ctx context.Context, data api.AccountCreate) (*api.Account, error) {
	account, err := c.client.CreateAccount(ctx, data)
	if err != nil {
		return nil, err
	}

	c.accounts = append(c.accounts, *account)

	return account, nil
}

func (c *Controller) UpdateAccount(ctx context.Context, id int, data api.AccountUpdate) (*api.Account, error) {
	account, err := c.client.UpdateAccount(ctx, id, data)
	if err != nil {
		return nil, err
	}

	for i := range c.accounts {
		if c.accounts[i].ID == id {
			c.accounts[i] = *account
			break
		}
	}

	return account, nil
}

func (c *Controller) DeleteAccount(ctx context.Context, id int) error {
	if err := c.client.DeleteAccount(ctx, id); err != nil {
		return err
	}

	c.accounts = slices.DeleteFunc(c.accounts, func(account api.Account) bool {
		return account.ID == id
	})

	return nil
}

func (c *Controller) AddCategory(ctx context.Context, data api.CategoryCreate) (*api.Category, error) {
	category, err := c.client.CreateCategory(ctx, data)
	if err != nil {
		return nil, err
	}

	c.categories = append(c.categories, *category)

	return category, nil
}
