package api

// Transaction is a single ledger entry as returned by the backend.
// The sign of Amount is the only income/expense discriminator:
// negative amounts are expenses, non-negative amounts are income.
type Transaction struct {
	ID          int      `json:"id"`
	Date        Date     `json:"date"`
	Amount      float64  `json:"amount"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Currency    string   `json:"currency"`
	AccountID   *int     `json:"account_id,omitempty"`
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}

type TransactionCreate struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        *Date   `json:"date,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	AccountID   *int    `json:"account_id,omitempty"`
}

// TransactionUpdate is a partial update; nil fields are left untouched.
type TransactionUpdate struct {
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Date        *Date    `json:"date,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
}

// AccountType tags an account with its kind.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCash       AccountType = "cash"
	AccountCredit     AccountType = "credit"
	AccountInvestment AccountType = "investment"
	AccountOther      AccountType = "other"
)

// Account balances are derived by the backend; this client never
// computes them.
type Account struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Type           AccountType `json:"account_type"`
	Currency       string      `json:"currency"`
	CurrentBalance float64     `json:"current_balance"`
	IsActive       bool        `json:"is_active"`
}

type AccountCreate struct {
	Name           string      `json:"name"`
	Type           AccountType `json:"account_type"`
	Currency       string      `json:"currency,omitempty"`
	InitialBalance float64     `json:"initial_balance"`
}

type AccountUpdate struct {
	Name     *string      `json:"name,omitempty"`
	Type     *AccountType `json:"account_type,omitempty"`
	IsActive *bool        `json:"is_active,omitempty"`
}

// CategoryType restricts a category to one side of the ledger.
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
)

type Category struct {
	ID    int          `json:"id"`
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Color string       `json:"color,omitempty"`
}

type CategoryCreate struct {
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Color string       `json:"color,omitempty"`
}

// MonthlyData is one month of the dashboard's year view.
type MonthlyData struct {
	Month    string  `json:"month"`
	NetWorth float64 `json:"netWorth"`
	Expenses float64 `json:"expenses"`
	Income   float64 `json:"income"`
	Net      float64 `json:"net"`
}

type AccountBreakdown struct {
	Liquidity   float64 `json:"liquidity"`
	Investments float64 `json:"investments"`
	OtherAssets float64 `json:"otherAssets"`
}

type FinancialData struct {
	Year             int              `json:"year"`
	CurrentNetWorth  float64          `json:"currentNetWorth"`
	NetSavings       float64          `json:"netSavings"`
	MonthlyData      []MonthlyData    `json:"monthlyData"`
	AccountBreakdown AccountBreakdown `json:"accountBreakdown"`
}

// UploadResult reports what the backend did with an uploaded statement.
type UploadResult struct {
	Success               bool     `json:"success"`
	Message               string   `json:"message"`
	TransactionsProcessed int      `json:"transactions_processed"`
	TransactionsAdded     int      `json:"transactions_added"`
	TransactionsSkipped   int      `json:"transactions_skipped"`
	Transactions          []string `json:"transactions"`
}
