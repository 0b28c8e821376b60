package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"moneta/internal/api"
	"moneta/internal/ledger"
)

type accountsState int

const (
	accountsStateBrowse accountsState = iota
	accountsStateForm
	accountsStateConfirmDelete
)

type AccountsModel struct {
	CommonModel
	controller *ledger.Controller

	state accountsState
	table table.Model
	form  *huh.Form

	editingID int
	loading   bool
	status    string

	// Form bindings
	formName    string
	formType    api.AccountType
	formBalance string
	formActive  bool
}

func NewAccountsModel(controller *ledger.Controller) AccountsModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Type", Width: 12},
		{Title: "Balance", Width: 12},
		{Title: "Currency", Width: 8},
		{Title: "Active", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return AccountsModel{
		controller: controller,
		table:      t,
		loading:    true,
	}
}

func (m AccountsModel) Title() string { return "Accounts" }

func (m AccountsModel) ShortHelp() string {
	if m.state != accountsStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "a: add | e: edit | x: delete | r: reload | Esc: back"
}

func (m AccountsModel) Init() tea.Cmd {
	return m.reloadCmd()
}

func (m AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		m.loading = false

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = ""
		m.refreshTable()

		return m, nil

	case accountMutatedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}

		m.state = accountsStateBrowse
		m.form = nil
		m.table.Focus()
		m.refreshTable()

		return m, nil
	}

	switch m.state {
	case accountsStateBrowse:
		return m.updateBrowse(msg)
	case accountsStateForm:
		return m.updateForm(msg)
	case accountsStateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m, nil
}

func (m AccountsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.reloadCmd()
		case "a":
			return m.enterForm(nil)
		case "e":
			if account := m.selectedAccount(); account != nil {
				return m.enterForm(account)
			}
		case "x":
			if account := m.selectedAccount(); account != nil {
				return m.enterConfirmDelete(account)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m AccountsModel) enterForm(account *api.Account) (tea.Model, tea.Cmd) {
	if account == nil {
		m.editingID = 0
		m.formName = ""
		m.formType = api.AccountChecking
		m.formBalance = "0"
		m.formActive = true
	} else {
		m.editingID = account.ID
		m.formName = account.Name
		m.formType = account.Type
		m.formBalance = FormatAmount(account.CurrentBalance)
		m.formActive = account.IsActive
	}

	typeOptions := []huh.Option[api.AccountType]{
		huh.NewOption("Checking", api.AccountChecking),
		huh.NewOption("Savings", api.AccountSavings),
		huh.NewOption("Cash", api.AccountCash),
		huh.NewOption("Credit", api.AccountCredit),
		huh.NewOption("Investment", api.AccountInvestment),
		huh.NewOption("Other", api.AccountOther),
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Name").
			Value(&m.formName).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name cannot be empty")
				}
				return nil
			}),

		huh.NewSelect[api.AccountType]().
			Key("type").
			Title("Type").
			Options(typeOptions...).
			Value(&m.formType),
	}

	if account == nil {
		fields = append(fields, huh.NewInput().
			Key("balance").
			Title("Initial Balance").
			Value(&m.formBalance).
			Validate(func(s string) error {
				_, err := strconv.ParseFloat(s, 64)
				return err
			}))
	} else {
		fields = append(fields, huh.NewConfirm().
			Key("active").
			Title("Active").
			Value(&m.formActive))
	}

	m.form = huh.NewForm(huh.NewGroup(fields...)).WithWidth(45).WithShowHelp(false)
	m.state = accountsStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m AccountsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = accountsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m AccountsModel) enterConfirmDelete(account *api.Account) (tea.Model, tea.Cmd) {
	confirmed := false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete account %q?", account.Name)).
				Value(&confirmed),
		),
	).WithShowHelp(false)

	m.editingID = account.ID
	m.state = accountsStateConfirmDelete
	m.table.Blur()

	return m, m.form.Init()
}

func (m AccountsModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = accountsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.form.GetBool("confirm") {
		m.state = accountsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	return m, m.deleteCmd(m.editingID)
}

func (m AccountsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading accounts...")
	}

	if m.state != accountsStateBrowse && m.form != nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	}

	overview := m.controller.Overview()

	header := fmt.Sprintf("Total Balance: %s", FormatAmount(overview.TotalBalance))

	summaries := make([]string, 0, len(overview.AccountsByType))
	for _, summary := range overview.AccountsByType {
		summaries = append(summaries, fmt.Sprintf("%s: %s", summary.Type, FormatAmount(summary.TotalBalance)))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(header),
		lipgloss.NewStyle().Faint(true).PaddingBottom(1).Render(strings.Join(summaries, " | ")),
		tableView,
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *AccountsModel) refreshTable() {
	accounts := m.controller.Accounts()

	rows := make([]table.Row, 0, len(accounts))
	for _, account := range accounts {
		active := "yes"
		if !account.IsActive {
			active = "no"
		}

		rows = append(rows, table.Row{
			account.Name,
			string(account.Type),
			FormatAmount(account.CurrentBalance),
			account.Currency,
			active,
		})
	}

	m.table.SetRows(rows)
}

func (m AccountsModel) selectedAccount() *api.Account {
	accounts := m.controller.Accounts()

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(accounts) {
		return nil
	}

	return &accounts[idx]
}

// Messages

type accountsLoadedMsg struct {
	err error
}

type accountMutatedMsg struct {
	status string
	err    error
}

func (m AccountsModel) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		return accountsLoadedMsg{err: m.controller.Load(ctx)}
	}
}

func (m AccountsModel) saveCmd() tea.Cmd {
	editingID := m.editingID
	name := m.formName
	accountType := m.formType
	active := m.formActive

	balance, err := strconv.ParseFloat(m.formBalance, 64)
	if err != nil && editingID == 0 {
		return func() tea.Msg { return accountMutatedMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		if editingID == 0 {
			_, err := m.controller.AddAccount(ctx, api.AccountCreate{
				Name:           name,
				Type:           accountType,
				InitialBalance: balance,
			})

			return accountMutatedMsg{status: "Account added.", err: err}
		}

		_, err := m.controller.UpdateAccount(ctx, editingID, api.AccountUpdate{
			Name:     &name,
			Type:     &accountType,
			IsActive: &active,
		})

		return accountMutatedMsg{status: "Account updated.", err: err}
	}
}

func (m AccountsModel) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		err := m.controller.DeleteAccount(ctx, id)

		return accountMutatedMsg{status: "Account deleted.", err: err}
	}
}
