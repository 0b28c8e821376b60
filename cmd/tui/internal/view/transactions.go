package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"moneta/internal/api"
	"moneta/internal/ledger"
)

type transactionsState int

const (
	transactionsStateBrowse transactionsState = iota
	transactionsStateForm
	transactionsStateTimeframe
	transactionsStateCategories
	transactionsStateAccounts
	transactionsStateConfirmDelete
)

// rowRef addresses one transaction inside the grouped view.
type rowRef struct {
	group int
	tx    int
}

type TransactionsModel struct {
	CommonModel
	controller *ledger.Controller

	state  transactionsState
	groups []ledger.MonthGroup
	rows   []rowRef
	cursor int

	form      *huh.Form
	editingID int
	timeframe TimeframePicker

	loading bool
	status  string

	// Form bindings
	formDate        string
	formAmount      string
	formCategory    string
	formDescription string
	formAccount     int
	formCategorySel []string
	formAccountSel  []int
}

func NewTransactionsModel(controller *ledger.Controller) TransactionsModel {
	return TransactionsModel{
		controller: controller,
		timeframe:  NewTimeframePicker(),
		loading:    true,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }

func (m TransactionsModel) ShortHelp() string {
	switch m.state {
	case transactionsStateForm, transactionsStateConfirmDelete:
		return "Navigate form | Esc: cancel"
	case transactionsStateTimeframe:
		return "Enter: select | Esc: cancel"
	case transactionsStateCategories, transactionsStateAccounts:
		return "Space: toggle | Enter: apply | Esc: cancel"
	}

	return "a: add | e: edit | x: delete | f: flow | t: timeframe | c: categories | n: accounts | R: reset | r: reload | Esc: back"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.reloadCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ledgerLoadedMsg:
		m.loading = false

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = strings.Join(m.controller.Warnings(), "; ")
		m.refreshRows()

		return m, nil

	case ledgerMutatedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}

		m.state = transactionsStateBrowse
		m.form = nil
		m.refreshRows()

		return m, nil

	case TimeframeSelectedMsg:
		m.controller.SetStartDate(msg.Start)
		m.controller.SetEndDate(msg.End)
		m.state = transactionsStateBrowse
		m.refreshRows()

		return m, nil
	}

	switch m.state {
	case transactionsStateBrowse:
		return m.updateBrowse(msg)
	case transactionsStateForm:
		return m.updateForm(msg)
	case transactionsStateTimeframe:
		return m.updateTimeframe(msg)
	case transactionsStateCategories:
		return m.updateCategories(msg)
	case transactionsStateAccounts:
		return m.updateAccounts(msg)
	case transactionsStateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "r":
		m.loading = true
		return m, m.reloadCmd()
	case "a":
		return m.enterForm(nil)
	case "e":
		if tx := m.selectedTx(); tx != nil {
			return m.enterForm(tx)
		}
	case "x":
		if m.selectedTx() != nil {
			return m.enterConfirmDelete()
		}
	case "f":
		m.cycleFlow()
		m.refreshRows()
	case "t":
		m.state = transactionsStateTimeframe
		m.timeframe.Reset()

		return m, m.timeframe.Init()
	case "c":
		return m.enterCategorySelect()
	case "n":
		return m.enterAccountSelect()
	case "R":
		m.controller.ResetFilters()
		m.refreshRows()
	}

	return m, nil
}

func (m *TransactionsModel) cycleFlow() {
	switch m.controller.Filters().Flow() {
	case ledger.FlowAll:
		m.controller.SetFlow(ledger.FlowExpense)
	case ledger.FlowExpense:
		m.controller.SetFlow(ledger.FlowIncome)
	default:
		m.controller.SetFlow(ledger.FlowAll)
	}
}

func (m TransactionsModel) enterForm(tx *api.Transaction) (tea.Model, tea.Cmd) {
	if tx == nil {
		m.editingID = 0
		m.formDate = api.Today().String()
		m.formAmount = ""
		m.formCategory = ""
		m.formDescription = ""
		m.formAccount = 0
	} else {
		m.editingID = tx.ID
		m.formDate = tx.Date.String()
		m.formAmount = FormatAmount(tx.Amount)
		m.formCategory = tx.Category
		m.formDescription = tx.Description
		m.formAccount = 0

		if tx.AccountID != nil {
			m.formAccount = *tx.AccountID
		}
	}

	categoryOptions := make([]huh.Option[string], 0, len(m.controller.Categories()))
	for _, category := range m.controller.Categories() {
		categoryOptions = append(categoryOptions, huh.NewOption(category.Name, category.Name))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("date").
			Title("Date").
			Placeholder("YYYY-MM-DD").
			Value(&m.formDate).
			Validate(func(s string) error {
				_, err := api.ParseDate(s)
				return err
			}),

		huh.NewInput().
			Key("amount").
			Title("Amount (negative for expenses)").
			Value(&m.formAmount).
			Validate(func(s string) error {
				_, err := strconv.ParseFloat(s, 64)
				return err
			}),

		huh.NewSelect[string]().
			Key("category").
			Title("Category").
			Options(categoryOptions...).
			Value(&m.formCategory),

		huh.NewInput().
			Key("description").
			Title("Description").
			Value(&m.formDescription).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("description cannot be empty")
				}
				return nil
			}),
	}

	// The account can only be chosen at creation time.
	if tx == nil {
		accountOptions := []huh.Option[int]{huh.NewOption("(none)", 0)}
		for _, account := range m.controller.Accounts() {
			accountOptions = append(accountOptions, huh.NewOption(account.Name, account.ID))
		}

		fields = append(fields, huh.NewSelect[int]().
			Key("account").
			Title("Account").
			Options(accountOptions...).
			Value(&m.formAccount))
	}

	m.form = huh.NewForm(huh.NewGroup(fields...)).WithWidth(50).WithShowHelp(false)

	m.state = transactionsStateForm

	return m, m.form.Init()
}

func (m TransactionsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = transactionsStateBrowse
		m.form = nil

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

func (m TransactionsModel) enterConfirmDelete() (tea.Model, tea.Cmd) {
	tx := m.selectedTx()

	confirmed := false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete %q (%s)?", tx.Description, FormatAmount(tx.Amount))).
				Value(&confirmed),
		),
	).WithShowHelp(false)

	m.editingID = tx.ID
	m.state = transactionsStateConfirmDelete

	return m, m.form.Init()
}

func (m TransactionsModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = transactionsStateBrowse
		m.form = nil

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
		m.state = transactionsStateBrowse
		m.form = nil

		return m, nil
	}

	return m, m.deleteCmd(m.editingID)
}

func (m TransactionsModel) enterCategorySelect() (tea.Model, tea.Cmd) {
	filters := m.controller.Filters()

	options := make([]huh.Option[string], 0, len(m.controller.Categories()))
	for _, category := range m.controller.Categories() {
		options = append(options, huh.NewOption(category.Name, category.Name).
			Selected(filters.HasCategory(category.Name)))
	}

	m.formCategorySel = filters.Categories()
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key("categories").
				Title("Filter by category (empty selection clears)").
				Options(options...).
				Value(&m.formCategorySel),
		),
	).WithShowHelp(false)

	m.state = transactionsStateCategories

	return m, m.form.Init()
}

func (m TransactionsModel) updateCategories(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = transactionsStateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	// Toggle each category whose membership changed.
	selected := make(map[string]bool, len(m.formCategorySel))
	for _, name := range m.formCategorySel {
		selected[name] = true
	}

	for _, category := range m.controller.Categories() {
		if selected[category.Name] != m.controller.Filters().HasCategory(category.Name) {
			m.controller.ToggleCategoryFilter(category.Name)
		}
	}

	m.state = transactionsStateBrowse
	m.form = nil
	m.refreshRows()

	return m, nil
}

func (m TransactionsModel) enterAccountSelect() (tea.Model, tea.Cmd) {
	filters := m.controller.Filters()

	options := make([]huh.Option[int], 0, len(m.controller.Accounts()))
	for _, account := range m.controller.Accounts() {
		options = append(options, huh.NewOption(account.Name, account.ID).
			Selected(filters.HasAccount(account.ID)))
	}

	m.formAccountSel = filters.Accounts()
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Key("accounts").
				Title("Filter by account (empty selection clears)").
				Options(options...).
				Value(&m.formAccountSel),
		),
	).WithShowHelp(false)

	m.state = transactionsStateAccounts

	return m, m.form.Init()
}

func (m TransactionsModel) updateAccounts(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = transactionsStateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	selected := make(map[int]bool, len(m.formAccountSel))
	for _, id := range m.formAccountSel {
		selected[id] = true
	}

	for _, account := range m.controller.Accounts() {
		if selected[account.ID] != m.controller.Filters().HasAccount(account.ID) {
			m.controller.ToggleAccountFilter(account.ID)
		}
	}

	m.state = transactionsStateBrowse
	m.form = nil
	m.refreshRows()

	return m, nil
}

func (m TransactionsModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = transactionsStateBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.timeframe, cmd = m.timeframe.Update(msg)

	return m, cmd
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.controller.State() == ledger.StateFailed {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Failed to load ledger: %v\n\n(r to retry, Esc to back)", m.controller.LoadErr()),
		)
	}

	switch m.state {
	case transactionsStateTimeframe:
		return lipgloss.NewStyle().Padding(2).Render(m.timeframe.View())
	case transactionsStateForm, transactionsStateCategories,
		transactionsStateAccounts, transactionsStateConfirmDelete:
		if m.form != nil {
			return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
		}
	}

	return m.viewBrowse()
}

func (m TransactionsModel) viewBrowse() string {
	var b strings.Builder

	b.WriteString(m.filterSummary())
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString("No transactions match the current filters.\n")
	}

	monthStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	row := 0
	for _, group := range m.groups {
		b.WriteString(monthStyle.Render(fmt.Sprintf(
			"%s    Expenses: %s  Income: %s  Net: %s",
			group.Month,
			FormatAmount(group.TotalExpenses),
			FormatAmount(group.TotalIncome),
			FormatAmount(group.Net),
		)))
		b.WriteString("\n")

		for _, tx := range group.Transactions {
			account := ""
			if tx.AccountID != nil {
				account = m.controller.AccountName(*tx.AccountID)
			}

			line := fmt.Sprintf("  %s  %10s  %-18s %-32s %s",
				tx.Date, FormatAmount(tx.Amount), tx.Category, tx.Description, account)

			if row == m.cursor {
				line = selectedStyle.Render(">" + line[1:])
			}

			b.WriteString(line)
			b.WriteString("\n")
			row++
		}

		b.WriteString("\n")
	}

	content := b.String()

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m TransactionsModel) filterSummary() string {
	filters := m.controller.Filters()

	parts := []string{"Flow: " + string(filters.Flow())}

	if names := filters.Categories(); len(names) > 0 {
		parts = append(parts, "Categories: "+strings.Join(names, ", "))
	}

	if ids := filters.Accounts(); len(ids) > 0 {
		names := make([]string, 0, len(ids))
		for _, id := range ids {
			names = append(names, m.controller.AccountName(id))
		}

		parts = append(parts, "Accounts: "+strings.Join(names, ", "))
	}

	if start := filters.Start(); start != nil {
		parts = append(parts, "From: "+start.String())
	}

	if end := filters.End(); end != nil {
		parts = append(parts, "Until: "+end.String())
	}

	summary := strings.Join(parts, " | ")
	if filters.Active() {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(summary)
	}

	return lipgloss.NewStyle().Faint(true).Render(summary)
}

func (m *TransactionsModel) refreshRows() {
	m.groups = m.controller.Groups()
	m.rows = m.rows[:0]

	for g, group := range m.groups {
		for t := range group.Transactions {
			m.rows = append(m.rows, rowRef{group: g, tx: t})
		}
	}

	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

func (m TransactionsModel) selectedTx() *api.Transaction {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}

	ref := m.rows[m.cursor]

	return &m.groups[ref.group].Transactions[ref.tx]
}

// Messages

type ledgerLoadedMsg struct {
	err error
}

type ledgerMutatedMsg struct {
	status string
	err    error
}

func (m TransactionsModel) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		return ledgerLoadedMsg{err: m.controller.Load(ctx)}
	}
}

func (m TransactionsModel) saveCmd() tea.Cmd {
	date, err := api.ParseDate(m.formDate)
	if err != nil {
		return func() tea.Msg { return ledgerMutatedMsg{err: err} }
	}

	amount, err := strconv.ParseFloat(m.formAmount, 64)
	if err != nil {
		return func() tea.Msg { return ledgerMutatedMsg{err: err} }
	}

	var accountID *int
	if m.formAccount != 0 {
		accountID = &m.formAccount
	}

	editingID := m.editingID
	category := m.formCategory
	description := m.formDescription

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		if editingID == 0 {
			_, err := m.controller.AddTransaction(ctx, api.TransactionCreate{
				Amount:      amount,
				Category:    category,
				Description: description,
				Date:        &date,
				AccountID:   accountID,
			})

			return ledgerMutatedMsg{status: "Transaction added.", err: err}
		}

		// Updates cannot move a transaction between accounts.
		_, err := m.controller.UpdateTransaction(ctx, editingID, api.TransactionUpdate{
			Amount:      &amount,
			Category:    &category,
			Description: &description,
			Date:        &date,
		})

		return ledgerMutatedMsg{status: "Transaction updated.", err: err}
	}
}

func (m TransactionsModel) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		err := m.controller.DeleteTransaction(ctx, id)

		return ledgerMutatedMsg{status: "Transaction deleted.", err: err}
	}
}
