package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moneta/internal/api"
)

type DashboardModel struct {
	CommonModel
	client *api.Client

	year    int
	data    api.FinancialData
	table   table.Model
	loading bool
	err     error
}

func NewDashboardModel(client *api.Client) DashboardModel {
	columns := []table.Column{
		{Title: "Month", Width: 8},
		{Title: "Income", Width: 12},
		{Title: "Expenses", Width: 12},
		{Title: "Net", Width: 12},
		{Title: "Net Worth", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(14),
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

	return DashboardModel{
		client: client,
		year:   time.Now().Year(),
		table:  t,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }
func (m DashboardModel) ShortHelp() string {
	return "Esc: back | left/right: change year | r: refresh"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDashboardMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.data = msg.data
			m.refreshTable()
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "left":
			m.year--
			m.loading = true

			return m, m.loadCmd()
		case "right":
			m.year++
			m.loading = true

			return m, m.loadCmd()
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Loading %d...", m.year))
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	headline := fmt.Sprintf(
		"Year %d | Net Worth: %s | Net Savings: %s",
		m.data.Year,
		FormatAmount(m.data.CurrentNetWorth),
		FormatAmount(m.data.NetSavings),
	)

	breakdown := fmt.Sprintf(
		"Liquidity: %s | Investments: %s | Other Assets: %s",
		FormatAmount(m.data.AccountBreakdown.Liquidity),
		FormatAmount(m.data.AccountBreakdown.Investments),
		FormatAmount(m.data.AccountBreakdown.OtherAssets),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).PaddingBottom(1).Render(headline),
			lipgloss.NewStyle().Faint(true).PaddingBottom(1).Render(breakdown),
			tableView,
		),
	)
}

func (m *DashboardModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.data.MonthlyData))

	for _, month := range m.data.MonthlyData {
		rows = append(rows, table.Row{
			month.Month,
			FormatAmount(month.Income),
			FormatAmount(month.Expenses),
			FormatAmount(month.Net),
			FormatAmount(month.NetWorth),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadDashboardMsg struct {
	data api.FinancialData
	err  error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	year := m.year

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		data, err := m.client.GetFinancialData(ctx, year)
		if err != nil {
			return loadDashboardMsg{err: err}
		}

		return loadDashboardMsg{data: *data}
	}
}
