package main

import (
	"log/slog"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"moneta/cmd/tui/internal/view"
	"moneta/internal/api"
	"moneta/internal/config"
	"moneta/internal/ledger"
)

type model struct {
	client     *api.Client
	controller *ledger.Controller

	currentView View

	dashboardView    view.DashboardModel
	transactionsView view.TransactionsModel
	accountsView     view.AccountsModel
	uploadView       view.UploadModel
}

type View int

const (
	ViewMenu         View = 0
	ViewDashboard    View = 1
	ViewTransactions View = 2
	ViewAccounts     View = 3
	ViewUpload       View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client := api.New(cfg.API.BaseURL, api.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))
	controller := ledger.NewController(client)

	return model{
		client:           client,
		controller:       controller,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(client),
		transactionsView: view.NewTransactionsModel(controller),
		accountsView:     view.NewAccountsModel(controller),
		uploadView:       view.NewUploadModel(client),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.client)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.controller)

				return m, m.transactionsView.Init()
			case "3":
				m.currentView = ViewAccounts
				m.accountsView = view.NewAccountsModel(m.controller)

				return m, m.accountsView.Init()
			case "4":
				m.currentView = ViewUpload
				m.uploadView = view.NewUploadModel(m.client)

				return m, m.uploadView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewAccounts:
		var newModel tea.Model
		newModel, cmd = m.accountsView.Update(msg)
		m.accountsView = newModel.(view.AccountsModel)
	case ViewUpload:
		var newModel tea.Model
		newModel, cmd = m.uploadView.Update(msg)
		m.uploadView = newModel.(view.UploadModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Moneta\n\n" +
				"1. Dashboard\n" +
				"2. Transactions\n" +
				"3. Accounts\n" +
				"4. Import Statement\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewAccounts:
		return m.accountsView.View()
	case ViewUpload:
		return m.uploadView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
