package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/advithialva/expenso/cmd/tui/internal/view"
	"github.com/advithialva/expenso/internal/client"
	"github.com/advithialva/expenso/internal/config"
)

type model struct {
	api *client.Client

	currentView View
	userID      string

	signInView    view.SignInModel
	dashboardView view.DashboardModel
	createView    view.CreateModel
}

type View int

const (
	ViewSignIn    View = 0
	ViewDashboard View = 1
	ViewCreate    View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	api := client.New(cfg.API.URL, &http.Client{Timeout: 15 * time.Second})

	return model{
		api:         api,
		currentView: ViewSignIn,
		signInView:  view.NewSignInModel(),
	}
}

func (m model) Init() tea.Cmd {
	return m.signInView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if msg.String() == "q" && m.currentView == ViewDashboard {
			return m, tea.Quit
		}

	case view.SignedInMsg:
		m.userID = msg.UserID
		m.currentView = ViewDashboard
		m.dashboardView = view.NewDashboardModel(m.api, m.userID)

		return m, m.dashboardView.Init()

	case view.NewTransactionMsg:
		m.currentView = ViewCreate
		m.createView = view.NewCreateModel(m.api, m.userID)

		return m, m.createView.Init()

	case view.CreatedMsg:
		// The dashboard never patches its cache; every mutation means
		// a full reload.
		m.currentView = ViewDashboard
		m.dashboardView = view.NewDashboardModel(m.api, m.userID)

		return m, m.dashboardView.Init()

	case view.BackMsg:
		switch m.currentView {
		case ViewCreate:
			m.currentView = ViewDashboard
			m.dashboardView = view.NewDashboardModel(m.api, m.userID)

			return m, m.dashboardView.Init()
		case ViewDashboard:
			m.currentView = ViewSignIn
			m.userID = ""
			m.signInView = view.NewSignInModel()

			return m, m.signInView.Init()
		}

		return m, nil
	}

	switch m.currentView {
	case ViewSignIn:
		var newModel tea.Model
		newModel, cmd = m.signInView.Update(msg)
		m.signInView = newModel.(view.SignInModel)
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewCreate:
		var newModel tea.Model
		newModel, cmd = m.createView.Update(msg)
		m.createView = newModel.(view.CreateModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewSignIn:
		return m.signInView.View()
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewCreate:
		return m.createView.View()
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
