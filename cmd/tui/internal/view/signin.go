package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// SignInModel captures the user id the rest of the app operates on.
// Identity itself lives with an external provider; the ledger treats
// the id as an opaque partition key.
type SignInModel struct {
	form   *huh.Form
	userID string
}

func NewSignInModel() SignInModel {
	m := SignInModel{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("user_id").
				Title("User ID").
				Placeholder("user_2y...").
				Value(&m.userID).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("user id cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	return m
}

func (m SignInModel) Title() string { return "Sign In" }

func (m SignInModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	// Read through the form: the model is copied between updates, so
	// the bound field may lag behind what was typed.
	userID := strings.TrimSpace(m.form.GetString("user_id"))

	return m, func() tea.Msg {
		return SignedInMsg{UserID: userID}
	}
}

func (m SignInModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("Welcome to Expenso")

	return lipgloss.NewStyle().Padding(1).Render(
		header + "\n\n" + m.form.View(),
	)
}
