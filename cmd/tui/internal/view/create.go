package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/advithialva/expenso/internal/client"
	"github.com/advithialva/expenso/internal/money"
)

// CreateModel is the new-transaction form. The user enters a positive
// amount and picks income or expense; the sign is applied on save.
type CreateModel struct {
	api    *client.Client
	userID string

	form   *huh.Form
	saving bool
	failed bool
	status string

	formTitle    string
	formAmount   string
	formCategory string
	formExpense  bool
}

func NewCreateModel(api *client.Client, userID string) CreateModel {
	m := CreateModel{
		api:         api,
		userID:      userID,
		formExpense: true,
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("4.50").
				Value(&m.formAmount).
				Validate(func(s string) error {
					c, err := money.Parse(s)
					if err != nil || c < 0 {
						return fmt.Errorf("enter a positive amount like 4.50")
					}
					return nil
				}),

			huh.NewInput().
				Key("category").
				Title("Category").
				Placeholder("Food & Drinks").
				Value(&m.formCategory).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("category cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[bool]().
				Key("kind").
				Title("Type").
				Options(
					huh.NewOption("Expense", true),
					huh.NewOption("Income", false),
				).
				Value(&m.formExpense),
		),
	).WithWidth(50).WithShowHelp(false)

	return m
}

func (m CreateModel) Title() string { return "New Transaction" }

func (m CreateModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createResultMsg:
		m.saving = false

		if msg.err != nil {
			m.failed = true
			m.status = alertText(msg.err)

			return m, nil
		}

		return m, func() tea.Msg { return CreatedMsg{} }

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.saving || m.failed {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.saving = true

	return m, m.saveCmd()
}

func (m CreateModel) View() string {
	if m.saving {
		return lipgloss.NewStyle().Padding(2).Render("Saving...")
	}

	if m.failed {
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\nEsc: back")
	}

	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(
		statusLine + m.form.View(),
	)
}

type createResultMsg struct {
	err error
}

func (m CreateModel) saveCmd() tea.Cmd {
	api := m.api
	userID := m.userID

	// Read through the form: the model is copied between updates, so
	// the bound fields may lag behind what was typed.
	title := strings.TrimSpace(m.form.GetString("title"))
	category := strings.TrimSpace(m.form.GetString("category"))
	expense := m.form.GetBool("kind")
	rawAmount := m.form.GetString("amount")

	return func() tea.Msg {
		amount, err := money.Parse(rawAmount)
		if err != nil {
			return createResultMsg{err: err}
		}

		if expense {
			amount = -amount
		}

		ctx, cancel := APICtx()
		defer cancel()

		_, err = api.CreateTransaction(ctx, client.CreateParams{
			UserID:   userID,
			Title:    title,
			Amount:   amount,
			Category: category,
		})

		return createResultMsg{err: err}
	}
}
