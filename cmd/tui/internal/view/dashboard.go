package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/advithialva/expenso/internal/client"
)

// txItem wraps a transaction to implement list.Item.
type txItem struct {
	tx client.Transaction
}

func (i txItem) Title() string {
	amount := FormatAmount(i.tx.Amount)
	if i.tx.Amount >= 0 {
		amount = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("+" + amount)
	} else {
		amount = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(amount)
	}

	return fmt.Sprintf("%s  %s  %s", i.tx.CreatedAt, amount, i.tx.Title)
}

func (i txItem) Description() string {
	return i.tx.Category
}

func (i txItem) FilterValue() string {
	return i.tx.Title
}

// DashboardModel mirrors the mobile data hook: it caches the server's
// list and summary, never owns them, and reloads wholesale after every
// mutation.
type DashboardModel struct {
	api    *client.Client
	userID string

	list      list.Model
	txs       []client.Transaction
	summary   client.Summary
	isLoading bool
	status    string
}

func NewDashboardModel(api *client.Client, userID string) DashboardModel {
	l := list.New([]list.Item{}, txItemDelegate{}, 0, 0)
	l.Title = "Transactions"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return DashboardModel{
		api:    api,
		userID: userID,
		list:   l,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "n: new | d: delete | r: reload | /: filter | Esc: sign out | q: quit"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadDataCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDataMsg:
		m.isLoading = false

		if msg.err != nil {
			// Fail soft: alert and fall back to an empty view rather
			// than keeping half-loaded state around.
			m.txs = nil
			m.summary = client.Summary{}
			m.status = alertText(msg.err)
			m.refreshListItems()

			return m, nil
		}

		m.txs = msg.txs
		m.summary = msg.summary
		m.status = ""
		m.refreshListItems()

		return m, nil

	case deleteResultMsg:
		if msg.err != nil {
			m.status = alertText(msg.err)
			return m, nil
		}

		m.status = "Transaction deleted successfully"
		m.isLoading = true

		return m, m.loadDataCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-12)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "n":
			return m, func() tea.Msg { return NewTransactionMsg{} }
		case "r":
			m.isLoading = true
			return m, m.loadDataCmd()
		case "d":
			selected, ok := m.list.SelectedItem().(txItem)
			if !ok {
				return m, nil
			}

			return m, m.deleteCmd(selected.tx.ID)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m DashboardModel) View() string {
	if m.isLoading {
		return lipgloss.NewStyle().Padding(2).Render("Loading...")
	}

	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
	}

	help := lipgloss.NewStyle().Faint(true).Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(1).Render(
		m.balanceCard() + "\n" + statusLine + m.list.View() + "\n" + help,
	)
}

// balanceCard renders the summary triple the way the mobile app's
// balance card does: balance on top, income and expenses side by side.
func (m DashboardModel) balanceCard() string {
	balance := lipgloss.NewStyle().Bold(true).Render("$" + FormatAmount(m.summary.Balance))
	income := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("$" + FormatAmount(m.summary.Income))
	expenses := lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render("$" + FormatAmount(m.summary.Expenses))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2).
		Render(fmt.Sprintf("Total Balance\n%s\n\nIncome: %s  Expenses: %s", balance, income, expenses))
}

func (m *DashboardModel) refreshListItems() {
	items := make([]list.Item, len(m.txs))
	for i, tx := range m.txs {
		items[i] = txItem{tx: tx}
	}

	m.list.SetItems(items)
}

// Messages

type loadDataMsg struct {
	txs     []client.Transaction
	summary client.Summary
	err     error
}

// loadDataCmd fetches the list and the summary concurrently and only
// reports once both are done, so the loading flag clears exactly once.
func (m DashboardModel) loadDataCmd() tea.Cmd {
	api := m.api
	userID := m.userID

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		var (
			txs     []client.Transaction
			summary *client.Summary
		)

		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			var err error
			txs, err = api.ListTransactions(ctx, userID)
			return err
		})

		g.Go(func() error {
			var err error
			summary, err = api.GetSummary(ctx, userID)
			return err
		})

		if err := g.Wait(); err != nil {
			return loadDataMsg{err: err}
		}

		return loadDataMsg{txs: txs, summary: *summary}
	}
}

type deleteResultMsg struct {
	err error
}

func (m DashboardModel) deleteCmd(id int64) tea.Cmd {
	api := m.api

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		return deleteResultMsg{err: api.DeleteTransaction(ctx, id)}
	}
}

// txItemDelegate renders items in the list.
type txItemDelegate struct{}

func (d txItemDelegate) Height() int                             { return 2 }
func (d txItemDelegate) Spacing() int                            { return 0 }
func (d txItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d txItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(txItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(i.Description()))
}
