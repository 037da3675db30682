package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// SignedInMsg is emitted when the sign-in screen captured a user id.
type SignedInMsg struct {
	UserID string
}

// NewTransactionMsg asks the root model to open the create screen.
type NewTransactionMsg struct{}

// CreatedMsg is emitted after a transaction was created successfully.
type CreatedMsg struct{}
