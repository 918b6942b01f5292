package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/manager"
)

// ReadyMsg reports that the manager finished restoring the persisted theme.
type ReadyMsg struct {
	Err error
}

// ThemeChangedMsg carries a change notification from the manager. Wire it
// through a Forwarder so notifications arrive in order.
type ThemeChangedMsg struct {
	Name string
}

// waitReadyCmd blocks until the restore has completed.
func waitReadyCmd(ctx context.Context, m *manager.Manager) tea.Cmd {
	return func() tea.Msg {
		return ReadyMsg{Err: m.WaitReady(ctx)}
	}
}
