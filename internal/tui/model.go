package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/manager"
)

// accentOverrides are cycled by the Accent key as transient color patches.
var accentOverrides = []string{"#7C3AED", "#DB2777", "#059669", "#EA580C"}

// Model is the Bubbletea state of the interactive theme demo.
type Model struct {
	ctx context.Context
	mgr *manager.Manager

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	ready     bool
	showHelp  bool
	allSlots  bool
	accentIdx int
	status    string
	err       error
	quitting  bool

	width  int
	height int
}

// NewModel constructs a model over a mounted manager.
func NewModel(ctx context.Context, mgr *manager.Manager) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		mgr:       mgr,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   s,
		accentIdx: -1,
		width:     80,
		height:    24,
	}
}

// Init waits for the restore while the spinner runs.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitReadyCmd(m.ctx, m.mgr))
}

// IsReady reports whether the restore has completed.
func (m Model) IsReady() bool {
	return m.ready
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}

// Err returns the last error raised by an action.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// step moves the current theme by delta positions in registry order,
// wrapping around. An unregistered current theme starts from the first.
func (m Model) step(delta int) string {
	names := m.mgr.Themes().Names()
	if len(names) == 0 {
		return ""
	}
	current := m.mgr.CurrentTheme()
	idx := -1
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return names[0]
	}
	idx = (idx + delta + len(names)) % len(names)
	return names[idx]
}
