package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ReadyMsg:
		m.ready = true
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.status = fmt.Sprintf("restored %q", m.mgr.CurrentTheme())
		return m, nil

	case ThemeChangedMsg:
		// the manager is the source of truth; msg may describe an older change
		m.status = fmt.Sprintf("theme changed to %q", m.mgr.CurrentTheme())
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}
	if !m.ready {
		return m, nil
	}

	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.err = m.mgr.ToggleTheme()
		m.accentIdx = -1
	case key.Matches(msg, m.keys.Next):
		m.err = m.mgr.UpdateTheme(m.step(1))
		m.accentIdx = -1
	case key.Matches(msg, m.keys.Prev):
		m.err = m.mgr.UpdateTheme(m.step(-1))
		m.accentIdx = -1
	case key.Matches(msg, m.keys.Accent):
		m.accentIdx = (m.accentIdx + 1) % len(accentOverrides)
		accent := accentOverrides[m.accentIdx]
		m.err = m.mgr.UpdateConfig(theme.Config{Colors: &theme.ColorConfig{
			Accent:    accent,
			ButtonBg:  accent,
			LinkColor: accent,
		}})
		if m.err == nil {
			m.status = "accent override " + accent
		}
	case key.Matches(msg, m.keys.Reset):
		// Re-selecting the current theme discards transient overrides.
		m.err = m.mgr.UpdateTheme(m.mgr.CurrentTheme())
		m.accentIdx = -1
		if m.err == nil {
			m.status = "overrides cleared"
		}
	case key.Matches(msg, m.keys.Slots):
		m.allSlots = !m.allSlots
	}
	return m, nil
}
