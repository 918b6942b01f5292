package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/ui/components"
)

const maxCardWidth = 64

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.spinner.View() + " Restoring theme..."
	}

	rc := components.FromManager(m.mgr).WithWidth(min(m.width, maxCardWidth))
	p := rc.Palette

	demo := components.NewThemeDemo().WithRegistry().WithToggleLabel("Toggle Theme [t]")
	if m.allSlots {
		demo.WithAllSlots()
	}

	sections := []string{demo.ViewWithContext(rc)}

	if m.err != nil {
		sections = append(sections, components.NewAlert(m.err.Error()).
			WithVariant(components.AlertError).
			ViewWithContext(rc))
	} else if m.status != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(p.TextSecondary).Render(m.status))
	}

	m.help.Styles.ShortKey = m.help.Styles.ShortKey.Foreground(p.Accent)
	m.help.Styles.FullKey = m.help.Styles.FullKey.Foreground(p.Accent)
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
