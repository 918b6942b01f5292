package components

import "github.com/charmbracelet/lipgloss"

// AlertVariant selects the alert accent.
type AlertVariant int

const (
	AlertInfo AlertVariant = iota
	AlertSuccess
	AlertWarning
	AlertError
)

func (v AlertVariant) icon() string {
	switch v {
	case AlertSuccess:
		return "✓"
	case AlertWarning:
		return "!"
	case AlertError:
		return "✗"
	default:
		return "i"
	}
}

func (v AlertVariant) color(p Palette) lipgloss.TerminalColor {
	switch v {
	case AlertSuccess:
		return p.Success
	case AlertWarning:
		return p.Warning
	case AlertError:
		return p.Error
	default:
		return p.Accent
	}
}

// Alert is a bordered message with an icon.
type Alert struct {
	BaseComponent
	title   string
	message string
	variant AlertVariant
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{BaseComponent: NewBaseComponent(), message: message}
}

// WithTitle sets a bold title line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithVariant sets the variant.
func (a *Alert) WithVariant(v AlertVariant) *Alert {
	a.variant = v
	return a
}

// ViewWithContext renders the alert.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	p := ctx.Palette
	accent := a.variant.color(p)

	line := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(a.variant.icon()) + " " +
		lipgloss.NewStyle().Foreground(p.Text).Render(a.message)

	body := line
	if a.title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Foreground(accent).Render(a.title),
			line,
		)
	}

	return a.ComputeStyle(p).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(accent).
		PaddingLeft(1).
		Render(body)
}
