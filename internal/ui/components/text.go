package components

import "github.com/charmbracelet/lipgloss"

// Text is a line of styled text.
type Text struct {
	BaseComponent
	content string
	muted   bool
}

// NewText creates primary text.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

// MutedText creates secondary text.
func MutedText(content string) *Text {
	t := NewText(content)
	t.muted = true
	return t
}

// ViewWithContext renders the text.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	color := ctx.Palette.Text
	if t.muted {
		color = ctx.Palette.TextSecondary
	}
	return t.ComputeStyle(ctx.Palette).Foreground(color).Render(t.content)
}

// Swatch is a colored block with a label under a color slot name.
type Swatch struct {
	label string
	color string
}

// NewSwatch creates a swatch for a CSS color value.
func NewSwatch(label, color string) *Swatch {
	return &Swatch{label: label, color: color}
}

// ViewWithContext renders the swatch on one line: block, label, value.
func (s *Swatch) ViewWithContext(ctx RenderContext) string {
	block := lipgloss.NewStyle().Foreground(TerminalColor(s.color)).Render("██")
	label := lipgloss.NewStyle().Foreground(ctx.Palette.TextSecondary).Width(14).Render(s.label)
	return block + " " + label + " " + s.color
}
