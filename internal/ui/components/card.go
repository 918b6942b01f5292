package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card is a bordered surface with an optional title and footer.
type Card struct {
	BaseComponent
	title    string
	children []Renderable
	footer   Renderable
}

// NewCard creates a card around children.
func NewCard(children ...Renderable) *Card {
	return &Card{BaseComponent: NewBaseComponent(), children: children}
}

// WithTitle sets the title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter sets the footer, rendered under a divider.
func (c *Card) WithFooter(footer Renderable) *Card {
	c.footer = footer
	return c
}

// Add appends children.
func (c *Card) Add(children ...Renderable) *Card {
	c.children = append(c.children, children...)
	return c
}

// ViewWithContext renders the card.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	p := ctx.Palette
	style := c.ComputeStyle(p).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width - 2)
	}

	inner := ctx
	if ctx.Width > 0 {
		inner = ctx.WithWidth(ctx.Width - 4)
	}

	var rows []string
	if c.title != "" {
		rows = append(rows, lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(c.title))
	}
	for _, child := range c.children {
		rows = append(rows, child.ViewWithContext(inner))
	}
	if c.footer != nil {
		footer := c.footer.ViewWithContext(inner)
		width := lipgloss.Width(footer)
		for _, row := range rows {
			width = max(width, lipgloss.Width(row))
		}
		rows = append(rows,
			lipgloss.NewStyle().Foreground(p.Border).Render(strings.Repeat("─", width)),
			footer,
		)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
