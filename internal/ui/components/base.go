package components

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/manager"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Renderable is anything that renders itself with a RenderContext.
type Renderable interface {
	ViewWithContext(ctx RenderContext) string
}

// StyleFunc applies palette data to a lipgloss.Style.
type StyleFunc func(lipgloss.Style, Palette) lipgloss.Style

// BaseComponent carries the raw style and extra appliers shared by every
// component.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the raw style with every applier run in order.
func (b *BaseComponent) ComputeStyle(p Palette) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, p)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends style appliers without mutating a shared slice.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// RenderContext is what components render against: the consumer-facing theme
// state and the palette derived from it.
type RenderContext struct {
	Value   manager.Value
	Palette Palette
	Width   int
}

// NewRenderContext builds a context from a manager snapshot.
func NewRenderContext(v manager.Value) RenderContext {
	return RenderContext{Value: v, Palette: NewPalette(v.Colors)}
}

// FromManager snapshots m.
func FromManager(m *manager.Manager) RenderContext {
	return NewRenderContext(m.Value())
}

// FromContext reads the manager attached to ctx. It panics outside a
// provider, like manager.FromContext.
func FromContext(ctx context.Context) RenderContext {
	return FromManager(manager.FromContext(ctx))
}

// StaticContext renders with a fixed color table and no manager, for
// previews of themes that are not active.
func StaticContext(name string, colors theme.ColorConfig) RenderContext {
	return NewRenderContext(manager.Value{CurrentTheme: name, Colors: colors, Ready: true})
}

// WithWidth returns a copy constrained to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// Render renders c inside the provider attached to ctx.
func Render(ctx context.Context, c Renderable) string {
	return c.ViewWithContext(FromContext(ctx))
}
