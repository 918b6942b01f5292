package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// demoSwatches are the slots shown by ThemeDemo in compact mode.
var demoSwatches = []struct {
	label string
	key   string
}{
	{"Accent", "accent"},
	{"Success", "success"},
	{"Warning", "warning"},
	{"Error", "error"},
}

// ThemeDemo showcases the active theme: its name, a few color swatches and
// a toggle button.
type ThemeDemo struct {
	BaseComponent
	allSlots     bool
	showRegistry bool
	toggleLabel  string
}

// NewThemeDemo creates the compact demo.
func NewThemeDemo() *ThemeDemo {
	return &ThemeDemo{BaseComponent: NewBaseComponent(), toggleLabel: "Toggle Theme"}
}

// WithAllSlots shows a swatch for every color slot.
func (d *ThemeDemo) WithAllSlots() *ThemeDemo {
	d.allSlots = true
	return d
}

// WithRegistry lists every registered theme, marking the active one.
func (d *ThemeDemo) WithRegistry() *ThemeDemo {
	d.showRegistry = true
	return d
}

// WithToggleLabel replaces the button label, e.g. to show a key binding.
func (d *ThemeDemo) WithToggleLabel(label string) *ThemeDemo {
	d.toggleLabel = label
	return d
}

// ViewWithContext renders the demo card.
func (d *ThemeDemo) ViewWithContext(ctx RenderContext) string {
	colors := ctx.Palette.Colors()

	card := NewCard(
		MutedText("Current Theme Mode:"),
		NewBadge(ctx.Value.CurrentTheme),
		MutedText("Theme Colors:"),
		swatchList(d.swatches(colors)),
	).WithTitle("Theme Demo").WithFooter(NewButton(d.toggleLabel))

	if d.showRegistry {
		card.Add(MutedText("Themes:"), themeList{})
	}

	card.AddAppliers(d.appliers...)
	return card.ViewWithContext(ctx)
}

func (d *ThemeDemo) swatches(colors theme.ColorConfig) []*Swatch {
	if d.allSlots {
		out := make([]*Swatch, 0, len(theme.ColorKeys()))
		for _, key := range theme.ColorKeys() {
			v, _ := colors.Get(key)
			out = append(out, NewSwatch(key, v))
		}
		return out
	}
	out := make([]*Swatch, 0, len(demoSwatches))
	for _, s := range demoSwatches {
		v, _ := colors.Get(s.key)
		out = append(out, NewSwatch(s.label, v))
	}
	return out
}

type swatchList []*Swatch

func (l swatchList) ViewWithContext(ctx RenderContext) string {
	rows := make([]string, 0, len(l))
	for _, s := range l {
		rows = append(rows, s.ViewWithContext(ctx))
	}
	return strings.Join(rows, "\n")
}

type themeList struct{}

func (l themeList) ViewWithContext(ctx RenderContext) string {
	defs := ctx.Value.Themes.Definitions()
	rows := make([]string, 0, len(defs))
	for _, def := range defs {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(ctx.Palette.Text)
		if def.Name == ctx.Value.CurrentTheme {
			marker = "▸ "
			style = style.Foreground(ctx.Palette.Accent).Bold(true)
		}
		rows = append(rows, style.Render(marker+def.Label()+" ("+def.Name+")"))
	}
	return strings.Join(rows, "\n")
}
