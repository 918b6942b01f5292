package components

import "github.com/charmbracelet/lipgloss"

// ButtonVariant selects the button colors.
type ButtonVariant int

const (
	ButtonDefault ButtonVariant = iota
	ButtonSecondary
	ButtonDestructive
	ButtonOutline
	ButtonGhost
	ButtonLink
)

// ButtonSize selects horizontal padding.
type ButtonSize int

const (
	ButtonSizeSmall ButtonSize = iota
	ButtonSizeDefault
	ButtonSizeLarge
)

// Button is a visual button.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	size     ButtonSize
	disabled bool
}

// NewButton creates a default button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		size:          ButtonSizeDefault,
	}
}

// WithVariant sets the variant.
func (b *Button) WithVariant(v ButtonVariant) *Button {
	b.variant = v
	return b
}

// WithSize sets the size.
func (b *Button) WithSize(s ButtonSize) *Button {
	b.size = s
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithAppliers adds style appliers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the label.
func (b *Button) Label() string {
	return b.label
}

// ViewWithContext renders the button.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	p := ctx.Palette
	style := b.ComputeStyle(p)

	pad := 2
	switch b.size {
	case ButtonSizeSmall:
		pad = 1
	case ButtonSizeLarge:
		pad = 3
	}
	style = style.Padding(0, pad)

	switch b.variant {
	case ButtonSecondary:
		style = style.Background(p.BgAlt).Foreground(p.Text)
	case ButtonDestructive:
		style = style.Background(p.Error).Foreground(p.ButtonText)
	case ButtonOutline:
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Foreground(p.Text)
	case ButtonGhost:
		style = style.Foreground(p.Text)
	case ButtonLink:
		style = style.Padding(0).Foreground(p.LinkColor).Underline(true)
	default:
		style = style.Background(p.ButtonBg).Foreground(p.ButtonText).Bold(true)
	}

	if b.disabled {
		style = style.Faint(true)
	}
	return style.Render(b.label)
}
