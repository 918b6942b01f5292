package components

// Badge is a small pill, used for the current theme name.
type Badge struct {
	BaseComponent
	text   string
	subtle bool
}

// NewBadge creates an accent badge.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), text: text}
}

// Subtle switches to the light accent background.
func (b *Badge) Subtle() *Badge {
	b.subtle = true
	return b
}

// ViewWithContext renders the badge.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	p := ctx.Palette
	style := b.ComputeStyle(p).Padding(0, 1).Bold(true)
	if b.subtle {
		style = style.Background(p.AccentLight).Foreground(p.Accent)
	} else {
		style = style.Background(p.Accent).Foreground(p.ButtonText)
	}
	return style.Render(b.text)
}
