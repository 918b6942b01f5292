package theme

import "strconv"

// DefaultTokens returns the shared token groups used when a theme leaves a
// group out. Colors are not part of it.
func DefaultTokens() Config {
	return Config{
		Typography:  defaultTypography(),
		Spacing:     defaultSpacing(),
		Breakpoints: defaultBreakpoints(),
		Container:   defaultContainer(),
		Shadows:     defaultShadows(),
		ZIndex:      defaultZIndex(),
		Shape:       defaultShape(),
		Transitions: defaultTransitions(),
		Animations:  defaultAnimations(),
		Components:  defaultComponents(),
	}
}

const (
	fontPrimary = "Inter, system-ui, -apple-system, sans-serif"
	fontMono    = "'JetBrains Mono', ui-monospace, monospace"
)

func typographyVariant(family, size, weight, lineHeight, spacing string) map[string]string {
	return map[string]string{
		"fontFamily":    family,
		"fontSize":      size,
		"fontWeight":    weight,
		"lineHeight":    lineHeight,
		"letterSpacing": spacing,
	}
}

func defaultTypography() TokenGroup {
	variants := Table{}
	add := func(name string, v map[string]string) {
		for k, value := range v {
			variants[name+"."+k] = value
		}
	}
	add("h1", typographyVariant(fontPrimary, "3rem", "700", "1.25", "-0.025em"))
	add("h2", typographyVariant(fontPrimary, "2.25rem", "700", "1.25", "-0.025em"))
	add("h3", typographyVariant(fontPrimary, "1.875rem", "600", "1.375", "0em"))
	add("h4", typographyVariant(fontPrimary, "1.5rem", "600", "1.375", "0em"))
	add("h5", typographyVariant(fontPrimary, "1.25rem", "600", "1.5", "0em"))
	add("h6", typographyVariant(fontPrimary, "1.125rem", "600", "1.5", "0em"))
	add("body1", typographyVariant(fontPrimary, "1rem", "400", "1.5", "0em"))
	add("body2", typographyVariant(fontPrimary, "0.875rem", "400", "1.5", "0em"))
	add("caption", typographyVariant(fontPrimary, "0.75rem", "400", "1.375", "0.025em"))
	add("overline", typographyVariant(fontPrimary, "0.75rem", "600", "2", "0.1em"))
	add("button", typographyVariant(fontPrimary, "0.875rem", "500", "1.25", "0.025em"))
	add("code", typographyVariant(fontMono, "0.875rem", "400", "1.625", "0em"))

	return TokenGroup{
		"fontFamily": Table{
			"primary":   fontPrimary,
			"secondary": fontPrimary,
			"mono":      fontMono,
		},
		"fontSize": Table{
			"xs": "0.75rem", "sm": "0.875rem", "base": "1rem", "lg": "1.125rem", "xl": "1.25rem",
			"2xl": "1.5rem", "3xl": "1.875rem", "4xl": "2.25rem", "5xl": "3rem", "6xl": "3.75rem",
		},
		"fontWeight": Table{
			"thin": "100", "extralight": "200", "light": "300", "normal": "400", "medium": "500",
			"semibold": "600", "bold": "700", "extrabold": "800", "black": "900",
		},
		"lineHeight": Table{
			"none": "1", "tight": "1.25", "snug": "1.375", "normal": "1.5", "relaxed": "1.625", "loose": "2",
		},
		"letterSpacing": Table{
			"tighter": "-0.05em", "tight": "-0.025em", "normal": "0em",
			"wide": "0.025em", "wider": "0.05em", "widest": "0.1em",
		},
		"variants": variants,
	}
}

func defaultSpacing() TokenGroup {
	space := Table{}
	for _, step := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 14, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60, 64, 72, 80, 96} {
		space[strconv.Itoa(step)] = strconv.Itoa(step*4) + "px"
	}
	return TokenGroup{
		"space": space,
		"component": Table{
			"button.sm.x": "12px", "button.sm.y": "6px",
			"button.md.x": "16px", "button.md.y": "8px",
			"button.lg.x": "20px", "button.lg.y": "12px",
			"input.sm.x": "8px", "input.sm.y": "4px",
			"input.md.x": "12px", "input.md.y": "8px",
			"input.lg.x": "16px", "input.lg.y": "12px",
			"card.sm": "12px", "card.md": "16px", "card.lg": "24px",
		},
	}
}

func defaultBreakpoints() TokenGroup {
	return TokenGroup{
		"values": Table{
			"xs": "0", "sm": "640", "md": "768", "lg": "1024", "xl": "1280", "2xl": "1536", "3xl": "1920",
		},
		"keys": Scalar("xs,sm,md,lg,xl,2xl,3xl"),
	}
}

func defaultContainer() TokenGroup {
	return TokenGroup{
		"maxWidth": Table{
			"xs": "100%", "sm": "640px", "md": "768px", "lg": "1024px", "xl": "1280px", "2xl": "1536px", "3xl": "1920px",
		},
		"padding": Table{
			"xs": "16px", "sm": "24px", "md": "32px", "lg": "40px", "xl": "48px", "2xl": "56px", "3xl": "64px",
		},
	}
}

func defaultShadows() TokenGroup {
	return TokenGroup{
		"elevation": Table{
			"0": "none",
			"1": "0 1px 2px rgba(0, 0, 0, 0.05)",
			"2": "0 1px 3px rgba(0, 0, 0, 0.1), 0 1px 2px rgba(0, 0, 0, 0.06)",
			"3": "0 4px 6px rgba(0, 0, 0, 0.1), 0 2px 4px rgba(0, 0, 0, 0.06)",
			"4": "0 10px 15px rgba(0, 0, 0, 0.1), 0 4px 6px rgba(0, 0, 0, 0.05)",
			"5": "0 20px 25px rgba(0, 0, 0, 0.1), 0 10px 10px rgba(0, 0, 0, 0.04)",
			"6": "0 25px 50px rgba(0, 0, 0, 0.25)",
		},
		"component": Table{
			"button.default":  "0 1px 2px rgba(0, 0, 0, 0.05)",
			"button.hover":    "0 2px 4px rgba(0, 0, 0, 0.1)",
			"button.active":   "inset 0 1px 2px rgba(0, 0, 0, 0.1)",
			"button.disabled": "none",
			"card.default":    "0 1px 3px rgba(0, 0, 0, 0.1)",
			"card.hover":      "0 4px 6px rgba(0, 0, 0, 0.1)",
			"card.selected":   "0 0 0 2px var(--color-accent)",
			"modal.backdrop":  "none",
			"modal.content":   "0 25px 50px rgba(0, 0, 0, 0.25)",
			"tooltip":         "0 2px 4px rgba(0, 0, 0, 0.1)",
			"dropdown":        "0 10px 15px rgba(0, 0, 0, 0.1)",
		},
	}
}

func defaultZIndex() TokenGroup {
	return TokenGroup{
		"values": Table{
			"base": "0", "dropdown": "1000", "sticky": "1100", "fixed": "1200", "modalBackdrop": "1300",
			"modal": "1400", "popover": "1500", "snackbar": "1600", "tooltip": "1700",
		},
	}
}

func defaultShape() TokenGroup {
	return TokenGroup{
		"borderRadius": Table{
			"none": "0px", "sm": "2px", "base": "4px", "md": "6px", "lg": "8px",
			"xl": "12px", "2xl": "16px", "3xl": "24px", "full": "9999px",
		},
		"component": Table{
			"button.sm": "4px", "button.md": "6px", "button.lg": "8px", "button.pill": "9999px",
			"input.sm": "4px", "input.md": "6px", "input.lg": "8px",
			"card.sm": "6px", "card.md": "8px", "card.lg": "12px",
			"modal.sm": "8px", "modal.md": "12px", "modal.lg": "16px",
		},
	}
}

func defaultTransitions() TokenGroup {
	return TokenGroup{
		"duration": Table{
			"fastest": "75ms", "faster": "100ms", "fast": "150ms", "normal": "200ms",
			"slow": "300ms", "slower": "500ms", "slowest": "700ms",
		},
		"easing": Table{
			"linear":    "linear",
			"ease":      "ease",
			"easeIn":    "cubic-bezier(0.4, 0, 1, 1)",
			"easeOut":   "cubic-bezier(0, 0, 0.2, 1)",
			"easeInOut": "cubic-bezier(0.4, 0, 0.2, 1)",
			"smooth":    "cubic-bezier(0.25, 0.1, 0.25, 1)",
			"bounce":    "cubic-bezier(0.68, -0.55, 0.265, 1.55)",
		},
		"component": Table{
			"button.default": "all 150ms cubic-bezier(0.4, 0, 0.2, 1)",
			"button.hover":   "all 100ms cubic-bezier(0.4, 0, 0.2, 1)",
			"button.active":  "all 75ms cubic-bezier(0.4, 0, 0.2, 1)",
			"modal.backdrop": "opacity 200ms ease",
			"modal.content":  "transform 300ms cubic-bezier(0, 0, 0.2, 1)",
			"tooltip":        "opacity 150ms ease",
			"dropdown":       "opacity 150ms ease, transform 150ms ease",
		},
	}
}

func defaultAnimations() TokenGroup {
	names := []string{
		"fadeIn", "fadeOut",
		"slideInUp", "slideInDown", "slideInLeft", "slideInRight",
		"slideOutUp", "slideOutDown", "slideOutLeft", "slideOutRight",
		"scaleIn", "scaleOut", "rotateIn", "rotateOut", "bounceIn", "bounceOut",
	}
	keyframes := Table{}
	for _, name := range names {
		keyframes[name] = name
	}
	classes := Table{}
	for _, name := range []string{"fadeIn", "fadeOut", "slideInUp", "slideInDown", "slideInLeft", "slideInRight", "scaleIn", "scaleOut", "bounceIn", "bounceOut"} {
		classes[name] = "animate-" + name
	}
	return TokenGroup{"keyframes": keyframes, "classes": classes}
}

func defaultComponents() TokenGroup {
	return TokenGroup{
		"button": Table{
			"variants.default":     "bg:buttonBg text:buttonText",
			"variants.secondary":   "bg:bgAlt text:text",
			"variants.destructive": "bg:error text:buttonText",
			"variants.outline":     "border:border text:text",
			"variants.ghost":       "bg:transparent text:text",
			"variants.link":        "text:linkColor",
			"sizes.sm":             "sm",
			"sizes.default":        "md",
			"sizes.lg":             "lg",
		},
		"input": Table{"variants.default": "bg:inputBg border:inputBorder", "sizes.default": "md"},
		"card":  Table{"variants.default": "bg:surface border:border", "sizes.default": "md"},
		"modal": Table{"variants.default": "bg:surface overlay:overlay", "sizes.default": "md"},
	}
}
