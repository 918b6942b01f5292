package theme

import (
	"sort"
	"strings"
)

// ColorConfig holds the theme-specific color slots. Values are opaque CSS
// color strings. An empty slot means "unset" when the config is used as a patch.
type ColorConfig struct {
	// Core colors
	Bg            string `yaml:"bg,omitempty" json:"bg,omitempty" validate:"omitempty,color"`
	BgAlt         string `yaml:"bgAlt,omitempty" json:"bgAlt,omitempty" validate:"omitempty,color"`
	Surface       string `yaml:"surface,omitempty" json:"surface,omitempty" validate:"omitempty,color"`
	Border        string `yaml:"border,omitempty" json:"border,omitempty" validate:"omitempty,color"`
	Text          string `yaml:"text,omitempty" json:"text,omitempty" validate:"omitempty,color"`
	TextSecondary string `yaml:"textSecondary,omitempty" json:"textSecondary,omitempty" validate:"omitempty,color"`

	// Accent
	Accent      string `yaml:"accent,omitempty" json:"accent,omitempty" validate:"omitempty,color"`
	AccentHover string `yaml:"accentHover,omitempty" json:"accentHover,omitempty" validate:"omitempty,color"`
	AccentLight string `yaml:"accentLight,omitempty" json:"accentLight,omitempty" validate:"omitempty,color"`

	// Semantic
	Success string `yaml:"success,omitempty" json:"success,omitempty" validate:"omitempty,color"`
	Warning string `yaml:"warning,omitempty" json:"warning,omitempty" validate:"omitempty,color"`
	Error   string `yaml:"error,omitempty" json:"error,omitempty" validate:"omitempty,color"`

	// Interactive states
	HoverBg     string `yaml:"hoverBg,omitempty" json:"hoverBg,omitempty" validate:"omitempty,color"`
	ActiveBg    string `yaml:"activeBg,omitempty" json:"activeBg,omitempty" validate:"omitempty,color"`
	InputBg     string `yaml:"inputBg,omitempty" json:"inputBg,omitempty" validate:"omitempty,color"`
	InputBorder string `yaml:"inputBorder,omitempty" json:"inputBorder,omitempty" validate:"omitempty,color"`
	InputFocus  string `yaml:"inputFocus,omitempty" json:"inputFocus,omitempty" validate:"omitempty,color"`

	// Shadows & overlays
	Shadow  string `yaml:"shadow,omitempty" json:"shadow,omitempty" validate:"omitempty,color"`
	Overlay string `yaml:"overlay,omitempty" json:"overlay,omitempty" validate:"omitempty,color"`

	// Code
	CodeBg   string `yaml:"codeBg,omitempty" json:"codeBg,omitempty" validate:"omitempty,color"`
	CodeText string `yaml:"codeText,omitempty" json:"codeText,omitempty" validate:"omitempty,color"`

	// Buttons
	ButtonBg      string `yaml:"buttonBg,omitempty" json:"buttonBg,omitempty" validate:"omitempty,color"`
	ButtonBgHover string `yaml:"buttonBgHover,omitempty" json:"buttonBgHover,omitempty" validate:"omitempty,color"`
	ButtonText    string `yaml:"buttonText,omitempty" json:"buttonText,omitempty" validate:"omitempty,color"`

	// Links
	LinkColor string `yaml:"linkColor,omitempty" json:"linkColor,omitempty" validate:"omitempty,color"`
	LinkHover string `yaml:"linkHover,omitempty" json:"linkHover,omitempty" validate:"omitempty,color"`
}

type colorSlot struct {
	key      string
	variable string
	ref      func(*ColorConfig) *string
}

// colorSlots is the single source of truth for slot order, slot keys and
// CSS variable names.
var colorSlots = []colorSlot{
	{"bg", "--color-bg", func(c *ColorConfig) *string { return &c.Bg }},
	{"bgAlt", "--color-bg-alt", func(c *ColorConfig) *string { return &c.BgAlt }},
	{"surface", "--color-surface", func(c *ColorConfig) *string { return &c.Surface }},
	{"border", "--color-border", func(c *ColorConfig) *string { return &c.Border }},
	{"text", "--color-text", func(c *ColorConfig) *string { return &c.Text }},
	{"textSecondary", "--color-text-secondary", func(c *ColorConfig) *string { return &c.TextSecondary }},
	{"accent", "--color-accent", func(c *ColorConfig) *string { return &c.Accent }},
	{"accentHover", "--color-accent-hover", func(c *ColorConfig) *string { return &c.AccentHover }},
	{"accentLight", "--color-accent-light", func(c *ColorConfig) *string { return &c.AccentLight }},
	{"success", "--color-success", func(c *ColorConfig) *string { return &c.Success }},
	{"warning", "--color-warning", func(c *ColorConfig) *string { return &c.Warning }},
	{"error", "--color-error", func(c *ColorConfig) *string { return &c.Error }},
	{"hoverBg", "--color-hover-bg", func(c *ColorConfig) *string { return &c.HoverBg }},
	{"activeBg", "--color-active-bg", func(c *ColorConfig) *string { return &c.ActiveBg }},
	{"inputBg", "--color-input-bg", func(c *ColorConfig) *string { return &c.InputBg }},
	{"inputBorder", "--color-input-border", func(c *ColorConfig) *string { return &c.InputBorder }},
	{"inputFocus", "--color-input-focus", func(c *ColorConfig) *string { return &c.InputFocus }},
	{"shadow", "--color-shadow", func(c *ColorConfig) *string { return &c.Shadow }},
	{"overlay", "--color-overlay", func(c *ColorConfig) *string { return &c.Overlay }},
	{"codeBg", "--color-code-bg", func(c *ColorConfig) *string { return &c.CodeBg }},
	{"codeText", "--color-code-text", func(c *ColorConfig) *string { return &c.CodeText }},
	{"buttonBg", "--button-bg", func(c *ColorConfig) *string { return &c.ButtonBg }},
	{"buttonBgHover", "--button-bg-hover", func(c *ColorConfig) *string { return &c.ButtonBgHover }},
	{"buttonText", "--button-text", func(c *ColorConfig) *string { return &c.ButtonText }},
	{"linkColor", "--link-color", func(c *ColorConfig) *string { return &c.LinkColor }},
	{"linkHover", "--link-hover", func(c *ColorConfig) *string { return &c.LinkHover }},
}

// LightColors returns the built-in light color table.
func LightColors() ColorConfig {
	return ColorConfig{
		Bg:            "#FFFFFF",
		BgAlt:         "#F6F7F9",
		Surface:       "#FFFFFF",
		Border:        "#E5E7EB",
		Text:          "#111827",
		TextSecondary: "#4B5563",

		Accent:      "#2563EB",
		AccentHover: "#1E40AF",
		AccentLight: "#E0E7FF",

		Success: "#15803D",
		Warning: "#D97706",
		Error:   "#B91C1C",

		HoverBg:     "#F3F4F6",
		ActiveBg:    "#E5E7EB",
		InputBg:     "#FFFFFF",
		InputBorder: "#D1D5DB",
		InputFocus:  "#2563EB",

		Shadow:  "rgba(0, 0, 0, 0.05)",
		Overlay: "rgba(0, 0, 0, 0.4)",

		CodeBg:   "#F3F4F6",
		CodeText: "#1F2937",

		ButtonBg:      "#2563EB",
		ButtonBgHover: "#1E40AF",
		ButtonText:    "#FFFFFF",

		LinkColor: "#2563EB",
		LinkHover: "#1E40AF",
	}
}

// DarkColors returns the built-in dark color table.
func DarkColors() ColorConfig {
	return ColorConfig{
		Bg:            "#0F1115",
		BgAlt:         "#16181D",
		Surface:       "#1C1E24",
		Border:        "#2A2D33",
		Text:          "#F3F4F6",
		TextSecondary: "#9CA3AF",

		Accent:      "#3B82F6",
		AccentHover: "#60A5FA",
		AccentLight: "#1E3A8A",

		Success: "#22C55E",
		Warning: "#EAB308",
		Error:   "#EF4444",

		HoverBg:     "#1E1F25",
		ActiveBg:    "#2A2D33",
		InputBg:     "#111317",
		InputBorder: "#3F3F46",
		InputFocus:  "#3B82F6",

		Shadow:  "rgba(0, 0, 0, 0.3)",
		Overlay: "rgba(255, 255, 255, 0.05)",

		CodeBg:   "#1E1F25",
		CodeText: "#E5E7EB",

		ButtonBg:      "#3B82F6",
		ButtonBgHover: "#60A5FA",
		ButtonText:    "#FFFFFF",

		LinkColor: "#3B82F6",
		LinkHover: "#60A5FA",
	}
}

// ColorKeys lists the slot keys in declaration order.
func ColorKeys() []string {
	keys := make([]string, len(colorSlots))
	for i, slot := range colorSlots {
		keys[i] = slot.key
	}
	return keys
}

// CSSVariableNames lists the CSS custom property names in slot order.
func CSSVariableNames() []string {
	names := make([]string, len(colorSlots))
	for i, slot := range colorSlots {
		names[i] = slot.variable
	}
	return names
}

// CSSVariables flattens a color table into CSS custom properties, one entry
// per slot.
func CSSVariables(colors ColorConfig) map[string]string {
	vars := make(map[string]string, len(colorSlots))
	for _, slot := range colorSlots {
		vars[slot.variable] = *slot.ref(&colors)
	}
	return vars
}

// Get returns the value of the slot identified by its key.
func (c ColorConfig) Get(key string) (string, bool) {
	for _, slot := range colorSlots {
		if slot.key == key {
			return *slot.ref(&c), true
		}
	}
	return "", false
}

// With returns a copy with the slot identified by key set to value.
// Unknown keys leave the config untouched and report false.
func (c ColorConfig) With(key, value string) (ColorConfig, bool) {
	for _, slot := range colorSlots {
		if slot.key == key {
			*slot.ref(&c) = value
			return c, true
		}
	}
	return c, false
}

// Overlay returns c with every non-empty slot of patch applied on top.
func (c ColorConfig) Overlay(patch ColorConfig) ColorConfig {
	for _, slot := range colorSlots {
		if v := *slot.ref(&patch); v != "" {
			*slot.ref(&c) = v
		}
	}
	return c
}

// IsZero reports whether no slot is set.
func (c ColorConfig) IsZero() bool {
	return c == ColorConfig{}
}

// Complete reports whether every slot is set.
func (c ColorConfig) Complete() bool {
	for _, slot := range colorSlots {
		if *slot.ref(&c) == "" {
			return false
		}
	}
	return true
}

// RenderCSS renders vars as a single rule for selector. Known color variables
// come first in slot order, anything else follows alphabetically.
func RenderCSS(selector string, vars map[string]string) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")

	seen := make(map[string]struct{}, len(vars))
	write := func(name string) {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(vars[name])
		b.WriteString(";\n")
		seen[name] = struct{}{}
	}

	for _, name := range CSSVariableNames() {
		if _, ok := vars[name]; ok {
			write(name)
		}
	}

	rest := make([]string, 0, len(vars))
	for name := range vars {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		write(name)
	}

	b.WriteString("}\n")
	return b.String()
}
