package theme

// Config is a theme configuration. Colors vary per theme, every other group
// is shared. All fields are optional: a nil Colors or a nil group means the
// value is absent and falls back to defaults at read time.
type Config struct {
	Colors      *ColorConfig `yaml:"colors,omitempty" json:"colors,omitempty"`
	Typography  TokenGroup   `yaml:"typography,omitempty" json:"typography,omitempty"`
	Spacing     TokenGroup   `yaml:"spacing,omitempty" json:"spacing,omitempty"`
	Breakpoints TokenGroup   `yaml:"breakpoints,omitempty" json:"breakpoints,omitempty"`
	Container   TokenGroup   `yaml:"container,omitempty" json:"container,omitempty"`
	Shadows     TokenGroup   `yaml:"shadows,omitempty" json:"shadows,omitempty"`
	ZIndex      TokenGroup   `yaml:"zIndex,omitempty" json:"zIndex,omitempty"`
	Shape       TokenGroup   `yaml:"shape,omitempty" json:"shape,omitempty"`
	Transitions TokenGroup   `yaml:"transitions,omitempty" json:"transitions,omitempty"`
	Animations  TokenGroup   `yaml:"animations,omitempty" json:"animations,omitempty"`
	Components  TokenGroup   `yaml:"components,omitempty" json:"components,omitempty"`
}

func (c *Config) groupRef(cat Category) *TokenGroup {
	switch cat {
	case CategoryTypography:
		return &c.Typography
	case CategorySpacing:
		return &c.Spacing
	case CategoryBreakpoints:
		return &c.Breakpoints
	case CategoryContainer:
		return &c.Container
	case CategoryShadows:
		return &c.Shadows
	case CategoryZIndex:
		return &c.ZIndex
	case CategoryShape:
		return &c.Shape
	case CategoryTransitions:
		return &c.Transitions
	case CategoryAnimations:
		return &c.Animations
	case CategoryComponents:
		return &c.Components
	default:
		return nil
	}
}

// Group returns the token group for a category, or nil when absent.
func (c Config) Group(cat Category) TokenGroup {
	if ref := c.groupRef(cat); ref != nil {
		return *ref
	}
	return nil
}

// WithGroup returns a copy of c with the category replaced by group.
func (c Config) WithGroup(cat Category, group TokenGroup) Config {
	out := c.Clone()
	if ref := out.groupRef(cat); ref != nil {
		*ref = group.Clone()
	}
	return out
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	out := Config{}
	if c.Colors != nil {
		colors := *c.Colors
		out.Colors = &colors
	}
	for _, cat := range categories {
		*out.groupRef(cat) = c.Group(cat).Clone()
	}
	return out
}

// IsZero reports whether nothing is set.
func (c Config) IsZero() bool {
	if c.Colors != nil {
		return false
	}
	for _, cat := range categories {
		if c.Group(cat) != nil {
			return false
		}
	}
	return true
}

// Merge accumulates patch into c the way partial config updates do: every
// object present in patch is merged one level deep into the existing one
// (color slots individually, group keys individually); nested tables and
// scalars below that level are replaced wholesale.
func (c Config) Merge(patch Config) Config {
	out := c.Clone()
	if patch.Colors != nil {
		base := ColorConfig{}
		if out.Colors != nil {
			base = *out.Colors
		}
		merged := base.Overlay(*patch.Colors)
		out.Colors = &merged
	}
	for _, cat := range categories {
		if p := patch.Group(cat); p != nil {
			*out.groupRef(cat) = out.Group(cat).Merge(p)
		}
	}
	return out
}

// Overlay is the shallow top-level merge: every field present in updates
// replaces the corresponding field of c.
func (c Config) Overlay(updates Config) Config {
	out := c.Clone()
	if updates.Colors != nil {
		colors := *updates.Colors
		out.Colors = &colors
	}
	for _, cat := range categories {
		if u := updates.Group(cat); u != nil {
			*out.groupRef(cat) = u.Clone()
		}
	}
	return out
}

// WithDefaults fills every absent field from the built-in light colors and
// the shared default tokens.
func (c Config) WithDefaults() Config {
	out := c.Clone()
	if out.Colors == nil {
		light := LightColors()
		out.Colors = &light
	}
	defaults := DefaultTokens()
	for _, cat := range categories {
		if out.Group(cat) == nil {
			*out.groupRef(cat) = defaults.Group(cat)
		}
	}
	return out
}
