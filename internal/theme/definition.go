package theme

// Built-in theme names.
const (
	LightName = "light"
	DarkName  = "dark"
)

// Definition is a named theme.
type Definition struct {
	Name        string `yaml:"name" json:"name"`
	Config      Config `yaml:"config" json:"config"`
	DisplayName string `yaml:"themeName,omitempty" json:"themeName,omitempty"`
}

// Label returns the display name, falling back to Name.
func (d Definition) Label() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return d.Name
}

// ClassName is the marker class projected on the document root for a theme.
func ClassName(name string) string {
	return name + "-theme"
}

// Light returns the built-in light definition.
func Light() Definition {
	colors := LightColors()
	return Definition{Name: LightName, Config: Config{Colors: &colors}, DisplayName: "Light"}
}

// Dark returns the built-in dark definition.
func Dark() Definition {
	colors := DarkColors()
	return Definition{Name: DarkName, Config: Config{Colors: &colors}, DisplayName: "Dark"}
}
