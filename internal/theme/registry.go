package theme

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrThemeNotFound is returned when a name is not part of a registry.
var ErrThemeNotFound = errors.New("theme not found")

// Registry is an immutable, ordered mapping from theme name to definition.
// The zero value is an empty registry.
type Registry struct {
	names []string
	defs  map[string]Definition
}

// RegistryOf builds a registry from already validated definitions, keeping
// their order. A repeated name keeps its first definition.
func RegistryOf(defs []Definition) Registry {
	r := Registry{
		names: make([]string, 0, len(defs)),
		defs:  make(map[string]Definition, len(defs)),
	}
	for _, def := range defs {
		if _, exists := r.defs[def.Name]; exists {
			continue
		}
		r.names = append(r.names, def.Name)
		r.defs[def.Name] = def
	}
	return r
}

// Len returns the number of themes.
func (r Registry) Len() int {
	return len(r.names)
}

// Has reports whether name is registered.
func (r Registry) Has(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Lookup returns the definition registered under name.
func (r Registry) Lookup(name string) (Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Get is Lookup with an error for unknown names.
func (r Registry) Get(name string) (Definition, error) {
	def, ok := r.defs[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return def, nil
}

// Names returns the registered names in insertion order.
func (r Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Definitions returns the registered definitions in insertion order.
func (r Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.defs[name])
	}
	return out
}

// MarshalJSON encodes the registry as an ordered list of definitions.
func (r Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Definitions())
}
