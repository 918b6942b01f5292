// Package registry builds the validated theme registry from the built-in
// themes and caller-supplied custom themes.
package registry

import (
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Builtins returns the definitions every registry starts with.
func Builtins() []theme.Definition {
	return []theme.Definition{theme.Light(), theme.Dark()}
}

// Build seeds the registry with the built-in themes and appends every valid
// custom theme in input order. Invalid entries are skipped with a warning;
// Build never fails.
//
// The duplicate check runs before the empty-name check; rejected entries are
// never recorded as seen.
func Build(custom []theme.Definition, log *logger.Logger) theme.Registry {
	defs := Builtins()
	seen := make(map[string]struct{}, len(defs)+len(custom))
	for _, def := range defs {
		seen[def.Name] = struct{}{}
	}

	for i, def := range custom {
		if _, dup := seen[def.Name]; dup {
			log.WithFields(map[string]any{"theme": def.Name, "index": i}).
				Warn("duplicate theme name detected, skipping")
			continue
		}
		if strings.TrimSpace(def.Name) == "" {
			log.With("index", i).Warn("theme with empty name detected, skipping")
			continue
		}

		seen[def.Name] = struct{}{}
		if def.DisplayName == "" {
			def.DisplayName = def.Name
		}
		def.Config = def.Config.Clone()
		defs = append(defs, def)
	}

	return theme.RegistryOf(defs)
}

// Builder memoizes Build on the identity of the custom list: the registry is
// rebuilt only when a different slice (backing array or length) is supplied.
// It is safe for concurrent use.
type Builder struct {
	log *logger.Logger

	mu    sync.Mutex
	built bool
	ptr   *theme.Definition
	n     int
	reg   theme.Registry
}

// NewBuilder returns a Builder that logs warnings to log.
func NewBuilder(log *logger.Logger) *Builder {
	return &Builder{log: log}
}

// Registry returns the registry for custom, rebuilding it only if the list
// identity changed since the previous call.
func (b *Builder) Registry(custom []theme.Definition) theme.Registry {
	ptr, n := identity(custom)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built && b.ptr == ptr && b.n == n {
		return b.reg
	}

	b.reg = Build(custom, b.log)
	b.ptr, b.n, b.built = ptr, n, true
	return b.reg
}

func identity(list []theme.Definition) (*theme.Definition, int) {
	if len(list) == 0 {
		return nil, 0
	}
	return &list[0], len(list)
}
