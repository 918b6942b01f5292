package manager

import (
	"context"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

type contextKey struct{}

// NewContext returns a copy of ctx that carries m. Everything constructed
// from the returned context is inside the provider.
func NewContext(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// Lookup returns the manager carried by ctx, if any.
func Lookup(ctx context.Context) (*Manager, bool) {
	if ctx == nil {
		return nil, false
	}
	m, ok := ctx.Value(contextKey{}).(*Manager)
	return m, ok && m != nil
}

// FromContext returns the manager carried by ctx. Reading the theme outside a
// provider is a programming error, so it panics with a *errors.UsageError.
func FromContext(ctx context.Context) *Manager {
	m, ok := Lookup(ctx)
	if !ok {
		panic(themeerrors.NewUsageError("manager.FromContext", "theme manager must be used within a provider"))
	}
	return m
}
