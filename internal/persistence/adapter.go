// Package persistence reads and writes the chosen theme name. Two strategies
// exist per adapter: caller-supplied callbacks, or a cookie under a
// configurable key.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

const (
	// DefaultKey is the storage key used when none is configured.
	DefaultKey = "userPreferences"
	// DefaultLifetime is how long a written cookie lives.
	DefaultLifetime = 365 * 24 * time.Hour
)

// Callbacks override the cookie strategy. Each one is optional; a nil
// callback falls back to the cookie for that direction only.
type Callbacks struct {
	Persist func(ctx context.Context, name string) error
	Restore func(ctx context.Context) (string, bool, error)
}

// Options configures an Adapter.
type Options struct {
	// Enabled defaults to true when nil.
	Enabled   *bool
	Key       string
	Lifetime  time.Duration
	Callbacks *Callbacks
	// Jar is the document cookie store. Nil means there is no document and
	// the cookie strategy does nothing.
	Jar CookieJar
	Now func() time.Time
}

// Bool returns a pointer to v, for Options.Enabled.
func Bool(v bool) *bool {
	return &v
}

// Adapter persists and restores a single theme name. Failures never reach
// the caller: they are logged and treated as "no value".
type Adapter struct {
	enabled   bool
	key       string
	lifetime  time.Duration
	callbacks Callbacks
	jar       CookieJar
	now       func() time.Time
	log       *logger.Logger
}

// New builds an Adapter, filling defaults.
func New(opts Options, log *logger.Logger) *Adapter {
	a := &Adapter{
		enabled:  opts.Enabled == nil || *opts.Enabled,
		key:      opts.Key,
		lifetime: opts.Lifetime,
		jar:      opts.Jar,
		now:      opts.Now,
		log:      log,
	}
	if a.key == "" {
		a.key = DefaultKey
	}
	if a.lifetime <= 0 {
		a.lifetime = DefaultLifetime
	}
	if a.now == nil {
		a.now = time.Now
	}
	if opts.Callbacks != nil {
		a.callbacks = *opts.Callbacks
	}
	return a
}

// Enabled reports whether the adapter touches storage at all.
func (a *Adapter) Enabled() bool {
	return a.enabled
}

// Key returns the storage key.
func (a *Adapter) Key() string {
	return a.key
}

// Persist writes name. It is a no-op when disabled.
func (a *Adapter) Persist(ctx context.Context, name string) {
	if !a.enabled {
		return
	}

	if a.callbacks.Persist != nil {
		err := guard(func() error { return a.callbacks.Persist(ctx, name) })
		if err != nil {
			a.log.With("theme", name).Error(themeerrors.NewPersistenceError("persist", a.key, err), "failed to persist theme")
		}
		return
	}

	if a.jar == nil {
		return
	}
	cookie := FormatCookie(a.key, name, a.now().Add(a.lifetime))
	if err := a.jar.SetCookie(cookie); err != nil {
		a.log.With("theme", name).Error(themeerrors.NewPersistenceError("persist", a.key, err), "failed to write theme cookie")
	}
}

// Restore reads the previously persisted name. ok is false when disabled,
// when nothing was stored, or when reading failed.
func (a *Adapter) Restore(ctx context.Context) (name string, ok bool) {
	if !a.enabled {
		return "", false
	}

	if a.callbacks.Restore != nil {
		err := guard(func() error {
			var err error
			name, ok, err = a.callbacks.Restore(ctx)
			return err
		})
		if err != nil {
			a.log.Error(themeerrors.NewPersistenceError("restore", a.key, err), "failed to restore theme")
			return "", false
		}
		return name, ok
	}

	if a.jar == nil {
		return "", false
	}
	cookies, ok := a.jar.Cookie()
	if !ok {
		return "", false
	}
	return LookupCookie(cookies, a.key)
}

// guard runs fn, converting a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
