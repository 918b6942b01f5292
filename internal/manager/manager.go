// Package manager owns the active theme: the current name, transient config
// overrides, readiness, and the restore, persist and projection side effects.
package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/themekit/internal/dom"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/persistence"
	"github.com/alexisbeaulieu97/themekit/internal/registry"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// ErrClosed is returned by operations on a closed manager.
var ErrClosed = errors.New("theme manager closed")

// Phase is the restore lifecycle of a manager.
type Phase int

const (
	// PhaseUninitialized is the state before Mount.
	PhaseUninitialized Phase = iota
	// PhaseRestoring means the one restore attempt is in flight.
	PhaseRestoring
	// PhaseReady is terminal until Close.
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseRestoring:
		return "restoring"
	case PhaseReady:
		return "ready"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Options configures a Manager.
type Options struct {
	// Themes are merged into the registry after the built-ins.
	Themes []theme.Definition
	// Theme is the initial theme name, "light" when empty. It is not
	// validated against the registry.
	Theme string
	// OnThemeChange is called with the new name whenever the active theme
	// changes once ready.
	OnThemeChange func(name string)
	// SSR keeps the manager not ready until the restore attempt resolves.
	SSR         bool
	Persistence persistence.Options
	// Document receives the projection. Nil disables projection.
	Document dom.Document
	Logger   *logger.Logger
	// Builder lets several managers share registry memoization.
	Builder *registry.Builder
}

// Value is a consistent snapshot of what consumers read.
type Value struct {
	CurrentTheme string
	Themes       theme.Registry
	Theme        theme.Config
	Colors       theme.ColorConfig
	Ready        bool
}

// Manager is the theme provider state machine. It is safe for concurrent use.
type Manager struct {
	id       string
	log      *logger.Logger
	builder  *registry.Builder
	adapter  *persistence.Adapter
	doc      dom.Document
	onChange func(string)
	queue    *persistQueue

	mu         sync.Mutex
	registry   theme.Registry
	current    string
	updates    theme.Config
	phase      Phase
	hydrated   bool
	closed     bool
	generation uint64
	cancel     context.CancelFunc
	readyCh    chan struct{}
	doneCh     chan struct{}
}

// New builds a manager in PhaseUninitialized. Nothing is restored,
// persisted or projected until Mount.
func New(opts Options) *Manager {
	id := uuid.NewString()
	log := opts.Logger.With("manager", id)

	builder := opts.Builder
	if builder == nil {
		builder = registry.NewBuilder(log)
	}

	initial := opts.Theme
	if initial == "" {
		initial = theme.LightName
	}

	m := &Manager{
		id:       id,
		log:      log,
		builder:  builder,
		adapter:  persistence.New(opts.Persistence, log),
		doc:      opts.Document,
		onChange: opts.OnThemeChange,
		registry: builder.Registry(opts.Themes),
		current:  initial,
		hydrated: !opts.SSR,
		readyCh:  make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	m.queue = newPersistQueue(m.persist)

	if !m.registry.Has(initial) {
		m.log.WithFields(map[string]any{
			"theme":     initial,
			"available": strings.Join(m.registry.Names(), ", "),
		}).Warn("initial theme not found in registry, derived values fall back to light")
	}

	return m
}

// ID identifies the manager in logs.
func (m *Manager) ID() string {
	return m.id
}

// Mount starts the single restore attempt. Further calls are no-ops.
func (m *Manager) Mount(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if m.phase != PhaseUninitialized {
		m.mu.Unlock()
		return nil
	}

	m.phase = PhaseRestoring
	gen := m.generation
	restoreCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	if m.hydrated {
		m.projectLocked()
	}
	m.mu.Unlock()

	m.log.Debug("restoring persisted theme")
	go m.restore(restoreCtx, gen, cancel)
	return nil
}

func (m *Manager) restore(ctx context.Context, gen uint64, cancel context.CancelFunc) {
	defer cancel()

	name, ok := m.adapter.Restore(ctx)

	m.mu.Lock()
	if m.closed || gen != m.generation {
		m.mu.Unlock()
		m.log.Debug("discarding restore result for closed manager")
		return
	}

	prev := m.current
	if ok && name != "" && m.registry.Has(name) {
		m.current = name
	}
	changed := m.current != prev
	wasHydrated := m.hydrated

	m.phase = PhaseReady
	m.hydrated = true
	m.cancel = nil

	if changed || !wasHydrated {
		m.projectLocked()
	}
	notify := m.enqueuePersistLocked(changed)
	m.mu.Unlock()

	m.notify(notify)
	m.log.WithFields(map[string]any{"theme": m.CurrentTheme(), "restored": ok}).Debug("theme manager ready")
	close(m.readyCh)
}

// WaitReady blocks until the restore attempt has resolved.
func (m *Manager) WaitReady(ctx context.Context) error {
	select {
	case <-m.readyCh:
		return nil
	case <-m.doneCh:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready reports whether consumers may render the state as final. Without
// SSR this is true from construction.
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hydrated
}

// Phase returns the lifecycle phase.
func (m *Manager) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// Sync waits for every persist queued so far to finish.
func (m *Manager) Sync() {
	m.queue.flush()
}

// Close cancels a pending restore, finishes queued persists and marks the
// manager closed. A restore that resolves later is discarded.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	m.generation++
	cancel := m.cancel
	m.cancel = nil
	close(m.doneCh)
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.queue.close()
	return nil
}

// UpdateTheme switches to name and discards config overrides. An unknown
// name is logged and leaves the state untouched; the returned error wraps
// theme.ErrThemeNotFound.
func (m *Manager) UpdateTheme(name string) error {
	m.mu.Lock()
	notify, err := m.switchLocked(name)
	m.mu.Unlock()

	m.notify(notify)
	return err
}

// ToggleTheme switches to dark from light and to light from anything else.
func (m *Manager) ToggleTheme() error {
	m.mu.Lock()
	next := theme.LightName
	if m.current == theme.LightName {
		next = theme.DarkName
	}
	notify, err := m.switchLocked(next)
	m.mu.Unlock()

	m.notify(notify)
	return err
}

func (m *Manager) switchLocked(name string) (string, error) {
	if m.closed {
		return "", ErrClosed
	}
	if !m.registry.Has(name) {
		available := strings.Join(m.registry.Names(), ", ")
		m.log.WithFields(map[string]any{"theme": name, "available": available}).
			Warn("theme not found in registry")
		return "", fmt.Errorf("%w: %q (available: %s)", theme.ErrThemeNotFound, name, available)
	}

	changed := m.current != name
	m.current = name
	m.updates = theme.Config{}
	m.projectLocked()
	return m.enqueuePersistLocked(changed), nil
}

// UpdateConfig merges patch into the transient overrides: each object in
// patch is merged one level deep, nothing deeper.
func (m *Manager) UpdateConfig(patch theme.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.updates = m.updates.Merge(patch)
	m.projectLocked()
	return nil
}

// SetThemes replaces the custom theme list. The registry is rebuilt only when
// the list identity changes. The current name is kept even if it is no
// longer registered.
func (m *Manager) SetThemes(custom []theme.Definition) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.registry = m.builder.Registry(custom)
	m.projectLocked()
	return nil
}

// CurrentTheme returns the active theme name as set, which may not be
// registered (see ActiveDefinition).
func (m *Manager) CurrentTheme() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Themes returns the registry.
func (m *Manager) Themes() theme.Registry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registry
}

// Updates returns a copy of the transient overrides.
func (m *Manager) Updates() theme.Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updates.Clone()
}

// ActiveDefinition returns the definition in effect: the current theme, or
// light when the current name is not registered.
func (m *Manager) ActiveDefinition() theme.Definition {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeDefinitionLocked()
}

// Colors returns the active colors.
func (m *Manager) Colors() theme.ColorConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.colorsLocked()
}

// Theme returns the full active config with absent groups filled from
// defaults.
func (m *Manager) Theme() theme.Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.themeLocked()
}

// Value returns a snapshot of the consumer-facing state.
func (m *Manager) Value() Value {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Value{
		CurrentTheme: m.current,
		Themes:       m.registry,
		Theme:        m.themeLocked(),
		Colors:       m.colorsLocked(),
		Ready:        m.hydrated,
	}
}

func (m *Manager) activeDefinitionLocked() theme.Definition {
	if def, ok := m.registry.Lookup(m.current); ok {
		return def
	}
	if def, ok := m.registry.Lookup(theme.LightName); ok {
		return def
	}
	return theme.Light()
}

// colorsLocked layers the overrides slot by slot on the definition's colors,
// themselves completed from the light table.
func (m *Manager) colorsLocked() theme.ColorConfig {
	colors := theme.LightColors()
	if def := m.activeDefinitionLocked(); def.Config.Colors != nil {
		colors = colors.Overlay(*def.Config.Colors)
	}
	if m.updates.Colors != nil {
		colors = colors.Overlay(*m.updates.Colors)
	}
	return colors
}

func (m *Manager) themeLocked() theme.Config {
	cfg := m.activeDefinitionLocked().Config.Overlay(m.updates)
	colors := m.colorsLocked()
	cfg.Colors = &colors
	return cfg.WithDefaults()
}

// projectLocked writes the marker class and color variables to the document
// root. It does nothing before Mount, before hydration, or without a
// document.
func (m *Manager) projectLocked() {
	if m.doc == nil || !m.hydrated || m.phase == PhaseUninitialized || m.closed {
		return
	}
	root := m.doc.Root()
	if root == nil {
		return
	}

	for _, name := range m.registry.Names() {
		root.RemoveClass(theme.ClassName(name))
	}
	root.AddClass(theme.ClassName(m.current))

	colors := m.colorsLocked()
	vars := theme.CSSVariables(colors)
	for _, name := range theme.CSSVariableNames() {
		root.SetProperty(name, vars[name])
	}
}

// enqueuePersistLocked queues a persist for the current name when it changed
// and side effects are enabled, returning the name to notify with.
func (m *Manager) enqueuePersistLocked(changed bool) string {
	if !changed || !m.hydrated || m.phase == PhaseUninitialized {
		return ""
	}
	m.queue.push(m.current)
	return m.current
}

func (m *Manager) persist(name string) {
	m.adapter.Persist(context.Background(), name)
	m.log.With("theme", name).Debug("theme persisted")
}

func (m *Manager) notify(name string) {
	if name == "" || m.onChange == nil {
		return
	}
	m.onChange(name)
}
