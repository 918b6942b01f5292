package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/dom"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/manager"
	"github.com/alexisbeaulieu97/themekit/internal/persistence"
	"github.com/alexisbeaulieu97/themekit/internal/registry"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// appContext bundles the services created once per invocation.
type appContext struct {
	settings *config.Settings
	log      *logger.Logger
	themes   []theme.Definition
	builder  *registry.Builder
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	loader := config.NewLoader()
	bindFlags(cmd, flags, loader)

	settings, err := loader.Load(flags.configFile)
	if err != nil {
		return nil, newCommandError("load settings", valueOrFallback(flags.configFile, "themekit.yaml"), err,
			"Check the settings file and THEMEKIT_* environment variables.")
	}

	log, err := logger.New(settings.LoggerOptions(cmd.ErrOrStderr()))
	if err != nil {
		return nil, newCommandError("configure logging", settings.Log.Level, err, "Use one of debug, info, warn or error.")
	}

	var themes []theme.Definition
	if settings.ThemesFile != "" {
		themes, err = config.ParseThemes(settings.ThemesFile)
		if err != nil {
			return nil, newCommandError("load themes", settings.ThemesFile, err,
				"Fix the reported line or run without --themes to use the built-in themes.")
		}
	}

	return &appContext{
		settings: settings,
		log:      log.With("component", "cli"),
		themes:   themes,
		builder:  registry.NewBuilder(log),
	}, nil
}

// bindFlags overrides settings with flags the user actually passed.
func bindFlags(cmd *cobra.Command, flags *rootFlags, loader *config.Loader) {
	v := loader.Viper()
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("theme") {
		v.Set("theme", flags.theme)
	}
	if changed("themes") {
		v.Set("themes_file", flags.themesFile)
	}
	if changed("store") {
		v.Set("persistence.store", flags.store)
	}
	if changed("store-path") {
		v.Set("persistence.path", flags.storePath)
	}
	if changed("log-level") {
		v.Set("log.level", flags.logLevel)
	}
	if flags.verbose {
		v.Set("log.level", "debug")
	}
}

// managerOptions tweak a single manager.
type managerOptions struct {
	theme         string
	noPersistence bool
	document      dom.Document
	onThemeChange func(name string)
	// wait blocks until the saved preference is restored.
	wait bool
}

// openManager mounts a manager over the configured store. The returned
// cleanup flushes pending writes and releases the store.
func (a *appContext) openManager(ctx context.Context, opts managerOptions) (*manager.Manager, func(), error) {
	popts, release, err := a.persistenceOptions(ctx)
	if err != nil {
		return nil, nil, err
	}
	if opts.noPersistence {
		popts = persistence.Options{Enabled: persistence.Bool(false)}
	}

	a.log.With("store", describeStore(a.settings)).Debug("opening theme manager")

	initial := a.settings.Theme
	if opts.theme != "" {
		initial = opts.theme
	}

	mgr := manager.New(manager.Options{
		Themes:        a.themes,
		Theme:         initial,
		OnThemeChange: opts.onThemeChange,
		SSR:           a.settings.SSR,
		Persistence:   popts,
		Document:      opts.document,
		Logger:        a.log,
		Builder:       a.builder,
	})

	cleanup := func() {
		if err := mgr.Close(); err != nil {
			a.log.Error(err, "failed to close theme manager")
		}
		release()
	}

	if err := mgr.Mount(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	if opts.wait {
		if err := mgr.WaitReady(ctx); err != nil {
			cleanup()
			return nil, nil, err
		}
	}
	return mgr, cleanup, nil
}

// persistenceOptions resolves the configured store into adapter options.
func (a *appContext) persistenceOptions(ctx context.Context) (persistence.Options, func(), error) {
	opts := a.settings.PersistenceOptions()
	path := a.settings.Persistence.Path
	noop := func() {}

	switch a.settings.Persistence.Store {
	case config.StoreSQLite:
		if path == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return opts, nil, newCommandError("open preference store", "resolving config directory", err,
					"Set persistence.path or pass --store-path.")
			}
			path = filepath.Join(dir, "themekit", "themekit.db")
		}
		store, err := persistence.OpenSQLite(path)
		if err != nil {
			return opts, nil, newCommandError("open preference store", path, err, "Check the database path permissions.")
		}
		applied, err := store.MigrateUp(ctx)
		if err != nil {
			_ = store.Close()
			return opts, nil, newCommandError("migrate preference store", path, err, "Remove the database file to start fresh.")
		}
		if applied > 0 {
			a.log.WithFields(map[string]any{"path": path, "migrations": applied}).Debug("migrated preference store")
		}
		opts.Callbacks = store.Callbacks(opts.Key)
		return opts, func() {
			if err := store.Close(); err != nil {
				a.log.Error(err, "failed to close preference store")
			}
		}, nil

	case config.StoreMemory:
		opts.Callbacks = persistence.StoreCallbacks(persistence.NewMapStore(), opts.Key)
		return opts, noop, nil

	case config.StoreCookie, "":
		if path == "" {
			var err error
			path, err = persistence.DefaultJarPath()
			if err != nil {
				return opts, nil, newCommandError("open preference store", "resolving cookie file", err,
					"Set persistence.path or pass --store-path.")
			}
		}
		jar, err := persistence.NewFileJar(path)
		if err != nil {
			return opts, nil, newCommandError("open preference store", path, err, "Check the cookie file permissions.")
		}
		opts.Jar = jar
		return opts, noop, nil

	default:
		return opts, nil, newCommandError("open preference store", a.settings.Persistence.Store,
			errors.New("unknown store"), "Use cookie, sqlite or memory.")
	}
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func describeStore(s *config.Settings) string {
	if s.Persistence.Path == "" {
		return s.Persistence.Store
	}
	return fmt.Sprintf("%s (%s)", s.Persistence.Store, s.Persistence.Path)
}
