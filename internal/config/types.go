package config

import (
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// ThemeFile is the on-disk list of custom themes.
type ThemeFile struct {
	Themes []theme.Definition `yaml:"themes" validate:"dive"`
}

// Persistence stores.
const (
	StoreCookie = "cookie"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Settings is the application configuration assembled from defaults, the
// config file and THEMEKIT_* environment variables.
type Settings struct {
	Theme       string              `mapstructure:"theme" yaml:"theme"`
	SSR         bool                `mapstructure:"ssr" yaml:"ssr"`
	ThemesFile  string              `mapstructure:"themes_file" yaml:"themes_file"`
	Persistence PersistenceSettings `mapstructure:"persistence" yaml:"persistence"`
	Log         LogSettings         `mapstructure:"log" yaml:"log"`
	Server      ServerSettings      `mapstructure:"server" yaml:"server"`
}

// PersistenceSettings selects where the chosen theme name is kept.
type PersistenceSettings struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled"`
	Key      string        `mapstructure:"key" yaml:"key" validate:"required"`
	Lifetime time.Duration `mapstructure:"lifetime" yaml:"lifetime" validate:"gte=0"`
	Store    string        `mapstructure:"store" yaml:"store" validate:"oneof=cookie sqlite memory"`
	// Path is the cookie file or sqlite database; empty uses the user config dir.
	Path string `mapstructure:"path" yaml:"path"`
}

// LogSettings configures internal/logger.
type LogSettings struct {
	Level string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Human bool   `mapstructure:"human" yaml:"human"`
}

// ServerSettings configures the HTTP server.
type ServerSettings struct {
	Addr string `mapstructure:"addr" yaml:"addr" validate:"required,hostname_port"`
}
