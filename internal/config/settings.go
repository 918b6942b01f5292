package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/persistence"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// EnvPrefix prefixes every environment override, e.g. THEMEKIT_LOG_LEVEL.
const EnvPrefix = "THEMEKIT"

// Loader assembles Settings. Callers may bind command-line flags on Viper()
// before Load.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults and environment overrides.
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "light")
	v.SetDefault("ssr", false)
	v.SetDefault("themes_file", "")
	v.SetDefault("persistence.enabled", true)
	v.SetDefault("persistence.key", persistence.DefaultKey)
	v.SetDefault("persistence.lifetime", persistence.DefaultLifetime)
	v.SetDefault("persistence.store", StoreCookie)
	v.SetDefault("persistence.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", true)
	v.SetDefault("server.addr", "127.0.0.1:8080")
}

// Viper exposes the underlying instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load reads configFile, or themekit.yaml from the working directory and the
// user config directory when configFile is empty. A missing default file is
// not an error.
func (l *Loader) Load(configFile string) (*Settings, error) {
	if configFile != "" {
		l.v.SetConfigFile(configFile)
	} else {
		l.v.SetConfigName("themekit")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			l.v.AddConfigPath(filepath.Join(dir, "themekit"))
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, themeerrors.NewParseError(l.configPath(configFile), extractLine(err), err)
		}
	}

	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return nil, themeerrors.NewParseError(l.configPath(configFile), 0, err)
	}
	if err := ValidateSettings(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (l *Loader) configPath(configFile string) string {
	if used := l.v.ConfigFileUsed(); used != "" {
		return used
	}
	if configFile != "" {
		return configFile
	}
	return "themekit.yaml"
}

// LoadSettings is NewLoader().Load(configFile).
func LoadSettings(configFile string) (*Settings, error) {
	return NewLoader().Load(configFile)
}

// LoggerOptions maps the log settings onto internal/logger.
func (s Settings) LoggerOptions(w io.Writer) logger.Options {
	return logger.Options{
		Level:         s.Log.Level,
		HumanReadable: s.Log.Human,
		Writer:        w,
	}
}

// PersistenceOptions maps the persistence settings onto the adapter options.
// The cookie jar or store callbacks are chosen by the caller.
func (s Settings) PersistenceOptions() persistence.Options {
	return persistence.Options{
		Enabled:  persistence.Bool(s.Persistence.Enabled),
		Key:      s.Persistence.Key,
		Lifetime: s.Persistence.Lifetime,
	}
}
