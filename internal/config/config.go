package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale       string `toml:"locale" mapstructure:"locale"`
	Currency     string `toml:"currency" mapstructure:"currency"`
	DefaultView  string `toml:"default_view" mapstructure:"default_view"`
	DefaultTrack string `toml:"default_track" mapstructure:"default_track"`
}

// LogConfig holds logger settings. The terminal belongs to the dashboard, so
// logs always go to a file.
type LogConfig struct {
	Level string `toml:"level" mapstructure:"level"`
	Path  string `toml:"path" mapstructure:"path"`
}

const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"
	DefaultView     = "overview"
	DefaultTrack    = "data"
	DefaultLogLevel = "error"
)

var (
	validViews     = []string{"overview", "education", "predictor"}
	validTracks    = []string{"web", "data", "cloud"}
	validLogLevels = []string{"silent", "error", "warn", "info", "debug"}
)

// Load reads configuration from file and env. Env var overrides use prefix
// SALARYINTEL_. An explicit path wins over SALARYINTEL_CONFIG, which wins over
// the per-user config directory.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.locale", DefaultLocale)
	v.SetDefault("ui.currency", DefaultCurrency)
	v.SetDefault("ui.default_view", DefaultView)
	v.SetDefault("ui.default_track", DefaultTrack)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.path", defaultLogPath())

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SALARYINTEL_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "salaryintel"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SALARYINTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicitly named file must exist and parse
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

// Default returns the configuration used when no file or env override exists.
func Default() Config {
	return normalize(Config{})
}

func normalize(c Config) Config {
	out := Config{
		UI: UIConfig{
			Locale:       strings.TrimSpace(c.UI.Locale),
			Currency:     strings.ToUpper(strings.TrimSpace(c.UI.Currency)),
			DefaultView:  oneOf(c.UI.DefaultView, validViews, DefaultView),
			DefaultTrack: oneOf(c.UI.DefaultTrack, validTracks, DefaultTrack),
		},
		Log: LogConfig{
			Level: oneOf(c.Log.Level, validLogLevels, DefaultLogLevel),
			Path:  strings.TrimSpace(c.Log.Path),
		},
	}
	if _, err := language.Parse(out.UI.Locale); out.UI.Locale == "" || err != nil {
		out.UI.Locale = DefaultLocale
	}
	if money.GetCurrency(out.UI.Currency) == nil {
		out.UI.Currency = DefaultCurrency
	}
	if out.Log.Path == "" {
		out.Log.Path = defaultLogPath()
	}
	return out
}

func oneOf(value string, valid []string, fallback string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, ok := range valid {
		if v == ok {
			return v
		}
	}
	return fallback
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "salaryintel", "salaryintel.log")
}
