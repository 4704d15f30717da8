// Package config loads CLI settings from defaults, an optional YAML file,
// FORMWIDGETS_ environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override (FORMWIDGETS_LOCALE, ...).
const EnvPrefix = "FORMWIDGETS"

// Config holds CLI settings.
type Config struct {
	Locale   string         `mapstructure:"locale"`
	Renderer string         `mapstructure:"renderer"`
	Log      LogConfig      `mapstructure:"log"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Database DatabaseConfig `mapstructure:"database"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AssetsConfig controls how component stylesheets reach the page.
type AssetsConfig struct {
	Prefix string `mapstructure:"prefix"`
	Inline bool   `mapstructure:"inline"`
}

// ThemeConfig is turned into a go-theme renderer config.
type ThemeConfig struct {
	Name    string            `mapstructure:"name"`
	Variant string            `mapstructure:"variant"`
	Tokens  map[string]string `mapstructure:"tokens"`
	CSSVars map[string]string `mapstructure:"css_vars"`
	// AssetBase, when set, is prepended to stylesheet hrefs.
	AssetBase string `mapstructure:"asset_base"`
}

// DatabaseConfig holds the sqlite path grid rows may be queried from.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// flagKeys maps config keys to the CLI flags overriding them.
var flagKeys = map[string]string{
	"locale":        "locale",
	"renderer":      "renderer",
	"log.level":     "log-level",
	"log.format":    "log-format",
	"assets.prefix": "asset-prefix",
	"assets.inline": "inline-css",
	"database.path": "db",
}

// Load reads configuration. file may be empty, in which case FORMWIDGETS_CONFIG
// or a .formwidgets.yaml in the working directory is used when present. flags
// may be nil.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault("locale", "en")
	v.SetDefault("renderer", "html")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("assets.prefix", "/assets/")
	v.SetDefault("assets.inline", false)

	explicit := strings.TrimSpace(file)
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG"))
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".formwidgets")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// Logger builds a slog logger writing to w.
func (c LogConfig) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c LogConfig) level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// RendererConfig returns the go-theme config, or nil when no theme is set.
func (t ThemeConfig) RendererConfig() *theme.RendererConfig {
	if t.Name == "" && t.Variant == "" && len(t.Tokens) == 0 && len(t.CSSVars) == 0 && t.AssetBase == "" {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
		Tokens:  t.Tokens,
		CSSVars: t.CSSVars,
	}
	if base := strings.TrimSuffix(strings.TrimSpace(t.AssetBase), "/"); base != "" {
		cfg.AssetURL = func(key string) string {
			if key == "" {
				return ""
			}
			return base + "/" + strings.TrimPrefix(key, "/")
		}
	}
	return cfg
}
