package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FORMWIDGETS_CONFIG", "")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "html", cfg.Renderer)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/assets/", cfg.Assets.Prefix)
	assert.False(t, cfg.Assets.Inline)
	assert.Nil(t, cfg.Theme.RendererConfig())
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "formwidgets.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
locale: fr
log:
  level: debug
theme:
  name: acme
  variant: dark
  css_vars:
    --brand: "#123456"
  asset_base: /themes/acme
database:
  path: rows.db
`), 0o644))

	t.Setenv("FORMWIDGETS_LOG_FORMAT", "json")
	t.Setenv("FORMWIDGETS_LOCALE", "es")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("locale", "", "")
	flags.String("db", "", "")
	require.NoError(t, flags.Parse([]string{"--locale", "de"}))

	cfg, err := Load(file, flags)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Locale, "flag beats env and file")
	assert.Equal(t, "json", cfg.Log.Format, "env beats default")
	assert.Equal(t, "debug", cfg.Log.Level, "file beats default")
	assert.Equal(t, "rows.db", cfg.Database.Path, "unset flag keeps file value")

	themeCfg := cfg.Theme.RendererConfig()
	require.NotNil(t, themeCfg)
	assert.Equal(t, "acme", themeCfg.Theme)
	assert.Equal(t, "#123456", themeCfg.CSSVars["--brand"])
	require.NotNil(t, themeCfg.AssetURL)
	assert.Equal(t, "/themes/acme/formwidgets/grid.css", themeCfg.AssetURL("formwidgets/grid.css"))
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "config: read"))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"key":"value"`)

	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "loud"}.level())
	assert.Equal(t, slog.LevelDebug, LogConfig{Level: "DEBUG"}.level())
}
