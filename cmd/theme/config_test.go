package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/theme"
	main "github.com/fwojciec/theme/cmd/theme"
	"github.com/fwojciec/theme/gemini"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(t *testing.T, args ...string) (main.Config, error) {
	t.Helper()
	v := viper.New()
	flags := pflag.NewFlagSet("theme", pflag.ContinueOnError)
	require.NoError(t, main.BindFlags(flags, v))
	require.NoError(t, flags.Parse(args))
	return main.LoadConfig(v)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", "/cache")

	cfg, err := newConfig(t)

	require.NoError(t, err)
	assert.Equal(t, theme.DefaultDarkThemeName, cfg.Theme)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
	assert.Equal(t, gemini.DefaultModel, cfg.GeminiModel)
	assert.Equal(t, filepath.Join("/cache", "theme"), cfg.CacheDir)
	assert.Empty(t, cfg.Syntax)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "theme"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme", "config.yaml"), []byte(
		"theme: One Light\nsyntax: dracula\nlog-level: debug\n",
	), 0644))
	t.Setenv("THEME_SYNTAX", "monokai")

	cfg, err := newConfig(t, "--log-level", "error")

	require.NoError(t, err)
	assert.Equal(t, "One Light", cfg.Theme, "config file")
	assert.Equal(t, "monokai", cfg.Syntax, "environment beats config file")
	assert.Equal(t, zerolog.ErrorLevel, cfg.LogLevel, "flag beats config file")
}

func TestLoadConfig_EnvironmentWithDashes(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("THEME_THEMES_DIR", "/srv/themes")

	cfg, err := newConfig(t)

	require.NoError(t, err)
	assert.Equal(t, "/srv/themes", cfg.ThemesDir)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	t.Parallel()

	t.Run("reads the given file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("themes-dir: /opt/themes\ngemini-model: gemini-pro\n"), 0644))

		cfg, err := newConfig(t, "--config", path)

		require.NoError(t, err)
		assert.Equal(t, "/opt/themes", cfg.ThemesDir)
		assert.Equal(t, "gemini-pro", cfg.GeminiModel)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := newConfig(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))

		assert.ErrorContains(t, err, "read config")
	})
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := newConfig(t, "--log-level", "loud")

	assert.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := main.NewLogger(&buf, zerolog.InfoLevel)

	logger.Debug().Msg("hidden")
	logger.Info().Str("theme", "One Dark").Msg("loaded")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "loaded")
	assert.Contains(t, buf.String(), "One Dark")
}
