package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/theme"
	"github.com/fwojciec/theme/fs"
	"github.com/fwojciec/theme/gemini"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Each is also a persistent flag and a THEME_ environment variable.
const (
	keyConfig      = "config"
	keyTheme       = "theme"
	keyThemesDir   = "themes-dir"
	keySyntax      = "syntax"
	keyLogLevel    = "log-level"
	keyGeminiModel = "gemini-model"
	keyCacheDir    = "cache-dir"
)

// Config holds the resolved command-line configuration.
type Config struct {
	Theme       string
	ThemesDir   string
	Syntax      string
	LogLevel    zerolog.Level
	GeminiModel string
	CacheDir    string
}

// BindFlags registers the configuration flags and binds them to v.
func BindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	flags.String(keyConfig, "", "config file (default "+filepath.Join(fs.DefaultConfigDir(), "config.yaml")+")")
	flags.String(keyTheme, theme.DefaultDarkThemeName, "theme name")
	flags.String(keyThemesDir, fs.DefaultThemeDir(), "directory of theme family files")
	flags.String(keySyntax, "", "syntax theme overriding the theme's own")
	flags.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")
	flags.String(keyGeminiModel, gemini.DefaultModel, "Gemini model used by generate")
	flags.String(keyCacheDir, fs.DefaultCacheDir(), "cache directory for generated themes")

	for _, key := range []string{keyConfig, keyTheme, keyThemesDir, keySyntax, keyLogLevel, keyGeminiModel, keyCacheDir} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix("THEME")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// LoadConfig reads the config file, if any, and resolves the configuration.
// Precedence is flags, then environment, then config file, then defaults.
// A missing default config file is not an error; a missing explicit one is.
func LoadConfig(v *viper.Viper) (Config, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(fs.DefaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	level, err := zerolog.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", v.GetString(keyLogLevel), err)
	}

	return Config{
		Theme:       v.GetString(keyTheme),
		ThemesDir:   v.GetString(keyThemesDir),
		Syntax:      v.GetString(keySyntax),
		LogLevel:    level,
		GeminiModel: v.GetString(keyGeminiModel),
		CacheDir:    v.GetString(keyCacheDir),
	}, nil
}

// NewLogger returns a human-readable logger writing to w at level.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
