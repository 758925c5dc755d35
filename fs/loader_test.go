package fs_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/theme"
	"github.com/fwojciec/theme/fs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sunset = `{
	"name": "Sunset",
	"themes": [
		{
			"name": "Sunset Dark",
			"appearance": "dark",
			"style": {
				"colors": {"background": "#1d1a26", "sparkle": "#ffffff"},
				"status": {"error": "#ff5e5b", "fatal": "#000000"}
			}
		}
	]
}`

const dawn = `{"name": "Dawn", "themes": [{"name": "Dawn Light", "appearance": "light", "style": {}}]}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads a single file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "sunset.json", sunset)

		families, err := fs.NewLoader().Load(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, families, 1)
		assert.Equal(t, "Sunset", families[0].Name)
		require.Len(t, families[0].Themes, 1)
		assert.Equal(t, theme.Rgb(0x1d1a26), *families[0].Themes[0].Style.Colors.Background)
	})

	t.Run("loads every json file of a directory in name order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "b-sunset.json", sunset)
		writeFile(t, dir, "a-dawn.JSON", dawn)
		writeFile(t, dir, "notes.txt", "not a theme")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0755))

		families, err := fs.NewLoader(fs.WithConcurrency(1)).Load(context.Background(), dir)

		require.NoError(t, err)
		require.Len(t, families, 2)
		assert.Equal(t, "Dawn", families[0].Name)
		assert.Equal(t, "Sunset", families[1].Name)
	})

	t.Run("empty directory loads nothing", func(t *testing.T) {
		t.Parallel()

		families, err := fs.NewLoader().Load(context.Background(), t.TempDir())

		require.NoError(t, err)
		assert.Empty(t, families)
	})

	t.Run("fails on a file that does not parse", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "good.json", dawn)
		bad := writeFile(t, dir, "bad.json", `{"name": "Bad", "themes": [{"name": "x", "style": {"colors": {"text": "red"}}}]}`)

		_, err := fs.NewLoader().Load(context.Background(), dir)

		require.Error(t, err)
		assert.True(t, theme.IsParseError(err, theme.InvalidColorLiteral))
		assert.Contains(t, err.Error(), bad)
	})

	t.Run("missing paths wrap ErrNotExist", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled context stops a directory load", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "dawn.json", dawn)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewLoader().Load(ctx, dir)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("logs unknown slots", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		path := writeFile(t, t.TempDir(), "sunset.json", sunset)

		_, err := fs.NewLoader(fs.WithLogger(zerolog.New(&buf))).Load(context.Background(), path)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Sunset Dark: colors.sparkle")
		assert.Contains(t, buf.String(), "Sunset Dark: status.fatal")
		assert.Contains(t, buf.String(), `"level":"warn"`)
	})
}

func TestUnknownSlots(t *testing.T) {
	t.Parallel()

	t.Run("qualifies keys with theme and category", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"Sunset Dark: colors.sparkle", "Sunset Dark: status.fatal"}, fs.UnknownSlots([]byte(sunset)))
	})

	t.Run("known keys only", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, fs.UnknownSlots([]byte(dawn)))
	})

	t.Run("unparseable documents", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, fs.UnknownSlots([]byte(`[1, 2]`)))
	})
}

func TestDefaultThemeDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	assert.Equal(t, "/tmp/xdg-config/theme", fs.DefaultConfigDir())
	assert.Equal(t, "/tmp/xdg-config/theme/themes", fs.DefaultThemeDir())
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	assert.Equal(t, "/tmp/xdg-cache/theme", fs.DefaultCacheDir())
}
