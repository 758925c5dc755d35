package jsonl_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/theme"
	"github.com/fwojciec/theme/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_Append(t *testing.T) {
	t.Parallel()

	t.Run("appended records load back", func(t *testing.T) {
		t.Parallel()

		bg := theme.Rgb(0x0b1d2a)
		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		g := theme.Generation{
			Description: "deep ocean",
			Appearance:  theme.AppearanceDark,
			Model:       "gemini-test",
			CreatedAt:   created,
			Theme: theme.ThemeContent{
				Name:       "Deep Ocean",
				Appearance: theme.AppearanceDark,
				Style:      theme.ThemeStylesRefinement{Colors: &theme.ThemeColorsRefinement{Background: &bg}},
			},
		}
		log := jsonl.NewLog(filepath.Join(t.TempDir(), "history.jsonl"))

		require.NoError(t, log.Append(g))
		records, err := log.Load()

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "deep ocean", records[0].Description)
		assert.Equal(t, "gemini-test", records[0].Model)
		assert.True(t, created.Equal(records[0].CreatedAt))
		assert.Equal(t, bg, *records[0].Theme.Style.Colors.Background)
	})

	t.Run("appends to existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "existing.jsonl")
		existing := `{"description":"old","appearance":"light","theme":{"name":"Old","style":{}}}` + "\n"
		require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

		err := jsonl.NewLog(path).Append(theme.Generation{Description: "new", Theme: theme.ThemeContent{Name: "New"}})

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], `"description":"old"`)
		assert.Contains(t, lines[1], `"description":"new"`)
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "deep", "history.jsonl")
		log := jsonl.NewLog(path)

		require.NoError(t, log.Append(theme.Generation{Theme: theme.ThemeContent{Name: "T"}}))

		assert.FileExists(t, path)
		assert.Equal(t, path, log.Path())
	})
}
