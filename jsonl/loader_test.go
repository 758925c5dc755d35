package jsonl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/theme"
	"github.com/fwojciec/theme/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads valid JSONL file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "history.jsonl")
		content := `{"description":"ocean","appearance":"dark","created_at":"2026-01-02T03:04:05Z","theme":{"name":"Deep Ocean","appearance":"dark","style":{"colors":{"background":"#0b1d2a"}}}}
{"description":"paper","appearance":"light","created_at":"2026-01-03T03:04:05Z","theme":{"name":"Paper","appearance":"light","style":{}}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		records, err := jsonl.NewLog(path).Load()

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "ocean", records[0].Description)
		assert.Equal(t, theme.AppearanceDark, records[0].Appearance)
		assert.Equal(t, "Deep Ocean", records[0].Theme.Name)
		require.NotNil(t, records[0].Theme.Style.Colors)
		assert.Equal(t, theme.Rgb(0x0b1d2a), *records[0].Theme.Style.Colors.Background)
		assert.Equal(t, theme.AppearanceLight, records[1].Theme.Appearance)
	})

	t.Run("missing file is an empty log", func(t *testing.T) {
		t.Parallel()

		records, err := jsonl.NewLog(filepath.Join(t.TempDir(), "none.jsonl")).Load()

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("returns error for malformed JSON line", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.jsonl")
		content := `{"description":"a","appearance":"dark","theme":{"name":"A","style":{}}}
not valid json`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := jsonl.NewLog(path).Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("returns error for invalid colors", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.jsonl")
		content := `{"description":"a","appearance":"dark","theme":{"name":"A","style":{"colors":{"text":"red"}}}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := jsonl.NewLog(path).Load()

		assert.True(t, theme.IsParseError(err, theme.InvalidColorLiteral))
	})

	t.Run("skips empty lines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "with-blanks.jsonl")
		content := `{"description":"a","appearance":"dark","theme":{"name":"A","style":{}}}

{"description":"b","appearance":"light","theme":{"name":"B","style":{}}}
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		records, err := jsonl.NewLog(path).Load()

		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}
