package theme_test

import (
	"testing"

	"github.com/fwojciec/theme"
	"github.com/stretchr/testify/assert"
)

func TestSyntaxTheme_Get(t *testing.T) {
	t.Parallel()

	syntax := theme.NewSyntaxTheme("test", []theme.SyntaxHighlight{
		{Name: "keyword", Style: theme.HighlightStyle{Color: theme.Rgb(0xff00ff), Bold: true}},
		{Name: "string", Style: theme.HighlightStyle{Color: theme.Rgb(0x00ff00)}},
		{Name: "string.escape", Style: theme.HighlightStyle{Color: theme.Rgb(0x888888)}},
	})

	t.Run("exact match", func(t *testing.T) {
		t.Parallel()

		style, ok := syntax.Get("string.escape")
		assert.True(t, ok)
		assert.Equal(t, theme.Rgb(0x888888), style.Color)
	})

	t.Run("falls back to parent scope", func(t *testing.T) {
		t.Parallel()

		style, ok := syntax.Get("keyword.control.import")
		assert.True(t, ok)
		assert.True(t, style.Bold)
		assert.Equal(t, theme.Rgb(0xff00ff), style.Color)
	})

	t.Run("unknown names are not found", func(t *testing.T) {
		t.Parallel()

		_, ok := syntax.Get("comment")
		assert.False(t, ok)
	})
}

func TestNewSyntaxTheme(t *testing.T) {
	t.Parallel()

	highlights := []theme.SyntaxHighlight{{Name: "comment"}}
	syntax := theme.NewSyntaxTheme("copy", highlights)
	highlights[0].Name = "changed"

	assert.Equal(t, "comment", syntax.Highlights()[0].Name)
}

func TestDefaultSyntaxTheme(t *testing.T) {
	t.Parallel()

	for _, a := range []theme.Appearance{theme.AppearanceLight, theme.AppearanceDark} {
		syntax := theme.DefaultSyntaxTheme(a)
		for _, name := range []string{"keyword", "string", "comment", "function", "type", "number"} {
			_, ok := syntax.Get(name)
			assert.True(t, ok, "%s syntax theme missing %q", a, name)
		}
	}
}
