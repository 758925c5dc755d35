package chroma_test

import (
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/theme"
	"github.com/fwojciec/theme/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("converts a chroma style", func(t *testing.T) {
		t.Parallel()

		syntax, err := chroma.NewResolver().Resolve("monokai")

		require.NoError(t, err)
		assert.Equal(t, "monokai", syntax.Name)

		want := styles.Registry["monokai"].Get(chromalib.Keyword).Colour
		keyword, ok := syntax.Get("keyword")
		require.True(t, ok)
		assert.Equal(t, theme.Rgb(uint32(want.Red())<<16|uint32(want.Green())<<8|uint32(want.Blue())), keyword.Color)
	})

	t.Run("matches names case-insensitively", func(t *testing.T) {
		t.Parallel()

		r := chroma.NewResolver()
		lower, err := r.Resolve("monokai")
		require.NoError(t, err)
		upper, err := r.Resolve("Monokai")
		require.NoError(t, err)

		assert.Same(t, lower, upper)
	})

	t.Run("shares one syntax theme per name", func(t *testing.T) {
		t.Parallel()

		r := chroma.NewResolver()
		first, err := r.Resolve("dracula")
		require.NoError(t, err)
		second, err := r.Resolve("dracula")
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("returns ErrSyntaxThemeNotFound for unknown names", func(t *testing.T) {
		t.Parallel()

		_, err := chroma.NewResolver().Resolve("no-such-style")

		assert.ErrorIs(t, err, theme.ErrSyntaxThemeNotFound)
	})
}

func TestResolver_Names(t *testing.T) {
	t.Parallel()

	names := chroma.NewResolver().Names()

	assert.Contains(t, names, "monokai")
	assert.IsNonDecreasing(t, names)
}

func TestSyntaxThemeFromStyle(t *testing.T) {
	t.Parallel()

	style, err := chromalib.NewStyle("test", chromalib.StyleEntries{
		chromalib.Keyword: "bold #ff0000",
		chromalib.Comment: "italic #00ff00",
	})
	require.NoError(t, err)

	syntax := chroma.SyntaxThemeFromStyle(style)

	assert.Equal(t, "test", syntax.Name)
	keyword, ok := syntax.Get("keyword")
	require.True(t, ok)
	assert.Equal(t, theme.HighlightStyle{Color: theme.Rgb(0xff0000), Bold: true}, keyword)
	comment, ok := syntax.Get("comment")
	require.True(t, ok)
	assert.Equal(t, theme.HighlightStyle{Color: theme.Rgb(0x00ff00), Italic: true}, comment)
	_, ok = syntax.Get("string")
	assert.False(t, ok)
}
