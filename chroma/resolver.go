package chroma

import (
	"fmt"
	"strings"
	"sync"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/theme"
)

// Compile-time interface verification.
var _ theme.SyntaxResolver = (*Resolver)(nil)

// highlightTokens lists the highlight names a chroma style is converted to,
// with the token type whose style each is read from.
var highlightTokens = []struct {
	name  string
	token chromalib.TokenType
}{
	{"attribute", chromalib.NameAttribute},
	{"boolean", chromalib.KeywordConstant},
	{"comment", chromalib.Comment},
	{"constant", chromalib.NameConstant},
	{"function", chromalib.NameFunction},
	{"keyword", chromalib.Keyword},
	{"number", chromalib.Number},
	{"operator", chromalib.Operator},
	{"property", chromalib.NameProperty},
	{"punctuation", chromalib.Punctuation},
	{"string", chromalib.String},
	{"string.escape", chromalib.StringEscape},
	{"tag", chromalib.NameTag},
	{"type", chromalib.KeywordType},
	{"variable", chromalib.NameVariable},
}

// Resolver resolves syntax themes from chroma's built-in styles.
// Each style is converted once; later lookups return the same *theme.SyntaxTheme.
type Resolver struct {
	mu    sync.Mutex
	cache map[string]*theme.SyntaxTheme
}

// NewResolver creates a new chroma-based syntax theme resolver.
func NewResolver() *Resolver {
	return &Resolver{cache: make(map[string]*theme.SyntaxTheme)}
}

// Resolve returns the syntax theme converted from the named chroma style.
// Names are matched case-insensitively.
func (r *Resolver) Resolve(name string) (*theme.SyntaxTheme, error) {
	key := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.cache[key]; ok {
		return t, nil
	}

	style := lookupStyle(name)
	if style == nil {
		return nil, fmt.Errorf("chroma: %w: %q", theme.ErrSyntaxThemeNotFound, name)
	}

	t := SyntaxThemeFromStyle(style)
	r.cache[key] = t
	return t, nil
}

// Names returns the names of the available chroma styles.
func (r *Resolver) Names() []string {
	return styles.Names()
}

func lookupStyle(name string) *chromalib.Style {
	if style, ok := styles.Registry[name]; ok {
		return style
	}
	for n, style := range styles.Registry {
		if strings.EqualFold(n, name) {
			return style
		}
	}
	return nil
}

// SyntaxThemeFromStyle converts a chroma style to a syntax theme.
// Highlights the style leaves uncolored are omitted.
func SyntaxThemeFromStyle(style *chromalib.Style) *theme.SyntaxTheme {
	highlights := make([]theme.SyntaxHighlight, 0, len(highlightTokens))
	for _, ht := range highlightTokens {
		entry := style.Get(ht.token)
		if !entry.Colour.IsSet() {
			continue
		}
		highlights = append(highlights, theme.SyntaxHighlight{
			Name: ht.name,
			Style: theme.HighlightStyle{
				Color:  colourToColor(entry.Colour),
				Bold:   entry.Bold == chromalib.Yes,
				Italic: entry.Italic == chromalib.Yes,
			},
		})
	}
	return theme.NewSyntaxTheme(style.Name, highlights)
}

func colourToColor(c chromalib.Colour) theme.Color {
	return theme.Rgb(uint32(c.Red())<<16 | uint32(c.Green())<<8 | uint32(c.Blue()))
}
