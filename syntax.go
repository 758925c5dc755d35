package theme

import "strings"

// HighlightStyle is the style applied to one kind of syntax token.
type HighlightStyle struct {
	Color  Color
	Bold   bool
	Italic bool
}

// SyntaxHighlight names a highlight style, e.g. "keyword" or "string.escape".
type SyntaxHighlight struct {
	Name  string
	Style HighlightStyle
}

// SyntaxTheme is an ordered set of named highlight styles.
// A SyntaxTheme is shared between themes by pointer and must not be
// modified once constructed.
type SyntaxTheme struct {
	Name       string
	highlights []SyntaxHighlight
}

// NewSyntaxTheme returns a syntax theme holding a copy of highlights.
func NewSyntaxTheme(name string, highlights []SyntaxHighlight) *SyntaxTheme {
	return &SyntaxTheme{
		Name:       name,
		highlights: append([]SyntaxHighlight(nil), highlights...),
	}
}

// Highlights returns a copy of the theme's highlights in declaration order.
func (t *SyntaxTheme) Highlights() []SyntaxHighlight {
	return append([]SyntaxHighlight(nil), t.highlights...)
}

// Get returns the style for a highlight name. Dotted names fall back to
// their parent ("keyword.control" -> "keyword"). ok is false when neither
// the name nor any parent is defined.
func (t *SyntaxTheme) Get(name string) (style HighlightStyle, ok bool) {
	for {
		for _, h := range t.highlights {
			if h.Name == name {
				return h.Style, true
			}
		}
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			return HighlightStyle{}, false
		}
		name = name[:i]
	}
}

// Token represents a syntax-highlighted segment of code.
type Token struct {
	Text  string         // The text content of this token
	Style HighlightStyle // Style to apply; zero value means the default text color
}

// Tokenizer extracts syntax tokens from source code.
type Tokenizer interface {
	// Tokenize splits source code into syntax-highlighted tokens for the given language.
	// Returns nil if the language is not supported.
	Tokenize(language, source string) []Token

	// TokenizeLines tokenizes source with full context, then splits the
	// tokens into one slice per line. Returns nil if the language is not supported.
	TokenizeLines(language, source string) [][]Token
}

// DefaultSyntaxTheme returns the built-in syntax theme for an appearance.
func DefaultSyntaxTheme(a Appearance) *SyntaxTheme {
	if a == AppearanceDark {
		return defaultDarkSyntax
	}
	return defaultLightSyntax
}

var defaultDarkSyntax = NewSyntaxTheme("one-dark", []SyntaxHighlight{
	{Name: "attribute", Style: HighlightStyle{Color: Rgb(0x74ade8)}},
	{Name: "boolean", Style: HighlightStyle{Color: Rgb(0xbf956a)}},
	{Name: "comment", Style: HighlightStyle{Color: Rgb(0x5d636f), Italic: true}},
	{Name: "constant", Style: HighlightStyle{Color: Rgb(0xdfc184)}},
	{Name: "function", Style: HighlightStyle{Color: Rgb(0x73ade9)}},
	{Name: "keyword", Style: HighlightStyle{Color: Rgb(0xb477cf), Bold: true}},
	{Name: "number", Style: HighlightStyle{Color: Rgb(0xbf956a)}},
	{Name: "operator", Style: HighlightStyle{Color: Rgb(0x6eb4bf)}},
	{Name: "property", Style: HighlightStyle{Color: Rgb(0xd07277)}},
	{Name: "punctuation", Style: HighlightStyle{Color: Rgb(0xacb2be)}},
	{Name: "string", Style: HighlightStyle{Color: Rgb(0xa1c181)}},
	{Name: "string.escape", Style: HighlightStyle{Color: Rgb(0x878e98)}},
	{Name: "tag", Style: HighlightStyle{Color: Rgb(0x74ade8)}},
	{Name: "type", Style: HighlightStyle{Color: Rgb(0x6eb4bf)}},
	{Name: "variable", Style: HighlightStyle{Color: Rgb(0xacb2be)}},
})

var defaultLightSyntax = NewSyntaxTheme("one-light", []SyntaxHighlight{
	{Name: "attribute", Style: HighlightStyle{Color: Rgb(0x5c78e2)}},
	{Name: "boolean", Style: HighlightStyle{Color: Rgb(0xad6e25)}},
	{Name: "comment", Style: HighlightStyle{Color: Rgb(0xa2a3a7), Italic: true}},
	{Name: "constant", Style: HighlightStyle{Color: Rgb(0xc18401)}},
	{Name: "function", Style: HighlightStyle{Color: Rgb(0x5b79e3)}},
	{Name: "keyword", Style: HighlightStyle{Color: Rgb(0xa449ab), Bold: true}},
	{Name: "number", Style: HighlightStyle{Color: Rgb(0xad6e25)}},
	{Name: "operator", Style: HighlightStyle{Color: Rgb(0x3882b7)}},
	{Name: "property", Style: HighlightStyle{Color: Rgb(0xd3604f)}},
	{Name: "punctuation", Style: HighlightStyle{Color: Rgb(0x4d4f52)}},
	{Name: "string", Style: HighlightStyle{Color: Rgb(0x649f57)}},
	{Name: "string.escape", Style: HighlightStyle{Color: Rgb(0x7c7e86)}},
	{Name: "tag", Style: HighlightStyle{Color: Rgb(0x5c78e2)}},
	{Name: "type", Style: HighlightStyle{Color: Rgb(0x3882b7)}},
	{Name: "variable", Style: HighlightStyle{Color: Rgb(0x383a41)}},
})
