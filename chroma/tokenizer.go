// Package chroma provides syntax themes and highlighting using the chroma library.
package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/theme"
)

// Compile-time interface verification.
var _ theme.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromSyntaxTheme to create a style function from a theme.SyntaxTheme.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// TokenizerFor returns a tokenizer styled by a syntax theme.
func TokenizerFor(t *theme.SyntaxTheme) theme.Tokenizer {
	return &Tokenizer{styleFunc: StyleFromSyntaxTheme(t)}
}

// Tokenize splits source code into syntax-highlighted tokens for the given language.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(language, source string) []theme.Token {
	if source == "" {
		return []theme.Token{}
	}
	return t.tokenize(lexers.Get(language), source)
}

// TokenizeFile is like Tokenize but picks the lexer from a file name.
func (t *Tokenizer) TokenizeFile(filename, source string) []theme.Token {
	if source == "" {
		return []theme.Token{}
	}
	return t.tokenize(lexers.Match(filename), source)
}

// TokenizeLines tokenizes source code with full context, then splits tokens by line.
// Multi-line constructs like block comments keep their style on every line.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source.
func (t *Tokenizer) TokenizeLines(language, source string) [][]theme.Token {
	if source == "" {
		return [][]theme.Token{}
	}
	tokens := t.tokenize(lexers.Get(language), source)
	if tokens == nil {
		return nil
	}
	return splitTokensByLine(tokens)
}

func (t *Tokenizer) tokenize(lexer chromalib.Lexer, source string) []theme.Token {
	if lexer == nil {
		return nil
	}

	// Coalesce so runs of the same token type arrive as one token
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	tokens := []theme.Token{}
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, theme.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}
	return tokens
}

// splitTokensByLine splits a flat list of tokens into per-line token slices,
// cutting tokens that span lines at the newline boundaries.
func splitTokensByLine(tokens []theme.Token) [][]theme.Token {
	if len(tokens) == 0 {
		return [][]theme.Token{}
	}

	var result [][]theme.Token
	var line []theme.Token

	for _, tok := range tokens {
		if !strings.Contains(tok.Text, "\n") {
			line = append(line, tok)
			continue
		}

		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				line = append(line, theme.Token{Text: part, Style: tok.Style})
			}
			if i < len(parts)-1 {
				result = append(result, line)
				line = nil
			}
		}
	}

	if len(line) > 0 {
		result = append(result, line)
	}
	return result
}
