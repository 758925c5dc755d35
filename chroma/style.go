package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/theme"
)

// StyleFunc maps chroma token types to highlight styles.
type StyleFunc func(chromalib.TokenType) theme.HighlightStyle

// StyleFromSyntaxTheme returns a function that maps chroma token types to the
// highlight styles of the given syntax theme.
func StyleFromSyntaxTheme(t *theme.SyntaxTheme) StyleFunc {
	return func(tt chromalib.TokenType) theme.HighlightStyle {
		name := HighlightName(tt)
		if name == "" {
			return theme.HighlightStyle{}
		}
		style, _ := t.Get(name)
		return style
	}
}

// HighlightName returns the syntax theme highlight name for a chroma token
// type, or an empty string for tokens drawn in the default text color.
func HighlightName(tt chromalib.TokenType) string {
	switch tt {
	// Checked before the keyword category
	case chromalib.KeywordType:
		return "type"
	case chromalib.KeywordConstant:
		return "boolean"
	case chromalib.StringEscape:
		return "string.escape"
	case chromalib.Operator, chromalib.OperatorWord:
		return "operator"
	case chromalib.NameFunction, chromalib.NameFunctionMagic:
		return "function"
	case chromalib.NameConstant:
		return "constant"
	case chromalib.NameTag:
		return "tag"
	case chromalib.NameAttribute:
		return "attribute"
	case chromalib.NameProperty:
		return "property"
	case chromalib.NameBuiltin, chromalib.NameClass:
		return "type"
	case chromalib.NameVariable, chromalib.NameVariableClass, chromalib.NameVariableGlobal,
		chromalib.NameVariableInstance, chromalib.NameVariableMagic:
		return "variable"
	case chromalib.Punctuation:
		return "punctuation"
	}

	switch {
	case tt.InCategory(chromalib.Keyword):
		return "keyword"
	case tt.InCategory(chromalib.Comment):
		return "comment"
	case tt.InSubCategory(chromalib.String):
		return "string"
	case tt.InSubCategory(chromalib.Number):
		return "number"
	default:
		return ""
	}
}
