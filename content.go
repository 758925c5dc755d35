package theme

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ThemeFamilyContent is the on-disk form of a theme file: a named family of
// related themes, typically a light and a dark variant.
type ThemeFamilyContent struct {
	Name   string         `json:"name"`
	Author string         `json:"author,omitempty"`
	Themes []ThemeContent `json:"themes"`
}

// ThemeContent describes one theme as an overlay on the defaults for its appearance.
type ThemeContent struct {
	Name       string                `json:"name"`
	Appearance Appearance            `json:"appearance"`
	Syntax     string                `json:"syntax,omitempty"` // Syntax theme name; empty uses the default
	Style      ThemeStylesRefinement `json:"style"`
}

// ParseThemeFamily decodes a theme family document.
// Errors are returned as *ParseError.
func ParseThemeFamily(data []byte) (*ThemeFamilyContent, error) {
	if _, err := decodeDocument(data); err != nil {
		return nil, err
	}

	var f ThemeFamilyContent
	if err := json.Unmarshal(data, &f); err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, pe
		}
		return nil, &ParseError{Kind: MalformedDocument, Err: err}
	}

	if err := f.Validate(); err != nil {
		return nil, &ParseError{Kind: MalformedDocument, Err: err}
	}
	return &f, nil
}

// Validate checks that the family and each of its themes is named.
func (f ThemeFamilyContent) Validate() error {
	if f.Name == "" {
		return errors.New("family name is required")
	}
	for i, t := range f.Themes {
		if t.Name == "" {
			return fmt.Errorf("theme %d: name is required", i)
		}
	}
	return nil
}

// ResolveTheme builds a complete theme from content: the defaults for its
// appearance refined by its style overlay. A non-nil syntax replaces the
// default syntax theme.
func ResolveTheme(content ThemeContent, syntax *SyntaxTheme) Theme {
	styles := DefaultThemeStyles(content.Appearance)
	styles.Refine(&content.Style)
	if syntax != nil {
		styles.Syntax = syntax
	}
	return Theme{
		Name:       content.Name,
		Appearance: content.Appearance,
		Styles:     styles,
	}
}
