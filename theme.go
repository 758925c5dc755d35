// Package theme provides the color schema of an editor theme: named color
// slots grouped into categories, partial overlays ("refinements") that
// replace a subset of slots, and the JSON documents overlays are read from.
package theme

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Appearance tells whether a theme is meant for a light or a dark background.
type Appearance int

// Appearances.
const (
	AppearanceLight Appearance = iota
	AppearanceDark
)

// ParseAppearance parses "light" or "dark", case-insensitively.
func ParseAppearance(s string) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return AppearanceLight, nil
	case "dark":
		return AppearanceDark, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAppearance, s)
	}
}

// String implements fmt.Stringer.
func (a Appearance) String() string {
	if a == AppearanceDark {
		return "dark"
	}
	return "light"
}

// MarshalText implements encoding.TextMarshaler.
func (a Appearance) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Appearance) UnmarshalText(text []byte) error {
	parsed, err := ParseAppearance(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Theme is a fully resolved theme: every slot of every category has a value.
type Theme struct {
	Name       string
	Appearance Appearance
	Styles     ThemeStyles
}

// SyntaxResolver looks up a syntax theme by name.
type SyntaxResolver interface {
	// Resolve returns the named syntax theme, or an error wrapping
	// ErrSyntaxThemeNotFound if no such theme exists.
	Resolve(name string) (*SyntaxTheme, error)
}

// FamilyLoader loads theme family documents.
type FamilyLoader interface {
	// Load returns the families found at path, which may be a single file or a directory.
	Load(ctx context.Context, path string) ([]ThemeFamilyContent, error)
}

// Generator produces a theme from a natural language description.
type Generator interface {
	Generate(ctx context.Context, description string, appearance Appearance) (*ThemeContent, error)
}

// Viewer displays a theme and blocks until the user exits.
type Viewer interface {
	View(ctx context.Context, t *Theme) error
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}

// Generation records one theme produced by a Generator.
type Generation struct {
	Description string       `json:"description"`
	Appearance  Appearance   `json:"appearance"`
	Model       string       `json:"model,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	Theme       ThemeContent `json:"theme"`
}

// GenerationLog stores the history of generated themes.
type GenerationLog interface {
	Append(g Generation) error
	Load() ([]Generation, error)
}
