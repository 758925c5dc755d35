package theme

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Names of the built-in themes.
const (
	DefaultLightThemeName = "One Light"
	DefaultDarkThemeName  = "One Dark"
)

// Registry holds resolved themes by name. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	themes map[string]Theme
	syntax SyntaxResolver
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithSyntaxResolver resolves the syntax theme named by inserted content.
// Without a resolver, content always gets the default syntax theme.
func WithSyntaxResolver(r SyntaxResolver) RegistryOption {
	return func(reg *Registry) {
		reg.syntax = r
	}
}

// NewRegistry returns a registry holding the built-in themes.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{themes: make(map[string]Theme)}
	for _, opt := range opts {
		opt(r)
	}
	for _, t := range BuiltinThemes() {
		r.themes[t.Name] = t
	}
	return r
}

// BuiltinThemes returns the default light and dark themes.
func BuiltinThemes() []Theme {
	return []Theme{
		ResolveTheme(ThemeContent{Name: DefaultLightThemeName, Appearance: AppearanceLight}, nil),
		ResolveTheme(ThemeContent{Name: DefaultDarkThemeName, Appearance: AppearanceDark}, nil),
	}
}

// Insert resolves content and stores the result, replacing any theme of the same name.
func (r *Registry) Insert(content ThemeContent) (Theme, error) {
	if content.Name == "" {
		return Theme{}, errors.New("theme: content has no name")
	}

	var syntax *SyntaxTheme
	if content.Syntax != "" && r.syntax != nil {
		var err error
		if syntax, err = r.syntax.Resolve(content.Syntax); err != nil {
			return Theme{}, fmt.Errorf("theme %q: %w", content.Name, err)
		}
	}

	t := ResolveTheme(content, syntax)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[t.Name] = t
	return t, nil
}

// InsertFamily inserts every theme of a family. It stops at the first error.
func (r *Registry) InsertFamily(f ThemeFamilyContent) error {
	for _, content := range f.Themes {
		if _, err := r.Insert(content); err != nil {
			return fmt.Errorf("family %q: %w", f.Name, err)
		}
	}
	return nil
}

// Get returns the named theme. The returned value shares its syntax theme
// and player palette with the registry; both are read-only.
func (r *Registry) Get(name string) (Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return t, nil
}

// Names returns the names of all registered themes, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all registered themes sorted by name.
func (r *Registry) List() []Theme {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	themes := make([]Theme, 0, len(names))
	for _, name := range names {
		if t, ok := r.themes[name]; ok {
			themes = append(themes, t)
		}
	}
	return themes
}
