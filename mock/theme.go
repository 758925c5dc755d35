// Package mock provides function-field implementations of the theme interfaces for tests.
package mock

import (
	"context"

	"github.com/fwojciec/theme"
)

// Compile-time interface verification.
var (
	_ theme.SyntaxResolver = (*SyntaxResolver)(nil)
	_ theme.FamilyLoader   = (*FamilyLoader)(nil)
	_ theme.Generator      = (*Generator)(nil)
	_ theme.Viewer         = (*Viewer)(nil)
	_ theme.Tokenizer      = (*Tokenizer)(nil)
	_ theme.Clipboard      = (*Clipboard)(nil)
	_ theme.GenerationLog  = (*GenerationLog)(nil)
)

// SyntaxResolver is a mock implementation of theme.SyntaxResolver.
type SyntaxResolver struct {
	ResolveFn func(name string) (*theme.SyntaxTheme, error)
}

func (r *SyntaxResolver) Resolve(name string) (*theme.SyntaxTheme, error) {
	return r.ResolveFn(name)
}

// FamilyLoader is a mock implementation of theme.FamilyLoader.
type FamilyLoader struct {
	LoadFn func(ctx context.Context, path string) ([]theme.ThemeFamilyContent, error)
}

func (l *FamilyLoader) Load(ctx context.Context, path string) ([]theme.ThemeFamilyContent, error) {
	return l.LoadFn(ctx, path)
}

// Generator is a mock implementation of theme.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, description string, appearance theme.Appearance) (*theme.ThemeContent, error)
}

func (g *Generator) Generate(ctx context.Context, description string, appearance theme.Appearance) (*theme.ThemeContent, error) {
	return g.GenerateFn(ctx, description, appearance)
}

// Viewer is a mock implementation of theme.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, t *theme.Theme) error
}

func (v *Viewer) View(ctx context.Context, t *theme.Theme) error {
	return v.ViewFn(ctx, t)
}

// Tokenizer is a mock implementation of theme.Tokenizer.
type Tokenizer struct {
	TokenizeFn      func(language, source string) []theme.Token
	TokenizeLinesFn func(language, source string) [][]theme.Token
}

func (t *Tokenizer) Tokenize(language, source string) []theme.Token {
	return t.TokenizeFn(language, source)
}

func (t *Tokenizer) TokenizeLines(language, source string) [][]theme.Token {
	return t.TokenizeLinesFn(language, source)
}

// Clipboard is a mock implementation of theme.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}

// GenerationLog is a mock implementation of theme.GenerationLog.
type GenerationLog struct {
	AppendFn func(g theme.Generation) error
	LoadFn   func() ([]theme.Generation, error)
}

func (l *GenerationLog) Append(g theme.Generation) error {
	return l.AppendFn(g)
}

func (l *GenerationLog) Load() ([]theme.Generation, error) {
	return l.LoadFn()
}
