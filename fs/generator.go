package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/theme"
)

// Compile-time interface verification.
var _ theme.Generator = (*Generator)(nil)

// Generator wraps a theme.Generator with file-based caching, so repeating a
// description does not repeat the model call.
type Generator struct {
	inner    theme.Generator
	cacheDir string
}

// NewGenerator creates a new caching generator.
func NewGenerator(inner theme.Generator, cacheDir string) *Generator {
	return &Generator{
		inner:    inner,
		cacheDir: cacheDir,
	}
}

// Generate returns a cached theme or delegates to the inner generator.
func (g *Generator) Generate(ctx context.Context, description string, appearance theme.Appearance) (*theme.ThemeContent, error) {
	hash := g.hashInput(description, appearance)

	if cached, err := g.loadFromCache(hash); err == nil {
		return cached, nil
	}

	result, err := g.inner.Generate(ctx, description, appearance)
	if err != nil {
		return nil, err
	}

	// Best-effort
	_ = g.saveToCache(hash, result)

	return result, nil
}

func (g *Generator) hashInput(description string, appearance theme.Appearance) string {
	sum := sha256.Sum256([]byte(appearance.String() + "\x00" + description))
	return hex.EncodeToString(sum[:])
}

func (g *Generator) cachePath(hash string) string {
	return filepath.Join(g.cacheDir, hash+".json")
}

// loadFromCache reads a cached theme. Cached files go through the same
// validation as theme files, so a corrupt entry counts as a miss.
func (g *Generator) loadFromCache(hash string) (*theme.ThemeContent, error) {
	data, err := os.ReadFile(g.cachePath(hash))
	if err != nil {
		return nil, err
	}

	var result theme.ThemeContent
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	if result.Name == "" {
		return nil, fmt.Errorf("fs: cached theme %s has no name", hash)
	}
	return &result, nil
}

func (g *Generator) saveToCache(hash string, result *theme.ThemeContent) error {
	if err := os.MkdirAll(g.cacheDir, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return os.WriteFile(g.cachePath(hash), data, 0644)
}

// SaveFamily writes a theme family file to path, creating parent
// directories as needed.
func SaveFamily(path string, family theme.ThemeFamilyContent) error {
	if err := family.Validate(); err != nil {
		return fmt.Errorf("fs: %w", err)
	}
	data, err := json.MarshalIndent(family, "", "  ")
	if err != nil {
		return fmt.Errorf("fs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("fs: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("fs: %w", err)
	}
	return nil
}
