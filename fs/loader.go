package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/theme"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ theme.FamilyLoader = (*Loader)(nil)

// defaultConcurrency bounds the number of files parsed at once.
const defaultConcurrency = 8

// Loader reads theme family files.
type Loader struct {
	logger      zerolog.Logger
	concurrency int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used to report skipped keys.
func WithLogger(logger zerolog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithConcurrency sets how many files are parsed at once.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// NewLoader creates a new Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		logger:      zerolog.Nop(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the theme family file at path. If path is a directory, every
// *.json file directly inside it is read, in name order. Any file that
// fails to parse fails the whole load.
func (l *Loader) Load(ctx context.Context, path string) ([]theme.ThemeFamilyContent, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("fs: %w", err)
	}
	if !info.IsDir() {
		family, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return []theme.ThemeFamilyContent{*family}, nil
	}

	paths, err := themeFiles(path)
	if err != nil {
		return nil, err
	}

	families := make([]theme.ThemeFamilyContent, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			family, err := l.LoadFile(p)
			if err != nil {
				return err
			}
			families[i] = *family
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	l.logger.Debug().Str("dir", path).Int("families", len(families)).Msg("loaded theme families")
	return families, nil
}

// LoadFile reads and parses a single theme family file.
// Slot keys that match no color are logged as warnings and skipped.
func (l *Loader) LoadFile(path string) (*theme.ThemeFamilyContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fs: %w", err)
	}

	family, err := theme.ParseThemeFamily(data)
	if err != nil {
		return nil, fmt.Errorf("fs: %s: %w", path, err)
	}

	for _, key := range UnknownSlots(data) {
		l.logger.Warn().Str("file", path).Str("key", key).Msg("unknown color slot")
	}
	return family, nil
}

// UnknownSlots returns the color keys in a theme family document that match
// no slot, qualified as "<theme>: colors.<key>" or "<theme>: status.<key>".
// Documents that do not parse yield nil.
func UnknownSlots(data []byte) []string {
	var doc struct {
		Themes []struct {
			Name  string `json:"name"`
			Style struct {
				Colors json.RawMessage `json:"colors"`
				Status json.RawMessage `json:"status"`
			} `json:"style"`
		} `json:"themes"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}

	var out []string
	for _, t := range doc.Themes {
		out = append(out, unknownIn(t.Name, "colors", t.Style.Colors, theme.ThemeColorSlots())...)
		out = append(out, unknownIn(t.Name, "status", t.Style.Status, theme.StatusColorSlots())...)
	}
	return out
}

func unknownIn(themeName, category string, raw json.RawMessage, slots []string) []string {
	if len(raw) == 0 {
		return nil
	}
	keys, err := theme.UnknownKeys(raw, slots)
	if err != nil {
		return nil
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprintf("%s: %s.%s", themeName, category, k)
	}
	return out
}

// themeFiles returns the sorted *.json files directly inside dir.
func themeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fs: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
