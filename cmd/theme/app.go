package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/theme"
	"github.com/fwojciec/theme/fs"
	"github.com/fwojciec/theme/lipgloss"
	"github.com/rs/zerolog"
)

// ErrNoGenerator is returned by Generate when no theme generator is configured.
var ErrNoGenerator = errors.New("GEMINI_API_KEY environment variable required")

// App encapsulates the application logic for testing.
type App struct {
	Stdout    io.Writer
	Logger    zerolog.Logger
	Registry  *theme.Registry
	Loader    theme.FamilyLoader
	Syntax    theme.SyntaxResolver
	Viewer    theme.Viewer
	Generator theme.Generator     // nil without an API key
	Log       theme.GenerationLog // Generated theme history; nil keeps none
	Renderer  *lg.Renderer        // nil renders for Stdout

	ThemesDir      string // Directory of theme family files; empty loads none
	SyntaxOverride string // Syntax theme replacing the theme's own; empty keeps it
	Model          string // Generator model recorded in the history
}

// LoadThemes registers the theme families in ThemesDir.
// A missing directory is not an error.
func (a *App) LoadThemes(ctx context.Context) error {
	if a.ThemesDir == "" {
		return nil
	}
	families, err := a.Loader.Load(ctx, a.ThemesDir)
	if errors.Is(err, os.ErrNotExist) {
		a.Logger.Debug().Str("dir", a.ThemesDir).Msg("themes directory does not exist")
		return nil
	}
	if err != nil {
		return err
	}
	for _, family := range families {
		if err := a.Registry.InsertFamily(family); err != nil {
			return err
		}
		a.Logger.Debug().Str("family", family.Name).Int("themes", len(family.Themes)).Msg("registered theme family")
	}
	return nil
}

// List prints the registered themes with their appearance.
func (a *App) List(ctx context.Context) error {
	if err := a.LoadThemes(ctx); err != nil {
		return err
	}
	for _, t := range a.Registry.List() {
		fmt.Fprintf(a.Stdout, "%s\t%s\n", t.Name, t.Appearance)
	}
	return nil
}

// Show prints every color slot of a theme with a swatch.
func (a *App) Show(ctx context.Context, name string) error {
	t, err := a.resolve(ctx, name)
	if err != nil {
		return err
	}

	styles := lipgloss.NewStyles(t, lipgloss.WithRenderer(a.renderer()))
	colors := make([]theme.SlotColor, 0, len(theme.ThemeColorSlots()))
	for _, slot := range theme.ThemeColorSlots() {
		c, _ := t.Styles.Colors.Slot(slot)
		colors = append(colors, theme.SlotColor{Name: slot, Color: c})
	}
	status := make([]theme.SlotColor, 0, len(theme.StatusColorSlots()))
	for _, slot := range theme.StatusColorSlots() {
		c, _ := t.Styles.Status.Slot(slot)
		status = append(status, theme.SlotColor{Name: slot, Color: c})
	}

	fmt.Fprintf(a.Stdout, "%s (%s, syntax %s)\n\n", t.Name, t.Appearance, t.Styles.Syntax.Name)
	fmt.Fprintln(a.Stdout, styles.Slots(colors))
	fmt.Fprintln(a.Stdout)
	fmt.Fprintln(a.Stdout, styles.Slots(status))
	return nil
}

// Preview opens the interactive viewer on a theme.
func (a *App) Preview(ctx context.Context, name string) error {
	t, err := a.resolve(ctx, name)
	if err != nil {
		return err
	}
	return a.Viewer.View(ctx, t)
}

// Check validates a theme family file: it must parse and every syntax theme
// it names must resolve. Unknown color keys are reported but do not fail
// the check.
func (a *App) Check(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	family, err := theme.ParseThemeFamily(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	opts := []theme.RegistryOption{}
	if a.Syntax != nil {
		opts = append(opts, theme.WithSyntaxResolver(a.Syntax))
	}
	if err := theme.NewRegistry(opts...).InsertFamily(*family); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for _, key := range fs.UnknownSlots(data) {
		fmt.Fprintf(a.Stdout, "warning: unknown slot %s\n", key)
	}
	fmt.Fprintf(a.Stdout, "%s: %s, %d themes ok\n", path, family.Name, len(family.Themes))
	return nil
}

// Generate asks the generator for a theme and writes it as a single-theme
// family, to out when set or to Stdout otherwise.
func (a *App) Generate(ctx context.Context, description string, appearance theme.Appearance, out string) error {
	if a.Generator == nil {
		return ErrNoGenerator
	}
	content, err := a.Generator.Generate(ctx, description, appearance)
	if err != nil {
		return err
	}

	if a.Log != nil {
		err := a.Log.Append(theme.Generation{
			Description: description,
			Appearance:  appearance,
			Model:       a.Model,
			CreatedAt:   time.Now().UTC(),
			Theme:       *content,
		})
		if err != nil {
			a.Logger.Warn().Err(err).Msg("failed to record generated theme")
		}
	}

	family := theme.ThemeFamilyContent{
		Name:   content.Name,
		Themes: []theme.ThemeContent{*content},
	}
	if out != "" {
		if err := fs.SaveFamily(out, family); err != nil {
			return err
		}
		a.Logger.Info().Str("path", out).Str("theme", content.Name).Msg("saved generated theme")
		return nil
	}

	data, err := json.MarshalIndent(family, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.Stdout, string(data))
	return err
}

// History prints previously generated themes, oldest first.
func (a *App) History() error {
	if a.Log == nil {
		return nil
	}
	records, err := a.Log.Load()
	if err != nil {
		return err
	}
	for _, g := range records {
		fmt.Fprintf(a.Stdout, "%s\t%s\t%s\t%s\n", g.CreatedAt.Local().Format("2006-01-02 15:04"), g.Appearance, g.Theme.Name, g.Description)
	}
	return nil
}

// resolve loads the themes and returns the named one, with the syntax
// override applied.
func (a *App) resolve(ctx context.Context, name string) (*theme.Theme, error) {
	if err := a.LoadThemes(ctx); err != nil {
		return nil, err
	}
	t, err := a.Registry.Get(name)
	if err != nil {
		return nil, err
	}
	if a.SyntaxOverride != "" && a.Syntax != nil {
		syntax, err := a.Syntax.Resolve(a.SyntaxOverride)
		if err != nil {
			return nil, err
		}
		t.Styles.Syntax = syntax
	}
	return &t, nil
}

func (a *App) renderer() *lg.Renderer {
	if a.Renderer != nil {
		return a.Renderer
	}
	return lg.NewRenderer(a.Stdout)
}
