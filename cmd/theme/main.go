// Command theme lists, inspects, previews and generates editor color themes.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fwojciec/theme"
	"github.com/fwojciec/theme/bubbletea"
	"github.com/fwojciec/theme/chroma"
	"github.com/fwojciec/theme/clipboard"
	"github.com/fwojciec/theme/fs"
	"github.com/fwojciec/theme/gemini"
	"github.com/fwojciec/theme/jsonl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. Output goes to stdout; logs and
// usage errors go to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var app *App

	root := &cobra.Command{
		Use:           "theme",
		Short:         "Inspect, preview and generate editor color themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(v)
			if err != nil {
				return err
			}
			app = newApp(cmd.Context(), cfg, stdout, stderr)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := BindFlags(root.PersistentFlags(), v); err != nil {
		panic(err)
	}

	// nameArg returns the theme named on the command line, or the configured one.
	nameArg := func(args []string) string {
		if len(args) > 0 {
			return args[0]
		}
		return v.GetString(keyTheme)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List available themes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return app.List(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "show [name]",
			Short: "Print every color of a theme",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Show(cmd.Context(), nameArg(args))
			},
		},
		&cobra.Command{
			Use:   "preview [name]",
			Short: "Preview a theme interactively, one component at a time",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Preview(cmd.Context(), nameArg(args))
			},
		},
		&cobra.Command{
			Use:   "check <file>",
			Short: "Validate a theme family file",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return app.Check(args[0])
			},
		},
		newGenerateCommand(func() *App { return app }),
		&cobra.Command{
			Use:   "history",
			Short: "List previously generated themes",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return app.History()
			},
		},
	)
	return root
}

func newGenerateCommand(app func() *App) *cobra.Command {
	var appearance, out string
	cmd := &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate a theme from a description with Gemini",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := theme.ParseAppearance(appearance)
			if err != nil {
				return err
			}
			return app().Generate(cmd.Context(), args[0], a, out)
		},
	}
	cmd.Flags().StringVar(&appearance, "appearance", theme.AppearanceDark.String(), "light or dark")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the theme family to this file instead of stdout")
	return cmd
}

// newApp wires the production dependencies.
func newApp(ctx context.Context, cfg Config, stdout, stderr io.Writer) *App {
	logger := NewLogger(stderr, cfg.LogLevel)
	resolver := chroma.NewResolver()

	viewer := bubbletea.NewViewer(
		bubbletea.WithTokenizerFor(chroma.TokenizerFor),
		bubbletea.WithClipboard(clipboard.NewSystem()),
	)

	app := &App{
		Stdout:         stdout,
		Logger:         logger,
		Registry:       theme.NewRegistry(theme.WithSyntaxResolver(resolver)),
		Loader:         fs.NewLoader(fs.WithLogger(logger)),
		Syntax:         resolver,
		Viewer:         viewer,
		Log:            jsonl.NewLog(filepath.Join(cfg.CacheDir, "history.jsonl")),
		ThemesDir:      cfg.ThemesDir,
		SyntaxOverride: cfg.Syntax,
		Model:          cfg.GeminiModel,
	}

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := gemini.NewClient(ctx, apiKey)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to create Gemini client")
			return app
		}
		generator := gemini.NewGenerator(client, cfg.GeminiModel,
			gemini.WithSyntaxNames(resolver.Names()),
			gemini.WithLogger(logger),
		)
		app.Generator = fs.NewGenerator(generator, filepath.Join(cfg.CacheDir, "generated"))
	}
	return app
}
