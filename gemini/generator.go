package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/theme"
	"github.com/rs/zerolog"
)

// Compile-time interface verification.
var _ theme.Generator = (*Generator)(nil)

// DefaultTimeout is the default timeout for a single generate call.
const DefaultTimeout = 60 * time.Second

// Retry defaults for temporary API errors.
const (
	DefaultAttempts   = 3
	DefaultRetryDelay = 2 * time.Second
)

// finishStop is the finish reason of a complete response.
const finishStop = "STOP"

// hexPattern constrains generated slot values to color literals.
const hexPattern = `^#([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`

// Generator implements theme.Generator using Google Gemini.
type Generator struct {
	client      GenerativeClient
	model       string
	timeout     time.Duration
	attempts    int
	retryDelay  time.Duration
	syntaxNames []string
	logger      zerolog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithTimeout sets the timeout for each API call.
func WithTimeout(d time.Duration) GeneratorOption {
	return func(g *Generator) {
		g.timeout = d
	}
}

// WithRetry sets how many attempts are made when the API reports a
// temporary error, and the delay before the first retry. The delay doubles
// on every further retry.
func WithRetry(attempts int, delay time.Duration) GeneratorOption {
	return func(g *Generator) {
		g.attempts = max(1, attempts)
		g.retryDelay = delay
	}
}

// WithSyntaxNames restricts the syntax theme the model may pick to names.
func WithSyntaxNames(names []string) GeneratorOption {
	return func(g *Generator) {
		g.syntaxNames = names
	}
}

// WithLogger sets the logger used to report retries.
func WithLogger(logger zerolog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(client GenerativeClient, model string, opts ...GeneratorOption) *Generator {
	g := &Generator{
		client:     client,
		model:      model,
		timeout:    DefaultTimeout,
		attempts:   DefaultAttempts,
		retryDelay: DefaultRetryDelay,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// generatedTheme is the response document the model is asked for.
type generatedTheme struct {
	Name   string          `json:"name"`
	Syntax string          `json:"syntax"`
	Colors json.RawMessage `json:"colors"`
	Status json.RawMessage `json:"status"`
}

// Generate asks the model for a theme matching description and returns it
// as an overlay on the defaults for appearance.
func (g *Generator) Generate(ctx context.Context, description string, appearance theme.Appearance) (*theme.ThemeContent, error) {
	contents := []*Content{{
		Parts: []*Part{{Text: BuildPrompt(description, appearance)}},
	}}
	config := BuildConfig(g.syntaxNames)

	resp, err := g.generateWithRetry(ctx, contents, config)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini: returned nil response")
	}

	content, err := ParseResponse(resp.Text, appearance)
	if err != nil && resp.FinishReason != "" && resp.FinishReason != finishStop {
		return nil, fmt.Errorf("%w (finish reason %s)", err, resp.FinishReason)
	}
	return content, err
}

func (g *Generator) generateWithRetry(ctx context.Context, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error) {
	delay := g.retryDelay
	for attempt := 1; ; attempt++ {
		resp, err := g.generateOnce(ctx, contents, config)
		if err == nil {
			return resp, nil
		}

		var apiErr *APIError
		if attempt >= g.attempts || !errors.As(err, &apiErr) || !apiErr.Temporary() {
			return nil, err
		}

		g.logger.Warn().Err(err).Int("attempt", attempt).Dur("delay", delay).Msg("retrying gemini request")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

func (g *Generator) generateOnce(ctx context.Context, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.client.GenerateContent(ctx, g.model, contents, config)
}

// ParseResponse decodes a model response into theme content with the given
// appearance. Color values go through the same validation as theme files.
func ParseResponse(text string, appearance theme.Appearance) (*theme.ThemeContent, error) {
	var doc generatedTheme
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse response: %w", err)
	}
	if strings.TrimSpace(doc.Name) == "" {
		return nil, errors.New("gemini: response has no theme name")
	}

	content := &theme.ThemeContent{
		Name:       strings.TrimSpace(doc.Name),
		Appearance: appearance,
		Syntax:     doc.Syntax,
	}
	if present(doc.Colors) {
		colors, err := theme.ParseThemeColorsRefinement(doc.Colors)
		if err != nil {
			return nil, fmt.Errorf("gemini: colors: %w", err)
		}
		content.Style.Colors = colors
	}
	if present(doc.Status) {
		status, err := theme.ParseStatusColorsRefinement(doc.Status)
		if err != nil {
			return nil, fmt.Errorf("gemini: status: %w", err)
		}
		content.Style.Status = status
	}
	return content, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// BuildPrompt creates the user prompt for the Gemini API.
func BuildPrompt(description string, appearance theme.Appearance) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Design a %s color theme for a code editor.\n\n", appearance)
	sb.WriteString("## Description\n\n")
	sb.WriteString(description)
	sb.WriteString("\n\n## Color slots\n\n")
	sb.WriteString("UI colors (\"colors\"):\n")
	for _, name := range theme.ThemeColorSlots() {
		fmt.Fprintf(&sb, "- %s\n", name)
	}
	sb.WriteString("\nStatus colors (\"status\"):\n")
	for _, name := range theme.StatusColorSlots() {
		fmt.Fprintf(&sb, "- %s\n", name)
	}
	sb.WriteString(`
## Task

Pick a short theme name and colors for as many slots as the description
suggests. Slots you leave out keep the default colors. Use "#rrggbb", or
"#rrggbbaa" for translucent colors. Optionally pick a syntax highlighting
theme by name.

Respond with JSON matching this schema:
{
  "name": "Theme name",
  "syntax": "syntax theme name or empty",
  "colors": {"background": "#rrggbb"},
  "status": {"error": "#rrggbb"}
}
`)
	return sb.String()
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// A non-empty syntaxNames restricts the syntax field to those names.
func BuildConfig(syntaxNames []string) *GenerateContentConfig {
	temp := float32(0.7)
	return &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{
				Text: `You are a color designer for code editor themes.

Pick colors with enough contrast for long reading sessions. Text must stay readable on its background, and status colors must stay distinguishable from each other.`,
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   BuildSchema(syntaxNames),
	}
}

// BuildSchema returns the response schema: a name, an optional syntax theme
// and one optional hex color property per slot.
func BuildSchema(syntaxNames []string) *Schema {
	syntax := &Schema{Type: "string", Description: "Syntax highlighting theme name"}
	if len(syntaxNames) > 0 {
		syntax.Format = "enum"
		syntax.Enum = syntaxNames
	}
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"name":   {Type: "string", Description: "Short theme name"},
			"syntax": syntax,
			"colors": slotSchema(theme.ThemeColorSlots()),
			"status": slotSchema(theme.StatusColorSlots()),
		},
		Required:         []string{"name", "colors"},
		PropertyOrdering: []string{"name", "syntax", "colors", "status"},
	}
}

func slotSchema(slots []string) *Schema {
	props := make(map[string]*Schema, len(slots))
	for _, name := range slots {
		props[name] = &Schema{Type: "string", Pattern: hexPattern}
	}
	return &Schema{
		Type:             "object",
		Properties:       props,
		PropertyOrdering: slots,
	}
}
