// Package lipgloss renders theme colors using the Lipgloss styling library.
package lipgloss

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/theme"
)

// swatchWidth is the number of cells a color swatch occupies.
const swatchWidth = 4

// Styles builds lipgloss styles from a resolved theme.
// Translucent colors are composited onto the theme background, since
// terminals have no alpha channel.
type Styles struct {
	theme    *theme.Theme
	renderer *lipgloss.Renderer
}

// Option configures Styles.
type Option func(*Styles)

// WithRenderer sets a custom lipgloss renderer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(s *Styles) {
		s.renderer = r
	}
}

// NewStyles returns styles for t.
func NewStyles(t *theme.Theme, opts ...Option) *Styles {
	s := &Styles{theme: t}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Theme returns the theme the styles are built from.
func (s *Styles) Theme() *theme.Theme {
	return s.theme
}

// NewStyle creates a style using the configured renderer.
func (s *Styles) NewStyle() lipgloss.Style {
	if s.renderer != nil {
		return s.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// Color converts a theme color to a terminal color.
func (s *Styles) Color(c theme.Color) lipgloss.Color {
	return lipgloss.Color(c.Over(s.theme.Styles.Colors.Background).Hex())
}

// Base is the default text on the theme background.
func (s *Styles) Base() lipgloss.Style {
	colors := s.theme.Styles.Colors
	return s.NewStyle().
		Foreground(s.Color(colors.Text)).
		Background(s.Color(colors.Background))
}

// Muted is secondary text on the theme background.
func (s *Styles) Muted() lipgloss.Style {
	return s.Base().Foreground(s.Color(s.theme.Styles.Colors.TextMuted))
}

// Title is accented bold text on the theme background.
func (s *Styles) Title() lipgloss.Style {
	return s.Base().Bold(true).Foreground(s.Color(s.theme.Styles.Colors.TextAccent))
}

// StatusBar is the style of the status bar line.
func (s *Styles) StatusBar() lipgloss.Style {
	colors := s.theme.Styles.Colors
	return s.NewStyle().
		Foreground(s.Color(colors.TextMuted)).
		Background(s.Color(colors.StatusBarBackground))
}

// Highlight returns the style of a syntax highlight on the editor background.
// The zero HighlightStyle uses the theme text color.
func (s *Styles) Highlight(h theme.HighlightStyle) lipgloss.Style {
	colors := s.theme.Styles.Colors
	fg := colors.Text
	if h != (theme.HighlightStyle{}) {
		fg = h.Color
	}
	return s.NewStyle().
		Foreground(s.Color(fg)).
		Background(s.Color(colors.EditorBackground)).
		Bold(h.Bold).
		Italic(h.Italic)
}

// Swatch renders a block filled with c.
func (s *Styles) Swatch(c theme.Color) string {
	return s.NewStyle().
		Background(s.Color(c)).
		Render(strings.Repeat(" ", swatchWidth))
}

// SlotLine renders a swatch followed by the slot name and hex value.
// nameWidth pads the name column.
func (s *Styles) SlotLine(slot theme.SlotColor, nameWidth int) string {
	return fmt.Sprintf("%s %s %s",
		s.Swatch(slot.Color),
		s.Base().Render(fmt.Sprintf("%-*s", nameWidth, slot.Name)),
		s.Muted().Render(slot.Color.Hex()),
	)
}

// Slots renders one SlotLine per slot with aligned names.
func (s *Styles) Slots(slots []theme.SlotColor) string {
	width := 0
	for _, slot := range slots {
		width = max(width, len(slot.Name))
	}
	lines := make([]string, len(slots))
	for i, slot := range slots {
		lines[i] = s.SlotLine(slot, width)
	}
	return strings.Join(lines, "\n")
}

// Code renders tokenized source lines.
func (s *Styles) Code(lines [][]theme.Token) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, tok := range line {
			b.WriteString(s.Highlight(tok.Style).Render(tok.Text))
		}
	}
	return b.String()
}

// Story renders a component story: its title and the colors it reads.
func (s *Styles) Story(story theme.Story) string {
	return s.Title().Render(story.Title) + "\n\n" + s.Slots(story.Resolve(s.theme.Styles))
}
