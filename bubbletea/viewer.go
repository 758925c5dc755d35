// Package bubbletea provides an interactive terminal preview of themes using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/theme"
	tlipgloss "github.com/fwojciec/theme/lipgloss"
)

// Compile-time interface verification.
var _ theme.Viewer = (*Viewer)(nil)

// codeStory is the story whose page also shows highlighted sample code.
const codeStory = "buffer"

// sampleCode is highlighted on the code story's page.
const sampleCode = `// Package greet says hello.
package greet

import "fmt"

/* Greeter holds a name
   and a greeting count. */
type Greeter struct {
	Name  string
	count int
}

// Greet returns a greeting.
func (g *Greeter) Greet() string {
	g.count++
	if g.count > 3 && g.Name != "" {
		return fmt.Sprintf("hello again, %s!\n", g.Name)
	}
	return "hello"
}
`

// Model is the Bubble Tea model for previewing a theme one component story
// at a time.
type Model struct {
	theme     *theme.Theme
	stories   []theme.Story
	styles    *tlipgloss.Styles
	tokenizer theme.Tokenizer
	clipboard theme.Clipboard

	active     int
	viewport   viewport.Model
	keymap     KeyMap
	help       help.Model
	showHelp   bool
	width      int
	ready      bool
	pendingKey string
	message    string // Shown in the status bar until the next key press
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer     *lipgloss.Renderer
	tokenizer    theme.Tokenizer
	tokenizerFor func(*theme.SyntaxTheme) theme.Tokenizer
	clipboard    theme.Clipboard
	stories      []theme.Story
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTokenizer sets the tokenizer used to highlight sample code.
// Without one the code story shows only its colors.
func WithTokenizer(t theme.Tokenizer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.tokenizer = t
	}
}

// WithTokenizerFor builds the tokenizer from the previewed theme's syntax
// theme. WithTokenizer takes precedence.
func WithTokenizerFor(fn func(*theme.SyntaxTheme) theme.Tokenizer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.tokenizerFor = fn
	}
}

// WithClipboard enables copying the active story's colors.
func WithClipboard(c theme.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithStories replaces the component stories to page through.
func WithStories(stories []theme.Story) ModelOption {
	return func(cfg *modelConfig) {
		cfg.stories = stories
	}
}

// NewModel creates a new Model previewing t.
func NewModel(t *theme.Theme, opts ...ModelOption) Model {
	cfg := &modelConfig{stories: theme.Stories()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.tokenizer == nil && cfg.tokenizerFor != nil {
		cfg.tokenizer = cfg.tokenizerFor(t.Styles.Syntax)
	}

	var styleOpts []tlipgloss.Option
	if cfg.renderer != nil {
		styleOpts = append(styleOpts, tlipgloss.WithRenderer(cfg.renderer))
	}
	styles := tlipgloss.NewStyles(t, styleOpts...)

	h := help.New()
	h.Styles.ShortKey = styles.StatusBar().Bold(true)
	h.Styles.ShortDesc = styles.StatusBar()
	h.Styles.ShortSeparator = styles.StatusBar()
	h.Styles.FullKey = styles.Base().Bold(true)
	h.Styles.FullDesc = styles.Muted()
	h.Styles.FullSeparator = styles.Muted()

	return Model{
		theme:     t,
		stories:   cfg.stories,
		styles:    styles,
		tokenizer: cfg.tokenizer,
		clipboard: cfg.clipboard,
		keymap:    DefaultKeyMap(),
		help:      h,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle multi-key sequences (gg for go to top)
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			m.pendingKey = ""
			return m, nil
		}
		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}
		m.pendingKey = ""
		m.message = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Help):
			m.showHelp = !m.showHelp
			m.resize(m.width, m.viewport.Height+m.footerHeight(!m.showHelp))
			return m, nil
		case key.Matches(msg, m.keymap.NextStory):
			m.gotoStory(m.active + 1)
			return m, nil
		case key.Matches(msg, m.keymap.PrevStory):
			m.gotoStory(m.active - 1)
			return m, nil
		case key.Matches(msg, m.keymap.Copy):
			m.copyStory()
			return m, nil
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfPageDown()
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-m.footerHeight(m.showHelp))
			m.viewport.SetContent(m.renderContent())
			m.ready = true
		} else {
			m.resize(msg.Width, msg.Height)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.footerView())
}

// Story returns the story currently shown, or false when there are none.
func (m Model) Story() (theme.Story, bool) {
	if m.active < 0 || m.active >= len(m.stories) {
		return theme.Story{}, false
	}
	return m.stories[m.active], true
}

// resize fits the viewport into a terminal of the given size.
func (m *Model) resize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(0, height-m.footerHeight(m.showHelp))
}

// footerHeight is the number of lines below the viewport.
func (m Model) footerHeight(withHelp bool) int {
	if withHelp {
		return lipgloss.Height(m.helpView())
	}
	return 1
}

// gotoStory switches to story i, wrapping around at either end.
func (m *Model) gotoStory(i int) {
	n := len(m.stories)
	if n == 0 {
		return
	}
	m.active = ((i % n) + n) % n
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// copyStory copies the active story's colors as "slot #hex" lines.
func (m *Model) copyStory() {
	story, ok := m.Story()
	if !ok {
		return
	}
	if m.clipboard == nil {
		m.message = "clipboard unavailable"
		return
	}
	var b strings.Builder
	for _, sc := range story.Resolve(m.theme.Styles) {
		fmt.Fprintf(&b, "%s %s\n", sc.Name, sc.Color.Hex())
	}
	if err := m.clipboard.Copy(b.String()); err != nil {
		m.message = "copy failed: " + err.Error()
		return
	}
	m.message = "copied " + story.Title
}

// Message returns the transient status bar message, if any.
func (m Model) Message() string {
	return m.message
}

// renderContent renders the active story page.
func (m Model) renderContent() string {
	story, ok := m.Story()
	if !ok {
		return m.styles.Muted().Render("(no components)")
	}

	var b strings.Builder
	b.WriteString(m.styles.Story(story))

	if story.Name == codeStory && m.tokenizer != nil {
		if lines := m.tokenizer.TokenizeLines("go", ExpandTabs(sampleCode, tabWidth)); lines != nil {
			b.WriteString("\n\n")
			b.WriteString(m.styles.Code(lines))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.playersView())
	return b.String()
}

// playersView renders the collaborator colors shown under every story.
func (m Model) playersView() string {
	players := m.theme.Styles.Player
	if len(players) == 0 {
		return ""
	}
	slots := make([]theme.SlotColor, 0, len(players))
	for i, p := range players {
		slots = append(slots, theme.SlotColor{Name: fmt.Sprintf("player %d", i+1), Color: p.Cursor})
	}
	return m.styles.Title().Render("Players") + "\n\n" + m.styles.Slots(slots)
}

// footerView renders the status bar, or the full help when it is toggled.
func (m Model) footerView() string {
	if m.showHelp {
		return m.helpView()
	}
	return m.statusBarView()
}

func (m Model) helpView() string {
	h := m.help
	h.ShowAll = true
	return h.View(m.keymap)
}

// statusBarView renders the theme name, story position and short help.
func (m Model) statusBarView() string {
	bar := m.styles.StatusBar()

	position := "0/0"
	title := ""
	if story, ok := m.Story(); ok {
		position = fmt.Sprintf("%d/%d", m.active+1, len(m.stories))
		title = story.Title
	}

	left := bar.Bold(true).Render(" "+m.theme.Name) + bar.Render(" · "+title+" · "+position+" ")
	if m.message != "" {
		left += bar.Render("· " + m.message + " ")
	}
	right := m.help.ShortHelpView(m.keymap.ShortHelp())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(left)
	}
	return left + bar.Render(strings.Repeat(" ", gap)) + right
}

// Viewer implements theme.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ModelOption
}

// NewViewer creates a new Viewer. The options are applied to every model
// the viewer creates.
func NewViewer(opts ...ModelOption) *Viewer {
	return &Viewer{opts: opts}
}

// View displays the theme and blocks until the user exits or ctx is done.
func (v *Viewer) View(ctx context.Context, t *theme.Theme) error {
	m := NewModel(t, v.opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
