package bubbletea_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/theme"
	"github.com/fwojciec/theme/bubbletea"
	"github.com/fwojciec/theme/mock"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check that Viewer implements theme.Viewer.
var _ theme.Viewer = (*bubbletea.Viewer)(nil)

// asciiRenderer creates a lipgloss renderer without colors so output can be
// matched as plain text.
func asciiRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(nil, termenv.WithProfile(termenv.Ascii))
}

func oneDark(t *testing.T) *theme.Theme {
	t.Helper()
	th, err := theme.NewRegistry().Get(theme.DefaultDarkThemeName)
	require.NoError(t, err)
	return &th
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// update sends msgs to m in order and returns the resulting model.
func update(t *testing.T, m bubbletea.Model, msgs ...tea.Msg) bubbletea.Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(bubbletea.Model)
		require.True(t, ok)
	}
	return m
}

func TestModel_Init(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(oneDark(t))

	assert.Nil(t, m.Init())
}

func TestModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(oneDark(t))

	assert.Contains(t, m.View(), "Loading")
}

func TestModel_StoryNavigation(t *testing.T) {
	t.Parallel()

	stories := theme.Stories()
	size := tea.WindowSizeMsg{Width: 80, Height: 24}

	t.Run("starts at the first story", func(t *testing.T) {
		t.Parallel()

		m := update(t, bubbletea.NewModel(oneDark(t)), size)

		story, ok := m.Story()
		require.True(t, ok)
		assert.Equal(t, stories[0].Name, story.Name)
	})

	t.Run("l moves to the next story", func(t *testing.T) {
		t.Parallel()

		m := update(t, bubbletea.NewModel(oneDark(t)), size, keyRune('l'))

		story, _ := m.Story()
		assert.Equal(t, stories[1].Name, story.Name)
	})

	t.Run("h wraps around to the last story", func(t *testing.T) {
		t.Parallel()

		m := update(t, bubbletea.NewModel(oneDark(t)), size, keyRune('h'))

		story, _ := m.Story()
		assert.Equal(t, stories[len(stories)-1].Name, story.Name)
	})

	t.Run("arrow keys navigate too", func(t *testing.T) {
		t.Parallel()

		m := update(t, bubbletea.NewModel(oneDark(t)), size,
			tea.KeyMsg{Type: tea.KeyRight},
			tea.KeyMsg{Type: tea.KeyRight},
			tea.KeyMsg{Type: tea.KeyLeft},
		)

		story, _ := m.Story()
		assert.Equal(t, stories[1].Name, story.Name)
	})

	t.Run("no stories", func(t *testing.T) {
		t.Parallel()

		m := update(t, bubbletea.NewModel(oneDark(t), bubbletea.WithStories(nil), bubbletea.WithRenderer(asciiRenderer())), size, keyRune('l'))

		_, ok := m.Story()
		assert.False(t, ok)
		assert.Contains(t, m.View(), "(no components)")
		assert.Contains(t, m.View(), "0/0")
	})
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	t.Run("shows story colors and status bar", func(t *testing.T) {
		t.Parallel()

		stories := []theme.Story{{Name: "tab", Title: "Tab", ThemeSlots: []string{"tab_active_background"}}}
		m := update(t,
			bubbletea.NewModel(oneDark(t), bubbletea.WithStories(stories), bubbletea.WithRenderer(asciiRenderer())),
			tea.WindowSizeMsg{Width: 100, Height: 40},
		)

		view := m.View()

		assert.Contains(t, view, "tab_active_background")
		assert.Contains(t, view, oneDark(t).Styles.Colors.TabActiveBackground.Hex())
		assert.Contains(t, view, "Players")
		assert.Contains(t, view, "One Dark")
		assert.Contains(t, view, "1/1")
	})

	t.Run("code story shows tokenized sample code", func(t *testing.T) {
		t.Parallel()

		var language string
		tokenizer := &mock.Tokenizer{
			TokenizeLinesFn: func(lang, source string) [][]theme.Token {
				language = lang
				assert.NotContains(t, source, "\t")
				return [][]theme.Token{{{Text: "package"}, {Text: " greet"}}}
			},
		}
		stories := []theme.Story{{Name: "buffer", Title: "Buffer", ThemeSlots: []string{"editor_background"}}}
		m := update(t,
			bubbletea.NewModel(oneDark(t),
				bubbletea.WithStories(stories),
				bubbletea.WithTokenizer(tokenizer),
				bubbletea.WithRenderer(asciiRenderer()),
			),
			tea.WindowSizeMsg{Width: 100, Height: 40},
		)

		assert.Equal(t, "go", language)
		assert.Contains(t, m.View(), "package greet")
	})

	t.Run("help toggles the full key list", func(t *testing.T) {
		t.Parallel()

		m := update(t,
			bubbletea.NewModel(oneDark(t), bubbletea.WithRenderer(asciiRenderer())),
			tea.WindowSizeMsg{Width: 120, Height: 40},
			keyRune('?'),
		)

		assert.Contains(t, m.View(), "half page down")

		m = update(t, m, keyRune('?'))

		assert.NotContains(t, m.View(), "half page down")
	})
}

func TestModel_Teatest(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(oneDark(t), bubbletea.WithRenderer(asciiRenderer()))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(100, 40),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Assistant Panel"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(keyRune('l'))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Breadcrumb"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(keyRune('q'))
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final, ok := tm.FinalModel(t).(bubbletea.Model)
	require.True(t, ok)
	story, _ := final.Story()
	assert.Equal(t, "breadcrumb", story.Name)
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewModel(oneDark(t))
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}

func TestDefaultKeyMap_Help(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	var descs []string
	for _, group := range km.FullHelp() {
		for _, b := range group {
			descs = append(descs, b.Help().Desc)
		}
	}
	assert.Contains(t, strings.Join(descs, ","), "next component")
	assert.Len(t, km.ShortHelp(), 4)
}

func TestModel_TokenizerFor(t *testing.T) {
	t.Parallel()

	th := oneDark(t)
	var got *theme.SyntaxTheme
	stories := []theme.Story{{Name: "buffer", Title: "Buffer"}}

	m := update(t,
		bubbletea.NewModel(th,
			bubbletea.WithStories(stories),
			bubbletea.WithRenderer(asciiRenderer()),
			bubbletea.WithTokenizerFor(func(s *theme.SyntaxTheme) theme.Tokenizer {
				got = s
				return &mock.Tokenizer{
					TokenizeLinesFn: func(string, string) [][]theme.Token {
						return [][]theme.Token{{{Text: "from factory"}}}
					},
				}
			}),
		),
		tea.WindowSizeMsg{Width: 100, Height: 40},
	)

	assert.Same(t, th.Styles.Syntax, got)
	assert.Contains(t, m.View(), "from factory")
}

func TestModel_Copy(t *testing.T) {
	t.Parallel()

	stories := []theme.Story{{Name: "tab_bar", Title: "Tab Bar", ThemeSlots: []string{"tab_bar_background"}, StatusSlots: []string{"modified"}}}
	size := tea.WindowSizeMsg{Width: 120, Height: 24}

	t.Run("copies the active story's colors", func(t *testing.T) {
		t.Parallel()

		th := oneDark(t)
		var copied string
		cb := &mock.Clipboard{CopyFn: func(content string) error {
			copied = content
			return nil
		}}

		m := update(t,
			bubbletea.NewModel(th, bubbletea.WithStories(stories), bubbletea.WithClipboard(cb), bubbletea.WithRenderer(asciiRenderer())),
			size, keyRune('y'),
		)

		want := "tab_bar_background " + th.Styles.Colors.TabBarBackground.Hex() + "\n" +
			"status.modified " + th.Styles.Status.Modified.Hex() + "\n"
		assert.Equal(t, want, copied)
		assert.Equal(t, "copied Tab Bar", m.Message())
		assert.Contains(t, m.View(), "copied Tab Bar")
	})

	t.Run("next key clears the message", func(t *testing.T) {
		t.Parallel()

		cb := &mock.Clipboard{CopyFn: func(string) error { return nil }}

		m := update(t,
			bubbletea.NewModel(oneDark(t), bubbletea.WithStories(stories), bubbletea.WithClipboard(cb)),
			size, keyRune('y'), keyRune('j'),
		)

		assert.Empty(t, m.Message())
	})

	t.Run("reports copy errors", func(t *testing.T) {
		t.Parallel()

		cb := &mock.Clipboard{CopyFn: func(string) error { return errors.New("no display") }}

		m := update(t,
			bubbletea.NewModel(oneDark(t), bubbletea.WithStories(stories), bubbletea.WithClipboard(cb)),
			size, keyRune('y'),
		)

		assert.Equal(t, "copy failed: no display", m.Message())
	})

	t.Run("without a clipboard", func(t *testing.T) {
		t.Parallel()

		m := update(t, bubbletea.NewModel(oneDark(t), bubbletea.WithStories(stories)), size, keyRune('y'))

		assert.Equal(t, "clipboard unavailable", m.Message())
	})
}
