package theme

// SystemColors are fixed colors that do not vary between themes and are
// not refinable.
type SystemColors struct {
	Transparent             Color
	MacOSTrafficLightRed    Color
	MacOSTrafficLightYellow Color
	MacOSTrafficLightGreen  Color
}

// DefaultSystemColors returns the system colors shared by every theme.
func DefaultSystemColors() SystemColors {
	return SystemColors{
		Transparent:             Hsla(0, 0, 0, 0),
		MacOSTrafficLightRed:    Rgb(0xec695e),
		MacOSTrafficLightYellow: Rgb(0xf4bf4f),
		MacOSTrafficLightGreen:  Rgb(0x61c553),
	}
}

// StatusColors are the semantic colors used to convey the state of a file,
// operation or diagnostic.
type StatusColors struct {
	Conflict    Color // Merge conflicts, files changed on disk while open.
	Created     Color // New files and additions.
	Deleted     Color
	Error       Color // Failed operations and error diagnostics.
	Hidden      Color
	Hint        Color
	Ignored     Color // Files or operations deliberately ignored, e.g. by git.
	Info        Color
	Modified    Color
	Predictive  Color // Predicted or generated content like completions.
	Renamed     Color
	Success     Color
	Unreachable Color // Code that can never run.
	Warning     Color
}

// StatusColorsRefinement is a partial StatusColors. Nil slots are left
// untouched when refining.
type StatusColorsRefinement struct {
	Conflict    *Color `json:"conflict,omitempty"`
	Created     *Color `json:"created,omitempty"`
	Deleted     *Color `json:"deleted,omitempty"`
	Error       *Color `json:"error,omitempty"`
	Hidden      *Color `json:"hidden,omitempty"`
	Hint        *Color `json:"hint,omitempty"`
	Ignored     *Color `json:"ignored,omitempty"`
	Info        *Color `json:"info,omitempty"`
	Modified    *Color `json:"modified,omitempty"`
	Predictive  *Color `json:"predictive,omitempty"`
	Renamed     *Color `json:"renamed,omitempty"`
	Success     *Color `json:"success,omitempty"`
	Unreachable *Color `json:"unreachable,omitempty"`
	Warning     *Color `json:"warning,omitempty"`
}

// Refine replaces every slot of c that r sets, leaving the others untouched.
// A nil refinement is a no-op. r is not modified.
func (c *StatusColors) Refine(r *StatusColorsRefinement) {
	if r == nil {
		return
	}
	refineSlot(&c.Conflict, r.Conflict)
	refineSlot(&c.Created, r.Created)
	refineSlot(&c.Deleted, r.Deleted)
	refineSlot(&c.Error, r.Error)
	refineSlot(&c.Hidden, r.Hidden)
	refineSlot(&c.Hint, r.Hint)
	refineSlot(&c.Ignored, r.Ignored)
	refineSlot(&c.Info, r.Info)
	refineSlot(&c.Modified, r.Modified)
	refineSlot(&c.Predictive, r.Predictive)
	refineSlot(&c.Renamed, r.Renamed)
	refineSlot(&c.Success, r.Success)
	refineSlot(&c.Unreachable, r.Unreachable)
	refineSlot(&c.Warning, r.Warning)
}

// Equal reports whether every slot of c equals the corresponding slot of other.
func (c StatusColors) Equal(other StatusColors) bool {
	return c == other
}

// ThemeColors holds the colors of UI surfaces, elements, text, editor and
// terminal.
type ThemeColors struct {
	// Borders
	Border            Color
	BorderVariant     Color // Deemphasized borders, like dividers between sections.
	BorderFocused     Color // Keyboard focused elements.
	BorderSelected    Color // Selected elements such as an active filter.
	BorderTransparent Color // Placeholder border for elements that gain a border on state change.
	BorderDisabled    Color

	// Surfaces
	ElevatedSurfaceBackground Color // Popovers, context menus and dialogs.
	SurfaceBackground         Color // Grounded surfaces like panels and tabs.
	Background                Color // App background and blank panes.

	// Elements
	ElementBackground      Color // Elements drawn on a surface with their own background: buttons, inputs, checkboxes.
	ElementHover           Color
	ElementActive          Color
	ElementSelected        Color
	ElementDisabled        Color
	DropTargetBackground   Color // Area a dragged element will be dropped on.
	GhostElementBackground Color // Elements that share the background of the surface they sit on.
	GhostElementHover      Color
	GhostElementActive     Color
	GhostElementSelected   Color
	GhostElementDisabled   Color

	// Text and icons
	Text            Color
	TextMuted       Color
	TextPlaceholder Color
	TextDisabled    Color
	TextAccent      Color // Matched characters, active filters.
	Icon            Color
	IconMuted       Color
	IconDisabled    Color
	IconPlaceholder Color
	IconAccent      Color

	// UI chrome
	StatusBarBackground   Color
	TitleBarBackground    Color
	ToolbarBackground     Color
	TabBarBackground      Color
	TabInactiveBackground Color
	TabActiveBackground   Color

	// Editor
	EditorBackground                       Color
	EditorGutterBackground                 Color
	EditorSubheaderBackground              Color
	EditorActiveLineBackground             Color
	EditorHighlightedLineBackground        Color
	EditorLineNumber                       Color
	EditorActiveLineNumber                 Color
	EditorInvisible                        Color // Markers for whitespace and other invisible characters.
	EditorWrapGuide                        Color
	EditorActiveWrapGuide                  Color
	EditorDocumentHighlightReadBackground  Color
	EditorDocumentHighlightWriteBackground Color

	// Terminal
	TerminalBackground        Color
	TerminalANSIBrightBlack   Color
	TerminalANSIBrightRed     Color
	TerminalANSIBrightGreen   Color
	TerminalANSIBrightYellow  Color
	TerminalANSIBrightBlue    Color
	TerminalANSIBrightMagenta Color
	TerminalANSIBrightCyan    Color
	TerminalANSIBrightWhite   Color
	TerminalANSIBlack         Color
	TerminalANSIRed           Color
	TerminalANSIGreen         Color
	TerminalANSIYellow        Color
	TerminalANSIBlue          Color
	TerminalANSIMagenta       Color
	TerminalANSICyan          Color
	TerminalANSIWhite         Color
}

// ThemeColorsRefinement is a partial ThemeColors. Nil slots are left
// untouched when refining.
type ThemeColorsRefinement struct {
	Border            *Color `json:"border,omitempty"`
	BorderVariant     *Color `json:"border_variant,omitempty"`
	BorderFocused     *Color `json:"border_focused,omitempty"`
	BorderSelected    *Color `json:"border_selected,omitempty"`
	BorderTransparent *Color `json:"border_transparent,omitempty"`
	BorderDisabled    *Color `json:"border_disabled,omitempty"`

	ElevatedSurfaceBackground *Color `json:"elevated_surface_background,omitempty"`
	SurfaceBackground         *Color `json:"surface_background,omitempty"`
	Background                *Color `json:"background,omitempty"`

	ElementBackground      *Color `json:"element_background,omitempty"`
	ElementHover           *Color `json:"element_hover,omitempty"`
	ElementActive          *Color `json:"element_active,omitempty"`
	ElementSelected        *Color `json:"element_selected,omitempty"`
	ElementDisabled        *Color `json:"element_disabled,omitempty"`
	DropTargetBackground   *Color `json:"drop_target_background,omitempty"`
	GhostElementBackground *Color `json:"ghost_element_background,omitempty"`
	GhostElementHover      *Color `json:"ghost_element_hover,omitempty"`
	GhostElementActive     *Color `json:"ghost_element_active,omitempty"`
	GhostElementSelected   *Color `json:"ghost_element_selected,omitempty"`
	GhostElementDisabled   *Color `json:"ghost_element_disabled,omitempty"`

	Text            *Color `json:"text,omitempty"`
	TextMuted       *Color `json:"text_muted,omitempty"`
	TextPlaceholder *Color `json:"text_placeholder,omitempty"`
	TextDisabled    *Color `json:"text_disabled,omitempty"`
	TextAccent      *Color `json:"text_accent,omitempty"`
	Icon            *Color `json:"icon,omitempty"`
	IconMuted       *Color `json:"icon_muted,omitempty"`
	IconDisabled    *Color `json:"icon_disabled,omitempty"`
	IconPlaceholder *Color `json:"icon_placeholder,omitempty"`
	IconAccent      *Color `json:"icon_accent,omitempty"`

	StatusBarBackground   *Color `json:"status_bar_background,omitempty"`
	TitleBarBackground    *Color `json:"title_bar_background,omitempty"`
	ToolbarBackground     *Color `json:"toolbar_background,omitempty"`
	TabBarBackground      *Color `json:"tab_bar_background,omitempty"`
	TabInactiveBackground *Color `json:"tab_inactive_background,omitempty"`
	TabActiveBackground   *Color `json:"tab_active_background,omitempty"`

	EditorBackground                       *Color `json:"editor_background,omitempty"`
	EditorGutterBackground                 *Color `json:"editor_gutter_background,omitempty"`
	EditorSubheaderBackground              *Color `json:"editor_subheader_background,omitempty"`
	EditorActiveLineBackground             *Color `json:"editor_active_line_background,omitempty"`
	EditorHighlightedLineBackground        *Color `json:"editor_highlighted_line_background,omitempty"`
	EditorLineNumber                       *Color `json:"editor_line_number,omitempty"`
	EditorActiveLineNumber                 *Color `json:"editor_active_line_number,omitempty"`
	EditorInvisible                        *Color `json:"editor_invisible,omitempty"`
	EditorWrapGuide                        *Color `json:"editor_wrap_guide,omitempty"`
	EditorActiveWrapGuide                  *Color `json:"editor_active_wrap_guide,omitempty"`
	EditorDocumentHighlightReadBackground  *Color `json:"editor_document_highlight_read_background,omitempty"`
	EditorDocumentHighlightWriteBackground *Color `json:"editor_document_highlight_write_background,omitempty"`

	TerminalBackground        *Color `json:"terminal_background,omitempty"`
	TerminalANSIBrightBlack   *Color `json:"terminal_ansi_bright_black,omitempty"`
	TerminalANSIBrightRed     *Color `json:"terminal_ansi_bright_red,omitempty"`
	TerminalANSIBrightGreen   *Color `json:"terminal_ansi_bright_green,omitempty"`
	TerminalANSIBrightYellow  *Color `json:"terminal_ansi_bright_yellow,omitempty"`
	TerminalANSIBrightBlue    *Color `json:"terminal_ansi_bright_blue,omitempty"`
	TerminalANSIBrightMagenta *Color `json:"terminal_ansi_bright_magenta,omitempty"`
	TerminalANSIBrightCyan    *Color `json:"terminal_ansi_bright_cyan,omitempty"`
	TerminalANSIBrightWhite   *Color `json:"terminal_ansi_bright_white,omitempty"`
	TerminalANSIBlack         *Color `json:"terminal_ansi_black,omitempty"`
	TerminalANSIRed           *Color `json:"terminal_ansi_red,omitempty"`
	TerminalANSIGreen         *Color `json:"terminal_ansi_green,omitempty"`
	TerminalANSIYellow        *Color `json:"terminal_ansi_yellow,omitempty"`
	TerminalANSIBlue          *Color `json:"terminal_ansi_blue,omitempty"`
	TerminalANSIMagenta       *Color `json:"terminal_ansi_magenta,omitempty"`
	TerminalANSICyan          *Color `json:"terminal_ansi_cyan,omitempty"`
	TerminalANSIWhite         *Color `json:"terminal_ansi_white,omitempty"`
}

// Refine replaces every slot of c that r sets, leaving the others untouched.
// A nil refinement is a no-op. r is not modified.
func (c *ThemeColors) Refine(r *ThemeColorsRefinement) {
	if r == nil {
		return
	}
	refineSlot(&c.Border, r.Border)
	refineSlot(&c.BorderVariant, r.BorderVariant)
	refineSlot(&c.BorderFocused, r.BorderFocused)
	refineSlot(&c.BorderSelected, r.BorderSelected)
	refineSlot(&c.BorderTransparent, r.BorderTransparent)
	refineSlot(&c.BorderDisabled, r.BorderDisabled)
	refineSlot(&c.ElevatedSurfaceBackground, r.ElevatedSurfaceBackground)
	refineSlot(&c.SurfaceBackground, r.SurfaceBackground)
	refineSlot(&c.Background, r.Background)
	refineSlot(&c.ElementBackground, r.ElementBackground)
	refineSlot(&c.ElementHover, r.ElementHover)
	refineSlot(&c.ElementActive, r.ElementActive)
	refineSlot(&c.ElementSelected, r.ElementSelected)
	refineSlot(&c.ElementDisabled, r.ElementDisabled)
	refineSlot(&c.DropTargetBackground, r.DropTargetBackground)
	refineSlot(&c.GhostElementBackground, r.GhostElementBackground)
	refineSlot(&c.GhostElementHover, r.GhostElementHover)
	refineSlot(&c.GhostElementActive, r.GhostElementActive)
	refineSlot(&c.GhostElementSelected, r.GhostElementSelected)
	refineSlot(&c.GhostElementDisabled, r.GhostElementDisabled)
	refineSlot(&c.Text, r.Text)
	refineSlot(&c.TextMuted, r.TextMuted)
	refineSlot(&c.TextPlaceholder, r.TextPlaceholder)
	refineSlot(&c.TextDisabled, r.TextDisabled)
	refineSlot(&c.TextAccent, r.TextAccent)
	refineSlot(&c.Icon, r.Icon)
	refineSlot(&c.IconMuted, r.IconMuted)
	refineSlot(&c.IconDisabled, r.IconDisabled)
	refineSlot(&c.IconPlaceholder, r.IconPlaceholder)
	refineSlot(&c.IconAccent, r.IconAccent)
	refineSlot(&c.StatusBarBackground, r.StatusBarBackground)
	refineSlot(&c.TitleBarBackground, r.TitleBarBackground)
	refineSlot(&c.ToolbarBackground, r.ToolbarBackground)
	refineSlot(&c.TabBarBackground, r.TabBarBackground)
	refineSlot(&c.TabInactiveBackground, r.TabInactiveBackground)
	refineSlot(&c.TabActiveBackground, r.TabActiveBackground)
	refineSlot(&c.EditorBackground, r.EditorBackground)
	refineSlot(&c.EditorGutterBackground, r.EditorGutterBackground)
	refineSlot(&c.EditorSubheaderBackground, r.EditorSubheaderBackground)
	refineSlot(&c.EditorActiveLineBackground, r.EditorActiveLineBackground)
	refineSlot(&c.EditorHighlightedLineBackground, r.EditorHighlightedLineBackground)
	refineSlot(&c.EditorLineNumber, r.EditorLineNumber)
	refineSlot(&c.EditorActiveLineNumber, r.EditorActiveLineNumber)
	refineSlot(&c.EditorInvisible, r.EditorInvisible)
	refineSlot(&c.EditorWrapGuide, r.EditorWrapGuide)
	refineSlot(&c.EditorActiveWrapGuide, r.EditorActiveWrapGuide)
	refineSlot(&c.EditorDocumentHighlightReadBackground, r.EditorDocumentHighlightReadBackground)
	refineSlot(&c.EditorDocumentHighlightWriteBackground, r.EditorDocumentHighlightWriteBackground)
	refineSlot(&c.TerminalBackground, r.TerminalBackground)
	refineSlot(&c.TerminalANSIBrightBlack, r.TerminalANSIBrightBlack)
	refineSlot(&c.TerminalANSIBrightRed, r.TerminalANSIBrightRed)
	refineSlot(&c.TerminalANSIBrightGreen, r.TerminalANSIBrightGreen)
	refineSlot(&c.TerminalANSIBrightYellow, r.TerminalANSIBrightYellow)
	refineSlot(&c.TerminalANSIBrightBlue, r.TerminalANSIBrightBlue)
	refineSlot(&c.TerminalANSIBrightMagenta, r.TerminalANSIBrightMagenta)
	refineSlot(&c.TerminalANSIBrightCyan, r.TerminalANSIBrightCyan)
	refineSlot(&c.TerminalANSIBrightWhite, r.TerminalANSIBrightWhite)
	refineSlot(&c.TerminalANSIBlack, r.TerminalANSIBlack)
	refineSlot(&c.TerminalANSIRed, r.TerminalANSIRed)
	refineSlot(&c.TerminalANSIGreen, r.TerminalANSIGreen)
	refineSlot(&c.TerminalANSIYellow, r.TerminalANSIYellow)
	refineSlot(&c.TerminalANSIBlue, r.TerminalANSIBlue)
	refineSlot(&c.TerminalANSIMagenta, r.TerminalANSIMagenta)
	refineSlot(&c.TerminalANSICyan, r.TerminalANSICyan)
	refineSlot(&c.TerminalANSIWhite, r.TerminalANSIWhite)
}

// Equal reports whether every slot of c equals the corresponding slot of other.
func (c ThemeColors) Equal(other ThemeColors) bool {
	return c == other
}

func refineSlot(dst *Color, src *Color) {
	if src != nil {
		*dst = *src
	}
}
