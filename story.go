package theme

// Story describes a UI component and the color slots it reads, so a theme
// can be previewed one component at a time.
type Story struct {
	Name        string   // Identifier, e.g. "tab_bar"
	Title       string   // Human-readable title
	ThemeSlots  []string // ThemeColors slots the component reads
	StatusSlots []string // StatusColors slots the component reads
}

// SlotColor is a resolved slot of a story.
type SlotColor struct {
	Name  string
	Color Color
}

// Resolve returns the colors of the story's slots in styles, theme slots
// first. Unknown slot names are skipped.
func (s Story) Resolve(styles ThemeStyles) []SlotColor {
	out := make([]SlotColor, 0, len(s.ThemeSlots)+len(s.StatusSlots))
	for _, name := range s.ThemeSlots {
		if c, ok := styles.Colors.Slot(name); ok {
			out = append(out, SlotColor{Name: name, Color: c})
		}
	}
	for _, name := range s.StatusSlots {
		if c, ok := styles.Status.Slot(name); ok {
			out = append(out, SlotColor{Name: "status." + name, Color: c})
		}
	}
	return out
}

// Stories returns the component catalogue in display order.
func Stories() []Story {
	return []Story{
		{
			Name:       "assistant_panel",
			Title:      "Assistant Panel",
			ThemeSlots: []string{"surface_background", "border", "text", "text_muted", "element_background", "icon"},
		},
		{
			Name:       "breadcrumb",
			Title:      "Breadcrumb",
			ThemeSlots: []string{"toolbar_background", "text_muted", "text", "icon_muted"},
		},
		{
			Name:  "buffer",
			Title: "Buffer",
			ThemeSlots: []string{
				"editor_background", "editor_gutter_background", "editor_line_number",
				"editor_active_line_number", "editor_active_line_background",
				"editor_highlighted_line_background", "editor_invisible", "editor_wrap_guide",
				"editor_active_wrap_guide", "editor_document_highlight_read_background",
				"editor_document_highlight_write_background", "editor_subheader_background",
			},
			StatusSlots: []string{"error", "warning", "hint", "info", "unreachable", "predictive"},
		},
		{
			Name:       "chat_panel",
			Title:      "Chat Panel",
			ThemeSlots: []string{"surface_background", "text", "text_muted", "text_placeholder", "border_variant"},
		},
		{
			Name:        "collab_panel",
			Title:       "Collab Panel",
			ThemeSlots:  []string{"surface_background", "ghost_element_hover", "ghost_element_selected", "text", "icon_muted"},
			StatusSlots: []string{"success", "hidden"},
		},
		{
			Name:       "facepile",
			Title:      "Facepile",
			ThemeSlots: []string{"title_bar_background", "border"},
		},
		{
			Name:       "keybinding",
			Title:      "Keybinding",
			ThemeSlots: []string{"element_background", "border_variant", "text_muted"},
		},
		{
			Name:       "palette",
			Title:      "Command Palette",
			ThemeSlots: []string{"elevated_surface_background", "border", "text", "text_accent", "text_placeholder", "ghost_element_selected"},
		},
		{
			Name:       "panel",
			Title:      "Panel",
			ThemeSlots: []string{"surface_background", "border", "border_focused"},
		},
		{
			Name:        "project_panel",
			Title:       "Project Panel",
			ThemeSlots:  []string{"surface_background", "text", "icon", "ghost_element_hover", "ghost_element_selected", "border_focused"},
			StatusSlots: []string{"created", "modified", "deleted", "renamed", "conflict", "ignored"},
		},
		{
			Name:       "tab",
			Title:      "Tab",
			ThemeSlots: []string{"tab_active_background", "tab_inactive_background", "text", "text_muted", "border"},
		},
		{
			Name:       "tab_bar",
			Title:      "Tab Bar",
			ThemeSlots: []string{"tab_bar_background", "tab_active_background", "tab_inactive_background", "border", "icon_muted"},
		},
		{
			Name:  "terminal",
			Title: "Terminal",
			ThemeSlots: []string{
				"terminal_background",
				"terminal_ansi_black", "terminal_ansi_red", "terminal_ansi_green", "terminal_ansi_yellow",
				"terminal_ansi_blue", "terminal_ansi_magenta", "terminal_ansi_cyan", "terminal_ansi_white",
				"terminal_ansi_bright_black", "terminal_ansi_bright_red", "terminal_ansi_bright_green",
				"terminal_ansi_bright_yellow", "terminal_ansi_bright_blue", "terminal_ansi_bright_magenta",
				"terminal_ansi_bright_cyan", "terminal_ansi_bright_white",
			},
		},
		{
			Name:       "title_bar",
			Title:      "Title Bar",
			ThemeSlots: []string{"title_bar_background", "text", "text_muted", "ghost_element_hover", "border_variant"},
		},
		{
			Name:       "toolbar",
			Title:      "Toolbar",
			ThemeSlots: []string{"toolbar_background", "icon", "icon_muted", "icon_disabled", "icon_accent", "ghost_element_hover", "ghost_element_active"},
		},
		{
			Name:       "traffic_lights",
			Title:      "Traffic Lights",
			ThemeSlots: []string{"title_bar_background", "border_transparent"},
		},
		{
			Name:  "workspace",
			Title: "Workspace",
			ThemeSlots: []string{
				"background", "status_bar_background", "title_bar_background", "border",
				"element_background", "element_hover", "element_active", "element_selected",
				"element_disabled", "drop_target_background", "border_selected", "border_disabled",
				"ghost_element_background", "ghost_element_disabled", "text_disabled", "icon_placeholder",
			},
		},
	}
}
