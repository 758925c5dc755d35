package theme

// DefaultLightThemeColors returns a fully populated ThemeColors for light backgrounds.
func DefaultLightThemeColors() ThemeColors {
	system := DefaultSystemColors()

	return ThemeColors{
		Border:            Rgb(0xc9c9ca),
		BorderVariant:     Rgb(0xdfdfe0),
		BorderFocused:     Rgb(0xcbcdf6),
		BorderSelected:    Rgb(0xcbcdf6),
		BorderTransparent: system.Transparent,
		BorderDisabled:    Rgb(0xd3d3d4),

		ElevatedSurfaceBackground: Rgb(0xebebec),
		SurfaceBackground:         Rgb(0xebebec),
		Background:                Rgb(0xdcdcdd),

		ElementBackground:      Rgb(0xebebec),
		ElementHover:           Rgb(0xdfdfe0),
		ElementActive:          Rgb(0xcacaca),
		ElementSelected:        Rgb(0xcacaca),
		ElementDisabled:        Rgb(0xebebec),
		DropTargetBackground:   Rgba(0x7e808780),
		GhostElementBackground: system.Transparent,
		GhostElementHover:      Rgb(0xdfdfe0),
		GhostElementActive:     Rgb(0xcacaca),
		GhostElementSelected:   Rgb(0xcacaca),
		GhostElementDisabled:   Rgb(0xebebec),

		Text:            Rgb(0x383a41),
		TextMuted:       Rgb(0x58585a),
		TextPlaceholder: Rgb(0xa2a3a7),
		TextDisabled:    Rgb(0xa2a3a7),
		TextAccent:      Rgb(0x5c78e2),
		Icon:            Rgb(0x383a41),
		IconMuted:       Rgb(0x58585a),
		IconDisabled:    Rgb(0xa2a3a7),
		IconPlaceholder: Rgb(0x58585a),
		IconAccent:      Rgb(0x5c78e2),

		StatusBarBackground:   Rgb(0xdcdcdd),
		TitleBarBackground:    Rgb(0xdcdcdd),
		ToolbarBackground:     Rgb(0xfafafa),
		TabBarBackground:      Rgb(0xebebec),
		TabInactiveBackground: Rgb(0xebebec),
		TabActiveBackground:   Rgb(0xfafafa),

		EditorBackground:                       Rgb(0xfafafa),
		EditorGutterBackground:                 Rgb(0xfafafa),
		EditorSubheaderBackground:              Rgb(0xebebec),
		EditorActiveLineBackground:             Rgba(0xebebecbf),
		EditorHighlightedLineBackground:        Rgb(0xebebec),
		EditorLineNumber:                       Rgb(0x9d9d9f),
		EditorActiveLineNumber:                 Rgb(0x383a41),
		EditorInvisible:                        Rgb(0xa3a3a4),
		EditorWrapGuide:                        Rgba(0x383a410d),
		EditorActiveWrapGuide:                  Rgba(0x383a411a),
		EditorDocumentHighlightReadBackground:  Rgba(0x5c78e21a),
		EditorDocumentHighlightWriteBackground: Rgba(0xa3a3a466),

		TerminalBackground:        Rgb(0xfafafa),
		TerminalANSIBrightBlack:   Rgb(0x4f525e),
		TerminalANSIBrightRed:     Rgb(0xe06c75),
		TerminalANSIBrightGreen:   Rgb(0x98c379),
		TerminalANSIBrightYellow:  Rgb(0xd19a66),
		TerminalANSIBrightBlue:    Rgb(0x61afef),
		TerminalANSIBrightMagenta: Rgb(0xc678dd),
		TerminalANSIBrightCyan:    Rgb(0x56b6c2),
		TerminalANSIBrightWhite:   Rgb(0xffffff),
		TerminalANSIBlack:         Rgb(0x383a41),
		TerminalANSIRed:           Rgb(0xe45649),
		TerminalANSIGreen:         Rgb(0x50a14f),
		TerminalANSIYellow:        Rgb(0xc18401),
		TerminalANSIBlue:          Rgb(0x4078f2),
		TerminalANSIMagenta:       Rgb(0xa626a4),
		TerminalANSICyan:          Rgb(0x0184bc),
		TerminalANSIWhite:         Rgb(0xf0f0f1),
	}
}

// DefaultDarkThemeColors returns a fully populated ThemeColors for dark backgrounds.
func DefaultDarkThemeColors() ThemeColors {
	system := DefaultSystemColors()

	return ThemeColors{
		Border:            Rgb(0x464b57),
		BorderVariant:     Rgb(0x363c46),
		BorderFocused:     Rgb(0x47679e),
		BorderSelected:    Rgb(0x293b5b),
		BorderTransparent: system.Transparent,
		BorderDisabled:    Rgb(0x414754),

		ElevatedSurfaceBackground: Rgb(0x2f343e),
		SurfaceBackground:         Rgb(0x2f343e),
		Background:                Rgb(0x3b414d),

		ElementBackground:      Rgb(0x2e343e),
		ElementHover:           Rgb(0x363c46),
		ElementActive:          Rgb(0x454a56),
		ElementSelected:        Rgb(0x454a56),
		ElementDisabled:        Rgb(0x2e343e),
		DropTargetBackground:   Rgba(0x83899480),
		GhostElementBackground: system.Transparent,
		GhostElementHover:      Rgb(0x363c46),
		GhostElementActive:     Rgb(0x454a56),
		GhostElementSelected:   Rgb(0x454a56),
		GhostElementDisabled:   Rgb(0x2e343e),

		Text:            Rgb(0xdce0e5),
		TextMuted:       Rgb(0xa9afbc),
		TextPlaceholder: Rgb(0x878a98),
		TextDisabled:    Rgb(0x878a98),
		TextAccent:      Rgb(0x74ade8),
		Icon:            Rgb(0xdce0e5),
		IconMuted:       Rgb(0xa9afbc),
		IconDisabled:    Rgb(0x878a98),
		IconPlaceholder: Rgb(0xa9afbc),
		IconAccent:      Rgb(0x74ade8),

		StatusBarBackground:   Rgb(0x3b414d),
		TitleBarBackground:    Rgb(0x3b414d),
		ToolbarBackground:     Rgb(0x282c34),
		TabBarBackground:      Rgb(0x2f343e),
		TabInactiveBackground: Rgb(0x2f343e),
		TabActiveBackground:   Rgb(0x282c34),

		EditorBackground:                       Rgb(0x282c34),
		EditorGutterBackground:                 Rgb(0x282c34),
		EditorSubheaderBackground:              Rgb(0x2f343e),
		EditorActiveLineBackground:             Rgba(0x2f343ebf),
		EditorHighlightedLineBackground:        Rgb(0x2f343e),
		EditorLineNumber:                       Rgb(0x4e5a5f),
		EditorActiveLineNumber:                 Rgb(0xd0d4da),
		EditorInvisible:                        Rgb(0x545862),
		EditorWrapGuide:                        Rgba(0xc8ccd40d),
		EditorActiveWrapGuide:                  Rgba(0xc8ccd41a),
		EditorDocumentHighlightReadBackground:  Rgba(0x74ade81a),
		EditorDocumentHighlightWriteBackground: Rgba(0x555a6366),

		TerminalBackground:        Rgb(0x282c34),
		TerminalANSIBrightBlack:   Rgb(0x5c6370),
		TerminalANSIBrightRed:     Rgb(0xea858b),
		TerminalANSIBrightGreen:   Rgb(0xaad581),
		TerminalANSIBrightYellow:  Rgb(0xffd885),
		TerminalANSIBrightBlue:    Rgb(0x85c1ff),
		TerminalANSIBrightMagenta: Rgb(0xd398eb),
		TerminalANSIBrightCyan:    Rgb(0x6ed5de),
		TerminalANSIBrightWhite:   Rgb(0xfafafa),
		TerminalANSIBlack:         Rgb(0x282c34),
		TerminalANSIRed:           Rgb(0xe06c75),
		TerminalANSIGreen:         Rgb(0x98c379),
		TerminalANSIYellow:        Rgb(0xe5c07b),
		TerminalANSIBlue:          Rgb(0x61afef),
		TerminalANSIMagenta:       Rgb(0xc678dd),
		TerminalANSICyan:          Rgb(0x56b6c2),
		TerminalANSIWhite:         Rgb(0xdcdfe4),
	}
}

// DefaultLightStatusColors returns the status colors used by light themes.
func DefaultLightStatusColors() StatusColors {
	return StatusColors{
		Conflict:    Rgb(0xa48819),
		Created:     Rgb(0x669f59),
		Deleted:     Rgb(0xd36151),
		Error:       Rgb(0xd36151),
		Hidden:      Rgb(0xa1a1a3),
		Hint:        Rgb(0x7274a7),
		Ignored:     Rgb(0xa1a1a3),
		Info:        Rgb(0x5c78e2),
		Modified:    Rgb(0xa48819),
		Predictive:  Rgb(0x9b9ec6),
		Renamed:     Rgb(0x5c78e2),
		Success:     Rgb(0x669f59),
		Unreachable: Rgb(0x7e8087),
		Warning:     Rgb(0xa48819),
	}
}

// DefaultDarkStatusColors returns the status colors used by dark themes.
func DefaultDarkStatusColors() StatusColors {
	return StatusColors{
		Conflict:    Rgb(0xdec184),
		Created:     Rgb(0xa1c181),
		Deleted:     Rgb(0xd07277),
		Error:       Rgb(0xd07277),
		Hidden:      Rgb(0x555a63),
		Hint:        Rgb(0x788ca6),
		Ignored:     Rgb(0x555a63),
		Info:        Rgb(0x74ade8),
		Modified:    Rgb(0xdec184),
		Predictive:  Rgb(0x5a6a87),
		Renamed:     Rgb(0x74ade8),
		Success:     Rgb(0xa1c181),
		Unreachable: Rgb(0x838994),
		Warning:     Rgb(0xdec184),
	}
}
