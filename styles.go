package theme

// PlayerColor identifies one participant of a collaborative session.
type PlayerColor struct {
	Cursor     Color
	Background Color
	Selection  Color
}

// PlayerColors is the palette handed out to participants in order.
// The first entry is the local user.
type PlayerColors []PlayerColor

// Local returns the color of the local user.
func (p PlayerColors) Local() PlayerColor {
	if len(p) == 0 {
		return PlayerColor{}
	}
	return p[0]
}

// ColorForParticipant returns the color of the n-th remote participant,
// wrapping around when there are more participants than colors.
func (p PlayerColors) ColorForParticipant(n uint32) PlayerColor {
	if len(p) == 0 {
		return PlayerColor{}
	}
	return p[int(n%uint32(len(p)))]
}

// DefaultPlayerColors returns the participant palette for an appearance.
func DefaultPlayerColors(a Appearance) PlayerColors {
	hues := []uint32{0x5c78e2, 0x984ea5, 0xad6e26, 0xa44aab, 0x3a92b8, 0xd36151, 0xa48819, 0x669f59}
	if a == AppearanceDark {
		hues = []uint32{0x74ade8, 0xbe5046, 0xbf956a, 0xb477cf, 0x6eb4bf, 0xd07277, 0xdec184, 0xa1c181}
	}

	players := make(PlayerColors, len(hues))
	for i, hex := range hues {
		c := Rgb(hex)
		players[i] = PlayerColor{
			Cursor:     c,
			Background: c,
			Selection:  c.Opacity(0.24),
		}
	}
	return players
}

// ThemeStyles aggregates every color category of a theme.
// Syntax is shared between every theme that resolved to it.
type ThemeStyles struct {
	System SystemColors
	Colors ThemeColors
	Status StatusColors
	Player PlayerColors
	Syntax *SyntaxTheme
}

// ThemeStylesRefinement overlays the refinable categories of ThemeStyles.
type ThemeStylesRefinement struct {
	Colors *ThemeColorsRefinement  `json:"colors,omitempty"`
	Status *StatusColorsRefinement `json:"status,omitempty"`
}

// DefaultThemeStyles returns fully populated styles for an appearance.
func DefaultThemeStyles(a Appearance) ThemeStyles {
	styles := ThemeStyles{
		System: DefaultSystemColors(),
		Colors: DefaultLightThemeColors(),
		Status: DefaultLightStatusColors(),
		Player: DefaultPlayerColors(a),
		Syntax: DefaultSyntaxTheme(a),
	}
	if a == AppearanceDark {
		styles.Colors = DefaultDarkThemeColors()
		styles.Status = DefaultDarkStatusColors()
	}
	return styles
}

// Refine applies the category refinements r carries. A nil r is a no-op.
func (s *ThemeStyles) Refine(r *ThemeStylesRefinement) {
	if r == nil {
		return
	}
	s.Colors.Refine(r.Colors)
	s.Status.Refine(r.Status)
}

// UnmarshalJSON decodes {"colors": {...}, "status": {...}}. Both members
// are optional and other members are ignored. null is an empty refinement.
func (r *ThemeStylesRefinement) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*r = ThemeStylesRefinement{}
		return nil
	}
	doc, err := decodeDocument(data)
	if err != nil {
		return err
	}

	var out ThemeStylesRefinement
	if raw, ok := doc["colors"]; ok && !isNull(raw) {
		if out.Colors, err = ParseThemeColorsRefinement(raw); err != nil {
			return err
		}
	}
	if raw, ok := doc["status"]; ok && !isNull(raw) {
		if out.Status, err = ParseStatusColorsRefinement(raw); err != nil {
			return err
		}
	}
	*r = out
	return nil
}
