package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tabWidth is the tab stop interval used for sample code.
const tabWidth = 4

// ExpandTabs converts tab characters in every line of s to spaces, using
// tab stops every width columns. Tabs would otherwise be measured as
// zero-width by the viewport.
func ExpandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") || width <= 0 {
		return s
	}

	var sb strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			next := (col/width + 1) * width
			sb.WriteString(strings.Repeat(" ", next-col))
			col = next
		case '\n':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col += lipgloss.Width(string(r))
		}
	}
	return sb.String()
}
