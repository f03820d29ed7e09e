package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// padRight pads s with spaces to the given printable width.
// Escape sequences do not count towards the width.
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// center centers s within width and pads it to exactly that width
func center(s string, width int) string {
	return padRight(lipgloss.PlaceHorizontal(width, lipgloss.Center, s), width)
}

// blankLines returns n lines of width spaces
func blankLines(n, width int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	return lines
}
