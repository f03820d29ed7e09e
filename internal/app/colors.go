package app

import (
	"strings"
)

// ANSI escape sequences used by the renderer
const (
	ansiReset    = "\033[0m"
	ansiToday    = "\033[47;30m"
	ansiSunday   = "\033[31m"
	ansiSaturday = "\033[34m"
)

// DefaultHolidayColor is used when no (or an unknown) color name is configured
const DefaultHolidayColor = "red"

// colorCodes maps color names to their foreground escape sequence
var colorCodes = map[string]string{
	"red":     "\033[31m",
	"green":   "\033[32m",
	"yellow":  "\033[33m",
	"blue":    "\033[34m",
	"magenta": "\033[35m",
	"cyan":    "\033[36m",
	"white":   "\033[37m",
}

// ColorCode returns the escape sequence for a color name (case-insensitive)
func ColorCode(name string) (string, bool) {
	code, ok := colorCodes[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// Palette holds the escape sequence of every highlighted style
type Palette struct {
	Today    string
	Holiday  string
	Sunday   string
	Saturday string
}

// NewPalette returns the standard palette with the given holiday color.
// Unknown names fall back to DefaultHolidayColor.
func NewPalette(holidayColor string) Palette {
	code, ok := ColorCode(holidayColor)
	if !ok {
		code = colorCodes[DefaultHolidayColor]
	}
	return Palette{
		Today:    ansiToday,
		Holiday:  code,
		Sunday:   ansiSunday,
		Saturday: ansiSaturday,
	}
}

// Paint wraps s in the escape sequence of style. Plain cells and an empty
// palette leave s untouched.
func (p Palette) Paint(style Style, s string) string {
	var code string
	switch style {
	case StyleToday:
		code = p.Today
	case StyleHoliday:
		code = p.Holiday
	case StyleSunday:
		code = p.Sunday
	case StyleSaturday:
		code = p.Saturday
	}
	if code == "" {
		return s
	}
	return code + s + ansiReset
}
