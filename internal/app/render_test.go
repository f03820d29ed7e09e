package app

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/klabast/wb-services/hcal/internal/holidays"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildGridShape(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		first     time.Weekday
		wantWeeks int
		wantLead  int
	}{
		{"Jan 2025 Sunday first", 2025, time.January, time.Sunday, 5, 3},
		{"Jan 2025 Monday first", 2025, time.January, time.Monday, 5, 2},
		{"Feb 2015 fits four weeks", 2015, time.February, time.Sunday, 4, 0},
		{"Mar 2025 needs six weeks", 2025, time.March, time.Sunday, 6, 6},
		{"Feb 2024 leap year", 2024, time.February, time.Monday, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildGrid(tt.year, tt.month, tt.first, nil)
			require.Len(t, grid.Weeks, tt.wantWeeks)

			days := 0
			for _, week := range grid.Weeks {
				require.Len(t, week, 7)
				assert.Equal(t, tt.first, week[0].Weekday)
				for _, cell := range week {
					if cell.Day != 0 {
						days++
					}
				}
			}
			assert.Equal(t, daysIn(tt.year, tt.month), days)

			lead := 0
			for _, cell := range grid.Weeks[0] {
				if cell.Day != 0 {
					break
				}
				lead++
			}
			assert.Equal(t, tt.wantLead, lead)
		})
	}
}

func TestBuildGridWeekdays(t *testing.T) {
	grid := BuildGrid(2025, time.December, time.Sunday, nil)
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Day == 0 {
				continue
			}
			assert.Equal(t, date(2025, time.December, cell.Day).Weekday(), cell.Weekday)
		}
	}
}

func TestClassifierPrecedence(t *testing.T) {
	set := holidays.For("Japan", 2024)

	tests := []struct {
		name  string
		today time.Time
		date  time.Time
		want  Style
	}{
		{"today wins over holiday", date(2024, time.January, 1), date(2024, time.January, 1), StyleToday},
		{"today wins over Sunday", date(2024, time.January, 7), date(2024, time.January, 7), StyleToday},
		{"holiday on Sunday", time.Time{}, date(2024, time.February, 11), StyleHoliday},
		{"holiday on Monday", time.Time{}, date(2024, time.January, 1), StyleHoliday},
		{"plain Sunday", time.Time{}, date(2024, time.January, 7), StyleSunday},
		{"plain Saturday", time.Time{}, date(2024, time.January, 6), StyleSaturday},
		{"weekday", time.Time{}, date(2024, time.January, 10), StylePlain},
		{"today in another year is not today", date(2023, time.January, 10), date(2024, time.January, 10), StylePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewClassifier(tt.today, set)(tt.date))
		})
	}
}

func renderText(year int, month time.Month, today time.Time, set holidays.Set, opts RenderOptions) string {
	grid := BuildGrid(year, month, opts.FirstWeekday, NewClassifier(today, set))
	return strings.Join(RenderMonth(grid, opts), "\n")
}

func TestRenderHolidayColorBeatsSunday(t *testing.T) {
	opts := RenderOptions{Palette: NewPalette("green")}
	out := renderText(2024, time.February, time.Time{}, holidays.For("Japan", 2024), opts)

	// 2024-02-11 is a Sunday and National Foundation Day
	assert.Contains(t, out, "\033[32m11\033[0m")
	assert.NotContains(t, out, "\033[31m11\033[0m")
	// Plain Sundays keep the weekend color
	assert.Contains(t, out, "\033[31m 4\033[0m")
}

func TestRenderDefaultHolidayColor(t *testing.T) {
	opts := RenderOptions{Palette: NewPalette("")}
	out := renderText(2024, time.January, time.Time{}, holidays.For("Japan", 2024), opts)

	// 2024-01-01 is a Monday, red only because it is a holiday
	assert.Contains(t, out, "\033[31m 1\033[0m")
	assert.NotContains(t, out, "\033[32m 1\033[0m")
}

func TestRenderWeekendColors(t *testing.T) {
	out := renderText(2025, time.December, time.Time{}, nil, RenderOptions{Palette: NewPalette("red")})

	assert.Contains(t, out, "\033[34m 6\033[0m")
	assert.Contains(t, out, "\033[31m 7\033[0m")
	assert.NotContains(t, out, ansiToday)
}

func TestRenderToday(t *testing.T) {
	today := date(2025, time.December, 10)
	out := renderText(2025, time.December, today, nil, RenderOptions{Palette: NewPalette("red")})
	assert.Contains(t, out, "\033[47;30m10\033[0m")

	out = renderText(2026, time.January, today, nil, RenderOptions{Palette: NewPalette("red")})
	assert.NotContains(t, out, ansiToday)
}

func TestRenderWithoutPalette(t *testing.T) {
	out := renderText(2024, time.February, date(2024, time.February, 1), holidays.For("Japan", 2024), RenderOptions{})
	assert.NotContains(t, out, "\033[")
}

func TestRenderMonthLayout(t *testing.T) {
	lines := RenderMonth(BuildGrid(2025, time.January, time.Sunday, nil), RenderOptions{})
	require.Len(t, lines, 7)

	assert.Equal(t, "January 2025", strings.TrimSpace(lines[0]))
	assert.Equal(t, "Su Mo Tu We Th Fr Sa", lines[1])
	assert.Equal(t, "          1  2  3  4", lines[2])
	assert.Equal(t, "26 27 28 29 30 31   ", lines[6])
	for _, line := range lines {
		assert.Len(t, line, 20)
	}
}

func TestRenderWeekHeaderMondayFirst(t *testing.T) {
	lines := RenderMonth(BuildGrid(2025, time.January, time.Monday, nil), RenderOptions{FirstWeekday: time.Monday})
	assert.Equal(t, "Mo Tu We Th Fr Sa Su", lines[1])
	assert.Equal(t, "       1  2  3  4  5", lines[2])
}

func TestRenderJulian(t *testing.T) {
	opts := RenderOptions{Julian: true, Palette: NewPalette("red")}

	tests := []struct {
		name  string
		year  int
		month time.Month
		want  []string
	}{
		{"January 2025", 2025, time.January, []string{"  1", " 31"}},
		{"December 2025", 2025, time.December, []string{"335", "365"}},
		{"February 2024", 2024, time.February, []string{" 32", " 60"}},
		{"March 2024", 2024, time.March, []string{" 61"}},
		{"December 2024", 2024, time.December, []string{"366"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := RenderMonth(BuildGrid(tt.year, tt.month, time.Sunday, NewClassifier(time.Time{}, nil)), opts)
			out := ansi.Strip(strings.Join(lines, "\n"))
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			assert.Equal(t, "Sun Mon Tue Wed Thu Fri Sat", ansi.Strip(lines[1]))
			for _, line := range lines {
				assert.Len(t, ansi.Strip(line), 27)
			}
		})
	}
}

func TestPaletteColorNames(t *testing.T) {
	code, ok := ColorCode("Blue")
	require.True(t, ok)
	assert.Equal(t, "\033[34m", code)

	_, ok = ColorCode("mauve")
	assert.False(t, ok)

	assert.Equal(t, colorCodes["red"], NewPalette("mauve").Holiday)
	assert.Equal(t, "x", Palette{}.Paint(StyleHoliday, "x"))
	assert.Equal(t, "x", NewPalette("red").Paint(StylePlain, "x"))
}
