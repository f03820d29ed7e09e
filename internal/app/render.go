package app

import (
	"fmt"
	"strings"
	"time"
)

// Column widths of the two numbering modes
const (
	DayColumnWidth    = 2
	JulianColumnWidth = 3
)

// RenderOptions controls how a month block is drawn
type RenderOptions struct {
	// Julian numbers days by their ordinal in the year instead of the month
	Julian       bool
	FirstWeekday time.Weekday
	// Palette styles highlighted cells; the zero Palette renders plain text
	Palette Palette
}

// ColumnWidth is the width of a single day column
func (o RenderOptions) ColumnWidth() int {
	if o.Julian {
		return JulianColumnWidth
	}
	return DayColumnWidth
}

// BlockWidth is the printable width of every line of a month block
func (o RenderOptions) BlockWidth() int {
	return 7*o.ColumnWidth() + 6
}

// RenderMonth renders a month grid to lines of exactly BlockWidth printable
// characters: the centered title, the weekday header and one line per week.
func RenderMonth(grid MonthGrid, opts RenderOptions) []string {
	width := opts.BlockWidth()
	col := opts.ColumnWidth()

	title := fmt.Sprintf("%s %d", grid.Month, grid.Year)
	lines := []string{
		center(title, width),
		padRight(weekHeader(opts.FirstWeekday, col), width),
	}

	// Ordinal of the day before the 1st, for julian numbering
	yearDayOffset := time.Date(grid.Year, grid.Month, 1, 0, 0, 0, 0, time.UTC).YearDay() - 1

	for _, week := range grid.Weeks {
		cells := make([]string, len(week))
		for i, cell := range week {
			if cell.Day == 0 {
				cells[i] = strings.Repeat(" ", col)
				continue
			}
			n := cell.Day
			if opts.Julian {
				n += yearDayOffset
			}
			cells[i] = opts.Palette.Paint(cell.Style, fmt.Sprintf("%*d", col, n))
		}
		lines = append(lines, padRight(strings.Join(cells, " "), width))
	}

	return lines
}

// weekHeader returns the abbreviated weekday names starting at first
func weekHeader(first time.Weekday, col int) string {
	names := make([]string, 7)
	for i := range names {
		name := weekdayAt(first, i).String()
		names[i] = fmt.Sprintf("%*s", col, name[:col])
	}
	return strings.Join(names, " ")
}
