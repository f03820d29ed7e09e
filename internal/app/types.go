package app

import (
	"time"
)

// Style is the resolved highlight of a single day cell
type Style int

const (
	StylePlain Style = iota
	StyleToday
	StyleHoliday
	StyleSunday
	StyleSaturday
)

// YearMonth identifies one month of one year
type YearMonth struct {
	Year  int
	Month time.Month
}

// AddMonths returns the month delta months away (delta may be negative)
func (ym YearMonth) AddMonths(delta int) YearMonth {
	t := time.Date(ym.Year, ym.Month+time.Month(delta), 1, 12, 0, 0, 0, time.UTC)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// DayCell is one position of a month grid. Day 0 marks a blank cell.
type DayCell struct {
	Day     int
	Weekday time.Weekday
	Style   Style
}

// MonthGrid holds the week rows of a month, 7 cells each
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks [][]DayCell
}
