package app

import (
	"time"

	"github.com/klabast/wb-services/hcal/internal/holidays"
)

// Classifier picks the style of a single in-month day
type Classifier func(date time.Time) Style

// NewClassifier returns the standard style policy: today, then holidays,
// then Sundays, then Saturdays. A zero today disables the today highlight;
// a nil set disables holidays.
func NewClassifier(today time.Time, set holidays.Set) Classifier {
	ty, tm, td := today.Date()
	return func(date time.Time) Style {
		y, m, d := date.Date()
		switch {
		case !today.IsZero() && y == ty && m == tm && d == td:
			return StyleToday
		case set.Contains(m, d):
			return StyleHoliday
		case date.Weekday() == time.Sunday:
			return StyleSunday
		case date.Weekday() == time.Saturday:
			return StyleSaturday
		default:
			return StylePlain
		}
	}
}

// BuildGrid lays out a month in weeks starting at firstWeekday. Leading and
// trailing cells of the first and last week are blank (Day 0).
func BuildGrid(year int, month time.Month, firstWeekday time.Weekday, classify Classifier) MonthGrid {
	grid := MonthGrid{Year: year, Month: month}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := daysIn(year, month)
	lead := (int(first.Weekday()) - int(firstWeekday) + 7) % 7

	week := make([]DayCell, 0, 7)
	for i := 0; i < lead; i++ {
		week = append(week, DayCell{Weekday: weekdayAt(firstWeekday, i)})
	}

	for d := 1; d <= days; d++ {
		date := first.AddDate(0, 0, d-1)
		cell := DayCell{Day: d, Weekday: date.Weekday()}
		if classify != nil {
			cell.Style = classify(date)
		}
		week = append(week, cell)
		if len(week) == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = make([]DayCell, 0, 7)
		}
	}

	if len(week) > 0 {
		for i := len(week); i < 7; i++ {
			week = append(week, DayCell{Weekday: weekdayAt(firstWeekday, i)})
		}
		grid.Weeks = append(grid.Weeks, week)
	}

	return grid
}

// weekdayAt returns the weekday of column i when weeks start at first
func weekdayAt(first time.Weekday, i int) time.Weekday {
	return time.Weekday((int(first) + i) % 7)
}

// daysIn returns the number of days in the month
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
