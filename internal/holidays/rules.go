package holidays

import (
	"math"
	"time"
)

// openEnded marks a rule without a discontinuation year
const openEnded = 0

// DateFunc resolves an occasion to a date for the given year.
// ok is false when the occasion does not exist that year.
type DateFunc func(year int) (month time.Month, day int, ok bool)

// Occasion is a named holiday together with the rule placing it in a year.
// Several occasions may share a name when the law moved the holiday.
type Occasion struct {
	Name string
	Date DateFunc
}

// Bracket maps an inclusive year range to a fixed date
type Bracket struct {
	From  int
	Until int
	Month time.Month
	Day   int
}

// EquinoxBracket holds the approximation constant for a year range
type EquinoxBracket struct {
	From     int
	Until    int
	Constant float64
}

// OneOff is a holiday decreed for a single date
type OneOff struct {
	Year  int
	Month time.Month
	Day   int
	Name  string
}

// inRange reports whether year lies in [from, until]; until == openEnded has no upper bound
func inRange(year, from, until int) bool {
	if year < from {
		return false
	}
	return until == openEnded || year <= until
}

// Fixed places an occasion on a constant date from year from until year until
func Fixed(month time.Month, day, from, until int) DateFunc {
	return func(year int) (time.Month, int, bool) {
		if !inRange(year, from, until) {
			return 0, 0, false
		}
		return month, day, true
	}
}

// NthMonday places an occasion on the n-th Monday of month (Happy Monday System)
func NthMonday(month time.Month, n, from, until int) DateFunc {
	return func(year int) (time.Month, int, bool) {
		if !inRange(year, from, until) {
			return 0, 0, false
		}
		return month, NthWeekday(year, month, time.Monday, n), true
	}
}

// Eras picks the date of the first bracket containing the year
func Eras(brackets ...Bracket) DateFunc {
	return func(year int) (time.Month, int, bool) {
		for _, b := range brackets {
			if inRange(year, b.From, b.Until) {
				return b.Month, b.Day, true
			}
		}
		return 0, 0, false
	}
}

// Equinox approximates the equinox day in month for the bracketed years.
// Outside all brackets the occasion is absent.
func Equinox(month time.Month, brackets ...EquinoxBracket) DateFunc {
	return func(year int) (time.Month, int, bool) {
		for _, b := range brackets {
			if inRange(year, b.From, b.Until) {
				return month, equinoxDay(year, b.Constant), true
			}
		}
		return 0, 0, false
	}
}

// equinoxDay evaluates floor(c + 0.242194*(y-1980)) - floor((y-1980)/4)
func equinoxDay(year int, constant float64) int {
	delta := float64(year - 1980)
	return int(math.Floor(constant+0.242194*delta)) - int(math.Floor(delta/4))
}

// Ruleset is the complete holiday law of one country
type Ruleset struct {
	Occasions []Occasion
	// Exceptions override every rule of the named occasion for one year
	Exceptions map[string]map[int]MonthDay
	OneOffs    []OneOff
	// CitizensFrom is the first year the sandwich rule applies
	CitizensFrom int
}

// Raw evaluates every rule for the year and returns the unshifted holidays in
// chronological order. Dates that are not valid for the year are dropped.
func (rs *Ruleset) Raw(year int) []Holiday {
	seen := make(map[time.Time]bool)
	var out []Holiday

	add := func(month time.Month, day int, name string) {
		date, ok := dateOf(year, month, day)
		if !ok || seen[date] {
			return
		}
		seen[date] = true
		out = append(out, Holiday{Date: date, Name: name, Kind: KindStatutory})
	}

	for _, o := range rs.Occasions {
		// Exception table wins over the general rule for that exact year
		if md, ok := rs.Exceptions[o.Name][year]; ok {
			add(md.Month, md.Day, o.Name)
			continue
		}
		if month, day, ok := o.Date(year); ok {
			add(month, day, o.Name)
		}
	}

	for _, h := range rs.OneOffs {
		if h.Year == year {
			add(h.Month, h.Day, h.Name)
		}
	}

	SortHolidays(out)
	return out
}

// dateOf builds a UTC midnight date, rejecting values time.Date would normalize
func dateOf(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
