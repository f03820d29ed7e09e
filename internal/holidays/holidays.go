// Package holidays computes national holidays year by year from the rules
// in force at the time, including the Citizens' Holiday and Substitute
// Holiday adjustments.
package holidays

import (
	"sort"
	"strings"
	"time"
)

// Kind tells how a day became a holiday
type Kind int

const (
	// KindStatutory is a holiday named by law for that date
	KindStatutory Kind = iota
	// KindCitizens is a day between two holidays (sandwich rule)
	KindCitizens
	// KindSubstitute is observed in place of a holiday falling on Sunday
	KindSubstitute
)

func (k Kind) String() string {
	switch k {
	case KindCitizens:
		return "citizens"
	case KindSubstitute:
		return "substitute"
	default:
		return "statutory"
	}
}

// MonthDay is a holiday date without its year
type MonthDay struct {
	Month time.Month
	Day   int
}

// Holiday is a single observed holiday
type Holiday struct {
	Date time.Time
	Name string
	Kind Kind
}

// MonthDay drops the year from the holiday date
func (h Holiday) MonthDay() MonthDay {
	return MonthDay{Month: h.Date.Month(), Day: h.Date.Day()}
}

// Set is the holiday set of one country and year. Treat it as read-only.
type Set map[MonthDay]struct{}

// Contains reports whether month/day is a holiday
func (s Set) Contains(month time.Month, day int) bool {
	_, ok := s[MonthDay{Month: month, Day: day}]
	return ok
}

// Sorted returns the dates in chronological order
func (s Set) Sorted() []MonthDay {
	out := make([]MonthDay, 0, len(s))
	for md := range s {
		out = append(out, md)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Day < out[j].Day
	})
	return out
}

// NewSet projects holidays onto their month/day pairs
func NewSet(hs []Holiday) Set {
	s := make(Set, len(hs))
	for _, h := range hs {
		s[h.MonthDay()] = struct{}{}
	}
	return s
}

// SortHolidays sorts holidays by date in ascending order
func SortHolidays(hs []Holiday) {
	sort.SliceStable(hs, func(i, j int) bool {
		return hs[i].Date.Before(hs[j].Date)
	})
}

// countries maps lower-case country names to their rules
var countries = map[string]*Ruleset{
	"japan": Japan,
}

// Lookup returns the rules for a country name (case-insensitive)
func Lookup(country string) (*Ruleset, bool) {
	rs, ok := countries[strings.ToLower(strings.TrimSpace(country))]
	return rs, ok
}

// Observed returns the named holidays of a country for the given year.
// Unknown countries have no holidays.
func Observed(country string, year int) []Holiday {
	rs, ok := Lookup(country)
	if !ok {
		return nil
	}
	return rs.Adjust(year, rs.Raw(year))
}

// For returns the final holiday set of a country for the given year
func For(country string, year int) Set {
	return NewSet(Observed(country, year))
}

// RawSet returns the unshifted holiday set of the rules for the given year
func (rs *Ruleset) RawSet(year int) Set {
	return NewSet(rs.Raw(year))
}
