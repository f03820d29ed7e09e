package holidays

import (
	"time"
)

// Adjust applies the Citizens' Holiday rule and then the Substitute Holiday
// rule to the raw holidays of a year. The result holds the raw holidays plus
// every inserted day, in chronological order.
func (rs *Ruleset) Adjust(year int, raw []Holiday) []Holiday {
	original := make([]Holiday, len(raw))
	copy(original, raw)
	SortHolidays(original)

	taken := make(map[time.Time]bool, len(original))
	for _, h := range original {
		taken[h.Date] = true
	}

	out := make([]Holiday, len(original), len(original)+8)
	copy(out, original)

	if year >= rs.CitizensFrom {
		for _, h := range citizensHolidays(original, taken) {
			taken[h.Date] = true
			out = append(out, h)
		}
	}

	// Only raw holidays trigger substitutes; inserted days still count as taken
	for _, h := range original {
		if h.Date.Weekday() != time.Sunday {
			continue
		}
		candidate := h.Date.AddDate(0, 0, 1)
		for taken[candidate] {
			candidate = candidate.AddDate(0, 0, 1)
		}
		taken[candidate] = true
		out = append(out, Holiday{Date: candidate, Name: SubstituteHolidayName, Kind: KindSubstitute})
	}

	SortHolidays(out)
	return out
}

// citizensHolidays finds weekdays squeezed between two holidays two days apart.
// Only the sorted original dates are scanned, so inserted days never chain.
func citizensHolidays(sorted []Holiday, taken map[time.Time]bool) []Holiday {
	var found []Holiday
	for i := 0; i+1 < len(sorted); i++ {
		first, next := sorted[i].Date, sorted[i+1].Date
		if next.Sub(first) != 48*time.Hour {
			continue
		}
		between := first.AddDate(0, 0, 1)
		if between.Weekday() == time.Sunday || taken[between] {
			continue
		}
		found = append(found, Holiday{Date: between, Name: CitizensHolidayName, Kind: KindCitizens})
	}
	return found
}
