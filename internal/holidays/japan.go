package holidays

import (
	"time"
)

// Occasion names shared between rules and the exception table
const (
	NewYearsDay            = "New Year's Day"
	ComingOfAgeDay         = "Coming of Age Day"
	NationalFoundationDay  = "National Foundation Day"
	VernalEquinoxDay       = "Vernal Equinox Day"
	ShowaDay               = "Showa Day"
	ConstitutionDay        = "Constitution Memorial Day"
	GreeneryDay            = "Greenery Day"
	ChildrensDay           = "Children's Day"
	MarineDay              = "Marine Day"
	MountainDay            = "Mountain Day"
	RespectForTheAgedDay   = "Respect for the Aged Day"
	AutumnalEquinoxDay     = "Autumnal Equinox Day"
	SportsDay              = "Sports Day"
	CultureDay             = "Culture Day"
	LaborThanksgivingDay   = "Labor Thanksgiving Day"
	EmperorsBirthday       = "Emperor's Birthday"
	CitizensHolidayName    = "Citizens' Holiday"
	SubstituteHolidayName  = "Substitute Holiday"
	japanCitizensHolidayAt = 1986
)

// Japan is the holiday law of Japan from 1955 on
var Japan = &Ruleset{
	Occasions: []Occasion{
		{NewYearsDay, Fixed(time.January, 1, 1955, openEnded)},
		{ComingOfAgeDay, Fixed(time.January, 15, 1955, 1999)},
		{ComingOfAgeDay, NthMonday(time.January, 2, 2000, openEnded)},
		{NationalFoundationDay, Fixed(time.February, 11, 1967, openEnded)},
		{VernalEquinoxDay, Equinox(time.March,
			EquinoxBracket{From: 1955, Until: 1979, Constant: 20.8357},
			EquinoxBracket{From: 1980, Until: 2099, Constant: 20.8431},
		)},
		{ShowaDay, Fixed(time.April, 29, 2007, openEnded)},
		{ConstitutionDay, Fixed(time.May, 3, 1955, openEnded)},
		{GreeneryDay, Eras(
			Bracket{From: 1989, Until: 2006, Month: time.April, Day: 29},
			Bracket{From: 2007, Until: openEnded, Month: time.May, Day: 4},
		)},
		{ChildrensDay, Fixed(time.May, 5, 1955, openEnded)},
		{MarineDay, Fixed(time.July, 20, 1996, 2002)},
		{MarineDay, NthMonday(time.July, 3, 2003, openEnded)},
		{MountainDay, Fixed(time.August, 11, 2016, openEnded)},
		{RespectForTheAgedDay, Fixed(time.September, 15, 1967, 2002)},
		{RespectForTheAgedDay, NthMonday(time.September, 3, 2003, openEnded)},
		{AutumnalEquinoxDay, Equinox(time.September,
			EquinoxBracket{From: 1955, Until: 1979, Constant: 23.2588},
			EquinoxBracket{From: 1980, Until: 2099, Constant: 23.2488},
		)},
		{SportsDay, Fixed(time.October, 10, 1966, 1999)},
		{SportsDay, NthMonday(time.October, 2, 2000, openEnded)},
		{CultureDay, Fixed(time.November, 3, 1955, openEnded)},
		{LaborThanksgivingDay, Fixed(time.November, 23, 1955, openEnded)},
		{EmperorsBirthday, Eras(
			Bracket{From: 1955, Until: 1988, Month: time.April, Day: 29},
			Bracket{From: 1989, Until: 2018, Month: time.December, Day: 23},
			Bracket{From: 2020, Until: openEnded, Month: time.February, Day: 23},
		)},
	},
	// Tokyo Olympics reschedulings
	Exceptions: map[string]map[int]MonthDay{
		MarineDay: {
			2020: {time.July, 23},
			2021: {time.July, 22},
		},
		SportsDay: {
			2020: {time.July, 24},
			2021: {time.July, 23},
		},
		MountainDay: {
			2020: {time.August, 10},
			2021: {time.August, 8},
		},
	},
	OneOffs: []OneOff{
		{1959, time.April, 10, "Wedding of Crown Prince Akihito"},
		{1989, time.February, 24, "Funeral of Emperor Showa"},
		{1990, time.November, 12, "Enthronement Ceremony"},
		{1993, time.June, 9, "Wedding of Crown Prince Naruhito"},
		{2019, time.May, 1, "Enthronement of Emperor Naruhito"},
		{2019, time.October, 22, "Enthronement Ceremony"},
	},
	CitizensFrom: japanCitizensHolidayAt,
}
