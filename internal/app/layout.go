package app

import (
	"strconv"
	"strings"
	"time"

	"github.com/klabast/wb-services/hcal/internal/holidays"
	"github.com/rs/zerolog"
)

// Layout constants
const (
	// MonthsPerRow is the maximum number of month blocks side by side
	MonthsPerRow = 3
	// Separator joins month blocks of one row
	Separator = "  "
)

// Window selects the months around a center month
type Window struct {
	// ThreeMonths shows at least one month on each side of the center
	ThreeMonths bool
	// Before and After are the number of months preceding and following
	Before int
	After  int
	// Year shows January through December of the center year, extended by
	// Before and After; the center month is ignored
	Year bool
}

// Resolve returns the months of the window in chronological order
func (w Window) Resolve(year int, month time.Month) []YearMonth {
	before, after := max(w.Before, 0), max(w.After, 0)

	var start, end YearMonth
	if w.Year {
		start = YearMonth{Year: year, Month: time.January}.AddMonths(-before)
		end = YearMonth{Year: year, Month: time.December}.AddMonths(after)
	} else {
		if w.ThreeMonths {
			before, after = max(1, before), max(1, after)
		}
		center := YearMonth{Year: year, Month: month}
		start = center.AddMonths(-before)
		end = center.AddMonths(after)
	}

	var months []YearMonth
	for ym := start; ; ym = ym.AddMonths(1) {
		months = append(months, ym)
		if ym == end {
			break
		}
	}
	return months
}

// Options configures a Composer
type Options struct {
	// Country selects the holiday rules; empty or unknown means no holidays
	Country string
	// Today is highlighted when it falls in a rendered month; zero disables it
	Today  time.Time
	Render RenderOptions
}

// HolidayFunc computes the holiday set of a country and year
type HolidayFunc func(country string, year int) holidays.Set

type holidayKey struct {
	country string
	year    int
}

// Composer renders windows of months. It computes each year's holiday set at
// most once and is not safe for concurrent use.
type Composer struct {
	opts     Options
	log      zerolog.Logger
	compute  HolidayFunc
	holidays map[holidayKey]holidays.Set
}

// NewComposer returns a composer backed by the built-in holiday rules
func NewComposer(opts Options, log zerolog.Logger) *Composer {
	return &Composer{
		opts:     opts,
		log:      log,
		compute:  holidays.For,
		holidays: make(map[holidayKey]holidays.Set),
	}
}

// WithHolidayFunc replaces the holiday source
func (c *Composer) WithHolidayFunc(f HolidayFunc) *Composer {
	c.compute = f
	return c
}

// Holidays returns the cached holiday set of the configured country for year
func (c *Composer) Holidays(year int) holidays.Set {
	key := holidayKey{country: strings.ToLower(c.opts.Country), year: year}
	if set, ok := c.holidays[key]; ok {
		return set
	}

	set := c.compute(c.opts.Country, year)
	c.holidays[key] = set
	c.log.Debug().
		Str("country", c.opts.Country).
		Int("year", year).
		Int("holidays", len(set)).
		Msg("computed holiday set")
	return set
}

// Month renders a single month block
func (c *Composer) Month(ym YearMonth) []string {
	classify := NewClassifier(c.opts.Today, c.Holidays(ym.Year))
	grid := BuildGrid(ym.Year, ym.Month, c.opts.Render.FirstWeekday, classify)
	return RenderMonth(grid, c.opts.Render)
}

// Compose renders the window around year/month. Rows hold up to MonthsPerRow
// blocks and are separated by a blank line. In year mode every calendar year
// gets its own centered header.
func (c *Composer) Compose(year int, month time.Month, w Window) string {
	months := w.Resolve(year, month)

	var segments [][]YearMonth
	if w.Year {
		segments = splitByYear(months)
	} else {
		segments = [][]YearMonth{months}
	}

	var sections []string
	for _, seg := range segments {
		var lines []string
		if w.Year {
			lines = append(lines, center(strconv.Itoa(seg[0].Year), c.rowWidth(min(len(seg), MonthsPerRow))), "")
		}
		for i := 0; i < len(seg); i += MonthsPerRow {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, c.row(seg[i:min(i+MonthsPerRow, len(seg))])...)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n\n") + "\n"
}

// row renders month blocks side by side, padding shorter blocks with blank lines
func (c *Composer) row(months []YearMonth) []string {
	width := c.opts.Render.BlockWidth()

	blocks := make([][]string, len(months))
	height := 0
	for i, ym := range months {
		blocks[i] = c.Month(ym)
		height = max(height, len(blocks[i]))
	}
	for i := range blocks {
		blocks[i] = append(blocks[i], blankLines(height-len(blocks[i]), width)...)
	}

	lines := make([]string, height)
	parts := make([]string, len(blocks))
	for l := range lines {
		for i := range blocks {
			parts[i] = blocks[i][l]
		}
		lines[l] = strings.Join(parts, Separator)
	}
	return lines
}

// rowWidth is the printable width of a row of n blocks
func (c *Composer) rowWidth(n int) int {
	return n*c.opts.Render.BlockWidth() + (n-1)*len(Separator)
}

// splitByYear groups consecutive months by calendar year
func splitByYear(months []YearMonth) [][]YearMonth {
	var out [][]YearMonth
	for i, ym := range months {
		if i == 0 || ym.Year != months[i-1].Year {
			out = append(out, nil)
		}
		out[len(out)-1] = append(out[len(out)-1], ym)
	}
	return out
}
