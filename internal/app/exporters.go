package app

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/klabast/wb-services/hcal/internal/holidays"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatICS  = "ics"

	// ICS constants
	ICSProductID = "-//hcal//Holidays//EN"
	ICSDomain    = "hcal.local"
)

// Formats lists the supported export formats
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatCSV, FormatICS}

// HolidayRecord is the exported form of a single holiday
type HolidayRecord struct {
	Date    string `json:"date" yaml:"date"`
	Weekday string `json:"weekday" yaml:"weekday"`
	Name    string `json:"name" yaml:"name"`
	Kind    string `json:"kind" yaml:"kind"`
}

// HolidayExport is the document written by the JSON and YAML exporters
type HolidayExport struct {
	Country  string          `json:"country" yaml:"country"`
	Year     int             `json:"year" yaml:"year"`
	Holidays []HolidayRecord `json:"holidays" yaml:"holidays"`
}

// Export writes the holidays in the given format. stamp is only used by ICS.
func Export(w io.Writer, format, country string, year int, hs []holidays.Holiday, stamp time.Time) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return GenerateText(w, hs)
	case FormatJSON:
		return GenerateJSON(w, country, year, hs)
	case FormatYAML, "yml":
		return GenerateYAML(w, country, year, hs)
	case FormatCSV:
		return GenerateCSV(w, hs)
	case FormatICS, "ical":
		return GenerateICS(w, country, year, hs, stamp)
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Records converts holidays to their exported form
func Records(hs []holidays.Holiday) []HolidayRecord {
	records := make([]HolidayRecord, 0, len(hs))
	for _, h := range hs {
		records = append(records, HolidayRecord{
			Date:    h.Date.Format("2006-01-02"),
			Weekday: h.Date.Weekday().String(),
			Name:    h.Name,
			Kind:    h.Kind.String(),
		})
	}
	return records
}

// GenerateText writes one aligned line per holiday
func GenerateText(w io.Writer, hs []holidays.Holiday) error {
	for _, h := range hs {
		if _, err := fmt.Fprintf(w, "%s %s  %s\n", h.Date.Format("2006-01-02"), h.Date.Weekday().String()[:3], h.Name); err != nil {
			return err
		}
	}
	return nil
}

// GenerateJSON writes the holidays as an indented JSON document
func GenerateJSON(w io.Writer, country string, year int, hs []holidays.Holiday) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(HolidayExport{Country: country, Year: year, Holidays: Records(hs)}); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// GenerateYAML writes the holidays as a YAML document
func GenerateYAML(w io.Writer, country string, year int, hs []holidays.Holiday) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(HolidayExport{Country: country, Year: year, Holidays: Records(hs)}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// GenerateCSV writes a header row and one row per holiday
func GenerateCSV(w io.Writer, hs []holidays.Holiday) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "weekday", "name", "kind"}); err != nil {
		return err
	}
	for _, r := range Records(hs) {
		if err := cw.Write([]string{r.Date, r.Weekday, r.Name, r.Kind}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// GenerateICS writes an iCalendar file with one all-day event per holiday.
// stamp becomes the DTSTAMP of every event.
func GenerateICS(w io.Writer, country string, year int, hs []holidays.Holiday, stamp time.Time) error {
	cal := ics.NewCalendar()
	cal.SetProductId(ICSProductID)
	cal.SetXWRCalName(fmt.Sprintf("Holidays %s %d", country, year))
	cal.SetCalscale("GREGORIAN")

	for _, h := range hs {
		// Stable UID so re-imports update instead of duplicating
		event := cal.AddEvent(fmt.Sprintf("%s-%s@%s", h.Date.Format("20060102"), slug(h.Name), ICSDomain))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(h.Date)
		event.SetAllDayEndAt(h.Date.AddDate(0, 0, 1))
		event.SetSummary(h.Name)
		event.AddCategory(strings.ToUpper(h.Kind.String()))
		event.SetProperty(ics.ComponentPropertyTransp, "TRANSPARENT")
	}

	if err := cal.SerializeTo(w, ics.WithNewLineWindows); err != nil {
		return fmt.Errorf("write ics: %w", err)
	}
	return nil
}

// slug lower-cases s and replaces everything but letters and digits with '-'
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
