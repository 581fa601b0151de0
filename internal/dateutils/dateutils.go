// Package dateutils provides the date parsing and calendar helpers shared
// by the field extractors and the risk detector. All parsing is US-centric:
// ambiguous numeric dates are always read as month/day/year. This is a
// documented limitation of the pipeline, not a bug.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layout constants used throughout the application.
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutUS        = "1/2/2006"
	DateLayoutLongMonth = "January 2, 2006"
	DateLayoutAbbrMonth = "Jan 2, 2006"
)

// CommonFormats lists the accepted due-date formats in priority order.
// ISO first (unambiguous), then US slash, then month-name forms.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutUS,
	DateLayoutLongMonth,
	DateLayoutAbbrMonth,
	"January 2 2006",
	"Jan 2 2006",
}

var (
	ordinalPattern = regexp.MustCompile(`(\d{1,2})(st|nd|rd|th)\b`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// CleanDateString trims, collapses whitespace and strips ordinal suffixes
// ("October 1st" -> "October 1") so the layouts above can parse the result.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	dateStr = spacePattern.ReplaceAllString(dateStr, " ")
	dateStr = ordinalPattern.ReplaceAllString(dateStr, "$1")
	return dateStr
}

// ParseDueDate parses a due-date string in the given IANA location, trying
// each common format in order. time.ParseInLocation rejects calendrically
// impossible dates (Feb 30 fails instead of rolling over to March), which
// is exactly the validation the pipeline requires.
func ParseDueDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range CommonFormats {
		if t, err := time.ParseInLocation(format, cleaned, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ParseISODate parses a YYYY-MM-DD string in the given location. Used on
// already-normalized Item.DueDate values (risk detection, CSV import).
func ParseISODate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayoutISO, strings.TrimSpace(dateStr), loc)
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// IsWeekend reports whether a date falls on a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	day := date.Weekday()
	return day == time.Saturday || day == time.Sunday
}

// LoadLocation resolves an IANA timezone name, defaulting to UTC for the
// empty string.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}
