package extractors

import (
	"regexp"
	"time"

	"payplan/bnpl-csv/internal/dateutils"
	"payplan/bnpl-csv/internal/parsererror"
)

// DueDate tries each date pattern in order, parses the first match in the
// caller's location and returns the date normalized to YYYY-MM-DD. A match
// that is not a real calendar day (Feb 30) is rejected and the next
// pattern is tried, so a syntactically plausible but impossible date never
// produces an item field.
func DueDate(text, providerName string, patterns []*regexp.Regexp, loc *time.Location) (string, bool, error) {
	if len(patterns) == 0 {
		return "", false, &parsererror.PatternConfigError{Provider: providerName, Field: "due_date"}
	}

	for _, re := range patterns {
		matches := re.FindStringSubmatch(text)
		if len(matches) < 2 {
			continue
		}
		parsed, err := dateutils.ParseDueDate(matches[1], loc)
		if err != nil {
			continue
		}
		return dateutils.ToISODate(parsed), true, nil
	}
	return "", false, nil
}
