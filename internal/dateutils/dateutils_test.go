package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name       string
		dateStr    string
		expectedOk bool
		expectedY  int
		expectedM  time.Month
		expectedD  int
	}{
		{"ISO format", "2025-10-04", true, 2025, time.October, 4},
		{"US slash format", "10/6/2025", true, 2025, time.October, 6},
		{"US slash zero padded", "10/06/2025", true, 2025, time.October, 6},
		{"long month name", "October 6, 2025", true, 2025, time.October, 6},
		{"abbreviated month name", "Oct 6, 2025", true, 2025, time.October, 6},
		{"month name without comma", "October 6 2025", true, 2025, time.October, 6},
		{"ordinal suffix stripped", "October 1st, 2025", true, 2025, time.October, 1},
		{"ordinal on numeric day", "June 22nd, 2025", true, 2025, time.June, 22},
		{"extra whitespace", "  October   6,  2025 ", true, 2025, time.October, 6},
		{"impossible date Feb 30", "2025-02-30", false, 0, 0, 0},
		{"impossible date Apr 31", "4/31/2025", false, 0, 0, 0},
		{"empty string", "", false, 0, 0, 0},
		{"not a date", "pay soon", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseDueDate(tc.dateStr, time.UTC)
			if tc.expectedOk {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedY, parsed.Year())
				assert.Equal(t, tc.expectedM, parsed.Month())
				assert.Equal(t, tc.expectedD, parsed.Day())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseDueDateUSInterpretation(t *testing.T) {
	// Ambiguous numeric dates are always month/day/year. Documented
	// limitation of the US-only pipeline.
	parsed, err := ParseDueDate("01/02/2025", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 2, parsed.Day())
}

func TestParseDueDateLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	parsed, err := ParseDueDate("2025-10-04", loc)
	require.NoError(t, err)
	assert.Equal(t, loc, parsed.Location())

	// nil location falls back to UTC
	parsed, err = ParseDueDate("2025-10-04", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestParseISODate(t *testing.T) {
	parsed, err := ParseISODate("2025-10-06", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-06", ToISODate(parsed))

	_, err = ParseISODate("2025-02-30", time.UTC)
	assert.Error(t, err)

	_, err = ParseISODate("10/06/2025", time.UTC)
	assert.Error(t, err, "only ISO is accepted for already-normalized dates")
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected bool
	}{
		{"Saturday", "2025-10-04", true},
		{"Sunday", "2025-10-05", true},
		{"Monday", "2025-10-06", false},
		{"Friday", "2025-10-03", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseISODate(tc.date, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, IsWeekend(parsed))
		})
	}
}

func TestCleanDateString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"October 1st, 2025", "October 1, 2025"},
		{"June 22nd 2025", "June 22 2025"},
		{"March 3rd, 2025", "March 3, 2025"},
		{"April 4th, 2025", "April 4, 2025"},
		{"  2025-10-04  ", "2025-10-04"},
		{"first of the month", "first of the month"}, // "st" only strips after digits
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, CleanDateString(tc.input))
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = LoadLocation("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())

	_, err = LoadLocation("Not/AZone")
	assert.Error(t, err)
}
