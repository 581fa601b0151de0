package icsexport

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payplan/bnpl-csv/internal/logging"
	"payplan/bnpl-csv/internal/models"
)

func amt(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestWrite(t *testing.T) {
	items := []models.Item{
		{
			ID:            "email-1",
			Provider:      models.ProviderKlarna,
			InstallmentNo: 1,
			DueDate:       "2025-10-04",
			Amount:        amt(t, "45"),
			Currency:      models.DefaultCurrency,
			Autopay:       true,
			LateFee:       amt(t, "7"),
		},
		{
			ID:       "email-2",
			Provider: models.ProviderAffirm,
			DueDate:  "2025-10-06",
			Amount:   amt(t, "58.5"),
			Currency: models.DefaultCurrency,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(items, &buf, &logging.MockLogger{}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Contains(t, out, "VERSION:2.0\r\n")
	assert.Contains(t, out, "PRODID:-//payplan//bnpl-csv//EN\r\n")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Equal(t, 2, strings.Count(out, "END:VEVENT"))

	assert.Contains(t, out, "UID:email-1@payplan\r\n")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20251004\r\n")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20251005\r\n")
	assert.Contains(t, out, "SUMMARY:Klarna payment 1: $45.00\r\n")
	assert.Contains(t, out, `DESCRIPTION:Amount: 45.00 USD\nInstallment: 1\nAutopay: on\nLate fee: 7.00`)

	// unknown installment number omits the position from the summary
	assert.Contains(t, out, "SUMMARY:Affirm payment: $58.50\r\n")
	assert.Contains(t, out, `Autopay: off`)
}

func TestWriteSkipsItemsWithoutDate(t *testing.T) {
	items := []models.Item{
		{ID: "email-1", Provider: models.ProviderKlarna, Amount: amt(t, "45")},
		{ID: "email-2", Provider: models.ProviderZip, DueDate: "not-a-date", Amount: amt(t, "12")},
		{ID: "email-3", Provider: models.ProviderAffirm, DueDate: "2025-10-06", Amount: amt(t, "58.50")},
	}

	logger := &logging.MockLogger{}
	var buf bytes.Buffer
	require.NoError(t, Write(items, &buf, logger))

	assert.Equal(t, 1, strings.Count(buf.String(), "BEGIN:VEVENT"))
	assert.True(t, logger.HasEntry("WARN", "Skipping item without due date in ICS export"))
	assert.True(t, logger.HasEntry("WARN", "Skipping item with invalid due date in ICS export"))
}

func TestWriteEmptyCalendar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(nil, &buf, &logging.MockLogger{}))
	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR\r\n")
	assert.NotContains(t, out, "VEVENT")
}

func TestEscapeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"a,b", `a\,b`},
		{"a;b", `a\;b`},
		{`a\b`, `a\\b`},
		{"x" + `\n` + "y", "x" + `\n` + "y"}, // literal \n survives
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, escapeText(tc.input), "input %q", tc.input)
	}
}

func TestWriteFoldsLongLines(t *testing.T) {
	items := []models.Item{
		{
			ID:            "email-1",
			Provider:      strings.Repeat("VeryLongProviderName", 5),
			InstallmentNo: 1,
			DueDate:       "2025-10-04",
			Amount:        amt(t, "45"),
			Currency:      models.DefaultCurrency,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(items, &buf, &logging.MockLogger{}))

	assert.Contains(t, buf.String(), "\r\n ", "long content lines must fold")
	for _, line := range strings.Split(buf.String(), "\r\n") {
		assert.LessOrEqual(t, len(line), 76, "folded lines stay within the octet limit")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar", "payments.ics")
	items := []models.Item{
		{ID: "email-1", Provider: models.ProviderKlarna, DueDate: "2025-10-04", Amount: amt(t, "45"), Currency: models.DefaultCurrency},
	}

	require.NoError(t, WriteFile(items, path, &logging.MockLogger{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VEVENT")
}
