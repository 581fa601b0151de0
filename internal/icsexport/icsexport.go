// Package icsexport renders extracted items as an iCalendar (RFC 5545)
// file of all-day events, one VEVENT per installment. The mapping is
// lossless and purely presentational; no item data is derived here.
package icsexport

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"payplan/bnpl-csv/internal/dateutils"
	"payplan/bnpl-csv/internal/logging"
	"payplan/bnpl-csv/internal/models"
)

const (
	prodID   = "-//payplan//bnpl-csv//EN"
	crlf     = "\r\n"
	foldAt   = 75 // octets per content line before folding
	dateComp = "20060102"
)

// Write renders items as a VCALENDAR stream. Items without a due date are
// skipped; they carry nothing to place on a calendar.
func Write(items []models.Item, w io.Writer, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	var sb strings.Builder
	writeLine(&sb, "BEGIN:VCALENDAR")
	writeLine(&sb, "VERSION:2.0")
	writeLine(&sb, "PRODID:"+prodID)
	writeLine(&sb, "CALSCALE:GREGORIAN")

	stamp := time.Now().UTC().Format("20060102T150405Z")
	count := 0
	for _, item := range items {
		if item.DueDate == "" {
			logger.Warn("Skipping item without due date in ICS export",
				logging.Field{Key: logging.FieldItemID, Value: item.ID})
			continue
		}
		due, err := dateutils.ParseISODate(item.DueDate, nil)
		if err != nil {
			logger.WithError(err).Warn("Skipping item with invalid due date in ICS export",
				logging.Field{Key: logging.FieldItemID, Value: item.ID})
			continue
		}

		writeLine(&sb, "BEGIN:VEVENT")
		writeLine(&sb, fmt.Sprintf("UID:%s@payplan", item.ID))
		writeLine(&sb, "DTSTAMP:"+stamp)
		writeLine(&sb, "DTSTART;VALUE=DATE:"+due.Format(dateComp))
		writeLine(&sb, "DTEND;VALUE=DATE:"+due.AddDate(0, 0, 1).Format(dateComp))
		writeLine(&sb, "SUMMARY:"+escapeText(summary(item)))
		writeLine(&sb, "DESCRIPTION:"+escapeText(description(item)))
		writeLine(&sb, "END:VEVENT")
		count++
	}

	writeLine(&sb, "END:VCALENDAR")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("error writing ICS data: %w", err)
	}
	logger.Info("Wrote calendar events",
		logging.Field{Key: logging.FieldCount, Value: count})
	return nil
}

// WriteFile writes the calendar to a file, creating the parent directory
// when needed.
func WriteFile(items []models.Item, path string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Writing ICS file",
		logging.Field{Key: logging.FieldOutputFile, Value: path})

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating ICS file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return Write(items, file, logger)
}

func summary(item models.Item) string {
	if item.InstallmentNo > 0 {
		return fmt.Sprintf("%s payment %d: $%s", item.Provider, item.InstallmentNo, item.Amount.StringFixed(2))
	}
	return fmt.Sprintf("%s payment: $%s", item.Provider, item.Amount.StringFixed(2))
}

func description(item models.Item) string {
	parts := []string{
		fmt.Sprintf("Amount: %s %s", item.Amount.StringFixed(2), item.Currency),
	}
	if item.InstallmentNo > 0 {
		parts = append(parts, fmt.Sprintf("Installment: %d", item.InstallmentNo))
	}
	if item.Autopay {
		parts = append(parts, "Autopay: on")
	} else {
		parts = append(parts, "Autopay: off")
	}
	if !item.LateFee.IsZero() {
		parts = append(parts, fmt.Sprintf("Late fee: %s", item.LateFee.StringFixed(2)))
	}
	return strings.Join(parts, "\\n")
}

// escapeText escapes commas, semicolons and backslashes per RFC 5545.
// Literal "\n" sequences produced by description are left intact.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `\\n`, `\n`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	return s
}

// writeLine appends one content line with RFC 5545 folding: lines longer
// than 75 octets continue on the next line after a single space.
func writeLine(sb *strings.Builder, line string) {
	for len(line) > foldAt {
		sb.WriteString(line[:foldAt])
		sb.WriteString(crlf)
		line = " " + line[foldAt:]
	}
	sb.WriteString(line)
	sb.WriteString(crlf)
}
