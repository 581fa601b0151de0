// Package common provides the CSV boundary shared by the CLI commands:
// reading items back from the external row format and writing extraction
// results out to it.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"payplan/bnpl-csv/internal/dateutils"
	"payplan/bnpl-csv/internal/logging"
	"payplan/bnpl-csv/internal/models"
)

// Delimiter is the field separator for CSV input and output, configured
// through csv.delimiter.
var Delimiter rune = ','

// SetDelimiter sets the CSV field separator used by ReadItems and
// WriteItems.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// ItemCSVRow is the external CSV row shape:
// provider,installment_no,due_date,amount,currency,autopay,late_fee,confidence
// Amounts and confidence carry two decimal places, autopay is lowercase
// true/false.
type ItemCSVRow struct {
	Provider      string `csv:"provider"`
	InstallmentNo int    `csv:"installment_no"`
	DueDate       string `csv:"due_date"`
	Amount        string `csv:"amount"`
	Currency      string `csv:"currency"`
	Autopay       string `csv:"autopay"`
	LateFee       string `csv:"late_fee"`
	Confidence    string `csv:"confidence"`
}

// ItemToRow maps an item onto its CSV row representation.
func ItemToRow(item models.Item) ItemCSVRow {
	return ItemCSVRow{
		Provider:      item.Provider,
		InstallmentNo: item.InstallmentNo,
		DueDate:       item.DueDate,
		Amount:        item.Amount.StringFixed(2),
		Currency:      item.Currency,
		Autopay:       strconv.FormatBool(item.Autopay),
		LateFee:       item.LateFee.StringFixed(2),
		Confidence:    strconv.FormatFloat(item.Confidence, 'f', 2, 64),
	}
}

// RowToItem reconstructs an item from one CSV row. The id is assigned by
// the caller from the data-row position.
func RowToItem(row ItemCSVRow) (models.Item, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
	if err != nil {
		return models.Item{}, fmt.Errorf("invalid amount %q: %w", row.Amount, err)
	}

	lateFee := decimal.Zero
	if strings.TrimSpace(row.LateFee) != "" {
		lateFee, err = decimal.NewFromString(strings.TrimSpace(row.LateFee))
		if err != nil {
			return models.Item{}, fmt.Errorf("invalid late_fee %q: %w", row.LateFee, err)
		}
	}

	autopay := false
	if strings.TrimSpace(row.Autopay) != "" {
		autopay, err = strconv.ParseBool(strings.TrimSpace(row.Autopay))
		if err != nil {
			return models.Item{}, fmt.Errorf("invalid autopay %q: %w", row.Autopay, err)
		}
	}

	conf := 0.0
	if strings.TrimSpace(row.Confidence) != "" {
		conf, err = strconv.ParseFloat(strings.TrimSpace(row.Confidence), 64)
		if err != nil {
			return models.Item{}, fmt.Errorf("invalid confidence %q: %w", row.Confidence, err)
		}
	}

	currency := strings.TrimSpace(row.Currency)
	if currency == "" {
		currency = models.DefaultCurrency
	}

	return models.Item{
		Provider:      row.Provider,
		InstallmentNo: row.InstallmentNo,
		DueDate:       strings.TrimSpace(row.DueDate),
		Amount:        amount,
		Currency:      currency,
		Autopay:       autopay,
		LateFee:       lateFee,
		Confidence:    conf,
	}, nil
}

// ReadItems reads the external CSV row format into items. Row ids are
// assigned as csv-row-<n> by data-row position. Rows with malformed
// values or a due date that is not a real calendar date are skipped with
// a warning rather than failing the whole file.
func ReadItems(r io.Reader, logger logging.Logger) ([]models.Item, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	csvReader := csv.NewReader(r)
	csvReader.Comma = Delimiter

	var rows []*ItemCSVRow
	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		logger.WithError(err).Error("Failed to parse items CSV")
		return nil, fmt.Errorf("error parsing items CSV: %w", err)
	}

	items := make([]models.Item, 0, len(rows))
	for i, row := range rows {
		id := fmt.Sprintf("csv-row-%d", i+1)

		item, err := RowToItem(*row)
		if err != nil {
			logger.WithError(err).Warn("Skipping malformed CSV row",
				logging.Field{Key: logging.FieldItemID, Value: id})
			continue
		}
		if item.DueDate != "" {
			if _, err := dateutils.ParseISODate(item.DueDate, nil); err != nil {
				logger.WithError(err).Warn("Skipping row with invalid due date",
					logging.Field{Key: logging.FieldItemID, Value: id},
					logging.Field{Key: logging.FieldDueDate, Value: item.DueDate})
				continue
			}
		}
		item.ID = id
		items = append(items, item)
	}

	logger.Info("Read items from CSV",
		logging.Field{Key: logging.FieldCount, Value: len(items)})
	return items, nil
}

// ReadItemsFile reads items from a CSV file on disk.
func ReadItemsFile(filePath string, logger logging.Logger) ([]models.Item, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Reading items CSV file",
		logging.Field{Key: logging.FieldInputFile, Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening items CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return ReadItems(file, logger)
}

// WriteItems writes items in the external CSV row format.
func WriteItems(items []models.Item, w io.Writer) error {
	if items == nil {
		return fmt.Errorf("cannot write nil items to CSV")
	}
	rows := make([]ItemCSVRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, ItemToRow(item))
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteItemsFile writes items to a CSV file, creating the parent
// directory when needed.
func WriteItemsFile(items []models.Item, csvFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Writing items to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(items)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return WriteItems(items, file)
}
