// Package models provides the data structures shared by the extraction
// pipeline, the risk detector and the CSV boundary.
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item is a single extracted installment payment. Items are created fresh
// on every extraction run and never mutated afterwards.
type Item struct {
	ID            string          `json:"id"`             // stable within one run
	Provider      string          `json:"provider"`       // one of the Provider* constants
	InstallmentNo int             `json:"installment_no"` // payment k of N; 0 means unknown
	DueDate       string          `json:"due_date"`       // YYYY-MM-DD, validated calendar date
	Amount        decimal.Decimal `json:"amount"`         // major units (dollars)
	Currency      string          `json:"currency"`       // ISO-4217, defaults to USD
	Autopay       bool            `json:"autopay"`
	LateFee       decimal.Decimal `json:"late_fee"` // 0 when absent from source
	Confidence    float64         `json:"confidence"`
}

// DedupeKey is the composite identity used to collapse duplicate items:
// two items are the same payment when provider, installment number, due
// date and amount all match. Amount participates on purpose so that two
// distinct purchases due the same day survive deduplication.
func (i *Item) DedupeKey() string {
	return fmt.Sprintf("%s|%d|%s|%s", i.Provider, i.InstallmentNo, i.DueDate, i.Amount.StringFixed(2))
}

// ConfidenceLevel maps the numeric confidence onto the High/Medium/Low label.
func (i *Item) ConfidenceLevel() string {
	switch {
	case i.Confidence >= ConfidenceHighThreshold:
		return ConfidenceHigh
	case i.Confidence >= ConfidenceMediumThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
