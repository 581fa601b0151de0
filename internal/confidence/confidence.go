// Package confidence scores an extracted item from the per-field signal
// vector. The formula and thresholds are fixed; the score is a pure
// function of the signals.
package confidence

import "payplan/bnpl-csv/internal/models"

// Field weights. They sum to 1.0, so an item with every field extracted
// scores exactly 1.0.
const (
	WeightProvider    = 0.35
	WeightDate        = 0.25
	WeightAmount      = 0.20
	WeightInstallment = 0.15
	WeightAutopay     = 0.05
)

// Signals records which fields were successfully extracted from a block.
// Autopay means "detection ran without erroring", not "autopay is on":
// a block that is silent about autopay still yields Autopay=true here
// because the detector completed and defaulted the value to false.
type Signals struct {
	Provider    bool
	Date        bool
	Amount      bool
	Installment bool
	Autopay     bool
}

// Score computes the weighted sum of the signals.
func Score(s Signals) float64 {
	score := 0.0
	if s.Provider {
		score += WeightProvider
	}
	if s.Date {
		score += WeightDate
	}
	if s.Amount {
		score += WeightAmount
	}
	if s.Installment {
		score += WeightInstallment
	}
	if s.Autopay {
		score += WeightAutopay
	}
	return score
}

// Level maps a score onto the High/Medium/Low label using the shared
// thresholds.
func Level(score float64) string {
	switch {
	case score >= models.ConfidenceHighThreshold:
		return models.ConfidenceHigh
	case score >= models.ConfidenceMediumThreshold:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// MissingFields lists the zero signals in a fixed order, for Issue field
// hints on low-confidence items.
func MissingFields(s Signals) []string {
	var missing []string
	if !s.Provider {
		missing = append(missing, "provider")
	}
	if !s.Date {
		missing = append(missing, "due_date")
	}
	if !s.Amount {
		missing = append(missing, "amount")
	}
	if !s.Installment {
		missing = append(missing, "installment_no")
	}
	if !s.Autopay {
		missing = append(missing, "autopay")
	}
	return missing
}
