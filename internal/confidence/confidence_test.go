package confidence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"payplan/bnpl-csv/internal/models"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		signals  Signals
		expected float64
	}{
		{
			"all fields extracted",
			Signals{Provider: true, Date: true, Amount: true, Installment: true, Autopay: true},
			1.0,
		},
		{
			"provider and date only is the medium boundary",
			Signals{Provider: true, Date: true},
			0.6,
		},
		{
			"nothing extracted",
			Signals{},
			0.0,
		},
		{
			"provider only",
			Signals{Provider: true},
			0.35,
		},
		{
			"date only",
			Signals{Date: true},
			0.25,
		},
		{
			"amount only",
			Signals{Amount: true},
			0.20,
		},
		{
			"installment only",
			Signals{Installment: true},
			0.15,
		},
		{
			"autopay only",
			Signals{Autopay: true},
			0.05,
		},
		{
			"missing installment",
			Signals{Provider: true, Date: true, Amount: true, Autopay: true},
			0.85,
		},
		{
			"missing amount and installment",
			Signals{Provider: true, Date: true, Autopay: true},
			0.65,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Score(tc.signals), 1e-9)
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{1.0, models.ConfidenceHigh},
		{0.85, models.ConfidenceHigh},
		{0.8, models.ConfidenceHigh},
		{0.79, models.ConfidenceMedium},
		{0.6, models.ConfidenceMedium},
		{0.59, models.ConfidenceLow},
		{0.0, models.ConfidenceLow},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Level(tc.score), "score %v", tc.score)
	}
}

func TestMissingFields(t *testing.T) {
	t.Run("all present", func(t *testing.T) {
		all := Signals{Provider: true, Date: true, Amount: true, Installment: true, Autopay: true}
		assert.Empty(t, MissingFields(all))
	})

	t.Run("all missing keeps signal order", func(t *testing.T) {
		assert.Equal(t,
			[]string{"provider", "due_date", "amount", "installment_no", "autopay"},
			MissingFields(Signals{}))
	})

	t.Run("partial", func(t *testing.T) {
		s := Signals{Provider: true, Autopay: true}
		assert.Equal(t, []string{"due_date", "amount", "installment_no"}, MissingFields(s))
	})
}
