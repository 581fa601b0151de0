// Package extractors pulls individual payment fields out of a single email
// block using the detected provider's ordered pattern lists. Absence of a
// field is a normal outcome, reported through the ok return; only a
// provider with no patterns configured at all is an error.
package extractors

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"payplan/bnpl-csv/internal/parsererror"
)

// minAmount is the smallest amount accepted as a real installment. Matches
// below it (for example "$0.00") are skipped in favor of later patterns.
var minAmount = decimal.NewFromFloat(0.01)

// Amount tries each amount pattern in order and returns the first value
// that parses to at least 0.01. Thousands separators are tolerated.
func Amount(text, providerName string, patterns []*regexp.Regexp) (decimal.Decimal, bool, error) {
	if len(patterns) == 0 {
		return decimal.Zero, false, &parsererror.PatternConfigError{Provider: providerName, Field: "amount"}
	}

	for _, re := range patterns {
		matches := re.FindStringSubmatch(text)
		if len(matches) < 2 {
			continue
		}
		raw := strings.ReplaceAll(matches[1], ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		if amount.LessThan(minAmount) {
			continue
		}
		return amount, true, nil
	}
	return decimal.Zero, false, nil
}
