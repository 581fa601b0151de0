package extractors

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var lateFeePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)late\s+fee:?\s*\$([\d,]+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)\$([\d,]+(?:\.\d{1,2})?)\s+late\s+fee`),
}

// LateFee extracts an optional late-fee amount. Absence is not an error;
// the fee simply defaults to zero.
func LateFee(text string) decimal.Decimal {
	for _, re := range lateFeePatterns {
		matches := re.FindStringSubmatch(text)
		if len(matches) < 2 {
			continue
		}
		raw := strings.ReplaceAll(matches[1], ",", "")
		fee, err := decimal.NewFromString(raw)
		if err != nil || fee.IsNegative() {
			continue
		}
		return fee
	}
	return decimal.Zero
}
