package extractors

import (
	"regexp"
	"strconv"
)

// Installment phrasing is provider-independent, so the patterns live here
// rather than in the provider table.
var installmentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)payment\s+(\d{1,2})\s+of\s+(\d{1,2})`),
	regexp.MustCompile(`(?i)installment\s+(\d{1,2})\s*(?:/|of)\s*(\d{1,2})`),
	regexp.MustCompile(`(?i)\b(\d{1,2})\s*/\s*(\d{1,2})\s+installments?\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})\s+of\s+(\d{1,2})\s+payments?\b`),
}

var (
	finalPaymentPattern = regexp.MustCompile(`(?i)\bfinal\s+payment\b`)
	// total-count phrasings consulted when only "final payment" is present
	totalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bof\s+(\d{1,2})\s+payments?\b`),
		regexp.MustCompile(`(?i)\bof\s+(\d{1,2})\s+installments?\b`),
		regexp.MustCompile(`(?i)\b(\d{1,2})[- ]payment\s+plan\b`),
	}
)

// Installment extracts the installment number from phrases like
// "Payment 2 of 4" or "Installment 3/4". "Final payment" maps to the total
// count when the text states one; with the total unknown it returns the 0
// sentinel and ok=false, which lowers the block's confidence instead of
// guessing a number.
func Installment(text string) (int, bool) {
	for _, re := range installmentPatterns {
		matches := re.FindStringSubmatch(text)
		if len(matches) < 3 {
			continue
		}
		no, err := strconv.Atoi(matches[1])
		if err != nil || no < 1 {
			continue
		}
		return no, true
	}

	if finalPaymentPattern.MatchString(text) {
		for _, re := range totalPatterns {
			matches := re.FindStringSubmatch(text)
			if len(matches) < 2 {
				continue
			}
			total, err := strconv.Atoi(matches[1])
			if err != nil || total < 1 {
				continue
			}
			return total, true
		}
		// final payment with unknown plan length
		return 0, false
	}

	return 0, false
}
