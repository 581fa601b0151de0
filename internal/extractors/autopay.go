package extractors

import "regexp"

var autopayOnPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bauto-?pay\s+is\s+on\b`),
	regexp.MustCompile(`(?i)\bauto-?pay\s*:\s*on\b`),
	regexp.MustCompile(`(?i)\bauto-?pay\s+(?:is\s+)?enabled\b`),
	regexp.MustCompile(`(?i)\bautomatic\s+payments?\s+(?:is\s+|are\s+)?enabled\b`),
	regexp.MustCompile(`(?i)\bwill\s+be\s+(?:automatically\s+charged|charged\s+automatically)\b`),
}

var autopayOffPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bauto-?pay\s+is\s+off\b`),
	regexp.MustCompile(`(?i)\bauto-?pay\s*:\s*off\b`),
	regexp.MustCompile(`(?i)\bauto-?pay\s+(?:is\s+)?disabled\b`),
	regexp.MustCompile(`(?i)\bautomatic\s+payments?\s+(?:is\s+|are\s+)?disabled\b`),
}

// Autopay detects whether the payment is configured to charge
// automatically. Explicit OFF phrasing wins over ON; silence or ambiguity
// defaults to false, the safer assumption. The detector always completes,
// so the autopay confidence signal is 1 for every scanned block.
func Autopay(text string) bool {
	for _, re := range autopayOffPatterns {
		if re.MatchString(text) {
			return false
		}
	}
	for _, re := range autopayOnPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
