// Package redact masks personally identifiable substrings before any text
// becomes user-visible. Every Issue snippet and reason must pass through
// Scrub; skipping it is treated as a privacy defect.
package redact

import "regexp"

// Placeholder tokens. All-caps tokens with no digits cannot be re-matched
// by any of the rules below, which makes Scrub idempotent.
const (
	MaskEmail   = "[EMAIL]"
	MaskAmount  = "[AMOUNT]"
	MaskAccount = "[ACCOUNT]"
	MaskName    = "[NAME]"
)

var (
	emailPattern   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	amountPattern  = regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d{1,2})?`)
	accountPattern = regexp.MustCompile(`\d{4,}`)
	namePattern    = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
)

// Scrub applies the masking rules in a fixed order: email addresses,
// dollar amounts, account-number-like digit runs, then capitalized word
// pairs. Amounts run before digit runs so "$1,234.56" becomes [AMOUNT]
// rather than [ACCOUNT].
func Scrub(text string) string {
	text = emailPattern.ReplaceAllString(text, MaskEmail)
	text = amountPattern.ReplaceAllString(text, MaskAmount)
	text = accountPattern.ReplaceAllString(text, MaskAccount)
	text = namePattern.ReplaceAllString(text, MaskName)
	return text
}

// Snippet scrubs text and returns the first max characters of the
// result. Used to build Issue snippets from raw block content. Scrubbing
// runs before truncation: cutting first could bisect a PII match at the
// boundary and leak the surviving fragment.
func Snippet(text string, max int) string {
	runes := []rune(Scrub(text))
	if len(runes) > max {
		runes = runes[:max]
	}
	return string(runes)
}
