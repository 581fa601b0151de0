package emailparser

import (
	"regexp"
	"strings"
)

// delimiterLine matches an explicit email separator: a line of three or
// more hyphens and nothing else.
var delimiterLine = regexp.MustCompile(`^\s*-{3,}\s*$`)

var (
	fromHeader    = regexp.MustCompile(`(?i)^from:`)
	subjectHeader = regexp.MustCompile(`(?i)^subject:`)
)

// splitBlocks divides combined input into independent email blocks. A new
// block starts at an explicit `---` delimiter line (the delimiter itself
// is dropped) or at a repeated From:/Subject: header, which implies a new
// pasted email without a delimiter. Empty blocks from leading, trailing or
// repeated delimiters are discarded; delimiter-adjacent content is never
// merged into the wrong block.
func splitBlocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	var blocks []string
	var current []string
	hasFrom := false
	hasSubject := false

	flush := func() {
		block := strings.TrimSpace(strings.Join(current, "\n"))
		if block != "" {
			blocks = append(blocks, block)
		}
		current = current[:0]
		hasFrom = false
		hasSubject = false
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if delimiterLine.MatchString(line) {
			flush()
			continue
		}

		if fromHeader.MatchString(trimmed) {
			if hasFrom {
				flush()
			}
			hasFrom = true
		} else if subjectHeader.MatchString(trimmed) {
			if hasSubject {
				flush()
			}
			hasSubject = true
		}

		current = append(current, line)
	}
	flush()

	return blocks
}
