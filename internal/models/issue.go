package models

// Issue is a user-visible extraction problem tied to one source block.
// Snippet and Reason must already be PII-redacted when the Issue is built;
// nothing downstream re-redacts them.
type Issue struct {
	ID         string   `json:"id"`
	Snippet    string   `json:"snippet"`              // first ~100 chars of the block, redacted
	Reason     string   `json:"reason"`               // e.g. "Provider not recognized"
	FieldHints []string `json:"fieldHints,omitempty"` // fields that failed, in signal order
}

// ExtractionResult is the output of one extraction run. Items and Issues
// are ordered by source block; DuplicatesRemoved counts dedupe collapses.
type ExtractionResult struct {
	Items             []Item  `json:"items"`
	Issues            []Issue `json:"issues"`
	DuplicatesRemoved int     `json:"duplicatesRemoved"`
}
