package models

// Risk is a derived warning over a set of items. Risks hold no identity
// across runs; they are recomputed from the current item set every time.
type Risk struct {
	ID            string   `json:"id"`
	Type          RiskType `json:"type"`
	Severity      Severity `json:"severity"`
	Message       string   `json:"message"`
	AffectedItems []string `json:"affectedItems"` // item ids this risk applies to
}
