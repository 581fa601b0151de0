// Package emailparser drives the extraction pipeline: it sanitizes pasted
// reminder text, splits it into email blocks, runs provider detection and
// field extraction per block, scores confidence, deduplicates the results
// and aggregates problem blocks into user-facing issues.
package emailparser

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"payplan/bnpl-csv/internal/confidence"
	"payplan/bnpl-csv/internal/dateutils"
	"payplan/bnpl-csv/internal/extractors"
	"payplan/bnpl-csv/internal/logging"
	"payplan/bnpl-csv/internal/models"
	"payplan/bnpl-csv/internal/parsererror"
	"payplan/bnpl-csv/internal/provider"
	"payplan/bnpl-csv/internal/redact"
)

// MaxInputChars is the hard cap on pasted input, counted in characters
// (runes), not bytes. One consistent policy: anything above the cap fails
// the whole call with InputTooLargeError.
const MaxInputChars = 16000

// snippetLen is how much of a block an Issue quotes, before redaction.
const snippetLen = 100

// Parser orchestrates one extraction run. It is stateless between calls;
// Parse is a pure function of (input text, timezone).
type Parser struct {
	registry *provider.Registry
	logger   logging.Logger
}

// New creates a Parser over the given provider registry. A nil registry
// falls back to the built-in table, a nil logger to a default adapter.
func New(registry *provider.Registry, logger logging.Logger) *Parser {
	if registry == nil {
		registry = provider.DefaultRegistry()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{registry: registry, logger: logger}
}

// blockResult pairs an extracted item with its signal vector so that
// low-confidence issues can name the fields that failed, after dedupe.
type blockResult struct {
	item    models.Item
	signals confidence.Signals
	source  string
}

// loadLocation resolves the caller-supplied IANA timezone, wrapping
// failures in the typed error callers are expected to catch.
func loadLocation(timezone string) (*time.Location, error) {
	loc, err := dateutils.LoadLocation(timezone)
	if err != nil {
		return nil, &parsererror.InvalidTimezoneError{Timezone: timezone, Err: err}
	}
	return loc, nil
}

// Parse converts pasted reminder text into structured items and issues.
// Per-block failures (unknown provider, missing fields, low confidence)
// become issues and never abort the batch; only an oversized or empty
// input fails the call.
func (p *Parser) Parse(emailText, timezone string) (*models.ExtractionResult, error) {
	if n := utf8.RuneCountInString(emailText); n > MaxInputChars {
		return nil, &parsererror.InputTooLargeError{Length: n, Limit: MaxInputChars}
	}

	loc, err := loadLocation(timezone)
	if err != nil {
		return nil, err
	}

	text := emailText
	if looksLikeHTML(text) {
		p.logger.Debug("Input looks like HTML, stripping markup")
		text = stripHTML(text)
	}

	blocks := splitBlocks(text)
	if len(blocks) == 0 {
		return nil, &parsererror.EmptyInputError{Msg: "no email blocks found"}
	}
	p.logger.Info("Split input into email blocks",
		logging.Field{Key: logging.FieldCount, Value: len(blocks)},
		logging.Field{Key: logging.FieldTimezone, Value: timezone})

	var results []blockResult
	var issues []models.Issue

	for i, block := range blocks {
		name := p.registry.Detect(block)
		if name == models.ProviderUnknown {
			p.logger.Debug("Provider not recognized for block",
				logging.Field{Key: logging.FieldBlock, Value: i})
			issues = append(issues, models.Issue{
				ID:      uuid.New().String(),
				Snippet: redact.Snippet(block, snippetLen),
				Reason:  redact.Scrub("Provider not recognized"),
			})
			continue
		}

		result, err := p.extractBlock(block, i, name, loc)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	results, duplicatesRemoved := dedupe(results)

	items := make([]models.Item, 0, len(results))
	for _, r := range results {
		items = append(items, r.item)
		if r.item.Confidence < models.ConfidenceMediumThreshold {
			issues = append(issues, models.Issue{
				ID:         uuid.New().String(),
				Snippet:    redact.Snippet(r.source, snippetLen),
				Reason:     redact.Scrub(fmt.Sprintf("Low confidence (%.0f%%)", r.item.Confidence*100)),
				FieldHints: confidence.MissingFields(r.signals),
			})
		}
	}

	p.logger.Info("Extraction complete",
		logging.Field{Key: logging.FieldCount, Value: len(items)},
		logging.Field{Key: logging.FieldDuplicates, Value: duplicatesRemoved})

	return &models.ExtractionResult{
		Items:             items,
		Issues:            issues,
		DuplicatesRemoved: duplicatesRemoved,
	}, nil
}

// extractBlock runs the field extractors for one block with a detected
// provider and assembles the item plus its confidence score.
func (p *Parser) extractBlock(block string, index int, name string, loc *time.Location) (blockResult, error) {
	prov := p.registry.Lookup(name)

	amount, amountOK, err := extractors.Amount(block, name, prov.AmountPatterns)
	if err != nil {
		return blockResult{}, err
	}
	dueDate, dateOK, err := extractors.DueDate(block, name, prov.DatePatterns, loc)
	if err != nil {
		return blockResult{}, err
	}
	installmentNo, installmentOK := extractors.Installment(block)
	autopay := extractors.Autopay(block)
	lateFee := extractors.LateFee(block)

	signals := confidence.Signals{
		Provider:    true,
		Date:        dateOK,
		Amount:      amountOK,
		Installment: installmentOK,
		Autopay:     true, // detection ran; ambiguity defaults to false above
	}
	score := confidence.Score(signals)

	item := models.Item{
		ID:            fmt.Sprintf("email-%d", index+1),
		Provider:      name,
		InstallmentNo: installmentNo,
		DueDate:       dueDate,
		Amount:        amount,
		Currency:      models.DefaultCurrency,
		Autopay:       autopay,
		LateFee:       lateFee,
		Confidence:    score,
	}

	p.logger.Debug("Extracted item from block",
		logging.Field{Key: logging.FieldBlock, Value: index},
		logging.Field{Key: logging.FieldProvider, Value: name},
		logging.Field{Key: logging.FieldConfidence, Value: score})

	return blockResult{item: item, signals: signals, source: block}, nil
}

// dedupe collapses items sharing (provider, installment_no, due_date,
// amount), keeping the first occurrence and preserving block order.
func dedupe(results []blockResult) ([]blockResult, int) {
	seen := make(map[string]bool, len(results))
	kept := results[:0]
	removed := 0
	for _, r := range results {
		key := r.item.DedupeKey()
		if seen[key] {
			removed++
			continue
		}
		seen[key] = true
		kept = append(kept, r)
	}
	return kept, removed
}
