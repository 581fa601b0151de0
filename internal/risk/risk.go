// Package risk derives scheduling warnings from an extracted item set:
// date collisions and autopay charges landing on weekends. Risks are
// recomputed fresh on every call and carry no identity across runs.
package risk

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"payplan/bnpl-csv/internal/dateutils"
	"payplan/bnpl-csv/internal/logging"
	"payplan/bnpl-csv/internal/models"
)

// Detector flags collision and weekend-autopay risks.
type Detector struct {
	logger logging.Logger
}

// NewDetector creates a Detector. A nil logger falls back to a default
// adapter.
func NewDetector(logger logging.Logger) *Detector {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Detector{logger: logger}
}

// Detect returns all risks over the item set, collisions first, then
// weekend autopays, both in item order. An item whose due date cannot be
// parsed is skipped for the weekend check and logged; it never aborts
// detection for the rest of the set.
func (d *Detector) Detect(items []models.Item, timezone string) []models.Risk {
	loc, err := dateutils.LoadLocation(timezone)
	if err != nil {
		d.logger.WithError(err).Warn("Invalid timezone for risk detection, using UTC",
			logging.Field{Key: logging.FieldTimezone, Value: timezone})
		loc = nil
	}

	risks := d.detectCollisions(items)
	risks = append(risks, d.detectWeekendAutopay(items, loc)...)
	return risks
}

// detectCollisions groups items by due date; every date with two or more
// payments yields one high-severity risk referencing all of them.
func (d *Detector) detectCollisions(items []models.Item) []models.Risk {
	byDate := make(map[string][]string)
	var dateOrder []string
	for _, item := range items {
		if item.DueDate == "" {
			continue
		}
		if _, ok := byDate[item.DueDate]; !ok {
			dateOrder = append(dateOrder, item.DueDate)
		}
		byDate[item.DueDate] = append(byDate[item.DueDate], item.ID)
	}

	var risks []models.Risk
	for _, date := range dateOrder {
		ids := byDate[date]
		if len(ids) < 2 {
			continue
		}
		risks = append(risks, models.Risk{
			ID:            uuid.New().String(),
			Type:          models.RiskCollision,
			Severity:      models.SeverityHigh,
			Message:       fmt.Sprintf("%d payments collide on %s", len(ids), date),
			AffectedItems: append([]string(nil), ids...),
		})
	}
	return risks
}

// detectWeekendAutopay emits one medium-severity risk per autopay item
// whose due date falls on a Saturday or Sunday in the given location.
func (d *Detector) detectWeekendAutopay(items []models.Item, loc *time.Location) []models.Risk {
	var risks []models.Risk
	for _, item := range items {
		if !item.Autopay || item.DueDate == "" {
			continue
		}
		due, err := dateutils.ParseISODate(item.DueDate, loc)
		if err != nil {
			d.logger.WithError(err).Warn("Skipping weekend check for unparseable due date",
				logging.Field{Key: logging.FieldItemID, Value: item.ID},
				logging.Field{Key: logging.FieldDueDate, Value: item.DueDate})
			continue
		}
		if !dateutils.IsWeekend(due) {
			continue
		}
		risks = append(risks, models.Risk{
			ID:       uuid.New().String(),
			Type:     models.RiskWeekendAutopay,
			Severity: models.SeverityMedium,
			Message: fmt.Sprintf("%s autopay of $%s falls on a %s (%s)",
				item.Provider, item.Amount.StringFixed(2), due.Weekday(), item.DueDate),
			AffectedItems: []string{item.ID},
		})
	}
	return risks
}
