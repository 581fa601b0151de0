package models

// Known BNPL provider names. ProviderUnknown marks a block whose sender
// could not be classified.
const (
	ProviderKlarna   = "Klarna"
	ProviderAffirm   = "Affirm"
	ProviderAfterpay = "Afterpay"
	ProviderPayPal   = "PayPal Pay in 4"
	ProviderZip      = "Zip"
	ProviderSezzle   = "Sezzle"
	ProviderUnknown  = "Unknown"
)

// DefaultCurrency is assumed when the source text carries no explicit
// currency. The pipeline is US-only by design.
const DefaultCurrency = "USD"

// Confidence thresholds. High >= 0.8, Medium >= 0.6, everything below
// 0.6 is Low and must surface as an Issue.
const (
	ConfidenceHighThreshold   = 0.8
	ConfidenceMediumThreshold = 0.6
)

// Confidence level labels rendered by consumers (UI pill, CSV notes).
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// RiskType identifies the category of a detected scheduling risk.
type RiskType string

const (
	// RiskCollision flags two or more payments due on the same calendar date.
	RiskCollision RiskType = "COLLISION"
	// RiskWeekendAutopay flags an autopay charge landing on a Saturday or Sunday.
	RiskWeekendAutopay RiskType = "WEEKEND_AUTOPAY"
)

// Severity ranks a risk for display ordering.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)
