// Package provider holds the static BNPL provider signature table and the
// order-dependent provider detector. The table is built once and never
// mutated afterwards.
package provider

import "regexp"

// Provider is one known BNPL provider: its detection signatures plus the
// ordered regex pattern lists used by the field extractors. Amount and
// date patterns capture the value as submatch 1 and are tried in order,
// most specific first.
type Provider struct {
	Name            string
	Signatures      []string         // lowercased substring signatures
	RegexSignatures []*regexp.Regexp // applied to the lowercased block
	AmountPatterns  []*regexp.Regexp
	DatePatterns    []*regexp.Regexp
}

// Registry is the ordered provider table. Evaluation order is a designed
// invariant: providers with distinctive domain signatures come first so a
// shared phrase like "pay in 4" cannot shadow a more specific match.
type Registry struct {
	providers []Provider
	byName    map[string]*Provider
}

// NewRegistry builds a registry from an ordered provider list.
func NewRegistry(providers []Provider) *Registry {
	r := &Registry{providers: providers, byName: make(map[string]*Provider, len(providers))}
	for i := range r.providers {
		r.byName[r.providers[i].Name] = &r.providers[i]
	}
	return r
}

// Providers returns the ordered provider list.
func (r *Registry) Providers() []Provider {
	return r.providers
}

// Lookup returns the provider with the given name, or nil.
func (r *Registry) Lookup(name string) *Provider {
	return r.byName[name]
}

// Shared date patterns: ISO first, then US slash, then month names. The
// month-name pattern keeps ordinal suffixes; dateutils strips them before
// parsing.
var sharedDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)due\s+(?:on|by|date)?:?\s*(\d{4}-\d{2}-\d{2})`),
	regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
	regexp.MustCompile(`(?i)due\s+(?:on|by|date)?:?\s*(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`((?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`),
}

// Shared amount patterns: labeled amounts before bare dollar figures, and
// an implicit-USD form only where a label makes the meaning unambiguous.
var sharedAmountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)installment(?:\s+amount)?:?\s*\$([\d,]+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)(?:payment|amount)\s+(?:due|of):?\s*\$([\d,]+(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)\$([\d,]+(?:\.\d{1,2})?)\s+(?:is\s+)?due`),
	regexp.MustCompile(`\$([\d,]+\.\d{2})`),
	regexp.MustCompile(`(?i)amount\s+due:?\s*([\d,]+\.\d{2})`),
}

// DefaultProviders returns the built-in ordered provider table.
// Klarna/Affirm/Afterpay/PayPal carry distinctive domains and run first;
// Zip and Sezzle, whose marketing phrasing overlaps the generic
// "pay in 4" wording, run last.
func DefaultProviders() []Provider {
	return []Provider{
		{
			Name:           "Klarna",
			Signatures:     []string{"klarna.com", "klarna", "pay in 4 with klarna"},
			AmountPatterns: sharedAmountPatterns,
			DatePatterns:   sharedDatePatterns,
		},
		{
			Name:           "Affirm",
			Signatures:     []string{"affirm.com", "affirm", "monthly payment with affirm"},
			AmountPatterns: sharedAmountPatterns,
			DatePatterns:   sharedDatePatterns,
		},
		{
			Name:           "Afterpay",
			Signatures:     []string{"afterpay.com", "afterpay", "clearpay"},
			AmountPatterns: sharedAmountPatterns,
			DatePatterns:   sharedDatePatterns,
		},
		{
			Name:       "PayPal Pay in 4",
			Signatures: []string{"paypal.com", "paypal pay in 4", "pay in 4"},
			RegexSignatures: []*regexp.Regexp{
				regexp.MustCompile(`paypal.{0,40}pay in 4`),
			},
			AmountPatterns: sharedAmountPatterns,
			DatePatterns:   sharedDatePatterns,
		},
		{
			Name:           "Zip",
			Signatures:     []string{"zip.co", "quadpay", "zip pay"},
			AmountPatterns: sharedAmountPatterns,
			DatePatterns:   sharedDatePatterns,
		},
		{
			Name:           "Sezzle",
			Signatures:     []string{"sezzle.com", "sezzle"},
			AmountPatterns: sharedAmountPatterns,
			DatePatterns:   sharedDatePatterns,
		},
	}
}

// DefaultRegistry returns a registry over the built-in provider table.
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultProviders())
}
