package provider

import (
	"strings"

	"payplan/bnpl-csv/internal/models"
)

// Detect classifies a raw email block against the registry. Providers are
// evaluated strictly in table order and the first one with any matching
// signature wins; the order, not the signature itself, disambiguates
// shared phrases. No match returns models.ProviderUnknown.
func (r *Registry) Detect(text string) string {
	lowered := strings.ToLower(text)
	for i := range r.providers {
		p := &r.providers[i]
		for _, sig := range p.Signatures {
			if strings.Contains(lowered, sig) {
				return p.Name
			}
		}
		for _, re := range p.RegexSignatures {
			if re.MatchString(lowered) {
				return p.Name
			}
		}
	}
	return models.ProviderUnknown
}
