package provider

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// yamlProvider is the on-disk shape of one provider entry in a signature
// override file. Patterns are plain regex strings compiled at load time.
type yamlProvider struct {
	Name            string   `yaml:"name"`
	Signatures      []string `yaml:"signatures"`
	RegexSignatures []string `yaml:"regex_signatures"`
	AmountPatterns  []string `yaml:"amount_patterns"`
	DatePatterns    []string `yaml:"date_patterns"`
}

// LoadRegistryFromFile builds a registry from a YAML override file. The
// file replaces the built-in table entirely; entry order in the file
// becomes the detection priority order. Entries without amount or date
// patterns inherit the shared built-in lists.
func LoadRegistryFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading provider override file: %w", err)
	}

	var entries []yamlProvider
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing provider override file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("provider override file %s contains no providers", path)
	}

	providers := make([]Provider, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("provider override entry without a name in %s", path)
		}
		p := Provider{
			Name:           e.Name,
			Signatures:     e.Signatures,
			AmountPatterns: sharedAmountPatterns,
			DatePatterns:   sharedDatePatterns,
		}
		for _, expr := range e.RegexSignatures {
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("invalid regex signature %q for provider %s: %w", expr, e.Name, err)
			}
			p.RegexSignatures = append(p.RegexSignatures, re)
		}
		if len(e.AmountPatterns) > 0 {
			p.AmountPatterns, err = compileAll(e.AmountPatterns, e.Name, "amount")
			if err != nil {
				return nil, err
			}
		}
		if len(e.DatePatterns) > 0 {
			p.DatePatterns, err = compileAll(e.DatePatterns, e.Name, "date")
			if err != nil {
				return nil, err
			}
		}
		providers = append(providers, p)
	}

	return NewRegistry(providers), nil
}

func compileAll(exprs []string, providerName, kind string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s pattern %q for provider %s: %w", kind, expr, providerName, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
