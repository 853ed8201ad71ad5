// Package claims resolves requested claim names to values through a
// host-supplied provider, applying OpenID Connect claim-locale negotiation.
package claims

import (
	"encoding/json"
	"strings"
)

// Provider supplies claim values for a subject. A nil return means the claim
// has no value for that subject/locale combination.
//
// languageTag is a BCP 47 tag when the claim was requested for a specific
// locale, or empty for an untagged lookup.
type Provider interface {
	UserClaimValue(subject, claimName, languageTag string) any
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(subject, claimName, languageTag string) any

func (f ProviderFunc) UserClaimValue(subject, claimName, languageTag string) any {
	return f(subject, claimName, languageTag)
}

// NormalizeLocales drops empty entries and case-insensitive duplicates from
// an ordered locale preference list. The first occurrence wins and keeps its
// original casing. Normalizing an already-normalized list returns an equal
// list.
func NormalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))

	for _, locale := range locales {
		trimmed := strings.TrimSpace(locale)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// Collector resolves a list of requested claim names for one subject.
type Collector struct {
	provider Provider
}

// NewCollector builds a collector over the given provider.
func NewCollector(provider Provider) *Collector {
	return &Collector{provider: provider}
}

// Collect resolves each requested claim name to a value. Claim names may
// carry an explicit language tag ("name#tag"); an explicit tag always wins
// over the locale preference list. Claims that resolve to no value are
// omitted entirely. Returns nil when nothing resolved.
func (c *Collector) Collect(subject string, claimNames, claimLocales []string) map[string]any {
	if c.provider == nil || subject == "" || len(claimNames) == 0 {
		return nil
	}

	locales := NormalizeLocales(claimLocales)
	collected := make(map[string]any, len(claimNames))

	for _, requested := range claimNames {
		name, tag := splitClaimName(requested)
		if name == "" {
			continue
		}

		value := c.resolve(subject, name, tag, locales)
		if value == nil {
			continue
		}
		collected[requested] = value
	}

	if len(collected) == 0 {
		return nil
	}
	return collected
}

// CollectJSON collects claims and serializes them to a JSON string for
// transmission to the remote API. When nothing resolved, or when
// serialization fails, it returns the empty string so the claims field is
// simply omitted from the issue request.
func (c *Collector) CollectJSON(subject string, claimNames, claimLocales []string) string {
	collected := c.Collect(subject, claimNames, claimLocales)
	if collected == nil {
		return ""
	}
	encoded, err := json.Marshal(collected)
	if err != nil {
		return ""
	}
	return string(encoded)
}

func (c *Collector) resolve(subject, name, tag string, locales []string) any {
	// An explicit tag means a direct lookup with exactly that locale.
	if tag != "" {
		return c.provider.UserClaimValue(subject, name, tag)
	}

	// No locale preference: a single untagged lookup.
	if len(locales) == 0 {
		return c.provider.UserClaimValue(subject, name, "")
	}

	// Try each preferred locale in order, then fall back to untagged.
	for _, locale := range locales {
		if value := c.provider.UserClaimValue(subject, name, locale); value != nil {
			return value
		}
	}
	return c.provider.UserClaimValue(subject, name, "")
}

// splitClaimName separates "name#languageTag" on the first '#'.
func splitClaimName(requested string) (name, tag string) {
	name, tag, _ = strings.Cut(requested, "#")
	return name, tag
}
