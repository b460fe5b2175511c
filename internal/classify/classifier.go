// Package classify maps committee and employer names into the
// financial-sector taxonomy with ordered keyword rules. Precedence is fixed:
// exclusion > specific keyword > generic keyword. Results are deterministic
// and cached by (name, connected org).
package classify

import (
	"strings"

	"github.com/pacwatch/pacwatch/internal/model"
	"github.com/pacwatch/pacwatch/internal/store"
)

// Classifier is the entity classification service. Construct once and pass
// by reference; the cache persists across runs via its Load/Flush lifecycle.
type Classifier struct {
	cache *store.KeyedCache[model.ClassificationResult]
}

// New creates a classifier backed by the given result cache
func New(cache *store.KeyedCache[model.ClassificationResult]) *Classifier {
	return &Classifier{cache: cache}
}

// Classify resolves (name, connectedOrg) to a classification result. Cached
// keys are never recomputed.
func (c *Classifier) Classify(name, connectedOrg string) model.ClassificationResult {
	key := store.Key(name, connectedOrg)
	if res, ok := c.cache.Get(key); ok {
		return res
	}

	res := evaluate(name, connectedOrg)
	c.cache.Put(key, res)
	return res
}

// Load reads previously cached classifications from disk
func (c *Classifier) Load() error {
	return c.cache.Load()
}

// Flush persists newly classified entries
func (c *Classifier) Flush() error {
	return c.cache.Flush()
}

// CacheSize returns the number of cached classifications
func (c *Classifier) CacheSize() int {
	return c.cache.Len()
}

// evaluate applies the rule tables in precedence order
func evaluate(name, connectedOrg string) model.ClassificationResult {
	haystack := strings.ToUpper(strings.TrimSpace(name))
	if org := strings.ToUpper(strings.TrimSpace(connectedOrg)); org != "" {
		haystack += " " + org
	}
	if haystack == "" {
		return model.NotFinancial()
	}

	// Exclusions win over everything; a generic substring like "BANK" must
	// never reclassify an excluded entity.
	for _, ex := range exclusionKeywords {
		if strings.Contains(haystack, ex) {
			return model.NotFinancial()
		}
	}

	for _, rule := range specificRules {
		for _, kw := range rule.keywords {
			if !strings.Contains(haystack, kw) {
				continue
			}
			confidence := model.ConfidenceMedium
			if len(kw) > highConfidenceLen {
				confidence = model.ConfidenceHigh
			}
			return model.ClassificationResult{
				IsFinancial: true,
				Sector:      rule.sector,
				Subsector:   rule.subsector,
				Confidence:  confidence,
				MatchType:   model.MatchKeyword,
			}
		}
	}

	for _, hint := range genericHints {
		if containsToken(haystack, hint.token) {
			return model.ClassificationResult{
				IsFinancial: true,
				Sector:      hint.sector,
				Subsector:   hint.subsector,
				Confidence:  model.ConfidenceLow,
				MatchType:   model.MatchKeyword,
			}
		}
	}

	return model.NotFinancial()
}

// containsToken matches a bare word, not a substring, so "BANK" does not
// fire on "BURBANK".
func containsToken(haystack, token string) bool {
	for _, field := range strings.FieldsFunc(haystack, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '-' || r == '/' || r == '(' || r == ')'
	}) {
		if field == token {
			return true
		}
	}
	return false
}
