// Package firms normalizes organization names and resolves subsidiaries to
// canonical parent companies. Matching is exact-by-normalized-name only, a
// deliberate precision-over-recall choice: a false financial tag in
// advocacy-grade output is worse than a miss.
package firms

import (
	"sort"
	"strings"
	"sync"

	"github.com/pacwatch/pacwatch/internal/model"
)

// corporateSuffixes are stripped from the tail of organization names.
// Stripped longest-first: taking " BANK" off "X SAVINGS BANK" before
// " SAVINGS BANK" would leave "SAVINGS" dangling.
var corporateSuffixes = []string{
	", INCORPORATED",
	" INCORPORATED",
	", CORPORATION",
	" CORPORATION",
	" SAVINGS BANK",
	" NATIONAL ASSOCIATION",
	" & COMPANY",
	" AND COMPANY",
	", COMPANY",
	" COMPANY",
	" HOLDINGS",
	", L.L.C.",
	" L.L.C.",
	", L.P.",
	" L.P.",
	", INC.",
	", INC",
	" INC.",
	" INC",
	", LLC",
	" LLC",
	", LLP",
	" LLP",
	", LTD.",
	", LTD",
	" LTD.",
	" LTD",
	", CORP.",
	", CORP",
	" CORP.",
	" CORP",
	" GROUP",
	" & CO.",
	" & CO",
	" CO.",
	" PLC",
	" N.A.",
	" NA",
	" LP",
	" BANK",
}

var suffixOrder sync.Once

func sortedSuffixes() []string {
	suffixOrder.Do(func() {
		sort.SliceStable(corporateSuffixes, func(i, j int) bool {
			return len(corporateSuffixes[i]) > len(corporateSuffixes[j])
		})
	})
	return corporateSuffixes
}

// Normalize uppercases, strips corporate suffixes longest-first, removes
// punctuation, and collapses whitespace. The passes repeat until nothing
// changes: punctuation removal can expose another strippable suffix, as in
// "ACME L.P" becoming "ACME LP". Idempotent.
func Normalize(name string) string {
	s := strings.ToUpper(strings.TrimSpace(name))

	for {
		prev := s
		s = stripSuffixes(s)
		s = stripPunctuation(s)
		s = strings.Join(strings.Fields(s), " ")
		if s == prev {
			return s
		}
	}
}

func stripSuffixes(s string) string {
	for {
		stripped := false
		for _, suffix := range sortedSuffixes() {
			if strings.HasSuffix(s, suffix) {
				s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
				stripped = true
				break
			}
		}
		if !stripped {
			return s
		}
	}
}

func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', '\'', '"':
			return -1
		}
		return r
	}, s)
}

// ResolveParent maps a subsidiary or brand name to its canonical parent via
// the static alias table; unknown names come back normalized but unchanged.
func ResolveParent(name string) string {
	normalized := Normalize(name)
	if parent, ok := parentAliases[normalized]; ok {
		return parent
	}
	return normalized
}

// Resolver matches employer names against the known-firm set. The set is
// seeded with curated major firms and grown from classified PAC connected
// organizations during aggregation.
type Resolver struct {
	known map[string]model.ClassificationResult
}

// NewResolver creates a resolver seeded with the curated major firms
func NewResolver() *Resolver {
	known := make(map[string]model.ClassificationResult, len(majorFirms))
	for name, res := range majorFirms {
		res.MatchedFirm = name
		known[name] = res
	}
	return &Resolver{known: known}
}

// AddFirm registers a classified organization as a known firm
func (r *Resolver) AddFirm(name string, res model.ClassificationResult) {
	normalized := Normalize(name)
	if normalized == "" || !res.IsFinancial {
		return
	}
	if _, exists := r.known[normalized]; exists {
		return
	}
	res.MatchType = model.MatchExact
	res.MatchedFirm = normalized
	r.known[normalized] = res
}

// KnownFirms returns the size of the known-firm set
func (r *Resolver) KnownFirms() int {
	return len(r.known)
}

// MatchEmployer resolves an employer string to a known firm, first by direct
// normalized membership, then through the parent alias table. No partial or
// fuzzy matching is attempted; ok is false on any miss.
func (r *Resolver) MatchEmployer(employer string) (model.ClassificationResult, bool) {
	normalized := Normalize(employer)
	if normalized == "" {
		return model.ClassificationResult{}, false
	}

	if res, ok := r.known[normalized]; ok {
		return res, true
	}

	if parent, ok := parentAliases[normalized]; ok {
		if res, found := r.known[parent]; found {
			res.MatchType = model.MatchAlias
			res.MatchedFirm = parent
			return res, true
		}
	}

	return model.ClassificationResult{}, false
}
