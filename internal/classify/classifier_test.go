package classify

import (
	"path/filepath"
	"testing"

	"github.com/pacwatch/pacwatch/internal/model"
	"github.com/pacwatch/pacwatch/internal/store"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	cache := store.NewKeyedCache[model.ClassificationResult](filepath.Join(t.TempDir(), "classify.json"))
	return New(cache)
}

func TestClassify_SpecificKeyword(t *testing.T) {
	c := newTestClassifier(t)

	res := c.Classify("GOLDMAN SACHS PAC", "GOLDMAN SACHS GROUP")
	if !res.IsFinancial {
		t.Fatal("expected financial")
	}
	if res.Sector != model.SectorInvestment || res.Subsector != "investment_bank" {
		t.Errorf("sector/subsector: %s/%s", res.Sector, res.Subsector)
	}
	if res.Confidence != model.ConfidenceHigh {
		t.Errorf("expected high confidence for long keyword, got %s", res.Confidence)
	}
	if res.MatchType != model.MatchKeyword {
		t.Errorf("match type: %s", res.MatchType)
	}
}

func TestClassify_ConnectedOrgOnly(t *testing.T) {
	c := newTestClassifier(t)

	res := c.Classify("EMPLOYEES POLITICAL ACTION COMMITTEE", "WELLS FARGO & COMPANY")
	if !res.IsFinancial || res.Sector != model.SectorBanking {
		t.Errorf("expected banking via connected org, got %+v", res)
	}
}

func TestClassify_ExclusionPrecedence(t *testing.T) {
	c := newTestClassifier(t)

	// "BANK" generic hint and even specific keywords must not override an
	// exclusion.
	tests := []string{
		"FOOD BANK OF AMERICA",
		"BLOOD BANK WORKERS COMMITTEE",
		"AMERICAN FEDERATION OF TEACHERS",
		"CAPITAL AREA FOOD BANK INVESTMENT FUND",
	}
	for _, name := range tests {
		res := c.Classify(name, "")
		if res.IsFinancial {
			t.Errorf("%q: exclusion must force non-financial, got %+v", name, res)
		}
		if res.Confidence != model.ConfidenceNone || res.MatchType != model.MatchNone {
			t.Errorf("%q: negative result must be none/none, got %s/%s", name, res.Confidence, res.MatchType)
		}
		if res.Sector != "" {
			t.Errorf("%q: non-financial result must not carry a sector", name)
		}
	}
}

func TestClassify_GenericHintLowConfidence(t *testing.T) {
	c := newTestClassifier(t)

	res := c.Classify("FIRST BANK OF TULSA EMPLOYEES", "")
	if !res.IsFinancial {
		t.Fatal("expected generic BANK token match")
	}
	if res.Confidence != model.ConfidenceLow {
		t.Errorf("expected low confidence, got %s", res.Confidence)
	}
	if res.Sector != model.SectorBanking {
		t.Errorf("sector: %s", res.Sector)
	}
}

func TestClassify_GenericHintIsTokenNotSubstring(t *testing.T) {
	c := newTestClassifier(t)

	res := c.Classify("BURBANK STUDIOS COMMITTEE", "")
	if res.IsFinancial {
		t.Errorf("BURBANK must not match the BANK token, got %+v", res)
	}
}

func TestClassify_NoMatchIsNegative(t *testing.T) {
	c := newTestClassifier(t)

	res := c.Classify("NATIONAL CATTLEMEN ASSOCIATION", "")
	if res.IsFinancial || res.MatchType != model.MatchNone {
		t.Errorf("expected negative result, got %+v", res)
	}
}

func TestClassify_MediumConfidenceForShortKeyword(t *testing.T) {
	c := newTestClassifier(t)

	// "MORTGAGE" is 8 chars, at the threshold, so medium.
	res := c.Classify("HOMETOWN MORTGAGE COMPANY", "")
	if !res.IsFinancial || res.Confidence != model.ConfidenceMedium {
		t.Errorf("expected medium confidence, got %+v", res)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := newTestClassifier(t)

	first := c.Classify("Goldman Sachs PAC", "Goldman Sachs Group")
	second := c.Classify("GOLDMAN SACHS PAC", "GOLDMAN SACHS GROUP")
	if first != second {
		t.Errorf("case-normalized key must hit the cache: %+v vs %+v", first, second)
	}
	if c.CacheSize() != 1 {
		t.Errorf("expected one cache entry, got %d", c.CacheSize())
	}
}
