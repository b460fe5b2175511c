package firms

import (
	"testing"

	"github.com/pacwatch/pacwatch/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"WELLS FARGO BANK", "WELLS FARGO"},
		{"Wells Fargo & Company", "WELLS FARGO"},
		{"GOLDMAN SACHS GROUP", "GOLDMAN SACHS"},
		{"JPMORGAN CHASE & CO.", "JPMORGAN CHASE"},
		{"ACME MORTGAGE, INC.", "ACME MORTGAGE"},
		{"FIRST FEDERAL SAVINGS BANK", "FIRST FEDERAL"},
		{"WELLS FARGO BANK.", "WELLS FARGO"},
		{"GOLDMAN SACHS GROUP.", "GOLDMAN SACHS"},
		{"ACME L.P", "ACME"},
		{"  BLACKROCK,   INC  ", "BLACKROCK"},
		{"U.S. BANCORP", "US BANCORP"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_LongestSuffixFirst(t *testing.T) {
	// " SAVINGS BANK" must come off as one unit; stripping " BANK" first
	// would leave "SAVINGS" dangling.
	if got := Normalize("HOMETOWN SAVINGS BANK"); got != "HOMETOWN" {
		t.Errorf("expected HOMETOWN, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	names := []string{
		"WELLS FARGO BANK",
		"GOLDMAN SACHS GROUP, INC.",
		"FIRST FEDERAL SAVINGS BANK",
		"CHASE BANK NA",
		"E*TRADE FINANCIAL, LLC",
		"NATIONAL CATTLEMEN ASSOCIATION",
		// Trailing punctuation can expose another strippable suffix once
		// removed; a single pass would stop at "FIRST NATIONAL BANK".
		"FIRST NATIONAL BANK.",
		"GOLDMAN SACHS GROUP.",
		"ACME L.P",
	}
	for _, name := range names {
		once := Normalize(name)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", name, once, twice)
		}
	}
}

func TestResolveParent(t *testing.T) {
	if got := ResolveParent("CHASE BANK"); got != "JPMORGAN CHASE" {
		t.Errorf("expected JPMORGAN CHASE, got %q", got)
	}
	if got := ResolveParent("MERRILL LYNCH & CO"); got != "BANK OF AMERICA" {
		t.Errorf("expected BANK OF AMERICA, got %q", got)
	}
	// Unknown names come back normalized but unchanged.
	if got := ResolveParent("MAIN STREET HARDWARE, INC"); got != "MAIN STREET HARDWARE" {
		t.Errorf("expected normalized passthrough, got %q", got)
	}
}

func TestMatchEmployer_DirectMatch(t *testing.T) {
	r := NewResolver()

	res, ok := r.MatchEmployer("WELLS FARGO BANK")
	if !ok {
		t.Fatal("expected match")
	}
	if res.MatchedFirm != "WELLS FARGO" {
		t.Errorf("matched firm: %q", res.MatchedFirm)
	}
	if res.Sector != model.SectorBanking {
		t.Errorf("sector: %q", res.Sector)
	}
	if res.MatchType != model.MatchExact {
		t.Errorf("match type: %q", res.MatchType)
	}
}

func TestMatchEmployer_AliasToParent(t *testing.T) {
	r := NewResolver()

	res, ok := r.MatchEmployer("CHASE BANK")
	if !ok {
		t.Fatal("expected alias match")
	}
	if res.MatchedFirm != "JPMORGAN CHASE" {
		t.Errorf("matched firm: %q", res.MatchedFirm)
	}
	if res.MatchType != model.MatchAlias {
		t.Errorf("match type: %q", res.MatchType)
	}
}

func TestMatchEmployer_DirtyEmployerString(t *testing.T) {
	r := NewResolver()

	res, ok := r.MatchEmployer("WELLS FARGO BANK.")
	if !ok {
		t.Fatal("expected match for employer with trailing punctuation")
	}
	if res.MatchedFirm != "WELLS FARGO" {
		t.Errorf("matched firm: %q", res.MatchedFirm)
	}

	res, ok = r.MatchEmployer("CHASE BANK, N.A.")
	if !ok {
		t.Fatal("expected alias match for dirty subsidiary name")
	}
	if res.MatchedFirm != "JPMORGAN CHASE" {
		t.Errorf("matched firm: %q", res.MatchedFirm)
	}
}

func TestParentAliases_KeysAreReachable(t *testing.T) {
	// MatchEmployer and ResolveParent look aliases up by normalized name,
	// so a key that does not survive Normalize can never be hit.
	for key := range parentAliases {
		if got := Normalize(key); got != key {
			t.Errorf("alias key %q is unreachable; normalizes to %q", key, got)
		}
	}
}

func TestMatchEmployer_NoFuzzyMatching(t *testing.T) {
	r := NewResolver()

	// Close but not exact; precision over recall means no match.
	if _, ok := r.MatchEmployer("WELLS FARGO ADVISORS OF TEXAS"); ok {
		t.Error("partial names must not match")
	}
	if _, ok := r.MatchEmployer("SELF EMPLOYED"); ok {
		t.Error("unrelated employers must not match")
	}
}

func TestAddFirm_GrowsKnownSet(t *testing.T) {
	r := NewResolver()

	r.AddFirm("HOMETOWN MORTGAGE, INC", model.ClassificationResult{
		IsFinancial: true,
		Sector:      model.SectorRealEstate,
		Subsector:   "mortgage",
		Confidence:  model.ConfidenceMedium,
		MatchType:   model.MatchKeyword,
	})

	res, ok := r.MatchEmployer("HOMETOWN MORTGAGE")
	if !ok {
		t.Fatal("expected match after AddFirm")
	}
	if res.Sector != model.SectorRealEstate {
		t.Errorf("sector: %q", res.Sector)
	}
}

func TestAddFirm_IgnoresNonFinancial(t *testing.T) {
	r := NewResolver()
	before := r.KnownFirms()

	r.AddFirm("SOME ADVOCACY GROUP", model.NotFinancial())
	if r.KnownFirms() != before {
		t.Error("non-financial orgs must not enter the known-firm set")
	}
}
