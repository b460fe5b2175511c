package aggregate

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/pacwatch/pacwatch/internal/classify"
	"github.com/pacwatch/pacwatch/internal/fecparse"
	"github.com/pacwatch/pacwatch/internal/firms"
	"github.com/pacwatch/pacwatch/internal/model"
	"github.com/pacwatch/pacwatch/internal/store"
)

var now = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	cache := store.NewKeyedCache[model.ClassificationResult](filepath.Join(t.TempDir(), "classify.json"))
	return New(classify.New(cache), firms.NewResolver(), 36, now)
}

func goldmanCommittee() model.Committee {
	return model.Committee{
		ID:           "C00350744",
		Name:         "GOLDMAN SACHS PAC",
		Type:         "Q",
		ConnectedOrg: "GOLDMAN SACHS GROUP",
	}
}

func campaignCommittee() model.Committee {
	return model.Committee{
		ID:          "C00800001",
		Name:        "DOE FOR CONGRESS",
		Type:        "H",
		CandidateID: "H4TX22116",
	}
}

func official() *model.Official {
	return &model.Official{
		LegislatorID:   "B000001",
		Name:           "Jane Doe",
		State:          "TX",
		Chamber:        model.ChamberHouse,
		District:       "22",
		FECCandidateID: "H4TX22116",
	}
}

func TestAggregate_FinancialPACScenario(t *testing.T) {
	agg := newTestAggregator(t)
	agg.AddCommittee(goldmanCommittee())

	o := official()
	agg.Prepare([]*model.Official{o})

	agg.AddPACContribution(fecparse.Transaction{
		CommitteeID: "C00350744",
		CandidateID: "H4TX22116",
		Amount:      5000,
		Date:        now.AddDate(0, -2, 0),
	})
	agg.Finalize([]*model.Official{o})

	if o.Contributions.TotalPAC != 5000 {
		t.Errorf("total PAC: %v", o.Contributions.TotalPAC)
	}
	if o.Contributions.FinancialPAC != 5000 {
		t.Errorf("financial PAC: %v", o.Contributions.FinancialPAC)
	}
	if o.Contributions.SectorAmounts[model.SectorInvestment] != 5000 {
		t.Errorf("sector amounts: %v", o.Contributions.SectorAmounts)
	}
	if o.Contributions.SubsectorAmount["investment_bank"] != 5000 {
		t.Errorf("subsector amounts: %v", o.Contributions.SubsectorAmount)
	}
	if len(o.Contributions.TopPACs) != 1 || o.Contributions.TopPACs[0].Name != "GOLDMAN SACHS PAC" {
		t.Errorf("top PACs: %v", o.Contributions.TopPACs)
	}
}

func TestAggregate_NonTraditionalPACExcluded(t *testing.T) {
	agg := newTestAggregator(t)
	agg.AddCommittee(model.Committee{
		ID:           "C00900001",
		Name:         "BIG MONEY SUPER PAC",
		Type:         "O", // super PAC
		ConnectedOrg: "GOLDMAN SACHS GROUP",
	})

	o := official()
	agg.Prepare([]*model.Official{o})
	agg.AddPACContribution(fecparse.Transaction{
		CommitteeID: "C00900001",
		CandidateID: "H4TX22116",
		Amount:      10000,
		Date:        now.AddDate(0, -1, 0),
	})

	if o.Contributions.TotalPAC != 0 {
		t.Errorf("super PAC must be excluded from PAC totals, got %v", o.Contributions.TotalPAC)
	}
}

func TestAggregate_WindowAndAmountFilters(t *testing.T) {
	agg := newTestAggregator(t)
	agg.AddCommittee(goldmanCommittee())

	o := official()
	agg.Prepare([]*model.Official{o})

	for _, tx := range []fecparse.Transaction{
		{CommitteeID: "C00350744", CandidateID: "H4TX22116", Amount: 1000, Date: now.AddDate(0, -40, 0)}, // too old
		{CommitteeID: "C00350744", CandidateID: "H4TX22116", Amount: -500, Date: now.AddDate(0, -1, 0)},  // refund
		{CommitteeID: "C00350744", CandidateID: "H4TX22116", Amount: 0, Date: now.AddDate(0, -1, 0)},     // zero
		{CommitteeID: "C00350744", CandidateID: "H4TX22116", Amount: 2500, Date: now.AddDate(0, 1, 0)},   // future
		{CommitteeID: "C00350744", CandidateID: "H4TX22116", Amount: 2000, Date: now.AddDate(0, -35, 0)}, // counts
	} {
		agg.AddPACContribution(tx)
	}

	if o.Contributions.TotalPAC != 2000 {
		t.Errorf("expected only in-window positive amount, got %v", o.Contributions.TotalPAC)
	}
}

func TestAggregate_IndividualEmployerAndOccupationFallback(t *testing.T) {
	agg := newTestAggregator(t)
	agg.AddCommittee(campaignCommittee())

	o := official()
	agg.Prepare([]*model.Official{o})

	// Employer matches the known-firm set after suffix stripping.
	agg.AddIndividualContribution(fecparse.Transaction{
		CommitteeID: "C00800001",
		Employer:    "WELLS FARGO BANK",
		Occupation:  "BRANCH MANAGER",
		Amount:      250,
		Date:        now.AddDate(0, -3, 0),
	})
	// Employer is noise; occupation field carries the firm.
	agg.AddIndividualContribution(fecparse.Transaction{
		CommitteeID: "C00800001",
		Employer:    "SELF",
		Occupation:  "BLACKROCK",
		Amount:      100,
		Date:        now.AddDate(0, -3, 0),
	})
	// No match either way: counts toward total only.
	agg.AddIndividualContribution(fecparse.Transaction{
		CommitteeID: "C00800001",
		Employer:    "CITY SCHOOL DISTRICT",
		Occupation:  "TEACHER",
		Amount:      50,
		Date:        now.AddDate(0, -3, 0),
	})
	agg.Finalize([]*model.Official{o})

	if o.Contributions.TotalIndiv != 400 {
		t.Errorf("total individual: %v", o.Contributions.TotalIndiv)
	}
	if o.Contributions.FinancialIndiv != 350 {
		t.Errorf("financial individual: %v", o.Contributions.FinancialIndiv)
	}
	if len(o.Contributions.TopEmployers) != 2 || o.Contributions.TopEmployers[0].Name != "WELLS FARGO" {
		t.Errorf("top employers: %v", o.Contributions.TopEmployers)
	}
}

func TestAggregate_ConnectedOrgGrowsKnownFirms(t *testing.T) {
	resolver := firms.NewResolver()
	cache := store.NewKeyedCache[model.ClassificationResult](filepath.Join(t.TempDir(), "classify.json"))
	agg := New(classify.New(cache), resolver, 36, now)

	agg.AddCommittee(model.Committee{
		ID:           "C00700001",
		Name:         "HOMETOWN MORTGAGE PAC",
		Type:         "Q",
		ConnectedOrg: "HOMETOWN MORTGAGE CORP",
	})

	if _, ok := resolver.MatchEmployer("HOMETOWN MORTGAGE"); !ok {
		t.Error("classified connected org should join the known-firm set")
	}
}

func TestAggregate_RerunIsIdempotent(t *testing.T) {
	agg := newTestAggregator(t)
	agg.AddCommittee(goldmanCommittee())
	agg.AddCommittee(campaignCommittee())

	o := official()
	officials := []*model.Official{o}

	run := func() model.ContributionSummary {
		agg.Prepare(officials)
		agg.AddPACContribution(fecparse.Transaction{
			CommitteeID: "C00350744", CandidateID: "H4TX22116", Amount: 5000, Date: now.AddDate(0, -2, 0),
		})
		agg.AddIndividualContribution(fecparse.Transaction{
			CommitteeID: "C00800001", Employer: "WELLS FARGO BANK", Amount: 250, Date: now.AddDate(0, -2, 0),
		})
		agg.Finalize(officials)
		return o.Contributions
	}

	first := run()
	second := run()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-run changed totals:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if second.TotalPAC != 5000 || second.TotalIndiv != 250 {
		t.Errorf("unexpected totals after rerun: %+v", second)
	}
}

func TestAggregate_UnresolvedOfficialExcluded(t *testing.T) {
	agg := newTestAggregator(t)
	agg.AddCommittee(goldmanCommittee())

	o := official()
	o.FECCandidateID = "" // crosswalk miss
	agg.Prepare([]*model.Official{o})

	agg.AddPACContribution(fecparse.Transaction{
		CommitteeID: "C00350744", CandidateID: "H4TX22116", Amount: 5000, Date: now.AddDate(0, -2, 0),
	})

	if o.Contributions.TotalPAC != 0 {
		t.Errorf("official without financial ID must be excluded, got %v", o.Contributions.TotalPAC)
	}
}
