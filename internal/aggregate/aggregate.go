// Package aggregate sums matched PAC and individual contributions per
// official within a trailing date window, with per-sector breakdowns of the
// financial subset. Aggregation always starts from a full reset so re-runs
// can never double count.
package aggregate

import (
	"sort"
	"time"

	"github.com/pacwatch/pacwatch/internal/classify"
	"github.com/pacwatch/pacwatch/internal/fecparse"
	"github.com/pacwatch/pacwatch/internal/firms"
	"github.com/pacwatch/pacwatch/internal/model"
)

// topContributors caps the per-official contributor summaries. The export
// table reads three PAC slots and two employer slots.
const topContributors = 5

// Aggregator accumulates contribution streams for one pipeline run
type Aggregator struct {
	classifier *classify.Classifier
	resolver   *firms.Resolver
	now        time.Time
	cutoff     time.Time

	committees map[string]model.Committee
	byFECID    map[string]*model.Official

	pacTotals      map[string]map[string]*model.Contributor // legislator -> PAC name -> running total
	employerTotals map[string]map[string]*model.Contributor
}

// New creates an aggregator with a trailing window of windowMonths ending now
func New(classifier *classify.Classifier, resolver *firms.Resolver, windowMonths int, now time.Time) *Aggregator {
	return &Aggregator{
		classifier:     classifier,
		resolver:       resolver,
		now:            now,
		cutoff:         now.AddDate(0, -windowMonths, 0),
		committees:     make(map[string]model.Committee),
		pacTotals:      make(map[string]map[string]*model.Contributor),
		employerTotals: make(map[string]map[string]*model.Contributor),
	}
}

// AddCommittee indexes one committee master row. Classified financial
// connected organizations grow the resolver's known-firm set.
func (a *Aggregator) AddCommittee(cm model.Committee) {
	a.committees[cm.ID] = cm

	if cm.IsTraditionalPAC() && cm.ConnectedOrg != "" {
		if res := a.classifier.Classify(cm.Name, cm.ConnectedOrg); res.IsFinancial {
			a.resolver.AddFirm(cm.ConnectedOrg, res)
		}
	}
}

// Committees returns the number of indexed committees
func (a *Aggregator) Committees() int {
	return len(a.committees)
}

// Prepare resets every official's computed fields and indexes those with a
// resolved financial ID. Officials without one are retained but excluded.
func (a *Aggregator) Prepare(officials []*model.Official) {
	a.byFECID = make(map[string]*model.Official, len(officials))
	a.pacTotals = make(map[string]map[string]*model.Contributor)
	a.employerTotals = make(map[string]map[string]*model.Contributor)

	for _, o := range officials {
		o.ResetEnrichment()
		if o.FECCandidateID != "" {
			a.byFECID[o.FECCandidateID] = o
		}
	}
}

// inWindow applies the amount and trailing-window filters
func (a *Aggregator) inWindow(tx fecparse.Transaction) bool {
	if tx.Amount <= 0 {
		return false
	}
	if tx.Date.Before(a.cutoff) || tx.Date.After(a.now) {
		return false
	}
	return true
}

// AddPACContribution consumes one PAC-to-candidate row. Only traditional
// PAC committee types participate; other committees are indexed but
// excluded from PAC totals.
func (a *Aggregator) AddPACContribution(tx fecparse.Transaction) {
	if !a.inWindow(tx) {
		return
	}

	official, ok := a.byFECID[tx.CandidateID]
	if !ok {
		return
	}

	cm, ok := a.committees[tx.CommitteeID]
	if !ok || !cm.IsTraditionalPAC() {
		return
	}

	official.Contributions.TotalPAC += tx.Amount

	res := a.classifier.Classify(cm.Name, cm.ConnectedOrg)
	if !res.IsFinancial {
		return
	}

	official.Contributions.FinancialPAC += tx.Amount
	a.addSector(official, res, tx.Amount)
	a.addTop(a.pacTotals, official.LegislatorID, cm.Name, res.Sector, tx.Amount)
}

// AddIndividualContribution consumes one individual-contribution row. The
// row links to an official through the recipient committee's candidate
// link. Employer classification falls back to the occupation field.
func (a *Aggregator) AddIndividualContribution(tx fecparse.Transaction) {
	if !a.inWindow(tx) {
		return
	}

	cm, ok := a.committees[tx.CommitteeID]
	if !ok || cm.CandidateID == "" {
		return
	}
	official, ok := a.byFECID[cm.CandidateID]
	if !ok {
		return
	}

	official.Contributions.TotalIndiv += tx.Amount

	res, matched := a.resolver.MatchEmployer(tx.Employer)
	if !matched {
		res, matched = a.resolver.MatchEmployer(tx.Occupation)
	}
	if !matched {
		return
	}

	official.Contributions.FinancialIndiv += tx.Amount
	a.addSector(official, res, tx.Amount)
	a.addTop(a.employerTotals, official.LegislatorID, res.MatchedFirm, res.Sector, tx.Amount)
}

func (a *Aggregator) addSector(o *model.Official, res model.ClassificationResult, amount float64) {
	if o.Contributions.SectorAmounts == nil {
		o.Contributions.SectorAmounts = make(map[string]float64)
	}
	if o.Contributions.SubsectorAmount == nil {
		o.Contributions.SubsectorAmount = make(map[string]float64)
	}
	o.Contributions.SectorAmounts[res.Sector] += amount
	if res.Subsector != "" {
		o.Contributions.SubsectorAmount[res.Subsector] += amount
	}
}

func (a *Aggregator) addTop(table map[string]map[string]*model.Contributor, legislatorID, name, sector string, amount float64) {
	byName, ok := table[legislatorID]
	if !ok {
		byName = make(map[string]*model.Contributor)
		table[legislatorID] = byName
	}
	if c, ok := byName[name]; ok {
		c.Amount += amount
		return
	}
	byName[name] = &model.Contributor{Name: name, Sector: sector, Amount: amount}
}

// Finalize materializes the per-official top-contributor summaries
func (a *Aggregator) Finalize(officials []*model.Official) {
	for _, o := range officials {
		o.Contributions.TopPACs = rank(a.pacTotals[o.LegislatorID])
		o.Contributions.TopEmployers = rank(a.employerTotals[o.LegislatorID])
	}
}

// rank sorts contributors by amount descending, name ascending on ties for
// reproducible output, and keeps the top few.
func rank(byName map[string]*model.Contributor) []model.Contributor {
	if len(byName) == 0 {
		return nil
	}

	ranked := make([]model.Contributor, 0, len(byName))
	for _, c := range byName {
		ranked = append(ranked, *c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > topContributors {
		ranked = ranked[:topContributors]
	}
	return ranked
}
