package model

import "time"

// Chamber values used on officials and during crosswalk pool filtering
const (
	ChamberHouse  = "house"
	ChamberSenate = "senate"
)

// TradeOwner values for disclosed trades
const (
	OwnerSelf      = "self"
	OwnerSpouse    = "spouse"
	OwnerDependent = "dependent"
)

// Trade is one disclosed securities transaction, supplied by the external
// disclosure feed and preserved across pipeline runs.
type Trade struct {
	Ticker    string    `json:"ticker"`
	Subsector string    `json:"subsector,omitempty"`
	MinAmount float64   `json:"min_amount"`
	Date      time.Time `json:"date"`
	Owner     string    `json:"owner"` // self, spouse, dependent
}

// Contributor is one entry of a top-contributor summary
type Contributor struct {
	Name   string  `json:"name"`
	Sector string  `json:"sector,omitempty"`
	Amount float64 `json:"amount"`
}

// ContributionSummary holds everything the aggregator computes for one
// official. The whole struct is pipeline-owned and rebuilt from scratch
// every run.
type ContributionSummary struct {
	TotalPAC        float64            `json:"total_pac"`
	FinancialPAC    float64            `json:"financial_pac"`
	TotalIndiv      float64            `json:"total_individual"`
	FinancialIndiv  float64            `json:"financial_individual"`
	SectorAmounts   map[string]float64 `json:"sector_amounts,omitempty"`
	SubsectorAmount map[string]float64 `json:"subsector_amounts,omitempty"`
	TopPACs         []Contributor      `json:"top_pacs,omitempty"`
	TopEmployers    []Contributor      `json:"top_employers,omitempty"`
	HHI             *HHIResult         `json:"hhi,omitempty"`
}

// Official is the canonical record for one elected member. It is owned by
// the pipeline, mutated in place each run, and persisted in the officials
// store between runs.
type Official struct {
	LegislatorID string `json:"legislator_id"`
	Name         string `json:"name"`
	Party        string `json:"party,omitempty"`
	State        string `json:"state"`
	Chamber      string `json:"chamber"`
	District     string `json:"district,omitempty"`

	FECCandidateID   string   `json:"fec_candidate_id,omitempty"`
	Committees       []string `json:"committees,omitempty"`
	FinanceCommittee bool     `json:"finance_committee"`

	// Enrichment from the wealth/disclosure collaborators; never reset.
	Trades      []Trade `json:"trades,omitempty"`
	NetWorthMin float64 `json:"net_worth_min,omitempty"`
	NetWorthMax float64 `json:"net_worth_max,omitempty"`

	Contributions ContributionSummary `json:"contributions"`
	Influence     *InfluenceScore     `json:"influence,omitempty"`
}

// ResetEnrichment clears every pipeline-computed field so a re-run can never
// double count. Crosswalk IDs and external enrichment survive.
func (o *Official) ResetEnrichment() {
	o.Contributions = ContributionSummary{}
	o.Influence = nil
}

// NetWorthKnown reports whether the wealth service supplied an estimate
func (o *Official) NetWorthKnown() bool {
	return o.NetWorthMax > 0
}

// NetWorthMid returns the midpoint of the estimated range
func (o *Official) NetWorthMid() float64 {
	if !o.NetWorthKnown() {
		return 0
	}
	return (o.NetWorthMin + o.NetWorthMax) / 2
}
