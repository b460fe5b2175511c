package model

// BulkKind identifies one of the publisher's bulk file types
type BulkKind string

const (
	KindCommitteeMaster        BulkKind = "committee_master"
	KindCandidateMaster        BulkKind = "candidate_master"
	KindPACToCandidate         BulkKind = "pac_to_candidate"
	KindIndividualContribution BulkKind = "individual_contribution"
)

// AllBulkKinds lists every file type fetched per cycle
var AllBulkKinds = []BulkKind{
	KindCommitteeMaster,
	KindCandidateMaster,
	KindPACToCandidate,
	KindIndividualContribution,
}

// Committee is one row of the committee master file
type Committee struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Designation  string `json:"designation"`
	Party        string `json:"party,omitempty"`
	ConnectedOrg string `json:"connected_org,omitempty"`
	CandidateID  string `json:"candidate_id,omitempty"`
}

// traditionalPACTypes is the committee-type subset that participates in PAC
// aggregation. Super PACs, party committees and candidate committees are
// parsed but excluded.
var traditionalPACTypes = map[string]bool{
	"Q": true, // qualified PAC
	"N": true, // non-qualified PAC
	"V": true, // hybrid PAC, non-qualified
	"W": true, // hybrid PAC, qualified
}

// IsTraditionalPAC reports whether the committee counts toward PAC totals
func (c *Committee) IsTraditionalPAC() bool {
	return traditionalPACTypes[c.Type]
}

// Candidate is one row of the candidate master file. Used only as a match
// target during crosswalk fallback.
type Candidate struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Party        string `json:"party,omitempty"`
	State        string `json:"state"`
	Office       string `json:"office"` // "H" or "S"
	District     string `json:"district,omitempty"`
	ElectionYear int    `json:"election_year"`
}
