// Package fecparse stream-reads the publisher's pipe-delimited bulk files.
// Files carry no header row, use a fixed column order per kind, and are
// encoded in windows-1252.
package fecparse

// CommitteeLayout is the versioned column-index map for the committee
// master file. It must exactly match the publisher's documented order.
type CommitteeLayout struct {
	ID           int
	Name         int
	Designation  int
	Type         int
	Party        int
	ConnectedOrg int
	CandidateID  int
	MinColumns   int
}

// CandidateLayout is the column-index map for the candidate master file
type CandidateLayout struct {
	ID           int
	Name         int
	Party        int
	ElectionYear int
	State        int
	Office       int
	District     int
	MinColumns   int
}

// TransactionLayout is the column-index map shared by the PAC-to-candidate
// and individual-contribution files. CandidateID is -1 for files that carry
// no candidate column (individual contributions link via the recipient
// committee instead).
type TransactionLayout struct {
	CommitteeID int
	EntityType  int
	Name        int
	Employer    int
	Occupation  int
	Date        int
	Amount      int
	CandidateID int
	MinColumns  int
}

// Current layouts. The publisher has kept these column positions stable
// across recent cycles; a layout bump gets a new variable, never an edit.
var (
	// Committee master: 15 columns.
	CommitteeLayoutV1 = CommitteeLayout{
		ID:           0,
		Name:         1,
		Designation:  8,
		Type:         9,
		Party:        10,
		ConnectedOrg: 13,
		CandidateID:  14,
		MinColumns:   15,
	}

	// Candidate master: 15 columns.
	CandidateLayoutV1 = CandidateLayout{
		ID:           0,
		Name:         1,
		Party:        2,
		ElectionYear: 3,
		State:        4,
		Office:       5,
		District:     6,
		MinColumns:   7,
	}

	// PAC to candidate: 22 columns, candidate ID at 16.
	PACToCandidateLayoutV1 = TransactionLayout{
		CommitteeID: 0,
		EntityType:  6,
		Name:        7,
		Employer:    11,
		Occupation:  12,
		Date:        13,
		Amount:      14,
		CandidateID: 16,
		MinColumns:  17,
	}

	// Individual contributions: 21 columns, no candidate column.
	IndividualLayoutV1 = TransactionLayout{
		CommitteeID: 0,
		EntityType:  6,
		Name:        7,
		Employer:    11,
		Occupation:  12,
		Date:        13,
		Amount:      14,
		CandidateID: -1,
		MinColumns:  15,
	}
)
