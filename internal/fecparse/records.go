package fecparse

import (
	"strconv"
	"strings"
	"time"

	"github.com/pacwatch/pacwatch/internal/model"
)

// SkipReason explains why a row was discarded instead of parsed. Rows are
// skipped individually; a bad row never aborts the file.
type SkipReason int

const (
	SkipNone SkipReason = iota
	SkipShortRow
	SkipBadAmount
	SkipBadDate
)

func (s SkipReason) String() string {
	switch s {
	case SkipNone:
		return "none"
	case SkipShortRow:
		return "short_row"
	case SkipBadAmount:
		return "bad_amount"
	case SkipBadDate:
		return "bad_date"
	default:
		return "unknown"
	}
}

// SkipCounts tallies discarded rows per reason for run reporting
type SkipCounts map[SkipReason]int

// Add merges another tally into this one
func (c SkipCounts) Add(other SkipCounts) {
	for reason, n := range other {
		c[reason] += n
	}
}

// Total returns the number of skipped rows
func (c SkipCounts) Total() int {
	var total int
	for _, n := range c {
		total += n
	}
	return total
}

// Transaction is one contribution row from either transaction file kind.
// Ephemeral: consumed by the aggregator, never persisted.
type Transaction struct {
	CommitteeID string
	Name        string
	Employer    string
	Occupation  string
	CandidateID string
	Amount      float64
	Date        time.Time
}

// ParseCommittee parses one committee master row
func ParseCommittee(row []string, layout CommitteeLayout) (model.Committee, SkipReason) {
	if len(row) < layout.MinColumns {
		return model.Committee{}, SkipShortRow
	}
	return model.Committee{
		ID:           strings.TrimSpace(row[layout.ID]),
		Name:         strings.TrimSpace(row[layout.Name]),
		Designation:  strings.TrimSpace(row[layout.Designation]),
		Type:         strings.TrimSpace(row[layout.Type]),
		Party:        strings.TrimSpace(row[layout.Party]),
		ConnectedOrg: strings.TrimSpace(row[layout.ConnectedOrg]),
		CandidateID:  strings.TrimSpace(row[layout.CandidateID]),
	}, SkipNone
}

// ParseCandidate parses one candidate master row
func ParseCandidate(row []string, layout CandidateLayout) (model.Candidate, SkipReason) {
	if len(row) < layout.MinColumns {
		return model.Candidate{}, SkipShortRow
	}

	// Election year is informational for matching; an unparseable year is
	// kept as zero rather than skipping the row.
	year, _ := strconv.Atoi(strings.TrimSpace(row[layout.ElectionYear]))

	return model.Candidate{
		ID:           strings.TrimSpace(row[layout.ID]),
		Name:         strings.TrimSpace(row[layout.Name]),
		Party:        strings.TrimSpace(row[layout.Party]),
		ElectionYear: year,
		State:        strings.TrimSpace(row[layout.State]),
		Office:       strings.TrimSpace(row[layout.Office]),
		District:     strings.TrimSpace(row[layout.District]),
	}, SkipNone
}

// ParseTransaction parses one contribution row. Unparseable amount or date
// skips the row.
func ParseTransaction(row []string, layout TransactionLayout) (Transaction, SkipReason) {
	if len(row) < layout.MinColumns {
		return Transaction{}, SkipShortRow
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(row[layout.Amount]), 64)
	if err != nil {
		return Transaction{}, SkipBadAmount
	}

	date, ok := parseDate(strings.TrimSpace(row[layout.Date]))
	if !ok {
		return Transaction{}, SkipBadDate
	}

	tx := Transaction{
		CommitteeID: strings.TrimSpace(row[layout.CommitteeID]),
		Name:        strings.TrimSpace(row[layout.Name]),
		Employer:    strings.TrimSpace(row[layout.Employer]),
		Occupation:  strings.TrimSpace(row[layout.Occupation]),
		Amount:      amount,
		Date:        date,
	}
	if layout.CandidateID >= 0 {
		tx.CandidateID = strings.TrimSpace(row[layout.CandidateID])
	}
	return tx, SkipNone
}

// parseDate parses the publisher's MMDDYYYY transaction date
func parseDate(raw string) (time.Time, bool) {
	if len(raw) != 8 {
		return time.Time{}, false
	}
	t, err := time.Parse("01022006", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EachTransaction streams every parseable transaction in the file to fn and
// returns the skip tally.
func EachTransaction(path string, layout TransactionLayout, fn func(Transaction)) (SkipCounts, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	skips := make(SkipCounts)
	for {
		row, ok := r.Next()
		if !ok {
			break
		}
		tx, reason := ParseTransaction(row, layout)
		if reason != SkipNone {
			skips[reason]++
			continue
		}
		fn(tx)
	}

	return skips, r.Err()
}

// EachCommittee streams every parseable committee master row to fn
func EachCommittee(path string, layout CommitteeLayout, fn func(model.Committee)) (SkipCounts, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	skips := make(SkipCounts)
	for {
		row, ok := r.Next()
		if !ok {
			break
		}
		cm, reason := ParseCommittee(row, layout)
		if reason != SkipNone {
			skips[reason]++
			continue
		}
		fn(cm)
	}

	return skips, r.Err()
}

// EachCandidate streams every parseable candidate master row to fn
func EachCandidate(path string, layout CandidateLayout, fn func(model.Candidate)) (SkipCounts, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	skips := make(SkipCounts)
	for {
		row, ok := r.Next()
		if !ok {
			break
		}
		cn, reason := ParseCandidate(row, layout)
		if reason != SkipNone {
			skips[reason]++
			continue
		}
		fn(cn)
	}

	return skips, r.Err()
}
