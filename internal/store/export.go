package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/pacwatch/pacwatch/internal/model"
)

// exportHeader is the fixed, documented column set of the flattened export
// table. Downstream report renderers consume this file by position.
var exportHeader = []string{
	"legislator_id",
	"name",
	"party",
	"state",
	"chamber",
	"district",
	"fec_candidate_id",
	"scale_score",
	"concentration_score",
	"personal_involvement_score",
	"composite_score",
	"total_pac",
	"financial_pac",
	"total_individual",
	"financial_individual",
	"hhi",
	"dominant_sector",
	"top_pac_1",
	"top_pac_2",
	"top_pac_3",
	"top_employer_1",
	"top_employer_2",
	"finance_committee",
}

// ExportCSV writes one row per official to path
func ExportCSV(path string, officials []*model.Official) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		_ = f.Close()
		return fmt.Errorf("write header: %w", err)
	}

	for _, o := range officials {
		if err := w.Write(exportRow(o)); err != nil {
			_ = f.Close()
			return fmt.Errorf("write row for %s: %w", o.LegislatorID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush export: %w", err)
	}
	return f.Close()
}

func exportRow(o *model.Official) []string {
	var scale, concentration, personal, composite float64
	if o.Influence != nil {
		scale = o.Influence.Scale
		concentration = o.Influence.Concentration
		personal = o.Influence.Personal
		composite = o.Influence.Composite
	}

	var hhi float64
	var dominant string
	if o.Contributions.HHI != nil {
		hhi = o.Contributions.HHI.HHI
		dominant = o.Contributions.HHI.DominantSector
	}

	return []string{
		o.LegislatorID,
		o.Name,
		o.Party,
		o.State,
		o.Chamber,
		o.District,
		o.FECCandidateID,
		formatScore(scale),
		formatScore(concentration),
		formatScore(personal),
		formatScore(composite),
		formatAmount(o.Contributions.TotalPAC),
		formatAmount(o.Contributions.FinancialPAC),
		formatAmount(o.Contributions.TotalIndiv),
		formatAmount(o.Contributions.FinancialIndiv),
		formatScore(hhi),
		dominant,
		contributorAt(o.Contributions.TopPACs, 0),
		contributorAt(o.Contributions.TopPACs, 1),
		contributorAt(o.Contributions.TopPACs, 2),
		contributorAt(o.Contributions.TopEmployers, 0),
		contributorAt(o.Contributions.TopEmployers, 1),
		strconv.FormatBool(o.FinanceCommittee),
	}
}

func contributorAt(list []model.Contributor, i int) string {
	if i >= len(list) {
		return ""
	}
	return fmt.Sprintf("%s ($%.0f)", list[i].Name, list[i].Amount)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
