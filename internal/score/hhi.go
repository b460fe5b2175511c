// Package score computes the concentration index and the per-official
// influence scores.
package score

import (
	"sort"

	"github.com/pacwatch/pacwatch/internal/model"
)

// ComputeHHI computes a Herfindahl-Hirschman Index over the combined sector
// distribution of one official's financial contributions. Shares are
// percentages summing to 100; HHI ranges 0..10000.
func ComputeHHI(sectorAmounts map[string]float64) model.HHIResult {
	var total float64
	for _, amount := range sectorAmounts {
		if amount > 0 {
			total += amount
		}
	}
	if total <= 0 {
		return model.HHIResult{HHI: 0, Label: model.HHIUnconcentrated}
	}

	shares := make(map[string]float64, len(sectorAmounts))
	var hhi float64
	var dominant string
	var dominantShare float64

	// Deterministic dominant-sector tie break: iterate sectors in order.
	sectors := make([]string, 0, len(sectorAmounts))
	for sector := range sectorAmounts {
		sectors = append(sectors, sector)
	}
	sort.Strings(sectors)

	for _, sector := range sectors {
		amount := sectorAmounts[sector]
		if amount <= 0 {
			continue
		}
		share := amount / total * 100
		shares[sector] = share
		hhi += share * share
		if share > dominantShare {
			dominant = sector
			dominantShare = share
		}
	}

	return model.HHIResult{
		Total:          total,
		Shares:         shares,
		DominantSector: dominant,
		DominantShare:  dominantShare,
		HHI:            hhi,
		Label:          hhiLabel(hhi),
	}
}

// hhiLabel maps an HHI value to its informational bucket
func hhiLabel(hhi float64) string {
	switch {
	case hhi > 2500:
		return model.HHIConcentrated
	case hhi >= 1500:
		return model.HHIModerate
	default:
		return model.HHIUnconcentrated
	}
}
