package score

import (
	"fmt"
	"sort"

	"github.com/pacwatch/pacwatch/internal/model"
)

// LeaderboardEntry pairs an official with the score it was ranked on
type LeaderboardEntry struct {
	Official *model.Official
	Score    float64
}

// Leaderboard ranks scored officials descending on one score dimension and
// returns the top n. Unscored officials rank as zero.
func Leaderboard(officials []*model.Official, dimension string, n int) ([]LeaderboardEntry, error) {
	pick, err := dimensionPicker(dimension)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(officials))
	for _, o := range officials {
		var v float64
		if o.Influence != nil {
			v = pick(o.Influence)
		}
		entries = append(entries, LeaderboardEntry{Official: o, Score: v})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Official.Name < entries[j].Official.Name
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

func dimensionPicker(dimension string) (func(*model.InfluenceScore) float64, error) {
	switch dimension {
	case model.DimensionScale:
		return func(s *model.InfluenceScore) float64 { return s.Scale }, nil
	case model.DimensionConcentration:
		return func(s *model.InfluenceScore) float64 { return s.Concentration }, nil
	case model.DimensionPersonal:
		return func(s *model.InfluenceScore) float64 { return s.Personal }, nil
	case model.DimensionComposite:
		return func(s *model.InfluenceScore) float64 { return s.Composite }, nil
	default:
		return nil, fmt.Errorf("unknown score dimension %q", dimension)
	}
}
