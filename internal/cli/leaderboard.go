package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pacwatch/pacwatch/internal/model"
	"github.com/pacwatch/pacwatch/internal/score"
	"github.com/pacwatch/pacwatch/internal/store"
)

var (
	lbDimension string
	lbTop       int
)

// leaderboardCmd represents the leaderboard command
var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Rank officials by an influence score dimension",
	Long: `Leaderboard ranks the stored officials on one score dimension. Run the
pipeline first; unscored officials rank as zero.

Dimensions: composite, scale, concentration, personal.

Example:
  pacwatch leaderboard
  pacwatch leaderboard --by concentration --top 25`,
	RunE: runLeaderboard,
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)

	leaderboardCmd.Flags().StringVar(&lbDimension, "by", model.DimensionComposite, "score dimension to rank on")
	leaderboardCmd.Flags().IntVar(&lbTop, "top", 10, "number of officials to show")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	officials, err := store.NewOfficialsStore(filepath.Join(cfg.DataDir, "officials.json")).Load()
	if err != nil {
		return err
	}
	if len(officials) == 0 {
		return fmt.Errorf("officials store is empty; run the pipeline first")
	}

	entries, err := score.Leaderboard(officials, lbDimension, lbTop)
	if err != nil {
		return err
	}

	fmt.Printf("Top %d by %s\n\n", len(entries), lbDimension)
	for i, e := range entries {
		o := e.Official
		estimated := ""
		if o.Influence != nil && o.Influence.Estimated {
			estimated = " (estimated)"
		}
		fmt.Printf("%3d. %6.1f  %s (%s-%s, %s)%s\n", i+1, e.Score, o.Name, o.Party, o.State, o.Chamber, estimated)
	}
	return nil
}
