package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pacwatch/pacwatch/internal/crosswalk"
	"github.com/pacwatch/pacwatch/internal/store"
)

// crosswalkCmd represents the crosswalk command
var crosswalkCmd = &cobra.Command{
	Use:   "crosswalk <legislator-id>",
	Short: "Show the cached identity resolution for one official",
	Long: `Crosswalk prints how an official's campaign-finance candidate ID was
resolved on the last run: from the trusted bulk mapping, from fallback
name matching, or not at all. Clear the crosswalk cache to force a fresh
resolution on the next run.

Example:
  pacwatch crosswalk A000370`,
	Args: cobra.ExactArgs(1),
	RunE: runCrosswalk,
}

func init() {
	rootCmd.AddCommand(crosswalkCmd)
}

func runCrosswalk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	legislatorID := args[0]

	officials, err := store.NewOfficialsStore(filepath.Join(cfg.DataDir, "officials.json")).Load()
	if err != nil {
		return err
	}

	for _, o := range officials {
		if o.LegislatorID != legislatorID {
			continue
		}
		fmt.Printf("Official:     %s (%s-%s, %s)\n", o.Name, o.Party, o.State, o.Chamber)
		if o.FECCandidateID == "" {
			fmt.Println("Candidate ID: unresolved (excluded from aggregation)")
		} else {
			fmt.Printf("Candidate ID: %s\n", o.FECCandidateID)
		}

		results := store.NewKeyedCache[crosswalk.Entry](filepath.Join(cfg.DataDir, "cache", "crosswalk.json"))
		if err := results.Load(); err != nil {
			return err
		}
		if entry, ok := results.Get(store.Key(legislatorID)); ok {
			fmt.Printf("Source:       %s\n", entry.Source)
		} else {
			fmt.Println("Source:       not yet resolved (run the pipeline first)")
		}
		return nil
	}

	return fmt.Errorf("no official with legislator ID %q in the store", legislatorID)
}
