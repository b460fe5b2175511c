package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pacwatch/pacwatch/internal/crosswalk"
	"github.com/pacwatch/pacwatch/internal/model"
	"github.com/pacwatch/pacwatch/internal/store"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and clear the persistent caches",
}

var cacheClearKind string

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached data",
	Long: `Clear removes cached data so the next run recomputes it. Kinds:

  classification  cached committee/employer classifications
  crosswalk       cached identity resolutions and the downloaded mapping
  bulk            downloaded bulk files (re-fetched on next run)
  all             everything above

Example:
  pacwatch cache clear --kind classification
  pacwatch cache clear --kind all`,
	RunE: runCacheClear,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheClearCmd.Flags().StringVar(&cacheClearKind, "kind", "all", "cache kind to clear")
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cacheDir := filepath.Join(cfg.DataDir, "cache")

	clearClassification := func() error {
		return store.NewKeyedCache[model.ClassificationResult](filepath.Join(cacheDir, "classification.json")).Clear()
	}
	clearCrosswalk := func() error {
		if err := store.NewKeyedCache[crosswalk.Entry](filepath.Join(cacheDir, "crosswalk.json")).Clear(); err != nil {
			return err
		}
		return os.RemoveAll(filepath.Join(cacheDir, "http"))
	}
	clearBulk := func() error {
		return os.RemoveAll(filepath.Join(cfg.DataDir, "bulk"))
	}

	switch cacheClearKind {
	case "classification":
		err = clearClassification()
	case "crosswalk":
		err = clearCrosswalk()
	case "bulk":
		err = clearBulk()
	case "all":
		for _, fn := range []func() error{clearClassification, clearCrosswalk, clearBulk} {
			if err = fn(); err != nil {
				break
			}
		}
	default:
		return fmt.Errorf("unknown cache kind %q (classification, crosswalk, bulk, all)", cacheClearKind)
	}

	if err != nil {
		return fmt.Errorf("clear %s cache: %w", cacheClearKind, err)
	}
	fmt.Printf("Cleared %s cache\n", cacheClearKind)
	return nil
}
