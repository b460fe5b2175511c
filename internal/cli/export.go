package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pacwatch/pacwatch/internal/store"
)

var exportOut string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the flattened CSV table from the stored officials",
	Long: `Export regenerates the analyst-facing CSV from the officials store
without re-running the pipeline.

Example:
  pacwatch export
  pacwatch export --out reports/officials.csv`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output CSV path (default from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cfg.Output.CSVPath
	if exportOut != "" {
		out = exportOut
	}

	officials, err := store.NewOfficialsStore(filepath.Join(cfg.DataDir, "officials.json")).Load()
	if err != nil {
		return err
	}
	if len(officials) == 0 {
		return fmt.Errorf("officials store is empty; run the pipeline first")
	}

	if err := store.ExportCSV(out, officials); err != nil {
		return err
	}
	fmt.Printf("Wrote %d officials to %s\n", len(officials), out)
	return nil
}
