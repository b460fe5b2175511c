package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pacwatch/pacwatch/internal/pipeline"
)

var (
	runCycles     []int
	runWindow     int
	runCSV        string
	runReportPath string
	runTimeout    time.Duration
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the full aggregation and scoring pipeline",
	Long: `Run executes every pipeline stage in order:
- Ensure the bulk files for each configured cycle (cached after first run)
- Index committees and candidates
- Resolve each official to a campaign-finance candidate ID
- Aggregate PAC and individual contributions in the trailing window
- Compute sector concentration and influence scores
- Write the officials store, the CSV export, and the run report

A cycle whose files cannot be fetched is skipped with a warning; the run
continues on the remaining cycles.

Example:
  pacwatch run
  pacwatch run --cycles 2024,2026 --window 36
  pacwatch run --csv out/officials.csv --report out/run.json`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntSliceVar(&runCycles, "cycles", nil, "election cycles to process (default from config)")
	runCmd.Flags().IntVar(&runWindow, "window", 0, "trailing window in months (default from config)")
	runCmd.Flags().StringVar(&runCSV, "csv", "", "CSV export path (default from config)")
	runCmd.Flags().StringVar(&runReportPath, "report", "", "run report JSON path (default from config)")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 2*time.Hour, "overall run timeout")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(runCycles) > 0 {
		cfg.Cycles = runCycles
	}
	if runWindow > 0 {
		cfg.WindowMonths = runWindow
	}
	if runCSV != "" {
		cfg.Output.CSVPath = runCSV
	}
	if runReportPath != "" {
		cfg.Output.ReportPath = runReportPath
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Cycles: %v\n", cfg.Cycles)
		fmt.Fprintf(os.Stderr, "Window: %d months\n", cfg.WindowMonths)
		fmt.Fprintf(os.Stderr, "Data dir: %s\n", cfg.DataDir)
		fmt.Fprintln(os.Stderr)
	}

	report, err := pipeline.New(cfg).Run(ctx)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	report.Render(os.Stdout)
	return nil
}
