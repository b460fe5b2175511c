package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pacwatch/pacwatch/internal/fecparse"
)

// RunReport summarizes one pipeline run for the report artifact and the
// terminal summary.
type RunReport struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Cycles     []int     `json:"cycles"`

	Officials int `json:"officials"`
	Resolved  int `json:"resolved"`
	Scored    int `json:"scored"`

	FilesDownloaded int `json:"files_downloaded"`
	FilesCached     int `json:"files_cached"`
	FilesFailed     int `json:"files_failed"`

	PACRows        int            `json:"pac_rows"`
	IndividualRows int            `json:"individual_rows"`
	RowsSkipped    map[string]int `json:"rows_skipped,omitempty"`
}

// NewRunReport starts the clock on a new run
func NewRunReport(cycles []int) *RunReport {
	return &RunReport{
		StartedAt:   time.Now().UTC(),
		Cycles:      cycles,
		RowsSkipped: make(map[string]int),
	}
}

// Finish records the end timestamp
func (r *RunReport) Finish() {
	r.FinishedAt = time.Now().UTC()
}

// Duration returns the elapsed run time
func (r *RunReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// SkippedTotal returns the number of rows discarded across all files
func (r *RunReport) SkippedTotal() int {
	var total int
	for _, n := range r.RowsSkipped {
		total += n
	}
	return total
}

func (r *RunReport) addSkips(skips fecparse.SkipCounts) {
	for reason, n := range skips {
		if n > 0 {
			r.RowsSkipped[reason.String()] += n
		}
	}
}

// WriteJSON persists the report artifact
func (r *RunReport) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Render writes the human-readable run summary
func (r *RunReport) Render(w io.Writer) {
	fmt.Fprintf(w, "Run finished in %s\n", r.Duration().Round(time.Millisecond))
	fmt.Fprintf(w, "  Officials:        %d (%d resolved, %d scored)\n", r.Officials, r.Resolved, r.Scored)
	fmt.Fprintf(w, "  Bulk files:       %d downloaded, %d cached, %d failed\n", r.FilesDownloaded, r.FilesCached, r.FilesFailed)
	fmt.Fprintf(w, "  Rows aggregated:  %d PAC, %d individual\n", r.PACRows, r.IndividualRows)

	if len(r.RowsSkipped) > 0 {
		reasons := make([]string, 0, len(r.RowsSkipped))
		for reason := range r.RowsSkipped {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)
		fmt.Fprintf(w, "  Rows skipped:     %d\n", r.SkippedTotal())
		for _, reason := range reasons {
			fmt.Fprintf(w, "    %-12s %d\n", reason, r.RowsSkipped[reason])
		}
	}
}
