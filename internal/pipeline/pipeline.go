// Package pipeline sequences the full analysis run: ensure bulk files,
// index committees, crosswalk identities, aggregate contributions, compute
// concentration and influence scores, persist artifacts.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pacwatch/pacwatch/internal/aggregate"
	"github.com/pacwatch/pacwatch/internal/bulkcache"
	"github.com/pacwatch/pacwatch/internal/cache"
	"github.com/pacwatch/pacwatch/internal/classify"
	"github.com/pacwatch/pacwatch/internal/crosswalk"
	"github.com/pacwatch/pacwatch/internal/fecparse"
	"github.com/pacwatch/pacwatch/internal/firms"
	"github.com/pacwatch/pacwatch/internal/model"
	"github.com/pacwatch/pacwatch/internal/score"
	"github.com/pacwatch/pacwatch/internal/store"
)

// Pipeline owns every stage service for the duration of one run
type Pipeline struct {
	cfg *model.Config

	bulk       *bulkcache.Cache
	classifier *classify.Classifier
	resolver   *firms.Resolver
	crosswalk  *crosswalk.Crosswalk
	officials  *store.OfficialsStore
	scorer     *score.Scorer
}

// New wires the pipeline from configuration. Caches are explicit service
// state constructed here and passed by reference to each stage.
func New(cfg *model.Config) *Pipeline {
	cacheDir := filepath.Join(cfg.DataDir, "cache")

	classCache := store.NewKeyedCache[model.ClassificationResult](filepath.Join(cacheDir, "classification.json"))
	cwResults := store.NewKeyedCache[crosswalk.Entry](filepath.Join(cacheDir, "crosswalk.json"))
	httpBytes := cache.NewLayeredCache(time.Hour, filepath.Join(cacheDir, "http"), cfg.Crosswalk.TTL)

	return &Pipeline{
		cfg:        cfg,
		bulk:       bulkcache.New(cfg.DataDir, cfg.Bulk, cfg.HTTP),
		classifier: classify.New(classCache),
		resolver:   firms.NewResolver(),
		crosswalk:  crosswalk.New(cfg.Crosswalk, cfg.HTTP, httpBytes, cwResults),
		officials:  store.NewOfficialsStore(filepath.Join(cfg.DataDir, "officials.json")),
		scorer:     score.NewScorer(),
	}
}

// Bulk exposes the bulk file cache for the download command
func (p *Pipeline) Bulk() *bulkcache.Cache {
	return p.bulk
}

// Officials exposes the officials store for read-only commands
func (p *Pipeline) Officials() *store.OfficialsStore {
	return p.officials
}

// ClassifyName runs a one-off classification for debugging rule tables
func (p *Pipeline) ClassifyName(name, connectedOrg string) model.ClassificationResult {
	return p.classifier.Classify(name, connectedOrg)
}

// Run executes the full pipeline. Per-cycle failures degrade to partial
// results with logged omissions; only configuration errors are fatal.
func (p *Pipeline) Run(ctx context.Context) (*RunReport, error) {
	report := NewRunReport(p.cfg.Cycles)

	for _, cycle := range p.cfg.Cycles {
		if !model.ValidCycle(cycle) {
			return nil, fmt.Errorf("invalid cycle %d in configuration", cycle)
		}
	}

	officials, err := p.officials.Load()
	if err != nil {
		return nil, err
	}
	if len(officials) == 0 {
		return nil, fmt.Errorf("officials store %s is empty; seed it with the legislator roster first", p.officials.Path())
	}
	report.Officials = len(officials)
	p.logf("Loaded %d officials from %s\n", len(officials), p.officials.Path())

	// Classification and crosswalk caches persist across runs.
	if err := p.loadCaches(); err != nil {
		return nil, err
	}

	// 1. Bulk files, in parallel across (cycle, kind).
	batch, err := p.bulk.EnsureAll(ctx, p.cfg.Cycles, model.AllBulkKinds, p.cfg.Concurrency.DownloadWorkers)
	if err != nil {
		return nil, err
	}
	report.FilesDownloaded = batch.Downloaded
	report.FilesCached = batch.Cached
	report.FilesFailed = batch.Failed
	for _, item := range batch.Items {
		if item.Error != nil {
			p.logf("Warning: cycle %d %s unavailable: %v\n", item.Cycle, item.Kind, item.Error)
		}
	}

	// 2. Committee and candidate indexes across every available cycle.
	agg := aggregate.New(p.classifier, p.resolver, p.cfg.WindowMonths, time.Now().UTC())
	pool := p.buildIndexes(agg, report)
	p.logf("Indexed %d committees, %d fallback candidates\n", agg.Committees(), len(pool))

	// 3. Identity crosswalk.
	p.crosswalk.SetCandidatePool(pool)
	if err := p.crosswalk.LoadMapping(ctx); err != nil {
		p.logf("Warning: bulk ID mapping unavailable, fallback matching only: %v\n", err)
	}
	for _, o := range officials {
		o.FECCandidateID = p.crosswalk.GetFinancialID(o)
		if o.FECCandidateID != "" {
			report.Resolved++
		}
	}
	p.logf("Resolved financial IDs for %d/%d officials\n", report.Resolved, len(officials))

	// 4. Contribution aggregation, reset-then-recompute.
	agg.Prepare(officials)
	p.streamContributions(agg, report)
	agg.Finalize(officials)

	// 5. Concentration and influence scores.
	for _, o := range officials {
		if len(o.Contributions.SectorAmounts) > 0 {
			hhi := score.ComputeHHI(o.Contributions.SectorAmounts)
			o.Contributions.HHI = &hhi
		}
	}
	p.scorer.ScoreAll(officials)
	report.Scored = len(officials)

	// 6. Persist caches and artifacts.
	if err := p.flushCaches(); err != nil {
		return nil, err
	}
	if err := p.officials.Save(officials); err != nil {
		return nil, err
	}
	if p.cfg.Output.CSVPath != "" {
		if err := store.ExportCSV(p.cfg.Output.CSVPath, officials); err != nil {
			return nil, err
		}
		p.logf("Wrote export table: %s\n", p.cfg.Output.CSVPath)
	}

	report.Finish()
	if p.cfg.Output.ReportPath != "" {
		if err := report.WriteJSON(p.cfg.Output.ReportPath); err != nil {
			return nil, err
		}
		p.logf("Wrote run report: %s\n", p.cfg.Output.ReportPath)
	}
	return report, nil
}

// buildIndexes streams committee and candidate masters for every cycle into
// the aggregator and the crosswalk fallback pool.
func (p *Pipeline) buildIndexes(agg *aggregate.Aggregator, report *RunReport) []model.Candidate {
	var pool []model.Candidate
	seen := make(map[string]bool)
	minYear := oldestCycle(p.cfg.Cycles) - 2

	for _, cycle := range p.cfg.Cycles {
		cmPath := p.bulk.Path(cycle, model.KindCommitteeMaster)
		if fileExists(cmPath) {
			skips, err := fecparse.EachCommittee(cmPath, fecparse.CommitteeLayoutV1, agg.AddCommittee)
			report.addSkips(skips)
			if err != nil {
				p.logf("Warning: committee master %d: %v\n", cycle, err)
			}
		}

		cnPath := p.bulk.Path(cycle, model.KindCandidateMaster)
		if fileExists(cnPath) {
			skips, err := fecparse.EachCandidate(cnPath, fecparse.CandidateLayoutV1, func(cn model.Candidate) {
				// Fallback pool: recent House/Senate candidacies only.
				if cn.ElectionYear < minYear {
					return
				}
				if cn.Office != "H" && cn.Office != "S" {
					return
				}
				if seen[cn.ID] {
					return
				}
				seen[cn.ID] = true
				pool = append(pool, cn)
			})
			report.addSkips(skips)
			if err != nil {
				p.logf("Warning: candidate master %d: %v\n", cycle, err)
			}
		}
	}

	return pool
}

// streamContributions feeds every available cycle's transaction files to
// the aggregator. The union across cycles keeps officials elected in a
// later cycle inside an earlier cycle's window.
func (p *Pipeline) streamContributions(agg *aggregate.Aggregator, report *RunReport) {
	for _, cycle := range p.cfg.Cycles {
		pasPath := p.bulk.Path(cycle, model.KindPACToCandidate)
		if fileExists(pasPath) {
			skips, err := fecparse.EachTransaction(pasPath, fecparse.PACToCandidateLayoutV1, func(tx fecparse.Transaction) {
				report.PACRows++
				agg.AddPACContribution(tx)
			})
			report.addSkips(skips)
			if err != nil {
				p.logf("Warning: PAC contributions %d: %v\n", cycle, err)
			}
		}

		indivPath := p.bulk.Path(cycle, model.KindIndividualContribution)
		if fileExists(indivPath) {
			skips, err := fecparse.EachTransaction(indivPath, fecparse.IndividualLayoutV1, func(tx fecparse.Transaction) {
				report.IndividualRows++
				agg.AddIndividualContribution(tx)
			})
			report.addSkips(skips)
			if err != nil {
				p.logf("Warning: individual contributions %d: %v\n", cycle, err)
			}
		}
	}
}

func (p *Pipeline) loadCaches() error {
	if err := p.classifier.Load(); err != nil {
		return err
	}
	return p.crosswalk.Load()
}

func (p *Pipeline) flushCaches() error {
	if err := p.classifier.Flush(); err != nil {
		return err
	}
	return p.crosswalk.Flush()
}

func (p *Pipeline) logf(format string, args ...interface{}) {
	if p.cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func oldestCycle(cycles []int) int {
	if len(cycles) == 0 {
		return 0
	}
	oldest := cycles[0]
	for _, c := range cycles[1:] {
		if c < oldest {
			oldest = c
		}
	}
	return oldest
}
