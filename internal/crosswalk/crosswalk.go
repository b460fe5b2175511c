// Package crosswalk maps legislator IDs to the campaign-finance regulator's
// candidate IDs. The trusted bulk mapping is the primary path; heuristic
// name matching against the candidate master pool is the fallback.
package crosswalk

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"gopkg.in/yaml.v3"

	"github.com/pacwatch/pacwatch/internal/cache"
	"github.com/pacwatch/pacwatch/internal/model"
	"github.com/pacwatch/pacwatch/internal/store"
)

// Entry is one cached crosswalk resolution. Once the bulk mapping is
// available, misses are cached too: clearing the cache file is the explicit
// refresh path.
type Entry struct {
	FECCandidateID string `json:"fec_candidate_id,omitempty"`
	Source         string `json:"source"` // mapping, fallback, none
}

// Resolution sources.
const (
	SourceMapping  = "mapping"
	SourceFallback = "fallback"
	SourceNone     = "none"
)

// mappingRecord is the minimal shape of one legislator in the bulk mapping
type mappingRecord struct {
	ID struct {
		Bioguide string   `yaml:"bioguide"`
		FEC      []string `yaml:"fec"`
	} `yaml:"id"`
}

// Crosswalk resolves officials to campaign-finance candidate IDs
type Crosswalk struct {
	cfg        model.CrosswalkConfig
	httpClient *http.Client
	userAgent  string
	bytes      cache.Cache
	results    *store.KeyedCache[Entry]

	mapping       map[string][]string // bioguide -> FEC candidate IDs
	mappingLoaded bool
	pool          []model.Candidate
}

// New creates a crosswalk service. bytes caches the downloaded bulk mapping
// with the configured freshness window; results persists per-official
// resolutions across runs.
func New(cfg model.CrosswalkConfig, httpCfg model.HTTPConfig, bytes cache.Cache, results *store.KeyedCache[Entry]) *Crosswalk {
	return &Crosswalk{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: httpCfg.Timeout},
		userAgent:  httpCfg.UserAgent,
		bytes:      bytes,
		results:    results,
	}
}

// SetCandidatePool installs the fallback match pool. The pipeline filters
// the candidate master to recent cycles and House/Senate offices first.
func (c *Crosswalk) SetCandidatePool(pool []model.Candidate) {
	c.pool = pool
}

// LoadMapping fetches or re-reads the trusted bulk mapping. The cached copy
// is reused until the freshness window lapses.
func (c *Crosswalk) LoadMapping(ctx context.Context) error {
	key := cache.Key(c.cfg.MappingURL)

	data, found := c.bytes.Get(key)
	if !found {
		fresh, err := c.download(ctx)
		if err != nil {
			return fmt.Errorf("download mapping: %w", err)
		}
		if err := c.bytes.Set(key, fresh, c.cfg.TTL); err != nil {
			return fmt.Errorf("cache mapping: %w", err)
		}
		data = fresh
	}

	var records []mappingRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decode mapping: %w", err)
	}

	c.mapping = make(map[string][]string, len(records))
	for _, r := range records {
		if r.ID.Bioguide != "" && len(r.ID.FEC) > 0 {
			c.mapping[r.ID.Bioguide] = r.ID.FEC
		}
	}
	c.mappingLoaded = true
	return nil
}

// MappingSize returns the number of legislators in the loaded mapping
func (c *Crosswalk) MappingSize() int {
	return len(c.mapping)
}

func (c *Crosswalk) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.MappingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// GetFinancialID resolves one official. Returns "" when no identity can be
// established; the official is retained with a null ID and excluded from
// aggregation, never treated as fatal.
func (c *Crosswalk) GetFinancialID(official *model.Official) string {
	key := store.Key(official.LegislatorID)
	if entry, ok := c.results.Get(key); ok {
		return entry.FECCandidateID
	}

	entry := c.resolve(official)
	// A resolution made without the bulk mapping is fallback-only and must
	// not stick; leaving it uncached lets the next run with a working
	// mapping take the primary path.
	if c.mappingLoaded {
		c.results.Put(key, entry)
	}
	return entry.FECCandidateID
}

func (c *Crosswalk) resolve(official *model.Official) Entry {
	if ids, ok := c.mapping[official.LegislatorID]; ok && len(ids) > 0 {
		// The mapping lists FEC IDs oldest-first; the last entry is the
		// current candidacy.
		return Entry{FECCandidateID: ids[len(ids)-1], Source: SourceMapping}
	}

	if match := c.fallbackMatch(official); match != nil {
		return Entry{FECCandidateID: match.ID, Source: SourceFallback}
	}

	return Entry{Source: SourceNone}
}

// fallbackMatch searches the (state, chamber) candidate pool by name. House
// matches additionally require the district; ties go to the most recent
// election year.
func (c *Crosswalk) fallbackMatch(official *model.Official) *model.Candidate {
	office := officeForChamber(official.Chamber)
	if office == "" {
		return nil
	}

	want := ParseName(official.Name)
	if want.Last == "" {
		return nil
	}

	var best *model.Candidate
	for i := range c.pool {
		cand := &c.pool[i]
		if cand.State != official.State || cand.Office != office {
			continue
		}
		if office == "H" && !sameDistrict(cand.District, official.District) {
			continue
		}

		got := ParseName(cand.Name)
		if got.Last != want.Last {
			continue
		}
		if !firstNameCompatible(got.First, want.First) {
			continue
		}

		if best == nil || cand.ElectionYear > best.ElectionYear {
			best = cand
		}
	}
	return best
}

// Load reads previously resolved entries from disk
func (c *Crosswalk) Load() error {
	return c.results.Load()
}

// Flush persists newly resolved entries
func (c *Crosswalk) Flush() error {
	return c.results.Flush()
}

func officeForChamber(chamber string) string {
	switch chamber {
	case model.ChamberHouse:
		return "H"
	case model.ChamberSenate:
		return "S"
	default:
		return ""
	}
}
