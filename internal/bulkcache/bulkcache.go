// Package bulkcache downloads per-cycle bulk archives from the campaign
// finance publisher and keeps extracted flat files in a local on-disk cache
// keyed by (cycle, kind).
package bulkcache

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pacwatch/pacwatch/internal/model"
	"github.com/pacwatch/pacwatch/internal/util"
	"github.com/pacwatch/pacwatch/internal/worker"
)

// archivePrefix maps a file kind to the publisher's archive name prefix.
// Archives are named <prefix><yy>.zip under the cycle directory.
var archivePrefix = map[model.BulkKind]string{
	model.KindCommitteeMaster:        "cm",
	model.KindCandidateMaster:        "cn",
	model.KindPACToCandidate:         "pas2",
	model.KindIndividualContribution: "indiv",
}

// Cache manages the local bulk-file store
type Cache struct {
	dataDir    string
	baseURL    string
	httpClient *http.Client
	userAgent  string
	limiter    *worker.Limiter
	robots     *util.RobotsChecker
}

// New creates a bulk file cache rooted at dataDir
func New(dataDir string, cfg model.BulkConfig, httpCfg model.HTTPConfig) *Cache {
	return &Cache{
		dataDir:    dataDir,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: httpCfg.Timeout},
		userAgent:  httpCfg.UserAgent,
		limiter:    worker.NewLimiter(httpCfg.RatePerHost, httpCfg.Burst),
		robots:     util.NewRobotsChecker(httpCfg.UserAgent, httpCfg.Timeout),
	}
}

// Path returns the canonical local path for (cycle, kind) without fetching
func (c *Cache) Path(cycle int, kind model.BulkKind) string {
	return filepath.Join(c.dataDir, "bulk", fmt.Sprintf("%d", cycle), string(kind)+".txt")
}

// Ensure returns the local path of the extracted flat file for
// (cycle, kind), downloading and extracting the archive if needed. A missing
// file after an error means "no data for this cycle"; callers skip, never
// abort.
func (c *Cache) Ensure(ctx context.Context, cycle int, kind model.BulkKind) (string, error) {
	if !model.ValidCycle(cycle) {
		return "", fmt.Errorf("invalid cycle %d", cycle)
	}
	prefix, ok := archivePrefix[kind]
	if !ok {
		return "", fmt.Errorf("unknown bulk kind %q", kind)
	}

	path := c.Path(cycle, kind)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	archiveURL := fmt.Sprintf("%s/%d/%s%02d.zip", c.baseURL, cycle, prefix, cycle%100)

	archive, err := c.download(ctx, archiveURL)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", archiveURL, err)
	}
	defer func() { _ = os.Remove(archive) }()

	if err := extractFirst(archive, path); err != nil {
		return "", fmt.Errorf("extract %s: %w", archiveURL, err)
	}

	return path, nil
}

// download fetches the archive to a temp file next to the final location
func (c *Cache) download(ctx context.Context, rawURL string) (string, error) {
	if allowed, delay, err := c.robots.CanFetch(ctx, rawURL); err == nil && !allowed {
		return "", fmt.Errorf("disallowed by robots.txt")
	} else if delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	if err := c.limiter.Wait(ctx, rawURL); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	if err := os.MkdirAll(filepath.Join(c.dataDir, "bulk"), 0755); err != nil {
		return "", fmt.Errorf("create bulk dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Join(c.dataDir, "bulk"), "download-*.zip")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	_, err = io.Copy(tmp, resp.Body)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("write archive: %w", err)
	}

	return tmp.Name(), nil
}

// extractFirst extracts the first flat-file member of the archive to dest
func extractFirst(archive, dest string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer func() { _ = r.Close() }()

	var member, first *zip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if first == nil {
			first = f
		}
		if strings.HasSuffix(strings.ToLower(f.Name), ".txt") {
			member = f
			break
		}
	}
	if member == nil {
		member = first
	}
	if member == nil {
		return fmt.Errorf("archive has no members")
	}

	src, err := member.Open()
	if err != nil {
		return fmt.Errorf("open member %s: %w", member.Name, err)
	}
	defer func() { _ = src.Close() }()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("create cycle dir: %w", err)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	_, err = io.Copy(out, src)
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dest)
		return fmt.Errorf("extract member %s: %w", member.Name, err)
	}

	return nil
}
