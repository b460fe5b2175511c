package bulkcache

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pacwatch/pacwatch/internal/model"
)

func zipWithMember(t *testing.T, name, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create(name)
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	if _, err := f.Write([]byte(content)); err != nil {
		t.Fatalf("write member: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func testCache(t *testing.T, baseURL string) *Cache {
	t.Helper()
	return New(t.TempDir(), model.BulkConfig{BaseURL: baseURL}, model.HTTPConfig{
		Timeout:     5 * time.Second,
		UserAgent:   "pacwatch-test/0.1",
		RatePerHost: 100,
		Burst:       10,
	})
}

func TestEnsure_DownloadsAndExtracts(t *testing.T) {
	payload := "C00401224|TEST PAC|TREASURER||||||U|Q|||C|TEST ORG|\n"
	archive := zipWithMember(t, "cm.txt", payload)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Path != "/2024/cm24.zip" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(archive)
	}))
	defer srv.Close()

	cache := testCache(t, srv.URL)
	path, err := cache.Ensure(context.Background(), 2024, model.KindCommitteeMaster)
	if err != nil {
		t.Fatalf("ensure failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(data) != payload {
		t.Errorf("extracted content mismatch: %q", data)
	}

	// Archive must be gone, only the flat file kept.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read cycle dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 file in cycle dir, got %d", len(entries))
	}
}

func TestEnsure_SkipsDownloadWhenCached(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	cache := testCache(t, srv.URL)

	path := cache.Path(2024, model.KindCandidateMaster)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("cached\n"), 0644); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	got, err := cache.Ensure(context.Background(), 2024, model.KindCandidateMaster)
	if err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	if got != path {
		t.Errorf("expected cached path %s, got %s", path, got)
	}
	if hits != 0 {
		t.Errorf("expected no HTTP requests, got %d", hits)
	}
}

func TestEnsure_InvalidCycle(t *testing.T) {
	cache := testCache(t, "http://localhost:0")
	if _, err := cache.Ensure(context.Background(), 2023, model.KindCommitteeMaster); err == nil {
		t.Error("expected error for odd cycle")
	}
}

func TestEnsureAll_FailedCycleDoesNotAbort(t *testing.T) {
	archive := zipWithMember(t, "cn.txt", "H0TX01234|DOE, JANE|DEM|2024|TX|H|01\n")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			http.NotFound(w, r)
		case "/2024/cn24.zip":
			_, _ = w.Write(archive)
		default:
			// 2022 archives are missing
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cache := testCache(t, srv.URL)
	batch, err := cache.EnsureAll(context.Background(), []int{2022, 2024}, []model.BulkKind{model.KindCandidateMaster}, 2)
	if err != nil {
		t.Fatalf("ensure all failed: %v", err)
	}

	if batch.Total() != 2 {
		t.Fatalf("expected 2 items, got %d", batch.Total())
	}
	if batch.Downloaded != 1 || batch.Failed != 1 {
		t.Errorf("expected 1 downloaded + 1 failed, got %+v", batch)
	}
}

func TestEnsureAll_InvalidCycleIsFatal(t *testing.T) {
	cache := testCache(t, "http://localhost:0")
	if _, err := cache.EnsureAll(context.Background(), []int{2024, 1999}, model.AllBulkKinds, 2); err == nil {
		t.Error("expected configuration error for invalid cycle")
	}
}

func TestExtractFirst_PrefersFlatFile(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, m := range []struct{ name, content string }{
		{"readme.md", "docs"},
		{"itcont.txt", "row|data\n"},
	} {
		f, err := w.Create(m.name)
		if err != nil {
			t.Fatalf("create member: %v", err)
		}
		fmt.Fprint(f, m.content)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	dir := t.TempDir()
	archive := filepath.Join(dir, "a.zip")
	if err := os.WriteFile(archive, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write archive: %v", err)
	}

	dest := filepath.Join(dir, "out.txt")
	if err := extractFirst(archive, dest); err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	data, _ := os.ReadFile(dest)
	if string(data) != "row|data\n" {
		t.Errorf("expected .txt member extracted, got %q", data)
	}
}
