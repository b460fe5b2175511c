package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the full pipeline configuration
type Config struct {
	DataDir      string          `yaml:"data_dir" mapstructure:"data_dir"`
	Cycles       []int           `yaml:"cycles" mapstructure:"cycles"`
	WindowMonths int             `yaml:"window_months" mapstructure:"window_months"`
	HTTP         HTTPConfig      `yaml:"http" mapstructure:"http"`
	Bulk         BulkConfig      `yaml:"bulk" mapstructure:"bulk"`
	Crosswalk    CrosswalkConfig `yaml:"crosswalk" mapstructure:"crosswalk"`
	Concurrency  Concurrency     `yaml:"concurrency" mapstructure:"concurrency"`
	Output       OutputConfig    `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls the download client
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RatePerHost  float64       `yaml:"rate_per_host" mapstructure:"rate_per_host"`
	Burst        int           `yaml:"burst" mapstructure:"burst"`
}

// BulkConfig locates the publisher's bulk-download endpoint
type BulkConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// CrosswalkConfig locates the legislator ID mapping source
type CrosswalkConfig struct {
	MappingURL string        `yaml:"mapping_url" mapstructure:"mapping_url"`
	TTL        time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// Concurrency controls the only parallel stage (archive downloads)
type Concurrency struct {
	DownloadWorkers int `yaml:"download_workers" mapstructure:"download_workers"`
}

// OutputConfig controls artifacts written at the end of a run
type OutputConfig struct {
	Verbose    bool   `yaml:"verbose" mapstructure:"verbose"`
	CSVPath    string `yaml:"csv_path" mapstructure:"csv_path"`
	ReportPath string `yaml:"report_path" mapstructure:"report_path"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		DataDir:      defaultDataDir(),
		Cycles:       []int{2022, 2024, 2026},
		WindowMonths: 36,
		HTTP: HTTPConfig{
			Timeout:      5 * time.Minute,
			UserAgent:    "pacwatch/0.1 (+https://github.com/pacwatch/pacwatch)",
			MaxBodyBytes: 8 << 30,
			RatePerHost:  2,
			Burst:        2,
		},
		Bulk: BulkConfig{
			BaseURL: "https://www.fec.gov/files/bulk-downloads",
		},
		Crosswalk: CrosswalkConfig{
			MappingURL: "https://unitedstates.github.io/congress-legislators/legislators-current.yaml",
			TTL:        7 * 24 * time.Hour,
		},
		Concurrency: Concurrency{
			DownloadWorkers: 4,
		},
		Output: OutputConfig{
			CSVPath:    "officials.csv",
			ReportPath: "run-report.json",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pacwatch"
	}
	return filepath.Join(home, ".pacwatch")
}

// ValidCycle reports whether a cycle identifier is usable. Bulk files are
// published per two-year election cycle (even years).
func ValidCycle(cycle int) bool {
	return cycle >= 1980 && cycle <= 2100 && cycle%2 == 0
}
