package model

import "time"

// Config holds all tunables for a matching run. It is built once by the
// caller and passed into the pipeline; nothing reads ambient globals.
type Config struct {
	// Threshold is the minimum acceptance score (0-100) for declaring two
	// names the same identity.
	Threshold float64 `yaml:"threshold"`

	// PreviewRows bounds the number of extracted records echoed back in
	// each file report.
	PreviewRows int `yaml:"preview_rows"`

	Reference   ReferenceConfig   `yaml:"reference"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// ReferenceConfig selects where canonical names come from.
type ReferenceConfig struct {
	// Source is one of "csv", "postgres", "embedded".
	Source string `yaml:"source"`

	// CSVPath points to a file with a "nombre" column (csv source).
	CSVPath string `yaml:"csv_path"`

	// DatabaseURL is the Postgres connection string (postgres source).
	DatabaseURL string `yaml:"database_url"`

	// Seasons filters which trackman seasons contribute names.
	Seasons []string `yaml:"seasons"`
}

// CacheConfig controls the reference-name cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
}

// ConcurrencyConfig controls batch fan-out.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		Threshold:   90,
		PreviewRows: 5,
		Reference: ReferenceConfig{
			Source: "embedded",
			Seasons: []string{
				"Invierno-2025", "Verano-2025",
				"Invierno-2024", "Verano-2024",
			},
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".rostermatch-cache",
			TTL:     24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
