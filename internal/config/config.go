// Package config holds the pipeline configuration. Defaults cover the
// canonical challenge layout; an optional teleparty.yaml in the working
// directory overrides them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for an override file when none is given.
const DefaultPath = "teleparty.yaml"

// Config holds all pipeline configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig names the source CSV files.
type InputConfig struct {
	ShowsFile    string `yaml:"shows_file"`
	EpisodesFile string `yaml:"episodes_file"`

	// SeasonsFile must exist on disk but is never read: it carries no
	// key that joins back to shows reliably.
	SeasonsFile string `yaml:"seasons_file"`
}

// StoreConfig configures the embedded database.
type StoreConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Default returns the canonical configuration for a challenge run.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			ShowsFile:    "all-series-ep-average.csv",
			EpisodesFile: "all-episode-ratings.csv",
			SeasonsFile:  "all-seasons.csv",
		},
		Store: StoreConfig{
			DatabasePath: "teleparty.db",
		},
	}
}

// Load reads a yaml config file over the defaults. A missing file is not an
// error; the defaults stand.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
