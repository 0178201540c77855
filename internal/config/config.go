// Package config holds the settings shared by the command-line tools.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
)

// Config holds all configurable paths and processing settings.
type Config struct {
	// Paths
	DataCSV      string `json:"data_csv" env:"MORPHSHAPE_DATA_CSV"`
	SkeletonFile string `json:"skeleton_file" env:"MORPHSHAPE_SKELETON_FILE"`
	OutputCSV    string `json:"output_csv" env:"MORPHSHAPE_OUTPUT_CSV"`

	// Skeleton variant: "hawk", "spider", or a YAML file path.
	Variant string `json:"variant" env:"MORPHSHAPE_VARIANT"`

	// Strict requires pose updates to carry the full moving-marker set.
	Strict bool `json:"strict" env:"MORPHSHAPE_STRICT"`

	Workers int `json:"workers" env:"MORPHSHAPE_WORKERS"`
}

// Load reads a JSON config file and returns Config. Fields not set in the
// file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays MORPHSHAPE_* environment variables onto the config.
func (c *Config) FromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Flags holds CLI flag values that override config file and environment.
type Flags struct {
	DataCSV      string
	SkeletonFile string
	OutputCSV    string
	Variant      string
	Workers      int
}

// Resolve applies flag overrides and fills remaining empty fields with
// defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.DataCSV != "" {
		c.DataCSV = flags.DataCSV
	}
	if flags.SkeletonFile != "" {
		c.SkeletonFile = flags.SkeletonFile
	}
	if flags.OutputCSV != "" {
		c.OutputCSV = flags.OutputCSV
	}
	if flags.Variant != "" {
		c.Variant = flags.Variant
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Variant == "" {
		if c.SkeletonFile != "" {
			c.Variant = c.SkeletonFile
		} else {
			c.Variant = "hawk"
		}
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
