package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Segments    SegmentsConfig    `yaml:"segments"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Watch       WatchConfig       `yaml:"watch"`
}

type PathsConfig struct {
	// Segments is the root directory the capture side writes into, one
	// subdirectory per video identifier.
	Segments string `yaml:"segments"`
	// Transcripts is the directory reconstructed transcripts are written to.
	Transcripts string `yaml:"transcripts"`
}

type SegmentsConfig struct {
	// Extension of segment files as written by the capture side,
	// including the dot.
	Extension string `yaml:"extension"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	// MaxConcurrent bounds how many videos watch mode rebuilds at once.
	// Batch runs are sequential regardless.
	MaxConcurrent int `yaml:"max_concurrent"`
}

type WatchConfig struct {
	// SettleDelayMS is how long watch mode waits after a new segment file
	// appears before rebuilding, so in-flight captures can finish writing.
	SettleDelayMS int `yaml:"settle_delay_ms"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Segments == "" {
		c.Paths.Segments = "vtt_segments"
	}
	if c.Paths.Transcripts == "" {
		c.Paths.Transcripts = "transcripts"
	}
	if c.Segments.Extension == "" {
		c.Segments.Extension = ".txt"
	}
	if !strings.HasPrefix(c.Segments.Extension, ".") {
		return fmt.Errorf("segments.extension must start with a dot, got %q", c.Segments.Extension)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Watch.SettleDelayMS < 0 {
		return fmt.Errorf("watch.settle_delay_ms must not be negative")
	}
	if c.Watch.SettleDelayMS == 0 {
		c.Watch.SettleDelayMS = 500
	}

	return nil
}
