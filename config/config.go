package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tarun-vijay/examseat/core/model"
)

// Config is the full run configuration. All values are explicit: the
// batch carries no ambient globals, so several runs with different
// settings can share one process.
type Config struct {
	Input      InputConfig      `json:"input"`
	Output     OutputConfig     `json:"output"`
	Allocation AllocationConfig `json:"allocation"`
	Metrics    MetricsConfig    `json:"metrics"`
}

// InputConfig locates the input workbook.
type InputConfig struct {
	// File is the xlsx workbook holding the timetable, enrollments,
	// candidate directory and room registry sheets.
	File string `json:"file"`
}

// OutputConfig controls where and what the batch writes.
type OutputConfig struct {
	Dir string `json:"dir"`
	// PDF enables per-room attendance sheet generation.
	PDF bool `json:"pdf"`
	// Archive bundles the output directory into a zip after the run.
	Archive bool `json:"archive"`
}

// AllocationConfig carries the allocator parameters.
type AllocationConfig struct {
	// Strategy is "dense" or "sparse".
	Strategy string `json:"strategy"`
	// Buffer is the number of seats withheld per room.
	Buffer int `json:"buffer"`
}

// MetricsConfig enables the optional observability sinks.
type MetricsConfig struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// Load reads the configuration from a YAML or JSON file with optional
// EXAMSEAT_-prefixed environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("EXAMSEAT_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "examseat_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "output"
	}
	if c.Allocation.Strategy == "" {
		c.Allocation.Strategy = string(model.StrategyDense)
	}
	if c.Metrics.PrometheusAddr == "" {
		c.Metrics.PrometheusAddr = ":9090"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Input.File == "" {
		return fmt.Errorf("input.file is required")
	}
	if _, err := model.ParseStrategy(c.Allocation.Strategy); err != nil {
		return err
	}
	if c.Allocation.Buffer < 0 {
		return fmt.Errorf("allocation.buffer must not be negative")
	}
	if c.Metrics.InfluxEnabled && c.Metrics.InfluxURL == "" {
		return fmt.Errorf("metrics.influx_url is required when influx is enabled")
	}
	return nil
}

// Strategy returns the parsed allocation strategy.
func (c Config) Strategy() model.Strategy {
	s, _ := model.ParseStrategy(c.Allocation.Strategy)
	return s
}
