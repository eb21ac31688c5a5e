// Package config provides configuration loading and management for idioms.
// Every setting has a default, so running without any config file is normal.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/idioms/catalog"
)

// Config represents the complete idioms configuration
type Config struct {
	Run     RunConfig     `yaml:"run"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// RunConfig configures how the catalogue is executed
type RunConfig struct {
	// Parallel is the number of examples run concurrently by run-example --all
	Parallel int `yaml:"parallel"`
	// Timeout bounds each example (0 = no limit, unset = DefaultTimeout)
	Timeout *time.Duration `yaml:"timeout,omitempty"`
	// CompareExpected fails examples whose output differs from the recorded one
	CompareExpected *bool `yaml:"compare_expected,omitempty"`
}

// OutputConfig configures rendering
type OutputConfig struct {
	// Format is one of text, json, yaml
	Format string `yaml:"format"`
}

// MetricsConfig configures the Prometheus textfile export
type MetricsConfig struct {
	// Textfile is where run metrics are written (empty = disabled)
	Textfile string `yaml:"textfile"`
}

// DefaultTimeout bounds each example when no config layer sets run.timeout.
const DefaultTimeout = 10 * time.Second

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	compare := true
	timeout := DefaultTimeout
	return &Config{
		Run: RunConfig{
			Parallel:        1,
			Timeout:         &timeout,
			CompareExpected: &compare,
		},
		Output: OutputConfig{
			Format: string(catalog.FormatText),
		},
	}
}

// ShouldCompare reports whether outputs are checked against Expected.
func (c *Config) ShouldCompare() bool {
	return c.Run.CompareExpected == nil || *c.Run.CompareExpected
}

// RunTimeout returns the per-example timeout. Zero means no limit.
func (c *Config) RunTimeout() time.Duration {
	if c.Run.Timeout == nil {
		return DefaultTimeout
	}
	return *c.Run.Timeout
}

// SetRunTimeout overrides the per-example timeout.
func (c *Config) SetRunTimeout(d time.Duration) {
	c.Run.Timeout = &d
}

// RunOptions converts the run settings for the catalogue runner.
func (c *Config) RunOptions() catalog.RunOptions {
	return catalog.RunOptions{
		Parallel:        c.Run.Parallel,
		Timeout:         c.RunTimeout(),
		CompareExpected: c.ShouldCompare(),
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Run.Parallel < 1 {
		return fmt.Errorf("run.parallel must be at least 1")
	}
	if c.RunTimeout() < 0 {
		return fmt.Errorf("run.timeout must not be negative")
	}
	if _, err := catalog.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one. Set fields in other take
// precedence; run.parallel is unset at 0 since Validate rejects it anyway.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Run
	if other.Run.Parallel != 0 {
		c.Run.Parallel = other.Run.Parallel
	}
	if other.Run.Timeout != nil {
		c.SetRunTimeout(*other.Run.Timeout)
	}
	if other.Run.CompareExpected != nil {
		compare := *other.Run.CompareExpected
		c.Run.CompareExpected = &compare
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}

	// Metrics
	if other.Metrics.Textfile != "" {
		c.Metrics.Textfile = other.Metrics.Textfile
	}
}
