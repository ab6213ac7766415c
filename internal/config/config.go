package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when --config
// is not given.
const DefaultPath = "searchlab.yaml"

// Config is the file-level configuration; flags override it
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Generate GenerateConfig `yaml:"generate"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Bench    BenchConfig    `yaml:"bench"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

type GenerateConfig struct {
	Count int64  `yaml:"count"`
	Seed  uint64 `yaml:"seed"`
}

type CatalogConfig struct {
	Path string `yaml:"path"`
}

type BenchConfig struct {
	Searches int `yaml:"searches"`
	Threads  int `yaml:"threads"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Output:   OutputConfig{Dir: "data"},
		Generate: GenerateConfig{Count: 100_000},
		Catalog:  CatalogConfig{Path: "data/catalog.db"},
		Bench:    BenchConfig{Searches: 100_000, Threads: runtime.NumCPU()},
	}
}

// Load reads a YAML config file and fills unset fields with defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path when it exists, otherwise returns defaults.
// Any other read or parse error is surfaced.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	return cfg, err
}
