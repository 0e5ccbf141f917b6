package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSteps = 1000
	DefaultRuns  = 10000
	DefaultBins  = 50
)

type Config struct {
	Steps        int   `yaml:"steps"`
	Runs         int   `yaml:"runs"`
	Bins         int   `yaml:"bins"`
	Seed         int64 `yaml:"seed"`
	NValues      []int `yaml:"n_values"`
	ShowProgress bool  `yaml:"show_progress"`
}

func DefaultConfig() *Config {
	return &Config{
		Steps:        DefaultSteps,
		Runs:         DefaultRuns,
		Bins:         DefaultBins,
		NValues:      []int{100, 300, 600, 1000},
		ShowProgress: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
