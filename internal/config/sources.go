package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SourceConfig - одна точка опроса оператора
type SourceConfig struct {
	Operator  string        `yaml:"operator"` // telia | tre | lycamobile
	URL       string        `yaml:"url"`
	Timeout   time.Duration `yaml:"timeout"` // 0 - общий FETCH_TIMEOUT
	UserAgent string        `yaml:"user_agent"`
}

type sourcesFile struct {
	Sources []SourceConfig `yaml:"sources"`
}

// LoadSources читает список источников из YAML
func LoadSources(path string) ([]SourceConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f sourcesFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, s := range f.Sources {
		if s.Operator == "" || s.URL == "" {
			return nil, fmt.Errorf("source #%d: %w", i, errors.New("operator and url are required"))
		}
	}
	return f.Sources, nil
}
