// Package config holds the YAML configuration surface of the pipeline:
// n-gram options, vocabulary pruning threshold, stoplist, and report
// settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/internalerr"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/report"
)

// Config is the full pipeline configuration.
type Config struct {
	Ngram       Ngram    `yaml:"ngram"`
	MinTermFreq int      `yaml:"min_term_freq"`
	Stoplist    Stoplist `yaml:"stoplist"`
	Report      Report   `yaml:"report"`
}

// Ngram configures gram expansion.
type Ngram struct {
	N        int    `yaml:"n"`
	PadLeft  bool   `yaml:"pad_left"`
	PadRight bool   `yaml:"pad_right"`
	LeftPad  string `yaml:"left_pad"`
	RightPad string `yaml:"right_pad"`
}

// Stoplist configures stopword filtering: inline terms, a file of terms,
// or neither (the built-in English list).
type Stoplist struct {
	Terms []string `yaml:"terms"`
	Path  string   `yaml:"path"`
}

// Report configures histogram diagnostics.
type Report struct {
	SortBy string `yaml:"sort_by"`
	Top    int    `yaml:"top"`
	PDF    string `yaml:"pdf"`
	Title  string `yaml:"title"`
}

// Load reads a pipeline configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the pipeline cannot honor.
func (c *Config) Validate() error {
	if c.Ngram.N < 0 {
		return fmt.Errorf("%w: ngram.n must not be negative, got %d", internalerr.ErrInvalidConfig, c.Ngram.N)
	}
	if c.MinTermFreq < 0 {
		return fmt.Errorf("%w: min_term_freq must be >= 0, got %d", internalerr.ErrInvalidConfig, c.MinTermFreq)
	}
	switch report.SortMode(c.Report.SortBy) {
	case "", report.SortByCount, report.SortByWeightedSum:
	default:
		return fmt.Errorf("%w: report.sort_by must be %q or %q, got %q",
			internalerr.ErrInvalidConfig, report.SortByCount, report.SortByWeightedSum, c.Report.SortBy)
	}
	return nil
}

// StoplistFile is the on-disk stoplist format.
type StoplistFile struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*StoplistFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl StoplistFile
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
