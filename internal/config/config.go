// Package config loads settings for the decision tree command from a YAML
// or TOML file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the decision tree command settings.
type Config struct {
	// Train is the training data file: one sample per line, label last.
	Train string `yaml:"train" toml:"train"`

	// Test is the file of samples to classify, without labels.
	Test string `yaml:"test" toml:"test"`

	// DOT is where the Graphviz export is written. Empty disables it.
	DOT string `yaml:"dot" toml:"dot"`

	// PrintTree prints the learned tree before classifying.
	PrintTree bool `yaml:"print_tree" toml:"print_tree"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Train: "train.txt",
		Test:  "test.txt",
		DOT:   "tree.dot",
	}
}

// Load reads the configuration at path over the defaults. The format is
// chosen by extension (.yaml, .yml or .toml). An empty path or a missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "config: read")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "config: parse %s", path)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrapf(err, "config: parse %s", path)
		}
	default:
		return nil, errors.Errorf("config: unsupported file extension %q", ext)
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Train == "" {
		return errors.New("config: train file not set")
	}
	if c.Test == "" {
		return errors.New("config: test file not set")
	}
	if c.Train == c.Test {
		return errors.Errorf("config: train and test are the same file %q", c.Train)
	}
	return nil
}
