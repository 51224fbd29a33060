package tester

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the tester options for loading from a YAML file. Zero
// values leave the corresponding default in place.
type Config struct {
	Name      string   `yaml:"name"`
	Rounds    int      `yaml:"rounds"`
	Matches   int      `yaml:"matches"`
	Seed      *uint64  `yaml:"seed"`
	Opponents []string `yaml:"opponents"`
	Records   string   `yaml:"records"`
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// Options converts the config into tester options.
func (c Config) Options() []Option {
	options := []Option{}
	if c.Name != "" {
		options = append(options, WithName(c.Name))
	}
	if c.Rounds > 0 {
		options = append(options, WithRounds(c.Rounds))
	}
	if c.Matches > 0 {
		options = append(options, WithMatches(c.Matches))
	}
	if c.Seed != nil {
		options = append(options, WithSeed(*c.Seed))
	}
	if len(c.Opponents) > 0 {
		options = append(options, WithOpponents(c.Opponents...))
	}
	if c.Records != "" {
		options = append(options, WithRecords(c.Records))
	}
	return options
}
