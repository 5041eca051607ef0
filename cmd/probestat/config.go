package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/g-m-twostay/go-dsa/Maps"
	"gopkg.in/yaml.v3"
)

// Run is one table configuration every input file is loaded into.
type Run struct {
	Name string `yaml:"name"`
	//Size of the table; 0 uses the smallest prime not less than Expected.
	Size uint `yaml:"size"`
	//Expected number of keys; 0 uses the number of words in the file.
	Expected uint   `yaml:"expected"`
	Hasher   string `yaml:"hasher"`
}

type Config struct {
	Runs []Run `yaml:"runs"`
}

var defaultConfig = Config{
	Runs: []Run{{Name: "default"}},
}

// LoadConfig reads the yaml file at path. An empty path gives the default config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{Runs: slices.Clone(defaultConfig.Runs)}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var c Config
	if err = yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(c.Runs) == 0 {
		c.Runs = slices.Clone(defaultConfig.Runs)
	}
	for i := range c.Runs {
		if c.Runs[i].Name == "" {
			c.Runs[i].Name = fmt.Sprintf("run%d", i)
		}
	}
	return &c, nil
}

// withFlags adds one run per size and sets hasher on the runs that don't name one.
// The runs from the config are replaced when sizes are given.
func (c *Config) withFlags(sizes []uint, hasher string) error {
	if len(sizes) > 0 {
		c.Runs = c.Runs[:0]
		for _, s := range sizes {
			c.Runs = append(c.Runs, Run{Name: fmt.Sprintf("size%d", s), Size: s})
		}
	}
	for i := range c.Runs {
		if c.Runs[i].Hasher == "" {
			c.Runs[i].Hasher = hasher
		}
		if _, ok := Maps.HasherByName(c.Runs[i].Hasher); !ok {
			return fmt.Errorf("run %s: unknown hasher %q", c.Runs[i].Name, c.Runs[i].Hasher)
		}
	}
	return nil
}
