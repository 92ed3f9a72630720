// Package grouping loads the optional populations file: a YAML mapping of
// population name to the samples it contains. When present, it is the
// run's declared universe: any population or sample outside it is a
// configuration error, reported with the offending identifier.
package grouping

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Populations map[string][]string `yaml:"populations"`
}

// Load reads and validates a groups file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(cfg.Populations) == 0 {
		return nil, fmt.Errorf("%s: no populations declared", path)
	}
	seen := map[string]string{}
	for pop, samples := range cfg.Populations {
		for _, s := range samples {
			if prev, dup := seen[s]; dup {
				return nil, fmt.Errorf("%s: sample %q in both %q and %q", path, s, prev, pop)
			}
			seen[s] = pop
		}
	}
	return &cfg, nil
}

// HasPopulation reports whether name is declared.
func (c *Config) HasPopulation(name string) bool {
	_, ok := c.Populations[name]
	return ok
}

// PopulationOf returns the population a sample belongs to ("" if none).
func (c *Config) PopulationOf(sample string) string {
	for pop, samples := range c.Populations {
		for _, s := range samples {
			if s == sample {
				return pop
			}
		}
	}
	return ""
}

// CheckPopulation returns a descriptive error for an undeclared population.
func (c *Config) CheckPopulation(name string) error {
	if name == "" || c.HasPopulation(name) {
		return nil
	}
	return fmt.Errorf("unknown population %q (not declared in groups file; declared: %v)", name, c.PopulationNames())
}

// CheckSamples verifies the input sample set (e.g. the VCF header) matches
// the declared universe in both directions: every input sample must be
// assigned to a population, and every declared sample must appear in the
// input. The first offender is named.
func (c *Config) CheckSamples(present []string) error {
	have := make(map[string]bool, len(present))
	for _, s := range present {
		have[s] = true
		if c.PopulationOf(s) == "" {
			return fmt.Errorf("unknown sample %q (not declared in groups file)", s)
		}
	}
	for _, pop := range c.PopulationNames() {
		for _, s := range c.Populations[pop] {
			if !have[s] {
				return fmt.Errorf("unknown sample %q (declared in population %q, absent from input)", s, pop)
			}
		}
	}
	return nil
}

// PopulationNames returns the declared population names, sorted.
func (c *Config) PopulationNames() []string {
	names := make([]string, 0, len(c.Populations))
	for n := range c.Populations {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
