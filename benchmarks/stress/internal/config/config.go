package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ringlab/ring/ringtest"
)

const (
	RingSubject      = "ring"
	GammazeroSubject = "gammazero"
	SliceSubject     = "slice"
)

func IsAvailableSubject(name string) bool {
	switch name {
	case RingSubject, GammazeroSubject, SliceSubject:
		return true
	default:
		return false
	}
}

type Config struct {
	Name      string     `toml:"name"`
	Subjects  []string   `toml:"subjects"`
	Scenarios []Scenario `toml:"scenarios"`
}

func (c *Config) validate() error {
	if c.Name == "" {
		return errors.New("name is empty")
	}

	if len(c.Subjects) < 2 {
		return errors.New("at least two subjects are required")
	}

	if c.Subjects[0] != RingSubject {
		return errors.New("the first subject should be ring")
	}

	for _, s := range c.Subjects {
		if !IsAvailableSubject(s) {
			return fmt.Errorf("not valid subject: %s", s)
		}
	}

	if len(c.Scenarios) == 0 {
		return errors.New("scenarios is empty")
	}

	names := make(map[string]struct{}, len(c.Scenarios))
	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		if err := s.validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		if _, ok := names[s.Name]; ok {
			return fmt.Errorf("duplicate scenario: %s", s.Name)
		}
		names[s.Name] = struct{}{}
	}

	return nil
}

type Scenario struct {
	Name       string   `toml:"name"`
	Ops        int      `toml:"ops"`
	MaxValue   int      `toml:"max_value"`
	CheckEvery int      `toml:"check_every"`
	Seeds      []uint64 `toml:"seeds"`
	Weights    Weights  `toml:"weights"`
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return errors.New("name is empty")
	}

	if s.Ops <= 0 {
		return errors.New("ops should be positive")
	}

	if s.MaxValue < 0 {
		return errors.New("max_value should not be negative")
	}

	if s.CheckEvery < 0 {
		return errors.New("check_every should not be negative")
	}

	if s.Weights.AddFirst+s.Weights.AddLast == 0 {
		return errors.New("weights should allow at least one add operation")
	}

	return nil
}

// RunSeeds returns the seeds to run the scenario with. Without explicit seeds
// a single seed is derived from the scenario name.
func (s *Scenario) RunSeeds() []uint64 {
	if len(s.Seeds) > 0 {
		return s.Seeds
	}
	return []uint64{ringtest.SeedFor(s.Name)}
}

func (s *Scenario) RunConfig(seed uint64) ringtest.Config {
	return ringtest.Config{
		Ops:        s.Ops,
		MaxValue:   s.MaxValue,
		CheckEvery: s.CheckEvery,
		Seed:       seed,
		Weights: ringtest.Weights{
			AddFirst:    s.Weights.AddFirst,
			AddLast:     s.Weights.AddLast,
			RemoveFirst: s.Weights.RemoveFirst,
			RemoveLast:  s.Weights.RemoveLast,
			Get:         s.Weights.Get,
		},
	}
}

type Weights struct {
	AddFirst    int `toml:"add_first"`
	AddLast     int `toml:"add_last"`
	RemoveFirst int `toml:"remove_first"`
	RemoveLast  int `toml:"remove_last"`
	Get         int `toml:"get"`
}

func Parse(content []byte) (Config, error) {
	var c Config
	if err := toml.Unmarshal(content, &c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func Load(configPath string) (Config, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(content)
}
