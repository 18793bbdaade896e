package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pvcalc/pkg/pv"
)

const (
	DefaultTemperature  = 300.0
	DefaultIntrinsic    = 1e10
	DefaultDoping       = 1e16
	DefaultSunTemp      = 5800.0
	DefaultSaturationJo = 1e-12
)

// Config is a set of named formula cases.
type Config struct {
	Cases []Case `yaml:"cases"`
}

// Case names one formula evaluation. Params are keyed by the registry
// parameter names (see pv.Formula.Params).
type Case struct {
	Name    string             `yaml:"name"`
	Formula string             `yaml:"formula"`
	Params  map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{Cases: []Case{*GetPreset("silicon_junction")}}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Cases) == 0 {
		return DefaultConfig(), nil
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

// Case returns the case with the given name, or nil.
func (c *Config) Case(name string) *Case {
	for i := range c.Cases {
		if c.Cases[i].Name == name {
			return &c.Cases[i]
		}
	}
	return nil
}

// Evaluate runs the case through r.
func (c *Case) Evaluate(r *pv.Registry) (float64, error) {
	v, err := r.EvalNamed(c.Formula, c.Params)
	if err != nil {
		return 0, fmt.Errorf("case %s: %w", c.Name, err)
	}
	return v, nil
}

// EvaluateAll evaluates every case, keyed by case name. It stops at the
// first error.
func (c *Config) EvaluateAll(r *pv.Registry) (map[string]float64, error) {
	out := make(map[string]float64, len(c.Cases))
	for i := range c.Cases {
		v, err := c.Cases[i].Evaluate(r)
		if err != nil {
			return nil, err
		}
		out[c.Cases[i].Name] = v
	}
	return out, nil
}
