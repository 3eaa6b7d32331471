package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/spinrad/internal/experiment"
)

const (
	DefaultSpacing    = 0.2
	DefaultVertices   = 6
	DefaultTruncation = 10
	DefaultMaxN       = 20
)

type Config struct {
	Shape    string  `yaml:"shape"`
	A        float64 `yaml:"a"`
	B        float64 `yaml:"b"`
	C        float64 `yaml:"c"`
	Theta    float64 `yaml:"theta"`
	Vertices int     `yaml:"vertices"`
	N        int     `yaml:"n"`
	MaxN     int     `yaml:"max_n"`
}

func DefaultConfig() *Config {
	return &Config{
		Shape:    "chain-orthogonal",
		A:        DefaultSpacing,
		B:        DefaultSpacing,
		C:        DefaultSpacing,
		Vertices: DefaultVertices,
		N:        DefaultTruncation,
		MaxN:     DefaultMaxN,
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

// Params converts the configuration into shape parameters.
func (c *Config) Params() experiment.Params {
	return experiment.Params{
		A:        c.A,
		B:        c.B,
		C:        c.C,
		Theta:    c.Theta,
		Vertices: c.Vertices,
		N:        c.N,
	}
}
