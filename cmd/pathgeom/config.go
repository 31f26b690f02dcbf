package main

import (
	"os"

	"github.com/osuushi/pathgeom/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings that can come from the YAML config file. Command line flags take
// precedence over anything set here.
type Config struct {
	// "truncate" or "real"
	Division string  `yaml:"division"`
	Scale    float64 `yaml:"scale"`
	Padding  int     `yaml:"padding"`
	Color    bool    `yaml:"color"`
}

func DefaultConfig() Config {
	return Config{
		Division: geom.TruncatingDivision.String(),
		Scale:    20,
		Padding:  geom.DefaultDrawPadding,
		Color:    true,
	}
}

// Load the config file over the defaults. An empty filename gives the
// defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", filename)
	}
	if _, err := config.DivisionMode(); err != nil {
		return config, errors.Wrapf(err, "config %s", filename)
	}
	return config, nil
}

func (c Config) DivisionMode() (geom.DivisionMode, error) {
	switch c.Division {
	case geom.TruncatingDivision.String():
		return geom.TruncatingDivision, nil
	case geom.RealDivision.String():
		return geom.RealDivision, nil
	}
	return 0, errors.Errorf("unknown division mode %q", c.Division)
}
