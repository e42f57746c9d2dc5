// Package config loads the YAML configuration file. Flags on the CLI override
// anything set here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Solver  Solver  `yaml:"solver"`
	Storage Storage `yaml:"storage"`
	Log     Log     `yaml:"log"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Solver struct {
	// Diagonal enables the variant with the two main diagonals as units.
	Diagonal bool `yaml:"diagonal"`
	// NakedTwins interleaves the naked-twins pruning into reduction.
	NakedTwins bool `yaml:"naked_twins"`
}

type Storage struct {
	Path string `yaml:"path"`
}

type Log struct {
	Level string `yaml:"level"` // debug|info|warn|error
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server:  Server{Addr: ":8080"},
		Solver:  Solver{NakedTwins: true},
		Storage: Storage{Path: "./data"},
		Log:     Log{Level: "info"},
	}
}

// Load reads path and merges it over the defaults. A missing file is not an
// error: callers get the defaults back so the binary runs unconfigured.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
