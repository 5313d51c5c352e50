// Package config loads the optional aoc.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/adventsolve/aoc"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "aoc.yaml"

// Config is the on-disk settings.
type Config struct {
	Inputs  string         `yaml:"inputs"`
	Debug   bool           `yaml:"debug"`
	Plain   bool           `yaml:"plain"`
	Samples map[int]Sample `yaml:"samples"`
}

// Sample declares the expected answers for a day's example input.
type Sample struct {
	File    string `yaml:"file"`
	PartOne string `yaml:"part_one"`
	PartTwo string `yaml:"part_two"`
}

// Error wraps a failure to read or decode a config file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var ErrInvalid = errors.New("invalid config")

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{Inputs: "inputs"}
}

// Load reads path, falling back to Default if the file does not exist.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads and validates path. Unset fields take their defaults.
func LoadFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Path: path, Err: err}
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, &Error{Path: path, Err: fmt.Errorf("%w: %w", ErrInvalid, err)}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, &Error{Path: path, Err: err}
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Inputs == "" {
		return fmt.Errorf("%w: inputs must not be empty", ErrInvalid)
	}
	for day := range c.Samples {
		if day < 1 {
			return fmt.Errorf("%w: samples: day %d", ErrInvalid, day)
		}
	}
	return nil
}

// RunnerSamples converts the declared samples for aoc.Runner.
func (c Config) RunnerSamples() map[int]aoc.Sample {
	out := make(map[int]aoc.Sample, len(c.Samples))
	for day, s := range c.Samples {
		out[day] = aoc.Sample{File: s.File, PartOne: s.PartOne, PartTwo: s.PartTwo}
	}
	return out
}
