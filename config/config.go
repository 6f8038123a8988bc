// Package config holds the solver's tunable constants.
//
// Defaults reproduce the fixed build-time values of the reference solver
// (300 s budget, 35 sampled nearest-neighbor starts above 249 cities). A YAML
// file may override any subset of them:
//
//	time-limit: 30s
//	nn-starts: 50
//	exhaustive-below: 250
//	log-level: debug
//
// time-limit takes either a Go duration ("90s", "1m30s") or a plain number of
// seconds ("300", "1.5"). Setting unlimited: true drops the budget entirely,
// so both phases run to completion and time-limit is ignored.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsptour/deadline"
	"github.com/katalvlaran/tsptour/tsp"
)

// DefaultTimeLimit is the wall-clock budget of a run.
const DefaultTimeLimit = 300 * time.Second

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete set of runtime knobs.
type Config struct {
	TimeLimit       time.Duration
	Unlimited       bool
	SampleStarts    int
	ExhaustiveBelow int
	LogLevel        string
}

// file is the on-disk shape. Pointers distinguish absent keys from zero
// values so that only the keys present override the defaults.
type file struct {
	TimeLimit       *seconds `yaml:"time-limit"`
	Unlimited       *bool    `yaml:"unlimited"`
	SampleStarts    *int     `yaml:"nn-starts"`
	ExhaustiveBelow *int     `yaml:"exhaustive-below"`
	LogLevel        *string  `yaml:"log-level"`
}

// seconds decodes a bare number as seconds and anything else as a Go
// duration string.
type seconds time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *seconds) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("time-limit: line %d: want seconds or a duration", value.Line)
	}
	if f, err := strconv.ParseFloat(value.Value, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt64/float64(time.Second) {
			return fmt.Errorf("time-limit: line %d: %q out of range", value.Line, value.Value)
		}
		*s = seconds(f * float64(time.Second))

		return nil
	}
	d, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("time-limit: line %d: %w", value.Line, err)
	}
	*s = seconds(d)

	return nil
}

// overlay copies the keys present in f onto c.
func (f file) overlay(c *Config) {
	if f.TimeLimit != nil {
		c.TimeLimit = time.Duration(*f.TimeLimit)
	}
	if f.Unlimited != nil {
		c.Unlimited = *f.Unlimited
	}
	if f.SampleStarts != nil {
		c.SampleStarts = *f.SampleStarts
	}
	if f.ExhaustiveBelow != nil {
		c.ExhaustiveBelow = *f.ExhaustiveBelow
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		TimeLimit:       DefaultTimeLimit,
		SampleStarts:    tsp.DefaultSampleStarts,
		ExhaustiveBelow: tsp.DefaultExhaustiveBelow,
		LogLevel:        "info",
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg := Default()
	f.overlay(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and the log level name. A zero time-limit is
// accepted only together with Unlimited.
func (c Config) Validate() error {
	if c.TimeLimit < 0 || (c.TimeLimit == 0 && !c.Unlimited) {
		return fmt.Errorf("%w: time-limit must be positive, got %s", ErrInvalidConfig, c.TimeLimit)
	}
	if c.SampleStarts <= 0 {
		return fmt.Errorf("%w: nn-starts must be positive, got %d", ErrInvalidConfig, c.SampleStarts)
	}
	if c.ExhaustiveBelow < 0 {
		return fmt.Errorf("%w: exhaustive-below must not be negative, got %d", ErrInvalidConfig, c.ExhaustiveBelow)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Budget returns the run's deadline measured from start: unbounded when
// Unlimited is set, otherwise TimeLimit.
func (c Config) Budget(start time.Time, opts ...deadline.Option) *deadline.Deadline {
	if c.Unlimited {
		return deadline.Unlimited(start, opts...)
	}

	return deadline.New(start, c.TimeLimit, opts...)
}

// Options converts the config into solver options.
func (c Config) Options() tsp.Options {
	return tsp.Options{
		SampleStarts:    c.SampleStarts,
		ExhaustiveBelow: c.ExhaustiveBelow,
	}
}

// Level parses LogLevel ("debug", "info", "warn", "error"; case-insensitive).
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: unknown log-level %q", ErrInvalidConfig, c.LogLevel)
}
