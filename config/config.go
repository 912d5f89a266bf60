// Package config loads lvroute settings from defaults, an optional TOML
// file, LVROUTE_* environment variables, and command-line flags.
// Priority: Flags > Env > Config File > Defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is read from the working directory when no --config is given.
const DefaultFile = "lvroute.toml"

// EnvPrefix prefixes environment overrides, e.g. LVROUTE_MIN_WEIGHT=2.
const EnvPrefix = "LVROUTE_"

// Spanning-forest methods accepted by the mst command.
const (
	MethodKruskal = "kruskal"
	MethodPrim    = "prim"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all configuration for the application
type Config struct {
	// Data is the CSV edge list; empty means the built-in demo network.
	Data string `koanf:"data"`
	From string `koanf:"from"`
	To   string `koanf:"to"`

	Method string `koanf:"method"`
	Root   string `koanf:"root"`

	// Empirical timing harness.
	Sizes       []int   `koanf:"sizes"`
	Runs        int     `koanf:"runs"`
	Probability float64 `koanf:"probability"`
	MinWeight   int     `koanf:"min-weight"`
	MaxWeight   int     `koanf:"max-weight"`
	Seed        int64   `koanf:"seed"`

	// Random, when > 0, makes verify sample a graph of that many vertices.
	Random  int  `koanf:"random"`
	Workers int  `koanf:"workers"`
	Verbose bool `koanf:"verbose"`
}

// Defaults returns the built-in settings: the Finsbury Park to Cockfosters
// query and sizes 100..1000 step 100, 20 runs, p=0.05, weights 1..20, seed 1337.
func Defaults() map[string]interface{} {
	sizes := make([]int, 0, 10)
	for n := 100; n <= 1000; n += 100 {
		sizes = append(sizes, n)
	}

	return map[string]interface{}{
		"data":        "",
		"from":        "Finsbury Park",
		"to":          "Cockfosters",
		"method":      MethodKruskal,
		"root":        "",
		"sizes":       sizes,
		"runs":        20,
		"probability": 0.05,
		"min-weight":  1,
		"max-weight":  20,
		"seed":        int64(1337),
		"random":      0,
		"workers":     runtime.NumCPU(),
		"verbose":     false,
	}
}

// Load builds a Config. path names the TOML file; when empty, DefaultFile is
// tried and silently skipped if it does not exist. f may be nil.
func Load(path string, f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	} else if _, err := os.Stat(DefaultFile); err == nil {
		if err := k.Load(file.Provider(DefaultFile), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", DefaultFile, err)
		}
	}

	// 3. Environment Variables
	// Prefix: LVROUTE_ (e.g., LVROUTE_MAX_WEIGHT=50)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// sizes from the environment arrive as "100,200,300"
	if raw, ok := k.Get("sizes").(string); ok {
		sizes, err := parseInts(raw)
		if err != nil {
			return nil, fmt.Errorf("sizes: %w", err)
		}
		if err = k.Set("sizes", sizes); err != nil {
			return nil, err
		}
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Method {
	case MethodKruskal, MethodPrim:
	default:
		return fmt.Errorf("%w: method %q (want %s or %s)", ErrInvalid, c.Method, MethodKruskal, MethodPrim)
	}
	if c.Probability < 0 || c.Probability > 1 {
		return fmt.Errorf("%w: probability %g not in [0,1]", ErrInvalid, c.Probability)
	}
	if c.MinWeight < 0 || c.MinWeight > c.MaxWeight {
		return fmt.Errorf("%w: weights [%d,%d]", ErrInvalid, c.MinWeight, c.MaxWeight)
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs %d", ErrInvalid, c.Runs)
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: size %d", ErrInvalid, n)
		}
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	if c.Random < 0 {
		return fmt.Errorf("%w: random %d", ErrInvalid, c.Random)
	}

	return nil
}

func parseInts(raw string) ([]int, error) {
	var out []int
	for _, field := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' || r == '[' || r == ']' }) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
