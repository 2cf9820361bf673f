// Package config loads the tunables of the path engine and its service.
//
// Values are layered, lowest precedence first: built-in defaults, an
// optional YAML file, a .env file, and PATHSCOPE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"pathscope/internal/payload"
	"pathscope/internal/suggest"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PATHSCOPE_"

type Config struct {
	Extract ExtractConfig `yaml:"extract"`
	Match   MatchConfig   `yaml:"match"`
	Suggest SuggestConfig `yaml:"suggest"`
	Cache   CacheConfig   `yaml:"cache"`
	Log     LogConfig     `yaml:"log"`
}

type ExtractConfig struct {
	// MaxDepth limits container nesting during extraction (0 = no limit).
	MaxDepth int `yaml:"max_depth"`
	// MaxPaths limits the number of extracted paths (0 = no limit).
	MaxPaths int `yaml:"max_paths"`
	// Sampling names the array sampling strategy.
	Sampling string `yaml:"sampling"`
}

type MatchConfig struct {
	SuggestionLimit int `yaml:"suggestion_limit"`
	AvailableLimit  int `yaml:"available_limit"`
	ClosestLimit    int `yaml:"closest_limit"`
}

type SuggestConfig struct {
	StripPrefixes []string `yaml:"strip_prefixes"`
}

type CacheConfig struct {
	// Size is the number of path inventories kept (0 disables the cache).
	Size int `yaml:"size"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Extract: ExtractConfig{
			MaxDepth: 64,
			MaxPaths: 10000,
			Sampling: payload.SamplingFirst,
		},
		Match: MatchConfig{
			SuggestionLimit: 5,
			AvailableLimit:  20,
			ClosestLimit:    3,
		},
		Suggest: SuggestConfig{
			StripPrefixes: append([]string(nil), suggest.DefaultStripPrefixes...),
		},
		Cache: CacheConfig{Size: 128},
		Log:   LogConfig{Level: "info"},
	}
}

// Load builds a Config from the YAML file at path (skipped when empty),
// the given .env files (".env" in the working directory when none are
// given; a missing default file is not an error) and the environment.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields from PATHSCOPE_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var err error

	intVar := func(name string, dst *int) {
		raw, ok := lookup(EnvPrefix + name)
		if !ok || strings.TrimSpace(raw) == "" {
			return
		}

		v, perr := strconv.Atoi(strings.TrimSpace(raw))
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s%s: %w", EnvPrefix, name, perr))
			return
		}

		*dst = v
	}

	stringVar := func(name string, dst *string) {
		if raw, ok := lookup(EnvPrefix + name); ok && strings.TrimSpace(raw) != "" {
			*dst = strings.TrimSpace(raw)
		}
	}

	intVar("EXTRACT_MAX_DEPTH", &c.Extract.MaxDepth)
	intVar("EXTRACT_MAX_PATHS", &c.Extract.MaxPaths)
	stringVar("EXTRACT_SAMPLING", &c.Extract.Sampling)
	intVar("MATCH_SUGGESTION_LIMIT", &c.Match.SuggestionLimit)
	intVar("MATCH_AVAILABLE_LIMIT", &c.Match.AvailableLimit)
	intVar("MATCH_CLOSEST_LIMIT", &c.Match.ClosestLimit)
	intVar("CACHE_SIZE", &c.Cache.Size)
	stringVar("LOG_LEVEL", &c.Log.Level)

	if raw, ok := lookup(EnvPrefix + "SUGGEST_STRIP_PREFIXES"); ok {
		c.Suggest.StripPrefixes = splitList(raw)
	}

	if raw, ok := lookup(EnvPrefix + "LOG_DEVELOPMENT"); ok && strings.TrimSpace(raw) != "" {
		v, perr := strconv.ParseBool(strings.TrimSpace(raw))
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%sLOG_DEVELOPMENT: %w", EnvPrefix, perr))
		} else {
			c.Log.Development = v
		}
	}

	return err
}

// splitList splits a comma separated list, dropping blanks. An empty
// value yields an empty, non-nil list.
func splitList(raw string) []string {
	out := []string{}

	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var err error

	nonNegative := func(name string, v int) {
		if v < 0 {
			err = multierr.Append(err, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	nonNegative("extract.max_depth", c.Extract.MaxDepth)
	nonNegative("extract.max_paths", c.Extract.MaxPaths)
	nonNegative("match.suggestion_limit", c.Match.SuggestionLimit)
	nonNegative("match.available_limit", c.Match.AvailableLimit)
	nonNegative("match.closest_limit", c.Match.ClosestLimit)
	nonNegative("cache.size", c.Cache.Size)

	if _, serr := payload.SamplerByName(c.Extract.Sampling); serr != nil {
		err = multierr.Append(err, fmt.Errorf("extract.sampling: %w", serr))
	}

	if _, lerr := zapcore.ParseLevel(c.Log.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("log.level: %w", lerr))
	}

	return err
}

// NewLogger builds a zap logger for the configured level and mode.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
