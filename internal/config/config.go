package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/philipparndt/circles/internal/logging"
	"github.com/philipparndt/circles/pkg/montecarlo"
)

// Environment variable names
const (
	EnvSeed      = "CIRCLES_SEED"
	EnvWorkers   = "CIRCLES_WORKERS"
	EnvOutputDir = "CIRCLES_OUTPUT_DIR"
	EnvLogLevel  = "CIRCLES_LOG_LEVEL"
	EnvDebounce  = "CIRCLES_DEBOUNCE"
)

// DefaultEnvFile is read by Load when present
const DefaultEnvFile = ".env"

// Config represents the complete application configuration
type Config struct {
	Seed      uint64
	HasSeed   bool // false means a time-based seed is used
	Workers   int
	OutputDir string
	LogLevel  logging.Level
	Debounce  time.Duration
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Workers:   1,
		OutputDir: ".",
		LogLevel:  logging.LevelInfo,
		Debounce:  200 * time.Millisecond,
	}
}

// Load reads envFile (if it exists) into the environment and builds the
// configuration from environment variables. Variables already set in the
// environment take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to load %s", envFile)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the configuration from a variable lookup function
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if v, ok := nonEmpty(lookup, EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, invalid(EnvSeed, v, err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	if v, ok := nonEmpty(lookup, EnvWorkers); ok {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, invalid(EnvWorkers, v, err)
		}
		if workers < 1 {
			return nil, invalid(EnvWorkers, v, errors.New("must be positive"))
		}
		cfg.Workers = workers
	}

	if v, ok := nonEmpty(lookup, EnvOutputDir); ok {
		cfg.OutputDir = v
	}

	if v, ok := nonEmpty(lookup, EnvLogLevel); ok {
		level, err := logging.ParseLevel(v)
		if err != nil {
			return nil, invalid(EnvLogLevel, v, err)
		}
		cfg.LogLevel = level
	}

	if v, ok := nonEmpty(lookup, EnvDebounce); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, invalid(EnvDebounce, v, err)
		}
		if d < 0 {
			return nil, invalid(EnvDebounce, v, errors.New("must not be negative"))
		}
		cfg.Debounce = d
	}

	return cfg, nil
}

func nonEmpty(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func invalid(key, value string, cause error) error {
	return errors.Mark(errors.Wrapf(cause, "invalid %s=%q", key, value), montecarlo.ErrInvalidArgument)
}
