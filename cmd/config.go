package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/etnz/simfolio"
	toml "github.com/pelletier/go-toml/v2"
)

// Environment variables overriding the configuration file. They are also
// passed to extensions with the effective settings.
const (
	EnvCurrency = "SIMFOLIO_CURRENCY"
	EnvSeed     = "SIMFOLIO_SEED"
	EnvVerbose  = "SIMFOLIO_VERBOSE"
)

// Config holds the settings of a run.
type Config struct {
	Currency string `toml:"currency"`
	Seed     string `toml:"seed"`
	Verbose  bool   `toml:"verbose"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{Currency: simfolio.DefaultCurrency}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overrides c with the non empty variables returned by getenv.
func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvCurrency); v != "" {
		c.Currency = v
	}
	if v := getenv(EnvSeed); v != "" {
		c.Seed = v
	}
	if v := getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvVerbose, v, err)
		}
		c.Verbose = b
	}
	return nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	return simfolio.ValidCurrency(c.Currency)
}

// Environ returns the settings as environment variables.
func (c *Config) Environ() []string {
	return []string{
		EnvCurrency + "=" + c.Currency,
		EnvSeed + "=" + c.Seed,
		EnvVerbose + "=" + strconv.FormatBool(c.Verbose),
	}
}

// Settings resolves the effective settings: command line flags over the
// environment over the configuration file over the defaults.
func Settings() (*Config, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if *currencyFlag != "" {
		cfg.Currency = *currencyFlag
	}
	if *seedFlag != "" {
		cfg.Seed = *seedFlag
	}
	if *Verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
