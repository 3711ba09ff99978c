// Package config loads settings for the exeq command line tool.
//
// Sources are applied in order, later ones winning:
//
//  1. the YAML config file
//  2. a .env file
//  3. the process environment (EXEQ_API_KEY, EXEQ_BASE_URL, EXEQ_TIMEOUT)
//  4. command line flags, applied by the caller with [Config.Override]
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/exeq-dev/exeq-go"
)

// DefaultConfigFile is the name of the config file inside the exeq config
// directory.
const DefaultConfigFile = "config.yaml"

// DefaultEnvFile is read from the working directory when no other .env
// path is given.
const DefaultEnvFile = ".env"

// Environment variables.
const (
	EnvAPIKey  = "EXEQ_API_KEY"
	EnvBaseURL = "EXEQ_BASE_URL"
	EnvTimeout = "EXEQ_TIMEOUT"
)

// Config is the resolved CLI configuration.
type Config struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
	Output  string        `yaml:"output,omitempty"`
}

// DefaultPath returns the default config file location, for example
// ~/.config/exeq/config.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, "exeq", DefaultConfigFile), nil
}

// Load resolves configuration from the config file, the .env file and the
// environment.
//
// An empty path or envFile selects the default location, and a missing
// default file is not an error. A file named explicitly must exist.
func Load(path, envFile string) (*Config, error) {
	cfg := &Config{}

	explicit := path != ""
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if !explicit && errors.Is(err, os.ErrNotExist) {
				err = nil
			}
			if err != nil {
				return nil, err
			}
		}
	}

	explicitEnv := envFile != ""
	if !explicitEnv {
		envFile = DefaultEnvFile
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil {
		if explicitEnv || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to read env file: %w", err)
		}
		dotenv = map[string]string{}
	}
	if err := cfg.applyEnv(func(key string) (string, bool) {
		v, ok := dotenv[key]
		return v, ok
	}); err != nil {
		return nil, fmt.Errorf("env file %s: %w", envFile, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("unable to parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAPIKey); ok && v != "" {
		c.APIKey = v
	}
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	return nil
}

// Override applies non-empty flag values on top of the loaded settings.
func (c *Config) Override(apiKey, baseURL string) {
	if apiKey != "" {
		c.APIKey = apiKey
	}
	if baseURL != "" {
		c.BaseURL = baseURL
	}
}

// ClientOptions converts the configuration into SDK options. Unset values
// are left to the SDK defaults.
func (c *Config) ClientOptions(logger zerolog.Logger) []exeq.Option {
	opts := []exeq.Option{
		exeq.WithLogger(logger),
		exeq.WithUserAgent("exeq-cli/" + exeq.Version),
	}
	if c.BaseURL != "" {
		opts = append(opts, exeq.WithBaseURL(c.BaseURL))
	}
	if c.Timeout > 0 {
		opts = append(opts, exeq.WithTimeout(c.Timeout))
	}
	return opts
}

// Write saves the configuration to path with owner-only permissions,
// creating parent directories as needed.
func (c *Config) Write(path string) error {
	if path == "" {
		return errors.New("file path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("unable to generate configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}
	return nil
}
