// Package config loads server configuration: listen address, port,
// data-root path, and optional cluster seeds, layered as YAML file
// defaults overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
}

// ServerConfig holds listen-address configuration.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr" env:"STORE_LISTEN_ADDR"`
	Port       int    `yaml:"port" env:"STORE_PORT"`
}

// StoreConfig holds the on-disk root and a reserved cluster seeds
// list. Seeds is carried through configuration but not yet acted on
// by any running component.
type StoreConfig struct {
	Path  string   `yaml:"path" env:"STORE_DATA_PATH"`
	Seeds []string `yaml:"seeds" env:"STORE_SEEDS"`
}

// Default returns the built-in defaults: listen 0.0.0.0, port 4242,
// data root ./.data.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr: "0.0.0.0",
			Port:       4242,
		},
		Store: StoreConfig{
			Path: "./.data",
		},
	}
}

// Load reads a YAML file at path on top of Default(), then applies
// environment overrides via LoadFromEnv.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv overrides cfg's fields from the environment variables
// named in their `env` tags. Precedence is file defaults, then
// environment.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("STORE_LISTEN_ADDR"); v != "" {
		c.Server.ListenAddr = v
	}
	if v := os.Getenv("STORE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid STORE_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("STORE_DATA_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("STORE_SEEDS"); v != "" {
		c.Store.Seeds = strings.Split(v, ",")
	}
	return nil
}

// Validate rejects configurations that cannot be served.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Server.Port)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("config: store.path must not be empty")
	}
	return nil
}

// ListenAddress renders the {listen_addr}:{port} endpoint the server
// binds to.
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.ListenAddr, c.Server.Port)
}
