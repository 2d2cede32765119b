package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PathEnv overrides the default config file location.
const PathEnv = "DXFACTS_CONFIG"

// Config holds optional defaults loaded from ~/.config/dxfacts/config.yaml.
type Config struct {
	DefaultProfile string `yaml:"default_profile"`
	DefaultRegion  string `yaml:"default_region"`
	EndpointURL    string `yaml:"endpoint_url"`
	Output         string `yaml:"output"`
}

// Path returns the config file location, honoring PathEnv.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dxfacts", "config.yaml")
}

// Load reads the config file. Returns zero-value Config if the file doesn't exist.
func Load() (*Config, error) {
	path := Path()
	if path == "" {
		return &Config{}, nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Merge applies CLI flag overrides. Flags take precedence over config defaults.
func (c *Config) Merge(profile, region string) (string, string) {
	p := c.DefaultProfile
	if profile != "" {
		p = profile
	}
	r := c.DefaultRegion
	if region != "" {
		r = region
	}
	return p, r
}

// Endpoint returns the flag value, or the configured endpoint when the flag is empty.
func (c *Config) Endpoint(flag string) string {
	if flag != "" {
		return flag
	}
	return c.EndpointURL
}

// OutputFormat returns the flag value, the configured format, or "json".
func (c *Config) OutputFormat(flag string) string {
	switch {
	case flag != "":
		return flag
	case c.Output != "":
		return c.Output
	default:
		return "json"
	}
}
