package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML config file shape used by the CLI. Only set fields
// override the environment-derived config.
type fileConfig struct {
	APIBaseURL      string `yaml:"apiBaseUrl"`
	SessionBackend  string `yaml:"sessionBackend"`
	SessionDir      string `yaml:"sessionDir"`
	RedisURL        string `yaml:"redisUrl"`
	HTTPTimeoutSecs int    `yaml:"httpTimeoutSeconds"`
}

// DefaultFilePath returns the conventional CLI config file location,
// <user config dir>/propdesk/config.yaml, or "" if it cannot be resolved.
func DefaultFilePath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "propdesk", "config.yaml")
}

// LoadWithFile loads environment configuration and overlays the YAML file
// at path. A missing file is not an error; a malformed one is.
func LoadWithFile(path string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.SessionBackend != "" {
		cfg.SessionBackend = fc.SessionBackend
	}
	if fc.SessionDir != "" {
		cfg.SessionDir = fc.SessionDir
	}
	if fc.RedisURL != "" {
		cfg.RedisURL = fc.RedisURL
	}
	if fc.HTTPTimeoutSecs > 0 {
		cfg.HTTPTimeoutSecs = fc.HTTPTimeoutSecs
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
