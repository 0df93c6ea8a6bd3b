package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the user configuration stored at
// ~/.config/repokit/config.json. All fields are optional.
type Config struct {
	APIURL    *string  `json:"api_url,omitempty"`
	UploadURL *string  `json:"upload_url,omitempty"`
	Exclude   []string `json:"exclude,omitempty"`
	LogFile   *string  `json:"log_file,omitempty"`
}

// DefaultPath returns the user configuration file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "repokit", "config.json"), nil
}

// Load reads the configuration file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Config doesn't exist - return default
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &config, nil
}

// LoadDefault reads the configuration from the default location.
// A machine with no resolvable config directory gets the defaults.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return &Config{}, nil
	}
	return Load(path)
}

// Save writes the configuration to path, creating parent directories
func Save(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, configJSON, 0600)
}

// GetAPIURL returns the configured GitHub API base URL, or "" for github.com
func (c *Config) GetAPIURL() string {
	if c == nil || c.APIURL == nil {
		return ""
	}
	return *c.APIURL
}

// GetUploadURL returns the configured upload URL, or "" to mirror the API URL
func (c *Config) GetUploadURL() string {
	if c == nil || c.UploadURL == nil {
		return ""
	}
	return *c.UploadURL
}

// GetLogFile returns the log file path, or "" when file logging is disabled
func (c *Config) GetLogFile() string {
	if c == nil || c.LogFile == nil {
		return ""
	}
	return *c.LogFile
}

// IsExcluded checks if a repository full name is on the exclude list.
// Matching is case-insensitive, like repository names on GitHub.
func (c *Config) IsExcluded(fullName string) bool {
	if c == nil {
		return false
	}
	for _, name := range c.Exclude {
		if strings.EqualFold(name, fullName) {
			return true
		}
	}
	return false
}
