package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/repkit/repkit/internal/constants"
)

// Config holds client configuration. All fields have working defaults so a
// missing config file is not an error.
type Config struct {
	BaseURL        string        `yaml:"base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	TokenBackend   string        `yaml:"token_backend"`
	ConfigDir      string        `yaml:"-"`
	Debug          bool          `yaml:"debug"`
}

// Default returns a config populated with defaults, rooted at dir.
func Default(dir string) *Config {
	return &Config{
		BaseURL:        constants.DefaultBaseURL,
		RequestTimeout: constants.DefaultRequestTimeout,
		TokenBackend:   string(constants.TokenBackendKeyring),
		ConfigDir:      dir,
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file yields defaults. Env vars:
//
//	REPKIT_API_BASE_URL, REPKIT_TOKEN_BACKEND, REPKIT_DEBUG
func Load(path string) (*Config, error) {
	path = ExpandHome(path)
	cfg := Default(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// UnmarshalYAML decodes the file form, parsing request_timeout as a Go
// duration string. Absent keys keep whatever the Config already holds, so
// defaults survive partial files.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	raw := struct {
		BaseURL        string `yaml:"base_url"`
		RequestTimeout string `yaml:"request_timeout"`
		TokenBackend   string `yaml:"token_backend"`
		Debug          bool   `yaml:"debug"`
	}{
		BaseURL:      c.BaseURL,
		TokenBackend: c.TokenBackend,
		Debug:        c.Debug,
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	c.BaseURL = raw.BaseURL
	c.TokenBackend = raw.TokenBackend
	c.Debug = raw.Debug
	if raw.RequestTimeout != "" {
		d, err := time.ParseDuration(raw.RequestTimeout)
		if err != nil {
			return fmt.Errorf("invalid request_timeout: %w", err)
		}
		c.RequestTimeout = d
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("REPKIT_API_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("REPKIT_TOKEN_BACKEND"); v != "" {
		cfg.TokenBackend = v
	}
	if v := os.Getenv("REPKIT_DEBUG"); v == "1" || strings.EqualFold(v, "true") {
		cfg.Debug = true
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must start with http:// or https://, got %q", c.BaseURL)
	}
	switch constants.TokenBackend(c.TokenBackend) {
	case constants.TokenBackendKeyring, constants.TokenBackendFile:
	default:
		return fmt.Errorf("token_backend must be %q or %q, got %q",
			constants.TokenBackendKeyring, constants.TokenBackendFile, c.TokenBackend)
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = constants.DefaultRequestTimeout
	}
	return nil
}

// TokenFilePath returns the path of the file-backend credential store.
func (c *Config) TokenFilePath() string {
	return filepath.Join(c.ConfigDir, constants.TokenFileName)
}

// HistoryPath returns the path of the local generation history database.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.ConfigDir, constants.HistoryFileName)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
