package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// DefaultTimeout is used when no request timeout is configured.
const DefaultTimeout = 30 * time.Second

// Config holds the Auphonic client credentials and session settings
type Config struct {
	ClientID       string
	ClientSecret   string
	Username       string
	Password       string
	AccessToken    string
	TranscriptPath string
	Timeout        time.Duration
}

// fileConfig mirrors the TOML file layout.
type fileConfig struct {
	ClientID       string `toml:"client_id"`
	ClientSecret   string `toml:"client_secret"`
	Username       string `toml:"username"`
	Password       string `toml:"password"`
	AccessToken    string `toml:"access_token"`
	TranscriptPath string `toml:"transcript_path"`
	Timeout        string `toml:"timeout"`
}

// Load reads the configuration from the environment (and an optional .env file)
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{Timeout: DefaultTimeout}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads a TOML config file and overlays environment variables on top.
// A missing file is not an error; the environment alone is used.
func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{Timeout: DefaultTimeout}

	resolved, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		var raw fileConfig
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if err := cfg.applyFile(raw); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFile(raw fileConfig) error {
	c.ClientID = strings.TrimSpace(raw.ClientID)
	c.ClientSecret = strings.TrimSpace(raw.ClientSecret)
	c.Username = strings.TrimSpace(raw.Username)
	c.Password = raw.Password
	c.AccessToken = strings.TrimSpace(raw.AccessToken)
	c.TranscriptPath = strings.TrimSpace(raw.TranscriptPath)
	if t := strings.TrimSpace(raw.Timeout); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", t, err)
		}
		c.Timeout = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	overlay := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	overlay(&c.ClientID, "AUPHONIC_CLIENT_ID")
	overlay(&c.ClientSecret, "AUPHONIC_CLIENT_SECRET")
	overlay(&c.Username, "AUPHONIC_USERNAME")
	overlay(&c.Password, "AUPHONIC_PASSWORD")
	overlay(&c.AccessToken, "AUPHONIC_ACCESS_TOKEN")
	overlay(&c.TranscriptPath, "AUPHONIC_TRANSCRIPT_PATH")

	if v := os.Getenv("AUPHONIC_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("AUPHONIC_TIMEOUT is invalid: %w", err)
		}
		c.Timeout = d
	}
	return nil
}

// Validate checks that the client credentials are present
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("AUPHONIC_CLIENT_ID is required")
	}
	if strings.TrimSpace(c.ClientSecret) == "" {
		return fmt.Errorf("AUPHONIC_CLIENT_SECRET is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("AUPHONIC_TIMEOUT must be positive")
	}
	// Username, password and access token are optional
	return nil
}

// HasUserCredentials reports whether a username/password pair is configured.
func (c *Config) HasUserCredentials() bool {
	return strings.TrimSpace(c.Username) != "" && strings.TrimSpace(c.Password) != ""
}

// HasAccessToken reports whether a pre-issued access token is configured.
func (c *Config) HasAccessToken() bool {
	return strings.TrimSpace(c.AccessToken) != ""
}

func expandHome(path string) (string, error) {
	if path == "" || !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
