// Package config loads the gainsiq TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/gainsiq/gainsiq/internal/osutil"
	"github.com/gainsiq/gainsiq/internal/units"
	"github.com/gainsiq/gainsiq/internal/workout"
)

const (
	// AppName is the application name used for config and cache directories
	AppName = "gainsiq"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// LogFile is the name of the log file in the user cache directory
	LogFile = "gainsiq.log"

	// EnvAPIURL overrides api_url
	EnvAPIURL = "GAINSIQ_API_URL"
	// EnvAPIKey overrides api_key
	EnvAPIKey = "GAINSIQ_API_KEY"
)

var (
	// ErrMissingAPIURL is returned by Ready when no API URL is configured
	ErrMissingAPIURL = errors.New("api_url is not configured")
	// ErrMissingAPIKey is returned by Ready when no API key is configured
	ErrMissingAPIKey = errors.New("api_key is not configured")
)

// Config represents the application configuration
type Config struct {
	// APIURL is the base URL of the GainsIQ API
	APIURL string `toml:"api_url"`
	// APIKey is sent as a bearer token on every request
	APIKey string `toml:"api_key"`
	// Unit is the display and input unit for weights (lbs or kg)
	Unit string `toml:"unit"`
	// Phase is the training phase attached to logged sets (cutting, bulking or empty)
	Phase string `toml:"phase"`
	// Timezone defines the timezone used to bucket sets by day (IANA name or "Local")
	Timezone string `toml:"timezone"`
	// Theme is the bubbletint theme ID used by the TUI
	Theme string `toml:"theme"`
	// TimeoutSeconds bounds a single API request
	TimeoutSeconds int `toml:"timeout_seconds"`
	// CacheTTLSeconds enables the GET response cache of the TUI. Zero disables it.
	CacheTTLSeconds int `toml:"cache_ttl_seconds"`
	// LogLevel is a logrus level name
	LogLevel string `toml:"log_level"`
	// LogFile overrides the log file location
	LogFile string `toml:"log_file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Unit:            string(units.Pounds),
		Timezone:        "Local",
		Theme:           "dracula",
		TimeoutSeconds:  30,
		CacheTTLSeconds: 60,
		LogLevel:        "info",
	}
}

// Load reads and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOrDefault loads the config file, falling back to DefaultConfig when
// it does not exist. Any other error is returned.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Write encodes cfg as TOML to path.
func Write(path string, cfg Config) error {
	var b strings.Builder
	b.WriteString("# gainsiq configuration file\n\n")
	if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, []byte(b.String()), 0600)
}

// ApplyEnv overrides the API settings from the environment.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(osutil.Provider.Getenv(EnvAPIURL)); v != "" {
		c.APIURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(osutil.Provider.Getenv(EnvAPIKey)); v != "" {
		c.APIKey = v
	}
}

// Normalize trims and lowercases the enum-like fields in place.
func (c *Config) Normalize() {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.Unit = strings.ToLower(strings.TrimSpace(c.Unit))
	if u, err := units.ParseUnit(c.Unit); err == nil {
		c.Unit = string(u)
	}
	c.Phase = strings.ToLower(strings.TrimSpace(c.Phase))
	switch c.Phase {
	case "cut":
		c.Phase = "cutting"
	case "bulk":
		c.Phase = "bulking"
	}
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	c.Theme = strings.TrimSpace(c.Theme)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.LogFile = strings.TrimSpace(c.LogFile)
}

// Validate checks every field. Call Normalize first.
func (c Config) Validate() error {
	if c.APIURL != "" {
		u, err := url.Parse(c.APIURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid api_url %q: must be an http(s) URL", c.APIURL)
		}
	}

	if _, err := units.ParseUnit(c.Unit); err != nil {
		return fmt.Errorf("invalid unit %q: must be 'lbs' or 'kg'", c.Unit)
	}

	if _, err := workout.ParsePhase(c.Phase); err != nil {
		return fmt.Errorf("invalid phase %q: must be 'cutting', 'bulking' or empty", c.Phase)
	}

	if c.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid timeout_seconds %d: must not be negative", c.TimeoutSeconds)
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("invalid cache_ttl_seconds %d: must not be negative", c.CacheTTLSeconds)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	return nil
}

// Ready reports whether the API can be reached with this config.
func (c Config) Ready() error {
	if c.APIURL == "" {
		return ErrMissingAPIURL
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Location returns the configured timezone, or time.Local.
func (c Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// DisplayUnit returns the configured unit, defaulting to pounds.
func (c Config) DisplayUnit() units.Unit {
	u, err := units.ParseUnit(c.Unit)
	if err != nil {
		return units.Pounds
	}
	return u
}

// Timeout returns the request timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheTTL returns the GET cache TTL.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// MaskedAPIKey returns the API key with all but the last 4 characters hidden.
func (c Config) MaskedAPIKey() string {
	if c.APIKey == "" {
		return ""
	}
	if len(c.APIKey) <= 4 {
		return strings.Repeat("*", len(c.APIKey))
	}
	return strings.Repeat("*", len(c.APIKey)-4) + c.APIKey[len(c.APIKey)-4:]
}

// GetConfigPath returns the path to the config file.
// Uses the user config directory and creates the app directory if needed.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// GetLogPath returns the path of the log file in the user cache directory.
func GetLogPath() (string, error) {
	cacheDir, err := osutil.Provider.UserCacheDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(cacheDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, LogFile), nil
}

// GenerateSampleConfig returns a commented config file with the defaults.
func GenerateSampleConfig() string {
	d := DefaultConfig()
	return fmt.Sprintf(`# gainsiq configuration file

# Base URL of the GainsIQ API (overridden by $%s)
api_url = ""

# API key sent as a bearer token (overridden by $%s)
api_key = ""

# Weight unit for input and display: "lbs" or "kg"
unit = %q

# Training phase attached to logged sets: "cutting", "bulking" or ""
phase = ""

# Timezone used to group sets by day: IANA name (e.g., "America/New_York",
# "Europe/London", "Asia/Tokyo") or "Local"
timezone = %q

# TUI color theme (bubbletint theme ID)
theme = %q

# Request timeout in seconds
timeout_seconds = %d

# TUI response cache lifetime in seconds, 0 disables the cache
cache_ttl_seconds = %d

# Log level: "trace", "debug", "info", "warn" or "error"
log_level = %q

# Log file path, empty for the user cache directory
log_file = ""
`, EnvAPIURL, EnvAPIKey, d.Unit, d.Timezone, d.Theme, d.TimeoutSeconds, d.CacheTTLSeconds, d.LogLevel)
}
