package service

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gainsiq/gainsiq/internal/config"
)

// ConfigKeys lists the keys accepted by ConfigService.Set
var ConfigKeys = []string{
	"api_url", "api_key", "unit", "phase", "timezone", "theme",
	"timeout_seconds", "cache_ttl_seconds", "log_level", "log_file",
}

// ConfigService provides operations for managing configuration
type ConfigService struct {
	configPath string
	config     config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the effective configuration, environment overrides included
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Update validates cfg and writes it to the config file
func (s *ConfigService) Update(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := config.Write(s.configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.config = cfg
	s.config.ApplyEnv()

	return nil
}

// Set changes a single key of the config file
func (s *ConfigService) Set(key, value string) error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	switch key {
	case "api_url":
		cfg.APIURL = value
	case "api_key":
		cfg.APIKey = value
	case "unit":
		cfg.Unit = value
	case "phase":
		cfg.Phase = value
	case "timezone":
		cfg.Timezone = value
	case "theme":
		cfg.Theme = value
	case "log_level":
		cfg.LogLevel = value
	case "log_file":
		cfg.LogFile = value
	case "timeout_seconds", "cache_ttl_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: must be a whole number of seconds", key, value)
		}
		if key == "timeout_seconds" {
			cfg.TimeoutSeconds = n
		} else {
			cfg.CacheTTLSeconds = n
		}
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(ConfigKeys, ", "))
	}

	return s.Update(cfg)
}

// SetAPIKey stores the API key in the config file
func (s *ConfigService) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return config.ErrMissingAPIKey
	}
	return s.Set("api_key", key)
}

// Reload reloads the configuration from disk
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyEnv()
	s.config = cfg
	return nil
}
