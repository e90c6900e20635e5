package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gainsiq/gainsiq/internal/osutil"
	"github.com/gainsiq/gainsiq/internal/units"
)

// Helper to create a temporary config file
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}
	return tmpFile
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Unit != "lbs" {
		t.Errorf("DefaultConfig().Unit = %q, expected %q", cfg.Unit, "lbs")
	}
	if cfg.Timezone != "Local" {
		t.Errorf("DefaultConfig().Timezone = %q, expected %q", cfg.Timezone, "Local")
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("DefaultConfig().TimeoutSeconds = %d, expected 30", cfg.TimeoutSeconds)
	}
	if cfg.APIURL != "" || cfg.APIKey != "" {
		t.Error("DefaultConfig() should not carry API credentials")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		expected      Config
	}{
		{
			name: "all fields set",
			configContent: `api_url = "https://api.example.com/"
api_key = "abc123"
unit = "kg"
phase = "cutting"
timezone = "America/New_York"
theme = "nord"
timeout_seconds = 10
cache_ttl_seconds = 0
log_level = "debug"
log_file = "/tmp/gainsiq.log"`,
			expected: Config{
				APIURL:          "https://api.example.com",
				APIKey:          "abc123",
				Unit:            "kg",
				Phase:           "cutting",
				Timezone:        "America/New_York",
				Theme:           "nord",
				TimeoutSeconds:  10,
				CacheTTLSeconds: 0,
				LogLevel:        "debug",
				LogFile:         "/tmp/gainsiq.log",
			},
		},
		{
			name: "aliases normalized",
			configContent: `unit = "Kilograms"
phase = "Bulk"
log_level = "WARN"`,
			expected: func() Config {
				c := DefaultConfig()
				c.Unit = "kg"
				c.Phase = "bulking"
				c.LogLevel = "warn"
				return c
			}(),
		},
		{
			name:          "partial config merges with defaults",
			configContent: `timezone = "Europe/London"`,
			expected: func() Config {
				c := DefaultConfig()
				c.Timezone = "Europe/London"
				return c
			}(),
		},
		{
			name:          "empty file",
			configContent: "",
			expected:      DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempConfigFile(t, tt.configContent)

			cfg, err := Load(tmpFile)
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("Load() = %+v, expected %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
	}{
		{"invalid toml", `unit = `},
		{"wrong type", `timeout_seconds = "ten"`},
		{"invalid unit", `unit = "stone"`},
		{"invalid phase", `phase = "maintenance"`},
		{"invalid timezone", `timezone = "Mars/Olympus"`},
		{"negative timeout", `timeout_seconds = -1`},
		{"negative cache ttl", `cache_ttl_seconds = -5`},
		{"invalid log level", `log_level = "loud"`},
		{"api url without scheme", `api_url = "api.example.com"`},
		{"api url with other scheme", `api_url = "ftp://api.example.com"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempConfigFile(t, tt.configContent)
			if _, err := Load(tmpFile); err == nil {
				t.Errorf("Load() should return error for %q", tt.configContent)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("Load() should return error for non-existent file")
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	skipIfRoot(t)
	tmpFile := createTempConfigFile(t, `unit = "kg"`)

	if err := os.Chmod(tmpFile, 0000); err != nil {
		t.Skipf("Cannot change file permissions: %v", err)
	}
	defer func() { _ = os.Chmod(tmpFile, 0644) }()

	if _, err := Load(tmpFile); err == nil {
		t.Error("Load() should return error for unreadable file")
	}
	if _, err := LoadOrDefault(tmpFile); err == nil {
		t.Error("LoadOrDefault() should return error for unreadable file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error for non-existent file: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadOrDefault() = %+v, expected defaults", cfg)
	}

	tmpFile := createTempConfigFile(t, `unit = "kg"`)
	cfg, err = LoadOrDefault(tmpFile)
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error: %v", err)
	}
	if cfg.Unit != "kg" {
		t.Errorf("Unit = %q, expected %q", cfg.Unit, "kg")
	}

	invalid := createTempConfigFile(t, `unit = "stone"`)
	if _, err := LoadOrDefault(invalid); err == nil {
		t.Error("LoadOrDefault() should return error for invalid config file")
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.APIURL = "https://api.example.com"
	cfg.APIKey = "key"
	cfg.Unit = "kg"
	cfg.Phase = "bulking"

	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write() returned unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() returned unexpected error: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("config file mode = %v, expected 0600", info.Mode().Perm())
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if got != cfg {
		t.Errorf("Load(Write(cfg)) = %+v, expected %+v", got, cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	defer osutil.ResetProvider()

	osutil.SetProvider(&mockPathProvider{env: map[string]string{
		EnvAPIURL: " https://env.example.com/ ",
		EnvAPIKey: "env-key",
	}})

	cfg := DefaultConfig()
	cfg.APIURL = "https://file.example.com"
	cfg.APIKey = "file-key"
	cfg.ApplyEnv()

	if cfg.APIURL != "https://env.example.com" {
		t.Errorf("APIURL = %q, expected env override", cfg.APIURL)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q, expected env override", cfg.APIKey)
	}

	osutil.SetProvider(&mockPathProvider{})
	cfg = DefaultConfig()
	cfg.APIKey = "file-key"
	cfg.ApplyEnv()
	if cfg.APIKey != "file-key" {
		t.Errorf("APIKey = %q, empty env must not override", cfg.APIKey)
	}
}

func TestReady(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Ready(); !errors.Is(err, ErrMissingAPIURL) {
		t.Errorf("Ready() = %v, expected ErrMissingAPIURL", err)
	}

	cfg.APIURL = "https://api.example.com"
	if err := cfg.Ready(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Ready() = %v, expected ErrMissingAPIKey", err)
	}

	cfg.APIKey = "k"
	if err := cfg.Ready(); err != nil {
		t.Errorf("Ready() returned unexpected error: %v", err)
	}
}

func TestAccessors(t *testing.T) {
	cfg := Config{
		Unit:            "kg",
		Timezone:        "Asia/Tokyo",
		TimeoutSeconds:  5,
		CacheTTLSeconds: 90,
	}

	if cfg.DisplayUnit() != units.Kilograms {
		t.Errorf("DisplayUnit() = %q, expected kg", cfg.DisplayUnit())
	}
	if cfg.Location().String() != "Asia/Tokyo" {
		t.Errorf("Location() = %q, expected Asia/Tokyo", cfg.Location())
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("Timeout() = %v, expected 5s", cfg.Timeout())
	}
	if cfg.CacheTTL() != 90*time.Second {
		t.Errorf("CacheTTL() = %v, expected 90s", cfg.CacheTTL())
	}

	bad := Config{Unit: "stone", Timezone: "Nowhere/Land"}
	if bad.DisplayUnit() != units.Pounds {
		t.Errorf("DisplayUnit() = %q, expected lbs fallback", bad.DisplayUnit())
	}
	if bad.Location() != time.Local {
		t.Error("Location() should fall back to time.Local")
	}
}

func TestMaskedAPIKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcd", "****"},
		{"secret-token", "********oken"},
	}

	for _, tt := range tests {
		cfg := Config{APIKey: tt.key}
		if got := cfg.MaskedAPIKey(); got != tt.expected {
			t.Errorf("MaskedAPIKey(%q) = %q, expected %q", tt.key, got, tt.expected)
		}
	}
}

func TestGenerateSampleConfig(t *testing.T) {
	content := GenerateSampleConfig()

	expectedStrings := []string{
		"# gainsiq configuration file",
		"api_url",
		"api_key",
		EnvAPIURL,
		EnvAPIKey,
		"unit",
		"phase",
		"timezone",
		"America/New_York",
		"cache_ttl_seconds",
		"log_level",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(content, expected) {
			t.Errorf("GenerateSampleConfig() missing expected content: %q", expected)
		}
	}

	// The sample must be loadable as is
	tmpFile := createTempConfigFile(t, content)
	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load(GenerateSampleConfig()) returned unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("sample config = %+v, expected defaults", cfg)
	}
}

func TestGetConfigPath(t *testing.T) {
	defer osutil.ResetProvider()

	tmpDir := t.TempDir()
	osutil.SetProvider(&mockPathProvider{
		userConfigDirFn: func() (string, error) { return tmpDir, nil },
		mkdirAllFn:      os.MkdirAll,
	})

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() returned unexpected error: %v", err)
	}

	expected := filepath.Join(tmpDir, AppName, ConfigFile)
	if path != expected {
		t.Errorf("GetConfigPath() = %q, expected %q", path, expected)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Errorf("GetConfigPath() should create the parent directory: %v", err)
	}
}

func TestGetConfigPath_Errors(t *testing.T) {
	defer osutil.ResetProvider()

	osutil.SetProvider(&mockPathProvider{
		userConfigDirFn: func() (string, error) { return "", os.ErrPermission },
	})
	if _, err := GetConfigPath(); err == nil {
		t.Error("GetConfigPath() should return error when UserConfigDir fails")
	}

	osutil.SetProvider(&mockPathProvider{
		userConfigDirFn: func() (string, error) { return t.TempDir(), nil },
		mkdirAllFn:      func(path string, perm os.FileMode) error { return os.ErrPermission },
	})
	if _, err := GetConfigPath(); err == nil {
		t.Error("GetConfigPath() should return error when MkdirAll fails")
	}
}

func TestGetLogPath(t *testing.T) {
	defer osutil.ResetProvider()

	tmpDir := t.TempDir()
	osutil.SetProvider(&mockPathProvider{
		userCacheDirFn: func() (string, error) { return tmpDir, nil },
		mkdirAllFn:     os.MkdirAll,
	})

	path, err := GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath() returned unexpected error: %v", err)
	}
	if path != filepath.Join(tmpDir, AppName, LogFile) {
		t.Errorf("GetLogPath() = %q", path)
	}

	osutil.SetProvider(&mockPathProvider{
		userCacheDirFn: func() (string, error) { return "", os.ErrNotExist },
	})
	if _, err := GetLogPath(); err == nil {
		t.Error("GetLogPath() should return error when UserCacheDir fails")
	}
}

// mockPathProvider is a test helper for mocking osutil.PathProvider
type mockPathProvider struct {
	userConfigDirFn func() (string, error)
	userCacheDirFn  func() (string, error)
	mkdirAllFn      func(path string, perm os.FileMode) error
	env             map[string]string
}

func (m *mockPathProvider) UserConfigDir() (string, error) {
	if m.userConfigDirFn != nil {
		return m.userConfigDirFn()
	}
	return "", nil
}

func (m *mockPathProvider) UserCacheDir() (string, error) {
	if m.userCacheDirFn != nil {
		return m.userCacheDirFn()
	}
	return "", nil
}

func (m *mockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	if m.mkdirAllFn != nil {
		return m.mkdirAllFn(path, perm)
	}
	return nil
}

func (m *mockPathProvider) Getenv(key string) string {
	return m.env[key]
}
