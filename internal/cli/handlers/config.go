package handlers

import (
	"fmt"
	"strings"

	"github.com/gainsiq/gainsiq/internal/cli"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "api_url:           %s\n", orUnset(cfg.APIURL))
	_, _ = fmt.Fprintf(deps.Stdout, "api_key:           %s\n", orUnset(cfg.MaskedAPIKey()))
	_, _ = fmt.Fprintf(deps.Stdout, "unit:              %s\n", cfg.Unit)
	_, _ = fmt.Fprintf(deps.Stdout, "phase:             %s\n", orUnset(cfg.Phase))
	_, _ = fmt.Fprintf(deps.Stdout, "timezone:          %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:             %s\n", cfg.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "timeout_seconds:   %d\n", cfg.TimeoutSeconds)
	_, _ = fmt.Fprintf(deps.Stdout, "cache_ttl_seconds: %d\n", cfg.CacheTTLSeconds)
	_, _ = fmt.Fprintf(deps.Stdout, "log_level:         %s\n", cfg.LogLevel)
	_, _ = fmt.Fprintf(deps.Stdout, "log_file:          %s\n", orUnset(cfg.LogFile))
}

func orUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}

// SetConfig changes a single key of the config file
func SetConfig(deps *cli.Deps, key, value string) {
	if err := deps.Services.Config.Set(key, value); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	shown := value
	if strings.EqualFold(strings.TrimSpace(key), "api_key") {
		shown = deps.Services.Config.Get().MaskedAPIKey()
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Set %s = %s\n", strings.ToLower(strings.TrimSpace(key)), shown)
}

// SetAPIKey prompts for the API key without echo and stores it
func SetAPIKey(deps *cli.Deps) {
	if deps.ReadSecret == nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Cannot read the API key from this input")
		deps.Exit(1)
		return
	}

	key, err := deps.ReadSecret("API key: ")
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to read API key\nDetails: %v\n", err)
		deps.Exit(1)
		return
	}

	if err := deps.Services.Config.SetAPIKey(key); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "API key saved to %s\n", deps.Services.Config.GetPath())
}
