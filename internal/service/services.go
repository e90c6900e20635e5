package service

import (
	"time"

	"github.com/gainsiq/gainsiq/internal/api"
	"github.com/gainsiq/gainsiq/internal/config"
)

// Services holds all service instances used by the application
type Services struct {
	Exercise *ExerciseService
	Set      *SetService
	Weight   *WeightService
	Progress *ProgressService
	Injury   *InjuryService
	Bodypart *BodypartService
	Analysis *AnalysisService
	Config   *ConfigService
}

// Options tunes NewServices for a frontend
type Options struct {
	// EnableCache turns on the GET response cache with the configured TTL
	EnableCache bool
}

// NewServices creates a new Services instance from the user config file
// and environment.
func NewServices(opts Options) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithConfig(configPath, cfg, opts), nil
}

// NewServicesWithConfig creates a new Services instance talking to the API
// configured in cfg. Environment overrides are applied.
func NewServicesWithConfig(configPath string, cfg config.Config, opts Options) *Services {
	effective := cfg
	effective.ApplyEnv()

	clientOpts := api.Options{
		BaseURL: effective.APIURL,
		APIKey:  effective.APIKey,
		Timeout: effective.Timeout(),
	}
	if opts.EnableCache {
		clientOpts.CacheTTL = effective.CacheTTL()
	}

	return NewServicesWithAPI(api.NewClient(clientOpts), configPath, effective)
}

// NewServicesWithAPI creates a new Services instance with a custom backend (useful for testing)
func NewServicesWithAPI(backend API, configPath string, cfg config.Config) *Services {
	clock := time.Now

	return &Services{
		Exercise: NewExerciseService(backend),
		Set:      NewSetService(backend, cfg, clock),
		Weight:   NewWeightService(backend, cfg, clock),
		Progress: NewProgressService(backend, cfg, clock),
		Injury:   NewInjuryService(backend, clock),
		Bodypart: NewBodypartService(backend),
		Analysis: NewAnalysisService(backend),
		Config:   NewConfigService(configPath, cfg),
	}
}
