package services

import (
	"fmt"

	"github.com/parley-labs/parley/internal/core/domain"
	"github.com/parley-labs/parley/internal/core/ports/driven"
	"github.com/parley-labs/parley/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider    = "llm.provider"
	keyLLMModel       = "llm.model"
	keyLLMBaseURL     = "llm.base_url"
	keyLLMAPIKey      = "llm.api_key"
	keyLLMMaxTokens   = "llm.max_tokens"
	keyLLMTemperature = "llm.temperature"
	keyTopK           = "retrieval.top_k"
	keyChunkSize      = "chunking.target_size"
	keyChunkOverlap   = "chunking.overlap"
	keyServerAddr     = "server.addr"
	keyServerRPS      = "server.requests_per_second"
	keyServerBurst    = "server.burst"
	keyServerWatchDir = "server.watch_dir"
)

// SettingsService manages application settings on top of the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings with defaults applied.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider:    s.getProvider(defaults.LLM.Provider),
			Model:       s.getString(keyLLMModel, defaults.LLM.Model),
			BaseURL:     s.configStore.GetString(keyLLMBaseURL), // No default - empty is valid
			APIKey:      s.configStore.GetString(keyLLMAPIKey),
			MaxTokens:   s.getInt(keyLLMMaxTokens, defaults.LLM.MaxTokens),
			Temperature: s.getFloat(keyLLMTemperature, defaults.LLM.Temperature),
		},
		Retrieval: domain.RetrievalSettings{
			TopK: s.getInt(keyTopK, defaults.Retrieval.TopK),
		},
		Chunking: domain.ChunkingSettings{
			TargetSize: s.getInt(keyChunkSize, defaults.Chunking.TargetSize),
			Overlap:    s.getInt(keyChunkOverlap, defaults.Chunking.Overlap),
		},
		Server: domain.ServerSettings{
			Addr:              s.getString(keyServerAddr, defaults.Server.Addr),
			RequestsPerSecond: s.getFloat(keyServerRPS, defaults.Server.RequestsPerSecond),
			Burst:             s.getInt(keyServerBurst, defaults.Server.Burst),
			WatchDir:          s.configStore.GetString(keyServerWatchDir),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !settings.LLM.Provider.Valid() {
		return fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidInput, settings.LLM.Provider)
	}

	pairs := []struct {
		key   string
		value any
	}{
		{keyLLMProvider, settings.LLM.Provider.String()},
		{keyLLMModel, settings.LLM.Model},
		{keyLLMBaseURL, settings.LLM.BaseURL},
		{keyLLMMaxTokens, settings.LLM.MaxTokens},
		{keyLLMTemperature, settings.LLM.Temperature},
		{keyTopK, settings.Retrieval.TopK},
		{keyChunkSize, settings.Chunking.TargetSize},
		{keyChunkOverlap, settings.Chunking.Overlap},
		{keyServerAddr, settings.Server.Addr},
		{keyServerRPS, settings.Server.RequestsPerSecond},
		{keyServerBurst, settings.Server.Burst},
		{keyServerWatchDir, settings.Server.WatchDir},
	}

	for _, p := range pairs {
		if err := s.configStore.Set(p.key, p.value); err != nil {
			return fmt.Errorf("save %s: %w", p.key, err)
		}
	}

	// The API key is only written when set, so that saving settings read
	// from disk never wipes an existing key.
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save %s: %w", keyLLMAPIKey, err)
		}
	}

	return nil
}

func (s *SettingsService) getProvider(fallback domain.Provider) domain.Provider {
	p := domain.Provider(s.configStore.GetString(keyLLMProvider))
	if !p.Valid() {
		return fallback
	}
	return p
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if v := s.configStore.GetInt(key); v != 0 {
		return v
	}
	return fallback
}

func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if v := s.configStore.GetFloat(key); v != 0 {
		return v
	}
	return fallback
}
