// Package config handles VynorNews configuration loading and persistence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vynorlabs/vynornews/internal/logging"
)

// Config is the top-level configuration, stored as JSON under the data dir.
type Config struct {
	Provider ProviderConfig `json:"provider"`
	Feed     FeedConfig     `json:"feed"`
	Assets   AssetsConfig   `json:"assets"`
}

// ProviderConfig selects and configures the content provider.
type ProviderConfig struct {
	APIKey string `json:"api_key,omitempty"`
	Model  string `json:"model,omitempty"`
}

// FeedConfig tunes feed fetching.
type FeedConfig struct {
	PageSize int `json:"page_size"`
}

// AssetsConfig points the offline asset cache at its origin. An empty base
// URL disables prewarming.
type AssetsConfig struct {
	BaseURL string `json:"base_url,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Provider: ProviderConfig{Model: "gemini-3-flash-preview"},
		Feed:     FeedConfig{PageSize: 8},
	}
}

// Path returns the config file location under the given data dir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, "config.json")
}

// Load reads the config file, falling back to defaults when it is missing
// or corrupt. Environment API keys are applied on top either way.
func Load(dataDir string) *Config {
	cfg := Default()

	data, err := os.ReadFile(Path(dataDir))
	if err == nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			logging.Warn("config file corrupt, using defaults", "error", jsonErr)
			cfg = Default()
		}
	} else if !os.IsNotExist(err) {
		logging.Warn("config read failed, using defaults", "error", err)
	}

	if cfg.Feed.PageSize <= 0 {
		cfg.Feed.PageSize = 8
	}

	cfg.autoPopulateFromEnv()
	return cfg
}

// Save writes the config file with restrictive permissions; it can hold an
// API key.
func (c *Config) Save(dataDir string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(Path(dataDir), data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// autoPopulateFromEnv fills the API key from the environment when the file
// doesn't carry one. GEMINI_API_KEY wins over GOOGLE_API_KEY.
func (c *Config) autoPopulateFromEnv() {
	if c.Provider.APIKey != "" {
		return
	}
	for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			c.Provider.APIKey = v
			logging.Debug("provider key taken from environment", "var", name)
			return
		}
	}
}
