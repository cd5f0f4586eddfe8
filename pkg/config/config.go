package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	HomeStation       string `json:"home_station,omitempty"`
	HomeStationID     string `json:"home_station_id,omitempty"`
	HomeCity          string `json:"home_city,omitempty"`
	HomeCityOnly      bool   `json:"home_city_only,omitempty"`
	TimeOffsetMinutes int    `json:"time_offset_minutes,omitempty"`
	ShortInfo         bool   `json:"short_info,omitempty"`
	AccentColor       string `json:"accent_color,omitempty"`
	NATSUrl           string `json:"nats_url,omitempty"`
	MetricsAddr       string `json:"metrics_addr,omitempty"`

	// APIKey is the RMV access key. It may live in the config file but the
	// RMV_API_KEY environment variable always wins. Never print it.
	APIKey string `json:"api_key,omitempty"`
}

// getConfigPath returns the absolute path to ~/.abfahrt.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".abfahrt.json"), nil
}

// Load reads the application configuration from disk and applies environment
// overrides (a local .env file is honored if present).
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just continue with an empty default configuration
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	if key := os.Getenv("RMV_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		cfg.NATSUrl = natsURL
	}
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		cfg.MetricsAddr = addr
	}

	return cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
