// ABOUTME: coachcal configuration: JSON file under XDG config plus env overrides.
// ABOUTME: Selects the storage backend and carries the coach identity.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/google/uuid"

	"coachcal/internal/store"
)

// Config stores coachcal settings. The API key is env-only and never
// written to disk.
type Config struct {
	// Backend selects storage: "charm" (default, cloud sync), "badger"
	// (local only), or "sqlite" (local single file).
	Backend string `json:"backend,omitempty" env:"COACHCAL_BACKEND"`

	// DataDir is the root directory for local backends. Supports ~
	// expansion. Defaults to ~/.local/share/coachcal.
	DataDir string `json:"data_dir,omitempty" env:"COACHCAL_DATA_DIR"`

	// CoachID identifies the coach on generated events. Generated on
	// first run.
	CoachID string `json:"coach_id,omitempty"`

	// AI generation settings.
	AIBaseURL string `json:"ai_base_url,omitempty" env:"COACHCAL_AI_URL"`
	AIModel   string `json:"ai_model,omitempty" env:"COACHCAL_AI_MODEL"`
	AIKey     string `json:"-" env:"COACHCAL_AI_KEY"`
}

// GetBackend returns the configured backend, defaulting to "charm".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "charm"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "coachcal")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore opens the configured storage backend.
func (c *Config) OpenStore() (store.KV, error) {
	switch backend := c.GetBackend(); backend {
	case "charm":
		return store.OpenCharm("coachcal")
	case "badger":
		return store.OpenBadger(filepath.Join(c.GetDataDir(), "badger"))
	case "sqlite":
		return store.OpenSQLite(filepath.Join(c.GetDataDir(), "coachcal.db"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "coachcal", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(GetConfigPath())
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// EnsureCoachID generates and persists a coach id on first use.
func (c *Config) EnsureCoachID() (string, error) {
	if c.CoachID != "" {
		return c.CoachID, nil
	}
	c.CoachID = uuid.NewString()
	if err := c.Save(); err != nil {
		return "", fmt.Errorf("persist coach id: %w", err)
	}
	return c.CoachID, nil
}
