package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL    = "http://localhost:5000"
	DefaultCatalogURL = "http://localhost:3001"
	DefaultTimeout    = 10 * time.Second
	DefaultLogLevel   = "warn"
)

type Config struct {
	API      APIConfig     `toml:"api"`
	DB       DBConfig      `toml:"database"`
	Profile  ProfileConfig `toml:"profile"`
	LogLevel string        `toml:"log_level"`
	StateDir string        `toml:"state_dir"` // Where session.toml and workout.toml live.
}

type APIConfig struct {
	BaseURL    string   `toml:"base_url"`    // Auth and weight endpoints.
	CatalogURL string   `toml:"catalog_url"` // Exercise catalog host.
	Timeout    Duration `toml:"timeout"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type ProfileConfig struct {
	Goal    string `toml:"goal"`
	Premium bool   `toml:"premium"`
}

// Duration lets timeouts be written as "10s" in the config file.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:    DefaultBaseURL,
			CatalogURL: DefaultCatalogURL,
			Timeout:    Duration{DefaultTimeout},
		},
		LogLevel: DefaultLogLevel,
	}
}

// Returns the keima config directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "keima"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the configuration from the config file and applies .env
// and environment overrides on top of it.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom is LoadConfig with an explicit file path. A missing file is
// not an error.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// A .env file is optional.
	_ = godotenv.Load()
	applyEnv(cfg)

	if cfg.StateDir == "" {
		cfg.StateDir = filepath.Dir(path)
	}
	if cfg.API.Timeout.Duration <= 0 {
		cfg.API.Timeout = Duration{DefaultTimeout}
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.API.BaseURL = GetEnv("KEIMA_API_URL", cfg.API.BaseURL)
	cfg.API.CatalogURL = GetEnv("KEIMA_CATALOG_URL", cfg.API.CatalogURL)
	cfg.DB.ConnectionString = GetEnv("TURSO_DATABASE_URL", cfg.DB.ConnectionString)
	cfg.LogLevel = GetEnv("KEIMA_LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("KEIMA_PREMIUM"); v != "" {
		cfg.Profile.Premium = strings.EqualFold(v, "true") || v == "1"
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}
}

// SaveConfig writes cfg to the config file, creating the directory if needed.
func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigTo(path, cfg)
}

func SaveConfigTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
