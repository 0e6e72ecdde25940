package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// DatabaseURL is the postgres connection string
	DatabaseURL string `yaml:"databaseURL" validate:"required"`
	// ListenAddr is the address the HTTP server binds to
	ListenAddr string `yaml:"listenAddr,omitempty"`
	// AllowedOrigins are the CORS origins permitted to call the API
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty" validate:"omitempty,dive,url"`
	// GmailUserID enables approval/rejection emails when set
	GmailUserID string `yaml:"gmailUserID,omitempty" validate:"omitempty,email"`
	// GmailSender overrides the From address on outgoing mail
	GmailSender string `yaml:"gmailSender,omitempty" validate:"omitempty,email"`
	// ExportDir is where schedule exports are written
	ExportDir string `yaml:"exportDir,omitempty"`
}

// DefaultListenAddr is used when listenAddr is not configured
const DefaultListenAddr = ":8080"

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from shiftboard_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration with an environment suffix
// For example, env="test" will look for "shiftboard_config.test.yaml"
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// A sender override without a sending account is never usable
	if cfg.GmailSender != "" && cfg.GmailUserID == "" {
		return fmt.Errorf("config validation failed: gmailSender requires gmailUserID")
	}

	return nil
}

// findConfigFile searches for shiftboard_config.yaml in current directory and home directory
// If env is provided, it adds it as an extension (e.g., "shiftboard_config.test.yaml")
func findConfigFile(env string) (string, error) {
	configFileName := "shiftboard_config.yaml"
	if env != "" {
		configFileName = "shiftboard_config." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
