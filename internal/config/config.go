package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the config file location
	EnvConfigPath = "TABLERO_CONFIG"
	// EnvThemeFile points at a YAML file with a theme section to merge
	EnvThemeFile = "TABLERO_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig     `yaml:"database"`
	Board       BoardConfig        `yaml:"board"`
	Logging     LoggingConfig      `yaml:"logging"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// DatabaseConfig locates the board database
type DatabaseConfig struct {
	// Path of the SQLite file. Empty means ~/.tablero/board.db
	Path string `yaml:"path"`
}

// BoardConfig holds board controller settings
type BoardConfig struct {
	// DefaultLabel is preselected for new tasks
	DefaultLabel string `yaml:"default_label"`
	// DeleteDelay is waited before a delete is written, e.g. "300ms"
	DeleteDelay time.Duration `yaml:"delete_delay"`
	// Labels are seeded into an empty board
	Labels []LabelConfig `yaml:"labels"`
}

// LabelConfig is one seeded label
type LabelConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means ~/.tablero/logs/tablero.log
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path, falling back to defaults when the file
// does not exist
func LoadFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config to path, creating its directory
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	if override := os.Getenv(EnvConfigPath); override != "" {
		return override, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}

// SeedLabels returns the configured seed labels as models
func (c *Config) SeedLabels() []models.Label {
	labels := make([]models.Label, 0, len(c.Board.Labels))
	for _, l := range c.Board.Labels {
		labels = append(labels, models.Label{Name: l.Name, Color: l.Color})
	}
	return labels
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Board.DefaultLabel == "" {
		c.Board.DefaultLabel = models.DefaultLabelName
	}
	if c.Board.DeleteDelay < 0 {
		c.Board.DeleteDelay = 0
	}
	if len(c.Board.Labels) == 0 {
		for _, l := range models.DefaultLabels() {
			c.Board.Labels = append(c.Board.Labels, LabelConfig{Name: l.Name, Color: l.Color})
		}
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
