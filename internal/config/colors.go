package config

import (
	"log/slog"
	"os"

	"github.com/thenoetrevino/tablero/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// loadThemeFile merges the theme section of the file named by
// TABLERO_THEME_FILE over the configured colors. Unreadable files are skipped.
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("theme file ignored", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}
	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("theme file ignored", "path", themeFile, "error", err)
		return
	}

	// A preset named in the theme file replaces the base scheme
	if themeConfig.Theme.Preset != "" && themeConfig.Theme.Preset != config.ColorScheme.Preset {
		config.ColorScheme = *colors.GetPreset(themeConfig.Theme.Preset)
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}
