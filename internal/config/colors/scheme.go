package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "dragon")
	Preset string `yaml:"preset"`

	// Primary accent color (used for titles and highlights)
	Accent string `yaml:"accent"`

	// Column header colors, one per status
	Todo       string `yaml:"todo"`
	InProgress string `yaml:"in_progress"`
	Done       string `yaml:"done"`

	// UI element colors
	ColumnBorder string `yaml:"column_border"`
	TaskBorder   string `yaml:"task_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Message colors
	Success string `yaml:"success"`
	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "dragon":
		return Dragon()
	default:
		return Default()
	}
}

// Presets lists the available preset names
func Presets() []string {
	return []string{"default", "monochrome", "dragon"}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Todo, preset.Todo)
	fill(&c.InProgress, preset.InProgress)
	fill(&c.Done, preset.Done)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.TaskBorder, preset.TaskBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Success, preset.Success)
	fill(&c.ErrorFg, preset.ErrorFg)
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Todo, other.Todo)
	merge(&c.InProgress, other.InProgress)
	merge(&c.Done, other.Done)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.TaskBorder, other.TaskBorder)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.Success, other.Success)
	merge(&c.ErrorFg, other.ErrorFg)
}
