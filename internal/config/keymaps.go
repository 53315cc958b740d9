package config

// KeyMappings defines the keybindings of the interactive board
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	DeleteTask    string `yaml:"delete_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`
	MoveTaskUp    string `yaml:"move_task_up"`
	MoveTaskDown  string `yaml:"move_task_down"`

	// Forms
	ToggleLabels string `yaml:"toggle_labels"`

	// Filters
	CycleStatusFilter string `yaml:"cycle_status_filter"`
	CycleLabelFilter  string `yaml:"cycle_label_filter"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:       "a",
		DeleteTask:    "d",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		MoveTaskUp:    "K",
		MoveTaskDown:  "J",

		// Forms
		ToggleLabels: "tab",

		// Filters
		CycleStatusFilter: "f",
		CycleLabelFilter:  "F",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in any unset key with its default
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(key *string, def string) {
		if *key == "" {
			*key = def
		}
	}

	fill(&k.AddTask, defaults.AddTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.MoveTaskLeft, defaults.MoveTaskLeft)
	fill(&k.MoveTaskRight, defaults.MoveTaskRight)
	fill(&k.MoveTaskUp, defaults.MoveTaskUp)
	fill(&k.MoveTaskDown, defaults.MoveTaskDown)
	fill(&k.ToggleLabels, defaults.ToggleLabels)
	fill(&k.CycleStatusFilter, defaults.CycleStatusFilter)
	fill(&k.CycleLabelFilter, defaults.CycleLabelFilter)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
