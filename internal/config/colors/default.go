package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Columns
		Todo:       "#5F87D7",
		InProgress: "#FFD700",
		Done:       "#5FD75F",

		// UI elements
		ColumnBorder: "#5F87D7",
		TaskBorder:   "#585858",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Messages
		Success: "#5FD75F",
		ErrorFg: "#FF0000",
	}
}
