package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Todo:       "#FFFFFF",
		InProgress: "#FFFFFF",
		Done:       "#FFFFFF",

		ColumnBorder: "#FFFFFF",
		TaskBorder:   "#585858",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Success: "#FFFFFF",
		ErrorFg: "#FFFFFF",
	}
}
