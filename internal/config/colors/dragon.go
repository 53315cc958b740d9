package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		// Primary accent color
		Accent: "#8992A7", // dragonViolet

		// Columns
		Todo:       "#8BA4B0", // dragonBlue2
		InProgress: "#C4B28A", // dragonYellow
		Done:       "#87A987", // dragonGreen2

		// UI element colors
		ColumnBorder: "#625E5A", // dragonBlack6
		TaskBorder:   "#282727", // dragonBlack4

		// Text colors
		Title:  "#8BA4B0",
		Subtle: "#737C73", // dragonAsh
		Normal: "#C5C9C5", // dragonWhite

		Success: "#87A987",
		ErrorFg: "#E82424", // samuraiRed
	}
}
