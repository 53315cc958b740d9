package cli

import "github.com/spf13/cobra"

// AnnotationNoBoard marks a command tree that runs without opening the board
const AnnotationNoBoard = "tablero.no-board"

// NeedsBoard reports whether cmd needs an open board. Commands opt out by
// setting AnnotationNoBoard on themselves or a parent.
func NeedsBoard(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[AnnotationNoBoard] == "true" {
			return false
		}
	}
	return true
}
