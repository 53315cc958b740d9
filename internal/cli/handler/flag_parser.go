// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseTaskID extracts task ID from a flag
func (p *FlagParser) ParseTaskID(flagName string) (int, error) {
	taskID, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if taskID <= 0 {
		return 0, cli.UsageError("%s must be greater than 0", flagName)
	}
	return taskID, nil
}

// ParseTaskArg reads the task ID from the first positional argument, or from
// flagName when no argument was given
func (p *FlagParser) ParseTaskArg(args []string, flagName string) (int, error) {
	if len(args) == 0 {
		return p.ParseTaskID(flagName)
	}

	taskID, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || taskID <= 0 {
		return 0, cli.UsageError("task ID must be a positive integer, got %q", args[0])
	}
	return taskID, nil
}

// ParseStatus extracts a required status flag. Aliases such as "doing" and
// "completed" are accepted.
func (p *FlagParser) ParseStatus(flagName string) (models.Status, error) {
	raw, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	return models.ParseStatus(raw)
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", cli.UsageError("%s is required", flagName)
	}
	return value, nil
}

// ParseIndex extracts a zero-based position flag. Unset or negative values
// mean append.
func (p *FlagParser) ParseIndex(flagName string) (int, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return models.AppendPosition, nil
	}
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if value < 0 {
		return models.AppendPosition, nil
	}
	return value, nil
}

// ParseColor extracts a color flag. Colors are display data and are stored as
// given; only surrounding whitespace is removed.
func (p *FlagParser) ParseColor(flagName string) (string, error) {
	color, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return strings.TrimSpace(color), nil
}

// ParseLabels extracts a label list flag, dropping blank entries
func (p *FlagParser) ParseLabels(flagName string) ([]string, error) {
	raw, err := p.cmd.Flags().GetStringSlice(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}

	labels := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}
	return labels, nil
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
