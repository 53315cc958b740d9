// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, args *Arguments) (any, error)

// Execute calls f
func (f HandlerFunc) Execute(ctx context.Context, args *Arguments) (any, error) {
	return f(ctx, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags  map[string]any
	Args   []string
	Parser *FlagParser
	CLI    *cli.CLI
	cmd    *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Command wraps common command execution logic: output flags, CLI setup,
// error reporting with exit codes and result formatting.
// Returns a cobra RunE compatible function
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Get formatter from flags
		jsonOutput, quietMode, err := NewFlagParser(cmd).OutputFormats()
		if err != nil {
			return err
		}
		formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

		// Parse flags
		if err := parseFlags(cmd); err != nil {
			return formatter.Fail(err)
		}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("Error closing CLI", "error", err)
			}
		}()

		// Build arguments map from all flags
		arguments := &Arguments{
			Flags:  parseFlagsToMap(cmd),
			Args:   args,
			Parser: NewFlagParser(cmd),
			CLI:    cliInstance,
			cmd:    cmd,
		}

		// Execute handler
		result, err := handler.Execute(ctx, arguments)
		if err != nil {
			return formatter.Fail(err)
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// SimpleCommand wraps command execution with minimal setup
// Use this for commands that don't need complex flag parsing
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, func(cmd *cobra.Command) error {
		return nil
	})
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		// Get the value based on flag type
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "stringSlice":
			if v, err := cmd.Flags().GetStringSlice(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// IsSet reports whether the flag was given on the command line
func (a *Arguments) IsSet(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(int)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}
