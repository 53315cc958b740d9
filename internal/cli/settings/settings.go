// Package settings implements the config commands, which work on the
// configuration file without opening the board.
package settings

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage the configuration file",
		Annotations: map[string]string{cli.AnnotationNoBoard: "true"},
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(PathCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file with the defaults",
		Long: `Write a configuration file holding every default value, ready to edit.
Without a path the file goes to $XDG_CONFIG_HOME/tablero/config.yaml.

Examples:
  tablero config init
  tablero config init --theme=dragon
  tablero config init ./tablero.yaml --force
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	cmd.Flags().String("theme", "default", fmt.Sprintf("Color preset (%s)", strings.Join(colors.Presets(), ", ")))
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show where tablero reads and writes its files",
		Args:  cobra.NoArgs,
		RunE:  runPath,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

type initResult struct {
	Path  string `json:"path"`
	Theme string `json:"theme"`
}

func (r initResult) Human() string {
	return fmt.Sprintf("✓ Config written to %s (theme %s)", r.Path, r.Theme)
}

type pathResult struct {
	Config   string `json:"config"`
	Database string `json:"database"`
	Log      string `json:"log"`
}

func (r pathResult) Human() string {
	return fmt.Sprintf("Config:   %s\nDatabase: %s\nLog:      %s", r.Config, r.Database, r.Log)
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// explicitPath returns the path given on the command line: the first
// argument, else the root --config flag
func explicitPath(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if f := cmd.Flag("config"); f != nil {
		return f.Value.String()
	}
	return ""
}

// configPath resolves the config file path, defaulting to config.Path
func configPath(cmd *cobra.Command, args []string) (string, error) {
	if path := explicitPath(cmd, args); path != "" {
		return path, nil
	}
	return config.Path()
}

func runInit(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)

	theme, _ := cmd.Flags().GetString("theme")
	if !slices.Contains(colors.Presets(), theme) {
		return formatter.Fail(cli.UsageError("unknown theme %q (available: %s)", theme, strings.Join(colors.Presets(), ", ")))
	}

	path, err := configPath(cmd, args)
	if err != nil {
		return formatter.Fail(fmt.Errorf("failed to resolve config path: %w", err))
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return formatter.Fail(fmt.Errorf("%w: %s already exists (use --force to overwrite)", models.ErrConflict, path))
	}

	cfg := config.Default()
	cfg.ColorScheme = *colors.GetPreset(theme)

	if explicitPath(cmd, args) == "" {
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		return formatter.Fail(fmt.Errorf("failed to write config: %w", err))
	}

	return formatter.Success(initResult{Path: path, Theme: theme})
}

func runPath(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)

	path, err := configPath(cmd, args)
	if err != nil {
		return formatter.Fail(fmt.Errorf("failed to resolve config path: %w", err))
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return formatter.Fail(err)
	}

	result := pathResult{Config: path, Database: cfg.Database.Path, Log: cfg.Logging.File}
	if result.Database == "" {
		if result.Database, err = database.DefaultPath(); err != nil {
			return formatter.Fail(err)
		}
	}
	if result.Log == "" {
		if result.Log, err = logging.DefaultPath(); err != nil {
			return formatter.Fail(err)
		}
	}

	if formatter.Quiet {
		fmt.Fprintln(os.Stdout, result.Config)
		return nil
	}
	return formatter.Success(result)
}
