package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	boardcmd "github.com/thenoetrevino/tablero/internal/cli/board"
	"github.com/thenoetrevino/tablero/internal/cli/label"
	"github.com/thenoetrevino/tablero/internal/cli/settings"
	"github.com/thenoetrevino/tablero/internal/cli/task"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/tui"
)

var (
	configPath string
	dbPath     string

	// Opened in PersistentPreRunE, released by Execute
	session   *cli.CLI
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "Tablero - a three column task board",
	Long: `Tablero keeps a single board of tasks in three columns: Todo, In Progress
and Done. Tasks carry labels and are stored in a local SQLite database.

Run without a subcommand to open the interactive board.`,
	Args:              cobra.NoArgs,
	RunE:              runBoard,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: openSession,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/tablero/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file (overrides database.path)")

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(label.LabelCmd())
	rootCmd.AddCommand(boardcmd.BoardCmd())
	rootCmd.AddCommand(settings.ConfigCmd())
}

// openSession loads the config, starts logging and opens the board once for
// whichever subcommand runs
func openSession(cmd *cobra.Command, args []string) error {
	// Config commands must work even when the current file does not load
	if !cli.NeedsBoard(cmd) {
		return nil
	}

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	logCloser, err = logging.Init(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		slog.SetDefault(logging.New(io.Discard, cfg.Logging.Level))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	session, err = cli.NewCLIWithConfig(ctx, cfg)
	if err != nil {
		return err
	}

	cmd.SetContext(cli.WithApp(ctx, session.App))
	return nil
}

// runBoard opens the interactive board on the session's app
func runBoard(cmd *cobra.Command, args []string) error {
	return tui.Run(cmd.Context(), session.App, session.Config)
}

// Execute runs the root command and releases the session it opened
func Execute(ctx context.Context) error {
	defer func() {
		if session != nil {
			if err := session.Close(); err != nil {
				slog.Error("Error closing board", "error", err)
			}
		}
		if logCloser != nil {
			_ = logCloser.Close()
		}
	}()

	return rootCmd.ExecuteContext(ctx)
}
