package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"emoboard/internal/board"
	"emoboard/internal/config"
	"emoboard/internal/format"
	"emoboard/internal/logging"
	"emoboard/internal/store"
	"emoboard/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	Dir        string
	Backend    string
	ConfigPath string
	Format     string
	PrettyJSON bool
	Verbose    bool

	cfg   *config.Config
	log   *zap.Logger
	store *store.Store
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "emoboard",
		Short:        "Emotion board: log how you feel, reorder cards, see stats",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  emoboard

  # Log an emotion (shortcut for: emoboard add joy "...")
  emoboard joy "finished the migration"

  # Stats for the last 7 days
  emoboard stats --filter week --format text
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := app.configure(cmd); err != nil {
			return writeErr(cmd, err)
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("EMOBOARD_DIR", ""), "Data directory (overrides config data_dir)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", envOr("EMOBOARD_BACKEND", ""), "Storage backend (sqlite|file|memory)")
	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("EMOBOARD_CONFIG", ""), "Path to config.yaml")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("EMOBOARD_FORMAT", "json"), "Output format (json|edn|text)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Debug logging")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newMoveCmd(app))
	cmd.AddCommand(newClearCmd(app))
	cmd.AddCommand(newStatsCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newTypesCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// configure resolves config (file < env < flags) and builds the logger. The TUI logs to a
// file so nothing is written over the alt screen.
func (app *App) configure(cmd *cobra.Command) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if strings.TrimSpace(app.Dir) != "" {
		cfg.DataDir = app.Dir
	}
	if strings.TrimSpace(app.Backend) != "" {
		cfg.Backend = app.Backend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	app.cfg = cfg

	logFile := cfg.Logging.File
	if cmd.Root() == cmd && logFile == "" {
		logFile = filepath.Join(cfg.DataDir, "emoboard.log")
	}
	app.log, err = logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		File:    logFile,
		Verbose: app.Verbose,
	})
	return err
}

func (app *App) close() error {
	var err error
	if app.store != nil {
		err = app.store.Close()
		app.store = nil
	}
	if app.log != nil {
		_ = app.log.Sync()
	}
	return err
}

// openBoard opens the configured store and restores the board from it.
func openBoard(app *App) (*board.Board, error) {
	if app.store == nil {
		st, err := store.Open(app.cfg.Backend, app.cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open %s store in %s: %w", app.cfg.Backend, app.cfg.DataDir, err)
		}
		app.store = st
	}
	app.log.Debug("opening board",
		zap.String("backend", app.store.Backend),
		zap.String("dir", app.store.Dir))
	return board.New(app.store, board.WithLogger(app.log)), nil
}

// withBoard runs fn against a freshly loaded board and closes the store afterwards.
// Errors are echoed to stderr.
func withBoard(cmd *cobra.Command, app *App, fn func(*board.Board) error) (err error) {
	defer func() {
		if cerr := app.close(); cerr != nil && err == nil {
			err = writeErr(cmd, cerr)
		}
	}()
	b, err := openBoard(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	if err := fn(b); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func runTUI(cmd *cobra.Command, app *App) error {
	return withBoard(cmd, app, func(b *board.Board) error {
		return tui.Run(b, tui.Options{
			Theme:     app.cfg.TUI.Theme,
			WatchPath: watchPath(app),
			Logger:    app.log,
		})
	})
}

func watchPath(app *App) string {
	if !app.cfg.TUI.Watch || app.store == nil {
		return ""
	}
	return app.store.Path()
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

// checkSaved surfaces a failed snapshot write to the command's caller.
func checkSaved(b *board.Board) error {
	if err := b.SaveErr(); err != nil {
		return fmt.Errorf("emotions were not saved: %w", err)
	}
	return nil
}
