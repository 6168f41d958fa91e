package cli

import (
	"errors"
	"fmt"
	"os"

	"emoboard/internal/config"

	"github.com/spf13/cobra"
)

type configFileExistsError struct {
	path string
}

func (e configFileExistsError) Error() string {
	return fmt.Sprintf("config already exists: %s (use --force to overwrite)", e.path)
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the emoboard configuration",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigInitCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (file, env and flags applied)",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath(app.ConfigPath)
			if err != nil {
				return writeErr(cmd, err)
			}
			_, statErr := os.Stat(path)
			return writeOut(cmd, app, map[string]any{
				"path":   path,
				"exists": statErr == nil,
				"config": app.cfg,
			})
		},
	}
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to config.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath(app.ConfigPath)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return writeErr(cmd, configFileExistsError{path: path})
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return writeErr(cmd, err)
			}
			if err := app.cfg.Save(path); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"path":   path,
				"config": app.cfg,
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
