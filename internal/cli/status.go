package cli

import (
	"strings"

	"emoboard/internal/board"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show local emoboard store status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd, app, func(b *board.Board) error {
				out := map[string]any{
					"dir":           app.store.Dir,
					"backend":       app.store.Backend,
					"path":          app.store.Path(),
					"emotions":      b.Len(),
					"schemaVersion": board.SchemaVersion,
					"loadError":     nil,
				}
				if le := b.LoadErr(); le != nil {
					out["loadError"] = map[string]any{
						"kind":    string(le.Kind),
						"message": strings.TrimSpace(le.Error()),
					}
				}
				return writeOut(cmd, app, out)
			})
		},
	}
}
