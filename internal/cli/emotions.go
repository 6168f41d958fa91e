package cli

import (
	"strconv"
	"strings"

	"emoboard/internal/board"
	"emoboard/internal/model"

	"github.com/spf13/cobra"
)

// emotionList renders as a table for --format text and as a plain array otherwise.
type emotionList []model.Emotion

func (l emotionList) Headers() []string {
	return []string{"#", "ID", "Emotion", "Comment", "Logged"}
}

func (l emotionList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for i, e := range l {
		rows = append(rows, []string{
			strconv.Itoa(i),
			e.ID,
			e.Icon + " " + string(e.Type),
			e.Comment,
			e.Time().Local().Format("2006-01-02 15:04"),
		})
	}
	return rows
}

func newAddCmd(app *App) *cobra.Command {
	var comment string
	cmd := &cobra.Command{
		Use:   "add <type> [comment...]",
		Short: "Log an emotion (newest first)",
		Long:  "Log an emotion. <type> is one of: " + typeNames() + ".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := comment
			if len(args) > 1 {
				text = strings.Join(args[1:], " ")
			}
			typ, text, err := model.ValidateInput(args[0], text)
			if err != nil {
				return writeErr(cmd, err)
			}
			return withBoard(cmd, app, func(b *board.Board) error {
				e := b.AddEmotion(typ, text)
				if err := checkSaved(b); err != nil {
					return err
				}
				return writeOut(cmd, app, e)
			})
		},
	}
	cmd.Flags().StringVarP(&comment, "comment", "c", "", "Optional comment (max 200 characters)")
	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var typ string
	var limit int
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List emotions in board order",
		RunE: func(cmd *cobra.Command, args []string) error {
			var only model.EmotionType
			if strings.TrimSpace(typ) != "" {
				t, err := model.ParseEmotionType(typ)
				if err != nil {
					return writeErr(cmd, err)
				}
				only = t
			}
			return withBoard(cmd, app, func(b *board.Board) error {
				out := emotionList{}
				for _, e := range b.Emotions() {
					if only != "" && e.Type != only {
						continue
					}
					out = append(out, e)
					if limit > 0 && len(out) == limit {
						break
					}
				}
				return writeOut(cmd, app, out)
			})
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "Only list emotions of this type")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of emotions (0 = all)")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <emotion-id>",
		Short: "Show one emotion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd, app, func(b *board.Board) error {
				e, idx, ok := b.Find(args[0])
				if !ok {
					return errNotFound("emotion", args[0])
				}
				return writeOut(cmd, app, map[string]any{
					"emotion":  e,
					"position": idx,
				})
			})
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <emotion-id>",
		Aliases: []string{"rm"},
		Short:   "Delete an emotion (deleting an unknown id is not an error)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd, app, func(b *board.Board) error {
				deleted := b.DeleteEmotion(args[0])
				if err := checkSaved(b); err != nil {
					return err
				}
				return writeOut(cmd, app, map[string]any{
					"id":      args[0],
					"deleted": deleted,
				})
			})
		},
	}
}

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move the card at position <from> to position <to> (0 = top)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex("from", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			to, err := parseIndex("to", args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			return withBoard(cmd, app, func(b *board.Board) error {
				if err := b.ReorderEmotions(from, to); err != nil {
					return err
				}
				if err := checkSaved(b); err != nil {
					return err
				}
				return writeOut(cmd, app, emotionList(b.Emotions()))
			})
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every emotion",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBoard(cmd, app, func(b *board.Board) error {
				n := b.Len()
				if !yes {
					return errConfirmRequired("clear", n)
				}
				b.ClearAllEmotions()
				if err := checkSaved(b); err != nil {
					return err
				}
				return writeOut(cmd, app, map[string]any{"cleared": n})
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm clearing all emotions")
	return cmd
}

func parseIndex(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, indexArgError{name: name, value: s}
	}
	return n, nil
}

func typeNames() string {
	names := make([]string, 0, len(model.EmotionTypes))
	for _, t := range model.EmotionTypes {
		names = append(names, strings.ToLower(string(t)))
	}
	return strings.Join(names, ", ")
}
