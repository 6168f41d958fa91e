package cli

import (
	"fmt"
	"time"

	"emoboard/internal/model"

	"github.com/spf13/cobra"
)

type themeInfo struct {
	Theme    model.Theme `json:"theme"`
	Greeting string      `json:"greeting"`
	Now      time.Time   `json:"now"`
}

func (t themeInfo) String() string {
	return fmt.Sprintf("%s (%s theme)", t.Greeting, t.Theme)
}

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Show the time-of-day theme and greeting",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			return writeOut(cmd, app, themeInfo{
				Theme:    model.ThemeAt(now),
				Greeting: model.GreetingAt(now),
				Now:      now,
			})
		},
	}
}

type typeStyle struct {
	Type  model.EmotionType `json:"type"`
	Color string            `json:"color"`
	Icon  string            `json:"icon"`
}

type styleTable []typeStyle

func (s styleTable) Headers() []string { return []string{"Emotion", "Icon", "Color"} }

func (s styleTable) Rows() [][]string {
	rows := make([][]string, 0, len(s))
	for _, st := range s {
		rows = append(rows, []string{string(st.Type), st.Icon, st.Color})
	}
	return rows
}

func newTypesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List emotion types with their color and icon",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make(styleTable, 0, len(model.EmotionTypes))
			for _, t := range model.EmotionTypes {
				st, _ := model.StyleFor(t)
				out = append(out, typeStyle{Type: t, Color: st.Color, Icon: st.Icon})
			}
			return writeOut(cmd, app, out)
		},
	}
}
