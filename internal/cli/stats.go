package cli

import (
	"strconv"
	"time"

	"emoboard/internal/board"
	"emoboard/internal/model"

	"github.com/spf13/cobra"
)

type statsReport struct {
	Filter    model.StatsFilter `json:"filter"`
	Label     string            `json:"label"`
	Since     time.Time         `json:"since"`
	Total     int               `json:"total"`
	Counts    map[string]int    `json:"counts"`
	Breakdown []board.Share     `json:"breakdown"`
	Top       *board.Share      `json:"top"`
}

func (r statsReport) Headers() []string {
	return []string{"Emotion", "Count", "Share"}
}

func (r statsReport) Rows() [][]string {
	rows := make([][]string, 0, len(r.Breakdown)+1)
	for _, s := range r.Breakdown {
		rows = append(rows, []string{
			s.Icon + " " + string(s.Type),
			strconv.Itoa(s.Count),
			strconv.Itoa(s.Percent) + "%",
		})
	}
	rows = append(rows, []string{r.Label + " total", strconv.Itoa(r.Total), ""})
	return rows
}

func buildStatsReport(b *board.Board) statsReport {
	f := b.StatsFilter()
	since, _ := board.Threshold(f, b.Now())
	counts := b.EmotionStats()

	r := statsReport{
		Filter:    f,
		Label:     f.Label(),
		Since:     since,
		Total:     counts.Total(),
		Counts:    make(map[string]int, len(counts)),
		Breakdown: board.Breakdown(counts),
	}
	for t, n := range counts {
		r.Counts[string(t)] = n
	}
	if top, ok := board.Top(counts); ok {
		r.Top = &top
	}
	return r
}

func newStatsCmd(app *App) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Emotion counts for today, the last 7 days or the last 30 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := model.ParseStatsFilter(filter)
			if err != nil {
				return writeErr(cmd, err)
			}
			return withBoard(cmd, app, func(b *board.Board) error {
				if err := b.SetStatsFilter(f); err != nil {
					return err
				}
				return writeOut(cmd, app, buildStatsReport(b))
			})
		},
	}
	cmd.Flags().StringVar(&filter, "filter", string(model.FilterToday), "Time window (today|week|month)")
	return cmd
}
