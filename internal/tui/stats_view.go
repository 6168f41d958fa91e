package tui

import (
	"fmt"
	"strings"

	"emoboard/internal/board"
	"emoboard/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func renderFilterTabs(current model.StatsFilter) string {
	tabs := make([]string, 0, len(model.StatsFilters))
	for _, f := range model.StatsFilters {
		st := lipgloss.NewStyle().Padding(0, 1)
		if f == current {
			st = st.Bold(true).Foreground(colorSelectedFg).Background(colorSelectedBg)
		} else {
			st = st.Foreground(colorMuted)
		}
		tabs = append(tabs, st.Render(f.Label()))
	}
	return strings.Join(tabs, " ")
}

// renderStats draws the breakdown for the board's current filter: a bar per recorded type,
// most frequent first, filled to its share of the total, then the most frequent type.
func renderStats(b *board.Board, width int) string {
	filter := b.StatsFilter()
	counts := b.EmotionStats()
	total := counts.Total()

	lines := []string{renderFilterTabs(filter), ""}
	if total == 0 {
		lines = append(lines, styleMuted().Render("No emotions recorded for this period yet."))
		return strings.Join(lines, "\n")
	}

	barW := min(50, width-34)
	if barW < 10 {
		barW = 10
	}
	for _, sh := range board.Breakdown(counts) {
		lines = append(lines, fmt.Sprintf("%s %s %3d %3d%%",
			fitWidth(sh.Icon+" "+string(sh.Type), 14), shareBar(sh, barW), sh.Count, sh.Percent))
	}

	lines = append(lines, "", fmt.Sprintf("%s %s", plural(total, "emotion"), periodPhrase(filter)))
	if top, ok := board.Top(counts); ok {
		topLine := lipgloss.NewStyle().Bold(true).Foreground(emotionColor(top.Color)).
			Render(fmt.Sprintf("%s %s", top.Icon, top.Type))
		lines = append(lines, fmt.Sprintf("Most frequent: %s, %s (%d%%)", topLine, plural(top.Count, "time"), top.Percent))
	}
	return strings.Join(lines, "\n")
}

func periodPhrase(f model.StatsFilter) string {
	switch f {
	case model.FilterWeek:
		return "this week"
	case model.FilterMonth:
		return "this month"
	default:
		return "today"
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// shareBar fills percent/100 of width cells, at least one for a non-zero share.
func shareBar(sh board.Share, width int) string {
	filled := sh.Percent * width / 100
	if sh.Count > 0 && filled == 0 {
		filled = 1
	}
	return lipgloss.NewStyle().Foreground(emotionColor(sh.Color)).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(colorBarTrackFg).Render(strings.Repeat("░", width-filled))
}
