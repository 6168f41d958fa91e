package tui

import (
	"fmt"
	"io"
	"strings"

	"emoboard/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type emotionItem struct {
	emotion model.Emotion
	grabbed bool
}

func (i emotionItem) FilterValue() string { return string(i.emotion.Type) + " " + i.emotion.Comment }

func emotionItems(emotions []model.Emotion, grabbedAt int) []list.Item {
	items := make([]list.Item, 0, len(emotions))
	for i, e := range emotions {
		items = append(items, emotionItem{emotion: e, grabbed: i == grabbedAt})
	}
	return items
}

// cardDelegate draws one bordered card per emotion: icon and type, comment, timestamp.
type cardDelegate struct{}

func (d cardDelegate) Height() int  { return 5 } // 3 inner lines + border
func (d cardDelegate) Spacing() int { return 0 }
func (d cardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(emotionItem)
	if !ok {
		return
	}
	totalW := m.Width()
	if totalW < 12 {
		return
	}

	e := it.emotion
	color := emotionColor(e.Color)
	selected := index == m.Index()

	card := lipgloss.NewStyle().
		Padding(0, 1, 0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder)
	switch {
	case it.grabbed:
		card = card.Border(lipgloss.ThickBorder()).BorderForeground(colorGrabBorderFg)
	case selected:
		card = card.BorderForeground(color)
	}
	innerW := totalW - card.GetHorizontalFrameSize()
	if innerW < 1 {
		innerW = 1
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(e.Icon + " " + string(e.Type))
	if it.grabbed {
		title += styleMuted().Render("  (moving)")
	}
	comment := e.Comment
	if strings.TrimSpace(comment) == "" {
		comment = styleMuted().Italic(true).Render("no comment")
	}
	meta := lipgloss.NewStyle().Foreground(colorCardMetaFg).Render(e.Time().Format("Jan 2, 15:04"))

	lines := []string{
		xansi.Truncate(title, innerW, "…"),
		xansi.Truncate(comment, innerW, "…"),
		xansi.Truncate(meta, innerW, "…"),
	}
	fmt.Fprint(w, card.Width(totalW-card.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n")))
}
