package tui

import (
	"strconv"
	"strings"

	"emoboard/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// addModal holds the picker and comment field while the board's add modal is open.
// Whether it is shown is owned by the board (IsAddModalOpen).
type addModal struct {
	typeIdx int
	input   textinput.Model
	err     string
}

func newAddModal() addModal {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = "What's behind it? (optional)"
	in.CharLimit = model.MaxCommentLen
	in.Focus()
	return addModal{input: in}
}

func (a addModal) selected() model.EmotionType {
	return model.EmotionTypes[a.typeIdx]
}

func (a *addModal) cycle(delta int) {
	n := len(model.EmotionTypes)
	a.typeIdx = ((a.typeIdx+delta)%n + n) % n
	a.err = ""
}

func (a addModal) view(width int) string {
	bodyW := modalBodyWidth(width)
	a.input.Width = bodyW - 4

	chips := make([]string, 0, len(model.EmotionTypes))
	for i, t := range model.EmotionTypes {
		st, _ := model.StyleFor(t)
		chip := lipgloss.NewStyle().Padding(0, 1)
		if i == a.typeIdx {
			chip = chip.Bold(true).
				Foreground(lipgloss.Color("#111827")).
				Background(emotionColor(st.Color))
		} else {
			chip = chip.Foreground(emotionColor(st.Color))
		}
		chips = append(chips, chip.Render(st.Icon+" "+string(t)))
	}

	counter := strconv.Itoa(len([]rune(a.input.Value()))) + "/" + strconv.Itoa(model.MaxCommentLen)
	lines := []string{
		"How are you feeling?",
		"",
		lipgloss.NewStyle().Width(bodyW).Render(strings.Join(chips, " ")),
		"",
		a.input.View(),
		styleMuted().Render(counter),
	}
	if a.err != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(colorErrorFg).Render(a.err))
	}
	lines = append(lines, "", styleMuted().Width(bodyW).Render("tab/↑↓: emotion   enter: save   esc: cancel"))
	return renderModalBox(width, "Log an emotion", strings.Join(lines, "\n"))
}
