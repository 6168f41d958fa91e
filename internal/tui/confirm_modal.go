package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type confirmModalFocus int

const (
	confirmFocusCancel confirmModalFocus = iota
	confirmFocusConfirm
)

func (f confirmModalFocus) toggle() confirmModalFocus {
	if f == confirmFocusConfirm {
		return confirmFocusCancel
	}
	return confirmFocusConfirm
}

func button(label string, focused bool) string {
	st := lipgloss.NewStyle().Padding(0, 1)
	if focused {
		return st.Bold(true).Foreground(colorSelectedFg).Background(colorSelectedBg).Render(label)
	}
	return st.Foreground(colorSurfaceFg).Background(colorControlBg).Render(label)
}

// renderClearConfirm asks before wiping n cards. Cancel has focus until tab moves it.
func renderClearConfirm(width, n int, focus confirmModalFocus) string {
	question := fmt.Sprintf("Delete all %s? This cannot be undone.", plural(n, "emotion"))
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button("Clear", focus == confirmFocusConfirm), " ",
		button("Cancel", focus == confirmFocusCancel))
	hint := styleMuted().Width(modalBodyWidth(width)).Render("tab: focus   enter: select   y/n   esc: cancel")

	return renderModalBox(width, "Clear board", lipgloss.JoinVertical(lipgloss.Left,
		question, "", buttons, "", hint))
}
