package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to exactly width columns (ANSI-aware) and height lines so stacked
// sections keep a stable layout.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i, ln := range lines {
		lines[i] = fitWidth(ln, width)
	}
	return strings.Join(lines, "\n")
}

// fitWidth truncates (with an ellipsis) or pads ln to width cells.
func fitWidth(ln string, width int) string {
	if width <= 0 {
		return ""
	}
	w := xansi.StringWidth(ln)
	if w > width {
		ln = xansi.Truncate(ln, width, "…")
		w = xansi.StringWidth(ln)
	}
	if w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}

func modalBodyWidth(width int) int {
	w := modalWidth(width) - 4
	if w < 10 {
		w = 10
	}
	return w
}

func modalWidth(width int) int {
	w := width - 8
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

// renderModalBox draws a titled, bordered box sized for the terminal width.
func renderModalBox(width int, title string, content string) string {
	w := modalWidth(width)
	head := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Width(w - 2).
		Background(colorModalHeadBg).
		Foreground(colorSurfaceFg).
		Render(title)
	body := lipgloss.NewStyle().
		Padding(1, 1).
		Width(w - 2).
		Render(content)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Render(lipgloss.JoinVertical(lipgloss.Left, head, body))
}
