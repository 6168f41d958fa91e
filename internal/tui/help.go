package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `
## Board

| Key | Action |
| --- | --- |
| a / n | log an emotion |
| d / x | delete the selected card |
| m, then ↑/↓ and enter | pick up a card and drop it elsewhere (esc puts it back) |
| K / J | move the selected card up / down |
| C | clear every card (asks first) |

## Stats

| Key | Action |
| --- | --- |
| t | today (since local midnight) |
| w | last 7 days |
| m | last 30 days |
| ← / → | previous / next window |

## Everywhere

- **tab** or **s** switches between the board and stats
- **?** toggles this help, **q** quits
- Changes made from another terminal (for example ` + "`emoboard joy`" + `) show up automatically.
`

type helpPageKey struct {
	dark  bool
	width int
}

// The help text never changes, so the rendered page is cached per width and background.
var helpPages sync.Map // helpPageKey -> string

func renderHelp(width int) string {
	body := modalBodyWidth(width)
	return renderModalBox(width, "Help", helpPage(max(body, 20)))
}

func helpPage(width int) string {
	k := helpPageKey{dark: lipgloss.HasDarkBackground(), width: width}
	if page, ok := helpPages.Load(k); ok {
		return page.(string)
	}

	// WithAutoStyle queries the terminal, which can block inside the program loop.
	style := styles.LightStyle
	if k.dark {
		style = styles.DarkStyle
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(width))
	if err != nil {
		return strings.TrimSpace(helpMarkdown)
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return strings.TrimSpace(helpMarkdown)
	}
	page := strings.TrimRight(out, "\n")
	helpPages.Store(k, page)
	return page
}
