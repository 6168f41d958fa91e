package tui

import (
	"os"
	"strconv"
	"strings"

	"emoboard/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette helpers. Everything goes through lipgloss.AdaptiveColor so the board stays readable
// on light and dark terminals; "faint" is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted        lipgloss.TerminalColor = ac("240", "243")
	colorSurfaceFg    lipgloss.TerminalColor = ac("235", "252")
	colorControlBg    lipgloss.TerminalColor = ac("252", "236")
	colorSelectedBg   lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg   lipgloss.TerminalColor = ac("235", "255")
	colorCardBorder   lipgloss.TerminalColor = ac("250", "243")
	colorCardMetaFg   lipgloss.TerminalColor = ac("238", "250")
	colorErrorFg      lipgloss.TerminalColor = ac("160", "203")
	colorModalHeadBg  lipgloss.TerminalColor = ac("252", "237")
	colorBarTrackFg   lipgloss.TerminalColor = ac("253", "238")
	colorGrabBorderFg lipgloss.TerminalColor = ac("232", "255")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// accentFor is the header accent for a time-of-day theme.
func accentFor(t model.Theme) lipgloss.AdaptiveColor {
	switch t {
	case model.ThemeMorning:
		return ac("#B45309", "#FBBF24")
	case model.ThemeAfternoon:
		return ac("#0369A1", "#38BDF8")
	default:
		return ac("#6D28D9", "#A78BFA")
	}
}

// emotionColor is the record's stored color, falling back to the muted color for records
// written before colors were stored.
func emotionColor(hex string) lipgloss.TerminalColor {
	if strings.HasPrefix(hex, "#") && len(hex) == 7 {
		return lipgloss.Color(hex)
	}
	return colorMuted
}

// colorProfileFor upgrades an under-reported profile from TERM/COLORTERM. Only NO_COLOR
// turns colors off; CLICOLOR is ignored inside the TUI.
func colorProfileFor(detected termenv.Profile, getenv func(string) string) termenv.Profile {
	if strings.TrimSpace(getenv("NO_COLOR")) != "" {
		return termenv.Ascii
	}
	if detected == termenv.Ascii {
		return detected
	}
	colorterm := strings.ToLower(getenv("COLORTERM"))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		return termenv.TrueColor
	}
	if strings.Contains(strings.ToLower(getenv("TERM")), "256color") && detected == termenv.ANSI {
		return termenv.ANSI256
	}
	return detected
}

// darkBackground resolves the palette: light|dark from config win, then
// EMOBOARD_TUI_DARKBG, then the bg half of COLORFGBG ("fg;bg"). ok is false when nothing
// decided and terminal detection should stand.
func darkBackground(pref string, getenv func(string) string) (dark, ok bool) {
	switch strings.ToLower(strings.TrimSpace(pref)) {
	case "light":
		return false, true
	case "dark":
		return true, true
	}
	if b, err := strconv.ParseBool(strings.TrimSpace(getenv("EMOBOARD_TUI_DARKBG"))); err == nil {
		return b, true
	}
	fgbg := getenv("COLORFGBG")
	if idx := strings.LastIndexByte(fgbg, ';'); idx >= 0 {
		fgbg = fgbg[idx+1:]
	}
	if bg, err := strconv.Atoi(strings.TrimSpace(fgbg)); err == nil {
		return bg < 7, true
	}
	return false, false
}

func applyColorPreferences(theme string) {
	if dark, ok := darkBackground(theme, os.Getenv); ok {
		lipgloss.SetHasDarkBackground(dark)
	}
	lipgloss.SetColorProfile(colorProfileFor(termenv.ColorProfile(), os.Getenv))
}
