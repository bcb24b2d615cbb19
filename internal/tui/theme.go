package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorAccent     lipgloss.TerminalColor = ac("27", "62")
	colorAccentFg   lipgloss.TerminalColor = ac("255", "235")
	colorBorder     lipgloss.TerminalColor = ac("250", "243")
	colorError      lipgloss.TerminalColor = ac("160", "203")
)

// faint text is unreadable on most light terminals.
func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTab(active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return st.Bold(true).Foreground(colorAccentFg).Background(colorAccent)
	}
	return st.Foreground(colorMuted)
}

func stylePane(focused bool) lipgloss.Style {
	border := colorBorder
	if focused {
		border = colorAccent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func styleLabel(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	}
	return lipgloss.NewStyle().Bold(true)
}

func styleStatus(isErr bool) lipgloss.Style {
	if isErr {
		return lipgloss.NewStyle().Foreground(colorError)
	}
	return styleMuted()
}

// applyColorProfilePreference sets the Lip Gloss colour profile for the TUI.
// Only NO_COLOR is honoured; CLICOLOR handling is for piped CLI output.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	switch {
	case strings.Contains(colorterm, "truecolor"), strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// resolveTheme returns "light", "dark", or "" (let Lip Gloss detect).
//
// Priority:
// 1) LISTCMP_TUI_THEME=light|dark|auto
// 2) the configured theme
// 3) COLORFGBG ("fg;bg", bg < 7 is dark)
func resolveTheme(configured string) string {
	for _, v := range []string{os.Getenv("LISTCMP_TUI_THEME"), configured} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "light":
			return "light"
		case "dark":
			return "dark"
		case "auto":
			return resolveThemeFromColorFGBG()
		}
	}
	return resolveThemeFromColorFGBG()
}

func resolveThemeFromColorFGBG() string {
	v := strings.TrimSpace(os.Getenv("COLORFGBG"))
	if v == "" {
		return ""
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return ""
	}
	if bg < 7 {
		return "dark"
	}
	return "light"
}

func applyThemePreference(configured string) {
	switch resolveTheme(configured) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}
}
