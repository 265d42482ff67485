package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles used to draw one frame.
type Theme struct {
	App     lipgloss.Style
	Title   lipgloss.Style
	Status  lipgloss.Style
	Muted   lipgloss.Style
	Cell    lipgloss.Style
	Cursor  lipgloss.Style
	MarkX   lipgloss.Color
	MarkO   lipgloss.Color
	Grid    lipgloss.Style
	History lipgloss.Style
	Notice  lipgloss.Style
}

func LightTheme() Theme {
	bg := lipgloss.Color("#FFFFFF")
	fg := lipgloss.Color("#000000")

	return newTheme(bg, fg, lipgloss.Color("#F0F0F0"), lipgloss.Color("#808080"))
}

// DarkTheme mirrors the dark-gray window with light-gray buttons.
func DarkTheme() Theme {
	bg := lipgloss.Color("#404040")
	fg := lipgloss.Color("#FFFFFF")

	return newTheme(bg, fg, lipgloss.Color("#C0C0C0"), lipgloss.Color("#A0A0A0"))
}

func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

func newTheme(bg, fg, cellBg, muted lipgloss.Color) Theme {
	base := lipgloss.NewStyle().Background(bg).Foreground(fg)
	cell := lipgloss.NewStyle().
		Background(cellBg).
		Foreground(fg).
		Bold(true).
		Width(cellWidth).
		Align(lipgloss.Center)

	return Theme{
		App:    base,
		Title:  base.Bold(true),
		Status: base.Bold(true),
		Muted:  base.Foreground(muted),
		Cell:   cell,
		Cursor: cell.Reverse(true),
		MarkX:  lipgloss.Color("#2563EB"),
		MarkO:  lipgloss.Color("#DC2626"),
		Grid:   base.Foreground(muted),
		History: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			BorderBackground(bg).
			Padding(0, 1).
			Width(historyWidth),
		Notice: base.Foreground(lipgloss.Color("#D97706")),
	}
}
