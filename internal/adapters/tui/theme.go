package tui

import "github.com/charmbracelet/lipgloss"

// palette is the stylesheet for one theme.
type palette struct {
	title    lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style
	muted    lipgloss.Style
	err      lipgloss.Style
	ok       lipgloss.Style
	frame    lipgloss.Style
}

var (
	lightPalette = newPalette("#5A3FC0", "#1F6F4A", "#B00020", "#6B6B6B", "#FFFFFF", "#202020")
	darkPalette  = newPalette("#B9A6FF", "#4FD6A0", "#FF6B6B", "#8A8A8A", "#1C1C1C", "#E6E6E6")
)

func newPalette(accent, good, bad, muted, bg, fg string) palette {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
	return palette{
		title:    base.Foreground(lipgloss.Color(accent)).Bold(true).MarginBottom(1),
		selected: base.Foreground(lipgloss.Color(accent)).Bold(true),
		done:     base.Foreground(lipgloss.Color(muted)).Strikethrough(true),
		muted:    base.Foreground(lipgloss.Color(muted)).Italic(true),
		err:      base.Foreground(lipgloss.Color(bad)).Bold(true),
		ok:       base.Foreground(lipgloss.Color(good)),
		frame:    lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(lipgloss.Color(fg)).Padding(0, 1),
	}
}

func paletteFor(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}
