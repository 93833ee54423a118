package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xlc-dev/chromatic/internal/scheme"
)

const sampleText = "The quick brown fox"

// paletteSwatch renders the eight normal colors followed by the eight bright
// ones as two-cell blocks. Without a color terminal it is blank padding.
func paletteSwatch(s scheme.Scheme) string {
	colors := []string{
		s.Black, s.Red, s.Green, s.Yellow, s.Blue, s.Magenta, s.Cyan, s.White,
		s.BrightBlack, s.BrightRed, s.BrightGreen, s.BrightYellow,
		s.BrightBlue, s.BrightMagenta, s.BrightCyan, s.BrightWhite,
	}

	var b strings.Builder
	for _, hex := range colors {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  "))
	}
	return b.String()
}

func textSample(background, foreground string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color(foreground)).
		Padding(0, 1).
		Render(sampleText)
}
