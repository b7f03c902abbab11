package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// ansiColors maps core colors to terminal palette entries.
var ansiColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// colorStyles holds one foreground style per palette entry.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(ansiColors)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range ansiColors {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

// styleFor returns the style for c, or the default style for unknown colors.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run. Blanks join
// whatever run they sit in, since a space shows no foreground; the
// mostly empty playfield then costs almost no escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes one screen row as styled runs.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	runColor := core.ColorDefault
	pending := 0 // Trailing blanks not yet assigned to a run

	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Rune == ' ' {
			pending++
			continue
		}
		if cell.Color != runColor {
			flush()
			sb.WriteString(strings.Repeat(" ", pending))
			runColor = cell.Color
		} else {
			run.WriteString(strings.Repeat(" ", pending))
		}
		pending = 0
		run.WriteRune(cell.Rune)
	}
	flush()
	sb.WriteString(strings.Repeat(" ", pending))
}
