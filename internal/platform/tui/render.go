package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/clawful/internal/core"
)

// palette holds the ANSI 256 code of every core.Color except the default.
var palette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightYellow: "11",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

func styleFor(c core.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if code, ok := palette[c]; ok {
		s = s.Foreground(lipgloss.Color(code))
	}
	return s
}

// RenderScreen turns the screen buffer into terminal output. Each row is
// split into runs of one color so a run costs a single escape sequence.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()
	var out strings.Builder
	out.Grow(2*w*h + h)

	var run strings.Builder
	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < w; x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			out.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return out.String()
}
