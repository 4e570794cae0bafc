package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slider/internal/core"
	"github.com/vovakirdan/tui-slider/internal/puzzle"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawBoard draws the frame and every tile at its current view position.
// (x, y) is the screen position of the board's top-left cell.
func drawBoard(dst *core.Screen, x, y int, v *TileView, b *puzzle.Board) {
	w, h := v.BoardSize(b)
	dst.DrawBox(core.NewRect(x-1, y-1, w+2, h+2), core.ColorGray)

	for _, c := range b.Cells() {
		if c.Empty {
			continue
		}
		p, ok := v.Position(c.ID)
		if !ok {
			p = v.CellOrigin(c.Col, c.Row)
		}

		color := core.ColorGray
		if v.Interactive() {
			_, homeRow := b.HomeOf(c.ID)
			color = core.TileColor(homeRow)
		}

		r := core.NewRect(x+int(math.Round(p.X)), y+int(math.Round(p.Y)), v.tileW, v.tileH)
		drawTile(dst, r, strconv.Itoa(int(c.ID)+1), color)
	}
}

// drawTile draws one tile. Tiles of three rows or more get a box outline;
// smaller ones are a filled block.
func drawTile(dst *core.Screen, r core.Rect, label string, color core.Color) {
	if r.H >= 3 {
		dst.DrawRect(r.Inset(1), ' ', color)
		dst.DrawBox(r, color)
	} else {
		dst.DrawRect(r, '░', color)
	}

	_, cy := r.Center()
	dst.DrawTextColored(r.X+(r.W-len(label))/2, cy, label, color)
}
