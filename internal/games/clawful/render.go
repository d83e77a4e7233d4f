package clawful

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/clawful/internal/blob"
	"github.com/vovakirdan/clawful/internal/core"
)

// Visual characters for rendering
const (
	ClawChar    = '▼'
	EmptyChar   = '·'
	CeilingChar = '╌'
)

const (
	cellW        = 3 // screen columns per board column
	pileCols     = 5 // pile entries per row
	pileEntryW   = 5
	pileWidth    = pileCols * pileEntryW
	pileTopInset = 1
)

// boardSize returns the screen footprint of a board: the box plus the claw
// row above it and the score line below.
func boardSize(b *blob.Board) (w, h int) {
	opts := b.Options()
	return opts.Columns*cellW + 2, opts.Rows + 4
}

func colorOf(p blob.Piece) core.Color {
	if p.IsAreaEffect() {
		return core.ColorOrange
	}
	switch p.Color {
	case blob.Red:
		return core.ColorRed
	case blob.Blue:
		return core.ColorBlue
	case blob.Green:
		return core.ColorGreen
	case blob.Yellow:
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}

// pieceText renders a piece in cellW columns.
func pieceText(p blob.Piece) string {
	return fmt.Sprintf(" %-2s", p.Label())
}

func formatLine(label string, v int) string {
	return fmt.Sprintf("%s: %d", label, v)
}

// drawBoard draws one player's board with its top-left corner at (x, y).
func drawBoard(dst *core.Screen, x, y int, p *player, title string, accent core.Color) {
	opts := p.board.Options()
	grid := p.board.Grid()
	w, _ := boardSize(p.board)

	// Claw
	clawColor := accent
	if p.out {
		clawColor = core.ColorGray
	}
	dst.SetWithColor(x+1+p.col*cellW+1, y, ClawChar, clawColor)

	box := core.NewRect(x, y+1, w, opts.Rows+2)
	dst.DrawBox(box, accent)

	rowY := func(row int) int { return y + 2 + (opts.Rows - 1 - row) }
	for row := 0; row < opts.Rows; row++ {
		for col := 0; col < opts.Columns; col++ {
			sx := x + 1 + col*cellW
			if cell, ok := grid.CellAt(blob.C(col, row)); ok {
				dst.DrawTextWithColor(sx, rowY(row), pieceText(cell.Piece), colorOf(cell.Piece))
				continue
			}
			glyph := EmptyChar
			if row == opts.Ceiling {
				glyph = CeilingChar
			}
			dst.SetWithColor(sx+1, rowY(row), glyph, core.ColorGray)
		}
	}

	drawFalling := func(f *falling) {
		row := core.Clamp(int(math.Round(f.y)), 0, opts.Rows-1)
		dst.DrawTextWithColor(x+1+f.from.Col*cellW, rowY(row), pieceText(f.piece), colorOf(f.piece))
	}
	for _, f := range p.falls {
		drawFalling(f)
	}
	if p.drop != nil {
		drawFalling(p.drop)
	}

	label := formatLine("Score", p.board.Score())
	if title != "" {
		label = title + " " + label
	}
	if p.out {
		label += " OUT"
	}
	dst.DrawTextWithColor(x, box.Bottom(), label, accent)
}

// pileY returns the last screen row used by the pile panel.
func pileY(pile *blob.Pile) int {
	rows := (pile.Cap() + pileCols - 1) / pileCols
	return pileTopInset + rows
}

// drawPile draws the waiting pieces. Player 1's selection is bracketed
// with [], player 2's with <>, a slot picked by both with {}.
func drawPile(dst *core.Screen, x, y int, pile *blob.Pile, players []*player) {
	dst.DrawText(x, y, fmt.Sprintf("PILE %d/%d", pile.Len(), pile.Cap()))
	for i, piece := range pile.Pieces() {
		sx := x + (i%pileCols)*pileEntryW
		sy := y + pileTopInset + i/pileCols

		open, closing := ' ', ' '
		var mine []core.PlayerID
		for _, p := range players {
			if !p.out && p.slot == i {
				mine = append(mine, p.id)
			}
		}
		switch {
		case len(mine) == 2:
			open, closing = '{', '}'
		case len(mine) == 1 && mine[0] == core.Player1:
			open, closing = '[', ']'
		case len(mine) == 1:
			open, closing = '<', '>'
		}

		dst.Set(sx, sy, open)
		dst.DrawTextWithColor(sx+1, sy, fmt.Sprintf("%-2s", piece.Label()), colorOf(piece))
		dst.Set(sx+3, sy, closing)
	}
}

func drawTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2, "Window too small")
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	tw, sw := utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)
	boxW := max(tw, sw) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightYellow)
	dst.DrawTextWithColor(box.X+(boxW-tw)/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-sw)/2, box.Y+3, subtitle)
}
