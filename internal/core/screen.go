package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character of the screen together with its color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a fixed-size grid of colored cells, stored row-major. Games
// draw into it and the platform turns it into terminal output. Writes
// outside the grid are dropped.
type Screen struct {
	w, h  int
	cells []Cell
}

// NewScreen returns a blank width x height screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.reset(width, height)
	return s
}

func (s *Screen) reset(width, height int) {
	s.w, s.h = max(width, 0), max(height, 0)
	s.cells = make([]Cell, s.w*s.h)
	s.Clear()
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

// Resize changes the dimensions and keeps whatever of the old content
// still fits, anchored top-left.
func (s *Screen) Resize(width, height int) {
	if width == s.w && height == s.h {
		return
	}
	old, oldW, oldH := s.cells, s.w, s.h
	s.reset(width, height)
	cols := min(oldW, s.w)
	for y := 0; y < min(oldH, s.h); y++ {
		copy(s.cells[y*s.w:y*s.w+cols], old[y*oldW:y*oldW+cols])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// Set writes an uncolored rune.
func (s *Screen) Set(x, y int, r rune) {
	s.SetWithColor(x, y, r, ColorDefault)
}

// SetWithColor writes a rune in color c.
func (s *Screen) SetWithColor(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), a space outside the grid.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), a blank cell outside the grid.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text rightwards from (x, y), one rune per cell.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextWithColor(x, y, text, ColorDefault)
}

// DrawTextWithColor is DrawText in color c.
func (s *Screen) DrawTextWithColor(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetWithColor(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.w-utf8.RuneCountInString(text))/2, y, text)
}

// DrawRect fills r with an uncolored rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	left, top, right, bottom := r.X, r.Y, r.Right()-1, r.Bottom()-1
	for x := left + 1; x < right; x++ {
		s.SetWithColor(x, top, '─', c)
		s.SetWithColor(x, bottom, '─', c)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetWithColor(left, y, '│', c)
		s.SetWithColor(right, y, '│', c)
	}
	s.SetWithColor(left, top, '┌', c)
	s.SetWithColor(right, top, '┐', c)
	s.SetWithColor(left, bottom, '└', c)
	s.SetWithColor(right, bottom, '┘', c)
}

// String returns the runes without colors, rows joined by newlines.
func (s *Screen) String() string {
	var b strings.Builder
	b.Grow(len(s.cells) + s.h)
	for i, c := range s.cells {
		if i > 0 && i%s.w == 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(c.Rune)
	}
	return b.String()
}
