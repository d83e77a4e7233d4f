package core

import (
	"strings"
	"testing"
)

func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("new screen is not blank: %q", s.String())
	}
}

func TestScreenSetClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.Set(p[0], p[1], 'X')
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds Set wrote into the buffer")
	}
	if s.Get(9, 9) != ' ' {
		t.Error("out-of-bounds Get should return a space")
	}

	s.DrawText(2, 1, "PILE")
	if got := rows(s)[1]; got != "  PI" {
		t.Errorf("clipped row = %q, want %q", got, "  PI")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawTextWithColor(0, 1, "RRR", ColorRed)
	s.Clear()
	if got := s.GetCell(1, 1); got != blank {
		t.Errorf("cell after Clear = %+v", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		name  string
		width int
		text  string
		want  string
	}{
		{"even", 8, "ok", "   ok   "},
		{"odd remainder", 7, "ok", "  ok   "},
		{"counts runes", 7, "●●●", "  ●●●  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.width, 1)
			s.DrawTextCentered(0, tt.text)
			if got := s.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenDrawBoxAndRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRect(NewRect(0, 0, 5, 4), '#')
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	want := []string{
		"┌───┐",
		"│###│",
		"│###│",
		"└───┘",
	}
	got := rows(s)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
	if c := s.GetCell(0, 0); c.Color != ColorGray {
		t.Errorf("border color = %v, want gray", c.Color)
	}
	if c := s.GetCell(2, 1); c.Color != ColorDefault {
		t.Errorf("fill color = %v, want default", c.Color)
	}
}

func TestScreenResizeKeepsColoredContent(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextWithColor(0, 0, "Score", ColorYellow)
	s.DrawText(0, 5, "gone")

	s.Resize(3, 2)
	if got := s.String(); got != "Sco\n   " {
		t.Errorf("after shrink = %q", got)
	}
	if c := s.GetCell(1, 0); c != (Cell{'c', ColorYellow}) {
		t.Errorf("shrink lost the color: %+v", c)
	}

	s.Resize(6, 3)
	if got := rows(s)[0]; got != "Sco   " {
		t.Errorf("after grow row 0 = %q", got)
	}
}
