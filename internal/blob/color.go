package blob

import (
	"fmt"
	"strings"
)

// ColorKey identifies the grouping color of a piece. Only pieces with equal
// keys can connect.
type ColorKey uint8

const (
	White ColorKey = iota
	Red
	Blue
	Green
	Yellow
)

var colorNames = map[ColorKey]string{
	White:  "white",
	Red:    "red",
	Blue:   "blue",
	Green:  "green",
	Yellow: "yellow",
}

// String returns the lowercase color name.
func (k ColorKey) String() string {
	if name, ok := colorNames[k]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(k))
}

// Char returns a single-character code for compact dumps.
func (k ColorKey) Char() byte {
	switch k {
	case White:
		return 'W'
	case Red:
		return 'R'
	case Blue:
		return 'B'
	case Green:
		return 'G'
	case Yellow:
		return 'Y'
	default:
		return '?'
	}
}

// ParseColor parses a color name (case-insensitive).
func ParseColor(s string) (ColorKey, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range colorNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("blob: unknown color %q", s)
}
