package blob

import "strconv"

// MaxPointValue is the highest additive value a spawned ball carries.
const MaxPointValue = 9

// KindTag selects the variant held by a PieceKind.
type KindTag uint8

const (
	// KindMatcher pieces join same-color groups and contribute points.
	KindMatcher KindTag = iota
	// KindAreaEffect pieces never join groups; on activation they score the
	// cells at their offsets independently.
	KindAreaEffect
)

// String returns the tag name.
func (t KindTag) String() string {
	switch t {
	case KindMatcher:
		return "matcher"
	case KindAreaEffect:
		return "area"
	default:
		return "unknown"
	}
}

// PieceKind is a tagged variant. Multiplier is meaningful for matchers,
// Offsets for area effects.
type PieceKind struct {
	Tag        KindTag
	Multiplier bool
	Offsets    []Coord
}

// MatcherKind returns the kind of a plain scoring ball.
func MatcherKind() PieceKind {
	return PieceKind{Tag: KindMatcher}
}

// MultiplierKind returns the kind of a ball that doubles its group's total.
func MultiplierKind() PieceKind {
	return PieceKind{Tag: KindMatcher, Multiplier: true}
}

// AreaEffectKind returns an area-effect kind hitting the given offsets.
func AreaEffectKind(offsets ...Coord) PieceKind {
	cp := make([]Coord, len(offsets))
	copy(cp, offsets)
	return PieceKind{Tag: KindAreaEffect, Offsets: cp}
}

// BombKind hits left, right and down. Up is excluded: the cell above a bomb
// falls into the gap instead.
func BombKind() PieceKind {
	return AreaEffectKind(OffsetLeft, OffsetRight, OffsetDown)
}

// Piece is what a collaborator reports when something comes to rest.
type Piece struct {
	Color  ColorKey
	Points int
	Kind   PieceKind
}

// NewBall returns a plain matcher worth points.
func NewBall(color ColorKey, points int) Piece {
	return Piece{Color: color, Points: points, Kind: MatcherKind()}
}

// NewMultiplier returns a multiplier ball of the given color.
func NewMultiplier(color ColorKey) Piece {
	return Piece{Color: color, Kind: MultiplierKind()}
}

// NewBomb returns a bomb piece.
func NewBomb() Piece {
	return Piece{Kind: BombKind()}
}

// IsMatcher reports whether the piece participates in color matching.
func (p Piece) IsMatcher() bool {
	return p.Kind.Tag == KindMatcher
}

// IsMultiplier reports whether the piece is a multiplier ball.
func (p Piece) IsMultiplier() bool {
	return p.Kind.Tag == KindMatcher && p.Kind.Multiplier
}

// IsAreaEffect reports whether the piece is a power piece.
func (p Piece) IsAreaEffect() bool {
	return p.Kind.Tag == KindAreaEffect
}

// Label returns a short label for rendering: the point value, "x2" for a
// multiplier, "@" for a power piece.
func (p Piece) Label() string {
	switch {
	case p.IsAreaEffect():
		return "@"
	case p.IsMultiplier():
		return "x2"
	default:
		return strconv.Itoa(p.Points)
	}
}
