package game

// Piece is the occupant of a square.
type Piece int8

const (
	Empty Piece = iota
	White
	Black
	Spear
)

// Opponent returns the other player. Only White and Black have one.
func (p Piece) Opponent() Piece {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		panic("opponent of non-player piece " + p.String())
	}
}

// IsPlayer reports whether p is one of the two sides.
func (p Piece) IsPlayer() bool {
	return p == White || p == Black
}

func (p Piece) String() string {
	switch p {
	case White:
		return "W"
	case Black:
		return "B"
	case Spear:
		return "S"
	default:
		return "-"
	}
}

// Name is the lowercase side name used in logs and records.
func (p Piece) Name() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	case Spear:
		return "spear"
	default:
		return "empty"
	}
}
