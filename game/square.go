package game

import (
	"fmt"
	"iter"
)

// Size is the number of squares on a side of the board.
const Size = 10

// Square is a board coordinate, stored as row*Size + col.
type Square int8

// NoSquare marks a coordinate that fell off the board.
const NoSquare Square = -1

// Direction is one of the eight queen-move directions.
type Direction int

const (
	East Direction = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
	NumDirections
)

// (dcol, drow) per direction
var deltas = [NumDirections][2]int{
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
}

// AllSquares lists every square in board-scan (row-major) order.
var AllSquares = func() [Size * Size]Square {
	var all [Size * Size]Square
	for i := range all {
		all[i] = Square(i)
	}
	return all
}()

// Sq returns the square at (col, row), or NoSquare if it is off the board.
func Sq(col, row int) Square {
	if col < 0 || col >= Size || row < 0 || row >= Size {
		return NoSquare
	}
	return Square(row*Size + col)
}

// Squares iterates over all squares in board-scan order, a1 through j10.
func Squares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for _, s := range AllSquares {
			if !yield(s) {
				return
			}
		}
	}
}

func (s Square) Col() int { return int(s) % Size }
func (s Square) Row() int { return int(s) / Size }

func (s Square) Valid() bool {
	return s >= 0 && s < Size*Size
}

// QueenMove returns the square steps units away in direction dir, or
// NoSquare if that lies off the board. Zero steps returns s itself.
func (s Square) QueenMove(dir Direction, steps int) Square {
	if !s.Valid() || dir < 0 || dir >= NumDirections {
		return NoSquare
	}
	d := deltas[dir]
	return Sq(s.Col()+d[0]*steps, s.Row()+d[1]*steps)
}

// IsQueenMove reports whether other lies on a common row, column or
// diagonal with s and is not s.
func (s Square) IsQueenMove(other Square) bool {
	if !s.Valid() || !other.Valid() || s == other {
		return false
	}
	dc := other.Col() - s.Col()
	dr := other.Row() - s.Row()
	return dc == 0 || dr == 0 || abs(dc) == abs(dr)
}

// Direction returns the direction in which repeated queen moves from s
// reach other. ok is false when other is not a queen move away.
func (s Square) Direction(other Square) (dir Direction, ok bool) {
	if !s.IsQueenMove(other) {
		return 0, false
	}
	dc := sign(other.Col() - s.Col())
	dr := sign(other.Row() - s.Row())
	for d, step := range deltas {
		if step[0] == dc && step[1] == dr {
			return Direction(d), true
		}
	}
	return 0, false
}

// Distance is the number of king steps between s and other.
func (s Square) Distance(other Square) int {
	return max(abs(other.Col()-s.Col()), abs(other.Row()-s.Row()))
}

// Between returns the squares strictly between s and other along their
// common queen line, or nil if they do not share one.
func (s Square) Between(other Square) []Square {
	dir, ok := s.Direction(other)
	if !ok {
		return nil
	}
	n := s.Distance(other)
	line := make([]Square, 0, n-1)
	for i := 1; i < n; i++ {
		line = append(line, s.QueenMove(dir, i))
	}
	return line
}

// String renders s in algebraic notation: columns a-j, rows 1-10.
func (s Square) String() string {
	if !s.Valid() {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col(), s.Row()+1)
}

// ParseSquare reads a square such as "d4" or "j10".
func ParseSquare(text string) (Square, error) {
	if len(text) < 2 || len(text) > 3 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrBadNotation, text)
	}
	col := int(text[0] - 'a')
	row := 0
	for _, c := range text[1:] {
		if c < '0' || c > '9' {
			return NoSquare, fmt.Errorf("%w: square %q", ErrBadNotation, text)
		}
		row = row*10 + int(c-'0')
	}
	s := Sq(col, row-1)
	if !s.Valid() {
		return NoSquare, fmt.Errorf("%w: square %q off the board", ErrBadNotation, text)
	}
	return s, nil
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
