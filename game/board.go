package game

import (
	"fmt"
	"strings"
)

// Board is the authoritative state of an Amazons game: piece placement,
// side to move, applied moves and the cached winner.
type Board struct {
	squares [Size * Size]Piece
	turn    Piece
	winner  Piece  // Empty while the game is undecided
	history []Move // Applied moves, most recent last
}

// Starting queens per side.
var (
	whiteStart = [4]Square{Sq(3, 0), Sq(6, 0), Sq(0, 3), Sq(9, 3)}
	blackStart = [4]Square{Sq(0, 6), Sq(9, 6), Sq(3, 9), Sq(6, 9)}
)

// NewBoard returns a board in the initial position with White to move.
func NewBoard() *Board {
	b := &Board{}
	b.Init()
	return b
}

// NewEmptyBoard returns a board with no pieces and turn to move. Pieces
// are placed with Put; this is meant for composed positions.
func NewEmptyBoard(turn Piece) *Board {
	if !turn.IsPlayer() {
		panic("turn must be White or Black")
	}
	return &Board{turn: turn, winner: Empty}
}

// Init resets b to the initial position.
func (b *Board) Init() {
	b.squares = [Size * Size]Piece{}
	for _, s := range whiteStart {
		b.squares[s] = White
	}
	for _, s := range blackStart {
		b.squares[s] = Black
	}
	b.turn = White
	b.winner = Empty
	b.history = b.history[:0]
}

// Copy returns a fully independent copy of b.
func (b *Board) Copy() *Board {
	history := make([]Move, len(b.history), cap(b.history)+1)
	copy(history, b.history)
	return &Board{
		squares: b.squares, // Arrays copy by value
		turn:    b.turn,
		winner:  b.winner,
		history: history,
	}
}

// Put sets the contents of s during position setup. It discards the
// move history and any cached winner.
func (b *Board) Put(p Piece, s Square) {
	if !s.Valid() {
		panic("cannot put a piece off the board")
	}
	b.squares[s] = p
	b.history = b.history[:0]
	b.winner = Empty
}

// SetTurn changes the side to move during position setup.
func (b *Board) SetTurn(turn Piece) {
	if !turn.IsPlayer() {
		panic("turn must be White or Black")
	}
	b.turn = turn
}

// Get returns the contents of s. Off-board squares read as Spear so that
// they always block.
func (b *Board) Get(s Square) Piece {
	if !s.Valid() {
		return Spear
	}
	return b.squares[s]
}

// Turn returns the side to move.
func (b *Board) Turn() Piece { return b.turn }

// Winner returns the side that has won, or Empty while undecided.
func (b *Board) Winner() Piece { return b.winner }

// NumMoves returns the number of applied (not undone) moves.
func (b *Board) NumMoves() int { return len(b.history) }

// History returns a copy of the applied moves, oldest first.
func (b *Board) History() []Move {
	return append([]Move(nil), b.history...)
}

// IsUnblockedMove reports whether from-to is a queen move whose path,
// excluding from and including to, holds only empty squares, asEmpty or
// from itself. asEmpty may be NoSquare.
func (b *Board) IsUnblockedMove(from, to, asEmpty Square) bool {
	dir, ok := from.Direction(to)
	if !ok {
		return false
	}
	n := from.Distance(to)
	for i := 1; i <= n; i++ {
		s := from.QueenMove(dir, i)
		if b.Get(s) != Empty && s != asEmpty && s != from {
			return false
		}
	}
	return true
}

// IsLegalFrom reports whether from holds a piece of the side to move.
func (b *Board) IsLegalFrom(from Square) bool {
	return b.Get(from) == b.turn
}

// IsLegalStep reports whether from-to is a legal first part of a move,
// ignoring the spear throw.
func (b *Board) IsLegalStep(from, to Square) bool {
	return b.IsLegalFrom(from) && b.IsUnblockedMove(from, to, NoSquare)
}

// IsLegal reports whether from-to(spear) is a legal move in the current
// position. The vacated from square does not block the spear.
func (b *Board) IsLegal(from, to, spear Square) bool {
	return b.IsLegalStep(from, to) && b.IsUnblockedMove(to, spear, from)
}

// IsLegalMove reports whether m is legal in the current position.
func (b *Board) IsLegalMove(m Move) bool {
	return b.IsLegal(m.From, m.To, m.Spear)
}

// MakeMove applies m after checking that it is legal. If the side to move
// afterwards has no legal move, the side that just moved becomes the
// winner.
func (b *Board) MakeMove(m Move) error {
	if b.winner != Empty {
		return fmt.Errorf("%w: %s already won", ErrGameOver, b.winner.Name())
	}
	if !b.IsLegalMove(m) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, b.turn.Name())
	}
	b.play(m)
	return nil
}

// MakeMoveParts applies from-to(spear); see MakeMove.
func (b *Board) MakeMoveParts(from, to, spear Square) error {
	return b.MakeMove(Mv(from, to, spear))
}

// play executes a move known to be legal.
func (b *Board) play(m Move) {
	b.history = append(b.history, m)
	b.squares[m.To] = b.squares[m.From]
	b.squares[m.From] = Empty
	b.squares[m.Spear] = Spear
	b.turn = b.turn.Opponent()

	if !b.HasLegalMove(b.turn) {
		b.winner = b.turn.Opponent()
	}
}

// Undo takes back the most recent move and reports whether there was one.
// Only the game-ending move can set the winner, so undoing always leaves
// the game undecided.
func (b *Board) Undo() bool {
	if len(b.history) == 0 {
		return false
	}
	m := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	// Clear the spear first: it may have landed on the vacated origin.
	b.squares[m.Spear] = Empty
	b.squares[m.From] = b.squares[m.To]
	b.squares[m.To] = Empty
	b.turn = b.turn.Opponent()
	b.winner = Empty
	return true
}

// Equal reports whether b and other hold the same pieces, turn, winner and
// history.
func (b *Board) Equal(other *Board) bool {
	if b.squares != other.squares || b.turn != other.turn || b.winner != other.winner {
		return false
	}
	if len(b.history) != len(other.history) {
		return false
	}
	for i := range b.history {
		if b.history[i] != other.history[i] {
			return false
		}
	}
	return true
}

// Count returns the number of squares holding p.
func (b *Board) Count(p Piece) int {
	n := 0
	for _, q := range b.squares {
		if q == p {
			n++
		}
	}
	return n
}

// String draws the board with row 10 at the top, e.g.
//
//	   - - - B - - B - - -
func (b *Board) String() string {
	var sb strings.Builder
	for row := Size - 1; row >= 0; row-- {
		sb.WriteString("   ")
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.squares[Sq(col, row)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
