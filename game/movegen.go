package game

import "iter"

// ReachableFrom yields every square reachable from from by an unblocked
// queen move, treating asEmpty (which may be NoSquare) as vacated. Squares
// come by direction, East first, and by increasing distance within a
// direction. The contents of from itself are ignored.
func (b *Board) ReachableFrom(from, asEmpty Square) iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for dir := Direction(0); dir < NumDirections; dir++ {
			for step := 1; ; step++ {
				s := from.QueenMove(dir, step)
				if s == NoSquare || (b.squares[s] != Empty && s != asEmpty) {
					break
				}
				if !yield(s) {
					return
				}
			}
		}
	}
}

// LegalMoves yields every legal move for the side to move.
func (b *Board) LegalMoves() iter.Seq[Move] {
	return b.LegalMovesFor(b.turn)
}

// LegalMovesFor yields every legal move for side, whether or not it is
// side's turn. Queens are taken in board-scan order, then destinations and
// spear throws in ReachableFrom order.
func (b *Board) LegalMovesFor(side Piece) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for _, from := range AllSquares {
			if b.squares[from] != side {
				continue
			}
			for to := range b.ReachableFrom(from, NoSquare) {
				for spear := range b.ReachableFrom(to, from) {
					if !yield(Mv(from, to, spear)) {
						return
					}
				}
			}
		}
	}
}

// HasLegalMove reports whether side has at least one legal move.
func (b *Board) HasLegalMove(side Piece) bool {
	for range b.LegalMovesFor(side) {
		return true
	}
	return false
}

// CountLegalMoves returns the number of legal moves for side.
func (b *Board) CountLegalMoves(side Piece) int {
	n := 0
	for range b.LegalMovesFor(side) {
		n++
	}
	return n
}
