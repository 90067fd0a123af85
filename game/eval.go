package game

import "math"

// WinningValue is the magnitude of a decided position: positive when White
// has won, negative when Black has.
const WinningValue = math.MaxInt32 - 1

// Mobility scores b from White's perspective. A decided position scores
// ±WinningValue; otherwise the score is the number of empty squares one
// queen step away from White's queens minus the same count for Black.
func Mobility(b *Board) int {
	switch b.winner {
	case White:
		return WinningValue
	case Black:
		return -WinningValue
	}

	white, black := 0, 0
	for _, s := range AllSquares {
		switch b.squares[s] {
		case White:
			white += freedom(b, s)
		case Black:
			black += freedom(b, s)
		}
	}
	return white - black
}

// freedom counts the empty squares adjacent to s.
func freedom(b *Board, s Square) int {
	n := 0
	for dir := Direction(0); dir < NumDirections; dir++ {
		if t := s.QueenMove(dir, 1); t != NoSquare && b.squares[t] == Empty {
			n++
		}
	}
	return n
}
