package searcher

import (
	"amazons/experiments/metrics"
	"amazons/game"
	"errors"
	"math"
)

// Infinity bounds the initial alpha-beta window; it exceeds any position
// value including game.WinningValue.
const Infinity = math.MaxInt32

var (
	ErrGameDecided = errors.New("game already decided")
	ErrNoMoves     = errors.New("no legal moves")
)

type Searcher interface {
	// FindMove returns the chosen move for the side to move on board,
	// together with the metrics of the search that produced it
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error)
}
