package searcher

import (
	"amazons/experiments/metrics"
	"amazons/game"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

type Option func(a *AlphaBeta)

// AlphaBeta is a depth-limited minimax searcher with alpha-beta pruning.
// White maximises the evaluation and Black minimises it.
type AlphaBeta struct {
	depth    int // 0 selects MaxDepth by move count
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// WithDepth fixes the search depth instead of using the move-count schedule.
func WithDepth(depth int) Option {
	return func(a *AlphaBeta) {
		if depth < 0 {
			panic("search depth cannot be negative")
		}
		a.depth = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(a *AlphaBeta) {
		if evaluate != nil {
			a.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		evaluate: game.Mobility,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Depth returns the depth FindMove will search on board.
func (a *AlphaBeta) Depth(board *game.Board) int {
	if a.depth > 0 {
		return a.depth
	}
	return MaxDepth(board.NumMoves())
}

// FindMove searches a copy of board and returns the best move for the side
// to move. The board must be undecided with at least one legal move.
func (a *AlphaBeta) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	if winner := board.Winner(); winner != game.Empty {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %s has won", ErrGameDecided, winner.Name())
	}
	if !board.HasLegalMove(board.Turn()) {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w for %s", ErrNoMoves, board.Turn().Name())
	}

	b := board.Copy()
	depth := a.Depth(b)
	sense := 1
	if b.Turn() == game.Black {
		sense = -1
	}

	a.metrics.Start(depth)
	var found game.Move
	value := a.search(b, depth, sense, -Infinity, Infinity, &found)
	metric := a.metrics.Complete(value)

	log.Debug().
		Str("side", b.Turn().Name()).
		Int("depth", depth).
		Int("value", value).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Str("move", found.String()).
		Msg("alphabeta-search")

	return found, metric, nil
}

// search returns the value of board searched to depth levels. The move
// should have maximal value or value > beta if sense is 1, and minimal value
// or value < alpha if sense is -1. The best move is written to save, which
// only the root call passes.
func (a *AlphaBeta) search(board *game.Board, depth, sense, alpha, beta int, save *game.Move) int {
	a.metrics.AddNode()
	if depth == 0 || board.Winner() != game.Empty {
		return a.evaluate(board)
	}

	if sense > 0 {
		best := math.MinInt32
		for move := range board.LegalMoves() {
			value := a.search(child(board, move), depth-1, -sense, alpha, beta, nil)
			if value > best {
				best = value
				if save != nil {
					*save = move
				}
			}
			if best > beta {
				a.metrics.AddCutoff()
				return best
			}
			alpha = max(alpha, best)
		}
		return best
	}

	best := math.MaxInt32
	for move := range board.LegalMoves() {
		value := a.search(child(board, move), depth-1, -sense, alpha, beta, nil)
		if value < best {
			best = value
			if save != nil {
				*save = move
			}
		}
		if best < alpha {
			a.metrics.AddCutoff()
			return best
		}
		beta = min(beta, best)
	}
	return best
}

// child returns a copy of board with move applied.
func child(board *game.Board, move game.Move) *game.Board {
	next := board.Copy()
	if err := next.MakeMove(move); err != nil {
		panic(fmt.Sprintf("generated move rejected: %v", err))
	}
	return next
}
