package engine

import (
	"amazons/experiments/metrics"
	"amazons/game"
)

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run() (winner game.Piece, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
