package engine

import (
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/gamemaster"
	"amazons/meta"
	"amazons/player"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// LocalEngine alternates two in-process players on one session.
type LocalEngine struct {
	session  *gamemaster.Session
	players  map[game.Piece]player.Player
	maxMoves int
	onMove   func(gamemaster.Update)
}

// WithBoard starts from a copy of board instead of the initial position.
func WithBoard(board *game.Board) Option {
	return func(e *LocalEngine) {
		e.session = gamemaster.NewSessionFrom(board)
	}
}

func WithMaxMoves(maxMoves int) Option {
	return func(e *LocalEngine) {
		if maxMoves <= 0 {
			panic("max moves must be positive")
		}
		e.maxMoves = maxMoves
	}
}

// WithObserver calls observe after every applied move.
func WithObserver(observe func(gamemaster.Update)) Option {
	return func(e *LocalEngine) {
		e.onMove = observe
	}
}

func Local(white, black player.Player, options ...Option) *LocalEngine {
	if white.Side() != game.White || black.Side() != game.Black {
		panic(fmt.Sprintf("players sit on the wrong sides: %s and %s", white.Side().Name(), black.Side().Name()))
	}
	e := &LocalEngine{ // Default values
		session: gamemaster.NewSession(),
		players: map[game.Piece]player.Player{
			game.White: white,
			game.Black: black,
		},
		maxMoves: meta.MAX_MOVES,
		onMove:   func(gamemaster.Update) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) Session() *gamemaster.Session {
	return e.session
}

// Run executes the game loop until a winner is found. A player error stops
// the game and is returned with the metrics gathered so far.
func (e *LocalEngine) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric, error) {
	getUpdate := e.session.Updates()
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.session.Turn().Name(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("%s is starting", gameMetric.StartingPlayer)

	var err error
	for step := 1; e.session.Winner() == game.Empty && step <= e.maxMoves; step++ {
		side := e.session.Turn()
		p := e.players[side]

		start := time.Now()
		var move game.Move
		move, err = p.FindMove(e.session.Board())
		if err != nil {
			err = fmt.Errorf("%s failed to move at step %d: %w", side.Name(), step, err)
			break
		}
		searchMetric := metrics.SearchMetric{}
		if ai, ok := p.(*player.AI); ok {
			searchMetric = ai.LastMetric()
		}
		searchMetric.Duration = time.Since(start)

		if err = e.session.Play(move); err != nil {
			err = fmt.Errorf("%s played %s at step %d: %w", side.Name(), move, step, err)
			break
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       side.Name(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		for u, ok := getUpdate(); ok; u, ok = getUpdate() {
			e.onMove(u)
		}

		log.Debug().Int("step", step).Str("player", side.Name()).Str("move", move.String()).Msg("move played")
	}

	winner := e.session.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner != game.Empty {
		gameMetric.Winner = winner.Name()
		log.Info().Msgf("game ended with winner %s after %d moves", winner.Name(), gameMetric.TotalMoves)
	} else if err == nil {
		log.Info().Msgf("stopped after %d moves (no winner yet)", gameMetric.TotalMoves)
	}

	return winner, gameMetric, moveMetrics, err
}

var _ Engine = (*LocalEngine)(nil)
