package player

import (
	"amazons/experiments/metrics"
	"amazons/game"
	"amazons/searcher"
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrInputClosed = errors.New("input closed")
	ErrNotYourTurn = errors.New("not this player's turn")
)

// Player chooses moves for one side.
type Player interface {
	Side() game.Piece
	// FindMove returns a legal move for Side on board, failing with
	// ErrNotYourTurn when the other side is to move. The board is not modified.
	FindMove(board *game.Board) (game.Move, error)
}

// AI picks moves with alpha-beta search.
type AI struct {
	side     game.Piece
	searcher *searcher.AlphaBeta
	last     metrics.SearchMetric
}

func NewAI(side game.Piece, options ...searcher.Option) *AI {
	mustBeSide(side)
	options = append(options, searcher.WithMetrics())
	return &AI{
		side:     side,
		searcher: searcher.NewAlphaBeta(options...),
	}
}

func (p *AI) Side() game.Piece { return p.side }

func (p *AI) FindMove(board *game.Board) (game.Move, error) {
	if err := checkTurn(p.side, board); err != nil {
		return game.Move{}, err
	}
	move, metric, err := p.searcher.FindMove(board)
	if err != nil {
		return game.Move{}, fmt.Errorf("%s search failed: %w", p.side.Name(), err)
	}
	p.last = metric
	return move, nil
}

// LastMetric returns the statistics of the most recent successful search.
func (p *AI) LastMetric() metrics.SearchMetric {
	return p.last
}

// Human reads moves in from-to(spear) notation, one per line.
type Human struct {
	side  game.Piece
	lines *bufio.Scanner
}

func NewHuman(side game.Piece, input io.Reader) *Human {
	mustBeSide(side)
	return &Human{
		side:  side,
		lines: bufio.NewScanner(input),
	}
}

func (p *Human) Side() game.Piece { return p.side }

// FindMove skips blank lines and warns about unparsable or illegal input
// until a legal move is read.
func (p *Human) FindMove(board *game.Board) (game.Move, error) {
	if err := checkTurn(p.side, board); err != nil {
		return game.Move{}, err
	}
	for p.lines.Scan() {
		text := strings.TrimSpace(p.lines.Text())
		if text == "" {
			continue
		}
		move, err := game.ParseMove(text)
		if err != nil {
			log.Warn().Err(err).Str("side", p.side.Name()).Msg("could not read move")
			continue
		}
		if !board.IsLegalMove(move) {
			log.Warn().Str("side", p.side.Name()).Str("move", move.String()).Msg("illegal move")
			continue
		}
		return move, nil
	}
	if err := p.lines.Err(); err != nil {
		return game.Move{}, fmt.Errorf("failed to read move: %w", err)
	}
	return game.Move{}, ErrInputClosed
}

// Random picks a uniformly random legal move.
type Random struct {
	side game.Piece
	rng  *rand.Rand
}

func NewRandom(side game.Piece, seed uint64) *Random {
	mustBeSide(side)
	return &Random{
		side: side,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (p *Random) Side() game.Piece { return p.side }

func (p *Random) FindMove(board *game.Board) (game.Move, error) {
	if err := checkTurn(p.side, board); err != nil {
		return game.Move{}, err
	}
	moves := slices.Collect(board.LegalMoves())
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("%w for %s", searcher.ErrNoMoves, board.Turn().Name())
	}
	return moves[p.rng.Intn(len(moves))], nil
}

func checkTurn(side game.Piece, board *game.Board) error {
	if board.Turn() != side {
		return fmt.Errorf("%w: %s asked to move for %s", ErrNotYourTurn, side.Name(), board.Turn().Name())
	}
	return nil
}

func mustBeSide(side game.Piece) {
	if !side.IsPlayer() {
		panic(fmt.Sprintf("player side must be white or black, got %s", side.Name()))
	}
}
