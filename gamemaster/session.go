package gamemaster

import (
	"amazons/game"
	"amazons/meta"
	"fmt"
	"iter"
)

// Update reports one applied move and the board after it.
type Update struct {
	Move  game.Move
	Board *game.Board
}

// UpdateGetter returns the next unread update without blocking. ok is false
// when nothing is pending or the game has been decided and drained.
type UpdateGetter func() (u Update, ok bool)

// Session owns the authoritative board of one game.
type Session struct {
	board    *game.Board
	updateCh chan Update
}

func NewSession() *Session {
	return NewSessionFrom(game.NewBoard())
}

// NewSessionFrom starts a session on a copy of board.
func NewSessionFrom(board *game.Board) *Session {
	s := &Session{
		board:    board.Copy(),
		updateCh: make(chan Update, meta.UPDATE_BUFFER),
	}
	if s.board.Winner() != game.Empty {
		close(s.updateCh)
	}
	return s
}

// Board returns a copy of the current position.
func (s *Session) Board() *game.Board { return s.board.Copy() }

func (s *Session) Turn() game.Piece { return s.board.Turn() }

func (s *Session) Winner() game.Piece { return s.board.Winner() }

func (s *Session) NumMoves() int { return s.board.NumMoves() }

func (s *Session) Get(sq game.Square) game.Piece { return s.board.Get(sq) }

func (s *Session) LegalMoves() iter.Seq[game.Move] {
	return s.board.Copy().LegalMoves()
}

func (s *Session) LegalMovesFor(side game.Piece) iter.Seq[game.Move] {
	return s.board.Copy().LegalMovesFor(side)
}

// Play applies move and publishes it. The feed is closed after the move that
// decides the game.
func (s *Session) Play(move game.Move) error {
	if err := s.board.MakeMove(move); err != nil {
		return err
	}
	// Unread updates are always for moves still on the board, so at most
	// MAX_MOVES are pending and the send never blocks
	s.updateCh <- Update{Move: move, Board: s.board.Copy()}
	if s.board.Winner() != game.Empty {
		close(s.updateCh)
	}
	return nil
}

// PlayNotation parses text such as "d1-d4(b4)" and plays it.
func (s *Session) PlayNotation(text string) error {
	move, err := game.ParseMove(text)
	if err != nil {
		return fmt.Errorf("failed to play %q: %w", text, err)
	}
	return s.Play(move)
}

// Undo takes back the last move and withdraws its update if still unread.
// Undoing the deciding move reopens the feed.
func (s *Session) Undo() bool {
	if !s.board.Undo() {
		return false
	}
	pending := s.drain()
	s.updateCh = make(chan Update, meta.UPDATE_BUFFER)
	for _, u := range pending {
		if u.Board.NumMoves() <= s.board.NumMoves() {
			s.updateCh <- u
		}
	}
	return true
}

func (s *Session) Updates() UpdateGetter {
	return func() (Update, bool) {
		select {
		case u, ok := <-s.updateCh:
			return u, ok
		default:
			return Update{}, false
		}
	}
}

// drain empties the feed without blocking.
func (s *Session) drain() []Update {
	pending := []Update{}
	for {
		select {
		case u, ok := <-s.updateCh:
			if !ok {
				return pending
			}
			pending = append(pending, u)
		default:
			return pending
		}
	}
}
