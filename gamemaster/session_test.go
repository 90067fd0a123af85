package gamemaster

import (
	"amazons/game"
	"amazons/meta"
	"testing"

	"github.com/stretchr/testify/require"
)

// boxedSession is one White move (e5-e1(b1)) away from walling in Black.
func boxedSession(t *testing.T) *Session {
	t.Helper()
	b := game.NewEmptyBoard(game.White)
	for _, sq := range []game.Square{game.Sq(0, 0), game.Sq(9, 0), game.Sq(0, 9), game.Sq(9, 9)} {
		b.Put(game.Black, sq)
	}
	for _, text := range []string{"a2", "b2", "i1", "i2", "j2", "a9", "b9", "b10", "i10", "i9", "j9"} {
		sq, err := game.ParseSquare(text)
		require.NoError(t, err)
		b.Put(game.Spear, sq)
	}
	for _, sq := range []game.Square{game.Sq(4, 4), game.Sq(4, 5), game.Sq(5, 4), game.Sq(5, 5)} {
		b.Put(game.White, sq)
	}
	return NewSessionFrom(b)
}

func TestSessionInit(t *testing.T) {
	s := NewSession()
	getUpdate := s.Updates()

	require.Equal(t, game.White, s.Turn())
	require.Equal(t, game.Empty, s.Winner())
	require.Zero(t, s.NumMoves())
	require.Equal(t, game.White, s.Get(game.Sq(3, 0)))
	require.True(t, game.NewBoard().Equal(s.Board()))

	_, ok := getUpdate()
	require.False(t, ok, "No update before any move is played")

	count := 0
	for range s.LegalMoves() {
		count++
	}
	require.Equal(t, 2176, count)
}

func TestSessionPlay(t *testing.T) {
	t.Run("playing a legal move publishes an update", func(t *testing.T) {
		s := NewSession()
		getUpdate := s.Updates()

		require.NoError(t, s.PlayNotation("d1-d4(b4)"))

		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, "d1-d4(b4)", u.Move.String())
		require.Equal(t, game.Black, u.Board.Turn())
		require.Equal(t, game.Spear, u.Board.Get(game.Sq(1, 3)))
		require.Equal(t, game.Black, s.Turn())
		require.Equal(t, 1, s.NumMoves())

		_, ok = getUpdate()
		require.False(t, ok, "Only one update per move")
	})

	t.Run("rejecting an illegal move", func(t *testing.T) {
		s := NewSession()

		err := s.PlayNotation("d1-d4(a4)")

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Zero(t, s.NumMoves())
		_, ok := s.Updates()()
		require.False(t, ok)
	})

	t.Run("rejecting bad notation", func(t *testing.T) {
		err := NewSession().PlayNotation("d1 to d4")
		require.ErrorIs(t, err, game.ErrBadNotation)
	})

	t.Run("board copies are independent", func(t *testing.T) {
		s := NewSession()
		b := s.Board()
		require.NoError(t, b.MakeMove(game.Mv(game.Sq(3, 0), game.Sq(3, 3), game.Sq(1, 3))))

		require.Zero(t, s.NumMoves(), "Changing a copy should not touch the session")
	})
}

func TestSessionGameOver(t *testing.T) {
	s := boxedSession(t)
	getUpdate := s.Updates()

	require.NoError(t, s.PlayNotation("e5-e1(b1)"))
	require.Equal(t, game.White, s.Winner())

	u, ok := getUpdate()
	require.True(t, ok, "Expected a final update before the feed closes")
	require.Equal(t, game.White, u.Board.Winner())

	_, ok = getUpdate()
	require.False(t, ok, "Expected no updates after the game is over")

	err := s.PlayNotation("e6-e7(e8)")
	require.ErrorIs(t, err, game.ErrGameOver)

	t.Run("undoing the deciding move reopens the game", func(t *testing.T) {
		require.True(t, s.Undo())
		require.Equal(t, game.Empty, s.Winner())
		require.Equal(t, game.White, s.Turn())

		require.NoError(t, s.PlayNotation("e6-e7(e8)"))
		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, "e6-e7(e8)", u.Move.String())
	})
}

func TestSessionUndo(t *testing.T) {
	s := NewSession()
	require.False(t, s.Undo(), "Nothing to undo")

	require.NoError(t, s.PlayNotation("d1-d4(b4)"))
	require.NoError(t, s.PlayNotation("a7-b7(b8)"))
	require.True(t, s.Undo())
	require.True(t, s.Undo())

	require.True(t, game.NewBoard().Equal(s.Board()))
}

func TestSessionUndoWithdrawsUpdates(t *testing.T) {
	t.Run("undoing an unread move leaves nothing to read", func(t *testing.T) {
		s := NewSession()
		getUpdate := s.Updates()

		require.NoError(t, s.PlayNotation("d1-d4(b4)"))
		require.True(t, s.Undo())

		_, ok := getUpdate()
		require.False(t, ok, "The undone move should not be reported")
		require.Zero(t, s.NumMoves())
	})

	t.Run("updates for moves still on the board are kept in order", func(t *testing.T) {
		s := NewSession()
		getUpdate := s.Updates()

		require.NoError(t, s.PlayNotation("d1-d4(b4)"))
		require.NoError(t, s.PlayNotation("a7-b7(b8)"))
		require.NoError(t, s.PlayNotation("g1-g5(g7)"))
		require.True(t, s.Undo())

		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, "d1-d4(b4)", u.Move.String())
		u, ok = getUpdate()
		require.True(t, ok)
		require.Equal(t, "a7-b7(b8)", u.Move.String())
		require.Equal(t, s.NumMoves(), u.Board.NumMoves())
		_, ok = getUpdate()
		require.False(t, ok)
	})

	t.Run("repeated play and undo never fills the feed", func(t *testing.T) {
		s := NewSession()
		getUpdate := s.Updates()

		for i := 0; i < meta.UPDATE_BUFFER+3; i++ {
			require.NoError(t, s.PlayNotation("d1-d4(b4)"))
			require.True(t, s.Undo())
		}
		require.NoError(t, s.PlayNotation("g1-g5(g7)"))

		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, "g1-g5(g7)", u.Move.String())
		_, ok = getUpdate()
		require.False(t, ok)
	})
}
