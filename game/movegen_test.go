package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReachableFrom(t *testing.T) {
	t.Run("ordering by direction then distance", func(t *testing.T) {
		b := NewBoard()

		var got []string
		for s := range b.ReachableFrom(mustSquare(t, "a4"), NoSquare) {
			got = append(got, s.String())
		}

		require.Equal(t, []string{
			"b4", "c4", "d4", "e4", "f4", "g4", "h4", "i4", // E, stopped by j4
			"b5", "c6", "d7", "e8", "f9", // NE, stopped by g10
			"a5", "a6", // N, stopped by a7
			"a3", "a2", "a1", // S
			"b3", "c2", // SE, stopped by d1
		}, got)
	})

	t.Run("treating a square as vacated", func(t *testing.T) {
		b := NewBoard()

		var got []Square
		for s := range b.ReachableFrom(mustSquare(t, "c1"), mustSquare(t, "d1")) {
			if s.Row() == 0 {
				got = append(got, s)
			}
		}

		require.Equal(t, []Square{
			mustSquare(t, "d1"), mustSquare(t, "e1"), mustSquare(t, "f1"),
			mustSquare(t, "b1"), mustSquare(t, "a1"),
		}, got, "Vacated d1 should not block the path east")
	})

	t.Run("a walled square reaches nothing", func(t *testing.T) {
		b := boxedBoard(t)

		count := 0
		for range b.ReachableFrom(mustSquare(t, "j1"), NoSquare) {
			count++
		}

		require.Zero(t, count)
	})

	t.Run("stopping early", func(t *testing.T) {
		b := NewBoard()

		var first Square
		for s := range b.ReachableFrom(mustSquare(t, "d1"), NoSquare) {
			first = s
			break
		}

		require.Equal(t, mustSquare(t, "e1"), first)
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("initial position for White", func(t *testing.T) {
		b := NewBoard()

		seen := map[Move]bool{}
		for m := range b.LegalMoves() {
			require.True(t, b.IsLegalMove(m), "generated move %s should be legal", m)
			require.False(t, seen[m], "move %s generated twice", m)
			seen[m] = true
		}

		require.Len(t, seen, 2176, "Initial position has 2176 moves")
		require.Equal(t, 2176, b.CountLegalMoves(White))
	})

	t.Run("moves come in board-scan order", func(t *testing.T) {
		b := NewBoard()

		var first []Move
		for m := range b.LegalMoves() {
			first = append(first, m)
			if len(first) == 3 {
				break
			}
		}

		require.Equal(t, []Move{
			mustMove(t, "d1-e1(f1)"),
			mustMove(t, "d1-e1(f2)"),
			mustMove(t, "d1-e1(g3)"),
		}, first)
	})

	t.Run("moves for the side not on turn", func(t *testing.T) {
		b := NewBoard()

		count := 0
		for m := range b.LegalMovesFor(Black) {
			require.Equal(t, Black, b.Get(m.From))
			count++
		}

		require.Equal(t, 2176, count, "Black's setup mirrors White's")
		require.Equal(t, White, b.Turn(), "Enumeration does not change the turn")
	})

	t.Run("no moves for a walled-in side", func(t *testing.T) {
		b := boxedBoard(t)
		require.NoError(t, b.MakeMove(mustMove(t, "e5-e1(b1)")))

		count := 0
		for range b.LegalMoves() {
			count++
		}

		require.Zero(t, count)
		require.False(t, b.HasLegalMove(Black))
		require.True(t, b.HasLegalMove(White))
	})

	t.Run("spear throws pass over the vacated origin", func(t *testing.T) {
		b := NewBoard()

		found := false
		for m := range b.LegalMoves() {
			if m == mustMove(t, "d1-e1(a1)") {
				found = true
			}
		}

		require.True(t, found, "Spear from e1 should fly through the vacated d1")
	})
}
