package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveNotation(t *testing.T) {
	t.Run("printing from-to(spear)", func(t *testing.T) {
		m := Mv(Sq(3, 0), Sq(3, 3), Sq(0, 3))

		require.Equal(t, "d1-d4(a4)", m.String())
		require.Equal(t, "j10-j9(a9)", Mv(Sq(9, 9), Sq(9, 8), Sq(0, 8)).String())
	})

	t.Run("parsing accepted forms", func(t *testing.T) {
		expected := Mv(Sq(3, 0), Sq(3, 3), Sq(0, 3))
		for _, text := range []string{"d1-d4(a4)", " d1-d4(a4)\n", "d1 d4 a4", "D1-D4(A4)"} {
			got, err := ParseMove(text)
			require.NoError(t, err, "input %q", text)
			require.Equal(t, expected, got, "input %q", text)
		}
	})

	t.Run("rejecting malformed moves", func(t *testing.T) {
		for _, text := range []string{"", "d1-d4", "d1-d4(a4)(a5)", "d1-z4(a4)", "d1-d4(a11)"} {
			_, err := ParseMove(text)
			require.ErrorIs(t, err, ErrBadNotation, "input %q", text)
		}
	})
}

func TestPiece(t *testing.T) {
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, White, Black.Opponent())
	require.Panics(t, func() { Empty.Opponent() }, "Empty has no opponent")
	require.Panics(t, func() { Spear.Opponent() }, "Spear has no opponent")
	require.Equal(t, "W B S -", White.String()+" "+Black.String()+" "+Spear.String()+" "+Empty.String())
}
