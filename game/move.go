package game

import (
	"fmt"
	"strings"
)

// Move is a queen relocation From-To followed by a spear thrown from To.
type Move struct {
	From  Square
	To    Square
	Spear Square
}

// Mv composes a move from its three squares.
func Mv(from, to, spear Square) Move {
	return Move{From: from, To: to, Spear: spear}
}

// String renders the move as from-to(spear), e.g. d1-d4(a4).
func (m Move) String() string {
	return fmt.Sprintf("%s-%s(%s)", m.From, m.To, m.Spear)
}

// ParseMove reads a move in from-to(spear) notation. Whitespace
// separated squares ("d1 d4 a4") are accepted too.
func ParseMove(text string) (Move, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return r == '-' || r == '(' || r == ')' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return Move{}, fmt.Errorf("%w: move %q", ErrBadNotation, text)
	}
	var squares [3]Square
	for i, f := range fields {
		s, err := ParseSquare(strings.ToLower(f))
		if err != nil {
			return Move{}, fmt.Errorf("move %q: %w", text, err)
		}
		squares[i] = s
	}
	return Mv(squares[0], squares[1], squares[2]), nil
}
