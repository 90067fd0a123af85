// meta/meta.go
package meta

// MAX_MOVES bounds a game: every move fills one of the 92 initially empty squares.
const MAX_MOVES = 92

// NUM_GAMES defines the number of games per experiment match-up.
const NUM_GAMES = 10

// UPDATE_BUFFER defines how many unread session updates can be pending.
const UPDATE_BUFFER = MAX_MOVES
