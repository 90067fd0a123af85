package searcher

// Depth schedule by number of moves already played: search deeper once the
// board has filled up and the branching factor has dropped.
const (
	UpperBound = 70
	LowerBound = 40

	OpeningDepth    = 1
	MiddlegameDepth = 2
	EndgameDepth    = 5
)

// MaxDepth returns the search depth for a position with numMoves moves
// played.
func MaxDepth(numMoves int) int {
	switch {
	case numMoves > UpperBound:
		return EndgameDepth
	case numMoves < LowerBound:
		return OpeningDepth
	default:
		return MiddlegameDepth
	}
}
