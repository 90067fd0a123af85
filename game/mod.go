package game

// Evaluate scores a position from White's perspective: larger is better
// for White.
type Evaluate func(*Board) int
