// File internal/movegen/directions.go
package movegen

// dir is a (column delta, logical-row delta) displacement.
type dir struct{ dc, dr int }

// Orthogonal (rook) directions, also used by the queen.
var horizDirs = [6]dir{
	{0, 1}, {0, -1}, {-1, 0}, {1, 0}, {1, 1}, {-1, -1},
}

// Diagonal (bishop) directions, also used by the queen.
var diagDirs = [6]dir{
	{-2, -1}, {2, 1}, {1, 2}, {-1, 1}, {1, -1}, {-1, -2},
}

// Knight jumps: the sign-balanced subset of the twelve (±1..3,±1..3).
var knightDirs = [12]dir{
	{1, 3}, {2, 3}, {3, 1}, {3, 2}, {2, -1}, {1, -2},
	{-1, -3}, {-2, -3}, {-3, -1}, {-3, -2}, {-2, 1}, {-1, 2},
}

// King: orthogonal + diagonal, single step (12 directions).
var kingDirs = [12]dir{
	{0, 1}, {0, -1}, {-1, 0}, {1, 0}, {1, 1}, {-1, -1},
	{-2, -1}, {2, 1}, {1, 2}, {-1, 1}, {1, -1}, {-1, -2},
}

// Pawn capture directions.
var whitePawnCapDirs = [2]dir{{-1, 0}, {1, 1}}
var blackPawnCapDirs = [2]dir{{-1, -1}, {1, 0}}
