// File internal/movegen/startrank.go
package movegen

import "github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/hexboard"

var hexofenWhiteStart = [hexboard.NumCols]int{0, 0, 1, 1, 2, 2, 2, 1, 1, 0, 0}
var hexofenBlackStart = [hexboard.NumCols]int{5, 6, 6, 7, 7, 8, 7, 7, 6, 6, 5}

// IsStartingPawnWhite reports whether (col, storageRow) is a White
// pawn's starting square for variant v — used to allow a two-step push.
func IsStartingPawnWhite(v hexboard.Variant, col, storageRow int) bool {
	switch v {
	case hexboard.McCooey:
		if col < 6 {
			return col-2 == storageRow
		}
		return storageRow+col == 8
	case hexboard.Hexofen:
		return col >= 0 && col < hexboard.NumCols && hexofenWhiteStart[col] == storageRow
	default: // Glinski
		if col < 6 {
			return col-1 == storageRow
		}
		return storageRow+col == 9
	}
}

// IsStartingPawnBlack is the Black-side equivalent of IsStartingPawnWhite.
func IsStartingPawnBlack(v hexboard.Variant, col, storageRow int) bool {
	switch v {
	case hexboard.McCooey:
		return storageRow == 7
	case hexboard.Hexofen:
		return col >= 0 && col < hexboard.NumCols && hexofenBlackStart[col] == storageRow
	default: // Glinski
		return storageRow == 6
	}
}
