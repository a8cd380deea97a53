// File: internal/zobrist/zobrist.go
package zobrist

import (
	"math/rand"
	"sync"

	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/hexboard"
)

const (
	cols   = hexboard.NumCols
	rows   = 11 // max storage rows across all variants
	pieces = 12 // 6 piece types * 2 colors
)

// fixedSeed so hashes are reproducible within a run: the same position
// always hashes the same way across process restarts, which GEXF
// export diffs depend on.
var fixedSeed uint64 = 0x9E3779B97F4A7C15

var (
	initOnce sync.Once

	pieceKeys [cols][rows][pieces]uint64
	sideKey   uint64
	epKeys    [cols][rows]uint64
)

func ensureInit() {
	initOnce.Do(func() {
		rng := rand.New(rand.NewSource(int64(fixedSeed)))
		nonZero := func() uint64 {
			// skip zero: it would be a no-op under XOR
			v := rng.Uint64()
			for v == 0 {
				v = rng.Uint64()
			}
			return v
		}
		for c := 0; c < cols; c++ {
			for r := 0; r < rows; r++ {
				for p := 0; p < pieces; p++ {
					pieceKeys[c][r][p] = nonZero()
				}
			}
		}
		sideKey = nonZero()
		for c := 0; c < cols; c++ {
			for r := 0; r < rows; r++ {
				epKeys[c][r] = nonZero()
			}
		}
	})
}

// PieceIndex maps (type-index, white) to the 0..11 slot used by the
// piece-key table. Type order matches board/eval: P R N B K Q.
func PieceIndex(typeIdx int, white bool) int {
	if white {
		return typeIdx * 2
	}
	return typeIdx*2 + 1
}

// PieceKey returns the XOR term for a piece of the given type-index
// (see PieceIndex) and color sitting at (col, row).
func PieceKey(col, row, typeIdx int, white bool) uint64 {
	ensureInit()
	return pieceKeys[col][row][PieceIndex(typeIdx, white)]
}

// SideKey is XOR'd into the hash whenever it is White's turn to move.
func SideKey() uint64 {
	ensureInit()
	return sideKey
}

// EPKey returns the XOR term for the single en-passant target square.
func EPKey(col, row int) uint64 {
	ensureInit()
	return epKeys[col][row]
}
