// internal/eval/eval.go
package eval

import "github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"

// PieceValue returns the material weight for a type letter.
func PieceValue(t byte) int {
	switch t {
	case 'P':
		return 1
	case 'R':
		return 5
	case 'N':
		return 3
	case 'B':
		return 3
	case 'K':
		return 0
	case 'Q':
		return 9
	default:
		return 0
	}
}

// Evaluate sums material from White's point of view: positive favors
// White. Terminality is never reported here — the searcher treats a
// king-capturing move as terminal itself and assigns the ±10000
// sentinel, less the ply of the capture (exactly ±10000 at the root),
// without consulting Evaluate.
func Evaluate(s *board.State) int {
	score := 0
	for c := range s.Cells {
		for _, sq := range s.Cells[c] {
			if sq == nil {
				continue
			}
			v := PieceValue(sq.Type)
			if sq.White {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}
