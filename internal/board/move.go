// File internal/board/move.go
package board

// Move describes one ply. From/To use storage rows; Capture, EnPassant
// and Promotion are set by the move generator. For a move parsed from
// the protocol, MakeMove infers EnPassant when it is unset; Capture and
// Promotion are taken as given.
type Move struct {
	FromCol, FromRow int
	ToCol, ToRow     int
	Capture          bool
	EnPassant        bool
	Promotion        bool
}

// Equal compares the (from, to) squares only — the comparison the
// spec's move-equality checks (TT hash moves, killers, find_child) use.
func (m Move) Equal(o Move) bool {
	return m.FromCol == o.FromCol && m.FromRow == o.FromRow &&
		m.ToCol == o.ToCol && m.ToRow == o.ToRow
}

// UndoInfo is everything make_move needs to hand back to undo_move.
type UndoInfo struct {
	Captured Square
	WasEP    bool
	PrevMove *Move
}

// EncodeMove packs the (from, to) squares into the compact uint32 the
// transposition table stores as a best-move hint; each coordinate fits
// comfortably in a byte for an 11-column, 11-row board.
func EncodeMove(m Move) uint32 {
	return uint32(m.FromCol)<<24 | uint32(m.FromRow)<<16 | uint32(m.ToCol)<<8 | uint32(m.ToRow)
}

// DecodeMove reverses EncodeMove. The Capture/EnPassant/Promotion
// flags are not recoverable from the packed form; callers only use
// the result to match against freshly generated moves via Equal.
func DecodeMove(packed uint32) Move {
	return Move{
		FromCol: int(packed >> 24 & 0xFF),
		FromRow: int(packed >> 16 & 0xFF),
		ToCol:   int(packed >> 8 & 0xFF),
		ToRow:   int(packed & 0xFF),
	}
}
