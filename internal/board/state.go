// File internal/board/state.go
package board

import (
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/hexboard"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/zobrist"
)

// State is the mutable position: piece grid, side to move, last move
// (for en-passant detection), and the variant it was set up as.
type State struct {
	Variant     hexboard.Variant
	Cells       [hexboard.NumCols][]Square
	WhiteToPlay bool
	PrevMove    *Move
}

// NewState allocates a State with correctly-sized, empty columns for v.
// Callers use SetGlinski/SetMcCooey/SetHexofen to populate it.
func NewState(v hexboard.Variant) *State {
	s := &State{Variant: v, WhiteToPlay: true}
	for c := 0; c < hexboard.NumCols; c++ {
		s.Cells[c] = make([]Square, hexboard.MaxRow(v, c))
	}
	return s
}

// OnBoard reports whether (col, storageRow) is a real square.
func (s *State) OnBoard(col, storageRow int) bool {
	return hexboard.OnBoard(s.Variant, col, storageRow)
}

// At returns the piece at (col, storageRow), or nil if empty/off-board.
func (s *State) At(col, storageRow int) Square {
	if !s.OnBoard(col, storageRow) {
		return nil
	}
	return s.Cells[col][storageRow]
}

// Clone deep-copies the state (used to snapshot a child search node;
// pieces themselves are immutable value copies so sharing *Piece is
// safe, but the per-column slices must not alias the parent's).
func (s *State) Clone() *State {
	c := &State{Variant: s.Variant, WhiteToPlay: s.WhiteToPlay}
	if s.PrevMove != nil {
		pm := *s.PrevMove
		c.PrevMove = &pm
	}
	for col := 0; col < hexboard.NumCols; col++ {
		c.Cells[col] = make([]Square, len(s.Cells[col]))
		copy(c.Cells[col], s.Cells[col])
	}
	return c
}

// Hash is a pure function of (cells, white_to_play, ep-square). It
// does not depend on history beyond what PrevMove encodes for en
// passant eligibility.
func (s *State) Hash() uint64 {
	var h uint64
	for c := 0; c < hexboard.NumCols; c++ {
		for r, sq := range s.Cells[c] {
			if sq == nil {
				continue
			}
			h ^= zobrist.PieceKey(c, r, typeIndex(sq.Type), sq.White)
		}
	}
	if s.WhiteToPlay {
		h ^= zobrist.SideKey()
	}
	if epCol, epRow, ok := s.enPassantSquare(); ok {
		h ^= zobrist.EPKey(epCol, epRow)
	}
	return h
}

// enPassantSquare returns the transit square a pawn double-step just
// made eligible for capture, if PrevMove was such a move.
func (s *State) enPassantSquare() (col, row int, ok bool) {
	pm := s.PrevMove
	if pm == nil {
		return 0, 0, false
	}
	if abs(pm.ToRow-pm.FromRow) != 2 {
		return 0, 0, false
	}
	// The mover of PrevMove was the side NOT to play now.
	movedWhite := !s.WhiteToPlay
	if movedWhite {
		return pm.ToCol, pm.ToRow - 1, true
	}
	return pm.ToCol, pm.ToRow + 1, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MakeMove applies m (assumed pseudo-legal) and returns the undo info
// needed to reverse it exactly.
func (s *State) MakeMove(m Move) UndoInfo {
	var undo UndoInfo
	undo.PrevMove = s.PrevMove

	p := *s.Cells[m.FromCol][m.FromRow]
	s.Cells[m.FromCol][m.FromRow] = nil

	destSq := s.Cells[m.ToCol][m.ToRow]

	isEP := m.EnPassant
	if !isEP && p.Type == 'P' && m.FromCol != m.ToCol && destSq == nil && s.PrevMove != nil {
		pm := s.PrevMove
		if abs(pm.ToRow-pm.FromRow) == 2 && pm.ToCol == m.ToCol {
			movedWhite := !s.WhiteToPlay
			epRow := pm.ToRow - 1
			if !movedWhite {
				epRow = pm.ToRow + 1
			}
			if epRow == m.ToRow {
				isEP = true
			}
		}
	}

	if isEP {
		epRow := m.ToRow - 1
		if !p.White {
			epRow = m.ToRow + 1
		}
		if s.OnBoard(m.ToCol, epRow) {
			undo.Captured = s.Cells[m.ToCol][epRow]
			undo.WasEP = true
			s.Cells[m.ToCol][epRow] = nil
		}
	} else if destSq != nil {
		undo.Captured = destSq
	}

	if m.Promotion {
		p.Type = 'Q'
	}
	placed := p
	s.Cells[m.ToCol][m.ToRow] = &placed

	if placed.Type == 'P' && abs(m.ToRow-m.FromRow) == 2 {
		mv := m
		s.PrevMove = &mv
	} else {
		s.PrevMove = nil
	}

	s.WhiteToPlay = !s.WhiteToPlay
	return undo
}

// UndoMove is the exact inverse of MakeMove(m) given the UndoInfo it
// returned.
func (s *State) UndoMove(m Move, undo UndoInfo) {
	s.WhiteToPlay = !s.WhiteToPlay
	s.PrevMove = undo.PrevMove

	placed := *s.Cells[m.ToCol][m.ToRow]
	if m.Promotion {
		placed.Type = 'P'
	}
	restored := placed
	s.Cells[m.FromCol][m.FromRow] = &restored
	s.Cells[m.ToCol][m.ToRow] = nil

	if undo.WasEP && undo.Captured != nil {
		epRow := m.ToRow - 1
		if !placed.White {
			epRow = m.ToRow + 1
		}
		if s.OnBoard(m.ToCol, epRow) {
			s.Cells[m.ToCol][epRow] = undo.Captured
		}
	} else if undo.Captured != nil {
		s.Cells[m.ToCol][m.ToRow] = undo.Captured
	}
}
