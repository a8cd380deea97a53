// File internal/movegen/movegen_test.go
package movegen_test

import (
	"testing"

	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/hexboard"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/movegen"
)

func TestGenerateFromStartingPositionIsNonEmpty(t *testing.T) {
	for _, s := range []*board.State{board.SetGlinski(), board.SetMcCooey(), board.SetHexofen()} {
		moves := movegen.Generate(s)
		if len(moves) == 0 {
			t.Errorf("%v: expected pseudo-legal moves from the starting position", s.Variant)
		}
		for _, m := range moves {
			piece := s.At(m.FromCol, m.FromRow)
			if piece == nil || !piece.White {
				t.Errorf("%v: generated a move for a square without a White piece: %+v", s.Variant, m)
			}
		}
	}
}

func TestGenerateOnlyMovesSideToMovesPieces(t *testing.T) {
	s := board.SetGlinski()
	s.WhiteToPlay = false
	for _, m := range movegen.Generate(s) {
		piece := s.At(m.FromCol, m.FromRow)
		if piece == nil || piece.White {
			t.Errorf("expected only Black moves while Black to play, got %+v", m)
		}
	}
}

func TestPawnDoublePushAvailableAtStart(t *testing.T) {
	s := board.SetGlinski()
	moves := movegen.Generate(s)
	found := false
	for _, m := range moves {
		if m.FromCol == m.ToCol && m.ToRow-m.FromRow == 2 {
			piece := s.At(m.FromCol, m.FromRow)
			if piece != nil && piece.Type == 'P' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected at least one pawn double push from the starting position")
	}
}

func TestSlidingMoveStopsAtFirstOccupant(t *testing.T) {
	s := board.NewState(hexboard.Glinski)
	rook := board.Piece{Type: 'R', White: true}
	blocker := board.Piece{Type: 'P', White: true}
	s.Cells[0][0] = &rook
	s.Cells[0][2] = &blocker
	s.WhiteToPlay = true

	moves := movegen.Generate(s)
	for _, m := range moves {
		if m.FromCol != 0 || m.FromRow != 0 {
			continue
		}
		if m.ToCol == 0 && m.ToRow >= 2 {
			t.Errorf("rook move should not pass through or land beyond its own piece: %+v", m)
		}
	}
}

func TestEnPassantGeneratedAfterDoublePush(t *testing.T) {
	s := board.NewState(hexboard.Glinski)
	whiteP := board.Piece{Type: 'P', White: true}
	blackP := board.Piece{Type: 'P', White: false}
	s.Cells[4][1] = &whiteP
	s.Cells[5][3] = &blackP
	s.WhiteToPlay = true

	push := board.Move{FromCol: 4, FromRow: 1, ToCol: 4, ToRow: 3}
	s.MakeMove(push)

	found := false
	for _, m := range movegen.Generate(s) {
		if m.EnPassant && m.FromCol == 5 && m.FromRow == 3 && m.ToCol == 4 && m.ToRow == 2 {
			found = true
		}
	}
	if !found {
		t.Error("expected an en passant capture to be generated after the adjacent double push")
	}
}

func TestPawnPromotionFlagSetOnLastRank(t *testing.T) {
	s := board.NewState(hexboard.Glinski)
	// Column 0 tops out at row 5; a White pawn one step away from it
	// should generate a promoting move.
	whiteP := board.Piece{Type: 'P', White: true}
	s.Cells[0][4] = &whiteP
	s.WhiteToPlay = true

	found := false
	for _, m := range movegen.Generate(s) {
		if m.FromCol == 0 && m.FromRow == 4 && m.ToCol == 0 && m.ToRow == 5 {
			if !m.Promotion {
				t.Errorf("expected promotion flag on move reaching the last rank: %+v", m)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("expected a pawn push move onto column 0's last rank")
	}
}

func TestOrderMovesPutsHashMoveFirst(t *testing.T) {
	s := board.SetGlinski()
	moves := movegen.Generate(s)
	if len(moves) < 2 {
		t.Fatal("need at least two moves to test ordering")
	}
	hashMove := moves[len(moves)-1]
	ordered := movegen.OrderMoves(moves, s, &hashMove, nil, nil)
	if !ordered[0].Equal(hashMove) {
		t.Errorf("expected hash move first in ordering, got %+v", ordered[0])
	}
}
