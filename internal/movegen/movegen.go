// File internal/movegen/movegen.go
package movegen

import (
	"sort"

	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/eval"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/hexboard"
)

// Generate enumerates pseudo-legal moves for the side to move: no
// check filtering, capture/en-passant/promotion flags set.
func Generate(s *board.State) []board.Move {
	result := make([]board.Move, 0, 64)
	whiteToMove := s.WhiteToPlay

	for c := 0; c < hexboard.NumCols; c++ {
		maxr := hexboard.MaxRow(s.Variant, c)
		for r := 0; r < maxr; r++ {
			sq := s.At(c, r)
			if sq == nil || sq.White != whiteToMove {
				continue
			}
			switch sq.Type {
			case 'P':
				addPawnMoves(&result, s, c, r, sq.White)
			case 'R':
				addSlidingMoves(&result, s, c, r, sq.White, horizDirs[:])
			case 'N':
				addLeaperMoves(&result, s, c, r, sq.White, knightDirs[:])
			case 'B':
				addSlidingMoves(&result, s, c, r, sq.White, diagDirs[:])
			case 'K':
				addLeaperMoves(&result, s, c, r, sq.White, kingDirs[:])
			case 'Q':
				addSlidingMoves(&result, s, c, r, sq.White, horizDirs[:])
				addSlidingMoves(&result, s, c, r, sq.White, diagDirs[:])
			}
		}
	}

	for i := range result {
		m := &result[i]
		p := s.At(m.FromCol, m.FromRow)
		if p != nil && p.Type == 'P' && isPromotion(m.ToCol, m.ToRow, p.White) {
			m.Promotion = true
		}
	}
	return result
}

func addLeaperMoves(out *[]board.Move, s *board.State, col, row int, white bool, dirs []dir) {
	logical := hexboard.StorageToLogical(col, row)
	for _, d := range dirs {
		nc := col + d.dc
		nlog := logical + d.dr
		nr := hexboard.LogicalToStorage(nc, nlog)
		if !s.OnBoard(nc, nr) {
			continue
		}
		target := s.At(nc, nr)
		if target == nil {
			*out = append(*out, board.Move{FromCol: col, FromRow: row, ToCol: nc, ToRow: nr})
		} else if target.White != white {
			*out = append(*out, board.Move{FromCol: col, FromRow: row, ToCol: nc, ToRow: nr, Capture: true})
		}
	}
}

func addSlidingMoves(out *[]board.Move, s *board.State, col, row int, white bool, dirs []dir) {
	logical := hexboard.StorageToLogical(col, row)
	for _, d := range dirs {
		c, lr := col, logical
		for {
			c += d.dc
			lr += d.dr
			sr := hexboard.LogicalToStorage(c, lr)
			if !s.OnBoard(c, sr) {
				break
			}
			target := s.At(c, sr)
			if target == nil {
				*out = append(*out, board.Move{FromCol: col, FromRow: row, ToCol: c, ToRow: sr})
				continue
			}
			if target.White != white {
				*out = append(*out, board.Move{FromCol: col, FromRow: row, ToCol: c, ToRow: sr, Capture: true})
			}
			break
		}
	}
}

func addPawnMoves(out *[]board.Move, s *board.State, col, row int, white bool) {
	logical := hexboard.StorageToLogical(col, row)
	capDirs := whitePawnCapDirs[:]
	if !white {
		capDirs = blackPawnCapDirs[:]
	}
	epCol, epRow, hasEP := enPassantSquare(s)

	for _, d := range capDirs {
		nc := col + d.dc
		nlog := logical + d.dr
		nr := hexboard.LogicalToStorage(nc, nlog)
		if !s.OnBoard(nc, nr) {
			continue
		}
		if hasEP && nc == epCol && nr == epRow {
			*out = append(*out, board.Move{FromCol: col, FromRow: row, ToCol: nc, ToRow: nr, Capture: true, EnPassant: true})
			continue
		}
		target := s.At(nc, nr)
		if target != nil && target.White != white {
			*out = append(*out, board.Move{FromCol: col, FromRow: row, ToCol: nc, ToRow: nr, Capture: true})
		}
	}

	forwardLogical := logical + 1
	if !white {
		forwardLogical = logical - 1
	}
	forwardRow := hexboard.LogicalToStorage(col, forwardLogical)
	if !s.OnBoard(col, forwardRow) || s.At(col, forwardRow) != nil {
		return
	}
	*out = append(*out, board.Move{FromCol: col, FromRow: row, ToCol: col, ToRow: forwardRow})

	var starting bool
	if white {
		starting = IsStartingPawnWhite(s.Variant, col, row)
	} else {
		starting = IsStartingPawnBlack(s.Variant, col, row)
	}
	if !starting {
		return
	}
	doubleLogical := logical + 2
	if !white {
		doubleLogical = logical - 2
	}
	doubleRow := hexboard.LogicalToStorage(col, doubleLogical)
	if !s.OnBoard(col, doubleRow) || s.At(col, doubleRow) != nil {
		return
	}
	*out = append(*out, board.Move{FromCol: col, FromRow: row, ToCol: col, ToRow: doubleRow})
}

// enPassantSquare returns the transit square a pawn double-step just
// made eligible for capture, if the previous move was one.
func enPassantSquare(s *board.State) (col, row int, ok bool) {
	pm := s.PrevMove
	if pm == nil {
		return 0, 0, false
	}
	d := pm.ToRow - pm.FromRow
	if d != 2 && d != -2 {
		return 0, 0, false
	}
	movedWhite := !s.WhiteToPlay
	if movedWhite {
		return pm.ToCol, pm.ToRow - 1, true
	}
	return pm.ToCol, pm.ToRow + 1, true
}

// isPromotion reports whether a pawn landing on (toCol, toRow) reaches
// the last rank for its color. White's last rank is the slanted edge
// opposite the start; Black's is storage row 0.
func isPromotion(toCol, toRow int, white bool) bool {
	if white {
		if toCol <= 5 && toRow-toCol == 5 {
			return true
		}
		if toCol > 5 && toCol+toRow == 15 {
			return true
		}
		return false
	}
	return toRow == 0
}

// OrderMoves arranges moves for alpha-beta: the hash move first (if
// present in the list), then captures by descending MVV-LVA, then
// killers, then everything else in original relative order.
func OrderMoves(moves []board.Move, s *board.State, hashMove, killer1, killer2 *board.Move) []board.Move {
	ordered := make([]board.Move, 0, len(moves))
	rest := moves

	if hashMove != nil {
		for i, m := range rest {
			if m.Equal(*hashMove) {
				ordered = append(ordered, m)
				rest = append(append([]board.Move{}, rest[:i]...), rest[i+1:]...)
				break
			}
		}
	}

	var captures, killers, plain []board.Move
	for _, m := range rest {
		switch {
		case m.Capture:
			captures = append(captures, m)
		case killer1 != nil && m.Equal(*killer1), killer2 != nil && m.Equal(*killer2):
			killers = append(killers, m)
		default:
			plain = append(plain, m)
		}
	}

	sort.SliceStable(captures, func(i, j int) bool {
		return mvvLva(s, captures[i]) > mvvLva(s, captures[j])
	})

	ordered = append(ordered, captures...)
	ordered = append(ordered, killers...)
	ordered = append(ordered, plain...)
	return ordered
}

func mvvLva(s *board.State, m board.Move) int {
	victim := s.At(m.ToCol, m.ToRow)
	attacker := s.At(m.FromCol, m.FromRow)
	victimVal := 0
	if victim != nil {
		victimVal = eval.PieceValue(victim.Type)
	}
	attackerVal := 1
	if attacker != nil {
		attackerVal = eval.PieceValue(attacker.Type)
	}
	return victimVal*10 - attackerVal
}
