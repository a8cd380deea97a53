// File internal/protocol/protocol.go
package protocol

import (
	"strconv"
	"strings"

	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/hexboard"
)

// parseSquare parses "a1"-style notation into a (col, storage-row)
// pair. Row numbers are 1-based in the wire format, 0-based in State.
func parseSquare(s string) (col, row int, ok bool) {
	if s == "" {
		return 0, 0, false
	}
	col = int(s[0]|0x20) - 'a'
	if col < 0 || col >= hexboard.NumCols {
		return 0, 0, false
	}
	if len(s) < 2 {
		return 0, 0, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, 0, false
	}
	row = n - 1
	if row < 0 {
		return 0, 0, false
	}
	return col, row, true
}

// ParseBoard decodes a 12-line board dump: 11 column strings (upper =
// White, lower = Black, space/'.' = empty) followed by "white" or
// "black" naming the side to move. The resulting state is always set
// up as the Glinski variant, matching the protocol's fixed column
// heights.
func ParseBoard(lines []string) (*board.State, bool) {
	if len(lines) < 12 {
		return nil, false
	}
	s := board.NewState(hexboard.Glinski)
	for c := 0; c < hexboard.NumCols; c++ {
		maxr := hexboard.MaxRow(hexboard.Glinski, c)
		line := lines[c]
		for r := 0; r < maxr; r++ {
			var ch byte = ' '
			if r < len(line) {
				ch = line[r]
			}
			if ch == ' ' || ch == '.' || ch == 0 {
				s.Cells[c][r] = nil
				continue
			}
			white := ch >= 'A' && ch <= 'Z'
			t := ch
			if !white {
				t = ch - 'a' + 'A'
			}
			p := board.Piece{Type: t, White: white}
			s.Cells[c][r] = &p
		}
	}
	side := strings.TrimRight(lines[11], "\r")
	switch side {
	case "white":
		s.WhiteToPlay = true
	case "black":
		s.WhiteToPlay = false
	default:
		return nil, false
	}
	s.PrevMove = nil
	return s, true
}

// ParseMove accepts the three move notations the protocol allows: the
// compact "a1b2" form, "N A3 B4" / "NxB A3 B4" (piece letter and
// optional capture are advisory only — From/To drive MakeMove), and
// "PeP a5 b6 b5" for an explicit en-passant capture.
func ParseMove(s string) (board.Move, bool) {
	fields := strings.Fields(s)

	if len(fields) == 4 && len(fields[0]) == 3 {
		t := fields[0]
		if (t[0] == 'P' || t[0] == 'p') && (t[1] == 'e' || t[1] == 'E') && (t[2] == 'P' || t[2] == 'p') {
			fc, fr, ok1 := parseSquare(fields[1])
			tc, tr, ok2 := parseSquare(fields[2])
			if ok1 && ok2 {
				return board.Move{FromCol: fc, FromRow: fr, ToCol: tc, ToRow: tr, Capture: true, EnPassant: true}, true
			}
		}
	}

	if len(fields) == 3 {
		fc, fr, ok1 := parseSquare(fields[1])
		tc, tr, ok2 := parseSquare(fields[2])
		if ok1 && ok2 {
			return board.Move{FromCol: fc, FromRow: fr, ToCol: tc, ToRow: tr}, true
		}
	}

	if len(s) < 4 {
		return board.Move{}, false
	}
	pos := 0
	c1 := int(s[pos]|0x20) - 'a'
	if c1 < 0 || c1 >= hexboard.NumCols {
		return board.Move{}, false
	}
	pos++
	r1 := 0
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		r1 = r1*10 + int(s[pos]-'0')
		pos++
	}
	r1--
	if pos >= len(s) || r1 < 0 {
		return board.Move{}, false
	}
	c2 := int(s[pos]|0x20) - 'a'
	if c2 < 0 || c2 >= hexboard.NumCols {
		return board.Move{}, false
	}
	pos++
	r2 := 0
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		r2 = r2*10 + int(s[pos]-'0')
		pos++
	}
	r2--
	if r2 < 0 {
		return board.Move{}, false
	}
	return board.Move{FromCol: c1, FromRow: r1, ToCol: c2, ToRow: r2}, true
}

// FormatMove is the compact "a1b2" notation.
func FormatMove(m board.Move) string {
	return hexboard.SquareName(m.FromCol, m.FromRow) + hexboard.SquareName(m.ToCol, m.ToRow)
}

// FormatMoveLong renders "NxB A3 B4" (capture) or "N A3 B4" (quiet),
// where the piece letters are uppercased regardless of color.
func FormatMoveLong(m board.Move, pieceType byte, capturedType byte, hadCapture bool) string {
	from := hexboard.SquareName(m.FromCol, m.FromRow)
	to := hexboard.SquareName(m.ToCol, m.ToRow)
	p := upper(pieceType)
	if hadCapture {
		return string(p) + "x" + string(upper(capturedType)) + " " + from + " " + to
	}
	return string(p) + " " + from + " " + to
}

// FormatMoveEP renders the "PeP from to captured" en-passant notation.
func FormatMoveEP(m board.Move, pieceWhite bool) string {
	from := hexboard.SquareName(m.FromCol, m.FromRow)
	to := hexboard.SquareName(m.ToCol, m.ToRow)
	capRow := m.ToRow - 1
	if !pieceWhite {
		capRow = m.ToRow + 1
	}
	cap := hexboard.SquareName(m.ToCol, capRow)
	return "PeP " + from + " " + to + " " + cap
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
