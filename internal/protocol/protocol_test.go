// File internal/protocol/protocol_test.go
package protocol_test

import (
	"strings"
	"testing"

	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/protocol"
)

func TestParseMoveCompactNotation(t *testing.T) {
	m, ok := protocol.ParseMove("a1b2")
	if !ok {
		t.Fatal("expected a1b2 to parse")
	}
	want := board.Move{FromCol: 0, FromRow: 0, ToCol: 1, ToRow: 1}
	if m != want {
		t.Errorf("got %+v, want %+v", m, want)
	}
}

func TestParseMovePieceNotation(t *testing.T) {
	m, ok := protocol.ParseMove("N A3 B4")
	if !ok {
		t.Fatal("expected piece notation to parse")
	}
	if m.FromCol != 0 || m.FromRow != 2 || m.ToCol != 1 || m.ToRow != 3 {
		t.Errorf("unexpected parse result: %+v", m)
	}

	m2, ok := protocol.ParseMove("NxB A3 B4")
	if !ok {
		t.Fatal("expected capture piece notation to parse")
	}
	if m2 != m {
		t.Errorf("NxB notation should parse identically to quiet notation for From/To, got %+v vs %+v", m2, m)
	}
}

func TestParseMoveEnPassant(t *testing.T) {
	m, ok := protocol.ParseMove("PeP a5 b6 b5")
	if !ok {
		t.Fatal("expected PeP notation to parse")
	}
	if !m.Capture || !m.EnPassant {
		t.Error("expected PeP move to be flagged as a capture and en passant")
	}
	if m.FromCol != 0 || m.FromRow != 4 || m.ToCol != 1 || m.ToRow != 5 {
		t.Errorf("unexpected PeP from/to: %+v", m)
	}
}

func TestFormatMoveLongQuietAndCapture(t *testing.T) {
	m := board.Move{FromCol: 0, FromRow: 0, ToCol: 1, ToRow: 1}
	quiet := protocol.FormatMoveLong(m, 'N', 0, false)
	if quiet != "N A1 B2" {
		t.Errorf("quiet notation = %q, want %q", quiet, "N A1 B2")
	}
	capture := protocol.FormatMoveLong(m, 'n', 'b', true)
	if capture != "NxB A1 B2" {
		t.Errorf("capture notation = %q, want %q", capture, "NxB A1 B2")
	}
}

func TestParseBoardRequiresTwelveLines(t *testing.T) {
	lines := strings.Split("a\nb\nc", "\n")
	if _, ok := protocol.ParseBoard(lines); ok {
		t.Error("expected ParseBoard to reject fewer than 12 lines")
	}
}

func TestParseBoardRejectsUnknownSide(t *testing.T) {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = ""
	}
	lines[11] = "sideways"
	if _, ok := protocol.ParseBoard(lines); ok {
		t.Error("expected ParseBoard to reject an unrecognized side-to-move line")
	}
}
