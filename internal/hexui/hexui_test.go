// File internal/hexui/hexui_test.go
package hexui

import (
	"testing"

	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/hexboard"
)

func TestCellCenterCentersShorterColumnsVertically(t *testing.T) {
	centerX, centerY := cellCenter(hexboard.Glinski, hexboard.NumCols/2, 0)
	edgeX, edgeY := cellCenter(hexboard.Glinski, 0, 0)

	if edgeX == centerX {
		t.Error("expected columns to be spaced horizontally")
	}
	if edgeY <= centerY {
		t.Error("expected a shorter edge column's first row to sit below the center column's first row")
	}
}

func TestSetEnabledControlsIsAvailable(t *testing.T) {
	SetEnabled(false)
	if IsAvailable() {
		t.Fatal("expected IsAvailable to be false after SetEnabled(false)")
	}
	SetEnabled(true)
	defer SetEnabled(false)
	if !IsAvailable() {
		t.Error("expected IsAvailable to be true after SetEnabled(true)")
	}
}

func TestUpdateIsNoopWhenDisabled(t *testing.T) {
	SetEnabled(false)
	Update(nil, nil, "status", "", "")

	mu.RLock()
	got := current
	mu.RUnlock()
	if got.Status == "status" {
		t.Error("expected Update to be a no-op while the GUI subsystem is disabled")
	}
}

func TestUpdatePublishesSnapshotWhenEnabled(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	s := board.SetGlinski()
	Update(s, nil, "thinking", "A1B2", "")

	mu.RLock()
	got := current
	mu.RUnlock()
	if got.Status != "thinking" || got.Board != s {
		t.Errorf("unexpected published state: %+v", got)
	}
}

func TestPollEventsTrueWhenDisabled(t *testing.T) {
	SetEnabled(false)
	if !PollEvents() {
		t.Error("expected PollEvents to report true (nothing to wait on) when disabled")
	}
}
