// File internal/hexui/control.go
package hexui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/search"
)

// Start launches the GUI in a background goroutine and returns
// immediately, mirroring gui.hpp's "start in a background thread"
// contract. A no-op if the subsystem isn't enabled or already running.
func Start() {
	mu.Lock()
	if !enabled || running {
		mu.Unlock()
		return
	}
	running = true
	game = &ebitenGame{}
	mu.Unlock()

	go func() {
		ebiten.SetWindowSize(screenW, screenH)
		ebiten.SetWindowTitle("Hexagonal Chess")
		if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
			log.Println("hexui: ebiten exited:", err)
		}
		mu.Lock()
		running = false
		mu.Unlock()
	}()
}

// Stop marks the GUI as no longer running. ebiten has no programmatic
// close API usable cross-platform, so callers rely on PollEvents to
// detect a window the user closed instead; Stop exists for symmetry
// with the C++ contract and for tests that spin a fake GUI.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	running = false
}

// Update publishes a fresh snapshot for the render thread to draw on
// its next frame. A no-op if the subsystem isn't enabled.
func Update(b *board.State, root *search.Node, status, lastPlayerMove, lastEngineMove string) {
	if !IsAvailable() {
		return
	}
	mu.Lock()
	current = GuiState{
		Board:          b,
		Root:           root,
		Status:         status,
		LastPlayerMove: lastPlayerMove,
		LastEngineMove: lastEngineMove,
	}
	mu.Unlock()
}

// PollEvents reports whether the GUI is still open. Once the user
// closes the window, or presses Escape (ebitenGame.Update then returns
// ebiten.Termination), ebiten.RunGame returns and running flips to
// false; the caller folds that into the same quit path as stdin EOF
// or an explicit "quit".
func PollEvents() bool {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return true
	}
	return running
}
