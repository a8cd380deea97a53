// File internal/hexui/state.go
package hexui

import (
	"sync"

	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/search"
)

// GuiState is the data the render thread reads every frame. The main
// loop pushes a fresh copy in via Update; no field is ever mutated by
// the render side.
type GuiState struct {
	Board          *board.State
	Root           *search.Node
	Status         string
	LastPlayerMove string
	LastEngineMove string
}

var (
	mu      sync.RWMutex
	current GuiState
	enabled bool
	running bool
	game    *ebitenGame
)

// SetEnabled toggles whether the GUI subsystem may start, letting a
// single binary run headless or windowed depending on config rather
// than which build produced it.
func SetEnabled(v bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = v
}

// IsAvailable reports whether the GUI subsystem is enabled.
func IsAvailable() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}
