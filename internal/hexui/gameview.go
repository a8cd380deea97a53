// File internal/hexui/gameview.go
package hexui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenGame adapts GuiState into ebiten's Game interface. It holds
// no board logic of its own — it only ever reads the shared
// GuiState the main loop publishes through Update(board, root, ...).
type ebitenGame struct {
	closed bool
}

func (g *ebitenGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.closed = true
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	mu.RLock()
	st := current
	mu.RUnlock()
	drawBoard(screen, st)
}

func (g *ebitenGame) Layout(_, _ int) (int, int) {
	return screenW, screenH
}
