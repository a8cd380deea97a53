// File internal/hexui/renderer.go
package hexui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/hexboard"
)

var (
	colDark   = color.RGBA{0x3a, 0x2e, 0x26, 0xff}
	colLight  = color.RGBA{0xd8, 0xc2, 0x9a, 0xff}
	colWhite  = color.RGBA{0xf2, 0xf0, 0xe8, 0xff}
	colBlack  = color.RGBA{0x20, 0x20, 0x20, 0xff}
	colStatus = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
)

// drawBoard renders every occupied and empty square of st.Board, then
// the status/move strings along the bottom, using only filled
// rectangles (cells), filled circles (pieces) and basicfont glyphs —
// no sprite assets.
func drawBoard(screen *ebiten.Image, st GuiState) {
	screen.Fill(colDark)
	if st.Board == nil {
		return
	}
	b := st.Board

	for c := 0; c < hexboard.NumCols; c++ {
		maxr := hexboard.MaxRow(b.Variant, c)
		for r := 0; r < maxr; r++ {
			x, y := cellCenter(b.Variant, c, r)
			cellColor := colLight
			if (c+r)%2 == 0 {
				cellColor = colDark
			}
			vector.DrawFilledRect(screen, float32(x-cellHalf), float32(y-cellHalf), cellW-4, cellH-4, cellColor, false)

			sq := b.At(c, r)
			if sq == nil {
				continue
			}
			pieceColor := colBlack
			if sq.White {
				pieceColor = colWhite
			}
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(cellHalf-4), pieceColor, true)

			label := string(sq.Type)
			text.Draw(screen, label, basicfont.Face7x13, int(x)-3, int(y)+4, colStatus)
		}
	}

	text.Draw(screen, st.Status, basicfont.Face7x13, 20, screenH-56, colStatus)
	text.Draw(screen, fmt.Sprintf("Player: %s", st.LastPlayerMove), basicfont.Face7x13, 20, screenH-36, colStatus)
	text.Draw(screen, fmt.Sprintf("Engine: %s", st.LastEngineMove), basicfont.Face7x13, 20, screenH-16, colStatus)
}
