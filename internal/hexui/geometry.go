// File internal/hexui/geometry.go
package hexui

import "github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/hexboard"

const (
	screenW  = 900
	screenH  = 820
	cellW    = 58.0
	cellH    = 50.0
	marginX  = 60.0
	marginY  = 60.0
	cellHalf = 20.0
)

// cellCenter computes the on-screen pixel center of (col, storageRow)
// procedurally from the variant's column heights: shorter columns sit
// vertically centered relative to the tallest (center) column, giving
// the familiar hexagonal-board silhouette without any pre-baked
// sprite sheet.
func cellCenter(v hexboard.Variant, col, storageRow int) (x, y float64) {
	maxr := hexboard.MaxRow(v, col)
	centerMax := hexboard.MaxRow(v, hexboard.NumCols/2)
	offsetRows := float64(centerMax-maxr) / 2
	x = marginX + float64(col)*cellW*0.78
	y = marginY + (offsetRows+float64(storageRow))*cellH
	return x, y
}
