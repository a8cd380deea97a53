// File internal/search/context.go
package search

import (
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/tt"
)

// MaxPly bounds the killer-move table; the node budget keeps real
// search trees far shallower than this in practice.
const MaxPly = 128

const (
	mateValue      = 10000
	futilityDepth  = 4
	futilityMargin = 10
)

// Context carries everything a search call needs beyond the position
// itself: the node budget, the shared transposition table, killer
// moves per ply, and the cooperative cancellation token.
type Context struct {
	TT        *tt.Table
	Killers   [MaxPly][2]*board.Move
	NodesUsed int
	MaxNodes  int
	Cancel    *cancelToken
}

// NewContext builds a Context against an existing table with a node
// budget. A fresh cancelToken starts unaborted.
func NewContext(table *tt.Table, maxNodes int) *Context {
	return &Context{TT: table, MaxNodes: maxNodes, Cancel: &cancelToken{}}
}

// BudgetExceeded reports whether the search should stop: either the
// node budget was used up or the cancellation token was tripped (by
// an incoming stdin line on the input thread).
func (c *Context) BudgetExceeded() bool {
	return c.NodesUsed >= c.MaxNodes || c.Cancel.IsAborted()
}

func (c *Context) recordKiller(ply int, m board.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	k := &c.Killers[ply]
	if k[0] != nil && k[0].Equal(m) {
		return
	}
	k[1] = k[0]
	mv := m
	k[0] = &mv
}
