// File internal/search/iterative.go
package search

import "github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"

const (
	minAlpha = int32(-mateValue - 1)
	maxBeta  = int32(mateValue + 1)
	maxDepth = 64
)

// Result is one completed (or interrupted) iterative-deepening pass.
type Result struct {
	Root  *Node
	Depth int
}

// IterativeDeepen searches depth 1, 2, 3, ... keeping the last FULLY
// completed iteration's tree. ctx.NodesUsed resets to zero at the
// start of each depth, so ctx.MaxNodes is a per-depth node budget
// rather than one shared across the whole search. If a deeper
// iteration is interrupted mid-search (budget or cancellation), its
// partial tree is discarded and the prior complete result is
// returned instead — a deeper-but-truncated tree is worse than a
// shallower, trustworthy one.
func IterativeDeepen(ctx *Context, s *board.State) Result {
	var last Result
	for depth := 1; depth <= maxDepth; depth++ {
		ctx.NodesUsed = 0
		root := MinimaxNode(ctx, s, depth, 0, minAlpha, maxBeta)
		if ctx.BudgetExceeded() {
			// This iteration ran out of budget partway through: its
			// tree may be missing branches at shallower plies than
			// ones it did finish, so it is discarded outright — the
			// last fully completed iteration is always returned.
			break
		}
		last = Result{Root: root, Depth: depth}
	}
	return last
}
