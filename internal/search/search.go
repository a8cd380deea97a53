// File internal/search/search.go
package search

import (
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/eval"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/movegen"
)

// MinimaxNode runs alpha-beta search to depth, populating
// node.Children so the caller can inspect the PV, export a GEXF tree,
// or splice a ponder subtree into the real tree via FindChild. It
// probes and stores through ctx.TT and applies futility pruning at
// depth >= futilityDepth.
func MinimaxNode(ctx *Context, s *board.State, depth, ply int, alpha, beta int32) *Node {
	ctx.NodesUsed++
	node := &Node{State: s.Clone()}

	if ctx.BudgetExceeded() || depth == 0 {
		node.BestScore = int32(eval.Evaluate(s))
		return node
	}

	hash := s.Hash()
	var hashMove *board.Move
	if entry, hit := ctx.TT.Probe(hash); hit {
		if entry.Flag == 0 && int(entry.Depth) >= depth {
			node.BestScore = entry.Score
			hm := board.DecodeMove(entry.BestMove)
			node.BestMove = &hm
			return node
		}
		hm := board.DecodeMove(entry.BestMove)
		hashMove = &hm
	}

	whiteToMove := s.WhiteToPlay
	staticEval := eval.Evaluate(s)
	futile := depth >= futilityDepth &&
		((whiteToMove && int32(staticEval)+futilityMargin <= alpha) ||
			(!whiteToMove && int32(staticEval)-futilityMargin >= beta))
	if futile {
		node.BestScore = int32(staticEval)
		return node
	}

	moves := movegen.Generate(s)
	if len(moves) == 0 {
		node.BestScore = int32(staticEval)
		return node
	}
	moves = movegen.OrderMoves(moves, s, hashMove, ctx.Killers[ply][0], ctx.Killers[ply][1])

	var best *board.Move
	bestScore := int32(-mateValue - 1)
	if !whiteToMove {
		bestScore = mateValue + 1
	}

	for _, m := range moves {
		if ctx.BudgetExceeded() {
			break
		}

		if capturedKing(s, m) {
			score := int32(mateValue - ply)
			if !whiteToMove {
				score = -int32(mateValue - ply)
			}
			undo := s.MakeMove(m)
			child := &Node{State: s.Clone(), BestScore: score}
			s.UndoMove(m, undo)
			mv := m
			node.Children = append(node.Children, Child{Move: mv, Node: child})
			if better(score, bestScore, whiteToMove) {
				bestScore = score
				best = &mv
			}
			alpha, beta = tighten(alpha, beta, score, whiteToMove)
			if alpha >= beta {
				break
			}
			continue
		}

		undo := s.MakeMove(m)
		child := MinimaxNode(ctx, s, depth-1, ply+1, alpha, beta)
		s.UndoMove(m, undo)

		mv := m
		node.Children = append(node.Children, Child{Move: mv, Node: child})

		if better(child.BestScore, bestScore, whiteToMove) {
			bestScore = child.BestScore
			best = &mv
		}
		alpha, beta = tighten(alpha, beta, child.BestScore, whiteToMove)
		if alpha >= beta {
			ctx.recordKiller(ply, m)
			break
		}
	}

	node.BestScore = bestScore
	node.BestMove = best
	if best != nil {
		ctx.TT.Store(hash, int8(depth), bestScore, 0, board.EncodeMove(*best))
	}
	return node
}

func better(score, best int32, whiteToMove bool) bool {
	if whiteToMove {
		return score > best
	}
	return score < best
}

func tighten(alpha, beta, score int32, whiteToMove bool) (int32, int32) {
	if whiteToMove {
		if score > alpha {
			alpha = score
		}
	} else {
		if score < beta {
			beta = score
		}
	}
	return alpha, beta
}

func capturedKing(s *board.State, m board.Move) bool {
	if !m.Capture || m.EnPassant {
		return false
	}
	target := s.At(m.ToCol, m.ToRow)
	return target != nil && target.Type == 'K'
}

// FindChild returns the child Node reached by playing m from node, or
// nil if m is not among node.Children — used to splice a completed
// ponder search into the real tree once the opponent's move is known.
func FindChild(node *Node, m board.Move) *Node {
	if node == nil {
		return nil
	}
	for _, c := range node.Children {
		if c.Move.Equal(m) {
			return c.Node
		}
	}
	return nil
}
