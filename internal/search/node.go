// File internal/search/node.go
package search

import "github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"

// Child pairs the move that produced a Node with the Node itself, so
// a caller can walk the tree MinimaxNode built without re-deriving
// which move led where (needed for GEXF export and ponder-reuse
// splicing).
type Child struct {
	Move board.Move
	Node *Node
}

// Node is one explored position in a tree-building search.
type Node struct {
	State     *board.State
	BestMove  *board.Move
	BestScore int32
	Children  []Child
}
