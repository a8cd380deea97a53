// File internal/gexf/gexf.go
package gexf

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/protocol"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/search"
)

// document mirrors the small slice of the GEXF 1.3 schema this
// exporter emits: a static, directed graph with three node
// attributes (score, depth, move).
type document struct {
	XMLName xml.Name `xml:"gexf"`
	Xmlns   string   `xml:"xmlns,attr"`
	Version string   `xml:"version,attr"`
	Graph   graph    `xml:"graph"`
}

type graph struct {
	Mode            string     `xml:"mode,attr"`
	DefaultEdgeType string     `xml:"defaultedgetype,attr"`
	Attributes      attrsBlock `xml:"attributes"`
	Nodes           []gexfNode `xml:"nodes>node"`
	Edges           []gexfEdge `xml:"edges>edge"`
}

type attrsBlock struct {
	Class string     `xml:"class,attr"`
	Attrs []attrDecl `xml:"attribute"`
}

type attrDecl struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type gexfNode struct {
	ID        string     `xml:"id,attr"`
	Label     string     `xml:"label,attr"`
	AttValues attrValues `xml:"attvalues"`
}

type attrValues struct {
	Values []attrValue `xml:"attvalue"`
}

type attrValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type gexfEdge struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
	Label  string `xml:"label,attr"`
}

var exportBaseDir string

// SetExportBaseDir sets the directory GEXF paths are resolved against
// (the executable's own directory, per the original tool's layout),
// so exports land next to the binary rather than wherever the process
// happened to be launched from.
func SetExportBaseDir(dir string) {
	exportBaseDir = dir
}

// ExportTree writes the search tree rooted at root to a GEXF file at
// path (resolved against the export base dir if one was set,
// falling back to the current working directory on any write error).
func ExportTree(root *search.Node, path string) error {
	g := graph{
		Mode:            "static",
		DefaultEdgeType: "directed",
		Attributes: attrsBlock{
			Class: "node",
			Attrs: []attrDecl{
				{ID: "score", Title: "Score", Type: "integer"},
				{ID: "depth", Title: "Depth", Type: "integer"},
				{ID: "move", Title: "Move", Type: "string"},
			},
		},
	}

	nextID, nextEdgeID := 0, 0
	walkTree(root, nil, board.Move{}, false, 0, &nextID, &nextEdgeID, &g)

	doc := document{Xmlns: "http://www.gexf.net/1.3", Version: "1.3", Graph: g}
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	payload := append([]byte(xml.Header), data...)

	full := path
	if exportBaseDir != "" {
		full = filepath.Join(exportBaseDir, path)
	}
	if err := writeFile(full, payload); err == nil {
		return nil
	}

	fallback := path
	return writeFile(fallback, payload)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func walkTree(node *search.Node, parentState *board.State, incoming board.Move, hasIncoming bool,
	depth int, nextID, nextEdgeID *int, g *graph) {
	if node == nil {
		return
	}
	myID := *nextID
	nodeID := fmt.Sprintf("n%d", myID)
	*nextID++

	label := nodeID
	if depth == 0 {
		label = "root"
	}
	moveStr := ""
	if hasIncoming && parentState != nil {
		moveStr = moveLabel(parentState, incoming)
	}

	g.Nodes = append(g.Nodes, gexfNode{
		ID:    nodeID,
		Label: label,
		AttValues: attrValues{Values: []attrValue{
			{For: "score", Value: fmt.Sprintf("%d", node.BestScore)},
			{For: "depth", Value: fmt.Sprintf("%d", depth)},
			{For: "move", Value: moveStr},
		}},
	})

	for _, child := range node.Children {
		if child.Node == nil {
			continue
		}
		targetID := fmt.Sprintf("n%d", *nextID)
		edgeLabel := moveLabel(node.State, child.Move)
		g.Edges = append(g.Edges, gexfEdge{
			ID:     fmt.Sprintf("e%d", *nextEdgeID),
			Source: nodeID,
			Target: targetID,
			Label:  edgeLabel,
		})
		*nextEdgeID++
		walkTree(child.Node, node.State, child.Move, true, depth+1, nextID, nextEdgeID, g)
	}
}

func moveLabel(parentState *board.State, m board.Move) string {
	piece := parentState.At(m.FromCol, m.FromRow)
	captured := parentState.At(m.ToCol, m.ToRow)
	pt := byte('P')
	if piece != nil {
		pt = piece.Type
	}
	hadCapture := captured != nil
	capType := byte(0)
	if hadCapture {
		capType = captured.Type
	}
	if m.EnPassant && piece != nil {
		return protocol.FormatMoveEP(m, piece.White)
	}
	return protocol.FormatMoveLong(m, pt, capType, hadCapture)
}
