// File internal/gexf/gexf_test.go
package gexf_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/gexf"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/search"
)

func TestExportTreeWritesWellFormedGexf(t *testing.T) {
	dir := t.TempDir()
	gexf.SetExportBaseDir(dir)
	defer gexf.SetExportBaseDir("")

	s := board.SetGlinski()
	mv := board.Move{FromCol: 4, FromRow: 3, ToCol: 4, ToRow: 4}
	child := &search.Node{State: s, BestScore: 12}
	root := &search.Node{
		State:     s,
		BestMove:  &mv,
		BestScore: 12,
		Children:  []search.Child{{Move: mv, Node: child}},
	}

	rel := filepath.Join("gexf_exports", "export_test.gexf")
	if err := gexf.ExportTree(root, rel); err != nil {
		t.Fatalf("ExportTree failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, rel))
	if err != nil {
		t.Fatalf("expected output file under the export base dir: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "<gexf") || !strings.Contains(text, "</gexf>") {
		t.Error("expected a well-formed gexf document")
	}
	if !strings.Contains(text, `label="root"`) {
		t.Error("expected the root node to be labeled \"root\"")
	}
	if strings.Count(text, "<node ") != 2 {
		t.Errorf("expected exactly 2 nodes (root + one child), got:\n%s", text)
	}
	if strings.Count(text, "<edge ") != 1 {
		t.Errorf("expected exactly 1 edge, got:\n%s", text)
	}
}

func TestExportTreeHandlesNilRoot(t *testing.T) {
	dir := t.TempDir()
	gexf.SetExportBaseDir(dir)
	defer gexf.SetExportBaseDir("")

	rel := filepath.Join("gexf_exports", "empty.gexf")
	if err := gexf.ExportTree(nil, rel); err != nil {
		t.Fatalf("ExportTree with a nil root should still write a valid empty graph: %v", err)
	}
}
