// File cmd/hexchess/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/board"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/config"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/gexf"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/hexboard"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/hexui"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/logging"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/protocol"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/search"
	"github.com/GarrettSidle/Hexagonal-Chess-Engine/internal/tt"
)

func main() {
	cfg, err := config.Load("", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(1)
	}

	sessionID := uuid.New().String()
	log := logging.New(cfg.LogLevel).With("session", sessionID)
	defer log.Sync()
	log.Info("engine starting")

	exeDir := executableDir()
	gexf.SetExportBaseDir(exeDir)
	fmt.Fprintln(os.Stderr, "GEXF exports:", filepath.Join(exeDir, "gexf_exports"))

	hexui.SetEnabled(cfg.GUIEnabled)
	if cfg.GUIEnabled {
		hexui.Start()
	}

	e := &engine{
		cfg:       cfg,
		log:       log,
		sessionID: sessionID,
		table:     tt.New(uint8(cfg.TTSizeLog2)),
		ioq:       newInputQueue(os.Stdin),
	}
	e.run()
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		wd, _ := os.Getwd()
		return wd
	}
	return filepath.Dir(exe)
}

// engine holds everything the protocol loop threads through calls:
// the real game state (root), a guessed ponder state searched while
// waiting for the opponent, and the shared resources (TT, GEXF
// counters, logger) both draw on.
type engine struct {
	cfg       config.Config
	log       *zap.SugaredLogger
	sessionID string
	table     *tt.Table

	ioq *inputQueue

	haveBoard     bool
	boardLines    []string
	state         *board.State
	engineWhite   bool
	responseCount int
	gameStart     time.Time
	gameStartSet  bool

	lastNode *search.Node

	ponderState  *board.State
	ponderResult search.Result
}

func (e *engine) run() {
	for {
		opponentToPlay := e.haveBoard && e.state != nil &&
			((e.engineWhite && !e.state.WhiteToPlay) || (!e.engineWhite && e.state.WhiteToPlay))

		line := e.getNextLine(opponentToPlay)
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}

		if !e.haveBoard {
			e.handleSetupLine(line)
			continue
		}

		if !opponentToPlay {
			continue
		}

		e.handleMoveLine(line)
	}
}

func (e *engine) getNextLine(opponentToPlay bool) string {
	for {
		if line, ok := e.ioq.pop(); ok {
			return line
		}
		if e.ioq.isDone() || !hexui.PollEvents() {
			return "quit"
		}

		if opponentToPlay && e.ponderState != nil {
			e.ponderOnce()
		} else {
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// ponderOnce runs one bounded search pass on the guessed position
// while stdin is empty, stopping early the moment a line arrives.
func (e *engine) ponderOnce() {
	ctx := search.NewContext(e.table, e.cfg.PonderNodeBudget)
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if e.ioq.hasData() || e.ioq.isDone() {
					ctx.Cancel.Abort()
					return
				}
			}
		}
	}()
	e.ponderResult = search.IterativeDeepen(ctx, e.ponderState.Clone())
	close(stop)
}

func (e *engine) ensureGameStart() {
	if !e.gameStartSet {
		e.gameStart = time.Now()
		e.gameStartSet = true
	}
}

func (e *engine) handleSetupLine(line string) {
	lower := strings.ToLower(line)
	switch lower {
	case "glinski white", "glinski":
		e.startVariant(hexboard.Glinski, "glinski", lower == "glinski white")
		return
	case "mccooey white", "mccooey":
		e.startVariant(hexboard.McCooey, "mccooey", lower == "mccooey white")
		return
	case "hexofen white", "hexofen":
		e.startVariant(hexboard.Hexofen, "hexofen", lower == "hexofen white")
		return
	}

	e.boardLines = append(e.boardLines, line)
	if len(e.boardLines) != 12 {
		return
	}
	lines := e.boardLines
	e.boardLines = nil
	s, ok := protocol.ParseBoard(lines)
	if !ok {
		fmt.Fprintln(os.Stderr, "invalid board")
		return
	}
	e.haveBoard = true
	e.ensureGameStart()
	e.state = s
	e.startPondering()
}

func (e *engine) startVariant(v hexboard.Variant, name string, engineWhite bool) {
	var s *board.State
	switch v {
	case hexboard.McCooey:
		s = board.SetMcCooey()
	case hexboard.Hexofen:
		s = board.SetHexofen()
	default:
		s = board.SetGlinski()
	}
	e.haveBoard = true
	e.ensureGameStart()
	e.state = s
	e.engineWhite = engineWhite

	fmt.Println("position " + name + " (white to move)")

	if engineWhite {
		e.searchAndReport()
	}
	e.startPondering()
}

// startPondering resets the ponder guess to the position after the
// engine's own last move — the position pondering speculates the
// opponent's reply against.
func (e *engine) startPondering() {
	if e.state == nil {
		e.ponderState = nil
		return
	}
	e.ponderState = e.state.Clone()
}

func (e *engine) handleMoveLine(line string) {
	moveStr := line
	if strings.HasPrefix(line, "move ") {
		moveStr = line[len("move "):]
	} else if len(line) < 4 {
		return
	}

	m, ok := protocol.ParseMove(moveStr)
	if !ok {
		fmt.Fprintln(os.Stderr, "invalid move")
		return
	}

	var ponderChild *search.Node
	if e.ponderResult.Root != nil {
		ponderChild = search.FindChild(e.ponderResult.Root, m)
	}

	playerWhite := e.state.WhiteToPlay
	piece := e.state.At(m.FromCol, m.FromRow)
	captured := e.state.At(m.ToCol, m.ToRow)
	pt := byte('P')
	if piece != nil {
		pt = piece.Type
	}
	hadCapture := captured != nil
	capType := byte(0)
	if hadCapture {
		capType = captured.Type
	}
	var playerNotation string
	if m.EnPassant && piece != nil {
		playerNotation = protocol.FormatMoveEP(m, piece.White)
	} else {
		playerNotation = protocol.FormatMoveLong(m, pt, capType, hadCapture)
	}
	side := "Black"
	if playerWhite {
		side = "White"
	}
	fmt.Println("Player Move (" + side + "): " + playerNotation)

	e.state.MakeMove(m)

	reusedPonder := false
	if ponderChild != nil {
		e.state = ponderChild.State
		e.lastNode = ponderChild
		reusedPonder = ponderChild.BestMove != nil
	}
	e.ponderResult = search.Result{}
	e.ponderState = nil

	if !reusedPonder {
		e.searchAndReport()
	} else {
		e.reportEngineMove()
	}
	e.startPondering()
}

// searchAndReport prints the required "thinking....." banner, runs a
// fresh iterative-deepening search from e.state, exports the tree,
// prints the "Engine Move" line, and applies the move.
func (e *engine) searchAndReport() {
	fmt.Println("thinking.....")
	ctx := search.NewContext(e.table, e.cfg.NodeBudget)
	result := search.IterativeDeepen(ctx, e.state)
	e.lastNode = result.Root
	e.reportEngineMove()
}

func (e *engine) reportEngineMove() {
	side := "Black"
	if e.engineWhite {
		side = "White"
	}

	e.responseCount++
	if e.cfg.GEXFEnabled && e.lastNode != nil {
		path := gexfPath(e.sessionID, e.gameStart, e.responseCount)
		if err := gexf.ExportTree(e.lastNode, path); err != nil {
			e.log.Warnw("gexf export failed", "error", err)
		}
	}

	if e.lastNode == nil || e.lastNode.BestMove == nil {
		fmt.Println("Engine Move (" + side + "): (none)")
		hexui.Update(e.state, e.lastNode, "no move found", "", "")
		return
	}

	mv := *e.lastNode.BestMove
	piece := e.state.At(mv.FromCol, mv.FromRow)
	captured := e.state.At(mv.ToCol, mv.ToRow)
	pt := byte('P')
	if piece != nil {
		pt = piece.Type
	}
	hadCapture := captured != nil
	capType := byte(0)
	if hadCapture {
		capType = captured.Type
	}
	var moveStr string
	if mv.EnPassant && piece != nil {
		moveStr = protocol.FormatMoveEP(mv, piece.White)
	} else {
		moveStr = protocol.FormatMoveLong(mv, pt, capType, hadCapture)
	}
	fmt.Println("Engine Move (" + side + "): " + moveStr)

	e.state.MakeMove(mv)
	hexui.Update(e.state, e.lastNode, "ready", "", moveStr)
}

func gexfPath(sessionID string, start time.Time, moveNum int) string {
	ts := start.Format("2006-01-02_15-04-05")
	shortID := sessionID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	return filepath.Join("gexf_exports", fmt.Sprintf("%s-%s - Move %d.gexf", ts, shortID, moveNum))
}
