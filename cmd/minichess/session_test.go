package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benbeisheim/minichess-backend/internal/config"
	"github.com/benbeisheim/minichess-backend/internal/model"
	"github.com/benbeisheim/minichess-backend/internal/notation"
	"github.com/benbeisheim/minichess-backend/internal/testutil"
)

const header = "     a  b  c  d  e  f  g  h"

func playSession(t *testing.T, cfg config.Config, board *model.Board, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := newSession(cfg, board, strings.NewReader(input), &out).run()
	testutil.AssertNoError(t, err)
	return out.String()
}

func TestSessionTestMode(t *testing.T) {
	cfg := config.Default()
	cfg.TestMode = true

	out := playSession(t, cfg, model.NewBoard(), "")

	testutil.AssertEqual(t, strings.Count(out, header), 3, "diagrams printed")
	testutil.AssertEqual(t, strings.Count(out, "Your move: "), 1)
	testutil.AssertTrue(t, strings.HasPrefix(out, notation.RenderString(model.NewBoard())), "starts with the initial board")
	testutil.AssertTrue(t, strings.Contains(out, "Your move: a2 a4\n"), "echoes the fixed move")
	testutil.AssertTrue(t, strings.Contains(out, "4 :  P  . "), "pawn arrived on a4")
}

func TestSessionRejectsInput(t *testing.T) {
	cfg := config.Default()
	out := playSession(t, cfg, model.NewBoard(), "hello\nh7 h6\ne4 e5\na2 a3\n")

	testutil.AssertTrue(t, strings.Contains(out, "? Expected a pair of coordinates\n"), "bad command reported")
	testutil.AssertTrue(t, strings.Contains(out, "Not your piece at h7\n"), "enemy piece reported")
	testutil.AssertTrue(t, strings.Contains(out, "Not your piece at e4\n"), "empty square reported")
	testutil.AssertEqual(t, strings.Count(out, "Your move: "), 5)
	testutil.AssertEqual(t, strings.Count(out, header), 4)
}

func TestSessionStrictMoves(t *testing.T) {
	cfg := config.Default()
	cfg.StrictMoves = true

	out := playSession(t, cfg, model.NewBoard(), "a2 a5\n")
	testutil.AssertTrue(t, strings.Contains(out, "Illegal move a2a5\n"), "illegal move reported")
}

func TestSessionShowLine(t *testing.T) {
	cfg := config.Default()
	cfg.TestMode = true
	cfg.ShowLine = true

	out := playSession(t, cfg, model.NewBoard(), "")
	testutil.AssertTrue(t, strings.Contains(out, "My move: "), "computer move described")
}

func TestSessionComputerHasNoMove(t *testing.T) {
	board := testutil.BoardFromRows(t, model.White,
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"P.......",
		"........",
	)
	out := playSession(t, config.Default(), board, "a2 a3\n")

	testutil.AssertTrue(t, strings.Contains(out, "I have no move.\n"), "game ends")
	testutil.AssertEqual(t, strings.Count(out, "Your move: "), 1)
}

func TestStartingBoard(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		b, err := startingBoard(config.Default())
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, notation.RenderString(b), notation.RenderString(model.NewBoard()))
	})

	t.Run("pattern file", func(t *testing.T) {
		want := testutil.BoardFromRows(t, model.White,
			"....k...",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"....K...",
		)
		path := filepath.Join(t.TempDir(), "endgame.txt")
		testutil.AssertNoError(t, os.WriteFile(path, []byte(notation.RenderString(want)), 0o644))

		cfg := config.Default()
		cfg.PatternFile = path
		b, err := startingBoard(cfg)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, notation.RenderString(b), notation.RenderString(want))
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.Default()
		cfg.PatternFile = filepath.Join(t.TempDir(), "missing.txt")
		_, err := startingBoard(cfg)
		testutil.AssertTrue(t, err != nil, "missing file fails")
	})

	t.Run("fen", func(t *testing.T) {
		cfg := config.Default()
		cfg.FEN = "4k3/8/8/8/8/8/8/4K3 b - - 0 1"
		b, err := startingBoard(cfg)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, b.Side, model.Black)
		testutil.AssertEqual(t, b.Count(model.White)+b.Count(model.Black), 2)
	})
}
