// minichess plays a game against the computer in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/benbeisheim/minichess-backend/internal/config"
	"github.com/benbeisheim/minichess-backend/internal/model"
	"github.com/benbeisheim/minichess-backend/internal/notation"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg := config.Default()
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	board, err := startingBoard(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := newSession(cfg, board, os.Stdin, os.Stdout).run(); err != nil {
		log.Fatal(err)
	}
}

func startingBoard(cfg config.Config) (*model.Board, error) {
	switch {
	case cfg.FEN != "":
		return notation.ParseFEN(cfg.FEN)
	case cfg.PatternFile != "":
		f, err := os.Open(cfg.PatternFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return notation.ReadPattern(f)
	}
	return model.NewBoard(), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: minichess [options] [pattern-file]\n\n")
	fmt.Fprintf(os.Stderr, "Play White against the computer. Moves are typed as two squares, e.g. \"e2 e4\".\n")
	fmt.Fprintf(os.Stderr, "A pattern file holds a board diagram as printed by the game.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
