// flags.go - Command-line flag definitions
package main

import (
	"flag"

	"github.com/benbeisheim/minichess-backend/internal/config"
)

var (
	testMode = flag.Bool("t", false, "Play a2 a4, print the computer's reply and exit")
	strict   = flag.Bool("strict", false, "Only accept moves the engine would consider")
	showLine = flag.Bool("line", false, "Print the computer's expected line after each move")
	fen      = flag.String("fen", "", "Start from this FEN instead of the standard position")
)

// applyFlags copies parsed flags and the optional pattern file argument into cfg.
func applyFlags(cfg *config.Config) {
	cfg.TestMode = *testMode
	cfg.StrictMoves = *strict
	cfg.ShowLine = *showLine
	cfg.FEN = *fen
	if flag.NArg() > 0 {
		cfg.PatternFile = flag.Arg(0)
	}
}
