// Package config holds the settings shared by the minichess binaries.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig indicates invalid configuration values.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all program configuration.
type Config struct {
	// Server
	Addr            string        // listen address
	AllowOrigins    string        // comma separated CORS origins
	ReadBufferSize  int           // websocket read buffer
	WriteBufferSize int           // websocket write buffer
	SearchInterval  time.Duration // how often queued computer moves are picked up

	// Game rules
	StrictMoves bool // human moves must be engine candidates

	// Terminal game
	TestMode    bool   // play "a2 a4", one reply, then exit
	ShowLine    bool   // print the anticipated line after each computer move
	FEN         string // starting position as FEN
	PatternFile string // starting position as a board diagram file
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Addr:            ":3000",
		AllowOrigins:    "http://localhost:5173",
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		SearchInterval:  100 * time.Millisecond,
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.ReadBufferSize <= 0 || c.WriteBufferSize <= 0:
		return fmt.Errorf("%w: websocket buffer sizes must be positive", ErrInvalidConfig)
	case c.SearchInterval <= 0:
		return fmt.Errorf("%w: search interval must be positive", ErrInvalidConfig)
	case c.FEN != "" && c.PatternFile != "":
		return fmt.Errorf("%w: give either a FEN or a pattern file, not both", ErrInvalidConfig)
	}
	return nil
}
