// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"time"

	"github.com/benbeisheim/minichess-backend/internal/config"
)

var (
	addr            = flag.String("addr", ":3000", "Listen address")
	allowOrigins    = flag.String("origins", "http://localhost:5173", "Comma separated origins allowed by CORS and websockets")
	readBufferSize  = flag.Int("ws-read-buffer", 1024, "Websocket read buffer size")
	writeBufferSize = flag.Int("ws-write-buffer", 1024, "Websocket write buffer size")
	searchInterval  = flag.Duration("search-interval", 100*time.Millisecond, "How often queued computer moves are picked up")
	strict          = flag.Bool("strict", false, "Only accept moves the engine would consider, unless a game asks otherwise")
)

func applyFlags(cfg *config.Config) {
	cfg.Addr = *addr
	cfg.AllowOrigins = *allowOrigins
	cfg.ReadBufferSize = *readBufferSize
	cfg.WriteBufferSize = *writeBufferSize
	cfg.SearchInterval = *searchInterval
	cfg.StrictMoves = *strict
}
