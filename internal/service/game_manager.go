// service/game_manager.go
package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/benbeisheim/minichess-backend/internal/model"
	"github.com/benbeisheim/minichess-backend/internal/notation"
)

// GameManager owns every running game and plays the computer's replies.
// Replies are computed one at a time by the Run loop.
type GameManager struct {
	games    map[string]*Game
	pending  *model.Queue // games waiting for the computer
	mu       sync.RWMutex
	interval time.Duration
}

func NewGameManager(interval time.Duration) *GameManager {
	return &GameManager{
		games:    make(map[string]*Game),
		pending:  model.NewQueue(),
		interval: interval,
	}
}

// Run picks up queued games every interval until ctx is done.
func (gm *GameManager) Run(ctx context.Context) {
	ticker := time.NewTicker(gm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gm.ProcessPending()
		}
	}
}

// ProcessPending plays the computer's move in every queued game and returns
// how many moves were played.
func (gm *GameManager) ProcessPending() int {
	played := 0
	for {
		next, ok := gm.pending.Pop()
		if !ok {
			return played
		}

		game, err := gm.GetGame(next.GameID)
		if err != nil {
			log.Printf("game %s: dropped from queue: %v", next.GameID, err)
			continue
		}

		best, err := game.PlayComputer()
		if err != nil {
			log.Printf("game %s: computer move failed: %v", next.GameID, err)
			continue
		}
		if best.IsNull() {
			log.Printf("game %s: computer has no move", next.GameID)
		} else {
			log.Printf("game %s: computer played %s (value %.2f, line %s, waited %s)",
				next.GameID, notation.FormatMove(best), best.Val, notation.FormatLine(best),
				time.Since(next.JoinedAt).Round(time.Millisecond))
			played++
		}
		game.BroadcastState()
	}
}

// Pending returns the number of games waiting for the computer.
func (gm *GameManager) Pending() int {
	return gm.pending.Size()
}

func (gm *GameManager) CreateGame(gameID, ownerID string, board *model.Board, strict bool) (*Game, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, ErrGameExists
	}

	game := NewGame(gameID, ownerID, board, strict)
	gm.games[gameID] = game
	if game.ComputerToMove() {
		gm.enqueue(gameID)
	}
	log.Printf("game %s: created for player %s", gameID, ownerID)
	return game, nil
}

func (gm *GameManager) GetGame(gameID string) (*Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// ListGames returns the ids of all games in sorted order.
func (gm *GameManager) ListGames() []string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	ids := maps.Keys(gm.games)
	slices.Sort(ids)
	return ids
}

func (gm *GameManager) GetGameState(gameID string) (GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return GameState{}, err
	}
	return game.GetState(), nil
}

// MakeMove plays the human's move and queues the computer's reply.
func (gm *GameManager) MakeMove(gameID, playerID string, move model.SimpleMove) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	if err := game.PlayHuman(playerID, move); err != nil {
		return err
	}
	log.Printf("game %s: player %s played %s", gameID, playerID, move)

	gm.enqueue(gameID)
	game.BroadcastState()
	return nil
}

func (gm *GameManager) Resign(gameID, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	if err := game.Resign(playerID); err != nil {
		return err
	}
	log.Printf("game %s: player %s resigned", gameID, playerID)

	game.BroadcastState()
	return nil
}

func (gm *GameManager) enqueue(gameID string) {
	if err := gm.pending.Push(gameID); err != nil && !errors.Is(err, model.ErrAlreadyQueued) {
		log.Printf("game %s: failed to queue computer move: %v", gameID, err)
	}
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	if err := game.RegisterConnection(playerID, conn); err != nil {
		return err
	}

	// Send initial state
	game.BroadcastState()
	return nil
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string, conn *websocket.Conn) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID, conn)
}
