package service

import (
	"fmt"
	"strings"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/benbeisheim/minichess-backend/internal/model"
	"github.com/benbeisheim/minichess-backend/internal/notation"
	"github.com/benbeisheim/minichess-backend/internal/ws"
)

// CreateOptions selects the starting position of a new game. At most one of
// Pattern and FEN may be set; neither means the standard arrangement.
type CreateOptions struct {
	Pattern string
	FEN     string
	Strict  bool
}

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(playerID string, opts CreateOptions) (string, error) {
	board, err := startingBoard(opts)
	if err != nil {
		return "", err
	}

	gameID := uuid.New().String()
	if _, err := gs.gameManager.CreateGame(gameID, playerID, board, opts.Strict); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func startingBoard(opts CreateOptions) (*model.Board, error) {
	switch {
	case opts.Pattern != "" && opts.FEN != "":
		return nil, fmt.Errorf("%w: give either a pattern or a FEN", notation.ErrBadPattern)
	case opts.Pattern != "":
		return notation.ReadPattern(strings.NewReader(opts.Pattern))
	case opts.FEN != "":
		return notation.ParseFEN(opts.FEN)
	}
	return model.NewBoard(), nil
}

// Exists reports whether gameID names a running game.
func (gs *GameService) Exists(gameID string) bool {
	_, err := gs.gameManager.GetGame(gameID)
	return err == nil
}

func (gs *GameService) ListGames() []string {
	return gs.gameManager.ListGames()
}

func (gs *GameService) GetGameState(gameID string) (GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

// HandleMove plays a human move given as squares or as a typed command.
func (gs *GameService) HandleMove(gameID string, playerID string, payload ws.MovePayload) error {
	move, err := ParseMove(payload)
	if err != nil {
		return err
	}
	return gs.gameManager.MakeMove(gameID, playerID, move)
}

func (gs *GameService) Resign(gameID, playerID string) error {
	return gs.gameManager.Resign(gameID, playerID)
}

// ParseMove turns a move payload into squares.
func ParseMove(payload ws.MovePayload) (model.SimpleMove, error) {
	if payload.Command != "" {
		return notation.ParseCommand(payload.Command)
	}
	from, err := notation.ParseSquare(payload.From)
	if err != nil {
		return model.SimpleMove{}, err
	}
	to, err := notation.ParseSquare(payload.To)
	if err != nil {
		return model.SimpleMove{}, err
	}
	return model.SimpleMove{From: from, To: to}, nil
}

// Targets lists where the piece on square may go, in generation order.
func (gs *GameService) Targets(gameID, square string) ([]string, error) {
	from, err := notation.ParseSquare(square)
	if err != nil {
		return nil, err
	}
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}

	targets := game.Targets(from)
	out := make([]string, len(targets))
	for i, t := range targets {
		out[i] = t.String()
	}
	return out, nil
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn *websocket.Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

func (gs *GameService) SendError(gameID, playerID, errorMsg string) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	game.SendError(playerID, errorMsg)
}
