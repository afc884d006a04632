package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/minichess-backend/internal/engine"
	"github.com/benbeisheim/minichess-backend/internal/model"
	"github.com/benbeisheim/minichess-backend/internal/notation"
	"github.com/benbeisheim/minichess-backend/internal/ws"
)

type Status string

const (
	StatusOngoing  Status = "ongoing"
	StatusNoMoves  Status = "no_moves" // the side to move has nothing left to play
	StatusResigned Status = "resigned"
)

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.Mutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is one human-versus-computer session.
type Game struct {
	ID            string
	mu            sync.Mutex
	board         *model.Board
	owner         model.Player
	strict        bool
	status        Status
	thinking      bool
	searching     bool
	history       []model.Ply
	captured      CapturedPieces
	lastMove      *model.SimpleMove
	computer      *ComputerReply
	humanClock    *model.Clock
	computerClock *model.Clock
	connections   *GameConnections
	search        func(*model.Board) (*model.Move, engine.Stats)
}

type CapturedPieces struct {
	White []model.Piece `json:"white"`
	Black []model.Piece `json:"black"`
}

// ComputerReply describes the computer's latest move and what it expects next.
type ComputerReply struct {
	Move   model.SimpleMove `json:"move"`
	Value  float64          `json:"value"`
	Line   []string         `json:"line"`
	Nodes  int              `json:"nodes"`
	TimeMs int64            `json:"timeMs"`
}

type GameState struct {
	ID             string                                         `json:"id"`
	Board          [model.BoardSize][model.BoardSize]*model.Piece `json:"board"`
	Diagram        string                                         `json:"diagram"`
	ToMove         string                                         `json:"toMove"`
	Status         Status                                         `json:"status"`
	Thinking       bool                                           `json:"thinking"`
	Strict         bool                                           `json:"strict"`
	Player         model.ClientPlayer                             `json:"player"`
	MoveHistory    []model.Ply                                    `json:"moveHistory"`
	CapturedPieces CapturedPieces                                 `json:"capturedPieces"`
	LastMove       *model.SimpleMove                              `json:"lastMove"`
	Computer       *ComputerReply                                 `json:"computer"`
	Clocks         struct {
		Human    model.ClientClock `json:"human"`
		Computer model.ClientClock `json:"computer"`
	} `json:"clocks"`
}

// NewGame starts a session on board owned by ownerID, who plays the human side.
func NewGame(id, ownerID string, board *model.Board, strict bool) *Game {
	g := &Game{
		ID:            id,
		board:         board,
		owner:         model.Player{ID: ownerID, Side: model.HumanSide},
		strict:        strict,
		status:        StatusOngoing,
		history:       make([]model.Ply, 0),
		captured:      CapturedPieces{White: make([]model.Piece, 0), Black: make([]model.Piece, 0)},
		humanClock:    model.NewClock(),
		computerClock: model.NewClock(),
		connections:   NewGameConnections(),
		search:        runSearch,
	}
	if board.Side == model.HumanSide {
		g.humanClock.Start()
	}
	return g
}

// ComputerToMove reports whether the game waits for the computer.
func (g *Game) ComputerToMove() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status == StatusOngoing && g.board.Side == model.ComputerSide
}

// PlayHuman applies the owner's move. Squares must be on the board and the
// origin must hold one of the human's pieces; in strict mode the destination
// must also be one of the engine's candidates.
func (g *Game) PlayHuman(playerID string, move model.SimpleMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if playerID != g.owner.ID {
		return ErrNotYourGame
	}
	if g.status != StatusOngoing {
		return ErrGameOver
	}
	if g.board.Side != g.owner.Side {
		return ErrNotYourTurn
	}
	if !move.From.OnBoard() || !move.To.OnBoard() {
		return model.ErrOffBoard
	}
	piece := g.board.At(move.From)
	if piece == nil {
		return fmt.Errorf("%w at %s", model.ErrEmptySquare, move.From)
	}
	if piece.Side != g.owner.Side {
		return fmt.Errorf("%w at %s", model.ErrNotYourPiece, move.From)
	}
	if g.strict && !engine.IsCandidate(g.board, move.From, move.To) {
		return fmt.Errorf("%w: %s", model.ErrIllegalMove, move)
	}

	g.humanClock.Stop()
	g.apply(move)
	g.board.Side = model.ComputerSide
	g.thinking = true
	return nil
}

// PlayComputer searches the position and plays the computer's move. The
// search runs on a copy of the board so state reads are not blocked.
func (g *Game) PlayComputer() (*model.Move, error) {
	g.mu.Lock()
	if g.status != StatusOngoing {
		g.mu.Unlock()
		return nil, ErrGameOver
	}
	if g.board.Side != model.ComputerSide || g.searching {
		g.mu.Unlock()
		return nil, ErrNotYourTurn
	}
	work := g.board.Clone()
	g.thinking, g.searching = true, true
	g.mu.Unlock()

	g.computerClock.Start()
	started := time.Now()
	best, stats := g.search(work)
	elapsed := time.Since(started)
	g.computerClock.Stop()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.thinking, g.searching = false, false

	// The game may have ended while the lock was released.
	if g.status != StatusOngoing {
		return nil, ErrGameOver
	}
	if best.IsNull() {
		g.status = StatusNoMoves
		return best, nil
	}

	line := make([]string, 0, engine.MaxPly)
	for _, m := range best.Line() {
		line = append(line, notation.FormatMove(m))
	}
	g.computer = &ComputerReply{
		Move:   best.Simple(),
		Value:  best.Val,
		Line:   line,
		Nodes:  stats.Nodes,
		TimeMs: elapsed.Milliseconds(),
	}

	g.apply(best.Simple())
	g.board.Side = model.HumanSide
	if g.board.Count(model.HumanSide) == 0 {
		g.status = StatusNoMoves
	} else {
		g.humanClock.Start()
	}
	return best, nil
}

// Resign ends the game on behalf of its owner.
func (g *Game) Resign(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if playerID != g.owner.ID {
		return ErrNotYourGame
	}
	if g.status != StatusOngoing {
		return ErrGameOver
	}
	g.status = StatusResigned
	g.thinking = false
	g.humanClock.Stop()
	return nil
}

func runSearch(b *model.Board) (*model.Move, engine.Stats) {
	searcher := engine.NewSearcher()
	best := searcher.BestMove(b)
	return best, searcher.Stats
}

// apply moves the piece and records the ply. Caller holds g.mu.
func (g *Game) apply(move model.SimpleMove) {
	piece := g.board.At(move.From)
	captured := g.board.At(move.To)

	ply := model.Ply{
		Side:     piece.Side,
		Move:     move,
		Piece:    *piece,
		Notation: plyNotation(piece, move, captured != nil),
	}
	if captured != nil {
		c := *captured
		ply.CapturedPiece = &c
		if piece.Side == model.White {
			g.captured.White = append(g.captured.White, c)
		} else {
			g.captured.Black = append(g.captured.Black, c)
		}
	}

	g.board.Move(move.From, move.To)
	g.history = append(g.history, ply)
	g.lastMove = &move
}

// plyNotation writes long algebraic notation, e.g. "Ng1-f3" or "e4xd5".
func plyNotation(piece *model.Piece, move model.SimpleMove, capture bool) string {
	var sb strings.Builder
	if piece.Type != model.Pawn {
		sb.WriteString(string(piece.Type))
	}
	sb.WriteString(move.From.String())
	if capture {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(move.To.String())
	return sb.String()
}

// Targets lists the candidate destinations of the piece on from.
func (g *Game) Targets(from model.Position) []model.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !from.OnBoard() {
		return nil
	}
	return engine.Candidates(g.board, from)
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := GameState{
		ID:             g.ID,
		Board:          g.board.Snapshot(),
		Diagram:        notation.RenderString(g.board),
		ToMove:         g.board.Side.String(),
		Status:         g.status,
		Thinking:       g.thinking,
		Strict:         g.strict,
		Player:         g.owner.Client(),
		MoveHistory:    append([]model.Ply(nil), g.history...),
		CapturedPieces: g.captured,
		LastMove:       g.lastMove,
		Computer:       g.computer,
	}
	state.Clocks.Human = g.humanClock.Client()
	state.Clocks.Computer = g.computerClock.Client()
	return state
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the healthy connection and turn the new one away.
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
		)
		return ErrConnectionExists
	}
	g.connections.connections[playerID] = conn
	log.Printf("game %s: registered connection for player %s", g.ID, playerID)
	return nil
}

func (g *Game) UnregisterConnection(playerID string, conn *websocket.Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	// Only drop the registration if it still belongs to this connection.
	if current, exists := g.connections.connections[playerID]; exists && current == conn {
		delete(g.connections.connections, playerID)
		log.Printf("game %s: unregistered connection for player %s", g.ID, playerID)
	}
}

// BroadcastState sends the current state to every connection of the game.
func (g *Game) BroadcastState() {
	payload, err := json.Marshal(g.GetState())
	if err != nil {
		log.Printf("game %s: failed to marshal state: %v", g.ID, err)
		return
	}
	msg := ws.Message{Type: ws.MessageTypeGameState, Payload: payload}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("game %s: failed to send state to player %s: %v", g.ID, playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}

// SendError reports a failure to one player's connection.
func (g *Game) SendError(playerID string, errorMsg string) {
	payload, _ := json.Marshal(ws.ErrorPayload{Error: errorMsg})

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	if conn, ok := g.connections.connections[playerID]; ok {
		if err := conn.WriteJSON(ws.Message{Type: ws.MessageTypeError, Payload: payload}); err != nil {
			log.Printf("game %s: failed to send error to player %s: %v", g.ID, playerID, err)
		}
	}
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	return len(g.connections.connections)
}
