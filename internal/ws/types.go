package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages exchanged with a game.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeResign    MessageType = "resign"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload is a human move, either as two squares or as a typed command.
type MovePayload struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Command string `json:"command,omitempty"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}
