package model

import "fmt"

const BoardSize = 8

type PieceType string

const (
	King   PieceType = "K"
	Queen  PieceType = "Q"
	Rook   PieceType = "R"
	Bishop PieceType = "B"
	Knight PieceType = "N"
	Pawn   PieceType = "P"
)

// ParsePieceType maps a piece letter to its type.
func ParsePieceType(letter byte) (PieceType, bool) {
	switch t := PieceType(letter); t {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return t, true
	}
	return "", false
}

// Side identifies the owner of a piece and the player to move.
type Side int

const (
	Black Side = iota
	White
)

func (s Side) Opponent() Side {
	return 1 - s
}

// Advance is the rank direction pawns of this side walk in.
func (s Side) Advance() int {
	if s == White {
		return 1
	}
	return -1
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// The human always plays White and the computer Black.
const (
	HumanSide    = White
	ComputerSide = Black
)

type Piece struct {
	Type     PieceType `json:"type"`
	Side     Side      `json:"side"`
	HasMoved bool      `json:"hasMoved"`
}

func NewPiece(t PieceType, side Side) *Piece {
	return &Piece{Type: t, Side: side}
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) OnBoard() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Offset returns the square dx files and dy ranks away; it may be off the board.
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	if !p.OnBoard() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return fmt.Sprintf("%c%d", 'a'+p.X, p.Y+1)
}

// Board owns every piece in play. Squares is indexed [y][x].
type Board struct {
	Squares [BoardSize][BoardSize]*Piece
	Side    Side
	Ply     int
}

var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func NewEmptyBoard() *Board {
	return &Board{Side: HumanSide}
}

// NewBoard returns the standard starting arrangement with White to move.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for x := 0; x < BoardSize; x++ {
		b.Squares[0][x] = NewPiece(backRank[x], White)
		b.Squares[1][x] = NewPiece(Pawn, White)
		b.Squares[6][x] = NewPiece(Pawn, Black)
		b.Squares[7][x] = NewPiece(backRank[x], Black)
	}
	return b
}

// At returns the piece on p, or nil for empty and off-board squares.
func (b *Board) At(p Position) *Piece {
	if !p.OnBoard() {
		return nil
	}
	return b.Squares[p.Y][p.X]
}

func (b *Board) Set(p Position, piece *Piece) {
	b.Squares[p.Y][p.X] = piece
}

// Move relocates whatever stands on from to to. The destination is overwritten,
// so a capture simply drops the occupant. No legality checks are made.
func (b *Board) Move(from, to Position) {
	piece := b.Squares[from.Y][from.X]
	if piece == nil {
		return
	}
	piece.HasMoved = true
	b.Squares[to.Y][to.X] = piece
	b.Squares[from.Y][from.X] = nil
}

func (b *Board) Count(side Side) int {
	n := 0
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.Squares[y][x]; p != nil && p.Side == side {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent board with copies of every piece.
func (b *Board) Clone() *Board {
	c := *b
	c.Squares = b.Snapshot()
	return &c
}

// Snapshot copies every square by value for renderers and JSON encoding.
func (b *Board) Snapshot() [BoardSize][BoardSize]*Piece {
	var out [BoardSize][BoardSize]*Piece
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.Squares[y][x]; p != nil {
				c := *p
				out[y][x] = &c
			}
		}
	}
	return out
}
