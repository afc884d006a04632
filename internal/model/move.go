package model

// NoMoveValue seeds every search frame's running best.
const NoMoveValue = -9999.0

// Move is a relocation found by the search. Piece points at the board's own
// piece and Next owns the opponent's best reply, if one was searched.
type Move struct {
	From  Position
	To    Position
	Piece *Piece
	Val   float64
	Next  *Move
}

// NullMove returns the "no move yet" sentinel.
func NullMove() *Move {
	return &Move{Val: NoMoveValue}
}

// IsNull reports whether m carries no relocation.
func (m *Move) IsNull() bool {
	return m == nil || m.Piece == nil
}

// Line returns m followed by its chain of replies.
func (m *Move) Line() []*Move {
	var line []*Move
	for cur := m; !cur.IsNull(); cur = cur.Next {
		line = append(line, cur)
	}
	return line
}

func (m *Move) Simple() SimpleMove {
	return SimpleMove{From: m.From, To: m.To}
}

type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func (m SimpleMove) String() string {
	return m.From.String() + m.To.String()
}

// Ply is one applied half-move as recorded in a game's history.
type Ply struct {
	Side          Side       `json:"side"`
	Move          SimpleMove `json:"move"`
	Piece         Piece      `json:"piece"`
	CapturedPiece *Piece     `json:"capturedPiece"`
	Notation      string     `json:"notation"`
}
