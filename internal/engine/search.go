package engine

import "github.com/benbeisheim/minichess-backend/internal/model"

// MaxPly is the deepest frame whose candidates still get a searched reply
// below them. Frames at MaxPly are scored without a reply.
const MaxPly = 4

type Stats struct {
	Nodes  int `json:"nodes"`  // candidates scored
	Frames int `json:"frames"` // search frames opened
	MaxPly int `json:"maxPly"` // deepest frame reached
}

// Searcher finds the best move by exhaustive fixed-depth search. The board is
// mutated in place while searching and is restored before BestMove returns.
// A Searcher must not be used by more than one goroutine at a time.
type Searcher struct {
	board *model.Board
	Stats Stats
}

func NewSearcher() *Searcher {
	return &Searcher{}
}

// BestMove searches with a fresh Searcher.
func BestMove(b *model.Board) *model.Move {
	return NewSearcher().BestMove(b)
}

// BestMove returns the best move for b.Side together with the anticipated
// replies. The result is the null move when b.Side has nothing to play.
func (s *Searcher) BestMove(b *model.Board) *model.Move {
	s.Stats = Stats{}
	s.board = b
	defer func() { s.board = nil }()
	return s.search(b.Side, b.Ply)
}

// frame is the working state of one search level.
type frame struct {
	side  model.Side // side moving in this frame
	ply   int
	from  model.Position
	piece *model.Piece // lifted from from while its candidates are scored
	best  *model.Move
}

func (s *Searcher) search(side model.Side, ply int) *model.Move {
	f := &frame{side: side, ply: ply + 1, best: model.NullMove()}
	s.Stats.Frames++
	if f.ply > s.Stats.MaxPly {
		s.Stats.MaxPly = f.ply
	}

	visit := func(to model.Position, canCapture, canMove bool) bool {
		return s.checkMove(f, to, canCapture, canMove)
	}

	squares := &s.board.Squares
	for y := 0; y < model.BoardSize; y++ {
		for x := 0; x < model.BoardSize; x++ {
			piece := squares[y][x]
			if piece == nil || piece.Side != side {
				continue
			}
			squares[y][x] = nil
			f.from, f.piece = model.Position{X: x, Y: y}, piece
			Generate(piece, f.from, visit)
			squares[y][x] = piece
		}
	}
	return f.best
}

// checkMove scores one candidate of the frame's lifted piece and keeps it if
// it beats the frame's best. It reports whether a ray may continue past to.
func (s *Searcher) checkMove(f *frame, to model.Position, canCapture, canMove bool) bool {
	ok, captured := accept(s.board, f.side, to, canCapture, canMove)
	if !ok {
		return false
	}
	s.Stats.Nodes++

	m := &model.Move{From: f.from, To: to, Piece: f.piece}
	if captured != nil {
		m.Val = Valuation(captured.Type)
	}

	if f.ply < MaxPly {
		hasMoved := f.piece.HasMoved
		f.piece.HasMoved = true
		s.board.Set(to, f.piece)

		reply := s.search(f.side.Opponent(), f.ply)
		m.Val -= reply.Val
		if !reply.IsNull() {
			m.Next = reply
		}

		s.board.Set(to, captured)
		f.piece.HasMoved = hasMoved
	}

	m.Val += PositionBonus(to)

	if m.Val > f.best.Val {
		f.best = m
	}
	return captured == nil
}
