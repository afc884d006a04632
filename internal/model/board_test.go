package model_test

import (
	"testing"

	"github.com/benbeisheim/minichess-backend/internal/model"
	"github.com/benbeisheim/minichess-backend/internal/testutil"
)

func TestNewBoard(t *testing.T) {
	b := model.NewBoard()

	t.Run("piece counts", func(t *testing.T) {
		testutil.AssertEqual(t, b.Count(model.White), 16, "white pieces")
		testutil.AssertEqual(t, b.Count(model.Black), 16, "black pieces")
	})

	t.Run("back ranks", func(t *testing.T) {
		want := []model.PieceType{
			model.Rook, model.Knight, model.Bishop, model.Queen,
			model.King, model.Bishop, model.Knight, model.Rook,
		}
		for x, pt := range want {
			for _, tc := range []struct {
				y    int
				side model.Side
			}{{0, model.White}, {7, model.Black}} {
				p := b.Squares[tc.y][x]
				if p == nil || p.Type != pt || p.Side != tc.side {
					t.Errorf("square (%d,%d) = %+v; want %s %s", x, tc.y, p, tc.side, pt)
				}
			}
		}
	})

	t.Run("pawn ranks", func(t *testing.T) {
		for x := 0; x < model.BoardSize; x++ {
			if p := b.Squares[1][x]; p == nil || p.Type != model.Pawn || p.Side != model.White {
				t.Errorf("square (%d,1) = %+v; want white pawn", x, p)
			}
			if p := b.Squares[6][x]; p == nil || p.Type != model.Pawn || p.Side != model.Black {
				t.Errorf("square (%d,6) = %+v; want black pawn", x, p)
			}
		}
	})

	t.Run("middle empty and nothing moved", func(t *testing.T) {
		for y := 0; y < model.BoardSize; y++ {
			for x := 0; x < model.BoardSize; x++ {
				p := b.Squares[y][x]
				if y >= 2 && y <= 5 && p != nil {
					t.Errorf("square (%d,%d) = %+v; want empty", x, y, p)
				}
				if p != nil && p.HasMoved {
					t.Errorf("square (%d,%d) HasMoved = true", x, y)
				}
			}
		}
	})

	t.Run("white to move", func(t *testing.T) {
		testutil.AssertEqual(t, b.Side, model.White)
		testutil.AssertEqual(t, b.Ply, 0)
	})
}

func TestBoardMove(t *testing.T) {
	t.Run("quiet move changes only two squares", func(t *testing.T) {
		b := model.NewBoard()
		before := b.Snapshot()
		from, to := model.Position{X: 0, Y: 1}, model.Position{X: 0, Y: 3}
		pawn := b.At(from)

		b.Move(from, to)

		if b.At(to) != pawn {
			t.Fatalf("destination holds %+v; want the moved pawn", b.At(to))
		}
		if b.At(from) != nil {
			t.Errorf("origin holds %+v; want empty", b.At(from))
		}
		testutil.AssertTrue(t, pawn.HasMoved, "HasMoved after move")

		after := b.Snapshot()
		for y := 0; y < model.BoardSize; y++ {
			for x := 0; x < model.BoardSize; x++ {
				p := model.Position{X: x, Y: y}
				if p == from || p == to {
					continue
				}
				testutil.AssertEqual(t, after[y][x], before[y][x], "square %s", p)
			}
		}
	})

	t.Run("capture discards occupant", func(t *testing.T) {
		b := model.NewBoard()
		from, to := model.Position{X: 3, Y: 0}, model.Position{X: 3, Y: 6}
		queen := b.At(from)

		b.Move(from, to)

		testutil.AssertEqual(t, b.Count(model.Black), 15)
		if b.At(to) != queen {
			t.Errorf("destination holds %+v; want the queen", b.At(to))
		}
	})

	t.Run("empty origin is a no-op", func(t *testing.T) {
		b := model.NewBoard()
		before := b.Snapshot()
		b.Move(model.Position{X: 4, Y: 4}, model.Position{X: 4, Y: 6})
		testutil.AssertEqual(t, b.Snapshot(), before)
	})
}

func TestPosition(t *testing.T) {
	tests := []struct {
		pos     model.Position
		onBoard bool
		str     string
	}{
		{model.Position{X: 0, Y: 0}, true, "a1"},
		{model.Position{X: 7, Y: 7}, true, "h8"},
		{model.Position{X: 4, Y: 1}, true, "e2"},
		{model.Position{X: -1, Y: 0}, false, "(-1,0)"},
		{model.Position{X: 3, Y: 8}, false, "(3,8)"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			testutil.AssertEqual(t, tt.pos.OnBoard(), tt.onBoard)
			testutil.AssertEqual(t, tt.pos.String(), tt.str)
		})
	}
}

func TestSide(t *testing.T) {
	testutil.AssertEqual(t, model.White.Opponent(), model.Black)
	testutil.AssertEqual(t, model.Black.Opponent(), model.White)
	testutil.AssertEqual(t, model.White.Advance(), 1)
	testutil.AssertEqual(t, model.Black.Advance(), -1)
}

func TestMoveLine(t *testing.T) {
	third := &model.Move{Piece: &model.Piece{Type: model.Pawn}}
	second := &model.Move{Piece: &model.Piece{Type: model.Knight}, Next: third}
	first := &model.Move{Piece: &model.Piece{Type: model.Rook}, Next: second}

	testutil.AssertEqual(t, len(first.Line()), 3)
	testutil.AssertEqual(t, len(model.NullMove().Line()), 0)
	testutil.AssertTrue(t, model.NullMove().IsNull())
	testutil.AssertEqual(t, model.NullMove().Val, model.NoMoveValue)
}

func TestQueue(t *testing.T) {
	q := model.NewQueue()
	testutil.AssertNoError(t, q.Push("a"))
	testutil.AssertNoError(t, q.Push("b"))
	testutil.AssertErrorIs(t, q.Push("a"), model.ErrAlreadyQueued)
	testutil.AssertEqual(t, q.Size(), 2)

	next, ok := q.Pop()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, next.GameID, "a")
	next, _ = q.Pop()
	testutil.AssertEqual(t, next.GameID, "b")
	_, ok = q.Pop()
	testutil.AssertTrue(t, !ok, "pop from empty queue")
}

func TestBoardClone(t *testing.T) {
	b := model.NewBoard()
	c := b.Clone()

	testutil.AssertEqual(t, c.Snapshot(), b.Snapshot())
	c.Move(model.Position{X: 4, Y: 1}, model.Position{X: 4, Y: 3})

	if b.At(model.Position{X: 4, Y: 1}) == nil {
		t.Error("moving on the clone emptied the original square")
	}
	testutil.AssertTrue(t, !b.At(model.Position{X: 4, Y: 1}).HasMoved, "original piece untouched")
}
