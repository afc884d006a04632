package engine_test

import (
	"testing"

	"github.com/benbeisheim/minichess-backend/internal/engine"
	"github.com/benbeisheim/minichess-backend/internal/model"
	"github.com/benbeisheim/minichess-backend/internal/testutil"
)

func squares(t *testing.T, names ...string) []model.Position {
	t.Helper()
	var out []model.Position
	for _, n := range names {
		out = append(out, testutil.Sq(t, n))
	}
	return out
}

func TestCandidatesSlidingBlockAndCapture(t *testing.T) {
	b := testutil.BoardFromRows(t, model.Black,
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"r..P....",
	)

	got := engine.Candidates(b, testutil.Sq(t, "a1"))

	testutil.AssertEqual(t, got, squares(t, "b1", "c1", "d1", "a2", "a3", "a4", "a5", "a6", "a7", "a8"))
	for _, sq := range got {
		if sq.Y == 0 && sq.X > 3 {
			t.Errorf("candidate %s lies beyond the captured piece", sq)
		}
	}
}

func TestCandidatesOwnPieceStopsRay(t *testing.T) {
	b := testutil.BoardFromRows(t, model.White,
		"........",
		"........",
		"........",
		"...P....",
		"........",
		"...Q....",
		"........",
		"........",
	)

	got := engine.Candidates(b, testutil.Sq(t, "d3"))
	for _, sq := range got {
		if sq.X == 3 && sq.Y >= 4 {
			t.Errorf("candidate %s is on or past the own pawn", sq)
		}
	}
	testutil.AssertTrue(t, engine.IsCandidate(b, testutil.Sq(t, "d3"), testutil.Sq(t, "d4")), "d4 before own pawn")
}

func TestCandidatesPawn(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		from  string
		moved bool
		want  []string
	}{
		{
			name: "unmoved white pawn offers both steps",
			rows: []string{"........", "........", "........", "........", "........", "........", "....P...", "........"},
			from: "e2",
			want: []string{"e3", "e4"},
		},
		{
			name:  "moved pawn offers one step",
			rows:  []string{"........", "........", "........", "........", "........", "........", "....P...", "........"},
			from:  "e2",
			moved: true,
			want:  []string{"e3"},
		},
		{
			name: "blocked single step gates the double step",
			rows: []string{"........", "........", "........", "........", "........", "....n...", "....P...", "........"},
			from: "e2",
			want: nil,
		},
		{
			name: "own blocker gates the double step",
			rows: []string{"........", "........", "........", "........", "........", "....N...", "....P...", "........"},
			from: "e2",
			want: nil,
		},
		{
			name: "diagonals capture only enemies",
			rows: []string{"........", "........", "........", "........", "........", "...n.b..", "....P...", "........"},
			from: "e2",
			want: []string{"e3", "e4", "f3", "d3"},
		},
		{
			name: "diagonal own piece is not a capture",
			rows: []string{"........", "........", "........", "........", "........", "...N....", "....P...", "........"},
			from: "e2",
			want: []string{"e3", "e4"},
		},
		{
			name: "black pawn walks down",
			rows: []string{"........", "...p....", "........", "........", "........", "........", "........", "........"},
			from: "d7",
			want: []string{"d6", "d5"},
		},
		{
			name: "pawn on the last rank has nothing",
			rows: []string{"P.......", "........", "........", "........", "........", "........", "........", "........"},
			from: "a8",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.BoardFromRows(t, model.White, tt.rows...)
			from := testutil.Sq(t, tt.from)
			b.At(from).HasMoved = tt.moved

			got := engine.Candidates(b, from)
			testutil.AssertEqual(t, got, squares(t, tt.want...))
		})
	}
}

func TestCandidatesKnightAndKing(t *testing.T) {
	t.Run("knight on the start square", func(t *testing.T) {
		b := model.NewBoard()
		testutil.AssertEqual(t, engine.Candidates(b, testutil.Sq(t, "b1")), squares(t, "c3", "a3"))
	})

	t.Run("king in open board", func(t *testing.T) {
		b := testutil.BoardFromRows(t, model.White,
			"........",
			"........",
			"........",
			"........",
			"...K....",
			"........",
			"........",
			"........",
		)
		testutil.AssertEqual(t, engine.Candidates(b, testutil.Sq(t, "d4")),
			squares(t, "c3", "c5", "e3", "e5", "c4", "d3", "e4", "d5"))
	})
}

func TestCandidatesInitialPosition(t *testing.T) {
	b := model.NewBoard()
	count := map[model.Side]int{}
	for y := 0; y < model.BoardSize; y++ {
		for x := 0; x < model.BoardSize; x++ {
			from := model.Position{X: x, Y: y}
			if p := b.At(from); p != nil {
				count[p.Side] += len(engine.Candidates(b, from))
			}
		}
	}
	testutil.AssertEqual(t, count[model.White], 20)
	testutil.AssertEqual(t, count[model.Black], 20)
}

func TestCandidatesLeavesBoardUntouched(t *testing.T) {
	b := model.NewBoard()
	before := b.Snapshot()
	from := testutil.Sq(t, "g1")
	knight := b.At(from)

	engine.Candidates(b, from)

	if b.At(from) != knight {
		t.Fatal("piece was not put back on its square")
	}
	testutil.AssertEqual(t, b.Snapshot(), before)
	testutil.AssertEqual(t, len(engine.Candidates(b, testutil.Sq(t, "e4"))), 0, "empty square")
}
