package testutil

import (
	"testing"
	"unicode"

	"github.com/benbeisheim/minichess-backend/internal/model"
)

// BoardFromRows builds a board from eight rows of eight characters, rank 8
// first. Upper case letters are White, lower case Black, '.' is empty.
func BoardFromRows(t *testing.T, side model.Side, rows ...string) *model.Board {
	t.Helper()
	if len(rows) != model.BoardSize {
		t.Fatalf("BoardFromRows: got %d rows; want %d", len(rows), model.BoardSize)
	}
	b := model.NewEmptyBoard()
	b.Side = side
	for i, row := range rows {
		if len(row) != model.BoardSize {
			t.Fatalf("BoardFromRows: row %d has %d squares; want %d", i, len(row), model.BoardSize)
		}
		y := model.BoardSize - 1 - i
		for x := 0; x < model.BoardSize; x++ {
			c := row[x]
			if c == '.' {
				continue
			}
			pt, ok := model.ParsePieceType(byte(unicode.ToUpper(rune(c))))
			if !ok {
				t.Fatalf("BoardFromRows: bad piece %q at row %d", c, i)
			}
			pieceSide := model.Black
			if unicode.IsUpper(rune(c)) {
				pieceSide = model.White
			}
			b.Squares[y][x] = model.NewPiece(pt, pieceSide)
		}
	}
	return b
}

// Sq parses an algebraic square such as "e4", failing the test on bad input.
func Sq(t *testing.T, s string) model.Position {
	t.Helper()
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		t.Fatalf("Sq: bad square %q", s)
	}
	return model.Position{X: int(s[0] - 'a'), Y: int(s[1] - '1')}
}
