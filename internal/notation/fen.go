package notation

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/benbeisheim/minichess-backend/internal/model"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a board from a FEN string. Only placement and the side to
// move are used; castling, en passant and clocks have no meaning here.
func ParseFEN(fen string) (b *model.Board, err error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 || strings.Count(fields[0], "/") != model.BoardSize-1 {
		return nil, fmt.Errorf("%w: %q", ErrBadFEN, fen)
	}
	if len(fields) < 6 {
		// dragontoothmg expects all six fields.
		fen = strings.Join(append(fields, []string{"-", "-", "0", "1"}[len(fields)-2:]...), " ")
	}

	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("%w: %v", ErrBadFEN, r)
		}
	}()
	db := dragontoothmg.ParseFen(fen)

	b = model.NewEmptyBoard()
	place(b, &db.White, model.White)
	place(b, &db.Black, model.Black)
	b.Side = model.Black
	if db.Wtomove {
		b.Side = model.White
	}
	return b, nil
}

// place puts one side's pieces on b. Bit 0 is a1, bit 63 is h8.
func place(b *model.Board, bb *dragontoothmg.Bitboards, side model.Side) {
	sets := []struct {
		bits uint64
		t    model.PieceType
	}{
		{bb.Pawns, model.Pawn},
		{bb.Knights, model.Knight},
		{bb.Bishops, model.Bishop},
		{bb.Rooks, model.Rook},
		{bb.Queens, model.Queen},
		{bb.Kings, model.King},
	}
	for _, set := range sets {
		for x := set.bits; x != 0; x &= x - 1 {
			sq := bits.TrailingZeros64(x)
			b.Squares[sq/model.BoardSize][sq%model.BoardSize] = model.NewPiece(set.t, side)
		}
	}
}
