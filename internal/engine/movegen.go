// Package engine holds the move generator, the evaluator and the fixed-depth
// search that picks the computer's move.
package engine

import "github.com/benbeisheim/minichess-backend/internal/model"

type offset struct {
	dx, dy int
}

// ray is a sliding direction with the most squares it may cover.
type ray struct {
	dx, dy  int
	maxStep int
}

var knightOffsets = [...]offset{
	{-1, -2}, {-2, -1}, {1, -2}, {2, -1},
	{1, 2}, {2, 1}, {-1, 2}, {-2, 1},
}

var (
	bishopRays = []ray{{-1, -1, 8}, {-1, 1, 8}, {1, -1, 8}, {1, 1, 8}}
	rookRays   = []ray{{-1, 0, 8}, {0, -1, 8}, {1, 0, 8}, {0, 1, 8}}
	queenRays  = append(append([]ray{}, bishopRays...), rookRays...)
	kingRays   = []ray{
		{-1, -1, 1}, {-1, 1, 1}, {1, -1, 1}, {1, 1, 1},
		{-1, 0, 1}, {0, -1, 1}, {1, 0, 1}, {0, 1, 1},
	}
)

var slides = map[model.PieceType][]ray{
	model.Bishop: bishopRays,
	model.Rook:   rookRays,
	model.Queen:  queenRays,
	model.King:   kingRays,
}

// Visit receives every candidate destination together with whether it may be
// a capture and whether it may be a quiet move. It reports whether a sliding
// ray may continue past to.
type Visit func(to model.Position, canCapture, canMove bool) bool

// Generate proposes the candidate destinations of piece standing on from, in
// a fixed order. It knows only the geometry; visit decides what is accepted.
func Generate(piece *model.Piece, from model.Position, visit Visit) {
	switch piece.Type {
	case model.Pawn:
		adv := piece.Side.Advance()
		stepOk := visit(from.Offset(0, adv), false, true)
		if !piece.HasMoved && stepOk {
			visit(from.Offset(0, 2*adv), false, true)
		}
		visit(from.Offset(1, adv), true, false)
		visit(from.Offset(-1, adv), true, false)

	case model.Knight:
		for _, o := range knightOffsets {
			visit(from.Offset(o.dx, o.dy), true, true)
		}

	default:
		for _, r := range slides[piece.Type] {
			to := from
			for step := r.maxStep; step > 0; step-- {
				to = to.Offset(r.dx, r.dy)
				if !visit(to, true, true) {
					break
				}
			}
		}
	}
}

// accept classifies a candidate of mover. captured is the enemy piece standing
// on to, if any.
func accept(b *model.Board, mover model.Side, to model.Position, canCapture, canMove bool) (ok bool, captured *model.Piece) {
	if !to.OnBoard() {
		return false, nil
	}
	if occupant := b.At(to); occupant != nil {
		if !canCapture || occupant.Side == mover {
			return false, nil
		}
		return true, occupant
	}
	return canMove, nil
}

// Candidates lists the accepted destinations of the piece on from.
func Candidates(b *model.Board, from model.Position) []model.Position {
	piece := b.At(from)
	if piece == nil {
		return nil
	}

	b.Set(from, nil)
	defer b.Set(from, piece)

	var out []model.Position
	Generate(piece, from, func(to model.Position, canCapture, canMove bool) bool {
		ok, captured := accept(b, piece.Side, to, canCapture, canMove)
		if ok {
			out = append(out, to)
		}
		return ok && captured == nil
	})
	return out
}

// IsCandidate reports whether to is among the candidates of the piece on from.
func IsCandidate(b *model.Board, from, to model.Position) bool {
	for _, c := range Candidates(b, from) {
		if c == to {
			return true
		}
	}
	return false
}
