package engine

import (
	"math"

	"github.com/benbeisheim/minichess-backend/internal/model"
)

var valuation = map[model.PieceType]float64{
	model.Pawn:   1,
	model.Knight: 3,
	model.Bishop: 3,
	model.Rook:   5,
	model.Queen:  10,
	model.King:   1000,
}

// Valuation is the material value gained by capturing a piece of type t.
func Valuation(t model.PieceType) float64 {
	return valuation[t]
}

// PositionBonus favours squares near the centre, falling off linearly with
// Manhattan distance.
func PositionBonus(to model.Position) float64 {
	return 0.8 - (math.Abs(3.5-float64(to.X))+math.Abs(3.5-float64(to.Y)))*0.1
}
