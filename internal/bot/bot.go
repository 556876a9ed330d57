package bot

import (
	"math/rand"
	"sort"

	"github.com/jpryor/checkers-backend/internal/model"
)

// Chance of ignoring the advance heuristic and wandering instead, so the
// bot occasionally gives material away and stays beatable.
const wanderChance = 0.2

// Greedy prefers captures, longest chain first, and otherwise nudges a piece
// toward the crowning row. It consumes only the engine's public queries, so
// any other model.Strategy can replace it.
type Greedy struct {
	rng *rand.Rand
}

func New(seed int64) *Greedy {
	return &Greedy{rng: rand.New(rand.NewSource(seed))}
}

type candidate struct {
	from model.Position
	move model.Move
}

func (g *Greedy) ChooseMove(board *model.Board, side model.Side) (model.Position, model.Move, bool) {
	var simples, captures []candidate
	for _, piece := range board.PiecesOf(side) {
		for _, move := range board.LegalMoves(piece.Position) {
			c := candidate{from: piece.Position, move: move}
			if len(move.Captures) > 0 {
				captures = append(captures, c)
			} else {
				simples = append(simples, c)
			}
		}
	}

	if len(captures) > 0 {
		sort.SliceStable(captures, func(i, j int) bool {
			return len(captures[i].move.Captures) > len(captures[j].move.Captures)
		})
		longest := len(captures[0].move.Captures)
		var top []candidate
		for _, c := range captures {
			if len(c.move.Captures) == longest {
				top = append(top, c)
			}
		}
		pick := top[g.rng.Intn(len(top))]
		return pick.from, pick.move, true
	}

	if len(simples) == 0 {
		return model.Position{}, model.Move{}, false
	}

	if g.rng.Float64() < wanderChance {
		pick := simples[g.rng.Intn(len(simples))]
		return pick.from, pick.move, true
	}

	sort.SliceStable(simples, func(i, j int) bool {
		return advance(side, simples[i].move.To) > advance(side, simples[j].move.To)
	})
	topK := len(simples) / 3
	if topK < 1 {
		topK = 1
	}
	pick := simples[g.rng.Intn(topK)]
	return pick.from, pick.move, true
}

// advance scores a destination by how close it is to the crowning row.
func advance(side model.Side, to model.Position) int {
	if side == model.SideWhite {
		return to.Row
	}
	return 7 - to.Row
}
