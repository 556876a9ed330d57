package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpryor/checkers-backend/internal/model"
)

func put(b *model.Board, row, col int, side model.Side, king bool) {
	b.Set(model.Position{Row: row, Col: col}, &model.Piece{Side: side, King: king})
}

func TestChoosesLongestCaptureChain(t *testing.T) {
	// One white man has a single jump, another has a two-jump chain. Any
	// seed must pick the chain.
	board := &model.Board{}
	put(board, 0, 1, model.SideWhite, false)
	put(board, 1, 2, model.SideRed, false)
	put(board, 3, 4, model.SideRed, false)
	put(board, 0, 5, model.SideWhite, false)
	put(board, 1, 6, model.SideRed, false)

	for seed := int64(0); seed < 5; seed++ {
		from, move, ok := New(seed).ChooseMove(board, model.SideWhite)
		require.True(t, ok)
		assert.Equal(t, model.Position{Row: 0, Col: 1}, from, "seed %d", seed)
		assert.Equal(t, model.Position{Row: 4, Col: 5}, move.To, "seed %d", seed)
		assert.Len(t, move.Captures, 2, "seed %d", seed)
	}
}

func TestPrefersAnyCaptureOverQuietMoves(t *testing.T) {
	board := &model.Board{}
	put(board, 2, 1, model.SideWhite, false)
	put(board, 3, 2, model.SideRed, false)
	put(board, 2, 5, model.SideWhite, false)

	for seed := int64(0); seed < 5; seed++ {
		from, move, ok := New(seed).ChooseMove(board, model.SideWhite)
		require.True(t, ok)
		assert.Equal(t, model.Position{Row: 2, Col: 1}, from, "seed %d", seed)
		assert.NotEmpty(t, move.Captures, "seed %d", seed)
	}
}

func TestReturnsFalseWithoutMoves(t *testing.T) {
	board := &model.Board{}
	put(board, 4, 3, model.SideRed, false)

	_, _, ok := New(1).ChooseMove(board, model.SideWhite)
	assert.False(t, ok)
}

func TestDeterministicForSeed(t *testing.T) {
	board := model.NewBoard()

	fromA, moveA, okA := New(42).ChooseMove(board, model.SideWhite)
	fromB, moveB, okB := New(42).ChooseMove(board, model.SideWhite)

	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, fromA, fromB)
	assert.Equal(t, moveA, moveB)
	assert.Empty(t, moveA.Captures, "no captures exist in the opening position")
}

func TestChosenMoveIsAlwaysLegal(t *testing.T) {
	board := model.NewBoard()

	from, move, ok := New(7).ChooseMove(board, model.SideWhite)
	require.True(t, ok)

	clone := board.Clone()
	require.NoError(t, clone.ApplyMove(from, move))
}
