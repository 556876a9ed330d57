package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardInitialLayout(t *testing.T) {
	board := NewBoard()

	red := board.PiecesOf(SideRed)
	white := board.PiecesOf(SideWhite)
	require.Len(t, red, 12)
	require.Len(t, white, 12)

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			piece := board.Grid[r][c]
			if piece == nil {
				continue
			}
			assert.Equal(t, 1, (r+c)%2, "piece on light square at (%d,%d)", r, c)
			assert.False(t, piece.King, "starting piece at (%d,%d) is a king", r, c)
			if r < 3 {
				assert.Equal(t, SideWhite, piece.Side)
			} else {
				assert.Equal(t, SideRed, piece.Side)
				assert.Greater(t, r, 4)
			}
		}
	}
}

func TestGetIsPermissiveOutOfBounds(t *testing.T) {
	board := NewBoard()

	tests := []Position{
		{Row: -1, Col: 0},
		{Row: 8, Col: 3},
		{Row: 0, Col: -1},
		{Row: 3, Col: 8},
		{Row: -2, Col: -2},
	}
	for _, pos := range tests {
		assert.Nil(t, board.Get(pos), "expected no piece at %+v", pos)
	}

	// Out-of-bounds writes are silently ignored, same as reads.
	board.Set(Position{Row: -1, Col: 0}, &Piece{Side: SideRed})
	board.Remove(Position{Row: 8, Col: 8})
}

func TestCloneIsIndependent(t *testing.T) {
	board := NewBoard()
	clone := board.Clone()

	clone.Remove(Position{Row: 5, Col: 0})
	clone.Get(Position{Row: 0, Col: 1}).King = true

	require.NotNil(t, board.Get(Position{Row: 5, Col: 0}))
	assert.False(t, board.Get(Position{Row: 0, Col: 1}).King)
}

func TestPiecesOfRowMajorOrder(t *testing.T) {
	board := NewBoard()

	white := board.PiecesOf(SideWhite)
	wantFirst := []Position{{Row: 0, Col: 1}, {Row: 0, Col: 3}, {Row: 0, Col: 5}, {Row: 0, Col: 7}, {Row: 1, Col: 0}}
	for i, want := range wantFirst {
		assert.Equal(t, want, white[i].Position)
	}

	red := board.PiecesOf(SideRed)
	assert.Equal(t, Position{Row: 5, Col: 0}, red[0].Position)
	assert.Equal(t, Position{Row: 5, Col: 2}, red[1].Position)
	assert.Equal(t, Position{Row: 7, Col: 6}, red[11].Position)
}

func TestSquareNotation(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Position{Row: 0, Col: 1}, "1"},
		{Position{Row: 0, Col: 7}, "4"},
		{Position{Row: 4, Col: 1}, "17"},
		{Position{Row: 5, Col: 0}, "21"},
		{Position{Row: 7, Col: 6}, "32"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.pos.SquareNotation())
	}
}

func TestSideHelpers(t *testing.T) {
	assert.Equal(t, SideWhite, SideRed.Opponent())
	assert.Equal(t, SideRed, SideWhite.Opponent())
	assert.Equal(t, 0, SideRed.BackRank())
	assert.Equal(t, 7, SideWhite.BackRank())
}
