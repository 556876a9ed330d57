package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpryor/checkers-backend/internal/model"
)

func TestCreateJoinAndQueryGame(t *testing.T) {
	gs := NewGameService(NewGameManager())

	gameID, err := gs.CreateGame()
	require.NoError(t, err)
	require.NotEmpty(t, gameID)

	side, err := gs.JoinGame(gameID, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.SideRed, side)

	_, err = gs.JoinGame(gameID, "bob")
	assert.EqualError(t, err, "game is full")

	state, err := gs.GetGameState(gameID)
	require.NoError(t, err)
	assert.Equal(t, model.SideRed, state.ToMove)
	assert.Len(t, state.Board.PiecesOf(model.SideRed), 12)
	assert.Len(t, state.Board.PiecesOf(model.SideWhite), 12)

	moves, err := gs.LegalMoves(gameID, model.Position{Row: 5, Col: 0})
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, model.Position{Row: 4, Col: 1}, moves[0].To)
}

func TestUnknownGameErrors(t *testing.T) {
	gs := NewGameService(NewGameManager())

	_, err := gs.GetGameState("missing")
	assert.EqualError(t, err, "game not found")

	_, err = gs.JoinGame("missing", "alice")
	assert.EqualError(t, err, "game not found")

	_, err = gs.LegalMoves("missing", model.Position{Row: 5, Col: 0})
	assert.EqualError(t, err, "game not found")

	err = gs.HandleMove("missing", "alice", model.WSMove{})
	assert.EqualError(t, err, "game not found")
}

func TestHandleMoveThroughService(t *testing.T) {
	gs := NewGameService(NewGameManager())

	gameID, err := gs.CreateGame()
	require.NoError(t, err)
	_, err = gs.JoinGame(gameID, "alice")
	require.NoError(t, err)

	err = gs.HandleMove(gameID, "alice", model.WSMove{
		From: model.Position{Row: 5, Col: 0},
		To:   model.Position{Row: 4, Col: 1},
	})
	require.NoError(t, err)

	state, err := gs.GetGameState(gameID)
	require.NoError(t, err)
	require.NotEmpty(t, state.MoveHistory)
	assert.Equal(t, "21-17", state.MoveHistory[0].Notation)
}

func TestCreateGameRejectsDuplicateID(t *testing.T) {
	gm := NewGameManager()

	require.NoError(t, gm.CreateGame("dup"))
	assert.EqualError(t, gm.CreateGame("dup"), "game already exists")
}
