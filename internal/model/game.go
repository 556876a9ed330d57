package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/jpryor/checkers-backend/internal/ws"
)

// Strategy picks a move for a side. Implementations live outside the rules
// engine and only consume its public queries.
type Strategy interface {
	ChooseMove(board *Board, side Side) (Position, Move, bool)
}

// Pause before the bot replies so its move reads as a turn, not a flicker.
const botMoveDelay = 400 * time.Millisecond

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game holds a single game's state and its observers. The human always
// plays red; white is driven by the configured strategy.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       GameState
	connections *GameConnections
	bot         Strategy
	redClock    *TurnClock
	whiteClock  *TurnClock
}

type GameState struct {
	Sound          string         `json:"sound"`
	Board          *Board         `json:"board"`
	ToMove         Side           `json:"toMove"`
	MoveHistory    []PlayedMove   `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	LastMove       *PlayedMove    `json:"lastMove"` // nullable
	Resolve        *string        `json:"resolve"`  // nullable, set once terminal
	Winner         Side           `json:"winner"`   // empty while running
	Players        struct {
		Red   ClientPlayer `json:"red"`
		White ClientPlayer `json:"white"`
	} `json:"players"`
}

func NewGame(id string, bot Strategy) *Game {
	game := &Game{
		ID:          id,
		state:       newGameState(),
		connections: NewGameConnections(),
		bot:         bot,
		redClock:    NewTurnClock(),
		whiteClock:  NewTurnClock(),
	}
	// Red moves first, so its clock runs from the start.
	game.redClock.Start()
	return game
}

func newGameState() GameState {
	state := GameState{
		Sound:          "",
		Board:          NewBoard(),
		ToMove:         SideRed,
		MoveHistory:    make([]PlayedMove, 0),
		CapturedPieces: newCapturedPieces(),
		LastMove:       nil,
		Resolve:        nil,
		Winner:         "",
	}
	state.Players.Red = ClientPlayer{Side: SideRed}
	state.Players.White = ClientPlayer{ID: "bot", Side: SideWhite}
	return state
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		Red:   make([]Piece, 0),
		White: make([]Piece, 0),
	}
}

// AddPlayer seats the human on the red side. White belongs to the bot.
func (g *Game) AddPlayer(playerID string) (Side, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Players.Red.ID == "" || g.state.Players.Red.ID == playerID {
		g.state.Players.Red.ID = playerID
		return SideRed, nil
	}
	return "", errors.New("game is full")
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// LegalMoves exposes the per-cell legal move set, e.g. for the client to
// highlight a selected piece's destinations.
func (g *Game) LegalMoves(from Position) []Move {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.Board.LegalMoves(from)
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	return g.state.Players.Red.ID != "" && g.state.Players.Red.ID == playerID
}

func (g *Game) canSpectate() bool {
	return g.state.Players.Red.ID == ""
}

// MakeMove plays a red move named by source and destination. The matching
// legal move carries the full capture chain; when two chains share a landing
// square the first generated one is taken.
func (g *Game) MakeMove(playerID string, move WSMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Resolve != nil {
		return errors.New("game is over")
	}
	if !g.isPlayerInGame(playerID) {
		return errors.New("player not seated in this game")
	}
	piece := g.state.Board.Get(move.From)
	if piece == nil {
		return errors.New("no piece at from square")
	}
	if piece.Side != SideRed {
		return errors.New("that piece is not yours")
	}
	if g.state.ToMove != SideRed {
		return errors.New("not your turn")
	}

	var chosen *Move
	for _, m := range g.state.Board.LegalMoves(move.From) {
		if m.To == move.To {
			m := m
			chosen = &m
			break
		}
	}
	if chosen == nil {
		return errors.New("invalid move, not legal")
	}

	if err := g.executeMove(move.From, *chosen); err != nil {
		return err
	}

	if g.state.Resolve == nil && g.state.ToMove == SideWhite && g.bot != nil {
		go g.playBotTurn()
	}
	return nil
}

// executeMove applies a validated move for the side to move and advances the
// turn. Callers must hold g.mu.
func (g *Game) executeMove(from Position, move Move) error {
	side := g.state.ToMove
	wasKing := g.state.Board.Get(from).King

	// Capture the victims before they leave the board.
	var taken []Piece
	for _, captured := range move.Captures {
		if victim := g.state.Board.Get(captured); victim != nil {
			taken = append(taken, *victim)
		}
	}

	if err := g.state.Board.ApplyMove(from, move); err != nil {
		return err
	}

	g.clockFor(side).Stop()

	promoted := !wasKing && g.state.Board.Get(move.To).King

	g.state.Sound = "move"
	if len(move.Captures) > 0 {
		g.state.Sound = "capture"
	}
	if promoted {
		g.state.Sound = "king"
	}

	switch side {
	case SideRed:
		g.state.CapturedPieces.Red = append(g.state.CapturedPieces.Red, taken...)
	case SideWhite:
		g.state.CapturedPieces.White = append(g.state.CapturedPieces.White, taken...)
	}

	played := PlayedMove{
		Side:     side,
		From:     from,
		To:       move.To,
		Captures: move.Captures,
		Promoted: promoted,
		Notation: notation(from, move),
	}
	g.state.MoveHistory = append(g.state.MoveHistory, played)
	g.state.LastMove = &played

	g.switchTurn()

	if over, winner := g.state.Board.GameOver(); over {
		g.resolve(winner)
	} else {
		g.clockFor(g.state.ToMove).Start()
	}

	g.state.Players.Red.ThinkTime = int(g.redClock.Elapsed().Milliseconds() / 100)
	g.state.Players.White.ThinkTime = int(g.whiteClock.Elapsed().Milliseconds() / 100)

	go g.broadcastState()

	return nil
}

// playBotTurn lets the strategy answer for white. A bot with no legal reply
// has already lost by the no-move rule, which GameOver reports.
func (g *Game) playBotTurn() {
	time.Sleep(botMoveDelay)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Resolve != nil || g.state.ToMove != SideWhite {
		return
	}

	from, move, ok := g.bot.ChooseMove(g.state.Board, SideWhite)
	if !ok {
		if over, winner := g.state.Board.GameOver(); over {
			g.resolve(winner)
			go g.broadcastState()
		}
		return
	}
	if err := g.executeMove(from, move); err != nil {
		fmt.Println("bot move rejected:", err)
	}
}

// resolve marks the game finished. Callers must hold g.mu.
func (g *Game) resolve(winner Side) {
	result := fmt.Sprintf("%s wins", winner)
	g.state.Resolve = &result
	g.state.Winner = winner
	g.redClock.Stop()
	g.whiteClock.Stop()
}

func (g *Game) clockFor(side Side) *TurnClock {
	if side == SideRed {
		return g.redClock
	}
	return g.whiteClock
}

func (g *Game) switchTurn() {
	if g.state.ToMove == SideRed {
		g.state.ToMove = SideWhite
	} else {
		g.state.ToMove = SideRed
	}
}

// notation renders a move in the 1-32 square numbering: "11-15" for a step,
// "22x15x8" for a jump chain with its intermediate landings.
func notation(from Position, move Move) string {
	if len(move.Captures) == 0 {
		return from.SquareNotation() + "-" + move.To.SquareNotation()
	}
	parts := []string{from.SquareNotation()}
	current := from
	for _, captured := range move.Captures {
		current = Position{
			Row: captured.Row + (captured.Row - current.Row),
			Col: captured.Col + (captured.Col - current.Col),
		}
		parts = append(parts, current.SquareNotation())
	}
	return strings.Join(parts, "x")
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !isAuthorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the healthy connection and reject the new one.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, playerID)
}

func (g *Game) broadcastState() error {
	g.mu.Lock()
	jsonGameState, err := json.Marshal(g.state)
	g.mu.Unlock()
	if err != nil {
		fmt.Println("Failed to marshal state to JSON", err)
		return err
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(jsonGameState),
		}); err != nil {
			fmt.Println("Failed to send state to player", playerID, err)
			delete(g.connections.connections, playerID)
			continue
		}
	}
	return nil
}
