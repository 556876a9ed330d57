package model

import "fmt"

type Side string

const (
	SideRed   Side = "red"   // moves toward row 0
	SideWhite Side = "white" // moves toward row 7
)

func (s Side) Opponent() Side {
	if s == SideRed {
		return SideWhite
	}
	return SideRed
}

// BackRank is the crowning row for the side.
func (s Side) BackRank() int {
	if s == SideRed {
		return 0
	}
	return 7
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SquareNotation numbers the dark squares 1-32, left to right, top to bottom.
func (p Position) SquareNotation() string {
	return fmt.Sprintf("%d", p.Row*4+p.Col/2+1)
}

type Piece struct {
	Side Side `json:"side"`
	King bool `json:"king"`
}

type PlacedPiece struct {
	Position Position `json:"position"`
	King     bool     `json:"king"`
}

type Board struct {
	Grid [8][8]*Piece `json:"grid"`
}

func inBounds(p Position) bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

// NewBoard returns the classic starting position: twelve white men on rows
// 0-2, twelve red men on rows 5-7, all on dark squares.
func NewBoard() *Board {
	board := &Board{}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if (r+c)%2 != 1 {
				continue
			}
			if r < 3 {
				board.Grid[r][c] = &Piece{Side: SideWhite}
			} else if r > 4 {
				board.Grid[r][c] = &Piece{Side: SideRed}
			}
		}
	}
	return board
}

// Get returns the piece at p, or nil when p is empty or off the board.
// Off-board lookups are a valid "no piece" answer so that directional
// probes never need their own bounds check first.
func (b *Board) Get(p Position) *Piece {
	if !inBounds(p) {
		return nil
	}
	return b.Grid[p.Row][p.Col]
}

func (b *Board) Set(p Position, piece *Piece) {
	if inBounds(p) {
		b.Grid[p.Row][p.Col] = piece
	}
}

func (b *Board) Remove(p Position) {
	if inBounds(p) {
		b.Grid[p.Row][p.Col] = nil
	}
}

// Clone returns an independent copy. The capture search speculates on clones
// so the live board is never touched during move generation.
func (b *Board) Clone() *Board {
	clone := &Board{}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if piece := b.Grid[r][c]; piece != nil {
				copied := *piece
				clone.Grid[r][c] = &copied
			}
		}
	}
	return clone
}

// PiecesOf enumerates side's pieces in row-major order. Callers that pick
// "the first" of anything depend on this order staying stable.
func (b *Board) PiecesOf(side Side) []PlacedPiece {
	var pieces []PlacedPiece
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if piece := b.Grid[r][c]; piece != nil && piece.Side == side {
				pieces = append(pieces, PlacedPiece{Position: Position{Row: r, Col: c}, King: piece.King})
			}
		}
	}
	return pieces
}
