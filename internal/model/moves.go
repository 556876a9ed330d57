package model

import "fmt"

// Move is a destination plus the cells captured on the way there, in jump
// order. An empty capture list is a simple one-step move. A Move is only
// meaningful together with the source cell it was generated for.
type Move struct {
	To       Position   `json:"to"`
	Captures []Position `json:"captures"`
}

var (
	upDirs   = []Position{{Row: -1, Col: -1}, {Row: -1, Col: 1}}
	downDirs = []Position{{Row: 1, Col: -1}, {Row: 1, Col: 1}}
)

// Red men move up the board, white men move down, kings move both ways.
// The up pair comes first so move enumeration order is stable.
func directionsFor(piece *Piece) []Position {
	var dirs []Position
	if piece.King || piece.Side == SideRed {
		dirs = append(dirs, upDirs...)
	}
	if piece.King || piece.Side == SideWhite {
		dirs = append(dirs, downDirs...)
	}
	return dirs
}

// LegalMoves returns every legal move for the piece at from. When any
// capture is available from this cell, captures are mandatory and the
// simple moves are dropped. Capture chains are expanded to their full
// length; every returned chain is maximal.
func (b *Board) LegalMoves(from Position) []Move {
	piece := b.Get(from)
	if piece == nil {
		return nil
	}

	var simple, jumps []Move
	for _, dir := range directionsFor(piece) {
		adjacent := Position{Row: from.Row + dir.Row, Col: from.Col + dir.Col}
		if !inBounds(adjacent) {
			continue
		}
		target := b.Get(adjacent)
		if target == nil {
			simple = append(simple, Move{To: adjacent})
			continue
		}
		if target.Side == piece.Side {
			continue
		}
		landing := Position{Row: adjacent.Row + dir.Row, Col: adjacent.Col + dir.Col}
		if inBounds(landing) && b.Get(landing) == nil {
			jumps = append(jumps, Move{To: landing, Captures: []Position{adjacent}})
		}
	}

	// Extend each single jump into its full chain on a cloned board. The
	// moved piece keeps the king flag it started the turn with: crowning
	// happens once, at final placement, never mid-chain.
	var chains []Move
	for _, jump := range jumps {
		clone := b.Clone()
		clone.Set(jump.To, clone.Get(from))
		clone.Remove(from)
		for _, captured := range jump.Captures {
			clone.Remove(captured)
		}
		more := clone.captureContinuations(jump.To)
		if len(more) == 0 {
			chains = append(chains, jump)
			continue
		}
		for _, extension := range more {
			captures := append(append([]Position{}, jump.Captures...), extension.Captures...)
			chains = append(chains, Move{To: extension.To, Captures: captures})
		}
	}

	if len(chains) > 0 {
		return chains
	}
	return simple
}

// captureContinuations finds every maximal jump chain for the piece at from.
// It only ever runs on cloned boards.
func (b *Board) captureContinuations(from Position) []Move {
	piece := b.Get(from)
	if piece == nil {
		return nil
	}

	var jumps []Move
	for _, dir := range directionsFor(piece) {
		adjacent := Position{Row: from.Row + dir.Row, Col: from.Col + dir.Col}
		landing := Position{Row: adjacent.Row + dir.Row, Col: adjacent.Col + dir.Col}
		target := b.Get(adjacent)
		if target != nil && target.Side != piece.Side && inBounds(landing) && b.Get(landing) == nil {
			jumps = append(jumps, Move{To: landing, Captures: []Position{adjacent}})
		}
	}

	var chains []Move
	for _, jump := range jumps {
		clone := b.Clone()
		clone.Set(jump.To, clone.Get(from))
		clone.Remove(from)
		for _, captured := range jump.Captures {
			clone.Remove(captured)
		}
		more := clone.captureContinuations(jump.To)
		if len(more) == 0 {
			chains = append(chains, jump)
			continue
		}
		for _, extension := range more {
			captures := append(append([]Position{}, jump.Captures...), extension.Captures...)
			chains = append(chains, Move{To: extension.To, Captures: captures})
		}
	}
	return chains
}

func sameCaptures(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ApplyMove plays move for the piece at from. The move must be one of
// LegalMoves(from); anything else is rejected without touching the board.
// Crowning happens here, on the final landing square, and is a no-op for a
// piece that is already a king.
func (b *Board) ApplyMove(from Position, move Move) error {
	legal := false
	for _, m := range b.LegalMoves(from) {
		if m.To == move.To && sameCaptures(m.Captures, move.Captures) {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("illegal move from %s to %s", from.SquareNotation(), move.To.SquareNotation())
	}

	piece := b.Get(from)
	b.Set(move.To, piece)
	b.Remove(from)
	for _, captured := range move.Captures {
		b.Remove(captured)
	}
	if move.To.Row == piece.Side.BackRank() {
		piece.King = true
	}
	return nil
}

// AnyCaptureAvailable reports whether any piece of side has a capture.
// Captures are only mandatory per cell, so this is informational for
// callers that want to surface or enforce a stricter rule themselves.
func (b *Board) AnyCaptureAvailable(side Side) bool {
	for _, placed := range b.PiecesOf(side) {
		for _, move := range b.LegalMoves(placed.Position) {
			if len(move.Captures) > 0 {
				return true
			}
		}
	}
	return false
}

func (b *Board) HasAnyLegalMove(side Side) bool {
	for _, placed := range b.PiecesOf(side) {
		if len(b.LegalMoves(placed.Position)) > 0 {
			return true
		}
	}
	return false
}

// GameOver reports whether the game has ended and who won. A side loses
// when it has no pieces left or no legal move. Both counts are taken before
// either is checked.
func (b *Board) GameOver() (bool, Side) {
	redCount := len(b.PiecesOf(SideRed))
	whiteCount := len(b.PiecesOf(SideWhite))
	if redCount == 0 {
		return true, SideWhite
	}
	if whiteCount == 0 {
		return true, SideRed
	}
	if !b.HasAnyLegalMove(SideRed) {
		return true, SideWhite
	}
	if !b.HasAnyLegalMove(SideWhite) {
		return true, SideRed
	}
	return false, ""
}
