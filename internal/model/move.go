package model

// WSMove is the wire form of a move request. The client names only the
// source and destination squares; the engine resolves the capture chain.
type WSMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// PlayedMove is one entry of the move history.
type PlayedMove struct {
	Side     Side       `json:"side"`
	From     Position   `json:"from"`
	To       Position   `json:"to"`
	Captures []Position `json:"captures"`
	Promoted bool       `json:"promoted"`
	Notation string     `json:"notation"`
}

type CapturedPieces struct {
	Red   []Piece `json:"red"`
	White []Piece `json:"white"`
}
