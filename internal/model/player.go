package model

type ClientPlayer struct {
	ID        string `json:"name"`
	Side      Side   `json:"side"`
	ThinkTime int    `json:"thinkTime"` // tenths of a second spent on own turns
}
