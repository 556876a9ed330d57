package model

import (
	"sync"
	"time"
)

// TurnClock accumulates how long a side has spent on its own turns. Casual
// play against the bot has no flag fall, so it counts up, not down.
type TurnClock struct {
	mu          sync.Mutex
	elapsed     time.Duration
	lastStarted time.Time
	isRunning   bool
}

func NewTurnClock() *TurnClock {
	return &TurnClock{}
}

func (c *TurnClock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = time.Now()
		c.isRunning = true
	}
}

func (c *TurnClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		c.elapsed += time.Since(c.lastStarted)
		c.isRunning = false
	}
}

func (c *TurnClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.elapsed + time.Since(c.lastStarted)
	}
	return c.elapsed
}
