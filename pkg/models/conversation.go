// Package models defines the value types shared across the analytics agent.
package models

import "time"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a chat session.
type Turn struct {
	Role Role
	Text string
	At   time.Time
}

// History is a bounded, ordered window of conversation turns. It exists only
// for narrative coherence in prompts and is never used as SQL filter state.
type History struct {
	turns []Turn
	max   int
}

// DefaultHistorySize is the number of turns kept per session.
const DefaultHistorySize = 24

// NewHistory creates a history that retains at most max turns.
// max <= 0 falls back to DefaultHistorySize.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{max: max}
}

// Append records a turn, evicting the oldest when the window is full.
func (h *History) Append(role Role, text string) {
	h.turns = append(h.turns, Turn{Role: role, Text: text, At: time.Now()})
	if len(h.turns) > h.max {
		h.turns = h.turns[len(h.turns)-h.max:]
	}
}

// Turns returns the retained turns, oldest first.
func (h *History) Turns() []Turn {
	if h == nil {
		return nil
	}
	return h.turns
}

// Len returns the number of retained turns.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.turns)
}
