package flowstate

import (
	"fmt"
	"log/slog"
)

// StateID is a unique identifier for a state
type StateID string

func (s StateID) String() string {
	return string(s)
}

// Transition is a permitted move from one state to another
type Transition struct {
	From StateID
	To   StateID
}

func (t Transition) String() string {
	return fmt.Sprintf("%s->%s", t.From, t.To)
}

// HookFunc is a callback bound to a specific state or transition
type HookFunc func() error

// PairHookFunc is a callback that receives both ends of a transition
type PairHookFunc func(from, to StateID) error

// Logger is the default logger used when none is provided
var Logger = slog.Default()
