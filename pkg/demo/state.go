package demo

import (
	"errors"
	"fmt"
)

// State is the runner's position in its lifecycle. States only move forward.
type State int

const (
	StateNotStarted State = iota
	StateLaunched
	StateSessionOpen
	StateNavigated
	StateInteracting
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateLaunched:
		return "launched"
	case StateSessionOpen:
		return "session-open"
	case StateNavigated:
		return "navigated"
	case StateInteracting:
		return "interacting"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ErrBackwardTransition is returned when a state change would move backward.
var ErrBackwardTransition = errors.New("state transitions only move forward")
