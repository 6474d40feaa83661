package commands

import (
	"time"

	"github.com/glebpom/waterlevels/internal/animation"
)

// TUIState represents the current state of the TUI.
type TUIState int

const (
	StateInput TUIState = iota
	StateAnimating
	StateDone
	StateError
)

func (s TUIState) String() string {
	switch s {
	case StateInput:
		return "input"
	case StateAnimating:
		return "animating"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// inputField is the form field that has focus.
type inputField int

const (
	fieldLevels inputField = iota
	fieldMaxTime
)

func (f inputField) next() inputField {
	return (f + 1) % 2
}

// tickMsg asks the model to advance the session by one step.
type tickMsg time.Time

// calculatorReadyMsg carries the water model built in the background.
type calculatorReadyMsg struct {
	session  *animation.Session
	calc     animation.Calculator
	peak     float64
	err      error
	duration time.Duration
}

// submitMsg submits the form as if Enter was pressed on the last field.
type submitMsg struct{}
