// Package animation drives a bar chart of water levels through simulated
// time on a fixed wall-clock interval.
package animation

import (
	"errors"
	"fmt"
	"time"
)

const (
	// TickInterval is the wall-clock time between two ticks.
	TickInterval = 100 * time.Millisecond

	// StepCount is the number of ticks needed to reach MaxTime: 5s of
	// animation at TickInterval.
	StepCount = 50
)

var (
	ErrAlreadyStarted = errors.New("session already started")
	ErrShapeMismatch  = errors.New("calculator returned a different number of levels")
)

// State is the lifecycle of a Session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Calculator returns the level of every column at a point in simulated time.
type Calculator interface {
	Calculate(t float64) ([]float64, error)
}

// Chart receives one dataset per tick.
type Chart interface {
	SetData(values []float64)
	Redraw()
}

// Outcome describes what a tick did.
type Outcome int

const (
	// OutcomeIdle means the session was not running.
	OutcomeIdle Outcome = iota
	// OutcomeWaiting means no calculator was available yet.
	OutcomeWaiting
	// OutcomeAdvanced means a frame was pushed and time moved forward.
	OutcomeAdvanced
	// OutcomeDone means the session finished; no further ticks are needed.
	OutcomeDone
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeWaiting:
		return "waiting"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeDone:
		return "done"
	default:
		return "unknown"
	}
}

// Frame is the dataset pushed to the chart at a point in simulated time.
type Frame struct {
	Time   float64
	Values []float64
}

// TickResult is returned by every tick.
type TickResult struct {
	Outcome Outcome
	Frame   Frame // set for OutcomeAdvanced
}

// Session owns the time cursor of one animation. It is not safe for
// concurrent use; all calls are expected from one event loop.
type Session struct {
	levels  []float64
	maxTime float64
	chart   Chart
	calc    Calculator

	state   State
	steps   int
	current float64
}

// NewSession returns an idle session for in.
func NewSession(in Input, chart Chart) *Session {
	levels := make([]float64, len(in.Levels))
	copy(levels, in.Levels)
	return &Session{
		levels:  levels,
		maxTime: in.MaxTime,
		chart:   chart,
	}
}

// Start seeds the chart with the initial levels and begins running.
func (s *Session) Start() error {
	if s.state != StateIdle {
		return ErrAlreadyStarted
	}
	s.state = StateRunning
	s.steps = 0
	s.current = 0
	s.chart.SetData(s.Levels())
	s.chart.Redraw()
	return nil
}

// SetCalculator makes c available to subsequent ticks. A nil c puts the
// session back to waiting.
func (s *Session) SetCalculator(c Calculator) {
	s.calc = c
}

// Ready reports whether a calculator is available.
func (s *Session) Ready() bool {
	return s.calc != nil
}

// Tick runs one animation step.
func (s *Session) Tick() (TickResult, error) {
	switch s.state {
	case StateIdle:
		return TickResult{Outcome: OutcomeIdle}, nil
	case StateDone:
		return TickResult{Outcome: OutcomeDone}, nil
	}

	if s.current >= s.maxTime {
		s.state = StateDone
		return TickResult{Outcome: OutcomeDone}, nil
	}

	if s.calc == nil {
		return TickResult{Outcome: OutcomeWaiting}, nil
	}

	at := s.current
	data, err := s.calc.Calculate(at)
	if err != nil {
		return TickResult{}, fmt.Errorf("calculating levels at %g: %w", at, err)
	}
	if len(data) != len(s.levels) {
		return TickResult{}, fmt.Errorf("got %d levels, want %d: %w", len(data), len(s.levels), ErrShapeMismatch)
	}

	s.chart.SetData(data)
	s.chart.Redraw()

	s.steps++
	s.current = s.maxTime * float64(s.steps) / StepCount
	if s.current > s.maxTime {
		s.current = s.maxTime
	}

	return TickResult{Outcome: OutcomeAdvanced, Frame: Frame{Time: at, Values: data}}, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// CurrentTime returns the time cursor.
func (s *Session) CurrentTime() float64 {
	return s.current
}

// MaxTime returns the upper bound of simulated time.
func (s *Session) MaxTime() float64 {
	return s.maxTime
}

// Step returns how far CurrentTime advances per tick.
func (s *Session) Step() float64 {
	return s.maxTime / StepCount
}

// Levels returns a copy of the initial levels.
func (s *Session) Levels() []float64 {
	out := make([]float64, len(s.levels))
	copy(out, s.levels)
	return out
}

// Progress is CurrentTime as a fraction of MaxTime.
func (s *Session) Progress() float64 {
	if s.maxTime <= 0 {
		if s.state == StateDone {
			return 1
		}
		return 0
	}
	return s.current / s.maxTime
}
