// Package levels computes how water levels rise when rain falls evenly on a
// one-dimensional terrain of columns.
//
// Every column receives one unit of water per unit of time. Water that lands
// on a slope runs downhill to the nearest pit, splitting in half when it can
// run both ways, and pits that fill up to a neighbour's level merge with it.
// The model precomputes every merge up front so that levels at any time are a
// cheap lookup.
package levels

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrEmpty         = errors.New("at least one level is required")
	ErrInvalidHeight = errors.New("level must be a finite, non-negative number")
	ErrInvalidTime   = errors.New("max time must be a number")
	ErrNegativeTime  = errors.New("time must not be negative")
	ErrTimeExceeded  = errors.New("time exceeds max time")
)

// Phase is the interval of time during which the set of parts does not
// change. The last phase never ends.
type Phase struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
	Parts []Part  `json:"parts" yaml:"parts"`
}

type phase struct {
	start, end float64
	set        *partSet
}

// Model holds the precomputed phases of a terrain.
type Model struct {
	columns int
	maxTime float64
	phases  []phase
}

// New validates the initial heights and precomputes the phases up to the
// point where no further merge can happen.
func New(heights []float64, maxTime float64) (*Model, error) {
	for i, h := range heights {
		if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
			return nil, fmt.Errorf("level %d (%g): %w", i+1, h, ErrInvalidHeight)
		}
	}
	if math.IsNaN(maxTime) {
		return nil, ErrInvalidTime
	}

	initial, err := newPartSet(heights)
	if err != nil {
		return nil, err
	}

	m := &Model{
		columns: len(heights),
		maxTime: maxTime,
	}
	if err := m.calculatePhases(initial); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) calculatePhases(set *partSet) error {
	start := 0.0
	for set.next != nil {
		end := start + set.next.after
		m.phases = append(m.phases, phase{start: start, end: end, set: set})

		next, err := applyChanges(set.atTime(set.next.after), set.next.targets)
		if err != nil {
			return fmt.Errorf("phase at %g: %w", end, err)
		}
		set, start = next, end
	}
	m.phases = append(m.phases, phase{start: start, end: math.Inf(1), set: set})
	return nil
}

// Columns is the number of columns in the terrain.
func (m *Model) Columns() int {
	return m.columns
}

// MaxTime is the largest time Calculate accepts.
func (m *Model) MaxTime() float64 {
	return m.maxTime
}

// Calculate returns the level of every column at time t.
func (m *Model) Calculate(t float64) ([]float64, error) {
	if t < 0 || math.IsNaN(t) {
		return nil, fmt.Errorf("%g: %w", t, ErrNegativeTime)
	}
	if t > m.maxTime {
		return nil, fmt.Errorf("%g > %g: %w", t, m.maxTime, ErrTimeExceeded)
	}

	idx := sort.Search(len(m.phases), func(i int) bool {
		return m.phases[i].end >= t
	})
	p := m.phases[idx]

	levels := make([]float64, 0, m.columns)
	for _, part := range p.set.atTime(t - p.start) {
		for i := 0; i < part.Width(); i++ {
			levels = append(levels, part.Height)
		}
	}
	return levels, nil
}

// Phases returns a copy of the precomputed phases.
func (m *Model) Phases() []Phase {
	out := make([]Phase, 0, len(m.phases))
	for _, p := range m.phases {
		parts := make([]Part, len(p.set.parts))
		copy(parts, p.set.parts)
		out = append(out, Phase{Start: p.start, End: p.end, Parts: parts})
	}
	return out
}
