package levels

import (
	"errors"
	"fmt"
	"math"
)

// epsilon is the tolerance used when comparing heights and times.
const epsilon = 2.220446049250313e-16

// Part is a run of adjacent columns that share one water level.
// It covers the original column indices [Start, End).
type Part struct {
	Height float64 `json:"height" yaml:"height"`
	Start  int     `json:"start" yaml:"start"`
	End    int     `json:"end" yaml:"end"`
}

// Width is the number of columns covered by the part.
func (p Part) Width() int {
	return p.End - p.Start
}

// velocity is the rain collected by a part per unit time and the width it
// spreads over. The level rises at inflow/width.
type velocity struct {
	inflow float64
	width  int
}

func (v velocity) rate() float64 {
	return v.inflow / float64(v.width)
}

// target is a part that will reach a neighbour's level.
type target struct {
	index  int
	height float64
}

// change is the next configuration change: which parts reach which level,
// and after how long.
type change struct {
	targets []target
	after   float64
}

// partSet is one configuration of the terrain: its merged parts, how fast
// each one fills and when the configuration changes next.
type partSet struct {
	parts      []Part
	velocities []velocity
	next       *change
}

var errUnexpectedChange = errors.New("change does not reach a neighbouring level")

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// newPartSet builds the initial configuration, joining sequential duplicates.
func newPartSet(heights []float64) (*partSet, error) {
	if len(heights) == 0 {
		return nil, ErrEmpty
	}

	parts := make([]Part, 0, len(heights))
	current := Part{Height: heights[0], Start: 0, End: 1}
	for i := 1; i < len(heights); i++ {
		if approxEqual(heights[i], current.Height) {
			current.End++
			continue
		}
		parts = append(parts, current)
		current = Part{Height: heights[i], Start: i, End: i + 1}
	}
	parts = append(parts, current)

	return withParts(parts), nil
}

// applyChanges builds the configuration that follows prev once the parts
// named by changes reached their neighbour's level.
func applyChanges(prev []Part, changes []target) (*partSet, error) {
	if len(prev) == 0 {
		return nil, ErrEmpty
	}

	slots := make([]*Part, len(prev))
	for i := range prev {
		p := prev[i]
		slots[i] = &p
	}

	for _, c := range changes {
		was := slots[c.index]
		if was == nil {
			return nil, fmt.Errorf("part %d changed twice: %w", c.index, errUnexpectedChange)
		}
		slots[c.index] = nil

		switch {
		case c.index >= 1 && c.height == prev[c.index-1].Height && slots[c.index-1] != nil:
			slots[c.index-1].End = was.End
		case c.index+1 < len(prev) && c.height == prev[c.index+1].Height && slots[c.index+1] != nil:
			slots[c.index+1].Start = was.Start
		default:
			return nil, fmt.Errorf("part %d at %g: %w", c.index, c.height, errUnexpectedChange)
		}
	}

	// Merging can leave neighbours at equal levels; join them.
	parts := make([]Part, 0, len(slots))
	for _, p := range slots {
		if p == nil {
			continue
		}
		if n := len(parts); n > 0 && approxEqual(parts[n-1].Height, p.Height) {
			parts[n-1].End = p.End
			continue
		}
		parts = append(parts, *p)
	}
	if len(parts) == 0 {
		return nil, ErrEmpty
	}

	return withParts(parts), nil
}

func withParts(parts []Part) *partSet {
	velocities := fillingVelocities(parts)
	return &partSet{
		parts:      parts,
		velocities: velocities,
		next:       nextChange(parts, velocities),
	}
}

// atTime returns the parts after rel time units of filling.
func (s *partSet) atTime(rel float64) []Part {
	out := make([]Part, len(s.parts))
	copy(out, s.parts)
	for i := range out {
		out[i].Height += s.velocities[i].rate() * rel
	}
	return out
}

// findDestination follows water from parts[idx] strictly downhill in
// direction dir and returns the index where it settles.
func findDestination(parts []Part, idx int, dir Direction) (int, bool) {
	if idx >= len(parts) {
		return 0, false
	}

	found := -1
	last := parts[idx].Height
	i := idx
	for {
		var ok bool
		i, ok = dir.next(i, len(parts))
		if !ok || parts[i].Height >= last {
			break
		}
		last = parts[i].Height
		found = i
	}

	if found < 0 {
		return 0, false
	}
	return found, true
}

// acceptsWater reports whether parts[idx] is a local minimum. The terrain
// edges act as walls.
func acceptsWater(parts []Part, idx int) bool {
	leftHigher := idx == 0 || parts[idx-1].Height > parts[idx].Height
	rightHigher := idx == len(parts)-1 || parts[idx+1].Height > parts[idx].Height
	return leftHigher && rightHigher
}

// fillingVelocities distributes the rain falling on every part to the parts
// that collect it.
func fillingVelocities(parts []Part) []velocity {
	velocities := make([]velocity, len(parts))
	for i, p := range parts {
		velocities[i].width = p.Width()
	}

	for i, p := range parts {
		rain := float64(p.Width())
		if acceptsWater(parts, i) {
			velocities[i].inflow += rain
			continue
		}

		left, hasLeft := findDestination(parts, i, Left)
		right, hasRight := findDestination(parts, i, Right)
		switch {
		case hasLeft && hasRight:
			velocities[left].inflow += rain / 2
			velocities[right].inflow += rain / 2
		case hasLeft:
			velocities[left].inflow += rain
		case hasRight:
			velocities[right].inflow += rain
		}
	}

	return velocities
}

// nextChange finds the earliest time at which a filling part reaches the
// level of its lower neighbour. Targets are sorted by index.
func nextChange(parts []Part, velocities []velocity) *change {
	var earliest *change
	for i, v := range velocities {
		rate := v.rate()
		if rate <= 0 {
			continue
		}

		var diff, height float64
		hasLeft := i > 0 && parts[i].Height < parts[i-1].Height
		hasRight := i < len(parts)-1 && parts[i].Height < parts[i+1].Height
		switch {
		case hasLeft && hasRight:
			leftDiff := parts[i-1].Height - parts[i].Height
			rightDiff := parts[i+1].Height - parts[i].Height
			if leftDiff <= rightDiff {
				diff, height = leftDiff, parts[i-1].Height
			} else {
				diff, height = rightDiff, parts[i+1].Height
			}
		case hasLeft:
			diff, height = parts[i-1].Height-parts[i].Height, parts[i-1].Height
		case hasRight:
			diff, height = parts[i+1].Height-parts[i].Height, parts[i+1].Height
		default:
			continue
		}

		after := diff / rate
		switch {
		case earliest == nil, after < earliest.after && !approxEqual(after, earliest.after):
			earliest = &change{targets: []target{{index: i, height: height}}, after: after}
		case approxEqual(after, earliest.after):
			earliest.targets = append(earliest.targets, target{index: i, height: height})
		}
	}

	return earliest
}
