package levels

// Direction is the way water is followed along the terrain.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// next moves idx one step in direction d within [0, n).
// It reports false when the step would leave the range.
func (d Direction) next(idx, n int) (int, bool) {
	switch d {
	case Left:
		if idx == 0 {
			return idx, false
		}
		return idx - 1, true
	case Right:
		if idx+1 >= n {
			return idx, false
		}
		return idx + 1, true
	}
	return idx, false
}
