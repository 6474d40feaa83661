package animation

import (
	"math"
	"strconv"
	"time"

	"github.com/prometheus/common/model"
)

// ColumnLabel is the label naming a column's series in a history matrix.
const ColumnLabel model.LabelName = "column"

// timelineMillis is the length of a full animation on the sample clock.
const timelineMillis = StepCount * int64(TickInterval/time.Millisecond)

// History keeps every frame pushed during a session.
type History struct {
	maxTime float64
	frames  []Frame
}

// NewHistory returns a history for a session that runs up to maxTime.
func NewHistory(maxTime float64) *History {
	return &History{maxTime: maxTime}
}

// Append records f. The values are copied.
func (h *History) Append(f Frame) {
	values := make([]float64, len(f.Values))
	copy(values, f.Values)
	h.frames = append(h.frames, Frame{Time: f.Time, Values: values})
}

func (h *History) Len() int {
	return len(h.frames)
}

// Frames returns a copy of the recorded frames in order.
func (h *History) Frames() []Frame {
	out := make([]Frame, len(h.frames))
	for i, f := range h.frames {
		values := make([]float64, len(f.Values))
		copy(values, f.Values)
		out[i] = Frame{Time: f.Time, Values: values}
	}
	return out
}

// Timestamp places frame i on the animation clock, where MaxTime is reached
// after StepCount ticks. Sample timestamps therefore stay within
// [0, StepCount*TickInterval] whatever the scale of simulated time. Frames
// outside [0, MaxTime], or a history without a max time, fall back to one
// tick per frame.
func (h *History) Timestamp(i int) model.Time {
	t := h.frames[i].Time
	if h.maxTime > 0 && t >= 0 && t <= h.maxTime {
		return model.Time(math.Round(t / h.maxTime * float64(timelineMillis)))
	}
	return model.Time(int64(i) * int64(TickInterval/time.Millisecond))
}

// SecondsPerMilli converts a sample timestamp back to simulated seconds.
func (h *History) SecondsPerMilli() float64 {
	if h.maxTime > 0 {
		return h.maxTime / float64(timelineMillis)
	}
	return float64(time.Millisecond) / float64(time.Second)
}

// Matrix returns one series per column.
func (h *History) Matrix() model.Matrix {
	if len(h.frames) == 0 {
		return model.Matrix{}
	}

	columns := len(h.frames[0].Values)
	matrix := make(model.Matrix, 0, columns)
	for c := 0; c < columns; c++ {
		stream := &model.SampleStream{
			Metric: model.Metric{ColumnLabel: model.LabelValue(strconv.Itoa(c + 1))},
			Values: make([]model.SamplePair, 0, len(h.frames)),
		}
		for i, f := range h.frames {
			if c >= len(f.Values) {
				continue
			}
			stream.Values = append(stream.Values, model.SamplePair{
				Timestamp: h.Timestamp(i),
				Value:     model.SampleValue(f.Values[c]),
			})
		}
		matrix = append(matrix, stream)
	}
	return matrix
}

// Summary returns the lowest, mean and highest level of every frame as three
// series named min, mean and max.
func (h *History) Summary() model.Matrix {
	lowest := &model.SampleStream{Metric: model.Metric{model.MetricNameLabel: "min"}}
	mean := &model.SampleStream{Metric: model.Metric{model.MetricNameLabel: "mean"}}
	highest := &model.SampleStream{Metric: model.Metric{model.MetricNameLabel: "max"}}

	for i, f := range h.frames {
		if len(f.Values) == 0 {
			continue
		}
		lo, hi, sum := f.Values[0], f.Values[0], 0.0
		for _, v := range f.Values {
			lo = min(lo, v)
			hi = max(hi, v)
			sum += v
		}
		ts := h.Timestamp(i)
		lowest.Values = append(lowest.Values, model.SamplePair{Timestamp: ts, Value: model.SampleValue(lo)})
		mean.Values = append(mean.Values, model.SamplePair{Timestamp: ts, Value: model.SampleValue(sum / float64(len(f.Values)))})
		highest.Values = append(highest.Values, model.SamplePair{Timestamp: ts, Value: model.SampleValue(hi)})
	}

	if len(lowest.Values) == 0 {
		return model.Matrix{}
	}
	return model.Matrix{lowest, mean, highest}
}
