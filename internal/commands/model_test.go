package commands

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/glebpom/waterlevels/internal/animation"
	"github.com/glebpom/waterlevels/internal/levels"
)

// constantBuilder builds a calculator that always returns the input levels
// raised by one.
func constantBuilder(in animation.Input) (animation.Calculator, float64, error) {
	return calcFunc(func(float64) ([]float64, error) {
		out := make([]float64, len(in.Levels))
		for i, v := range in.Levels {
			out[i] = v + 1
		}
		return out, nil
	}), highest(in.Levels) + 1, nil
}

type calcFunc func(t float64) ([]float64, error)

func (f calcFunc) Calculate(t float64) ([]float64, error) {
	return f(t)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m AnimationModel, msg tea.Msg) (AnimationModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AnimationModel)
	if !ok {
		t.Fatalf("Update() returned %T, want AnimationModel", next)
	}
	return am, cmd
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"microseconds", 500 * time.Microsecond, "500µs"},
		{"milliseconds", 500 * time.Millisecond, "500ms"},
		{"seconds", 1500 * time.Millisecond, "1.5s"},
		{"boundary - just under ms", 999 * time.Microsecond, "999µs"},
		{"boundary - just under s", 999 * time.Millisecond, "999ms"},
		{"zero", 0, "0µs"},
		{"exactly 1s", time.Second, "1.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDuration(tt.duration)
			if got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}

func TestNewAnimationModel(t *testing.T) {
	t.Run("empty preset waits for input", func(t *testing.T) {
		m := NewAnimationModel(animation.Raw{}, constantBuilder)

		if m.state != StateInput {
			t.Errorf("state = %v, want %v", m.state, StateInput)
		}
		if m.focused != fieldLevels {
			t.Errorf("focused = %v, want fieldLevels", m.focused)
		}
		if m.autoSubmit {
			t.Error("autoSubmit = true, want false")
		}
		if m.Session() != nil {
			t.Error("Session() should be nil before submit")
		}
	})

	t.Run("complete preset submits on init", func(t *testing.T) {
		m := NewAnimationModel(animation.Raw{Levels: "1,2,3", MaxTime: "5"}, constantBuilder)

		if m.levelsInput.Value() != "1,2,3" || m.maxTimeInput.Value() != "5" {
			t.Errorf("inputs = %q, %q", m.levelsInput.Value(), m.maxTimeInput.Value())
		}
		cmd := m.Init()
		if cmd == nil {
			t.Fatal("Init() returned nil cmd")
		}
		if _, ok := cmd().(submitMsg); !ok {
			t.Error("Init() should submit the preset")
		}
	})

	t.Run("nil builder falls back to the water model", func(t *testing.T) {
		m := NewAnimationModel(animation.Raw{}, nil)
		if m.newCalculator == nil {
			t.Error("newCalculator is nil")
		}
	})
}

func TestBuildWaterModel(t *testing.T) {
	calc, peak, err := BuildWaterModel(animation.Input{Levels: []float64{1, 2, 3, 4, 5, 6, 7}, MaxTime: 5})
	if err != nil {
		t.Fatalf("BuildWaterModel() returned error: %v", err)
	}
	if math.Abs(peak-9) > 1e-9 {
		t.Errorf("peak = %v, want 9", peak)
	}

	got, err := calc.Calculate(0)
	if err != nil {
		t.Fatalf("Calculate(0) returned error: %v", err)
	}
	if got[0] != 1 || got[6] != 7 {
		t.Errorf("Calculate(0) = %v, want the initial levels", got)
	}

	_, _, err = BuildWaterModel(animation.Input{Levels: []float64{-1}, MaxTime: 1})
	if !errors.Is(err, levels.ErrInvalidHeight) {
		t.Errorf("BuildWaterModel(negative) error = %v, want ErrInvalidHeight", err)
	}
}

func TestBarPane(t *testing.T) {
	p := newBarPane([]float64{1, 2, 3}, 40, 10)
	if p.maxValue != 3 {
		t.Errorf("maxValue = %v, want 3", p.maxValue)
	}

	p.setScale(2)
	if p.maxValue != 3 {
		t.Errorf("setScale(2) lowered maxValue to %v", p.maxValue)
	}

	p.SetData([]float64{1, 2, 3})
	p.Redraw()
	if p.redraws != 1 || p.content == "" {
		t.Errorf("after Redraw: redraws = %d, content empty = %v", p.redraws, p.content == "")
	}

	before := p.content
	p.setScale(9)
	if p.maxValue != 9 {
		t.Errorf("maxValue = %v, want 9", p.maxValue)
	}
	if p.content == before {
		t.Error("setScale should re-render the chart")
	}
	if p.redraws != 1 {
		t.Errorf("setScale counted as a redraw: redraws = %d", p.redraws)
	}
}

func TestViewStates(t *testing.T) {
	m := NewAnimationModel(animation.Raw{}, constantBuilder)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if view := m.View(); !strings.Contains(view, "Levels:") || !strings.Contains(view, "Max time:") {
		t.Errorf("input view missing the form:\n%s", view)
	}

	m.levelsInput.SetValue("1,x")
	m.maxTimeInput.SetValue("5")
	m, _ = update(t, m, submitMsg{})
	if view := m.View(); !strings.Contains(view, "Error:") {
		t.Errorf("error view missing the error:\n%s", view)
	}
}
