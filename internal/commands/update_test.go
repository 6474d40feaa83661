package commands

import (
	"errors"
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/glebpom/waterlevels/internal/animation"
)

// submitted returns a model that accepted levels and maxTime, together with
// the calculator message its build command produced.
func submitted(t *testing.T, levels, maxTime string, build CalculatorBuilder) (AnimationModel, calculatorReadyMsg) {
	t.Helper()
	m := NewAnimationModel(animation.Raw{Levels: levels, MaxTime: maxTime}, build)
	m, cmd := update(t, m, submitMsg{})
	if m.state != StateAnimating {
		t.Fatalf("state after submit = %v, want %v (err: %v)", m.state, StateAnimating, m.err)
	}
	if cmd == nil {
		t.Fatal("submit returned nil cmd")
	}
	return m, m.buildCalculatorCmd(animation.Input{Levels: m.session.Levels(), MaxTime: m.session.MaxTime()})().(calculatorReadyMsg)
}

func TestFormNavigation(t *testing.T) {
	m := NewAnimationModel(animation.Raw{}, constantBuilder)

	for _, r := range "1,2" {
		m, _ = update(t, m, key(string(r)))
	}
	if got := m.levelsInput.Value(); got != "1,2" {
		t.Fatalf("levels input = %q, want %q", got, "1,2")
	}

	m, _ = update(t, m, key("enter"))
	if m.focused != fieldMaxTime || m.state != StateInput {
		t.Fatalf("enter on levels: focused = %v, state = %v", m.focused, m.state)
	}

	// q is text while typing.
	m, _ = update(t, m, key("q"))
	if m.state != StateInput || m.maxTimeInput.Value() != "q" {
		t.Errorf("max time input = %q, want %q", m.maxTimeInput.Value(), "q")
	}

	m, _ = update(t, m, key("tab"))
	if m.focused != fieldLevels {
		t.Errorf("tab: focused = %v, want fieldLevels", m.focused)
	}
}

func TestSubmit(t *testing.T) {
	t.Run("valid input starts a session", func(t *testing.T) {
		m, _ := submitted(t, "1,2,3", "5", constantBuilder)

		s := m.Session()
		if s.State() != animation.StateRunning {
			t.Errorf("session state = %v, want Running", s.State())
		}
		if s.CurrentTime() != 0 {
			t.Errorf("CurrentTime() = %v, want 0", s.CurrentTime())
		}
		if m.chart.redraws != 1 {
			t.Errorf("chart redraws = %d, want 1 (seeded)", m.chart.redraws)
		}
		want := []float64{1, 2, 3}
		for i, v := range m.chart.values {
			if v != want[i] {
				t.Errorf("chart values = %v, want %v", m.chart.values, want)
				break
			}
		}
	})

	t.Run("invalid input shows the error and stays idle", func(t *testing.T) {
		m := NewAnimationModel(animation.Raw{Levels: "1.0,abc,3.0", MaxTime: "5"}, constantBuilder)
		m, cmd := update(t, m, submitMsg{})

		if m.state != StateError {
			t.Fatalf("state = %v, want %v", m.state, StateError)
		}
		if cmd != nil {
			t.Error("invalid submit should not schedule anything")
		}
		if !errors.Is(m.Err(), animation.ErrInvalidInput) {
			t.Errorf("Err() = %v, want ErrInvalidInput", m.Err())
		}
		if m.Session() != nil {
			t.Error("no session should exist after invalid input")
		}

		// Only quitting is left.
		m, cmd = update(t, m, key("r"))
		if m.state != StateError || cmd != nil {
			t.Errorf("r in error state: state = %v, cmd = %v", m.state, cmd != nil)
		}
		_, cmd = update(t, m, key("q"))
		if cmd == nil {
			t.Fatal("q returned nil cmd")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("q should quit from the error state")
		}
	})
}

func TestTickCycle(t *testing.T) {
	m, ready := submitted(t, "1,2,3", "10", constantBuilder)

	// Ticks before the calculator arrives only wait.
	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, tickMsg{})
		if cmd == nil {
			t.Fatal("waiting tick should schedule the next tick")
		}
	}
	if m.Session().CurrentTime() != 0 || m.history.Len() != 0 {
		t.Fatalf("waiting ticks advanced: t = %v, frames = %d", m.Session().CurrentTime(), m.history.Len())
	}

	m, _ = update(t, m, ready)
	if !m.Session().Ready() {
		t.Fatal("session should have a calculator")
	}
	if m.chart.maxValue != 4 {
		t.Errorf("chart maxValue = %v, want 4", m.chart.maxValue)
	}

	for i := 0; i < animation.StepCount; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, tickMsg{})
		if cmd == nil {
			t.Fatalf("tick %d stopped early", i)
		}
	}
	if got := m.Session().CurrentTime(); math.Abs(got-10) > 1e-12 {
		t.Errorf("CurrentTime() = %v, want 10", got)
	}
	if m.history.Len() != animation.StepCount {
		t.Errorf("history length = %d, want %d", m.history.Len(), animation.StepCount)
	}
	if m.timeline == "" || len(m.legendEntries) != 3 {
		t.Errorf("timeline not rendered: %d legend entries", len(m.legendEntries))
	}

	redraws := m.chart.redraws
	m, cmd := update(t, m, tickMsg{})
	if m.state != StateDone {
		t.Fatalf("state = %v, want %v", m.state, StateDone)
	}
	if cmd != nil {
		t.Error("done should stop ticking")
	}

	m, _ = update(t, m, tickMsg{})
	if m.chart.redraws != redraws {
		t.Errorf("chart redrawn after done: %d -> %d", redraws, m.chart.redraws)
	}
}

func TestCalculatorErrors(t *testing.T) {
	t.Run("build failure", func(t *testing.T) {
		failing := func(animation.Input) (animation.Calculator, float64, error) {
			return nil, 0, errors.New("boom")
		}
		m, ready := submitted(t, "1,2", "1", failing)
		m, _ = update(t, m, ready)
		if m.state != StateError {
			t.Errorf("state = %v, want %v", m.state, StateError)
		}
	})

	t.Run("stale calculator is ignored", func(t *testing.T) {
		m, ready := submitted(t, "1,2", "1", constantBuilder)
		ready.session = animation.NewSession(animation.Input{Levels: []float64{1}, MaxTime: 1}, nopChart{})
		m, _ = update(t, m, ready)
		if m.Session().Ready() {
			t.Error("calculator of another session was installed")
		}
	})

	t.Run("shape mismatch", func(t *testing.T) {
		short := func(animation.Input) (animation.Calculator, float64, error) {
			return calcFunc(func(float64) ([]float64, error) { return []float64{1}, nil }), 1, nil
		}
		m, ready := submitted(t, "1,2", "1", short)
		m, _ = update(t, m, ready)
		m, _ = update(t, m, tickMsg{})
		if m.state != StateError || !errors.Is(m.Err(), animation.ErrShapeMismatch) {
			t.Errorf("state = %v, err = %v", m.state, m.Err())
		}
	})
}

func TestRestartAfterDone(t *testing.T) {
	// A negative max time finishes on the first tick.
	m, _ := submitted(t, "1,2", "-1", constantBuilder)
	m, _ = update(t, m, tickMsg{})
	if m.state != StateDone {
		t.Fatalf("state = %v, want %v", m.state, StateDone)
	}

	m, _ = update(t, m, key("r"))
	if m.state != StateInput || m.Session() != nil {
		t.Fatalf("r: state = %v, session = %v", m.state, m.Session())
	}
	if m.levelsInput.Value() != "1,2" {
		t.Errorf("levels input = %q, want the previous value", m.levelsInput.Value())
	}
}

func TestCtrlCQuitsAnywhere(t *testing.T) {
	m := NewAnimationModel(animation.Raw{}, constantBuilder)
	_, cmd := update(t, m, key("ctrl+c"))
	if cmd == nil {
		t.Fatal("ctrl+c returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}
