package animation

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRun(t *testing.T) {
	t.Run("runs back to back until done", func(t *testing.T) {
		chart := &fakeChart{}
		s := NewSession(mustInput(t, "1,2", "5"), chart)
		s.SetCalculator(constantCalc(2))

		var frames []Frame
		if err := Run(context.Background(), s, 0, func(f Frame) { frames = append(frames, f) }); err != nil {
			t.Fatalf("Run() returned error: %v", err)
		}

		if s.State() != StateDone {
			t.Errorf("State() = %v, want %v", s.State(), StateDone)
		}
		if len(frames) != StepCount {
			t.Errorf("len(frames) = %d, want %d", len(frames), StepCount)
		}
		if frames[0].Time != 0 {
			t.Errorf("first frame time = %v, want 0", frames[0].Time)
		}
	})

	t.Run("missing calculator without interval", func(t *testing.T) {
		s := NewSession(mustInput(t, "1", "5"), &fakeChart{})
		if err := Run(context.Background(), s, 0, nil); !errors.Is(err, ErrNoCalculator) {
			t.Errorf("Run() error = %v, want %v", err, ErrNoCalculator)
		}
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		s := NewSession(mustInput(t, "1", "5"), &fakeChart{})
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		err := Run(ctx, s, time.Millisecond, nil)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Run() error = %v, want %v", err, context.DeadlineExceeded)
		}
		if s.State() != StateRunning {
			t.Errorf("State() = %v, want %v", s.State(), StateRunning)
		}
	})

	t.Run("paced by the interval", func(t *testing.T) {
		s := NewSession(mustInput(t, "1", "1"), &fakeChart{})
		s.SetCalculator(constantCalc(1))

		count := 0
		if err := Run(context.Background(), s, time.Millisecond, func(Frame) { count++ }); err != nil {
			t.Fatalf("Run() returned error: %v", err)
		}
		if count != StepCount {
			t.Errorf("frames = %d, want %d", count, StepCount)
		}
	})

	t.Run("already cancelled", func(t *testing.T) {
		s := NewSession(mustInput(t, "1", "1"), &fakeChart{})
		s.SetCalculator(constantCalc(1))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := Run(ctx, s, 0, nil); !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want %v", err, context.Canceled)
		}
	})
}
