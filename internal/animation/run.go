package animation

import (
	"context"
	"errors"
	"time"
)

// ErrNoCalculator is returned by Run when it ticks back to back and the
// session has nothing to calculate with.
var ErrNoCalculator = errors.New("no calculator available")

// Run starts s if it is idle and ticks it every interval until it is done or
// ctx is cancelled. onFrame, if not nil, is called for every pushed frame.
// An interval <= 0 ticks without pausing.
func Run(ctx context.Context, s *Session, interval time.Duration, onFrame func(Frame)) error {
	if s.State() == StateIdle {
		if err := s.Start(); err != nil {
			return err
		}
	}

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		res, err := s.Tick()
		if err != nil {
			return err
		}

		switch res.Outcome {
		case OutcomeAdvanced:
			if onFrame != nil {
				onFrame(res.Frame)
			}
		case OutcomeWaiting:
			if tick == nil {
				return ErrNoCalculator
			}
		case OutcomeDone, OutcomeIdle:
			return nil
		}
	}
}
