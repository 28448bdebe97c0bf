package medaq

import (
	"context"
	"errors"
	"time"

	"vawter.tech/stopper"
)

// StreamEvent carries the outcome of one poll made by Stream
type StreamEvent struct {
	// Samples polled, earliest first
	Samples []Sample
	// Err is set when the poll failed
	Err error
	// At is when the poll returned
	At time.Time
}

// StreamCleanupFunc stops a stream and waits for its goroutine to exit
type StreamCleanupFunc func() error

// StreamOptions controls a Stream
type StreamOptions struct {
	// Capacity is the number of samples requested per poll; zero means
	// DefaultPollCapacity
	Capacity int
	// Interval is the delay between polls; zero means DefaultStreamInterval
	Interval time.Duration
	// Grace is how long cleanup waits for an in-flight poll; zero means
	// DefaultStreamGrace
	Grace time.Duration
}

// Stream polls an open session repeatedly and delivers each result on the
// returned channel until ctx is done or the cleanup function is called. A
// failed poll is delivered as an event and polling continues; the stream
// ends on its own only when the session leaves StateOpen.
//
// The stream owns s until cleanup returns: the caller must not use the
// session in the meantime. Stream never closes or releases the session.
func Stream(ctx context.Context, s *Session, opts StreamOptions) (<-chan StreamEvent, StreamCleanupFunc, error) {
	if s == nil {
		return nil, nil, &OpError{Op: OpPoll, Err: ErrInvalidArgument}
	}
	if s.State() != StateOpen {
		return nil, nil, s.stateError(OpPoll, "")
	}

	if opts.Capacity == 0 {
		opts.Capacity = DefaultPollCapacity
	}
	if opts.Capacity < 1 || opts.Capacity > s.maxCapacity {
		return nil, nil, &OpError{Op: OpPoll, State: s.state, Err: ErrInvalidCapacity}
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultStreamInterval
	}
	if opts.Grace <= 0 {
		opts.Grace = DefaultStreamGrace
	}

	ch := make(chan StreamEvent, 10)

	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		close(ch)
	})

	cleanup := func() error {
		sctx.Stop(opts.Grace)
		return sctx.Wait()
	}

	sctx.Go(func(sctx *stopper.Context) error {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()

		for !sctx.IsStopping() {
			samples, err := s.Poll(opts.Capacity)

			select {
			case ch <- StreamEvent{Samples: samples, Err: err, At: time.Now()}:
			case <-sctx.Stopping():
				return nil
			}

			if errors.Is(err, ErrInvalidStateTransition) {
				s.logger.Debug("stream ended", "state", s.State().String())
				return nil
			}

			select {
			case <-sctx.Stopping():
				return nil
			case <-ticker.C:
			}
		}
		return nil
	})

	return ch, cleanup, nil
}
