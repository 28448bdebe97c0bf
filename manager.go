package medaq

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Job describes one measurement run by a Manager
type Job struct {
	// Name identifies the job in results and errors
	Name string
	// Kind is the sensor kind to acquire
	Kind SensorKind
	// Params are applied in order before the channel is opened
	Params ParameterSet
	// Capacity is the number of samples to poll; zero means DefaultPollCapacity
	Capacity int
}

// JobError ties a measurement error to the job that produced it
type JobError struct {
	// Name is the job name
	Name string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *JobError) Error() string {
	return fmt.Sprintf("job %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *JobError) Unwrap() error {
	return e.Err
}

// Manager runs measurements on multiple sensors concurrently. Each job gets
// its own Session and therefore its own handle.
type Manager struct {
	// Driver is shared by all jobs and must be safe for concurrent use
	// across distinct handles
	Driver Driver
	// Concurrency is the maximum number of sessions held at once
	Concurrency int

	logger *slog.Logger
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithConcurrency sets the maximum number of concurrent sessions
func WithConcurrency(n int) ManagerOption {
	return func(m *Manager) {
		m.Concurrency = n
	}
}

// WithManagerLogger sets the logger handed to every session
func WithManagerLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a new Manager with default settings
func NewManager(d Driver, opts ...ManagerOption) *Manager {
	m := &Manager{
		Driver:      d,
		Concurrency: DefaultConcurrency,
		logger:      slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.Concurrency < 1 {
		m.Concurrency = 1
	}

	return m
}

// Measure runs every job and returns the samples keyed by job name. Jobs
// that fail are missing from the result; jobs that only hit cleanup warnings
// keep their samples. Every error is reported in a *MultiError of *JobError
// values. Once ctx is done no further handles are acquired;
// sessions already running finish normally.
func (m *Manager) Measure(ctx context.Context, jobs ...Job) (map[string][]Sample, error) {
	results := make(map[string][]Sample, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	// Semaphore for concurrency control
	sem := make(chan struct{}, m.Concurrency)

	var wg sync.WaitGroup
	var mu sync.Mutex
	merr := &MultiError{}

	for _, job := range jobs {
		wg.Add(1)
		go func(j Job) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				merr.Add(&JobError{Name: j.Name, Err: ctx.Err()})
				mu.Unlock()
				return
			}

			// The semaphore may have been won after cancellation
			if err := ctx.Err(); err != nil {
				mu.Lock()
				merr.Add(&JobError{Name: j.Name, Err: err})
				mu.Unlock()
				return
			}

			capacity := j.Capacity
			if capacity == 0 {
				capacity = DefaultPollCapacity
			}

			samples, err := Measure(m.Driver, j.Kind, j.Params, capacity,
				WithLogger(m.logger.With(slog.String("job", j.Name))))

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				merr.Add(&JobError{Name: j.Name, Err: err})
				if !IsWarning(err) {
					return
				}
			}
			results[j.Name] = samples
		}(job)
	}

	wg.Wait()

	return results, merr.Err()
}
