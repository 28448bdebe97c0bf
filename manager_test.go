package medaq_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axondata/go-medaq"
	"github.com/axondata/go-medaq/fake"
)

func TestManagerMeasure(t *testing.T) {
	drv := fake.New()
	mgr := medaq.NewManager(drv, medaq.WithConcurrency(2))

	results, err := mgr.Measure(context.Background(),
		medaq.Job{Name: "left", Kind: medaq.SensorILD1220, Params: medaq.DefaultParameters(), Capacity: 3},
		medaq.Job{Name: "right", Kind: medaq.SensorILD1220, Capacity: 1},
		medaq.Job{Name: "default", Kind: medaq.SensorILD1220},
	)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Len(t, results["left"], 3)
	assert.Len(t, results["right"], 1)
	assert.Len(t, results["default"], medaq.DefaultPollCapacity)

	assert.Zero(t, drv.Held())
	assert.Equal(t, 3, drv.Count("Release", 0))
}

func TestManagerEmptyJobs(t *testing.T) {
	mgr := medaq.NewManager(fake.New())

	results, err := mgr.Measure(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestManagerReportsFailures(t *testing.T) {
	drv := fake.New()
	drv.ParamCodes = map[string]medaq.StatusCode{"Averaging": 5}
	mgr := medaq.NewManager(drv)

	results, err := mgr.Measure(context.Background(),
		medaq.Job{Name: "ok", Kind: medaq.SensorILD1220},
		medaq.Job{Name: "bad", Kind: medaq.SensorILD1220, Params: medaq.ParameterSet{}.Add("Averaging", medaq.IntValue(4))},
	)
	require.Error(t, err)
	assert.Contains(t, results, "ok")
	assert.NotContains(t, results, "bad")

	var merr *medaq.MultiError
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 1)

	var jobErr *medaq.JobError
	require.ErrorAs(t, merr.Errors[0], &jobErr)
	assert.Equal(t, "bad", jobErr.Name)
	assert.ErrorIs(t, jobErr, medaq.ErrParameterRejected)
	assert.Zero(t, drv.Held())
}

func TestManagerKeepsSamplesOnWarning(t *testing.T) {
	drv := fake.New()
	drv.ReleaseCode = 3
	mgr := medaq.NewManager(drv)

	results, err := mgr.Measure(context.Background(), medaq.Job{Name: "a", Kind: medaq.SensorILD1220, Capacity: 2})
	require.Error(t, err)
	assert.True(t, medaq.IsWarning(err))
	assert.Len(t, results["a"], 2)
}

// countingDriver tracks how many handles are held at once
type countingDriver struct {
	*fake.Driver
	held atomic.Int32
	peak atomic.Int32
}

func (d *countingDriver) Acquire(kind medaq.SensorKind) medaq.Handle {
	h := d.Driver.Acquire(kind)
	if h != 0 {
		n := d.held.Add(1)
		for {
			p := d.peak.Load()
			if n <= p || d.peak.CompareAndSwap(p, n) {
				break
			}
		}
	}
	return h
}

func (d *countingDriver) Poll(h medaq.Handle, buf []medaq.Sample) (int, medaq.StatusCode) {
	time.Sleep(5 * time.Millisecond)
	return d.Driver.Poll(h, buf)
}

func (d *countingDriver) Release(h medaq.Handle) medaq.StatusCode {
	d.held.Add(-1)
	return d.Driver.Release(h)
}

func TestManagerConcurrency(t *testing.T) {
	drv := &countingDriver{Driver: fake.New()}
	mgr := medaq.NewManager(drv, medaq.WithConcurrency(3))

	jobs := make([]medaq.Job, 10)
	for i := range jobs {
		jobs[i] = medaq.Job{Name: fmt.Sprintf("sensor%d", i), Kind: medaq.SensorILD1220}
	}

	results, err := mgr.Measure(context.Background(), jobs...)
	require.NoError(t, err)
	assert.Len(t, results, 10)
	assert.LessOrEqual(t, drv.peak.Load(), int32(3))
	assert.Zero(t, drv.Held())
}

func TestManagerSlotsExhausted(t *testing.T) {
	drv := fake.New()
	drv.Slots = 1
	mgr := medaq.NewManager(drv, medaq.WithConcurrency(1))

	results, err := mgr.Measure(context.Background(),
		medaq.Job{Name: "a", Kind: medaq.SensorILD1220},
		medaq.Job{Name: "b", Kind: medaq.SensorILD1220},
	)
	require.NoError(t, err, "sequential jobs reuse the single slot")
	assert.Len(t, results, 2)
}

func TestManagerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	drv := fake.New()
	mgr := medaq.NewManager(drv, medaq.WithConcurrency(1))

	results, err := mgr.Measure(ctx,
		medaq.Job{Name: "a", Kind: medaq.SensorILD1220},
		medaq.Job{Name: "b", Kind: medaq.SensorILD1220},
	)
	require.Error(t, err)
	assert.Empty(t, results)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, drv.Count("Acquire", 0))
}

func TestManagerCancelWhileRunning(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	drv := &blockingDriver{Driver: fake.New(), started: make(chan struct{}), unblock: make(chan struct{})}
	mgr := medaq.NewManager(drv, medaq.WithConcurrency(1))

	go func() {
		<-drv.started
		cancel()
		close(drv.unblock)
	}()

	results, err := mgr.Measure(ctx,
		medaq.Job{Name: "first", Kind: medaq.SensorILD1220},
		medaq.Job{Name: "second", Kind: medaq.SensorILD1220},
		medaq.Job{Name: "third", Kind: medaq.SensorILD1220},
	)
	require.Error(t, err)

	// Exactly one job ran to completion; the others never acquired a handle.
	assert.Len(t, results, 1)
	assert.Equal(t, 1, drv.Count("Acquire", 0))
	assert.Zero(t, drv.Held())
}

// blockingDriver holds the first poll until unblock is closed
type blockingDriver struct {
	*fake.Driver
	started chan struct{}
	unblock chan struct{}
	once    sync.Once
}

func (d *blockingDriver) Poll(h medaq.Handle, buf []medaq.Sample) (int, medaq.StatusCode) {
	d.once.Do(func() { close(d.started) })
	<-d.unblock
	return d.Driver.Poll(h, buf)
}

func TestNewManagerDefaults(t *testing.T) {
	mgr := medaq.NewManager(fake.New(), medaq.WithConcurrency(0), medaq.WithManagerLogger(nil))
	assert.Equal(t, 1, mgr.Concurrency)

	mgr = medaq.NewManager(fake.New())
	assert.Equal(t, medaq.DefaultConcurrency, mgr.Concurrency)
}
