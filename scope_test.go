package medaq_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axondata/go-medaq"
	"github.com/axondata/go-medaq/fake"
)

func TestWithReleasesOnSuccess(t *testing.T) {
	drv := fake.New()

	var seen *medaq.Session
	err := medaq.With(drv, medaq.SensorILD1220, func(s *medaq.Session) error {
		seen = s
		return s.Open()
	})
	require.NoError(t, err)
	assert.Equal(t, medaq.StateReleased, seen.State())
	assert.Zero(t, drv.Held())
	assert.Equal(t, 1, drv.Count("CloseChannel", 0))
}

func TestWithReleasesOnError(t *testing.T) {
	drv := fake.New()
	boom := errors.New("boom")

	err := medaq.With(drv, medaq.SensorILD1220, func(*medaq.Session) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, drv.Held())
	assert.Equal(t, 1, drv.Count("Release", 0))
}

func TestWithReleasesOnPanic(t *testing.T) {
	drv := fake.New()

	assert.PanicsWithValue(t, "device on fire", func() {
		_ = medaq.With(drv, medaq.SensorILD1220, func(s *medaq.Session) error {
			_ = s.Open()
			panic("device on fire")
		})
	})
	assert.Zero(t, drv.Held())
	assert.Equal(t, 1, drv.Count("Release", 0))
}

func TestWithAcquisitionFailure(t *testing.T) {
	drv := fake.New()
	drv.Slots = 1
	_ = drv.Acquire(medaq.SensorILD1220)

	called := false
	err := medaq.With(drv, medaq.SensorILD1220, func(*medaq.Session) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, medaq.ErrHandleAcquisitionFailed)
	assert.False(t, called)
	assert.Zero(t, drv.Count("Release", 0))
}

func TestWithAppendsCleanupFailure(t *testing.T) {
	drv := fake.New()
	drv.ReleaseCode = 2
	drv.OpenCode = 7

	err := medaq.With(drv, medaq.SensorILD1220, func(s *medaq.Session) error {
		return s.Open()
	})

	var merr *medaq.MultiError
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)
	assert.ErrorIs(t, merr.Errors[0], medaq.ErrOpenFailed)
	assert.ErrorIs(t, merr.Errors[1], medaq.ErrCleanupFailed)
	assert.False(t, medaq.IsWarning(err))
}

func TestMeasure(t *testing.T) {
	drv := fake.New()
	drv.Samples = fake.Constant(medaq.Sample{Raw: 12345, Scaled: 3.7})

	samples, err := medaq.Measure(drv, medaq.SensorILD1220, medaq.DefaultParameters(), 1)
	require.NoError(t, err)
	assert.Equal(t, []medaq.Sample{{Raw: 12345, Scaled: 3.7}}, samples)

	var methods []string
	for _, c := range drv.Calls() {
		methods = append(methods, c.Method)
	}
	assert.Equal(t, []string{
		"Acquire",
		"SetParameterString",
		"SetParameterInt",
		"SetParameterString",
		"OpenChannel",
		"Poll",
		"CloseChannel",
		"Release",
	}, methods)
	assert.Zero(t, drv.Held())
}

func TestMeasureStopsAtRejectedParameter(t *testing.T) {
	drv := fake.New()
	drv.ParamCodes = map[string]medaq.StatusCode{medaq.ParamPort: 5}

	samples, err := medaq.Measure(drv, medaq.SensorILD1220, medaq.DefaultParameters(), 1)
	assert.Nil(t, samples)
	require.ErrorIs(t, err, medaq.ErrParameterRejected)
	assert.Zero(t, drv.Count("OpenChannel", 0))
	assert.Zero(t, drv.Count("CloseChannel", 0))
	assert.Equal(t, 1, drv.Count("Release", 0))
}

func TestMeasureKeepsSamplesOnCloseWarning(t *testing.T) {
	drv := fake.New()
	drv.CloseCode = 1

	samples, err := medaq.Measure(drv, medaq.SensorILD1220, nil, 2)
	require.Error(t, err)
	assert.True(t, medaq.IsWarning(err))
	assert.Len(t, samples, 2)
}
