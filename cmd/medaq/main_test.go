package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axondata/go-medaq"
	"github.com/axondata/go-medaq/capture"
	"github.com/axondata/go-medaq/fake"
	"github.com/axondata/go-medaq/profile"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRunSimulated(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), config{simulate: true, count: 2}, &out, discard())
	require.NoError(t, err)
	assert.Equal(t, "Raw Data: 1000 | Scaled Data: 1 mm\nRaw Data: 1001 | Scaled Data: 1.001 mm\n", out.String())
}

func TestRunWithProfileAndCapture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sensor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: bench
sensor: ILD1220
capacity: 3
parameters:
  - name: Port
    value: COM3
`), 0o644))
	capturePath := filepath.Join(dir, "out.cbor")

	var out bytes.Buffer
	cfg := config{profilePath: path, simulate: true, capturePath: capturePath}
	require.NoError(t, run(context.Background(), cfg, &out, discard()))

	rec, err := capture.ReadFile(capturePath)
	require.NoError(t, err)
	assert.Equal(t, "bench", rec.Profile)
	assert.Len(t, rec.Samples, 3)
}

func TestOverride(t *testing.T) {
	cfg := config{port: "COM7", baud: 921600, iface: "RS485", count: 5}
	p := cfg.override(profile.Default())

	v, _ := p.Get(medaq.ParamPort)
	assert.Equal(t, "COM7", v.String())
	v, _ = p.Get(medaq.ParamBaudRate)
	assert.Equal(t, "921600", v.String())
	v, _ = p.Get(medaq.ParamInterface)
	assert.Equal(t, "RS485", v.String())
	assert.Equal(t, 5, p.Capacity)
	assert.Len(t, p.Parameters, 3)
}

func TestMeasureReportsFailure(t *testing.T) {
	drv := fake.New()
	drv.OpenCode = 7

	var out bytes.Buffer
	err := measure(drv, profile.Default(), "", &out, discard())
	require.ErrorIs(t, err, medaq.ErrOpenFailed)
	assert.Empty(t, out.String())
	assert.Zero(t, drv.Held())
}

func TestMeasureTreatsCleanupAsWarning(t *testing.T) {
	drv := fake.New()
	drv.ReleaseCode = 2

	var out bytes.Buffer
	require.NoError(t, measure(drv, profile.Default(), "", &out, discard()))
	assert.Contains(t, out.String(), "Raw Data: 1000")
}

func TestWatchRequiresProfile(t *testing.T) {
	err := run(context.Background(), config{simulate: true, watch: true}, &bytes.Buffer{}, discard())
	assert.Error(t, err)
}
