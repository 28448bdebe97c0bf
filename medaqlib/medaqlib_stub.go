//go:build !windows

package medaqlib

import "github.com/axondata/go-medaq"

// Library is a loaded MEDAQLib DLL (stub for non-Windows)
type Library struct{}

// Load always fails with ErrUnsupported (stub for non-Windows)
func Load(_ string) (*Library, error) {
	return nil, ErrUnsupported
}

// Path returns the empty string (stub for non-Windows)
func (l *Library) Path() string { return "" }

// Acquire never hands out a handle (stub for non-Windows)
func (l *Library) Acquire(_ medaq.SensorKind) medaq.Handle { return 0 }

// SetParameterString fails with CodeUnsupported (stub for non-Windows)
func (l *Library) SetParameterString(_ medaq.Handle, _, _ string) medaq.StatusCode {
	return CodeUnsupported
}

// SetParameterInt fails with CodeUnsupported (stub for non-Windows)
func (l *Library) SetParameterInt(_ medaq.Handle, _ string, _ int32) medaq.StatusCode {
	return CodeUnsupported
}

// OpenChannel fails with CodeUnsupported (stub for non-Windows)
func (l *Library) OpenChannel(_ medaq.Handle) medaq.StatusCode { return CodeUnsupported }

// Poll fails with CodeUnsupported (stub for non-Windows)
func (l *Library) Poll(_ medaq.Handle, _ []medaq.Sample) (int, medaq.StatusCode) {
	return 0, CodeUnsupported
}

// CloseChannel fails with CodeUnsupported (stub for non-Windows)
func (l *Library) CloseChannel(_ medaq.Handle) medaq.StatusCode { return CodeUnsupported }

// Release fails with CodeUnsupported (stub for non-Windows)
func (l *Library) Release(_ medaq.Handle) medaq.StatusCode { return CodeUnsupported }

// Compile-time interface satisfaction check.
var _ medaq.Driver = (*Library)(nil)
