package medaq

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds returned by Session operations. Match them with errors.Is;
// use errors.As with *OpError to get at the status code.
var (
	// ErrHandleAcquisitionFailed indicates the driver returned no handle
	ErrHandleAcquisitionFailed = errors.New("medaq: handle acquisition failed")

	// ErrInvalidStateTransition indicates an operation was called out of order
	ErrInvalidStateTransition = errors.New("medaq: invalid state transition")

	// ErrParameterRejected indicates the device refused a configuration value
	ErrParameterRejected = errors.New("medaq: parameter rejected")

	// ErrOpenFailed indicates the communication channel could not be established
	ErrOpenFailed = errors.New("medaq: open failed")

	// ErrPollFailed indicates a single poll attempt failed
	ErrPollFailed = errors.New("medaq: poll failed")

	// ErrCleanupFailed indicates close or release reported a non-zero status.
	// The session still advanced; treat it as a warning.
	ErrCleanupFailed = errors.New("medaq: cleanup failed")

	// ErrInvalidParameter indicates an empty parameter name or an unset Value
	ErrInvalidParameter = errors.New("medaq: invalid parameter")

	// ErrInvalidCapacity indicates a poll capacity outside the accepted range
	ErrInvalidCapacity = errors.New("medaq: invalid poll capacity")

	// ErrInvalidArgument indicates a nil driver or an unknown sensor kind
	ErrInvalidArgument = errors.New("medaq: invalid argument")
)

// OpError represents an error from a Session operation
type OpError struct {
	// Op is the operation that failed
	Op Operation
	// Name is the parameter name for configure errors
	Name string
	// Code is the driver status, StatusOK when no driver call was made
	Code StatusCode
	// State is the session state when the operation was attempted
	State State
	// Err is one of the Err* kinds
	Err error
}

// Error returns a formatted error message
func (e *OpError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op.String())
	if e.Name != "" {
		fmt.Fprintf(&b, " %q", e.Name)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	if e.Code != StatusOK {
		fmt.Fprintf(&b, " (code %d)", e.Code)
	}
	if errors.Is(e.Err, ErrInvalidStateTransition) {
		fmt.Fprintf(&b, " in state %s", e.State)
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain inspection
func (e *OpError) Unwrap() error {
	return e.Err
}

// MultiError aggregates multiple errors, e.g. a failed step followed by a
// failed cleanup
type MultiError struct {
	// Errors contains all accumulated errors
	Errors []error
}

// Error returns a summary of the accumulated errors
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}
	msgs := make([]string, len(m.Errors))
	for i, err := range m.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors occurred: %s", len(m.Errors), strings.Join(msgs, "; "))
}

// Add appends an error to the collection if it's not nil
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Err returns nil if no errors occurred, otherwise returns the MultiError itself
func (m *MultiError) Err() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}

// Unwrap exposes the accumulated errors to errors.Is and errors.As
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// IsWarning reports whether err consists only of cleanup warnings.
// A nil error is not a warning.
func IsWarning(err error) bool {
	if err == nil {
		return false
	}
	var merr *MultiError
	if errors.As(err, &merr) && len(merr.Errors) > 0 {
		for _, e := range merr.Errors {
			if !IsWarning(e) {
				return false
			}
		}
		return true
	}
	return errors.Is(err, ErrCleanupFailed)
}

// StatusOf returns the driver status code carried by err, if any
func StatusOf(err error) (StatusCode, bool) {
	var opErr *OpError
	if errors.As(err, &opErr) && opErr.Code != StatusOK {
		return opErr.Code, true
	}
	return StatusOK, false
}
