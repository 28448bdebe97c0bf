package medaq

import (
	"errors"
	"fmt"
	"testing"
)

func TestOpErrorMessage(t *testing.T) {
	tests := []struct {
		err  *OpError
		want string
	}{
		{
			err:  &OpError{Op: OpConfigure, Name: "Port", Code: 5, State: StateCreated, Err: ErrParameterRejected},
			want: `configure "Port": medaq: parameter rejected (code 5)`,
		},
		{
			err:  &OpError{Op: OpOpen, Code: 7, State: StateConfigured, Err: ErrOpenFailed},
			want: "open: medaq: open failed (code 7)",
		},
		{
			err:  &OpError{Op: OpPoll, State: StateCreated, Err: ErrInvalidStateTransition},
			want: "poll: medaq: invalid state transition in state created",
		},
		{
			err:  &OpError{Op: OpCreate, Err: ErrHandleAcquisitionFailed},
			want: "create: medaq: handle acquisition failed",
		},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestOpErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("measuring: %w", &OpError{Op: OpPoll, Code: 3, Err: ErrPollFailed})

	if !errors.Is(err, ErrPollFailed) {
		t.Error("errors.Is(err, ErrPollFailed) = false")
	}
	if errors.Is(err, ErrOpenFailed) {
		t.Error("errors.Is(err, ErrOpenFailed) = true")
	}

	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatal("errors.As failed")
	}
	if opErr.Op != OpPoll {
		t.Errorf("Op = %v, want %v", opErr.Op, OpPoll)
	}
}

func TestMultiError(t *testing.T) {
	merr := &MultiError{}

	if err := merr.Err(); err != nil {
		t.Error("empty MultiError should return nil")
	}

	merr.Add(nil)
	if err := merr.Err(); err != nil {
		t.Error("MultiError with nil errors should return nil")
	}

	err1 := &OpError{Op: OpOpen, Code: 7, Err: ErrOpenFailed}
	merr.Add(err1)

	if err := merr.Err(); err == nil {
		t.Error("MultiError with errors should return non-nil")
	}

	if merr.Error() != err1.Error() {
		t.Errorf("single error message = %v, want %v", merr.Error(), err1.Error())
	}

	err2 := &OpError{Op: OpRelease, Code: 2, Err: ErrCleanupFailed}
	merr.Add(err2)

	want := "2 errors occurred: open: medaq: open failed (code 7); release: medaq: cleanup failed (code 2)"
	if merr.Error() != want {
		t.Errorf("multiple errors message = %v, want %v", merr.Error(), want)
	}

	if !errors.Is(merr, ErrOpenFailed) || !errors.Is(merr, ErrCleanupFailed) {
		t.Error("MultiError should match every member with errors.Is")
	}
}

func TestIsWarning(t *testing.T) {
	cleanup := &OpError{Op: OpClose, Code: 1, Err: ErrCleanupFailed}
	failure := &OpError{Op: OpPoll, Code: 3, Err: ErrPollFailed}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"cleanup", cleanup, true},
		{"wrapped cleanup", fmt.Errorf("job: %w", cleanup), true},
		{"failure", failure, false},
		{"all cleanup", &MultiError{Errors: []error{cleanup, cleanup}}, true},
		{"mixed", &MultiError{Errors: []error{failure, cleanup}}, false},
		{"empty multi", &MultiError{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWarning(tt.err); got != tt.want {
				t.Errorf("IsWarning() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	if code, ok := StatusOf(&OpError{Op: OpOpen, Code: 7, Err: ErrOpenFailed}); !ok || code != 7 {
		t.Errorf("StatusOf() = %d, %v, want 7, true", code, ok)
	}
	if _, ok := StatusOf(&OpError{Op: OpPoll, Err: ErrInvalidStateTransition}); ok {
		t.Error("StatusOf() reported a code for an error without a driver call")
	}
	if _, ok := StatusOf(errors.New("plain")); ok {
		t.Error("StatusOf() reported a code for a plain error")
	}
}
