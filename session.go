package medaq

import (
	"log/slog"

	"github.com/google/uuid"
)

// Session owns one device handle from acquisition to release and enforces
// the order create, configure, open, poll, close, release.
//
// A Session is not safe for concurrent use. Every method blocks on the
// Driver and returns before the caller proceeds; the Session never starts
// goroutines of its own.
type Session struct {
	id     uuid.UUID
	kind   SensorKind
	driver Driver
	handle Handle
	state  State

	// opened is true only while the driver channel is actually open
	opened bool

	logger        *slog.Logger
	maxCapacity   int
	onStateChange func(old, new State)
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for transition and cleanup messages
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxPollCapacity bounds the capacity accepted by Poll
func WithMaxPollCapacity(n int) Option {
	return func(s *Session) {
		s.maxCapacity = n
	}
}

// WithStateHook registers fn to be called synchronously after each state change
func WithStateHook(fn func(old, new State)) Option {
	return func(s *Session) {
		s.onStateChange = fn
	}
}

// WithID overrides the randomly generated session ID
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// New acquires a handle for kind from d and returns a Session in
// StateCreated. When the driver hands out no handle the error wraps
// ErrHandleAcquisitionFailed and there is nothing to release.
func New(d Driver, kind SensorKind, opts ...Option) (*Session, error) {
	if d == nil || !kind.IsKnown() {
		return nil, &OpError{Op: OpCreate, Err: ErrInvalidArgument}
	}

	s := &Session{
		id:          uuid.New(),
		kind:        kind,
		driver:      d,
		logger:      slog.New(slog.DiscardHandler),
		maxCapacity: DefaultMaxPollCapacity,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.maxCapacity < 1 {
		s.maxCapacity = DefaultMaxPollCapacity
	}

	h := d.Acquire(kind)
	if h == 0 {
		s.logger.Debug("sensor acquisition failed", "sensor", kind.String())
		return nil, &OpError{Op: OpCreate, Err: ErrHandleAcquisitionFailed}
	}

	s.handle = h
	s.state = StateCreated
	s.logger = s.logger.With(
		slog.String("session_id", s.id.String()),
		slog.String("sensor", kind.String()),
		slog.Uint64("handle", uint64(h)),
	)
	s.logger.Debug("sensor acquired")

	return s, nil
}

// ID returns the session ID used to correlate log lines and capture files
func (s *Session) ID() uuid.UUID { return s.id }

// Kind returns the sensor kind the session was created for
func (s *Session) Kind() SensorKind { return s.kind }

// State returns the current lifecycle state
func (s *Session) State() State { return s.state }

// Opened reports whether the driver channel is currently open
func (s *Session) Opened() bool { return s.opened }

// Handle returns the device handle. The boolean is false once the session
// is released.
func (s *Session) Handle() (Handle, bool) {
	if !s.state.holdsHandle() || s.handle == 0 {
		return 0, false
	}
	return s.handle, true
}

// Configure applies one parameter. It is legal in StateCreated and
// StateConfigured only. A rejected parameter leaves the state unchanged so
// the caller can retry, substitute or abort.
func (s *Session) Configure(name string, v Value) error {
	if s.state != StateCreated && s.state != StateConfigured {
		return s.stateError(OpConfigure, name)
	}
	if name == "" || !v.IsValid() {
		return &OpError{Op: OpConfigure, Name: name, State: s.state, Err: ErrInvalidParameter}
	}

	var code StatusCode
	switch v.kind {
	case ValueString:
		code = s.driver.SetParameterString(s.handle, name, v.str)
	case ValueInt:
		code = s.driver.SetParameterInt(s.handle, name, v.num)
	}

	if code != StatusOK {
		s.logger.Debug("parameter rejected", "name", name, "value", v.String(), "code", int32(code))
		return &OpError{Op: OpConfigure, Name: name, Code: code, State: s.state, Err: ErrParameterRejected}
	}

	s.logger.Debug("parameter applied", "name", name, "value", v.String())
	s.transition(OpConfigure, StateConfigured)
	return nil
}

// ConfigureString applies a string-valued parameter
func (s *Session) ConfigureString(name, value string) error {
	return s.Configure(name, StringValue(value))
}

// ConfigureInt applies an integer-valued parameter
func (s *Session) ConfigureInt(name string, value int32) error {
	return s.Configure(name, IntValue(value))
}

// Apply configures every parameter of ps in order and stops at the first
// failure, returning it
func (s *Session) Apply(ps ParameterSet) error {
	for _, p := range ps {
		if err := s.Configure(p.Name, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// Open establishes the communication channel. On failure the state is
// unchanged and the handle must still be released.
func (s *Session) Open() error {
	if s.state != StateCreated && s.state != StateConfigured {
		return s.stateError(OpOpen, "")
	}

	if code := s.driver.OpenChannel(s.handle); code != StatusOK {
		s.logger.Debug("open failed", "code", int32(code))
		return &OpError{Op: OpOpen, Code: code, State: s.state, Err: ErrOpenFailed}
	}

	s.opened = true
	s.transition(OpOpen, StateOpen)
	return nil
}

// Poll reads up to capacity samples, earliest first. A failed poll leaves
// the session open; retrying is up to the caller.
func (s *Session) Poll(capacity int) ([]Sample, error) {
	if s.state != StateOpen {
		return nil, s.stateError(OpPoll, "")
	}
	if capacity < 1 || capacity > s.maxCapacity {
		return nil, &OpError{Op: OpPoll, State: s.state, Err: ErrInvalidCapacity}
	}

	buf := make([]Sample, capacity)
	n, err := s.PollInto(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// PollInto reads up to len(buf) samples into buf and returns how many were
// written. It never reports more than len(buf).
func (s *Session) PollInto(buf []Sample) (int, error) {
	if s.state != StateOpen {
		return 0, s.stateError(OpPoll, "")
	}
	if len(buf) < 1 {
		return 0, &OpError{Op: OpPoll, State: s.state, Err: ErrInvalidCapacity}
	}

	n, code := s.driver.Poll(s.handle, buf[:len(buf):len(buf)])
	if code != StatusOK {
		s.logger.Debug("poll failed", "code", int32(code))
		return 0, &OpError{Op: OpPoll, Code: code, State: s.state, Err: ErrPollFailed}
	}

	switch {
	case n < 0:
		n = 0
	case n > len(buf):
		n = len(buf)
	}
	return n, nil
}

// Close tears down the channel. The driver is called only if the channel is
// actually open. A driver failure is returned as ErrCleanupFailed but the
// session is closed regardless. Close on a closed or released session is a
// no-op.
func (s *Session) Close() error {
	if s.state == StateClosed || s.state == StateReleased {
		return nil
	}

	var err error
	if s.opened {
		if code := s.driver.CloseChannel(s.handle); code != StatusOK {
			s.logger.Warn("close reported failure", "code", int32(code))
			err = &OpError{Op: OpClose, Code: code, State: s.state, Err: ErrCleanupFailed}
		}
		s.opened = false
	}

	s.transition(OpClose, StateClosed)
	return err
}

// Release closes the session if needed and gives the handle back to the
// driver. The driver's Release is invoked at most once per handle, however
// often Release is called; calls after the first are no-ops.
func (s *Session) Release() error {
	if s.state == StateReleased {
		return nil
	}

	merr := &MultiError{}
	merr.Add(s.Close())

	h := s.handle
	s.handle = 0
	if h != 0 {
		if code := s.driver.Release(h); code != StatusOK {
			s.logger.Warn("release reported failure", "code", int32(code))
			merr.Add(&OpError{Op: OpRelease, Code: code, State: s.state, Err: ErrCleanupFailed})
		}
	}

	s.transition(OpRelease, StateReleased)

	if len(merr.Errors) == 1 {
		return merr.Errors[0]
	}
	return merr.Err()
}

func (s *Session) transition(op Operation, to State) {
	from := s.state
	if from == to {
		return
	}
	s.state = to
	s.logger.Debug("state transition",
		slog.String("op", op.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
	if s.onStateChange != nil {
		s.onStateChange(from, to)
	}
}

func (s *Session) stateError(op Operation, name string) error {
	return &OpError{Op: op, Name: name, State: s.state, Err: ErrInvalidStateTransition}
}
