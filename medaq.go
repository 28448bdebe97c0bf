package medaq

import (
	"fmt"
	"strings"
	"time"
)

// Well-known parameter names understood by the serial sensor families
const (
	// ParamPort selects the serial port the sensor is attached to (e.g. "COM3")
	ParamPort = "Port"

	// ParamBaudRate selects the link speed in bits per second
	ParamBaudRate = "BaudRate"

	// ParamInterface selects the physical interface (e.g. "RS422")
	ParamInterface = "Interface"
)

// Defaults for the canonical measurement sequence
const (
	// DefaultPort is the port used when none is configured
	DefaultPort = "COM3"

	// DefaultBaudRate is the ILD1220 factory baud rate
	DefaultBaudRate = 115200

	// DefaultInterface is the ILD1220 serial interface
	DefaultInterface = "RS422"

	// DefaultPollCapacity is the number of samples requested per poll
	DefaultPollCapacity = 1

	// DefaultMaxPollCapacity bounds the capacity accepted by a single poll
	DefaultMaxPollCapacity = 65536

	// DefaultStreamInterval is the delay between polls of a Stream
	DefaultStreamInterval = 100 * time.Millisecond

	// DefaultStreamGrace is how long a stopping Stream waits for an in-flight poll
	DefaultStreamGrace = 100 * time.Millisecond

	// DefaultConcurrency is the default number of sessions a Manager drives at once
	DefaultConcurrency = 10
)

// Handle is an opaque token for an exclusively claimed device instance.
// The zero Handle is never valid.
type Handle uint32

// StatusCode is a raw status returned by a Driver call.
type StatusCode int32

// StatusOK is the only successful StatusCode.
const StatusOK StatusCode = 0

// SensorKind selects the class of sensor a Session is created for
type SensorKind int

const (
	// SensorUnknown is the zero SensorKind and is never acquirable
	SensorUnknown SensorKind = iota
	// SensorILD1220 is the optoNCDT ILD1220 laser triangulation sensor
	SensorILD1220
)

// SensorKind string constants
const (
	sensorUnknownStr = "unknown"
	sensorILD1220Str = "ILD1220"
)

// String returns the model name of the sensor kind
func (k SensorKind) String() string {
	switch k {
	case SensorILD1220:
		return sensorILD1220Str
	case SensorUnknown:
		fallthrough
	default:
		return sensorUnknownStr
	}
}

// IsKnown reports whether k names an acquirable sensor
func (k SensorKind) IsKnown() bool {
	return k == SensorILD1220
}

// ParseSensorKind resolves a model name, ignoring case.
func ParseSensorKind(s string) (SensorKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case strings.ToUpper(sensorILD1220Str):
		return SensorILD1220, nil
	default:
		return SensorUnknown, fmt.Errorf("%w: unknown sensor kind %q", ErrInvalidArgument, s)
	}
}

// State is the lifecycle position of a Session
type State int

const (
	// StateCreated means a handle is held and nothing has been applied yet
	StateCreated State = iota
	// StateConfigured means at least one parameter was accepted
	StateConfigured
	// StateOpen means the communication channel is established
	StateOpen
	// StateClosed means the channel is torn down but the handle is still held
	StateClosed
	// StateReleased means the handle is gone; no further operation is legal
	StateReleased
)

// State string constants
const (
	stateCreatedStr    = "created"
	stateConfiguredStr = "configured"
	stateOpenStr       = "open"
	stateClosedStr     = "closed"
	stateReleasedStr   = "released"
	stateUnknownStr    = "unknown"
)

// String returns the string representation of a State
func (s State) String() string {
	switch s {
	case StateCreated:
		return stateCreatedStr
	case StateConfigured:
		return stateConfiguredStr
	case StateOpen:
		return stateOpenStr
	case StateClosed:
		return stateClosedStr
	case StateReleased:
		return stateReleasedStr
	default:
		return stateUnknownStr
	}
}

// holdsHandle reports whether a session in this state still owns its handle
func (s State) holdsHandle() bool {
	return s >= StateCreated && s < StateReleased
}

// Operation identifies a Session operation in errors and logs
type Operation int

const (
	// OpUnknown represents an unknown operation
	OpUnknown Operation = iota
	// OpCreate acquires the device handle
	OpCreate
	// OpConfigure applies one parameter
	OpConfigure
	// OpOpen establishes the communication channel
	OpOpen
	// OpPoll reads samples
	OpPoll
	// OpClose tears down the channel
	OpClose
	// OpRelease gives the handle back to the driver
	OpRelease
)

// Operation string constants
const (
	opUnknownStr   = "unknown"
	opCreateStr    = "create"
	opConfigureStr = "configure"
	opOpenStr      = "open"
	opPollStr      = "poll"
	opCloseStr     = "close"
	opReleaseStr   = "release"
)

// String returns the string representation of an Operation
func (op Operation) String() string {
	switch op {
	case OpCreate:
		return opCreateStr
	case OpConfigure:
		return opConfigureStr
	case OpOpen:
		return opOpenStr
	case OpPoll:
		return opPollStr
	case OpClose:
		return opCloseStr
	case OpRelease:
		return opReleaseStr
	default:
		return opUnknownStr
	}
}
