package medaq

import (
	"fmt"
	"strconv"
)

// Driver is the device-access layer a Session drives. Each method maps to
// one vendor call and reports its outcome as a raw StatusCode; the Session
// turns those into typed errors.
//
// A Driver used by a single Session needs no locking. A Driver shared by a
// Manager must be safe for concurrent use across distinct handles.
type Driver interface {
	// Acquire claims a device of the given kind. It returns 0 on failure.
	Acquire(kind SensorKind) Handle

	// SetParameterString applies a string-valued parameter
	SetParameterString(h Handle, name, value string) StatusCode

	// SetParameterInt applies an integer-valued parameter
	SetParameterInt(h Handle, name string, value int32) StatusCode

	// OpenChannel establishes the communication channel.
	// It must not be called twice without CloseChannel in between.
	OpenChannel(h Handle) StatusCode

	// Poll fills buf with up to len(buf) samples, earliest first, and
	// returns how many it wrote
	Poll(h Handle, buf []Sample) (int, StatusCode)

	// CloseChannel tears down the communication channel
	CloseChannel(h Handle) StatusCode

	// Release gives the handle back. It must be called exactly once per handle.
	Release(h Handle) StatusCode
}

// Sample is one measurement reading
type Sample struct {
	// Raw is the unscaled value as reported by the sensor
	Raw int32 `cbor:"1,keyasint" json:"raw"`
	// Scaled is the value converted to engineering units by the driver
	Scaled float64 `cbor:"2,keyasint" json:"scaled"`
}

// ValueKind tells which alternative a Value holds
type ValueKind int

const (
	// ValueInvalid is the zero ValueKind
	ValueInvalid ValueKind = iota
	// ValueString holds a string
	ValueString
	// ValueInt holds a 32-bit signed integer
	ValueInt
)

// Value is a parameter value: either a string or a 32-bit integer.
// The zero Value is invalid and is rejected by Configure.
type Value struct {
	kind ValueKind
	str  string
	num  int32
}

// StringValue returns a string-valued Value
func StringValue(s string) Value {
	return Value{kind: ValueString, str: s}
}

// IntValue returns an integer-valued Value
func IntValue(n int32) Value {
	return Value{kind: ValueInt, num: n}
}

// Kind returns which alternative v holds
func (v Value) Kind() ValueKind { return v.kind }

// Str returns the string alternative and whether v holds one
func (v Value) Str() (string, bool) { return v.str, v.kind == ValueString }

// Int returns the integer alternative and whether v holds one
func (v Value) Int() (int32, bool) { return v.num, v.kind == ValueInt }

// IsValid reports whether v was built by StringValue or IntValue
func (v Value) IsValid() bool {
	return v.kind == ValueString || v.kind == ValueInt
}

// String formats v for logs
func (v Value) String() string {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueInt:
		return strconv.FormatInt(int64(v.num), 10)
	default:
		return "<invalid>"
	}
}

// Parameter is one named configuration value
type Parameter struct {
	Name  string
	Value Value
}

// String formats p as name=value
func (p Parameter) String() string {
	return fmt.Sprintf("%s=%s", p.Name, p.Value)
}

// ParameterSet is an ordered list of parameters, applied first to last
type ParameterSet []Parameter

// Add appends a parameter and returns the extended set
func (ps ParameterSet) Add(name string, v Value) ParameterSet {
	return append(ps, Parameter{Name: name, Value: v})
}

// DefaultParameters returns the Port, BaudRate, Interface sequence used by
// serial ILD sensors with the package defaults
func DefaultParameters() ParameterSet {
	return ParameterSet{
		{Name: ParamPort, Value: StringValue(DefaultPort)},
		{Name: ParamBaudRate, Value: IntValue(DefaultBaudRate)},
		{Name: ParamInterface, Value: StringValue(DefaultInterface)},
	}
}
