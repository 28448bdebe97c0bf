// Package fake provides an in-memory medaq.Driver for tests, examples and
// the CLI's simulation mode. It hands out sequential handles from a fixed
// number of slots, records every call, and lets callers inject status codes
// per operation.
package fake

import (
	"fmt"
	"sync"

	"github.com/axondata/go-medaq"
)

// Status codes returned when the driver is misused. They mimic a vendor
// library refusing a call rather than panicking.
const (
	// CodeInvalidHandle is returned for a handle that is not held
	CodeInvalidHandle medaq.StatusCode = -1
	// CodeAlreadyOpen is returned by OpenChannel on an open channel
	CodeAlreadyOpen medaq.StatusCode = -2
	// CodeNotOpen is returned by Poll on a closed channel
	CodeNotOpen medaq.StatusCode = -3
)

// Call records one driver invocation
type Call struct {
	// Method is the Driver method name, e.g. "OpenChannel"
	Method string
	// Handle is the handle passed, zero for Acquire
	Handle medaq.Handle
	// Name is the parameter name for SetParameter calls
	Name string
	// Value is the parameter value for SetParameter calls
	Value medaq.Value
	// Capacity is len(buf) for Poll calls
	Capacity int
}

// String formats a call for test failure messages
func (c Call) String() string {
	switch c.Method {
	case "SetParameterString", "SetParameterInt":
		return fmt.Sprintf("%s(%d, %s=%s)", c.Method, c.Handle, c.Name, c.Value)
	case "Poll":
		return fmt.Sprintf("Poll(%d, %d)", c.Handle, c.Capacity)
	case "Acquire":
		return "Acquire()"
	default:
		return fmt.Sprintf("%s(%d)", c.Method, c.Handle)
	}
}

// SampleFunc produces the n-th sample (counting from zero) for a handle
type SampleFunc func(h medaq.Handle, n int) medaq.Sample

// Driver is a thread-safe in-memory medaq.Driver
type Driver struct {
	// Slots is the number of handles that may be held at once; zero means
	// unlimited
	Slots int
	// FirstHandle is the first handle handed out; zero means 1
	FirstHandle medaq.Handle

	// ParamCodes maps a parameter name to the status returned when it is set
	ParamCodes map[string]medaq.StatusCode
	// OpenCode, PollCode, CloseCode and ReleaseCode are returned by the
	// corresponding calls
	OpenCode    medaq.StatusCode
	PollCode    medaq.StatusCode
	CloseCode   medaq.StatusCode
	ReleaseCode medaq.StatusCode

	// Available, when positive, limits how many samples a poll returns
	Available int
	// Starved makes polls succeed without returning samples
	Starved bool
	// Samples generates readings; nil uses Ramp
	Samples SampleFunc

	mu      sync.Mutex
	next    medaq.Handle
	held    map[medaq.Handle]*device
	calls   []Call
	handles []medaq.Handle
}

type device struct {
	kind   medaq.SensorKind
	params map[string]medaq.Value
	open   bool
	polled int
}

// New returns a driver with unlimited slots and full-capacity polls.
// The zero Driver is equally usable.
func New() *Driver {
	return &Driver{}
}

// Ramp is the default SampleFunc: raw values count up from 1000 and the
// scaled value is raw/1000 millimetres
func Ramp(_ medaq.Handle, n int) medaq.Sample {
	raw := int32(1000 + n)
	return medaq.Sample{Raw: raw, Scaled: float64(raw) / 1000}
}

// Constant returns a SampleFunc that always yields s
func Constant(s medaq.Sample) SampleFunc {
	return func(medaq.Handle, int) medaq.Sample { return s }
}

func (d *Driver) record(c Call) {
	d.calls = append(d.calls, c)
}

func (d *Driver) lookup(h medaq.Handle) (*device, bool) {
	if d.held == nil {
		return nil, false
	}
	dev, ok := d.held[h]
	return dev, ok
}

// Acquire hands out the next handle, or 0 when all slots are taken or the
// kind is unknown
func (d *Driver) Acquire(kind medaq.SensorKind) medaq.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.record(Call{Method: "Acquire"})

	if !kind.IsKnown() {
		return 0
	}
	if d.Slots > 0 && len(d.held) >= d.Slots {
		return 0
	}

	if d.next == 0 {
		d.next = d.FirstHandle
		if d.next == 0 {
			d.next = 1
		}
	}
	h := d.next
	d.next++

	if d.held == nil {
		d.held = make(map[medaq.Handle]*device)
	}
	d.held[h] = &device{kind: kind, params: make(map[string]medaq.Value)}
	d.handles = append(d.handles, h)
	return h
}

// SetParameterString stores a string parameter
func (d *Driver) SetParameterString(h medaq.Handle, name, value string) medaq.StatusCode {
	return d.setParam(h, "SetParameterString", name, medaq.StringValue(value))
}

// SetParameterInt stores an integer parameter
func (d *Driver) SetParameterInt(h medaq.Handle, name string, value int32) medaq.StatusCode {
	return d.setParam(h, "SetParameterInt", name, medaq.IntValue(value))
}

func (d *Driver) setParam(h medaq.Handle, method, name string, v medaq.Value) medaq.StatusCode {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.record(Call{Method: method, Handle: h, Name: name, Value: v})

	dev, ok := d.lookup(h)
	if !ok {
		return CodeInvalidHandle
	}
	if code := d.ParamCodes[name]; code != medaq.StatusOK {
		return code
	}
	dev.params[name] = v
	return medaq.StatusOK
}

// OpenChannel marks the device open
func (d *Driver) OpenChannel(h medaq.Handle) medaq.StatusCode {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.record(Call{Method: "OpenChannel", Handle: h})

	dev, ok := d.lookup(h)
	if !ok {
		return CodeInvalidHandle
	}
	if dev.open {
		return CodeAlreadyOpen
	}
	if d.OpenCode != medaq.StatusOK {
		return d.OpenCode
	}
	dev.open = true
	return medaq.StatusOK
}

// Poll fills buf from the sample generator
func (d *Driver) Poll(h medaq.Handle, buf []medaq.Sample) (int, medaq.StatusCode) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.record(Call{Method: "Poll", Handle: h, Capacity: len(buf)})

	dev, ok := d.lookup(h)
	if !ok {
		return 0, CodeInvalidHandle
	}
	if !dev.open {
		return 0, CodeNotOpen
	}
	if d.PollCode != medaq.StatusOK {
		return 0, d.PollCode
	}

	n := len(buf)
	if d.Available > 0 && d.Available < n {
		n = d.Available
	}
	if d.Starved {
		n = 0
	}

	gen := d.Samples
	if gen == nil {
		gen = Ramp
	}
	for i := 0; i < n; i++ {
		buf[i] = gen(h, dev.polled)
		dev.polled++
	}
	return n, medaq.StatusOK
}

// CloseChannel marks the device closed. Closing a channel that is not open
// succeeds, as the vendor contract allows.
func (d *Driver) CloseChannel(h medaq.Handle) medaq.StatusCode {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.record(Call{Method: "CloseChannel", Handle: h})

	dev, ok := d.lookup(h)
	if !ok {
		return CodeInvalidHandle
	}
	dev.open = false
	return d.CloseCode
}

// Release frees the slot held by h. The slot is freed even when
// ReleaseCode reports a failure.
func (d *Driver) Release(h medaq.Handle) medaq.StatusCode {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.record(Call{Method: "Release", Handle: h})

	if _, ok := d.lookup(h); !ok {
		return CodeInvalidHandle
	}
	delete(d.held, h)
	return d.ReleaseCode
}

// Calls returns a copy of every recorded call in order
func (d *Driver) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Call, len(d.calls))
	copy(out, d.calls)
	return out
}

// Count returns how many times method was called, optionally restricted to
// one handle (zero matches all)
func (d *Driver) Count(method string, h medaq.Handle) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for _, c := range d.calls {
		if c.Method == method && (h == 0 || c.Handle == h) {
			n++
		}
	}
	return n
}

// Held returns the number of handles currently acquired and not released
func (d *Driver) Held() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.held)
}

// Handles returns every handle ever handed out, in order
func (d *Driver) Handles() []medaq.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]medaq.Handle, len(d.handles))
	copy(out, d.handles)
	return out
}

// Param returns the last accepted value of a parameter on a held handle
func (d *Driver) Param(h medaq.Handle, name string) (medaq.Value, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	dev, ok := d.lookup(h)
	if !ok {
		return medaq.Value{}, false
	}
	v, ok := dev.params[name]
	return v, ok
}

// Compile-time interface satisfaction check.
var _ medaq.Driver = (*Driver)(nil)
