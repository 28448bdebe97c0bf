//go:build windows

package medaqlib

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/axondata/go-medaq"
)

// Library is a loaded MEDAQLib DLL. It is safe for concurrent use across
// distinct handles to the extent MEDAQLib itself is.
type Library struct {
	dll *windows.LazyDLL

	createSensorInstance  *windows.LazyProc
	releaseSensorInstance *windows.LazyProc
	setParameterString    *windows.LazyProc
	setParameterInt       *windows.LazyProc
	openSensor            *windows.LazyProc
	closeSensor           *windows.LazyProc
	poll                  *windows.LazyProc
}

// Load loads the DLL at path (DefaultLibraryName when empty) and resolves
// every entry point the Driver needs
func Load(path string) (*Library, error) {
	if path == "" {
		path = DefaultLibraryName
	}

	dll := windows.NewLazyDLL(path)
	if err := dll.Load(); err != nil {
		return nil, fmt.Errorf("medaqlib: loading %s: %w", path, err)
	}

	l := &Library{
		dll:                   dll,
		createSensorInstance:  dll.NewProc("CreateSensorInstance"),
		releaseSensorInstance: dll.NewProc("ReleaseSensorInstance"),
		setParameterString:    dll.NewProc("SetParameterString"),
		setParameterInt:       dll.NewProc("SetParameterInt"),
		openSensor:            dll.NewProc("OpenSensor"),
		closeSensor:           dll.NewProc("CloseSensor"),
		poll:                  dll.NewProc("Poll"),
	}

	for _, p := range []*windows.LazyProc{
		l.createSensorInstance,
		l.releaseSensorInstance,
		l.setParameterString,
		l.setParameterInt,
		l.openSensor,
		l.closeSensor,
		l.poll,
	} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("medaqlib: %s: %w", p.Name, err)
		}
	}

	return l, nil
}

// Path returns the DLL name or path the library was loaded from
func (l *Library) Path() string {
	return l.dll.Name
}

func status(r uintptr) medaq.StatusCode {
	return medaq.StatusCode(int32(r))
}

// Acquire calls CreateSensorInstance
func (l *Library) Acquire(kind medaq.SensorKind) medaq.Handle {
	code, ok := SensorCode(kind)
	if !ok {
		return 0
	}
	r, _, _ := l.createSensorInstance.Call(uintptr(code))
	return medaq.Handle(uint32(r))
}

// SetParameterString calls SetParameterString
func (l *Library) SetParameterString(h medaq.Handle, name, value string) medaq.StatusCode {
	n, err := windows.BytePtrFromString(name)
	if err != nil {
		return CodeInvalidArgument
	}
	v, err := windows.BytePtrFromString(value)
	if err != nil {
		return CodeInvalidArgument
	}
	r, _, _ := l.setParameterString.Call(uintptr(h), uintptr(unsafe.Pointer(n)), uintptr(unsafe.Pointer(v)))
	return status(r)
}

// SetParameterInt calls SetParameterInt
func (l *Library) SetParameterInt(h medaq.Handle, name string, value int32) medaq.StatusCode {
	n, err := windows.BytePtrFromString(name)
	if err != nil {
		return CodeInvalidArgument
	}
	r, _, _ := l.setParameterInt.Call(uintptr(h), uintptr(unsafe.Pointer(n)), uintptr(value))
	return status(r)
}

// OpenChannel calls OpenSensor
func (l *Library) OpenChannel(h medaq.Handle) medaq.StatusCode {
	r, _, _ := l.openSensor.Call(uintptr(h))
	return status(r)
}

// Poll calls Poll with len(buf) as the array size. MEDAQLib always fills
// the whole array with the most recent values.
func (l *Library) Poll(h medaq.Handle, buf []medaq.Sample) (int, medaq.StatusCode) {
	if len(buf) == 0 {
		return 0, medaq.StatusOK
	}

	raw := make([]int32, len(buf))
	scaled := make([]float64, len(buf))
	r, _, _ := l.poll.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&raw[0])),
		uintptr(unsafe.Pointer(&scaled[0])),
		uintptr(len(buf)),
	)
	if code := status(r); code != medaq.StatusOK {
		return 0, code
	}

	for i := range buf {
		buf[i] = medaq.Sample{Raw: raw[i], Scaled: scaled[i]}
	}
	return len(buf), medaq.StatusOK
}

// CloseChannel calls CloseSensor
func (l *Library) CloseChannel(h medaq.Handle) medaq.StatusCode {
	r, _, _ := l.closeSensor.Call(uintptr(h))
	return status(r)
}

// Release calls ReleaseSensorInstance
func (l *Library) Release(h medaq.Handle) medaq.StatusCode {
	r, _, _ := l.releaseSensorInstance.Call(uintptr(h))
	return status(r)
}

// Compile-time interface satisfaction check.
var _ medaq.Driver = (*Library)(nil)
