// Package medaqlib binds medaq.Driver to the Micro-Epsilon MEDAQLib driver
// library. The library is a Windows DLL; on other platforms Load returns
// ErrUnsupported and every call on a Library fails with CodeUnsupported.
//
//	lib, err := medaqlib.Load(medaqlib.DefaultLibraryName)
//	if err != nil {
//	    return err
//	}
//	samples, err := medaq.Measure(lib, medaq.SensorILD1220, medaq.DefaultParameters(), 1)
package medaqlib

import (
	"errors"

	"github.com/axondata/go-medaq"
)

// DefaultLibraryName is the DLL looked up on the default search path
const DefaultLibraryName = "MEDAQLib.dll"

// Status codes produced by the binding itself, never by MEDAQLib
const (
	// CodeInvalidArgument is returned when a string argument contains a NUL
	// byte or a sensor kind has no vendor code
	CodeInvalidArgument medaq.StatusCode = -1
	// CodeUnsupported is returned by every call on platforms without MEDAQLib
	CodeUnsupported medaq.StatusCode = -2
)

// ErrUnsupported is returned by Load on platforms without MEDAQLib
var ErrUnsupported = errors.New("medaqlib: MEDAQLib is only available on windows")

// sensorCodes maps sensor kinds to the SENSOR_* constants of MEDAQLib.h
var sensorCodes = map[medaq.SensorKind]int32{
	medaq.SensorILD1220: 1016,
}

// SensorCode returns the MEDAQLib sensor type for kind
func SensorCode(kind medaq.SensorKind) (int32, bool) {
	code, ok := sensorCodes[kind]
	return code, ok
}
