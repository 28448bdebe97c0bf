// Package medaq manages the lifecycle of a single measurement-sensor session:
// acquiring an exclusive device handle, applying configuration parameters,
// opening the communication channel, polling samples and releasing
// everything again on every exit path.
//
// The core functionality centers around the Session type, a small state
// machine over an injected Driver:
//
//	s, err := medaq.New(driver, medaq.SensorILD1220)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Release()
//
//	if err := s.ConfigureString(medaq.ParamPort, "COM3"); err != nil {
//	    return err
//	}
//	if err := s.Open(); err != nil {
//	    return err
//	}
//	samples, err := s.Poll(1)
//
// A session moves forward only: created, configured, open, closed, released.
// Operations called out of order fail with ErrInvalidStateTransition and
// never reach the driver. Close and Release are idempotent, and the driver's
// release call is made at most once per handle, so any exit path can drive
// a session to released without knowing which step failed.
//
// # Scoped Acquisition
//
// With binds acquisition and release together so that every exit path of
// the callback passes through one teardown:
//
//	err := medaq.With(driver, medaq.SensorILD1220, func(s *medaq.Session) error {
//	    if err := s.Apply(medaq.DefaultParameters()); err != nil {
//	        return err
//	    }
//	    if err := s.Open(); err != nil {
//	        return err
//	    }
//	    _, err := s.Poll(1)
//	    return err
//	})
//
// Measure runs that whole sequence in one call.
//
// # Errors
//
// Driver status codes are turned into a closed set of error kinds:
// ErrHandleAcquisitionFailed, ErrInvalidStateTransition, ErrParameterRejected,
// ErrOpenFailed, ErrPollFailed and ErrCleanupFailed. Match them with
// errors.Is; use errors.As with *OpError, or StatusOf, to get the raw code.
// Cleanup failures never block a transition and are reported as warnings
// (see IsWarning).
//
// # Concurrency
//
// A Session is not safe for concurrent use and never starts goroutines.
// Stream is a caller-side loop that takes ownership of an open session and
// polls it at an interval. Manager runs many independent sessions
// concurrently, one handle each, over a Driver that tolerates concurrent use
// across handles.
//
// The medaqlib subpackage binds Driver to the vendor MEDAQLib DLL, fake
// provides an in-memory Driver for tests and demos, and profile and capture
// handle YAML sensor profiles and CBOR sample files.
package medaq
