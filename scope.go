package medaq

// With creates a Session for kind, passes it to fn and releases it on every
// exit path of fn, including a panic. The error from fn comes first; a
// cleanup failure is appended to it in a *MultiError.
func With(d Driver, kind SensorKind, fn func(*Session) error, opts ...Option) (err error) {
	s, err := New(d, kind, opts...)
	if err != nil {
		return err
	}

	defer func() {
		merr := &MultiError{}
		merr.Add(err)
		merr.Add(s.Release())
		if len(merr.Errors) == 1 {
			err = merr.Errors[0]
			return
		}
		err = merr.Err()
	}()

	return fn(s)
}

// Measure runs the full sequence create, configure each of params, open,
// poll(capacity), close, release and returns the polled samples. The first
// failing step ends the sequence; cleanup still runs.
func Measure(d Driver, kind SensorKind, params ParameterSet, capacity int, opts ...Option) ([]Sample, error) {
	var samples []Sample
	err := With(d, kind, func(s *Session) error {
		if err := s.Apply(params); err != nil {
			return err
		}
		if err := s.Open(); err != nil {
			return err
		}

		var err error
		samples, err = s.Poll(capacity)
		if err != nil {
			return err
		}
		return s.Close()
	}, opts...)

	return samples, err
}
