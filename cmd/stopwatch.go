package cmd

import "time"

// Stopwatch measures wall-clock time, excluding the periods it was stopped.
// A nil Stopwatch ignores every call.
type Stopwatch struct {
	now     func() time.Time
	started time.Time
	elapsed time.Duration
	running bool
}

// StartStopwatch returns a running Stopwatch reading time from now.
func StartStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now, started: now(), running: true}
}

// Stop pauses the measurement.
func (s *Stopwatch) Stop() {
	if s == nil || !s.running {
		return
	}
	s.elapsed += s.now().Sub(s.started)
	s.running = false
}

// Start resumes a stopped measurement.
func (s *Stopwatch) Start() {
	if s == nil || s.running {
		return
	}
	s.started = s.now()
	s.running = true
}

// Elapsed returns the measured time so far.
func (s *Stopwatch) Elapsed() time.Duration {
	if s == nil {
		return 0
	}
	if s.running {
		return s.elapsed + s.now().Sub(s.started)
	}
	return s.elapsed
}
