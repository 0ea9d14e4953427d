package scheduler

import "time"

// SetClock replaces the scheduler's time source.
// This is exported for testing purposes only.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}
