package clock

import (
	"time"

	"the7threason/internal/domain/ports"
)

// Local reads the weekday from the process's local wall clock.
type Local struct {
	now func() time.Time
}

var _ ports.Clock = (*Local)(nil)

// NewLocal returns a clock backed by time.Now.
func NewLocal() *Local {
	return &Local{now: time.Now}
}

// CurrentWeekday returns today's weekday in the local time zone.
func (l *Local) CurrentWeekday() time.Weekday {
	return l.now().Local().Weekday()
}
