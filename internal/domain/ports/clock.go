package ports

import "time"

// Clock exposes the invocation-time local weekday.
type Clock interface {
	CurrentWeekday() time.Weekday
}
