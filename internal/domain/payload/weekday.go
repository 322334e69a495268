package payload

import "time"

const daysPerWeek = 7

// WeekdaySequence is a rolling week of days starting at an anchor day.
type WeekdaySequence [daysPerWeek]time.Weekday

// Rotate lists the seven days starting at anchor, wrapping Saturday to Sunday.
func Rotate(anchor time.Weekday) WeekdaySequence {
	var seq WeekdaySequence
	for i := range seq {
		seq[i] = time.Weekday((int(anchor) + i) % daysPerWeek)
	}
	return seq
}

// Labels renders the sequence as English day names.
func (s WeekdaySequence) Labels() []string {
	labels := make([]string, len(s))
	for i, d := range s {
		labels[i] = d.String()
	}
	return labels
}
