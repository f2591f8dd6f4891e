package picker

import "github.com/javiermolinar/timewheel/internal/timeofday"

// Field names the wheel that produced a change.
type Field int

const (
	FieldHour Field = iota
	FieldMinute
)

func (f Field) String() string {
	if f == FieldHour {
		return "hour"
	}
	return "minute"
}

// IsValid reports whether c lies within the inclusive bounds. Only hour and
// minute are compared.
func IsValid(c Candidate, b Bounds) bool {
	m := c.Minutes()
	if b.Min != nil && m < b.Min.Minutes() {
		return false
	}
	if b.Max != nil && m > b.Max.Minutes() {
		return false
	}
	return true
}

// Reconcile corrects c after a single wheel changed.
//
// An hour change onto a boundary hour snaps an out-of-range minute to that
// boundary's minute. A minute change is never corrected: the minute wheel
// only offers valid minutes for the current hour.
func Reconcile(c Candidate, field Field, b Bounds) Candidate {
	if field != FieldHour {
		return c
	}
	switch {
	case b.Min != nil && c.Hour == b.Min.Hour && c.Minute < b.Min.Minute:
		c.Minute = b.Min.Minute
	case b.Max != nil && c.Hour == b.Max.Hour && c.Minute > b.Max.Minute:
		c.Minute = b.Max.Minute
	}
	return c
}

// HourDataset returns the selectable hours for b.
func HourDataset(b Bounds) []int {
	return timeofday.Range(b.EffectiveMin().Hour, b.EffectiveMax().Hour)
}

// MinuteDataset returns the selectable minutes for hour: multiples of
// interval, limited by the minimum minute on the min-boundary hour and by
// the maximum minute on the max-boundary hour. Hours outside b yield an
// empty set, as may a boundary minute that no multiple satisfies.
func MinuteDataset(hour, interval int, b Bounds) []int {
	if interval <= 0 {
		interval = 1
	}
	lo, hi := b.EffectiveMin(), b.EffectiveMax()
	if hour < lo.Hour || hour > hi.Hour {
		return []int{}
	}

	first, last := 0, 59
	if b.Min != nil && hour == b.Min.Hour {
		first = b.Min.Minute
	}
	if b.Max != nil && hour == b.Max.Hour {
		last = b.Max.Minute
	}

	out := make([]int, 0, 60/interval+1)
	for m := first; m <= last; m++ {
		if m%interval == 0 {
			out = append(out, m)
		}
	}
	return out
}
