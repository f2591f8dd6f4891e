// Package timeofday provides hour:minute values and their parsing helpers.
package timeofday

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidClock is returned when a string is not a valid HH:MM clock.
var ErrInvalidClock = errors.New("time must be in HH:MM format")

// MinutesPerDay is the number of minutes in a nominal day.
const MinutesPerDay = 24 * 60

// TimeOfDay is an hour and minute within a single nominal day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// New returns a TimeOfDay, or an error when hour or minute is out of range.
func New(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// FromMinutes converts minutes since midnight, clamped to the day.
func FromMinutes(m int) TimeOfDay {
	if m < 0 {
		m = 0
	}
	if m >= MinutesPerDay {
		m = MinutesPerDay - 1
	}
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// FromTime returns the hour and minute of t.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier than o.
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.Minutes() < o.Minutes()
}

// String formats the value as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// OnDate combines the hour and minute onto the calendar date of ref.
// Seconds and nanoseconds are zeroed.
func (t TimeOfDay) OnDate(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, ref.Location())
}

// Parse parses a strict "HH:MM" clock string. A single-digit hour is accepted.
func Parse(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(mm) != 2 || len(hh) == 0 || len(hh) > 2 {
		return TimeOfDay{}, fmt.Errorf("%w, got %q", ErrInvalidClock, s)
	}
	if !isDigits(hh) || !isDigits(mm) {
		return TimeOfDay{}, fmt.Errorf("%w, got %q", ErrInvalidClock, s)
	}
	t, err := New(atoi(hh), atoi(mm))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %v", ErrInvalidClock, err)
	}
	return t, nil
}

// boundLayouts are the date-time layouts accepted for bounds, tried in order.
var boundLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"15:04:05",
}

// ParseLenient parses a clock or a full date-time and keeps only hour:minute.
// The date part, if any, is ignored. It reports false for empty or
// unparseable input.
func ParseLenient(s string) (TimeOfDay, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeOfDay{}, false
	}
	if t, err := Parse(s); err == nil {
		return t, true
	}
	for _, layout := range boundLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return FromTime(parsed), true
		}
	}
	return TimeOfDay{}, false
}

// Range returns the contiguous integers from start to end inclusive.
// Reversed arguments are swapped.
func Range(start, end int) []int {
	if start > end {
		start, end = end, start
	}
	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
