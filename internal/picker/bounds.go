// Package picker implements time-range validation and the picking session
// state machine behind the hour and minute wheels.
package picker

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/timewheel/internal/timeofday"
)

// Validation errors.
var (
	ErrBoundsInverted   = errors.New("minimum time must not be after maximum time")
	ErrInvalidInterval  = errors.New("minute interval is not allowed")
	ErrInvalidCandidate = errors.New("time is outside the allowed range")
	ErrNoValidSelection = errors.New("no valid minute for the selected hour")
	ErrNotComposing     = errors.New("picking session is not open")
)

// AllowedIntervals lists the supported minute granularities.
var AllowedIntervals = []int{1, 2, 3, 4, 5, 6, 10, 12, 15, 20, 30, 60}

// DefaultInterval is the minute granularity used when none is configured.
const DefaultInterval = 5

// ValidInterval reports whether n is one of AllowedIntervals.
func ValidInterval(n int) bool {
	for _, v := range AllowedIntervals {
		if v == n {
			return true
		}
	}
	return false
}

// Candidate is the in-progress, not yet confirmed time.
type Candidate = timeofday.TimeOfDay

// Bounds is an inclusive [Min, Max] time-of-day constraint.
// A nil Min means 00:00 and a nil Max means 23:59.
type Bounds struct {
	Min *timeofday.TimeOfDay
	Max *timeofday.TimeOfDay
}

// NewBounds returns bounds, rejecting a minimum later than the maximum.
func NewBounds(minTime, maxTime *timeofday.TimeOfDay) (Bounds, error) {
	if minTime != nil && maxTime != nil && maxTime.Before(*minTime) {
		return Bounds{}, fmt.Errorf("%w: %s > %s", ErrBoundsInverted, minTime, maxTime)
	}
	return Bounds{Min: minTime, Max: maxTime}, nil
}

// ParseBounds parses bound strings leniently. Empty or malformed values
// become absent bounds; the returned slice names the malformed inputs.
func ParseBounds(minStr, maxStr string) (Bounds, []string, error) {
	var malformed []string
	parse := func(s string) *timeofday.TimeOfDay {
		if s == "" {
			return nil
		}
		t, ok := timeofday.ParseLenient(s)
		if !ok {
			malformed = append(malformed, s)
			return nil
		}
		return &t
	}

	b, err := NewBounds(parse(minStr), parse(maxStr))
	return b, malformed, err
}

// EffectiveMin returns the lower bound, defaulting to 00:00.
func (b Bounds) EffectiveMin() timeofday.TimeOfDay {
	if b.Min == nil {
		return timeofday.TimeOfDay{}
	}
	return *b.Min
}

// EffectiveMax returns the upper bound, defaulting to 23:59.
func (b Bounds) EffectiveMax() timeofday.TimeOfDay {
	if b.Max == nil {
		return timeofday.TimeOfDay{Hour: 23, Minute: 59}
	}
	return *b.Max
}

// IsFullDay reports whether neither bound is set.
func (b Bounds) IsFullDay() bool {
	return b.Min == nil && b.Max == nil
}

// Describe returns a short human description of the allowed range.
func (b Bounds) Describe() string {
	return fmt.Sprintf("Please choose time from %s to %s", b.EffectiveMin(), b.EffectiveMax())
}
