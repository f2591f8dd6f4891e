package picker

import (
	"errors"
	"slices"
	"testing"

	"github.com/javiermolinar/timewheel/internal/timeofday"
)

func tod(h, m int) *timeofday.TimeOfDay {
	return &timeofday.TimeOfDay{Hour: h, Minute: m}
}

func mustBounds(t *testing.T, minTime, maxTime *timeofday.TimeOfDay) Bounds {
	t.Helper()
	b, err := NewBounds(minTime, maxTime)
	if err != nil {
		t.Fatalf("NewBounds: %v", err)
	}
	return b
}

func TestIsValid_ClosedInterval(t *testing.T) {
	boundsCases := []struct {
		name string
		min  *timeofday.TimeOfDay
		max  *timeofday.TimeOfDay
	}{
		{name: "afternoon", min: tod(12, 0), max: tod(15, 0)},
		{name: "odd_minutes", min: tod(8, 17), max: tod(9, 43)},
		{name: "single_minute", min: tod(10, 10), max: tod(10, 10)},
		{name: "whole_day", min: tod(0, 0), max: tod(23, 59)},
	}

	for _, bc := range boundsCases {
		t.Run(bc.name, func(t *testing.T) {
			b := mustBounds(t, bc.min, bc.max)
			lo, hi := bc.min.Minutes(), bc.max.Minutes()
			for m := 0; m < timeofday.MinutesPerDay; m++ {
				c := timeofday.FromMinutes(m)
				want := m >= lo && m <= hi
				if got := IsValid(c, b); got != want {
					t.Fatalf("IsValid(%s) = %v, want %v", c, got, want)
				}
			}
		})
	}
}

func TestIsValid_MissingBounds(t *testing.T) {
	if !IsValid(Candidate{Hour: 3, Minute: 7}, Bounds{}) {
		t.Error("expected every time to be valid without bounds")
	}
	onlyMin := Bounds{Min: tod(9, 0)}
	if IsValid(Candidate{Hour: 8, Minute: 59}, onlyMin) {
		t.Error("expected 08:59 to be invalid with min 09:00")
	}
	if !IsValid(Candidate{Hour: 23, Minute: 59}, onlyMin) {
		t.Error("expected 23:59 to be valid with only a min bound")
	}
	onlyMax := Bounds{Max: tod(17, 30)}
	if IsValid(Candidate{Hour: 17, Minute: 31}, onlyMax) {
		t.Error("expected 17:31 to be invalid with max 17:30")
	}
	if !IsValid(Candidate{}, onlyMax) {
		t.Error("expected 00:00 to be valid with only a max bound")
	}
}

func TestNewBounds_Inverted(t *testing.T) {
	_, err := NewBounds(tod(15, 0), tod(12, 0))
	if !errors.Is(err, ErrBoundsInverted) {
		t.Fatalf("err = %v, want ErrBoundsInverted", err)
	}
}

func TestParseBounds(t *testing.T) {
	b, malformed, err := ParseBounds("1972-01-01 12:00", "not-a-time")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Min == nil || *b.Min != (timeofday.TimeOfDay{Hour: 12}) {
		t.Fatalf("Min = %v, want 12:00", b.Min)
	}
	if b.Max != nil {
		t.Fatalf("Max = %v, want nil for malformed input", b.Max)
	}
	if len(malformed) != 1 || malformed[0] != "not-a-time" {
		t.Fatalf("malformed = %v, want [not-a-time]", malformed)
	}

	b, malformed, err = ParseBounds("", "")
	if err != nil || len(malformed) != 0 || !b.IsFullDay() {
		t.Fatalf("empty bounds = %+v, %v, %v; want full day", b, malformed, err)
	}

	if _, _, err := ParseBounds("16:00", "09:00"); !errors.Is(err, ErrBoundsInverted) {
		t.Fatalf("err = %v, want ErrBoundsInverted", err)
	}
}

func TestReconcile(t *testing.T) {
	b := Bounds{Min: tod(12, 20), Max: tod(15, 10)}

	tests := []struct {
		name  string
		in    Candidate
		field Field
		want  Candidate
	}{
		{name: "max_hour_snaps_minute", in: Candidate{Hour: 15, Minute: 30}, field: FieldHour, want: Candidate{Hour: 15, Minute: 10}},
		{name: "min_hour_snaps_minute", in: Candidate{Hour: 12, Minute: 5}, field: FieldHour, want: Candidate{Hour: 12, Minute: 20}},
		{name: "middle_hour_untouched", in: Candidate{Hour: 13, Minute: 55}, field: FieldHour, want: Candidate{Hour: 13, Minute: 55}},
		{name: "in_range_boundary_untouched", in: Candidate{Hour: 15, Minute: 5}, field: FieldHour, want: Candidate{Hour: 15, Minute: 5}},
		{name: "minute_change_never_snaps", in: Candidate{Hour: 15, Minute: 30}, field: FieldMinute, want: Candidate{Hour: 15, Minute: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.in, tt.field, b)
			if got != tt.want {
				t.Fatalf("Reconcile(%s, %s) = %s, want %s", tt.in, tt.field, got, tt.want)
			}
		})
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	b := Bounds{Min: tod(12, 20), Max: tod(15, 10)}
	for h := 12; h <= 15; h++ {
		for m := 0; m < 60; m++ {
			c := Candidate{Hour: h, Minute: m}
			once := Reconcile(c, FieldHour, b)
			twice := Reconcile(once, FieldHour, b)
			if once != twice {
				t.Fatalf("Reconcile not idempotent for %s: %s then %s", c, once, twice)
			}
			if IsValid(c, b) && once != c {
				t.Fatalf("Reconcile changed valid candidate %s to %s", c, once)
			}
		}
	}
}

func TestHourDataset(t *testing.T) {
	got := HourDataset(mustBounds(t, tod(12, 0), tod(15, 0)))
	if !slices.Equal(got, []int{12, 13, 14, 15}) {
		t.Fatalf("HourDataset = %v, want [12 13 14 15]", got)
	}
	full := HourDataset(Bounds{})
	if len(full) != 24 || full[0] != 0 || full[23] != 23 {
		t.Fatalf("full-day HourDataset = %v", full)
	}
}

func TestMinuteDataset_Scenario(t *testing.T) {
	b := mustBounds(t, tod(12, 0), tod(15, 0))

	atMin := MinuteDataset(12, 3, b)
	if len(atMin) != 20 || atMin[0] != 0 || atMin[len(atMin)-1] != 57 {
		t.Fatalf("minutes at 12 = %v, want every multiple of 3", atMin)
	}

	atMax := MinuteDataset(15, 3, b)
	if !slices.Equal(atMax, []int{0}) {
		t.Fatalf("minutes at 15 = %v, want [0]", atMax)
	}

	middle := MinuteDataset(13, 3, b)
	if len(middle) != 20 {
		t.Fatalf("minutes at 13 = %v, want 20 entries", middle)
	}
}

func TestMinuteDataset_Intervals(t *testing.T) {
	b := mustBounds(t, tod(9, 7), tod(11, 48))
	for _, interval := range AllowedIntervals {
		for _, hour := range HourDataset(b) {
			got := MinuteDataset(hour, interval, b)
			lo, hi := 0, 59
			if hour == 9 {
				lo = 7
			}
			if hour == 11 {
				hi = 48
			}
			expectNonEmpty := false
			for m := lo; m <= hi; m++ {
				if m%interval == 0 {
					expectNonEmpty = true
					break
				}
			}
			if expectNonEmpty && len(got) == 0 {
				t.Fatalf("interval %d hour %d: empty dataset", interval, hour)
			}
			for _, m := range got {
				if m%interval != 0 {
					t.Fatalf("interval %d hour %d: %d is not a multiple", interval, hour, m)
				}
				if m < lo || m > hi {
					t.Fatalf("interval %d hour %d: %d outside [%d,%d]", interval, hour, m, lo, hi)
				}
				if !IsValid(Candidate{Hour: hour, Minute: m}, b) {
					t.Fatalf("interval %d: %02d:%02d not valid", interval, hour, m)
				}
			}
		}
	}
}

func TestMinuteDataset_DegenerateHour(t *testing.T) {
	b := mustBounds(t, tod(10, 10), tod(10, 40))
	got := MinuteDataset(10, 15, b)
	if !slices.Equal(got, []int{15, 30}) {
		t.Fatalf("minutes = %v, want [15 30]", got)
	}

	empty := MinuteDataset(10, 60, b)
	if len(empty) != 0 {
		t.Fatalf("minutes = %v, want empty", empty)
	}
}

func TestMinuteDataset_FullDayLastHour(t *testing.T) {
	got := MinuteDataset(23, 30, Bounds{})
	if !slices.Equal(got, []int{0, 30}) {
		t.Fatalf("minutes at 23 = %v, want [0 30]", got)
	}
}

func TestMinuteDataset_HourOutsideBounds(t *testing.T) {
	b := mustBounds(t, tod(12, 0), tod(15, 0))
	if got := MinuteDataset(16, 5, b); len(got) != 0 {
		t.Fatalf("minutes at 16 = %v, want empty", got)
	}
}

func TestValidInterval(t *testing.T) {
	for _, n := range AllowedIntervals {
		if !ValidInterval(n) {
			t.Errorf("ValidInterval(%d) = false", n)
		}
	}
	for _, n := range []int{0, 7, 8, 9, 25, 45, 90} {
		if ValidInterval(n) {
			t.Errorf("ValidInterval(%d) = true", n)
		}
	}
}
