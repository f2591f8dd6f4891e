package timeofday

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "zero_padded", input: "09:05", want: TimeOfDay{Hour: 9, Minute: 5}},
		{name: "single_digit_hour", input: "9:30", want: TimeOfDay{Hour: 9, Minute: 30}},
		{name: "midnight", input: "00:00", want: TimeOfDay{}},
		{name: "last_minute", input: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		{name: "surrounding_space", input: " 13:45 ", want: TimeOfDay{Hour: 13, Minute: 45}},
		{name: "hour_out_of_range", input: "24:00", wantErr: true},
		{name: "minute_out_of_range", input: "12:60", wantErr: true},
		{name: "missing_colon", input: "1200", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "short_minute", input: "12:5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error", tt.input)
				}
				if !errors.Is(err, ErrInvalidClock) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidClock", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLenient(t *testing.T) {
	tests := []struct {
		input  string
		want   TimeOfDay
		wantOK bool
	}{
		{input: "12:00", want: TimeOfDay{Hour: 12}, wantOK: true},
		{input: "1972-01-01 15:00", want: TimeOfDay{Hour: 15}, wantOK: true},
		{input: "1972-01-01T07:45", want: TimeOfDay{Hour: 7, Minute: 45}, wantOK: true},
		{input: "2025-03-01T10:20:00Z", want: TimeOfDay{Hour: 10, Minute: 20}, wantOK: true},
		{input: "08:15:30", want: TimeOfDay{Hour: 8, Minute: 15}, wantOK: true},
		{input: "", wantOK: false},
		{input: "noon", wantOK: false},
		{input: "25:00", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLenient(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseLenient(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseLenient(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMinutesAndString(t *testing.T) {
	tod := TimeOfDay{Hour: 13, Minute: 7}
	if got := tod.Minutes(); got != 787 {
		t.Errorf("Minutes() = %d, want 787", got)
	}
	if got := tod.String(); got != "13:07" {
		t.Errorf("String() = %q, want 13:07", got)
	}
	if got := FromMinutes(787); got != tod {
		t.Errorf("FromMinutes(787) = %v, want %v", got, tod)
	}
	if got := FromMinutes(-5); got != (TimeOfDay{}) {
		t.Errorf("FromMinutes(-5) = %v, want 00:00", got)
	}
	if got := FromMinutes(MinutesPerDay + 10); got != (TimeOfDay{Hour: 23, Minute: 59}) {
		t.Errorf("FromMinutes(overflow) = %v, want 23:59", got)
	}
}

func TestOnDate(t *testing.T) {
	ref := time.Date(2025, 6, 14, 18, 42, 31, 500, time.UTC)
	got := TimeOfDay{Hour: 9, Minute: 15}.OnDate(ref)
	want := time.Date(2025, 6, 14, 9, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("OnDate = %v, want %v", got, want)
	}
}

func TestRange(t *testing.T) {
	got := Range(12, 15)
	want := []int{12, 13, 14, 15}
	if len(got) != len(want) {
		t.Fatalf("Range len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Range[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	reversed := Range(3, 1)
	if len(reversed) != 3 || reversed[0] != 1 || reversed[2] != 3 {
		t.Errorf("Range(3, 1) = %v, want [1 2 3]", reversed)
	}
}
