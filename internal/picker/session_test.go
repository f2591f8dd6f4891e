package picker

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/timewheel/internal/selection"
	"github.com/javiermolinar/timewheel/internal/timeofday"
)

var testNow = time.Date(2025, 1, 6, 8, 30, 0, 0, time.UTC)

func afternoonOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		Bounds:   mustBounds(t, tod(12, 0), tod(15, 0)),
		Interval: 3,
	}
}

func TestOpen_SeedsFromMinimum(t *testing.T) {
	s := Open(afternoonOptions(t), testNow)
	if s.State != StateOpen {
		t.Fatalf("state = %s, want open", s.State)
	}
	if s.Candidate != (Candidate{Hour: 12}) {
		t.Fatalf("candidate = %s, want 12:00", s.Candidate)
	}
	if s.ID == "" {
		t.Fatal("expected session ID")
	}
	if !s.Options().Reference.Equal(testNow) {
		t.Fatalf("reference = %v, want now", s.Options().Reference)
	}
}

func TestOpen_SeedsFromCurrent(t *testing.T) {
	opts := afternoonOptions(t)
	opts.Current = tod(14, 9)
	s := Open(opts, testNow)
	if s.Candidate != (Candidate{Hour: 14, Minute: 9}) {
		t.Fatalf("candidate = %s, want 14:09", s.Candidate)
	}
}

func TestOpen_DefaultInterval(t *testing.T) {
	s := Open(Options{}, testNow)
	if s.Interval() != DefaultInterval {
		t.Fatalf("interval = %d, want %d", s.Interval(), DefaultInterval)
	}
	if s.Candidate != (Candidate{}) {
		t.Fatalf("candidate = %s, want 00:00", s.Candidate)
	}
}

func TestSession_HourChangeSnapsToMaxMinute(t *testing.T) {
	s := Open(afternoonOptions(t), testNow)
	s = s.SettleHour(13).SettleMinute(30)
	if s.Candidate != (Candidate{Hour: 13, Minute: 30}) {
		t.Fatalf("candidate = %s, want 13:30", s.Candidate)
	}

	s = s.SettleHour(15)
	if s.Candidate != (Candidate{Hour: 15, Minute: 0}) {
		t.Fatalf("candidate = %s, want 15:00", s.Candidate)
	}
	if !IsValid(s.Candidate, s.Bounds()) {
		t.Fatal("expected reconciled candidate to be valid")
	}
	if s.State != StateComposing {
		t.Fatalf("state = %s, want composing", s.State)
	}
	minutes := s.Minutes()
	if len(minutes) != 1 || minutes[0] != 0 {
		t.Fatalf("minutes = %v, want [0]", minutes)
	}
}

func TestSession_Commit(t *testing.T) {
	ref := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	opts := afternoonOptions(t)
	opts.Reference = ref
	s := Open(opts, testNow).SettleHour(14).SettleMinute(27)

	committed, sel, err := s.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if committed.State != StateCommitted {
		t.Fatalf("state = %s, want committed", committed.State)
	}
	want := time.Date(2025, 3, 10, 14, 27, 0, 0, time.UTC)
	if !sel.At.Equal(want) {
		t.Fatalf("At = %v, want %v", sel.At, want)
	}
	if sel.SessionID != s.ID {
		t.Fatalf("session ID = %q, want %q", sel.SessionID, s.ID)
	}
	if sel.Source != selection.SourceWheel {
		t.Fatalf("source = %q, want wheel", sel.Source)
	}

	if _, _, err := committed.Commit(); !errors.Is(err, ErrNotComposing) {
		t.Fatalf("second commit err = %v, want ErrNotComposing", err)
	}
	if after := committed.SettleHour(12); after.Candidate != committed.Candidate {
		t.Fatal("committed session must ignore wheel changes")
	}
}

func TestSession_CommitRejectsInvalid(t *testing.T) {
	opts := afternoonOptions(t)
	opts.Current = tod(9, 0)
	s := Open(opts, testNow)

	same, _, err := s.Commit()
	if !errors.Is(err, ErrNoValidSelection) {
		t.Fatalf("err = %v, want ErrNoValidSelection", err)
	}
	if same.State != StateOpen || same.Candidate != s.Candidate {
		t.Fatal("failed commit must keep the session unchanged")
	}

	inRangeHour := Open(Options{Bounds: mustBounds(t, tod(12, 30), tod(15, 0)), Interval: 5, Current: tod(12, 10)}, testNow)
	if _, _, err := inRangeHour.Commit(); !errors.Is(err, ErrInvalidCandidate) {
		t.Fatalf("err = %v, want ErrInvalidCandidate", err)
	}
}

func TestSession_EmptyMinuteDataset(t *testing.T) {
	opts := Options{Bounds: mustBounds(t, tod(10, 10), tod(10, 40)), Interval: 60}
	s := Open(opts, testNow)
	if len(s.Minutes()) != 0 {
		t.Fatalf("minutes = %v, want empty", s.Minutes())
	}
	if s.Valid() {
		t.Fatal("expected session with no minutes to be invalid")
	}
	if _, _, err := s.Commit(); !errors.Is(err, ErrNoValidSelection) {
		t.Fatalf("err = %v, want ErrNoValidSelection", err)
	}
}

func TestSession_HourWithoutMinutesKeepsCandidate(t *testing.T) {
	opts := Options{Bounds: mustBounds(t, tod(12, 58), tod(15, 0)), Interval: 5, Current: tod(13, 30)}
	s := Open(opts, testNow)

	s = s.SettleHour(12)
	if s.Hour() != 12 {
		t.Fatalf("hour wheel = %d, want 12", s.Hour())
	}
	if s.Candidate != (Candidate{Hour: 13, Minute: 30}) {
		t.Fatalf("candidate = %s, want 13:30 retained", s.Candidate)
	}
	if len(s.Minutes()) != 0 {
		t.Fatalf("minutes = %v, want empty", s.Minutes())
	}
	if s.Valid() {
		t.Fatal("hour without minutes must not be committable")
	}
	if s.State != StateComposing {
		t.Fatalf("state = %s, want composing", s.State)
	}
	if _, _, err := s.Commit(); !errors.Is(err, ErrNoValidSelection) {
		t.Fatalf("err = %v, want ErrNoValidSelection", err)
	}

	s = s.SettleHour(13)
	if s.Candidate != (Candidate{Hour: 13, Minute: 30}) {
		t.Fatalf("candidate = %s, want 13:30 after returning", s.Candidate)
	}
	if !s.Valid() {
		t.Fatal("expected 13:30 to be valid again")
	}
}

func TestSession_Cancel(t *testing.T) {
	s := Open(afternoonOptions(t), testNow).SettleHour(13)
	closed := s.Cancel()
	if closed.State != StateClosed {
		t.Fatalf("state = %s, want closed", closed.State)
	}
	if _, _, err := closed.Commit(); !errors.Is(err, ErrNotComposing) {
		t.Fatalf("commit after cancel err = %v, want ErrNotComposing", err)
	}

	reopened := closed.Reopen(testNow)
	if reopened.State != StateOpen {
		t.Fatalf("reopened state = %s, want open", reopened.State)
	}
	if reopened.ID == s.ID {
		t.Fatal("expected reopened session to get a new ID")
	}
}

func TestSession_MountKeepsOpenState(t *testing.T) {
	s := Open(afternoonOptions(t), testNow).Mount(FieldHour, 15)
	if s.State != StateOpen {
		t.Fatalf("state = %s, want open", s.State)
	}
	if s.Candidate != (Candidate{Hour: 15}) {
		t.Fatalf("candidate = %s, want 15:00", s.Candidate)
	}
	s = s.SettleMinute(0)
	if s.State != StateComposing {
		t.Fatalf("state = %s, want composing", s.State)
	}
}

func TestSession_TransitionsDoNotMutate(t *testing.T) {
	s := Open(afternoonOptions(t), testNow)
	_ = s.SettleHour(14)
	if s.Candidate.Hour != 12 || s.State != StateOpen {
		t.Fatalf("original session mutated: %+v", s)
	}
}

func TestSession_WithBounds(t *testing.T) {
	s := Open(afternoonOptions(t), testNow).SettleHour(14).SettleMinute(45)
	narrowed := s.WithBounds(mustBounds(t, tod(12, 0), tod(14, 30)))
	if narrowed.Candidate != (Candidate{Hour: 14, Minute: 30}) {
		t.Fatalf("candidate = %s, want 14:30", narrowed.Candidate)
	}
	if got := narrowed.Hours(); len(got) != 3 {
		t.Fatalf("hours = %v, want 3 entries", got)
	}
}

func TestSession_SubmitText(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   timeofday.TimeOfDay
	}{
		{name: "valid", input: "13:45", wantOK: true, want: timeofday.TimeOfDay{Hour: 13, Minute: 45}},
		{name: "upper_bound", input: "15:00", wantOK: true, want: timeofday.TimeOfDay{Hour: 15}},
		{name: "after_max", input: "16:00", wantOK: false},
		{name: "before_min", input: "11:59", wantOK: false},
		{name: "garbage", input: "soon", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Open(afternoonOptions(t), testNow)
			next, sel := s.SubmitText(tt.input)
			if !tt.wantOK {
				if sel != nil {
					t.Fatalf("SubmitText(%q) emitted %+v", tt.input, sel)
				}
				if next.State != StateOpen {
					t.Fatalf("state = %s, want open", next.State)
				}
				return
			}
			if sel == nil {
				t.Fatalf("SubmitText(%q) emitted nothing", tt.input)
			}
			if sel.Clock() != tt.want {
				t.Fatalf("clock = %s, want %s", sel.Clock(), tt.want)
			}
			if sel.Source != selection.SourceText {
				t.Fatalf("source = %q, want text", sel.Source)
			}
			if next.State != StateCommitted {
				t.Fatalf("state = %s, want committed", next.State)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if StateComposing.String() != "composing" {
		t.Errorf("StateComposing = %q", StateComposing.String())
	}
	if State(42).String() != "unknown(42)" {
		t.Errorf("State(42) = %q", State(42).String())
	}
}
