package picker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/timewheel/internal/selection"
	"github.com/javiermolinar/timewheel/internal/timeofday"
)

// State is the lifecycle stage of a picking session.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateComposing
	StateCommitted
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateComposing:
		return "composing"
	case StateCommitted:
		return "committed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Options configures a picking session.
type Options struct {
	Bounds    Bounds
	Interval  int                  // Minute granularity; DefaultInterval when 0
	Current   *timeofday.TimeOfDay // Optional seed and wheel centering hint
	Reference time.Time            // Date the selection is combined onto; today when zero
}

// Session is the state of one picking session. Transitions return a new
// Session and never mutate the receiver.
//
// Candidate is the last candidate an hour with selectable minutes produced.
// The hour wheel may rest on an hour without minutes; that hour is kept
// apart so the candidate survives until the wheel returns to a usable hour.
type Session struct {
	ID        string
	State     State
	Candidate Candidate
	hour      int
	opts      Options
}

// Open starts a session. The candidate is seeded from the current time when
// supplied, otherwise from the minimum bound, otherwise 00:00.
func Open(opts Options, now time.Time) Session {
	if opts.Interval == 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Reference.IsZero() {
		opts.Reference = now
	}

	seed := opts.Bounds.EffectiveMin()
	if opts.Current != nil {
		seed = *opts.Current
	}

	return Session{
		ID:        uuid.NewString(),
		State:     StateOpen,
		Candidate: seed,
		hour:      seed.Hour,
		opts:      opts,
	}
}

// Options returns the options the session was opened with.
func (s Session) Options() Options {
	return s.opts
}

// Bounds returns the session bounds.
func (s Session) Bounds() Bounds {
	return s.opts.Bounds
}

// Interval returns the minute granularity.
func (s Session) Interval() int {
	return s.opts.Interval
}

// Active reports whether the session accepts wheel changes.
func (s Session) Active() bool {
	return s.State == StateOpen || s.State == StateComposing
}

// Hours returns the hour wheel dataset.
func (s Session) Hours() []int {
	return HourDataset(s.opts.Bounds)
}

// Hour returns the hour the hour wheel rests on. It differs from the
// candidate hour while that hour has no selectable minutes.
func (s Session) Hour() int {
	return s.hour
}

// Minutes returns the minute wheel dataset for the hour wheel.
func (s Session) Minutes() []int {
	return MinuteDataset(s.hour, s.opts.Interval, s.opts.Bounds)
}

// Valid reports whether the candidate can be committed.
func (s Session) Valid() bool {
	return len(s.Minutes()) > 0 && IsValid(s.Candidate, s.opts.Bounds)
}

// SettleHour applies a settled hour wheel value.
func (s Session) SettleHour(hour int) Session {
	return s.apply(FieldHour, hour, true)
}

// SettleMinute applies a settled minute wheel value.
func (s Session) SettleMinute(minute int) Session {
	return s.apply(FieldMinute, minute, true)
}

// Mount applies the value a wheel centers on when it is first shown.
// Unlike a settle it does not count as a user adjustment.
func (s Session) Mount(field Field, value int) Session {
	return s.apply(field, value, false)
}

func (s Session) apply(field Field, value int, compose bool) Session {
	if !s.Active() {
		return s
	}
	if compose {
		s.State = StateComposing
	}
	c := s.Candidate
	if field == FieldHour {
		s.hour = value
		if len(s.Minutes()) == 0 {
			return s
		}
		c.Hour = value
	} else {
		c.Minute = value
	}
	s.Candidate = Reconcile(c, field, s.opts.Bounds)
	return s
}

// WithBounds replaces the bounds of an active session and re-derives
// the datasets.
func (s Session) WithBounds(b Bounds) Session {
	if !s.Active() {
		return s
	}
	s.opts.Bounds = b
	return s.apply(FieldHour, s.hour, false)
}

// Commit confirms the candidate. On error the receiver is returned
// unchanged so the caller keeps its last valid state.
func (s Session) Commit() (Session, selection.Selection, error) {
	if s.Active() && len(s.Minutes()) == 0 {
		return s, selection.Selection{}, ErrNoValidSelection
	}
	return s.commit(s.Candidate, selection.SourceWheel)
}

func (s Session) commit(c Candidate, source selection.Source) (Session, selection.Selection, error) {
	if !s.Active() {
		return s, selection.Selection{}, ErrNotComposing
	}
	if !IsValid(c, s.opts.Bounds) {
		return s, selection.Selection{}, fmt.Errorf("%w: %s", ErrInvalidCandidate, c)
	}

	s.Candidate = c
	s.hour = c.Hour
	s.State = StateCommitted
	return s, selection.New(s.ID, c, s.opts.Reference, source), nil
}

// Cancel discards the candidate and closes the session.
func (s Session) Cancel() Session {
	s.State = StateClosed
	s.Candidate = Candidate{}
	s.hour = 0
	return s
}

// Reopen starts a fresh session with the same options.
func (s Session) Reopen(now time.Time) Session {
	return Open(s.opts, now)
}

// SubmitText runs a raw "HH:MM" string through the validator. It returns a
// committed session and the selection when valid; otherwise the session is
// unchanged and the selection is nil.
func (s Session) SubmitText(input string) (Session, *selection.Selection) {
	c, err := timeofday.Parse(input)
	if err != nil {
		return s, nil
	}
	next, sel, err := s.commit(c, selection.SourceText)
	if err != nil {
		return s, nil
	}
	return next, &sel
}
