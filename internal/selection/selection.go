// Package selection defines confirmed time selections and where they are sent.
package selection

import (
	"context"
	"errors"
	"time"

	"github.com/javiermolinar/timewheel/internal/timeofday"
)

// ErrNotFound is returned when no stored selection matches.
var ErrNotFound = errors.New("selection not found")

// Source records which input surface produced a selection.
type Source string

const (
	SourceWheel Source = "wheel"
	SourceText  Source = "text"
)

// Selection is a confirmed time combined onto a reference date.
type Selection struct {
	ID        int64
	SessionID string
	Hour      int
	Minute    int
	At        time.Time // Hour and minute on the reference date
	Source    Source
	CreatedAt time.Time
}

// New builds a selection for the given clock value and reference date.
func New(sessionID string, tod timeofday.TimeOfDay, ref time.Time, source Source) Selection {
	return Selection{
		SessionID: sessionID,
		Hour:      tod.Hour,
		Minute:    tod.Minute,
		At:        tod.OnDate(ref),
		Source:    source,
		CreatedAt: time.Now(),
	}
}

// Clock returns the selected hour and minute.
func (s Selection) Clock() timeofday.TimeOfDay {
	return timeofday.TimeOfDay{Hour: s.Hour, Minute: s.Minute}
}

// Sink receives confirmed selections.
type Sink interface {
	OnTimeChange(ctx context.Context, sel Selection) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, sel Selection) error

// OnTimeChange calls f.
func (f SinkFunc) OnTimeChange(ctx context.Context, sel Selection) error {
	return f(ctx, sel)
}

// Repository stores selection history.
type Repository interface {
	// RecordSelection persists a selection and sets its ID.
	RecordSelection(ctx context.Context, sel *Selection) error

	// ListSelections returns the most recent selections, newest first.
	ListSelections(ctx context.Context, limit int) ([]*Selection, error)

	// LastSelection returns the newest selection or ErrNotFound.
	LastSelection(ctx context.Context) (*Selection, error)

	// Close releases any resources held by the repository.
	Close() error
}

// RepositorySink records every selection it receives in repo.
type RepositorySink struct {
	Repo Repository
}

// OnTimeChange implements Sink.
func (s RepositorySink) OnTimeChange(ctx context.Context, sel Selection) error {
	if s.Repo == nil {
		return nil
	}
	return s.Repo.RecordSelection(ctx, &sel)
}

// MultiSink fans a selection out to several sinks, stopping at the first error.
type MultiSink []Sink

// OnTimeChange implements Sink.
func (m MultiSink) OnTimeChange(ctx context.Context, sel Selection) error {
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.OnTimeChange(ctx, sel); err != nil {
			return err
		}
	}
	return nil
}
