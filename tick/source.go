package tick

import (
	"context"
	"time"

	"github.com/gogpu/clockface"
)

// AllUnits is the change mask of the first event.
const AllUnits = clockface.SecondUnit | clockface.MinuteUnit | clockface.HourUnit |
	clockface.DayUnit | clockface.MonthUnit | clockface.YearUnit

// Clock supplies time to a Source.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// SystemClock implements Clock with the time package.
type SystemClock struct{}

func (SystemClock) Now() time.Time                         { return time.Now() }
func (SystemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Event is one tick notification.
type Event struct {
	Time    time.Time
	Sample  clockface.Sample
	Changed clockface.TimeUnits
}

// Option configures a Source.
type Option func(*Source)

// WithClock sets the time source. The default is SystemClock.
func WithClock(c Clock) Option {
	return func(s *Source) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithUnit sets the boundary the source aligns to. Non-positive values
// are ignored.
func WithUnit(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.unit = d
		}
	}
}

// WithLocation sets the time zone samples are taken in.
func WithLocation(loc *time.Location) Option {
	return func(s *Source) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// Source emits an Event on every boundary of its unit.
type Source struct {
	clock  Clock
	unit   time.Duration
	loc    *time.Location
	events chan Event
}

// NewSource creates a Source. Call Run to start it.
func NewSource(opts ...Option) *Source {
	s := &Source{
		clock:  SystemClock{},
		unit:   time.Minute,
		loc:    time.Local,
		events: make(chan Event, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Events returns the channel events are delivered on. It is closed when
// Run returns.
func (s *Source) Events() <-chan Event {
	return s.events
}

// Run emits events until ctx is done and returns ctx.Err(). Run must be
// called at most once.
func (s *Source) Run(ctx context.Context) error {
	defer close(s.events)

	prev := s.clock.Now().In(s.loc)
	if !s.send(ctx, Event{Time: prev, Sample: clockface.SampleFromTime(prev), Changed: AllUnits}) {
		return ctx.Err()
	}
	next := NextBoundary(prev, s.unit)
	for {
		if wait := next.Sub(s.clock.Now()); wait > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.clock.After(wait):
			}
		}

		now := s.clock.Now().In(s.loc)
		if now.Before(next) {
			// Woke up early.
			continue
		}
		ev := Event{Time: now, Sample: clockface.SampleFromTime(now), Changed: clockface.ChangedUnits(prev, now)}
		clockface.Logger().Debug("tick: boundary", "time", now, "changed", ev.Changed)
		if !s.send(ctx, ev) {
			return ctx.Err()
		}
		prev, next = now, NextBoundary(now, s.unit)
	}
}

func (s *Source) send(ctx context.Context, ev Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// NextBoundary returns the first multiple of unit strictly after t,
// counted in t's wall-clock time. Units of a minute or less do not
// depend on the zone offset.
func NextBoundary(t time.Time, unit time.Duration) time.Time {
	if unit <= 0 {
		return t
	}
	_, offset := t.Zone()
	shift := time.Duration(offset) * time.Second
	local := t.Add(shift)
	return local.Truncate(unit).Add(unit).Add(-shift)
}
