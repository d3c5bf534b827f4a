package calendar

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxEventsPerDay is the number of events a single day can hold.
const MaxEventsPerDay = 3

// Bounds of the supported range, inclusive.
const (
	MinKey Key = "1970-01-01"
	MaxKey Key = "2200-01-01"
)

// InRange reports whether t lies between local midnight of MinKey and
// local midnight of MaxKey, both inclusive.
func InRange(t time.Time) bool {
	lo := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.Local)
	hi := time.Date(2200, time.January, 1, 0, 0, 0, 0, time.Local)
	return !t.Before(lo) && !t.After(hi)
}

// Event is a titled entry attached to one day.
type Event struct {
	ID    string
	Title string
	Day   Key
}

// DayEvents groups the events of one day in insertion order.
type DayEvents struct {
	Day    Key
	Events []Event
}

// Direction is a month navigation step.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the source of "now" used for today's key.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator sets the event id generator. Ids only need to be
// unique for the lifetime of the process.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// Store owns the displayed month, the selected day and the event index.
// State is in memory only. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func() string

	year     int
	month    time.Month
	selected Key
	events   map[Key][]Event
}

// NewStore returns a store showing today's month with today selected.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:    time.Now,
		newID:  uuid.NewString,
		events: make(map[Key][]Event),
	}
	for _, opt := range opts {
		opt(s)
	}

	today := s.now().In(time.Local)
	s.year, s.month = today.Year(), today.Month()
	s.selected = Encode(today)
	return s
}

// Navigate moves the displayed month one step. The step is accepted only
// if the 1st of the candidate month is within range; otherwise the month
// is left as is and ErrOutOfRange is returned. A month that starts on the
// upper bound is accepted even though its later days lie past it.
func (s *Store) Navigate(dir Direction) error {
	if dir != Previous && dir != Next {
		return fmt.Errorf("unknown direction %v", dir)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := time.Date(s.year, s.month+time.Month(dir), 1, 0, 0, 0, 0, time.Local)
	if !InRange(candidate) {
		return fmt.Errorf("%w: %s", ErrOutOfRange, candidate.Format("2006-01"))
	}
	s.year, s.month = candidate.Year(), candidate.Month()
	return nil
}

// GoToToday shows today's month and selects today.
func (s *Store) GoToToday() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().In(time.Local)
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local)
	if !InRange(first) {
		return fmt.Errorf("%w: %s", ErrOutOfRange, first.Format("2006-01"))
	}
	s.year, s.month = first.Year(), first.Month()
	s.selected = Encode(today)
	return nil
}

// SelectDay selects a day of the displayed month.
func (s *Store) SelectDay(day int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = EncodeDate(s.year, s.month, day)
}

// SetSelectionKey selects the day named by k. The range is not checked
// here: the date-entry field clamps to [MinKey, MaxKey] itself.
func (s *Store) SetSelectionKey(k Key) error {
	if _, err := Decode(k); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = k
	return nil
}

// AddEvent appends an event with the trimmed title to the selected day.
func (s *Store) AddEvent(title string) (Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Event{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	day := s.selected
	if len(s.events[day]) >= MaxEventsPerDay {
		return Event{}, fmt.Errorf("%w: %s already has %d events", ErrCapacityExceeded, day, MaxEventsPerDay)
	}

	ev := Event{ID: s.newID(), Title: title, Day: day}
	s.events[day] = append(s.events[day], ev)
	return ev, nil
}

// EventsFor returns the events of a day in the displayed month.
func (s *Store) EventsFor(day int) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEvents(s.events[EncodeDate(s.year, s.month, day)])
}

// EventsOn returns the events of the day named by k.
func (s *Store) EventsOn(k Key) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEvents(s.events[k])
}

// IsToday reports whether a day of the displayed month is today.
func (s *Store) IsToday(day int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return EncodeDate(s.year, s.month, day) == Encode(s.now())
}

// IsSelected reports whether a day of the displayed month is selected.
func (s *Store) IsSelected(day int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return EncodeDate(s.year, s.month, day) == s.selected
}

// Current returns the displayed year and month.
func (s *Store) Current() (int, time.Month) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.year, s.month
}

// Month returns the grid of the displayed month.
func (s *Store) Month() Month {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Grid(s.year, s.month)
}

// Selected returns the selected day.
func (s *Store) Selected() Key {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Today returns today's key.
func (s *Store) Today() Key {
	return Encode(s.now())
}

// Count returns the total number of events.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, evs := range s.events {
		n += len(evs)
	}
	return n
}

// All returns every day that has events, sorted by day.
func (s *Store) All() []DayEvents {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days := make([]DayEvents, 0, len(s.events))
	for k, evs := range s.events {
		days = append(days, DayEvents{Day: k, Events: cloneEvents(evs)})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day < days[j].Day
	})
	return days
}

func cloneEvents(evs []Event) []Event {
	out := make([]Event, len(evs))
	copy(out, evs)
	return out
}
