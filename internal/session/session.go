// Package session owns the authoritative task collection for one run. Each
// successful change produces a new collection value, persists it through
// the gateway, and only then replaces the previous one.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nissyi-gh/todo/internal/model"
	"github.com/nissyi-gh/todo/internal/store"
	"github.com/nissyi-gh/todo/internal/tasklist"
)

var ErrNotFound = errors.New("task not found")

// Field names one editable task field.
type Field int

const (
	FieldTitle Field = iota + 1
	FieldDescription
	FieldState
	FieldDifficulty
	FieldDueDate
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldDescription:
		return "description"
	case FieldState:
		return "state"
	case FieldDifficulty:
		return "difficulty"
	case FieldDueDate:
		return "due date"
	}
	return "unknown"
}

// Session owns the task collection and persists every change through a
// store.Gateway before it becomes visible.
type Session struct {
	tasks  []model.Task
	store  store.Gateway
	clock  model.Clock
	ids    model.IDGenerator
	logger zerolog.Logger
}

// Option configures a Session in Open.
type Option func(*Session)

// WithClock sets the clock used for creation and edit times.
func WithClock(c model.Clock) Option { return func(s *Session) { s.clock = c } }

// WithIDGenerator sets the source of new task ids.
func WithIDGenerator(g model.IDGenerator) Option { return func(s *Session) { s.ids = g } }

// WithLogger sets the logger for session events.
func WithLogger(l zerolog.Logger) Option { return func(s *Session) { s.logger = l } }

// Open loads the collection from g; missing or malformed data starts empty.
func Open(g store.Gateway, opts ...Option) *Session {
	s := &Session{
		store:  g,
		clock:  model.SystemClock,
		ids:    model.UUIDGenerator,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = store.LoadOrEmpty(g, s.logger)
	return s
}

// Tasks returns the current collection. Callers must not modify it.
func (s *Session) Tasks() []model.Task { return s.tasks }

// Now reads the session clock.
func (s *Session) Now() time.Time { return s.clock.Now() }

// Find returns the task with id, or an error wrapping ErrNotFound.
func (s *Session) Find(id string) (model.Task, error) {
	t, ok := tasklist.Find(s.tasks, id)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return t, nil
}

func (s *Session) commit(next []model.Task) error {
	if err := s.store.Save(next); err != nil {
		s.logger.Error().Err(err).Msg("failed to save tasks")
		return fmt.Errorf("save tasks: %w", err)
	}
	s.tasks = next
	return nil
}

// Add creates a task from spec and persists the grown collection.
func (s *Session) Add(spec model.Spec) (model.Task, error) {
	t, err := model.New(spec, s.clock, s.ids)
	if err != nil {
		return model.Task{}, err
	}
	if _, dup := tasklist.Find(s.tasks, t.ID); dup {
		return model.Task{}, fmt.Errorf("add task: duplicate id %s", t.ID)
	}
	if err := s.commit(tasklist.Append(s.tasks, t)); err != nil {
		return model.Task{}, err
	}
	s.logger.Debug().Str("task_id", t.ID).Msg("created task")
	return t, nil
}

// Edit applies fn to the task with the given id, stamping it with the
// session clock, and persists the result.
func (s *Session) Edit(id string, fn func(t model.Task, now time.Time) (model.Task, error)) (model.Task, error) {
	now := s.clock.Now()
	next, ok, err := tasklist.Update(s.tasks, id, func(t model.Task) (model.Task, error) {
		return fn(t, now)
	})
	if err != nil {
		return model.Task{}, err
	}
	if !ok {
		return model.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := s.commit(next); err != nil {
		return model.Task{}, err
	}
	t, _ := tasklist.Find(next, id)
	s.logger.Debug().Str("task_id", id).Msg("edited task")
	return t, nil
}

// EditField parses raw for field and applies the matching setter. For
// FieldDueDate an unparsable date clears the due date.
func (s *Session) EditField(id string, field Field, raw string) (model.Task, error) {
	return s.Edit(id, func(t model.Task, now time.Time) (model.Task, error) {
		switch field {
		case FieldTitle:
			return model.SetTitle(t, raw, now)
		case FieldDescription:
			return model.SetDescription(t, raw, now)
		case FieldState:
			st, err := model.ParseState(raw)
			if err != nil {
				return model.Task{}, err
			}
			return model.SetState(t, st, now)
		case FieldDifficulty:
			d, err := model.ParseDifficulty(raw)
			if err != nil {
				return model.Task{}, err
			}
			return model.SetDifficulty(t, d, now)
		case FieldDueDate:
			return model.SetDueDate(t, model.ParseDueDate(raw), now)
		}
		return model.Task{}, fmt.Errorf("edit task: unknown field %d", int(field))
	})
}

// Delete removes the task with the given id and persists the result.
func (s *Session) Delete(id string) error {
	next, ok := tasklist.Remove(s.tasks, id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug().Str("task_id", id).Msg("deleted task")
	return nil
}

func (s *Session) Close() error {
	return s.store.Close()
}
