package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// IDGenerator hands out fresh task ids.
type IDGenerator interface {
	NextID() string
}

// IDFunc adapts a function to IDGenerator.
type IDFunc func() string

func (f IDFunc) NextID() string { return f() }

// UUIDGenerator issues random UUIDv4 ids.
var UUIDGenerator IDGenerator = IDFunc(uuid.NewString)

// Spec holds raw user input for a new task. Empty optional fields take
// their defaults: no description, no due date, Pending, Easy.
type Spec struct {
	Title       string
	Description string
	DueDate     string
	State       string
	Difficulty  string
}

// New builds a validated task from spec. It reads the clock and the id
// generator exactly once each. Every failing field is reported in the
// returned *ValidationError.
func New(spec Spec, clock Clock, ids IDGenerator) (Task, error) {
	now := clock.Now().Round(0)

	var parseReasons []string
	state := StatePending
	if strings.TrimSpace(spec.State) != "" {
		s, err := ParseState(spec.State)
		if err != nil {
			parseReasons = append(parseReasons, err.(*ValidationError).Reasons...)
		} else {
			state = s
		}
	}
	difficulty := DifficultyEasy
	if strings.TrimSpace(spec.Difficulty) != "" {
		d, err := ParseDifficulty(spec.Difficulty)
		if err != nil {
			parseReasons = append(parseReasons, err.(*ValidationError).Reasons...)
		} else {
			difficulty = d
		}
	}

	t := Task{
		ID:           ids.NextID(),
		Title:        strings.TrimSpace(spec.Title),
		Description:  TruncateDescription(spec.Description),
		State:        state,
		Difficulty:   difficulty,
		CreatedAt:    now,
		LastEditedAt: now,
		DueDate:      ParseDueDate(spec.DueDate),
	}

	var reasons []string
	if err := Validate(t); err != nil {
		reasons = append(reasons, err.(*ValidationError).Reasons...)
	}
	reasons = append(reasons, parseReasons...)
	if len(reasons) > 0 {
		return Task{}, &ValidationError{Reasons: reasons}
	}
	return t, nil
}
