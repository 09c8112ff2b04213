// Package codec converts task collections to and from their persisted JSON
// form. Timestamps are written as RFC 3339 strings in UTC with nanosecond
// precision, so a round trip keeps the instant exactly; decoded times are
// returned in the local zone without a monotonic reading. A missing due
// date is written as an explicit null.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nissyi-gh/todo/internal/model"
)

const TimeLayout = time.RFC3339Nano

// ErrMalformed is the kind shared by every DeserializationError.
var ErrMalformed = errors.New("malformed task data")

// DeserializationError reports persisted content that cannot be turned back
// into tasks.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMalformed, e.Err)
}

func (e *DeserializationError) Unwrap() []error { return []error{ErrMalformed, e.Err} }

func malformed(format string, args ...any) error {
	return &DeserializationError{Err: fmt.Errorf(format, args...)}
}

// Record is the persisted shape of a task.
type Record struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	State        string  `json:"state"`
	Difficulty   string  `json:"difficulty"`
	CreatedAt    string  `json:"createdAt"`
	LastEditedAt string  `json:"lastEditedAt"`
	DueDate      *string `json:"dueDate"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t.Local(), nil
}

// ToRecord maps a task to its persisted shape.
func ToRecord(t model.Task) Record {
	r := Record{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		State:        string(t.State),
		Difficulty:   t.Difficulty.String(),
		CreatedAt:    formatTime(t.CreatedAt),
		LastEditedAt: formatTime(t.LastEditedAt),
	}
	if t.DueDate != nil {
		s := formatTime(*t.DueDate)
		r.DueDate = &s
	}
	return r
}

// FromRecord rebuilds a task and checks it with model.Validate.
func FromRecord(r Record) (model.Task, error) {
	created, err := parseTime("createdAt", r.CreatedAt)
	if err != nil {
		return model.Task{}, err
	}
	edited, err := parseTime("lastEditedAt", r.LastEditedAt)
	if err != nil {
		return model.Task{}, err
	}
	difficulty, err := model.ParseDifficulty(r.Difficulty)
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		State:        model.State(r.State),
		Difficulty:   difficulty,
		CreatedAt:    created,
		LastEditedAt: edited,
	}
	if r.DueDate != nil {
		due, err := parseTime("dueDate", *r.DueDate)
		if err != nil {
			return model.Task{}, err
		}
		t.DueDate = &due
	}
	if t.ID == "" {
		return model.Task{}, errors.New("id is required")
	}
	if err := model.Validate(t); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// Marshal renders tasks as an indented JSON array.
func Marshal(tasks []model.Task) ([]byte, error) {
	records := make([]Record, len(tasks))
	for i, t := range tasks {
		records[i] = ToRecord(t)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return data, nil
}

// Unmarshal parses data produced by Marshal. Any structural problem, invalid
// task, or duplicate id yields a *DeserializationError.
func Unmarshal(data []byte) ([]model.Task, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &DeserializationError{Err: err}
	}
	return FromRecords(records)
}

// FromRecords rebuilds tasks in order and rejects duplicate ids.
func FromRecords(records []Record) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		t, err := FromRecord(r)
		if err != nil {
			return nil, malformed("task %d: %w", i, err)
		}
		if seen[t.ID] {
			return nil, malformed("task %d: duplicate id %q", i, t.ID)
		}
		seen[t.ID] = true
		tasks = append(tasks, t)
	}
	return tasks, nil
}
