package model

import "time"

// DateLayout is the calendar date format used for due dates in user input.
const DateLayout = "2006-01-02"

// State is the lifecycle stage of a task.
type State string

const (
	StatePending    State = "Pending"
	StateInProgress State = "InProgress"
	StateDone       State = "Done"
	StateCancelled  State = "Cancelled"
)

// States lists every valid state in display order.
var States = []State{StatePending, StateInProgress, StateDone, StateCancelled}

// Mark is the checkbox shown before a task in lists.
func (s State) Mark() string {
	switch s {
	case StateDone:
		return "[x]"
	case StateInProgress:
		return "[~]"
	case StateCancelled:
		return "[-]"
	}
	return "[ ]"
}

// Difficulty rates the effort a task needs. Valid values are 1 through 3.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

// Difficulties lists every valid difficulty in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	}
	return "Unknown"
}

// Task is a single tracked task. Values are treated as immutable: the
// setters in this package return a modified copy and never touch their input.
type Task struct {
	ID           string
	Title        string
	Description  string
	State        State
	Difficulty   Difficulty
	CreatedAt    time.Time
	LastEditedAt time.Time
	DueDate      *time.Time
}

// HasDueDate reports whether the task carries a due date.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// IsDueToday returns true if the task's due date falls on the same local day as now.
func (t Task) IsDueToday(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.In(time.Local).Format(DateLayout) == now.In(time.Local).Format(DateLayout)
}

// IsOverdue returns true if the task is past its due date and still open.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.State == StateDone || t.State == StateCancelled {
		return false
	}
	return t.DueDate.In(time.Local).Format(DateLayout) < now.In(time.Local).Format(DateLayout)
}

// DueDateString formats the due date as YYYY-MM-DD, or "" when unset.
func (t Task) DueDateString() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.In(time.Local).Format(DateLayout)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
