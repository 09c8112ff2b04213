package model

import (
	"strings"
	"time"
)

// The setters below check only the field they change. They return a copy
// of t with that field replaced and LastEditedAt set to now, or an error
// and the zero Task; t itself is never modified.

// stamp records the edit time. A clock that reads earlier than CreatedAt
// stamps CreatedAt, so LastEditedAt never precedes it.
func stamp(t Task, now time.Time) Task {
	now = now.Round(0)
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.LastEditedAt = now
	t.DueDate = copyTime(t.DueDate)
	return t
}

// SetTitle trims title and replaces the task's title.
func SetTitle(t Task, title string, now time.Time) (Task, error) {
	title = strings.TrimSpace(title)
	if err := ValidateTitle(title); err != nil {
		return Task{}, err
	}
	t.Title = title
	return stamp(t, now), nil
}

// SetDescription truncates desc to MaxDescriptionLen before storing it.
func SetDescription(t Task, desc string, now time.Time) (Task, error) {
	desc = TruncateDescription(desc)
	if err := ValidateDescription(desc); err != nil {
		return Task{}, err
	}
	t.Description = desc
	return stamp(t, now), nil
}

// SetState moves the task to s.
func SetState(t Task, s State, now time.Time) (Task, error) {
	if err := ValidateState(s); err != nil {
		return Task{}, err
	}
	t.State = s
	return stamp(t, now), nil
}

// SetDifficulty replaces the task's difficulty.
func SetDifficulty(t Task, d Difficulty, now time.Time) (Task, error) {
	if err := ValidateDifficulty(d); err != nil {
		return Task{}, err
	}
	t.Difficulty = d
	return stamp(t, now), nil
}

// SetDueDate sets or, with nil, clears the due date.
func SetDueDate(t Task, due *time.Time, now time.Time) (Task, error) {
	if err := ValidateDueDate(due); err != nil {
		return Task{}, err
	}
	t.DueDate = copyTime(due)
	return stamp(t, now), nil
}
