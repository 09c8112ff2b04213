package ui

import (
	"fmt"
	"time"

	"github.com/nissyi-gh/todo/internal/model"
)

// TaskItem wraps model.Task to satisfy the list.DefaultItem interface.
type TaskItem struct {
	Task model.Task
	// Now is the reference time for due-date marks.
	Now time.Time
}

func (i TaskItem) Title() string {
	dueMark := ""
	if i.Task.IsOverdue(i.Now) {
		dueMark = "⚠️ "
	} else if i.Task.IsDueToday(i.Now) {
		dueMark = "📅 "
	}
	return fmt.Sprintf("%s %s%s", i.Task.State.Mark(), dueMark, i.Task.Title)
}

func (i TaskItem) Description() string {
	if i.Task.DueDate == nil {
		return i.Task.Difficulty.String()
	}
	return i.Task.Difficulty.String() + " · due " + i.Task.DueDateString()
}

func (i TaskItem) FilterValue() string {
	return i.Task.Title
}
