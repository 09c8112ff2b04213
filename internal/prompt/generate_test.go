package prompt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nissyi-gh/todo/internal/model"
)

func TestGenerateNew(t *testing.T) {
	p := GenerateNew()
	assert.Contains(t, p, "tasks:\n  - title:")
	assert.Contains(t, p, "Easy, Medium or Hard")
}

func TestGenerateFromTask(t *testing.T) {
	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	task := model.Task{
		ID:          "a",
		Title:       "Move house",
		Description: "Flat on 5th street",
		State:       model.StatePending,
		Difficulty:  model.DifficultyHard,
		DueDate:     &due,
	}
	existing := []model.Task{
		task,
		{ID: "b", Title: "Book van", State: model.StateDone},
		{ID: "c", Title: "Old idea", State: model.StateCancelled},
	}

	p := GenerateFromTask(task, existing)
	assert.Contains(t, p, "- Title: Move house\n")
	assert.Contains(t, p, "- Description: Flat on 5th street\n")
	assert.Contains(t, p, "- Due: 2024-05-01")
	assert.Contains(t, p, "- Difficulty: Hard\n")
	assert.Contains(t, p, "- Book van (Done)\n")
	assert.NotContains(t, p, "Old idea")
	assert.NotContains(t, p, "- Move house (")
}

func TestGenerateFromTask_NoExtras(t *testing.T) {
	task := model.Task{ID: "a", Title: "Solo", State: model.StatePending, Difficulty: model.DifficultyEasy}

	p := GenerateFromTask(task, []model.Task{task})
	assert.NotContains(t, p, "Description:")
	assert.NotContains(t, p, "Due:")
	assert.NotContains(t, p, "## Existing tasks")
}
