package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTask(t *testing.T) Task {
	t.Helper()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	task, err := New(Spec{Title: "Buy milk", Description: "2 litres", DueDate: "2024-01-10"}, fixedClock(created), counterIDs("t"))
	require.NoError(t, err)
	return task
}

func TestSetTitle(t *testing.T) {
	orig := sampleTask(t)
	before := orig
	now := orig.CreatedAt.Add(time.Hour)

	got, err := SetTitle(orig, "  Buy oat milk ", now)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", got.Title)
	assert.True(t, got.LastEditedAt.Equal(now))

	// untouched fields
	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.Description, got.Description)
	assert.Equal(t, orig.State, got.State)
	assert.Equal(t, orig.Difficulty, got.Difficulty)
	assert.True(t, got.CreatedAt.Equal(orig.CreatedAt))
	assert.True(t, got.DueDate.Equal(*orig.DueDate))

	// original value preserved
	assert.Equal(t, before, orig)
	assert.Equal(t, "Buy milk", orig.Title)
}

func TestSetTitle_Invalid(t *testing.T) {
	orig := sampleTask(t)
	_, err := SetTitle(orig, "   ", orig.CreatedAt.Add(time.Minute))
	assert.ErrorIs(t, err, ErrInvalidTask)
	_, err = SetTitle(orig, strings.Repeat("x", MaxTitleLen+1), orig.CreatedAt)
	assert.ErrorIs(t, err, ErrInvalidTask)
	assert.Equal(t, "Buy milk", orig.Title)
}

func TestSetState_InvalidLeavesOriginal(t *testing.T) {
	orig := sampleTask(t)
	got, err := SetState(orig, "InvalidState", orig.CreatedAt.Add(time.Hour))
	require.Error(t, err)
	assert.Equal(t, Task{}, got)
	assert.Equal(t, StatePending, orig.State)
	assert.True(t, orig.LastEditedAt.Equal(orig.CreatedAt))
}

func TestSetState(t *testing.T) {
	orig := sampleTask(t)
	now := orig.CreatedAt.Add(2 * time.Hour)
	got, err := SetState(orig, StateDone, now)
	require.NoError(t, err)
	assert.Equal(t, StateDone, got.State)
	assert.True(t, got.LastEditedAt.Equal(now))
}

func TestSetDescription_Truncates(t *testing.T) {
	orig := sampleTask(t)
	got, err := SetDescription(orig, strings.Repeat("é", MaxDescriptionLen+5), orig.CreatedAt)
	require.NoError(t, err)
	assert.Equal(t, MaxDescriptionLen, len([]rune(got.Description)))
}

func TestSetDifficulty(t *testing.T) {
	orig := sampleTask(t)
	got, err := SetDifficulty(orig, DifficultyMedium, orig.CreatedAt)
	require.NoError(t, err)
	assert.Equal(t, DifficultyMedium, got.Difficulty)

	_, err = SetDifficulty(orig, 0, orig.CreatedAt)
	assert.Error(t, err)
}

func TestSetDueDate(t *testing.T) {
	orig := sampleTask(t)
	now := orig.CreatedAt.Add(time.Hour)

	cleared, err := SetDueDate(orig, nil, now)
	require.NoError(t, err)
	assert.Nil(t, cleared.DueDate)
	assert.NotNil(t, orig.DueDate)

	d := time.Date(2025, 5, 5, 0, 0, 0, 0, time.Local)
	set, err := SetDueDate(orig, &d, now)
	require.NoError(t, err)
	d = d.AddDate(1, 0, 0)
	assert.Equal(t, 2025, set.DueDate.Year(), "setter must not alias the caller's time")
}

func TestSetters_DoNotRevalidateOtherFields(t *testing.T) {
	broken := sampleTask(t)
	broken.Title = ""

	got, err := SetState(broken, StateDone, broken.CreatedAt)
	require.NoError(t, err)
	assert.Equal(t, "", got.Title)
}

func TestSetters_ClockBeforeCreation(t *testing.T) {
	orig := sampleTask(t)
	earlier := orig.CreatedAt.Add(-time.Second)

	edits := map[string]func() (Task, error){
		"title":       func() (Task, error) { return SetTitle(orig, "renamed", earlier) },
		"description": func() (Task, error) { return SetDescription(orig, "new", earlier) },
		"state":       func() (Task, error) { return SetState(orig, StateDone, earlier) },
		"difficulty":  func() (Task, error) { return SetDifficulty(orig, DifficultyHard, earlier) },
		"due date":    func() (Task, error) { return SetDueDate(orig, nil, earlier) },
	}
	for name, edit := range edits {
		t.Run(name, func(t *testing.T) {
			got, err := edit()
			require.NoError(t, err)
			assert.True(t, got.LastEditedAt.Equal(got.CreatedAt))
			assert.NoError(t, Validate(got))
		})
	}
}
