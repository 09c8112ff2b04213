package tasklist

import (
	"slices"

	"github.com/nissyi-gh/todo/internal/model"
)

// Find returns the task with the given id.
func Find(tasks []model.Task, id string) (model.Task, bool) {
	i := slices.IndexFunc(tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return model.Task{}, false
	}
	return tasks[i], true
}

// Append returns a new collection with t added at the end.
func Append(tasks []model.Task, t model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, t)
}

// Update returns a new collection in which the task with the given id is
// replaced by fn's result. If fn fails, or no task has that id, the
// original collection is returned with ok false.
func Update(tasks []model.Task, id string, fn func(model.Task) (model.Task, error)) (out []model.Task, ok bool, err error) {
	i := slices.IndexFunc(tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return tasks, false, nil
	}
	updated, err := fn(tasks[i])
	if err != nil {
		return tasks, false, err
	}
	out = slices.Clone(tasks)
	out[i] = updated
	return out, true, nil
}

// Remove returns a new collection without the task with the given id.
func Remove(tasks []model.Task, id string) ([]model.Task, bool) {
	i := slices.IndexFunc(tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return tasks, false
	}
	return slices.Concat(tasks[:i], tasks[i+1:]), true
}
