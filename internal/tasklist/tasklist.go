// Package tasklist holds the pure operations over a task collection:
// predicates and comparators, filtering, stable sorting, and the
// copy-on-write helpers the session uses to replace the collection.
package tasklist

import (
	"cmp"
	"slices"
	"strings"

	"github.com/nissyi-gh/todo/internal/model"
)

// Predicate selects tasks.
type Predicate func(model.Task) bool

// Comparator orders two tasks, returning a negative number when a sorts first.
type Comparator func(a, b model.Task) int

// ByState matches tasks in state s.
func ByState(s model.State) Predicate {
	return func(t model.Task) bool { return t.State == s }
}

// ByTitleContains matches titles containing q, ignoring case and the
// surrounding whitespace of q.
func ByTitleContains(q string) Predicate {
	needle := strings.ToLower(strings.TrimSpace(q))
	return func(t model.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), needle)
	}
}

// Filter returns the tasks matching every predicate, in their original order.
func Filter(tasks []model.Task, preds ...Predicate) []model.Task {
	out := make([]model.Task, 0, len(tasks))
next:
	for _, t := range tasks {
		for _, p := range preds {
			if !p(t) {
				continue next
			}
		}
		out = append(out, t)
	}
	return out
}

// ByCreatedAt orders by creation time, oldest first.
func ByCreatedAt(a, b model.Task) int {
	return a.CreatedAt.Compare(b.CreatedAt)
}

// ByDueDate orders by due date; tasks without one sort last.
func ByDueDate(a, b model.Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	}
	return a.DueDate.Compare(*b.DueDate)
}

// ByTitle orders by title, ignoring case.
func ByTitle(a, b model.Task) int {
	return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
}

// Sort returns a sorted copy of tasks. Equal keys keep their relative
// order. A nil comparator returns the copy unsorted.
func Sort(tasks []model.Task, c Comparator) []model.Task {
	out := slices.Clone(tasks)
	if out == nil {
		out = []model.Task{}
	}
	if c != nil {
		slices.SortStableFunc(out, c)
	}
	return out
}

// FilterAndSort filters first, then sorts the result.
func FilterAndSort(tasks []model.Task, preds []Predicate, c Comparator) []model.Task {
	return Sort(Filter(tasks, preds...), c)
}
