package ui

import (
	"github.com/nissyi-gh/todo/internal/model"
	"github.com/nissyi-gh/todo/internal/tasklist"
)

type sortMode int

const (
	sortNone sortMode = iota
	sortCreated
	sortDue
	sortTitle
	sortModeCount
)

func (s sortMode) String() string {
	switch s {
	case sortCreated:
		return "created"
	case sortDue:
		return "due date"
	case sortTitle:
		return "title"
	}
	return "unsorted"
}

func (s sortMode) comparator() tasklist.Comparator {
	switch s {
	case sortCreated:
		return tasklist.ByCreatedAt
	case sortDue:
		return tasklist.ByDueDate
	case sortTitle:
		return tasklist.ByTitle
	}
	return nil
}

// stateFilter is an index into model.States; -1 shows every state.
type stateFilter int

const filterAll stateFilter = -1

func (f stateFilter) next() stateFilter {
	if int(f)+1 >= len(model.States) {
		return filterAll
	}
	return f + 1
}

func (f stateFilter) String() string {
	if f == filterAll {
		return "all"
	}
	return string(model.States[f])
}

func (f stateFilter) predicates() []tasklist.Predicate {
	if f == filterAll {
		return nil
	}
	return []tasklist.Predicate{tasklist.ByState(model.States[f])}
}

// nextState is the state the advance key moves a task to.
func nextState(s model.State) model.State {
	switch s {
	case model.StatePending:
		return model.StateInProgress
	case model.StateInProgress:
		return model.StateDone
	}
	return model.StatePending
}
