// Package shell is the line-oriented menu front end. It runs as a small
// state machine driven by one loop; every prompt blocks for a single line.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nissyi-gh/todo/internal/model"
	"github.com/nissyi-gh/todo/internal/session"
	"github.com/nissyi-gh/todo/internal/tasklist"
)

type menuState int

const (
	stateMain menuState = iota
	stateList
	stateDetail
	stateEdit
	stateExit
)

// Shell is the line-oriented menu over a session.
type Shell struct {
	sess   *session.Session
	in     *lineReader
	out    io.Writer
	st     styles
	logger zerolog.Logger

	state    menuState
	selected string
}

// New returns a shell reading from in and writing to out.
func New(sess *session.Session, in io.Reader, out io.Writer, logger zerolog.Logger) *Shell {
	return &Shell{
		sess:   sess,
		in:     newLineReader(in, out),
		out:    out,
		st:     newStyles(out),
		logger: logger,
	}
}

// Run drives the menu until the user exits or input ends.
func (s *Shell) Run() error {
	s.showPendingByDue()

	for s.state != stateExit {
		var err error
		switch s.state {
		case stateMain:
			err = s.mainMenu()
		case stateList:
			err = s.listMenu()
		case stateDetail:
			err = s.detailView()
		case stateEdit:
			err = s.editFlow()
		}
		if errors.Is(err, io.EOF) {
			s.state = stateExit
			continue
		}
		if err != nil {
			return err
		}
	}

	s.println("Bye")
	return nil
}

func (s *Shell) println(a ...any) { fmt.Fprintln(s.out, a...) }

func (s *Shell) heading(text string) {
	s.println()
	s.println(s.st.title.Render("=== " + text + " ==="))
}

func (s *Shell) fail(err error) {
	s.logger.Debug().Err(err).Msg("rejected input")
	s.println(s.st.err.Render("✗ " + err.Error()))
}

func (s *Shell) ok(msg string) {
	s.println(s.st.success.Render("✓ " + msg))
}

func (s *Shell) showPendingByDue() {
	pending := tasklist.FilterAndSort(s.sess.Tasks(),
		[]tasklist.Predicate{tasklist.ByState(model.StatePending)},
		tasklist.ByDueDate)
	if len(pending) == 0 {
		return
	}
	s.heading("Pending, by due date")
	s.printList(pending)
}

func (s *Shell) printList(tasks []model.Task) {
	now := s.sess.Now()
	for _, t := range tasks {
		s.println("  " + s.st.summary(t, now))
	}
}

func (s *Shell) mainMenu() error {
	s.heading("todo")
	s.println("1) Add task")
	s.println("2) List tasks")
	s.println("3) View task")
	s.println("4) Edit task")
	s.println("0) Exit")

	op, err := s.in.choose()
	if err != nil {
		return err
	}
	switch op {
	case "1":
		return s.addTask()
	case "2":
		s.state = stateList
	case "3":
		s.selected = ""
		s.state = stateDetail
	case "4":
		s.selected = ""
		s.state = stateEdit
	case "0":
		s.state = stateExit
	default:
		s.println("Invalid option")
	}
	return nil
}

func (s *Shell) addTask() error {
	title, err := s.in.ask("Title", "")
	if err != nil {
		return err
	}
	desc, err := s.in.ask("Description", "")
	if err != nil {
		return err
	}
	due, err := s.in.ask("Due date YYYY-MM-DD", "")
	if err != nil {
		return err
	}
	diff, err := s.in.ask("Difficulty ["+difficultyNames()+"]", model.DifficultyEasy.String())
	if err != nil {
		return err
	}

	t, err := s.sess.Add(model.Spec{Title: title, Description: desc, DueDate: due, Difficulty: diff})
	if err != nil {
		s.fail(err)
		return nil
	}
	s.ok("Task added: " + t.ID)
	return nil
}

func (s *Shell) listMenu() error {
	s.heading("List")
	s.println("1) All tasks")
	s.println("2) Filter by state")
	s.println("3) Search by title")
	s.println("4) Sort")
	s.println("0) Back")

	op, err := s.in.choose()
	if err != nil {
		return err
	}
	tasks := s.sess.Tasks()
	switch op {
	case "1":
		s.showList(tasks, "No tasks")
	case "2":
		raw, err := s.in.ask("State ["+stateNames()+"]", string(model.StatePending))
		if err != nil {
			return err
		}
		st, perr := model.ParseState(raw)
		if perr != nil {
			s.fail(perr)
			return nil
		}
		s.showList(tasklist.Filter(tasks, tasklist.ByState(st)), "No tasks in that state")
	case "3":
		q, err := s.in.ask("Title contains", "")
		if err != nil {
			return err
		}
		s.showList(tasklist.Filter(tasks, tasklist.ByTitleContains(q)), "No matches")
	case "4":
		return s.sortMenu(tasks)
	case "0":
		s.state = stateMain
	default:
		s.println("Invalid option")
	}
	return nil
}

func (s *Shell) sortMenu(tasks []model.Task) error {
	s.println("1) By creation time")
	s.println("2) By due date")
	s.println("3) By title")
	s.println("4) Unsorted")
	op, err := s.in.choose()
	if err != nil {
		return err
	}
	var cmp tasklist.Comparator
	switch op {
	case "1":
		cmp = tasklist.ByCreatedAt
	case "2":
		cmp = tasklist.ByDueDate
	case "3":
		cmp = tasklist.ByTitle
	default:
		s.println(s.st.status.Render("Unsorted"))
	}
	s.showList(tasklist.Sort(tasks, cmp), "No tasks")
	return nil
}

func (s *Shell) showList(tasks []model.Task, empty string) {
	if len(tasks) == 0 {
		s.println(s.st.status.Render(empty))
		return
	}
	s.printList(tasks)
}

// resolve finds a task by exact id or by a unique id prefix.
func (s *Shell) resolve(raw string) (model.Task, error) {
	raw = strings.TrimSpace(raw)
	if t, err := s.sess.Find(raw); err == nil {
		return t, nil
	}
	var match []model.Task
	if raw != "" {
		for _, t := range s.sess.Tasks() {
			if strings.HasPrefix(t.ID, raw) {
				match = append(match, t)
			}
		}
	}
	switch len(match) {
	case 1:
		return match[0], nil
	case 0:
		return model.Task{}, fmt.Errorf("%w: %s", session.ErrNotFound, raw)
	}
	return model.Task{}, fmt.Errorf("id prefix %q matches %d tasks", raw, len(match))
}

// pick returns the selected task, asking for an id when none is selected.
// It reports false, after printing why, when no task could be chosen.
func (s *Shell) pick() (model.Task, bool, error) {
	id := s.selected
	if id == "" {
		raw, err := s.in.ask("Task ID", "")
		if err != nil {
			return model.Task{}, false, err
		}
		id = raw
	}
	t, err := s.resolve(id)
	if err != nil {
		s.fail(err)
		s.selected = ""
		s.state = stateMain
		return model.Task{}, false, nil
	}
	s.selected = t.ID
	return t, true, nil
}

func (s *Shell) detailView() error {
	t, found, err := s.pick()
	if err != nil || !found {
		return err
	}
	s.println()
	s.println(s.st.detail(t))
	s.println("1) Edit  0) Back")

	op, err := s.in.choose()
	if err != nil {
		return err
	}
	if op == "1" {
		s.state = stateEdit
		return nil
	}
	s.selected = ""
	s.state = stateMain
	return nil
}

func (s *Shell) editFlow() error {
	t, found, err := s.pick()
	if err != nil || !found {
		return err
	}
	s.println()
	s.println(s.st.detail(t))
	s.println("Edit: 1) Title  2) Description  3) State  4) Difficulty  5) Due date  0) Cancel")

	op, err := s.in.choose()
	if err != nil {
		return err
	}

	var field session.Field
	var label, current string
	switch op {
	case "1":
		field, label, current = session.FieldTitle, "New title", t.Title
	case "2":
		field, label, current = session.FieldDescription, "New description", t.Description
	case "3":
		field, label, current = session.FieldState, "New state ["+stateNames()+"]", string(t.State)
	case "4":
		field, label, current = session.FieldDifficulty, "New difficulty ["+difficultyNames()+"]", t.Difficulty.String()
	case "5":
		field, label, current = session.FieldDueDate, "New due date YYYY-MM-DD, - to clear", t.DueDateString()
	default:
		s.println("Cancelled")
		s.selected = ""
		s.state = stateMain
		return nil
	}

	value, err := s.in.ask(label, current)
	if err != nil {
		return err
	}
	if _, err := s.sess.EditField(t.ID, field, value); err != nil {
		s.fail(err)
	} else {
		s.ok("Task updated")
	}
	s.selected = ""
	s.state = stateMain
	return nil
}
