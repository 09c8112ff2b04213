package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nissyi-gh/todo/internal/model"
)

const (
	fieldYear = iota
	fieldMonth
	fieldDay
	dateFieldCount
)

// dateInput edits a due date as three numeric fields.
type dateInput struct {
	fields [dateFieldCount]textinput.Model
	focus  int
}

func newDateInput() dateInput {
	placeholders := [dateFieldCount]string{"YYYY", "MM", "DD"}
	charLimits := [dateFieldCount]int{4, 2, 2}

	var fields [dateFieldCount]textinput.Model
	for i := range fields {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = charLimits[i]
		ti.Width = charLimits[i] + 2
		ti.Validate = digitsOnly
		fields[i] = ti
	}
	return dateInput{fields: fields}
}

func digitsOnly(s string) error {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("digits only")
		}
	}
	return nil
}

func (d *dateInput) Focus() tea.Cmd {
	return d.focusField(fieldYear)
}

// SetDate fills the fields from a task's due date; nil leaves them blank.
func (d *dateInput) SetDate(due *time.Time) {
	if due == nil {
		for i := range d.fields {
			d.fields[i].SetValue("")
		}
		return
	}
	parts := strings.SplitN(due.In(time.Local).Format(model.DateLayout), "-", dateFieldCount)
	for i := range d.fields {
		d.fields[i].SetValue(parts[i])
	}
}

// Date assembles the entered date. A blank year or month defaults to the
// one in now; the day is required.
func (d *dateInput) Date(now time.Time) (time.Time, error) {
	now = now.In(time.Local)
	yyyy := strings.TrimSpace(d.fields[fieldYear].Value())
	mm := strings.TrimSpace(d.fields[fieldMonth].Value())
	dd := strings.TrimSpace(d.fields[fieldDay].Value())

	if yyyy == "" {
		yyyy = fmt.Sprintf("%04d", now.Year())
	}
	if mm == "" {
		mm = fmt.Sprintf("%02d", int(now.Month()))
	}
	if dd == "" {
		return time.Time{}, fmt.Errorf("day is required")
	}

	dateStr := fmt.Sprintf("%s-%s-%s", yyyy, padLeft(mm, 2), padLeft(dd, 2))
	due := model.ParseDueDate(dateStr)
	if due == nil {
		return time.Time{}, fmt.Errorf("invalid date: %s", dateStr)
	}
	return *due, nil
}

func padLeft(s string, length int) string {
	for len(s) < length {
		s = "0" + s
	}
	return s
}

func (d *dateInput) IsEmpty() bool {
	for _, f := range d.fields {
		if f.Value() != "" {
			return false
		}
	}
	return true
}

func (d *dateInput) focusField(idx int) tea.Cmd {
	d.focus = idx
	var cmds []tea.Cmd
	for i := range d.fields {
		if i == idx {
			cmds = append(cmds, d.fields[i].Focus())
		} else {
			d.fields[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

func (d dateInput) Update(msg tea.Msg) (dateInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "right":
			if d.focus < fieldDay {
				cmd := d.focusField(d.focus + 1)
				return d, cmd
			}
			return d, nil
		case "shift+tab", "left":
			if d.focus > fieldYear {
				cmd := d.focusField(d.focus - 1)
				return d, cmd
			}
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.fields[d.focus], cmd = d.fields[d.focus].Update(msg)
	return d, cmd
}

func (d dateInput) View() string {
	return d.fields[fieldYear].View() + " - " + d.fields[fieldMonth].View() + " - " + d.fields[fieldDay].View()
}
