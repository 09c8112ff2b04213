package shell

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nissyi-gh/todo/internal/model"
)

type styles struct {
	title   lipgloss.Style
	status  lipgloss.Style
	err     lipgloss.Style
	success lipgloss.Style
	label   lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Foreground(lipgloss.Color("170")).Bold(true),
		status:  r.NewStyle().Foreground(lipgloss.Color("241")),
		err:     r.NewStyle().Foreground(lipgloss.Color("196")),
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		label:   r.NewStyle().Foreground(lipgloss.Color("246")),
	}
}

// summary is the one-line form used in lists.
func (st styles) summary(t model.Task, now time.Time) string {
	due := ""
	if t.DueDate != nil {
		due = "  due " + t.DueDateString()
		if t.IsOverdue(now) {
			due = st.err.Render(due + " (overdue)")
		}
	}
	return fmt.Sprintf("%s %s  %s%s", t.State.Mark(), t.Title, st.status.Render(t.ID), due)
}

func (st styles) detail(t model.Task) string {
	dash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	rows := [][2]string{
		{"State", string(t.State)},
		{"Difficulty", t.Difficulty.String()},
		{"Created", t.CreatedAt.In(time.Local).Format(time.DateTime)},
		{"Last edited", t.LastEditedAt.In(time.Local).Format(time.DateTime)},
		{"Due", dash(t.DueDateString())},
		{"Description", dash(t.Description)},
		{"ID", t.ID},
	}
	var b strings.Builder
	b.WriteString(st.title.Render("# " + t.Title))
	for _, r := range rows {
		b.WriteString("\n   ")
		b.WriteString(st.label.Render(fmt.Sprintf("%-12s", r[0]+":")))
		b.WriteString(" ")
		b.WriteString(r[1])
	}
	return b.String()
}

func stateNames() string {
	names := make([]string, len(model.States))
	for i, s := range model.States {
		names[i] = string(s)
	}
	return strings.Join(names, "|")
}

func difficultyNames() string {
	names := make([]string, len(model.Difficulties))
	for i, d := range model.Difficulties {
		names[i] = d.String()
	}
	return strings.Join(names, "|")
}
