package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nissyi-gh/todo/internal/model"
	"github.com/nissyi-gh/todo/internal/prompt"
	"github.com/nissyi-gh/todo/internal/session"
	"github.com/nissyi-gh/todo/internal/tasklist"
)

type appState int

const (
	stateList appState = iota
	stateAdd
	stateEditTitle
	stateConfirm
	stateDueDate
	stateEditDesc
)

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	detailStyle  = lipgloss.NewStyle().
			Padding(1, 2).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241"))
	descBoxStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241"))
)

type extraKeyMap struct {
	Add       key.Binding
	Advance   key.Binding
	Cancel    key.Binding
	Delete    key.Binding
	EditTitle key.Binding
	EditDesc  key.Binding
	DueDate   key.Binding
	Sort      key.Binding
	Filter    key.Binding
	Copy      key.Binding
	Prompt    key.Binding
}

func newExtraKeyMap() extraKeyMap {
	return extraKeyMap{
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a/n", "add"),
		),
		Advance: key.NewBinding(
			key.WithKeys("enter", "x"),
			key.WithHelp("enter/x", "next state"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cancel task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		EditTitle: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit title"),
		),
		EditDesc: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "edit desc"),
		),
		DueDate: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "due date"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "state filter"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy id"),
		),
		Prompt: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "copy breakdown prompt"),
		),
	}
}

func (k extraKeyMap) bindings() []key.Binding {
	return []key.Binding{k.Add, k.Advance, k.Cancel, k.Delete, k.EditTitle, k.EditDesc, k.DueDate, k.Sort, k.Filter, k.Copy, k.Prompt}
}

// Model is the top-level BubbleTea model for the board.
type Model struct {
	state      appState
	list       list.Model
	input      textinput.Model
	dateInput  dateInput
	descInput  textarea.Model
	sess       *session.Session
	keys       extraKeyMap
	sort       sortMode
	filter     stateFilter
	editTaskID string
	copyText   func(string) error
	status     string
	err        error
	width      int
	height     int
}

type tasksLoadedMsg []model.Task

// NewModel creates a new board model over sess.
func NewModel(sess *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.CharLimit = model.MaxTitleLen

	keys := newExtraKeyMap()

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	l := list.New(nil, delegate, 0, 0)
	l.Title = "todo"
	l.Styles.Title = titleStyle
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("task", "tasks")
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings

	ta := textarea.New()
	ta.Placeholder = "Task description..."
	ta.CharLimit = model.MaxDescriptionLen

	return Model{
		state:     stateList,
		list:      l,
		input:     ti,
		dateInput: newDateInput(),
		descInput: ta,
		sess:      sess,
		keys:      keys,
		filter:    filterAll,
		copyText:  clipboard.WriteAll,
	}
}

// Run starts the board in the alternate screen and blocks until it quits.
func Run(sess *session.Session) error {
	p := tea.NewProgram(NewModel(sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.loadTasks
}

func (m Model) loadTasks() tea.Msg {
	return tasksLoadedMsg(tasklist.FilterAndSort(m.sess.Tasks(), m.filter.predicates(), m.sort.comparator()))
}

func (m Model) selected() (TaskItem, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	return item, ok
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		contentWidth := msg.Width - h
		leftWidth := contentWidth * 60 / 100
		rightWidth := contentWidth - leftWidth
		m.list.SetSize(leftWidth, msg.Height-v)
		m.descInput.SetWidth(rightWidth - 6)
		m.descInput.SetHeight(msg.Height - v - 10)
		return m, nil

	case tasksLoadedMsg:
		now := m.sess.Now()
		items := make([]list.Item, len(msg))
		for i, t := range msg {
			items[i] = TaskItem{Task: t, Now: now}
		}
		cmd := m.list.SetItems(items)
		m.list.Title = fmt.Sprintf("todo · %s · %s", m.filter, m.sort)
		return m, cmd
	}

	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateAdd, stateEditTitle:
		return m.updateTitleInput(msg)
	case stateConfirm:
		return m.updateConfirm(msg)
	case stateDueDate:
		return m.updateDueDate(msg)
	case stateEditDesc:
		return m.updateEditDesc(msg)
	}

	return m, nil
}

// setState moves the selected task to s through the session.
func (m Model) setState(s model.State) (tea.Model, tea.Cmd) {
	item, ok := m.selected()
	if !ok {
		return m, nil
	}
	_, err := m.sess.Edit(item.Task.ID, func(t model.Task, now time.Time) (model.Task, error) {
		return model.SetState(t, s, now)
	})
	m.err = err
	return m, m.loadTasks
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		m.status = ""
		switch keyMsg.String() {
		case "a", "n":
			m.state = stateAdd
			m.err = nil
			m.input.Reset()
			cmd := m.input.Focus()
			return m, cmd
		case "enter", "x":
			if item, ok := m.selected(); ok {
				return m.setState(nextState(item.Task.State))
			}
		case "c":
			return m.setState(model.StateCancelled)
		case "e":
			if item, ok := m.selected(); ok {
				m.state = stateEditTitle
				m.editTaskID = item.Task.ID
				m.err = nil
				m.input.SetValue(item.Task.Title)
				cmd := m.input.Focus()
				return m, cmd
			}
		case "E":
			if item, ok := m.selected(); ok {
				m.state = stateEditDesc
				m.editTaskID = item.Task.ID
				m.err = nil
				m.descInput.Reset()
				m.descInput.SetValue(item.Task.Description)
				cmd := m.descInput.Focus()
				return m, cmd
			}
		case "D":
			if item, ok := m.selected(); ok {
				m.state = stateDueDate
				m.editTaskID = item.Task.ID
				m.err = nil
				m.dateInput = newDateInput()
				m.dateInput.SetDate(item.Task.DueDate)
				cmd := m.dateInput.Focus()
				return m, cmd
			}
		case "s":
			m.sort = (m.sort + 1) % sortModeCount
			return m, m.loadTasks
		case "f":
			m.filter = m.filter.next()
			return m, m.loadTasks
		case "y":
			if item, ok := m.selected(); ok {
				if err := m.copyText(item.Task.ID); err != nil {
					m.err = err
				} else {
					m.status = "copied " + item.Task.ID
				}
				return m, nil
			}
		case "p":
			if item, ok := m.selected(); ok {
				if err := m.copyText(prompt.GenerateFromTask(item.Task, m.sess.Tasks())); err != nil {
					m.err = err
				} else {
					m.status = "copied breakdown prompt for " + item.Task.Title
				}
				return m, nil
			}
		case "d":
			if _, ok := m.selected(); ok {
				m.state = stateConfirm
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateTitleInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			title := m.input.Value()
			var err error
			if m.state == stateAdd {
				_, err = m.sess.Add(model.Spec{Title: title})
			} else {
				_, err = m.sess.EditField(m.editTaskID, session.FieldTitle, title)
			}
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.state = stateList
			m.input.Blur()
			return m, m.loadTasks
		case "esc":
			m.state = stateList
			m.err = nil
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEditDesc(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if _, err := m.sess.EditField(m.editTaskID, session.FieldDescription, m.descInput.Value()); err != nil {
				m.err = err
			}
			m.state = stateList
			m.descInput.Blur()
			return m, m.loadTasks
		case "ctrl+c":
			m.state = stateList
			m.descInput.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.descInput, cmd = m.descInput.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y":
			if item, ok := m.selected(); ok {
				m.err = m.sess.Delete(item.Task.ID)
			}
			m.state = stateList
			return m, m.loadTasks
		case "n", "esc":
			m.state = stateList
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateDueDate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			var due *time.Time
			if !m.dateInput.IsEmpty() {
				d, err := m.dateInput.Date(m.sess.Now())
				if err != nil {
					m.err = err
					return m, nil
				}
				due = &d
			}
			_, err := m.sess.Edit(m.editTaskID, func(t model.Task, now time.Time) (model.Task, error) {
				return model.SetDueDate(t, due, now)
			})
			m.err = err
			m.state = stateList
			return m, m.loadTasks
		case "esc":
			m.state = stateList
			m.err = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func (m Model) renderDetail() string {
	item, ok := m.selected()
	if !ok {
		return statusStyle.Render("(no task selected)")
	}
	t := item.Task

	descContent := statusStyle.Render("(no description)")
	if t.Description != "" {
		descContent = t.Description
	}
	desc := descBoxStyle.Render(descContent)

	dueLine := ""
	if t.DueDate != nil {
		label := "due:         " + t.DueDateString()
		if t.IsOverdue(item.Now) {
			label = errorStyle.Render("⚠️ " + label)
		} else if t.IsDueToday(item.Now) {
			label = "📅 " + label
		}
		dueLine = "\n" + label
	}
	return fmt.Sprintf("%s\n\n%s\n\nstate:       %s\ndifficulty:  %s%s\ncreated:     %s\nlast edited: %s\nid:          %s\n\n%s",
		t.Title,
		desc,
		t.State,
		t.Difficulty,
		dueLine,
		t.CreatedAt.In(time.Local).Format("2006-01-02 15:04"),
		t.LastEditedAt.In(time.Local).Format("2006-01-02 15:04"),
		t.ID,
		statusStyle.Render("e: title  E: description  D: due date  y: copy id"),
	)
}

func (m Model) View() string {
	var errView string
	if m.err != nil {
		errView = "\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n"
	} else if m.status != "" {
		errView = "\n" + statusStyle.Render(m.status) + "\n"
	}

	switch m.state {
	case stateEditDesc:
		return appStyle.Render(
			titleStyle.Render("Edit Description") + "\n\n" +
				m.descInput.View() + "\n\n" +
				statusStyle.Render("esc: save • ctrl+c: cancel") +
				errView,
		)
	case stateAdd, stateEditTitle:
		header := "New Task"
		if m.state == stateEditTitle {
			header = "Edit Title"
		}
		return appStyle.Render(
			titleStyle.Render(header) + "\n\n" +
				m.input.View() + "\n\n" +
				statusStyle.Render("enter: save • esc: cancel") +
				errView,
		)
	case stateDueDate:
		return appStyle.Render(
			titleStyle.Render("Set Due Date") + "\n\n" +
				m.dateInput.View() + "\n\n" +
				statusStyle.Render("tab/→: next field • enter: save (blank clears) • esc: cancel") +
				errView,
		)
	case stateConfirm:
		item, _ := m.selected()
		return appStyle.Render(
			confirmStyle.Render("Delete Task?") + "\n\n" +
				"  " + item.Task.Title + "\n\n" +
				statusStyle.Render("y: delete • n/esc: cancel") +
				errView,
		)
	default:
		h, v := appStyle.GetFrameSize()
		contentWidth := m.width - h
		contentHeight := m.height - v
		leftWidth := contentWidth * 60 / 100
		rightWidth := contentWidth - leftWidth

		rightPane := detailStyle.
			Width(rightWidth).
			Height(contentHeight).
			Render(m.renderDetail())
		content := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), rightPane)
		return appStyle.Render(strings.TrimRight(content, "\n") + errView)
	}
}
