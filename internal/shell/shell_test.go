package shell

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nissyi-gh/todo/internal/model"
	"github.com/nissyi-gh/todo/internal/session"
	"github.com/nissyi-gh/todo/internal/store"
)

func newSession(t *testing.T, path string) *session.Session {
	t.Helper()
	fs, err := store.NewFileStore(path)
	require.NoError(t, err)
	n := 0
	return session.Open(fs,
		session.WithClock(model.ClockFunc(func() time.Time {
			return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		})),
		session.WithIDGenerator(model.IDFunc(func() string {
			n++
			return fmt.Sprintf("t-%d", n)
		})),
	)
}

func run(t *testing.T, sess *session.Session, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, New(sess, in, &out, zerolog.Nop()).Run())
	return out.String()
}

func TestExit(t *testing.T) {
	sess := newSession(t, filepath.Join(t.TempDir(), "tasks.json"))
	out := run(t, sess, "0")
	assert.Contains(t, out, "1) Add task")
	assert.Contains(t, out, "Bye")
}

func TestEOFExits(t *testing.T) {
	sess := newSession(t, filepath.Join(t.TempDir(), "tasks.json"))
	var out bytes.Buffer
	require.NoError(t, New(sess, strings.NewReader(""), &out, zerolog.Nop()).Run())
	assert.Contains(t, out.String(), "Bye")
}

func TestInvalidOptionReprompts(t *testing.T) {
	sess := newSession(t, filepath.Join(t.TempDir(), "tasks.json"))
	out := run(t, sess, "9", "0")
	assert.Contains(t, out, "Invalid option")
	assert.Equal(t, 2, strings.Count(out, "=== todo ==="))
}

func TestAddThenList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	sess := newSession(t, path)
	out := run(t, sess,
		"1", "Buy milk", "", "2024-01-10", "",
		"2", "1", "0",
		"0",
	)
	assert.Contains(t, out, "Task added: t-1")
	assert.Contains(t, out, "[ ] Buy milk  t-1  due 2024-01-10")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Buy milk"`)
}

func TestAddInvalidShowsReason(t *testing.T) {
	sess := newSession(t, filepath.Join(t.TempDir(), "tasks.json"))
	out := run(t, sess, "1", "", "", "", "", "0")
	assert.Contains(t, out, "title is required")
	assert.Empty(t, sess.Tasks())
}

func TestFilterSearchAndSort(t *testing.T) {
	sess := newSession(t, filepath.Join(t.TempDir(), "tasks.json"))
	_, err := sess.Add(model.Spec{Title: "Zebra", DueDate: "2024-03-01"})
	require.NoError(t, err)
	_, err = sess.Add(model.Spec{Title: "apple", State: "Done"})
	require.NoError(t, err)
	_, err = sess.Add(model.Spec{Title: "Mango", DueDate: "2024-02-01"})
	require.NoError(t, err)

	out := run(t, sess,
		"2",
		"2", "done",
		"3", "ZEB",
		"4", "3",
		"4", "2",
		"2", "Sleeping",
		"0", "0",
	)
	assert.Contains(t, out, "[x] apple")
	assert.Contains(t, out, "[ ] Zebra")
	assert.Contains(t, out, `invalid state "Sleeping"`)

	byTitle := out[strings.Index(out, "3) By title"):]
	assert.Less(t, strings.Index(byTitle, "apple"), strings.Index(byTitle, "Mango"))
	assert.Less(t, strings.Index(byTitle, "Mango"), strings.Index(byTitle, "Zebra"))
}

func TestStartupShowsPendingByDueDate(t *testing.T) {
	sess := newSession(t, filepath.Join(t.TempDir(), "tasks.json"))
	_, err := sess.Add(model.Spec{Title: "later"})
	require.NoError(t, err)
	_, err = sess.Add(model.Spec{Title: "soon", DueDate: "2024-01-05"})
	require.NoError(t, err)

	out := run(t, sess, "0")
	head := out[:strings.Index(out, "=== todo ===")]
	assert.Contains(t, head, "Pending, by due date")
	assert.Less(t, strings.Index(head, "soon"), strings.Index(head, "later"))
}

func TestViewAndEdit(t *testing.T) {
	sess := newSession(t, filepath.Join(t.TempDir(), "tasks.json"))
	_, err := sess.Add(model.Spec{Title: "Buy milk", Description: "2 litres"})
	require.NoError(t, err)

	out := run(t, sess,
		"3", "t-1", "1", "3", "in progress",
		"4", "t-1", "1", "Buy oat milk",
		"0",
	)
	assert.Contains(t, out, "# Buy milk")
	assert.Contains(t, out, "2 litres")
	assert.Equal(t, 2, strings.Count(out, "Task updated"))

	got, err := sess.Find("t-1")
	require.NoError(t, err)
	assert.Equal(t, model.StateInProgress, got.State)
	assert.Equal(t, "Buy oat milk", got.Title)
}

func TestEditInvalidStateKeepsTask(t *testing.T) {
	sess := newSession(t, filepath.Join(t.TempDir(), "tasks.json"))
	before, err := sess.Add(model.Spec{Title: "Buy milk"})
	require.NoError(t, err)

	out := run(t, sess, "4", "t-1", "3", "InvalidState", "0")
	assert.Contains(t, out, `invalid state "InvalidState"`)

	got, err := sess.Find("t-1")
	require.NoError(t, err)
	assert.Equal(t, before, got)
}

func TestEditUnknownID(t *testing.T) {
	sess := newSession(t, filepath.Join(t.TempDir(), "tasks.json"))
	out := run(t, sess, "4", "nope", "0")
	assert.Contains(t, out, "task not found")
}

func TestEditClearDueDateAndCancel(t *testing.T) {
	sess := newSession(t, filepath.Join(t.TempDir(), "tasks.json"))
	_, err := sess.Add(model.Spec{Title: "x", DueDate: "2024-05-05"})
	require.NoError(t, err)

	out := run(t, sess, "4", "t-", "5", "-", "4", "t-1", "0", "0")
	assert.Contains(t, out, "Cancelled")
	got, err := sess.Find("t-1")
	require.NoError(t, err)
	assert.Nil(t, got.DueDate)
}

func TestMalformedFileShowsNoTasks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))
	sess := newSession(t, path)

	out := run(t, sess, "2", "1", "0", "0")
	assert.Contains(t, out, "No tasks")
}

func TestAddVeryLongDescriptionIsTruncated(t *testing.T) {
	sess := newSession(t, filepath.Join(t.TempDir(), "tasks.json"))
	out := run(t, sess, "1", "Title", strings.Repeat("x", 70000), "", "", "0")
	assert.Contains(t, out, "Task added: t-1")

	require.Len(t, sess.Tasks(), 1)
	assert.Equal(t, strings.Repeat("x", model.MaxDescriptionLen), sess.Tasks()[0].Description)
}

func TestLastLineWithoutNewline(t *testing.T) {
	sess := newSession(t, filepath.Join(t.TempDir(), "tasks.json"))
	var out bytes.Buffer
	require.NoError(t, New(sess, strings.NewReader("9\n0"), &out, zerolog.Nop()).Run())
	assert.Contains(t, out.String(), "Invalid option")
	assert.True(t, strings.HasSuffix(out.String(), "Bye\n"))
}
