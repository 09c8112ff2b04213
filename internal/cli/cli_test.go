package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command in an isolated data directory.
func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", dir)
	for _, k := range []string{"TODO_DATA_FILE", "TODO_BACKEND", "TODO_LOG_LEVEL", "TODO_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cmd := newRootCmd("1.2.3")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

const importDoc = `tasks:
  - title: Write report
    due_date: "2024-05-02"
    difficulty: Hard
  - title: buy milk
    state: Done
  - title: Call plumber
    due_date: "2024-04-01"
`

func writeImport(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(importDoc), 0o644))
	return path
}

func TestImportThenList(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "import", writeImport(t, dir))
	require.NoError(t, err)
	assert.Equal(t, "Imported 3 task(s)\n", out)

	out, err = run(t, dir, "", "list", "--sort", "title")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "buy milk"))
	assert.True(t, strings.HasSuffix(lines[1], "Call plumber"))
	assert.True(t, strings.HasSuffix(lines[2], "Write report"))
	assert.Contains(t, lines[2], "Hard")
	assert.Contains(t, lines[2], "2024-05-02")
}

func TestListFilters(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "", "import", writeImport(t, dir))
	require.NoError(t, err)

	out, err := run(t, dir, "", "list", "--state", "pending", "--sort", "due")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "Call plumber"))
	assert.True(t, strings.HasSuffix(lines[1], "Write report"))

	out, err = run(t, dir, "", "list", "--title", "MILK")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "Done")

	out, err = run(t, dir, "", "list", "--title", "nothing")
	require.NoError(t, err)
	assert.Equal(t, "No tasks found.\n", out)
}

func TestListRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "list", "--sort", "size")
	assert.EqualError(t, err, `unknown sort key "size" (want created, due or title)`)

	_, err = run(t, dir, "", "list", "--state", "Someday")
	assert.Error(t, err)
}

func TestImportStopsAtInvalidTask(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - title: ok\n  - title: \"\"\n"), 0o644))

	out, err := run(t, dir, "", "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task 2")
	assert.Equal(t, "Imported 1 task(s)\n", out)

	out, err = run(t, dir, "", "list")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestSQLiteBackendFlag(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "--backend", "sqlite", "import", writeImport(t, dir))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "todo", "todo.db"))
	require.NoError(t, err)

	out, err := run(t, dir, "", "--backend", "sqlite", "list")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestRootRunsMenu(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "1\nFrom the menu\n\n\n\n0\n")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Task added")
	assert.True(t, strings.HasSuffix(out, "Bye\n"))

	out, err = run(t, dir, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "From the menu")
}

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "todo 1.2.3\n", out)
}

func TestPrompt(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "prompt")
	require.NoError(t, err)
	assert.Contains(t, out, "tasks:")

	_, err = run(t, dir, "", "import", writeImport(t, dir))
	require.NoError(t, err)
	listed, err := run(t, dir, "", "list", "--title", "report")
	require.NoError(t, err)
	id := strings.Fields(listed)[0]

	out, err = run(t, dir, "", "prompt", id)
	require.NoError(t, err)
	assert.Contains(t, out, "- Title: Write report\n")
	assert.Contains(t, out, "- Call plumber (Pending)\n")

	_, err = run(t, dir, "", "prompt", "missing")
	assert.Error(t, err)
}
