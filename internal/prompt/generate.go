// Package prompt builds text for an LLM assistant that answers with tasks in
// the YAML format accepted by "todo import".
package prompt

import (
	"fmt"
	"strings"

	"github.com/nissyi-gh/todo/internal/model"
)

const yamlFormat = `Reply with a single YAML code block in the format below and nothing else.

` + "```yaml" + `
tasks:
  - title: "Task title"
    description: "What needs doing"
    due_date: "YYYY-MM-DD"
    difficulty: "Medium"
` + "```" + `

Fields:
- title: (required) at most 100 characters
- description: (optional) at most 500 characters
- due_date: (optional) YYYY-MM-DD
- difficulty: (optional) Easy, Medium or Hard
- state: (optional) Pending, InProgress, Done or Cancelled; defaults to Pending`

// GenerateNew returns a prompt for planning tasks from scratch.
func GenerateNew() string {
	return fmt.Sprintf(`You are a task planning assistant.
Split the user's request into tasks of a sensible size.

%s
`, yamlFormat)
}

// GenerateFromTask returns a prompt for breaking task down into smaller
// tasks. Titles in existing are listed so the reply does not repeat them.
func GenerateFromTask(task model.Task, existing []model.Task) string {
	var sb strings.Builder

	sb.WriteString("You are a task planning assistant.\n")
	sb.WriteString("Break the task below into smaller, concrete tasks.\n\n")

	sb.WriteString("## Task\n")
	sb.WriteString(fmt.Sprintf("- Title: %s\n", task.Title))
	if task.Description != "" {
		sb.WriteString(fmt.Sprintf("- Description: %s\n", task.Description))
	}
	if task.DueDate != nil {
		sb.WriteString(fmt.Sprintf("- Due: %s (no subtask may be due later)\n", task.DueDateString()))
	}
	sb.WriteString(fmt.Sprintf("- Difficulty: %s\n", task.Difficulty))

	var others []model.Task
	for _, t := range existing {
		if t.ID != task.ID && t.State != model.StateCancelled {
			others = append(others, t)
		}
	}
	if len(others) > 0 {
		sb.WriteString("\n## Existing tasks\n")
		for _, t := range others {
			sb.WriteString(fmt.Sprintf("- %s (%s)\n", t.Title, t.State))
		}
		sb.WriteString("\nDo not repeat any of the existing tasks.\n")
	}

	sb.WriteString("\n")
	sb.WriteString(yamlFormat)
	sb.WriteString("\n")

	return sb.String()
}
