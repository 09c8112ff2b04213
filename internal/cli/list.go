package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nissyi-gh/todo/internal/model"
	"github.com/nissyi-gh/todo/internal/tasklist"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	var (
		state  string
		title  string
		sortBy string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print tasks, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var preds []tasklist.Predicate
			if state != "" {
				s, err := model.ParseState(state)
				if err != nil {
					return err
				}
				preds = append(preds, tasklist.ByState(s))
			}
			if title != "" {
				preds = append(preds, tasklist.ByTitleContains(title))
			}
			cmp, err := comparatorFor(sortBy)
			if err != nil {
				return err
			}

			a, err := flags.open()
			if err != nil {
				return err
			}
			defer a.Close()

			tasks := tasklist.FilterAndSort(a.Session.Tasks(), preds, cmp)
			printTasks(cmd.OutOrStdout(), tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "Only tasks in this state")
	cmd.Flags().StringVar(&title, "title", "", "Only tasks whose title contains this text")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort by created, due or title")
	return cmd
}

func comparatorFor(name string) (tasklist.Comparator, error) {
	switch name {
	case "":
		return nil, nil
	case "created":
		return tasklist.ByCreatedAt, nil
	case "due":
		return tasklist.ByDueDate, nil
	case "title":
		return tasklist.ByTitle, nil
	}
	return nil, fmt.Errorf("unknown sort key %q (want created, due or title)", name)
}

func printTasks(w io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}
	for _, t := range tasks {
		due := t.DueDateString()
		if due == "" {
			due = "-"
		}
		fmt.Fprintf(w, "%-36s  %-11s  %-6s  %-10s  %s\n", t.ID, t.State, t.Difficulty, due, t.Title)
	}
}
