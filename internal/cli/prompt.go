package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nissyi-gh/todo/internal/prompt"
)

func newPromptCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt [ID]",
		Short: "Print an assistant prompt that answers in import format",
		Long: `Print a prompt for an LLM assistant. Its reply can be saved and loaded
with "todo import". With an ID the prompt asks to break that task down.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), prompt.GenerateNew())
				return nil
			}

			a, err := flags.open()
			if err != nil {
				return err
			}
			defer a.Close()

			task, err := a.Session.Find(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), prompt.GenerateFromTask(task, a.Session.Tasks()))
			return nil
		},
	}
}
