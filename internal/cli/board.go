package cli

import (
	"github.com/spf13/cobra"

	"github.com/nissyi-gh/todo/internal/ui"
)

func newBoardCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the full-screen task board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := flags.open()
			if err != nil {
				return err
			}
			defer a.Close()

			a.Logger.Debug().Int("tasks", len(a.Session.Tasks())).Msg("starting board")
			return ui.Run(a.Session)
		},
	}
}
