package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nissyi-gh/todo/internal/importer"
)

func newImportCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Add tasks from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			a, err := flags.open()
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := importer.Import(a.Session, data)
			if n > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d task(s)\n", n)
			}
			if err != nil {
				a.Logger.Warn().Err(err).Int("imported", n).Msg("import stopped")
				return err
			}
			return nil
		},
	}
}
