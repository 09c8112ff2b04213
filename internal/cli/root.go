package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nissyi-gh/todo/internal/app"
	"github.com/nissyi-gh/todo/internal/shell"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	dataFile   string
	backend    string
	verbose    bool
}

func (f *globalFlags) open() (*app.App, error) {
	return app.Open(app.Options{
		ConfigPath: f.configPath,
		DataFile:   f.dataFile,
		Backend:    f.backend,
		Verbose:    f.verbose,
	})
}

func newRootCmd(version string) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "A personal task manager",
		Long: `todo keeps a list of personal tasks with a title, description, state,
difficulty and optional due date.

Run without a subcommand for the interactive menu, or use "todo board" for
the full-screen board.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := flags.open()
			if err != nil {
				return err
			}
			defer a.Close()
			return shell.New(a.Session, cmd.InOrStdin(), cmd.OutOrStdout(), a.Logger).Run()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/todo/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flags.dataFile, "file", "f", "", "Task data file")
	rootCmd.PersistentFlags().StringVar(&flags.backend, "backend", "", "Storage backend: json or sqlite")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log to stderr at debug level")

	rootCmd.AddCommand(newBoardCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newImportCmd(flags))
	rootCmd.AddCommand(newPromptCmd(flags))
	rootCmd.AddCommand(newVersionCmd(version))
	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	if err := newRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
