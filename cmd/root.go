package cmd

import (
	"errors"
	"os"

	"github.com/inovacc/notr/internal/application"
	"github.com/inovacc/notr/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A local note-taking application",
	Long: `Notr is a terminal note-taking application. Notes live in a local
store in your user configuration directory; nothing ever leaves your machine.

Run 'notr' without arguments to open the interactive interface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("the interactive interface requires a terminal; use 'notr list' or 'notr export' for plain output")
		}

		return cli.Run(newService())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}
