package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/notr/internal/application"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(os.Stdout, "%s version %s\n", application.AppName, Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
