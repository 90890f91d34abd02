package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage notr configuration",
	Long: `Show or change notr settings.

Run without a subcommand to print the current values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := newService().Config()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "preview-length\t%d\n", cfg.PreviewLength)
		_, _ = fmt.Fprintf(w, "time-format\t%s\n", cfg.TimeFormat)

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
