package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the note collection as JSON to stdout",
	Long:  `Export every note as a JSON array, in collection order. The output uses the same layout as the persisted store, so it can be archived or inspected with standard tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(svc.Notes())
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
