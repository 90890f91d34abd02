package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listSearch string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all notes as a table",
	Long:  `Display the note collection, newest first. Use --search to restrict the output to notes whose title or content contains the query.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		cfg := svc.Config()

		notes := svc.Filter(listSearch)
		if len(notes) == 0 {
			if listSearch != "" {
				_, _ = fmt.Fprintf(os.Stdout, "No notes match %q.\n", listSearch)
			} else {
				_, _ = fmt.Fprintln(os.Stdout, "No notes yet. Run 'notr add <title>' or 'notr' to create one.")
			}

			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ID\tTITLE\tCREATED\tUPDATED")

		for _, n := range notes {
			updated := ""
			if n.Edited() {
				updated = n.UpdatedAt.Format(cfg.TimeFormat)
			}

			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				shortID(n.ID), n.Title, n.CreatedAt.Format(cfg.TimeFormat), updated)
		}

		return w.Flush()
	},
}

// shortID abbreviates a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listSearch, "search", "", "Show only notes matching the query")
}
