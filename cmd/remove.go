package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/inovacc/notr/internal/core"
	"github.com/inovacc/notr/internal/model"
	"github.com/spf13/cobra"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a note by id",
	Long: `Remove a note from the collection. The id may be abbreviated to any
unique prefix as shown by 'notr list'. Deletion asks for confirmation unless
--yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()

		note, err := findByPrefix(svc, args[0])
		if err != nil {
			return err
		}

		if !removeYes {
			if !promptConfirm(fmt.Sprintf("Delete note '%s'? [y/N]: ", displayTitle(note.Title))) {
				_, _ = fmt.Fprintln(os.Stdout, "Cancelled.")

				return nil
			}
		}

		if err := svc.Delete(note.ID); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Deleted: %s\n", displayTitle(note.Title))

		return nil
	},
}

// findByPrefix resolves an id prefix to exactly one note.
func findByPrefix(svc *core.Service, prefix string) (model.Note, error) {
	var (
		found model.Note
		count int
	)

	for _, n := range svc.Notes() {
		if strings.HasPrefix(n.ID, prefix) {
			found = n
			count++
		}
	}

	switch count {
	case 0:
		return model.Note{}, fmt.Errorf("no note with id %q", prefix)
	case 1:
		return found, nil
	default:
		return model.Note{}, fmt.Errorf("id %q is ambiguous (%d matches)", prefix, count)
	}
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip confirmation prompt")
}
