package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title> [content...]",
	Short: "Create a note without opening the interface",
	Long: `Add a new note directly from the command line. The first argument is the
title; any remaining arguments are joined into the note content.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()

		note, err := svc.Create(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Added: %s (%s)\n", note.Title, note.ID)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
