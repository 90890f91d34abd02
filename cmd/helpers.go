package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/inovacc/notr/internal/core"
	"github.com/inovacc/notr/internal/store"
)

// newService hydrates a note service over the default store with the
// standard diagnostic logger.
func newService() *core.Service {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return core.NewService(store.GetDB(), core.WithLogger(logger))
}

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Delete this note? [y/N]: ")
func promptConfirm(prompt string) bool {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// displayTitle returns the note title or a generic placeholder when the
// title is unavailable.
func displayTitle(title string) string {
	if title == "" {
		return "this note"
	}

	return title
}
