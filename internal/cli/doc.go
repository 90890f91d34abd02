// Package cli provides the terminal user interface for notr.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
// The interface is a single [NotesModel] whose session state selects the
// active view:
//   - List: filterable list of notes with actions
//   - Search: live substring filtering of the list
//   - Add/Edit: shared title+content form with validation
//   - View: read-only note rendering with relative ages
//   - ConfirmDelete: y/N confirmation naming the note
//
// At most one state is active at a time; Escape always leaves the active
// form and discards any unsaved draft.
//
// # Styling
//
// Use Lipgloss for consistent styling across components. Common styles
// are defined as package-level variables for reuse.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
