package core

import "errors"

// ErrEmptyTitle indicates a create or update with a title that is empty
// after trimming
var ErrEmptyTitle = errors.New("note title must not be empty")

// ErrNoteNotFound indicates an operation targeting an id that is not in
// the collection
var ErrNoteNotFound = errors.New("note not found")
