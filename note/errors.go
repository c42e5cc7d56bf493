package note

import "errors"

// ErrNoteNotFound is returned when a note with the given ID doesn't exist.
var ErrNoteNotFound = errors.New("note not found")
