package task

import "errors"

var (
	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskDone is returned when starting a task that is already done.
	ErrTaskDone = errors.New("task is already done")

	// ErrInvalidStatus is returned when an invalid status filter is provided.
	ErrInvalidStatus = errors.New("invalid status")
)
