// Package task implements the practice task tracker: prioritized tasks
// with a small lifecycle, persisted as a single JSON document.
//
// The public API mirrors the shell commands:
//   - Add, Start, Complete, Edit, Delete for the task lifecycle
//   - List, Search for querying
//
// Every operation loads the full collection from storage and, when it
// mutates, writes the full collection back.
package task

// Status represents the state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusInProgress indicates the task is being worked on.
	StatusInProgress Status = "in-progress"

	// StatusDone indicates the task is finished. Done is terminal.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority represents the importance of a task.
type Priority string

const (
	// PriorityLow is for tasks that can wait.
	PriorityLow Priority = "low"

	// PriorityMedium is the default priority.
	PriorityMedium Priority = "medium"

	// PriorityHigh is for tasks that should happen first.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// NormalizePriority lowercases and trims the input, falling back to
// PriorityMedium when the result is not a valid priority.
func NormalizePriority(input string) Priority {
	p := Priority(normalizeLower(input))
	if !p.IsValid() {
		return PriorityMedium
	}
	return p
}

// Task is a single tracked piece of practice work.
type Task struct {
	// ID is a positive integer, unique within the tasks collection.
	ID int `json:"id"`

	// Title is the short summary of the task.
	Title string `json:"title"`

	// Description provides additional context.
	Description string `json:"description"`

	// Priority is low, medium, or high.
	Priority Priority `json:"priority"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// Category is an optional free-text label, possibly AI-suggested.
	Category string `json:"category,omitempty"`

	// DueDate is an optional YYYY-MM-DD string. It is not validated as a
	// real calendar date.
	DueDate string `json:"due_date,omitempty"`

	// CreatedAt is when the task was created, fixed at creation.
	CreatedAt string `json:"created_at"`

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt string `json:"updated_at"`

	// CompletedAt is set only on the transition into done.
	CompletedAt string `json:"completed_at,omitempty"`
}
