package task

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amckenna/artgrow/internal/stamp"
	"github.com/amckenna/artgrow/internal/storage"
)

// AddOptions configures a new task.
type AddOptions struct {
	// Priority is normalized; anything other than low/medium/high becomes
	// medium.
	Priority string

	// Category is an optional label, often taken from an AI suggestion.
	Category string

	// DueDate is an optional YYYY-MM-DD string.
	DueDate string
}

// Add creates a new task in status todo.
func (s *Store) Add(title, description string, opts AddOptions) (*Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	now := stamp.Now()
	created := Task{
		ID:          storage.NextID(taskIDs(tasks)),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Priority:    NormalizePriority(opts.Priority),
		Status:      StatusTodo,
		Category:    strings.TrimSpace(opts.Category),
		DueDate:     strings.TrimSpace(opts.DueDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tasks = append(tasks, created)
	if err := s.save(tasks); err != nil {
		return nil, err
	}

	return &created, nil
}

// Get returns the task with the given id, or ErrTaskNotFound.
func (s *Store) Get(id int) (*Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, ErrTaskNotFound
}

// Start marks the task as in-progress. Done is terminal: starting a done
// task returns ErrTaskDone.
func (s *Store) Start(id int) (*Task, error) {
	return s.transition(id, StatusInProgress)
}

// Complete marks the task as done and stamps CompletedAt.
func (s *Store) Complete(id int) (*Task, error) {
	return s.transition(id, StatusDone)
}

func (s *Store) transition(id int, status Status) (*Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}

		if tasks[i].Status == StatusDone && status != StatusDone {
			return nil, ErrTaskDone
		}

		now := stamp.Now()
		tasks[i].Status = status
		tasks[i].UpdatedAt = now
		if status == StatusDone {
			tasks[i].CompletedAt = now
		}

		if err := s.save(tasks); err != nil {
			return nil, err
		}
		return &tasks[i], nil
	}

	return nil, ErrTaskNotFound
}

// List returns tasks, optionally filtered by exact status, ordered by
// (status, priority, id) ascending. Status and priority compare as plain
// strings, so priorities order as high < low < medium; the display layer
// and callers rely on this being stable, not on it ranking severity.
func (s *Store) List(statusFilter string) ([]Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	if statusFilter != "" {
		status := Status(normalizeLower(statusFilter))
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q (valid: todo, in-progress, done)", ErrInvalidStatus, statusFilter)
		}
		filtered := tasks[:0:0]
		for _, t := range tasks {
			if t.Status == status {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Status != tasks[j].Status {
			return tasks[i].Status < tasks[j].Status
		}
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority < tasks[j].Priority
		}
		return tasks[i].ID < tasks[j].ID
	})

	return tasks, nil
}

// Search returns tasks whose title, description, or category contains
// query, case-insensitively, in storage order.
func (s *Store) Search(query string) ([]Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	query = normalizeLower(query)
	var matches []Task
	for _, t := range tasks {
		if containsFold(t.Title, query) || containsFold(t.Description, query) || containsFold(t.Category, query) {
			matches = append(matches, t)
		}
	}
	return matches, nil
}

// EditOptions carries replacement values for Edit. A field left blank
// keeps the existing value. Priority is replaced only when the new value
// is a valid priority; anything else is ignored.
type EditOptions struct {
	Title       string
	Description string
	Priority    string
	Category    string
	DueDate     string
}

// Edit applies the non-blank fields of opts to the task with the given id.
// UpdatedAt is refreshed even when every field is blank.
func (s *Store) Edit(id int, opts EditOptions) (*Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}

		if title := strings.TrimSpace(opts.Title); title != "" {
			tasks[i].Title = title
		}
		if description := strings.TrimSpace(opts.Description); description != "" {
			tasks[i].Description = description
		}
		if priority := Priority(normalizeLower(opts.Priority)); priority.IsValid() {
			tasks[i].Priority = priority
		}
		if category := strings.TrimSpace(opts.Category); category != "" {
			tasks[i].Category = category
		}
		if due := strings.TrimSpace(opts.DueDate); due != "" {
			tasks[i].DueDate = due
		}
		tasks[i].UpdatedAt = stamp.Now()

		if err := s.save(tasks); err != nil {
			return nil, err
		}
		return &tasks[i], nil
	}

	return nil, ErrTaskNotFound
}

// Delete removes the task with the given id at any state, or returns
// ErrTaskNotFound.
func (s *Store) Delete(id int) error {
	tasks, err := s.load()
	if err != nil {
		return err
	}

	remaining := tasks[:0:0]
	for _, t := range tasks {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(tasks) {
		return ErrTaskNotFound
	}

	return s.save(remaining)
}
