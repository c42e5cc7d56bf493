package ai

import (
	"context"
	"fmt"

	"github.com/amckenna/artgrow/note"
	"github.com/amckenna/artgrow/task"
)

// recentLimit bounds how much stored context travels in a prompt.
const recentLimit = 10

// Assistant runs the AI-backed operations against the stored notes and
// tasks.
type Assistant struct {
	client Client
	notes  *note.Store
	tasks  *task.Store
}

// NewAssistant returns an Assistant backed by client and the given stores.
func NewAssistant(client Client, notes *note.Store, tasks *task.Store) *Assistant {
	return &Assistant{client: client, notes: notes, tasks: tasks}
}

// SummarizeNote condenses the note into a short practical tip.
func (a *Assistant) SummarizeNote(ctx context.Context, id int) (string, error) {
	n, err := a.notes.Get(id)
	if err != nil {
		return "", err
	}
	prompt, err := renderPrompt(summarizeNoteTmpl, promptData{Note: *n, TagList: formatTagList(n.Tags)})
	if err != nil {
		return "", err
	}
	return a.client.Generate(ctx, systemSummarizeNote, prompt)
}

// SkillAnalysis reports the strengths and weaknesses a study note reveals.
func (a *Assistant) SkillAnalysis(ctx context.Context, id int) (string, error) {
	n, err := a.notes.Get(id)
	if err != nil {
		return "", err
	}
	prompt, err := renderPrompt(skillAnalysisTmpl, promptData{Note: *n, TagList: formatTagList(n.Tags)})
	if err != nil {
		return "", err
	}
	return a.client.Generate(ctx, systemSkillAnalysis, prompt)
}

// GeneratePractice proposes warmup drills building toward the task.
func (a *Assistant) GeneratePractice(ctx context.Context, taskID int) (string, error) {
	t, err := a.tasks.Get(taskID)
	if err != nil {
		return "", err
	}
	notes, err := a.recentNotes()
	if err != nil {
		return "", err
	}
	prompt, err := renderPrompt(practiceDrillsTmpl, promptData{
		Task:         *t,
		NotesSummary: formatNotesSummary(notes),
	})
	if err != nil {
		return "", err
	}
	return a.client.Generate(ctx, systemPracticeDrills, prompt)
}

// SuggestPractice builds a practice plan from the student's struggles and
// their recent notes and tasks.
func (a *Assistant) SuggestPractice(ctx context.Context, struggles string) (string, error) {
	notes, err := a.recentNotes()
	if err != nil {
		return "", err
	}
	tasks, err := a.recentTasks()
	if err != nil {
		return "", err
	}
	prompt, err := renderPrompt(practiceRoutineTmpl, promptData{
		Struggles:    struggles,
		NotesSummary: formatNotesSummary(notes),
		TasksSummary: formatTasksSummary(tasks),
	})
	if err != nil {
		return "", err
	}
	return a.client.Generate(ctx, systemPracticeRoutine, prompt)
}

// Mentor answers a free-form question.
func (a *Assistant) Mentor(ctx context.Context, question string) (string, error) {
	return a.client.Generate(ctx, systemMentor, question)
}

// Critique responds to a description of the student's artwork.
func (a *Assistant) Critique(ctx context.Context, description string) (string, error) {
	return a.client.Generate(ctx, systemCritique, fmt.Sprintf("Critique this artwork: %s", description))
}

// Anatomy explains one body part of one species for artists.
func (a *Assistant) Anatomy(ctx context.Context, species, bodyPart string) (string, error) {
	return a.client.Generate(ctx, systemAnatomy, fmt.Sprintf("Species: %s\nBody part: %s", species, bodyPart))
}

// AnalyzeTask asks the model to classify a new task. The returned
// TaskAnalysis is always usable: when the call fails the defaults come
// back with the error so the caller can report the failure and continue,
// and when only parsing fails the defaults come back with a nil error.
func (a *Assistant) AnalyzeTask(ctx context.Context, title, description string) (TaskAnalysis, error) {
	prompt, err := renderPrompt(taskAnalysisTmpl, promptData{Task: task.Task{Title: title, Description: description}})
	if err != nil {
		return DefaultTaskAnalysis(), err
	}
	raw, err := a.client.Generate(ctx, systemTaskAnalysis, prompt)
	if err != nil {
		return DefaultTaskAnalysis(), err
	}
	analysis, _ := ParseTaskAnalysis(raw)
	return analysis, nil
}

func (a *Assistant) recentNotes() ([]note.Note, error) {
	notes, err := a.notes.List()
	if err != nil {
		return nil, err
	}
	if len(notes) > recentLimit {
		notes = notes[len(notes)-recentLimit:]
	}
	return notes, nil
}

func (a *Assistant) recentTasks() ([]task.Task, error) {
	tasks, err := a.tasks.List("")
	if err != nil {
		return nil, err
	}
	if len(tasks) > recentLimit {
		tasks = tasks[len(tasks)-recentLimit:]
	}
	return tasks, nil
}
