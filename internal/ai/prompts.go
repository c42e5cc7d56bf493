package ai

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/amckenna/artgrow/note"
	"github.com/amckenna/artgrow/task"
)

//go:embed templates/*.tmpl
var promptTemplates embed.FS

// System instructions for each AI-backed operation. These are fixed; all
// per-call context travels in the user prompt.
const (
	systemSummarizeNote = "You are an art mentor helping someone improve. " +
		"Given a note from their personal knowledge system, " +
		"summarize it as a short, practical tip (1-3 sentences)."

	systemSkillAnalysis = "You are an experienced drawing teacher. " +
		"Given a study note, identify which skills it shows progress in, " +
		"which weaknesses it reveals, and one exercise to address the biggest weakness."

	systemPracticeRoutine = "You are an experienced drawing teacher. " +
		"Given the student's struggles and their recent notes and tasks, " +
		"create a short numbered practice plan for today or the next few days. " +
		"Each item should be a concrete exercise (e.g., '10 min gesture warmup')."

	systemPracticeDrills = "You are an experienced drawing teacher. " +
		"Given one practice task and the student's recent notes, " +
		"create a short numbered list of warmup drills that build toward completing the task. " +
		"Keep each drill under fifteen minutes."

	systemTaskAnalysis = "You are a practice planner for an art student. " +
		"Given a task title and description, respond with a single JSON object " +
		`with the fields "priority" (low, medium, or high), "category", ` +
		`"due_date" (YYYY-MM-DD), and "tip" (one sentence). Respond with JSON only.`

	systemMentor = "You are a patient, experienced art mentor. " +
		"Answer the student's question concretely and briefly, " +
		"with specific exercises or references where they help."

	systemCritique = "You are an art teacher giving a critique. " +
		"Given a description of the student's artwork, point out what works, " +
		"the single most important thing to fix, and how to practice fixing it."

	systemAnatomy = "You are an anatomy reference for artists. " +
		"Explain the requested body part for the requested species: " +
		"the underlying structure, the landmarks visible from the surface, " +
		"and the mistakes artists commonly make drawing it."
)

var (
	summarizeNoteTmpl   = mustParsePromptTemplate("summarize-note.tmpl")
	skillAnalysisTmpl   = mustParsePromptTemplate("skill-analysis.tmpl")
	practiceRoutineTmpl = mustParsePromptTemplate("practice-routine.tmpl")
	practiceDrillsTmpl  = mustParsePromptTemplate("practice-drills.tmpl")
	taskAnalysisTmpl    = mustParsePromptTemplate("task-analysis.tmpl")
)

func mustParsePromptTemplate(name string) *template.Template {
	tmpl, err := template.ParseFS(promptTemplates, "templates/"+name)
	if err != nil {
		panic(fmt.Sprintf("parse prompt template %s: %v", name, err))
	}
	return tmpl
}

type promptData struct {
	Note         note.Note
	Task         task.Task
	TagList      string
	Struggles    string
	NotesSummary string
	TasksSummary string
}

func renderPrompt(tmpl *template.Template, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}

// formatNotesSummary renders one line per note for prompt context.
func formatNotesSummary(notes []note.Note) string {
	if len(notes) == 0 {
		return "(no notes yet)"
	}
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		lines = append(lines, fmt.Sprintf("- [%d] %s (tags: %s)", n.ID, n.Title, formatTagList(n.Tags)))
	}
	return strings.Join(lines, "\n")
}

// formatTasksSummary renders one line per task for prompt context.
func formatTasksSummary(tasks []task.Task) string {
	if len(tasks) == 0 {
		return "(no tasks yet)"
	}
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		category := t.Category
		if category == "" {
			category = "-"
		}
		lines = append(lines, fmt.Sprintf("- [%d] (%s/%s) [%s] %s", t.ID, t.Status, t.Priority, category, t.Title))
	}
	return strings.Join(lines, "\n")
}

func formatTagList(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}
