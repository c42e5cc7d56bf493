package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amckenna/artgrow/note"
	"github.com/amckenna/artgrow/task"
)

const helpText = `
Commands:

  # Notes (PKMS)
  add-note                      - create a new note
  list-notes                    - list all notes
  view-note <id>                - show one note
  edit-note <id>                - edit a note (blank keeps the current value)
  delete-note <id>              - delete a note
  search-notes <query>          - search title/content/tags
  filter-notes tag <name>       - list notes carrying an exact tag

  # Tasks
  add-task                      - create a new task (with AI suggestions)
  list-tasks [status]           - list tasks (optionally filter by todo/in-progress/done)
  start-task <id>               - mark a task as in-progress
  complete-task <id>            - mark a task as done
  edit-task <id>                - edit a task (blank keeps the current value)
  delete-task <id>              - delete a task
  search-tasks <query>          - search title/description/category

  # AI helpers
  ai-summarize-note <id>        - summarize a note as a short tip
  ai-skill-analysis <id>        - analyze the skills a note shows
  ai-generate-practice <id>     - warmup drills for a task
  ai-suggest-practice           - suggest a practice routine
  ai-mentor <question>          - ask the mentor a question
  ai-critique <description>     - get a critique of described artwork
  ai-anatomy <species> <part>   - anatomy notes for artists

  help                          - show this help
  quit / exit                   - exit the program
`

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, helpText, "\n")
}

// dispatch runs one command line. It returns false when the session
// should end.
func (s *Shell) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		s.printHelp()

	case "add-note":
		s.addNote()
	case "list-notes":
		s.listNotes()
	case "view-note":
		if id, ok := s.noteID(args, "Usage: view-note <id>"); ok {
			s.viewNote(id)
		}
	case "edit-note":
		if id, ok := s.noteID(args, "Usage: edit-note <id>"); ok {
			s.editNote(id)
		}
	case "delete-note":
		if id, ok := s.noteID(args, "Usage: delete-note <id>"); ok {
			s.deleteNote(id)
		}
	case "search-notes":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "Usage: search-notes <query>")
			break
		}
		s.searchNotes(strings.Join(args, " "))
	case "filter-notes":
		if len(args) < 2 || strings.ToLower(args[0]) != "tag" {
			fmt.Fprintln(s.out, "Usage: filter-notes tag <name>")
			break
		}
		s.filterNotes(strings.Join(args[1:], " "))

	case "add-task":
		s.addTask(ctx)
	case "list-tasks":
		status := ""
		if len(args) > 0 {
			status = args[0]
		}
		s.listTasks(status)
	case "start-task":
		if id, ok := s.taskID(args, "Usage: start-task <id>"); ok {
			s.startTask(id)
		}
	case "complete-task":
		if id, ok := s.taskID(args, "Usage: complete-task <id>"); ok {
			s.completeTask(id)
		}
	case "edit-task":
		if id, ok := s.taskID(args, "Usage: edit-task <id>"); ok {
			s.editTask(id)
		}
	case "delete-task":
		if id, ok := s.taskID(args, "Usage: delete-task <id>"); ok {
			s.deleteTask(id)
		}
	case "search-tasks":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "Usage: search-tasks <query>")
			break
		}
		s.searchTasks(strings.Join(args, " "))

	case "ai-summarize-note":
		if id, ok := s.noteID(args, "Usage: ai-summarize-note <id>"); ok {
			s.aiSummarizeNote(ctx, id)
		}
	case "ai-skill-analysis":
		if id, ok := s.noteID(args, "Usage: ai-skill-analysis <id>"); ok {
			s.aiSkillAnalysis(ctx, id)
		}
	case "ai-generate-practice":
		if id, ok := s.taskID(args, "Usage: ai-generate-practice <id>"); ok {
			s.aiGeneratePractice(ctx, id)
		}
	case "ai-suggest-practice":
		s.aiSuggestPractice(ctx)
	case "ai-mentor":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "Usage: ai-mentor <question>")
			break
		}
		s.aiMentor(ctx, strings.Join(args, " "))
	case "ai-critique":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "Usage: ai-critique <description>")
			break
		}
		s.aiCritique(ctx, strings.Join(args, " "))
	case "ai-anatomy":
		if len(args) < 2 {
			fmt.Fprintln(s.out, "Usage: ai-anatomy <species> <body_part>")
			break
		}
		s.aiAnatomy(ctx, args[0], strings.Join(args[1:], " "))

	default:
		fmt.Fprintf(s.out, "Unknown command: %s. Type 'help' to see commands.\n", cmd)
	}
	return true
}

func (s *Shell) noteID(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(s.out, "Note id must be an integer.")
		return 0, false
	}
	return id, true
}

func (s *Shell) taskID(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(s.out, "Task id must be an integer.")
		return 0, false
	}
	return id, true
}

func (s *Shell) addNote() {
	fmt.Fprintln(s.out, ">>> Creating a new note")
	title, ok := s.promptLine("Title: ")
	if !ok {
		return
	}
	content, ok := s.promptMultiline("Content (finish with an empty line):")
	if !ok {
		return
	}
	tags, ok := s.promptLine("Tags (comma-separated, e.g., anatomy, gesture): ")
	if !ok {
		return
	}

	created, err := s.notes.Add(title, content, splitTags(tags))
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Saved note #%d\n", created.ID)
}

func (s *Shell) listNotes() {
	notes, err := s.notes.List()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if len(notes) == 0 {
		fmt.Fprintln(s.out, "No notes yet. Add one with `add-note`.")
		return
	}
	fmt.Fprintln(s.out, "Your notes:")
	s.printNoteTable(notes)
}

func (s *Shell) viewNote(id int) {
	n, err := s.notes.Get(id)
	if err != nil {
		s.reportNoteError(id, err)
		return
	}

	fmt.Fprintln(s.out, s.headerStyle.Render(fmt.Sprintf("Note #%d: %s", n.ID, n.Title)))
	if len(n.Tags) > 0 {
		fmt.Fprintf(s.out, "Tags: %s\n", strings.Join(n.Tags, ", "))
	}
	fmt.Fprintf(s.out, "Created: %s\n", n.CreatedAt)
	fmt.Fprintf(s.out, "Updated: %s\n", n.UpdatedAt)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, n.Content)
}

func (s *Shell) editNote(id int) {
	n, err := s.notes.Get(id)
	if err != nil {
		s.reportNoteError(id, err)
		return
	}

	fmt.Fprintf(s.out, ">>> Editing note #%d (blank keeps the current value)\n", id)
	title, ok := s.promptLine(fmt.Sprintf("Title [%s]: ", n.Title))
	if !ok {
		return
	}
	content, ok := s.promptMultiline("Content (finish with an empty line; empty keeps the current content):")
	if !ok {
		return
	}
	tags, ok := s.promptLine(fmt.Sprintf("Tags (comma-separated) [%s]: ", strings.Join(n.Tags, ", ")))
	if !ok {
		return
	}

	if _, err := s.notes.Edit(id, note.EditOptions{Title: title, Content: content, Tags: splitTags(tags)}); err != nil {
		s.reportNoteError(id, err)
		return
	}
	fmt.Fprintf(s.out, "Note #%d edited successfully.\n", id)
}

func (s *Shell) deleteNote(id int) {
	if err := s.notes.Delete(id); err != nil {
		s.reportNoteError(id, err)
		return
	}
	fmt.Fprintf(s.out, "Deleted note #%d.\n", id)
}

func (s *Shell) searchNotes(query string) {
	matches, err := s.notes.Search(query)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "No notes matched '%s'.\n", query)
		return
	}
	fmt.Fprintf(s.out, "Notes matching '%s':\n", query)
	s.printNoteTable(matches)
}

func (s *Shell) filterNotes(tag string) {
	matches, err := s.notes.FilterByTag(tag)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "No notes tagged '%s'.\n", tag)
		return
	}
	fmt.Fprintf(s.out, "Notes tagged '%s':\n", tag)
	s.printNoteTable(matches)
}

func (s *Shell) addTask(ctx context.Context) {
	fmt.Fprintln(s.out, ">>> Creating a new task")
	title, ok := s.promptLine("Title: ")
	if !ok {
		return
	}
	description, ok := s.promptLine("Description: ")
	if !ok {
		return
	}

	analysis, err := s.assistant.AnalyzeTask(ctx, title, description)
	if err != nil {
		fmt.Fprintf(s.out, "(AI unavailable: %v)\n", err)
	} else {
		fmt.Fprintln(s.out, "\nAI Suggestions:")
		fmt.Fprintf(s.out, "- Recommended priority: %s\n", analysis.Priority)
		fmt.Fprintf(s.out, "- Category: %s\n", analysis.Category)
		fmt.Fprintf(s.out, "- Suggested due date: %s\n", analysis.DueDate)
		fmt.Fprintf(s.out, "- Tip: %s\n\n", analysis.Tip)
	}

	created, err := s.tasks.Add(title, description, task.AddOptions{
		Priority: analysis.Priority,
		Category: analysis.Category,
		DueDate:  analysis.DueDate,
	})
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Saved task #%d\n", created.ID)
}

func (s *Shell) listTasks(statusFilter string) {
	tasks, err := s.tasks.List(statusFilter)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, "No tasks. Add one with `add-task`.")
		return
	}
	fmt.Fprintln(s.out, "Your tasks:")
	s.printTaskTable(tasks)
}

func (s *Shell) startTask(id int) {
	if _, err := s.tasks.Start(id); err != nil {
		s.reportTaskError(id, err)
		return
	}
	fmt.Fprintf(s.out, "Task #%d marked as in-progress.\n", id)
}

func (s *Shell) completeTask(id int) {
	if _, err := s.tasks.Complete(id); err != nil {
		s.reportTaskError(id, err)
		return
	}
	fmt.Fprintf(s.out, "Task #%d marked as done.\n", id)
}

func (s *Shell) editTask(id int) {
	t, err := s.tasks.Get(id)
	if err != nil {
		s.reportTaskError(id, err)
		return
	}

	fmt.Fprintf(s.out, ">>> Editing task #%d (blank keeps the current value)\n", id)
	title, ok := s.promptLine(fmt.Sprintf("Title [%s]: ", t.Title))
	if !ok {
		return
	}
	description, ok := s.promptLine(fmt.Sprintf("Description [%s]: ", t.Description))
	if !ok {
		return
	}
	priority, ok := s.promptLine(fmt.Sprintf("Priority (low/medium/high) [%s]: ", t.Priority))
	if !ok {
		return
	}
	category, ok := s.promptLine(fmt.Sprintf("Category [%s]: ", formatDash(t.Category)))
	if !ok {
		return
	}
	due, ok := s.promptLine(fmt.Sprintf("Due date (YYYY-MM-DD) [%s]: ", formatDash(t.DueDate)))
	if !ok {
		return
	}

	if _, err := s.tasks.Edit(id, task.EditOptions{
		Title:       title,
		Description: description,
		Priority:    priority,
		Category:    category,
		DueDate:     due,
	}); err != nil {
		s.reportTaskError(id, err)
		return
	}
	fmt.Fprintf(s.out, "Task #%d edited successfully.\n", id)
}

func (s *Shell) deleteTask(id int) {
	if err := s.tasks.Delete(id); err != nil {
		s.reportTaskError(id, err)
		return
	}
	fmt.Fprintf(s.out, "Deleted task #%d.\n", id)
}

func (s *Shell) searchTasks(query string) {
	matches, err := s.tasks.Search(query)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "No tasks matched '%s'.\n", query)
		return
	}
	fmt.Fprintf(s.out, "Tasks matching '%s':\n", query)
	s.printTaskTable(matches)
}

func (s *Shell) aiSummarizeNote(ctx context.Context, id int) {
	tip, err := s.assistant.SummarizeNote(ctx, id)
	if err != nil {
		s.reportAINoteError(id, err)
		return
	}
	s.printAI("AI Tip", tip)
}

func (s *Shell) aiSkillAnalysis(ctx context.Context, id int) {
	analysis, err := s.assistant.SkillAnalysis(ctx, id)
	if err != nil {
		s.reportAINoteError(id, err)
		return
	}
	s.printAI("Skill analysis", analysis)
}

func (s *Shell) aiGeneratePractice(ctx context.Context, id int) {
	drills, err := s.assistant.GeneratePractice(ctx, id)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			fmt.Fprintf(s.out, "No task #%d found.\n", id)
			return
		}
		fmt.Fprintf(s.out, "Error calling AI: %v\n", err)
		return
	}
	s.printAI("Practice drills", drills)
}

func (s *Shell) aiSuggestPractice(ctx context.Context) {
	struggles, ok := s.promptMultiline("Describe your current struggles or goals (finish with empty line):")
	if !ok {
		return
	}
	if strings.TrimSpace(struggles) == "" {
		struggles = "(no description)"
	}

	plan, err := s.assistant.SuggestPractice(ctx, struggles)
	if err != nil {
		fmt.Fprintf(s.out, "Error calling AI: %v\n", err)
		return
	}
	s.printAI("Suggested practice routine", plan)
}

func (s *Shell) aiMentor(ctx context.Context, question string) {
	answer, err := s.assistant.Mentor(ctx, question)
	if err != nil {
		fmt.Fprintf(s.out, "Error calling AI: %v\n", err)
		return
	}
	s.printAI("Mentor", answer)
}

func (s *Shell) aiCritique(ctx context.Context, description string) {
	critique, err := s.assistant.Critique(ctx, description)
	if err != nil {
		fmt.Fprintf(s.out, "Error calling AI: %v\n", err)
		return
	}
	s.printAI("Critique", critique)
}

func (s *Shell) aiAnatomy(ctx context.Context, species, bodyPart string) {
	notes, err := s.assistant.Anatomy(ctx, species, bodyPart)
	if err != nil {
		fmt.Fprintf(s.out, "Error calling AI: %v\n", err)
		return
	}
	s.printAI(fmt.Sprintf("Anatomy: %s %s", species, bodyPart), notes)
}

func (s *Shell) reportNoteError(id int, err error) {
	if errors.Is(err, note.ErrNoteNotFound) {
		fmt.Fprintf(s.out, "No note found with id %d\n", id)
		return
	}
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

func (s *Shell) reportTaskError(id int, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		fmt.Fprintf(s.out, "No task found with id %d.\n", id)
	case errors.Is(err, task.ErrTaskDone):
		fmt.Fprintf(s.out, "Task #%d is already done.\n", id)
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Shell) reportAINoteError(id int, err error) {
	if errors.Is(err, note.ErrNoteNotFound) {
		fmt.Fprintf(s.out, "No note #%d found.\n", id)
		return
	}
	fmt.Fprintf(s.out, "Error calling AI: %v\n", err)
}
