// Package shell implements the interactive artgrow command loop: it
// reads lines, records them in the audit log, and dispatches them to the
// note, task, and AI operations.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amckenna/artgrow/internal/ai"
	"github.com/amckenna/artgrow/internal/audit"
	"github.com/amckenna/artgrow/internal/ui"
	"github.com/amckenna/artgrow/note"
	"github.com/amckenna/artgrow/task"
)

const outputWidth = 80

const banner = `========================================
   artgrow - PKMS & Task Coach (CLI)
========================================
Type 'help' to see commands.
Type 'quit' or 'exit' to leave.`

// Options configures a Shell.
type Options struct {
	Notes     *note.Store
	Tasks     *task.Store
	Assistant *ai.Assistant
	Log       *audit.Log
	Input     io.Reader
	Output    io.Writer

	// Interactive enables the banner and the "> " prompt. Callers set it
	// from a terminal check on stdin so piped sessions stay clean.
	Interactive bool
}

// Shell reads commands line by line and dispatches them.
type Shell struct {
	notes       *note.Store
	tasks       *task.Store
	assistant   *ai.Assistant
	log         *audit.Log
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
	headerStyle lipgloss.Style
}

// New builds a Shell from opts.
func New(opts Options) *Shell {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	return &Shell{
		notes:       opts.Notes,
		tasks:       opts.Tasks,
		assistant:   opts.Assistant,
		log:         opts.Log,
		in:          bufio.NewScanner(opts.Input),
		out:         out,
		interactive: opts.Interactive,
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
	}
}

// Run reads and dispatches commands until quit/exit or end of input.
// Dispatch failures are reported to the user and never end the session.
func (s *Shell) Run(ctx context.Context) error {
	if s.interactive {
		fmt.Fprintln(s.out, banner)
		s.printHelp()
	}

	for {
		if s.interactive {
			fmt.Fprint(s.out, "> ")
		}
		line, ok := s.readLine()
		if !ok {
			if s.interactive {
				fmt.Fprintln(s.out, "\nGoodbye!")
			}
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := s.log.Record(line); err != nil {
			fmt.Fprintf(s.out, "warning: audit log: %v\n", err)
		}
		if !s.dispatch(ctx, line) {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
	}
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// promptLine prints a label and reads one trimmed line.
func (s *Shell) promptLine(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	line, ok := s.readLine()
	if !ok {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// promptMultiline reads lines until a blank line and joins them.
func (s *Shell) promptMultiline(intro string) (string, bool) {
	fmt.Fprintln(s.out, intro)
	var lines []string
	for {
		line, ok := s.readLine()
		if !ok {
			return "", false
		}
		if strings.TrimSpace(line) == "" {
			return strings.Join(lines, "\n"), true
		}
		lines = append(lines, line)
	}
}

// printAI renders an AI response as terminal markdown under a styled
// header.
func (s *Shell) printAI(title, body string) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.headerStyle.Render(title))
	fmt.Fprintln(s.out, ui.RenderMarkdown(body, outputWidth))
}

func (s *Shell) printNoteTable(notes []note.Note) {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, []string{
			fmt.Sprintf("%d", n.ID),
			ui.TruncateCell(n.Title),
			formatDash(strings.Join(n.Tags, ", ")),
			n.UpdatedAt,
		})
	}
	fmt.Fprintln(s.out, ui.FormatTable([]string{"ID", "Title", "Tags", "Updated"}, rows))
}

func (s *Shell) printTaskTable(tasks []task.Task) {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			string(t.Status),
			string(t.Priority),
			formatDash(t.Category),
			formatDash(t.DueDate),
			ui.TruncateCell(t.Title),
		})
	}
	fmt.Fprintln(s.out, ui.FormatTable([]string{"ID", "Status", "Priority", "Category", "Due", "Title"}, rows))
}

func formatDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func splitTags(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return strings.Split(value, ",")
}
