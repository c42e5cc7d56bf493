package ui

import (
	"strings"
	"testing"
)

func TestReflowParagraphs(t *testing.T) {
	input := "first  paragraph\nwith a continuation\n\nsecond   paragraph"
	out := ReflowParagraphs(input, 80)

	paragraphs := strings.Split(out, "\n\n")
	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %q", len(paragraphs), out)
	}
	if paragraphs[0] != "first paragraph with a continuation" {
		t.Errorf("unexpected first paragraph: %q", paragraphs[0])
	}
	if paragraphs[1] != "second paragraph" {
		t.Errorf("unexpected second paragraph: %q", paragraphs[1])
	}
}

func TestReflowParagraphsWraps(t *testing.T) {
	input := strings.Repeat("word ", 20)
	out := ReflowParagraphs(input, 20)

	for _, line := range strings.Split(out, "\n") {
		if len(line) > 20 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := RenderMarkdown("   \n  ", 80); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRenderMarkdownList(t *testing.T) {
	out := RenderMarkdown("- ten minutes of gesture\n- five heads", 60)
	if !strings.Contains(out, "gesture") {
		t.Errorf("expected rendered list content, got %q", out)
	}
}
