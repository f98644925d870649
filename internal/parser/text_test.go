package parser

import (
	"strings"
	"testing"
)

func TestTextParser_SingleSectionKeepsLineBreaks(t *testing.T) {
	input := "Topic: Cells\nCells are the basic unit of life.\n\nTopic: Tissues\nTissues are groups of cells."
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", doc.Title)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 unheaded section, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Heading != "" {
		t.Errorf("plain text must not invent a heading, got %q", doc.Sections[0].Heading)
	}
	// Line breaks survive so heading markers are still segmentable later.
	if !strings.Contains(doc.Sections[0].Text, "Topic: Cells\nCells") {
		t.Errorf("expected line breaks preserved, got %q", doc.Sections[0].Text)
	}
}

func TestTextParser_TrailingWhitespaceTrimmed(t *testing.T) {
	input := "Line one.   \nLine two.\t\n"
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "ws.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Text != "Line one.\nLine two." {
		t.Errorf("expected per-line trailing whitespace stripped, got %q", doc.Sections[0].Text)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", doc.Title)
	}
	if len(doc.Sections) != 0 {
		t.Errorf("expected no sections for empty input, got %d", len(doc.Sections))
	}
	if doc.Structured() {
		t.Error("empty document must not report structure")
	}
}

func TestTextParser_SingleLine(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("Hello world"), "single.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Text != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", doc.Sections[0].Text)
	}
}
