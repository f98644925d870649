package document

import "strings"

// Document is the parsed form of uploaded course material.
type Document struct {
	Title    string    // Document title (from metadata or filename)
	Sections []Section // Ordered sections in document order
}

// Section is a titled span of document text. Heading is empty when the
// source format carried no structure (plain text, PDF, pasted input);
// the pattern segmenter takes over in that case.
type Section struct {
	Heading string
	Text    string
}

// Structured reports whether any section carries a real heading.
func (d *Document) Structured() bool {
	for _, s := range d.Sections {
		if s.Heading != "" {
			return true
		}
	}
	return false
}

// PlainText flattens the document into a single string for whole-document
// consumers (sentence ranking, flashcard and MCQ generation).
func (d *Document) PlainText() string {
	var sb strings.Builder
	for _, s := range d.Sections {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}
	return sb.String()
}
