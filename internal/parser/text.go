package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/studygen/internal/document"
)

// TextParser handles plain text files and pasted input. Plain text carries
// no structural headings, so the whole body becomes one unheaded section;
// line breaks are preserved for the heading-pattern segmenter.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	doc := &document.Document{
		Title: strings.TrimSuffix(filename, ".txt"),
	}
	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text != "" {
		doc.Sections = []document.Section{{Text: text}}
	}
	return doc, nil
}
