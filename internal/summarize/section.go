package summarize

import (
	"regexp"
	"strings"
)

// Section is a document subdivision delimited by a recognized heading
// marker. Content of adjacent sections never overlaps.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DefaultSectionTitle labels the single whole-document section produced
// when no heading marker matches.
const DefaultSectionTitle = "Document"

// headingRe matches a heading line: one of the recognized markers followed
// by whatever else sits on that line. The marker itself (group 1) becomes
// the section title; the rest of the heading line is not content.
var headingRe = regexp.MustCompile(`(Unit\s*-\s*\w+|Problem Solving|Topic:)[^\n]*`)

// SplitSections splits raw text into labeled sections at heading markers,
// in document order. Text before the first heading is discarded. When no
// heading matches anywhere, the entire text becomes one section titled
// DefaultSectionTitle. A heading with nothing after it yields a section
// with empty content, which downstream stages skip.
func SplitSections(text string) []Section {
	matches := headingRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Section{{
			Title:   DefaultSectionTitle,
			Content: strings.TrimSpace(text),
		}}
	}

	sections := make([]Section, 0, len(matches))
	for i, m := range matches {
		title := strings.TrimSpace(text[m[2]:m[3]])
		contentStart := m[1]
		contentEnd := len(text)
		if i+1 < len(matches) {
			contentEnd = matches[i+1][0]
		}
		sections = append(sections, Section{
			Title:   title,
			Content: strings.TrimSpace(text[contentStart:contentEnd]),
		})
	}
	return sections
}
