package summarize

import "testing"

func TestSplitSections_TopicHeading(t *testing.T) {
	sections := SplitSections("Topic: Cats\nCats are mammals. Cats purr.")

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != "Topic:" {
		t.Errorf("expected title %q, got %q", "Topic:", sections[0].Title)
	}
	if sections[0].Content != "Cats are mammals. Cats purr." {
		t.Errorf("expected content %q, got %q", "Cats are mammals. Cats purr.", sections[0].Content)
	}
}

func TestSplitSections_NoHeadingFallsBackToWholeDocument(t *testing.T) {
	text := "Plain course text with no recognizable headings. Just sentences."
	sections := SplitSections(text)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != DefaultSectionTitle {
		t.Errorf("expected title %q, got %q", DefaultSectionTitle, sections[0].Title)
	}
	if sections[0].Content != text {
		t.Errorf("expected whole text as content, got %q", sections[0].Content)
	}
}

func TestSplitSections_MultipleHeadings(t *testing.T) {
	text := "Unit - 1\nIntroduction to algorithms.\nProblem Solving\nDivide and conquer.\nTopic: Sorting\nBubble sort is slow."
	sections := SplitSections(text)

	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	want := []Section{
		{Title: "Unit - 1", Content: "Introduction to algorithms."},
		{Title: "Problem Solving", Content: "Divide and conquer."},
		{Title: "Topic:", Content: "Bubble sort is slow."},
	}
	for i, w := range want {
		if sections[i].Title != w.Title {
			t.Errorf("section %d: expected title %q, got %q", i, w.Title, sections[i].Title)
		}
		if sections[i].Content != w.Content {
			t.Errorf("section %d: expected content %q, got %q", i, w.Content, sections[i].Content)
		}
	}
}

func TestSplitSections_PreambleDiscarded(t *testing.T) {
	text := "These notes were taken in class.\nTopic: Trees\nTrees have roots."
	sections := SplitSections(text)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Content != "Trees have roots." {
		t.Errorf("expected preamble dropped, got content %q", sections[0].Content)
	}
}

func TestSplitSections_HeadingWithoutContent(t *testing.T) {
	sections := SplitSections("Topic: Graphs\nGraphs have edges.\nTopic: Empty")

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[1].Content != "" {
		t.Errorf("expected empty content for trailing heading, got %q", sections[1].Content)
	}
}

func TestSplitSections_OrderMirrorsDocument(t *testing.T) {
	text := "Topic: B\nSecond comes first here.\nUnit - A\nThen this one."
	sections := SplitSections(text)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "Topic:" || sections[1].Title != "Unit - A" {
		t.Errorf("sections out of document order: %q, %q", sections[0].Title, sections[1].Title)
	}
}
