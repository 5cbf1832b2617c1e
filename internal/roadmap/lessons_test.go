package roadmap

import (
	"strings"
	"testing"
)

func TestExtractStructuredLessons_NumberedTemplate(t *testing.T) {
	input := "1. Getting Started\nInstall the toolchain and verify everything runs.\n" +
		"2. First Project\nScaffold, write and run a minimal program end to end.\n" +
		"3. Testing Basics\nWrite the first table driven test for the project."

	lessons := extractStructuredLessons(input)

	if len(lessons) != 3 {
		t.Fatalf("expected 3 lessons, got %d", len(lessons))
	}
	if lessons[0].Title != "Getting Started" {
		t.Errorf("lesson 1 title = %q", lessons[0].Title)
	}
	if lessons[2].Title != "Testing Basics" {
		t.Errorf("lesson 3 title = %q", lessons[2].Title)
	}
}

func TestExtractStructuredLessons_ContentBounds(t *testing.T) {
	// Second header has too little content behind it to count.
	input := "Step 1: Setup\nA body that is clearly long enough to qualify here.\n" +
		"Step 2: x\n" +
		"Step 3: Wrap Up\nAnother body that is clearly long enough to qualify."

	lessons := extractStructuredLessons(input)

	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(lessons))
	}
	for _, lesson := range lessons {
		if len(lesson.Content) < minLessonContent {
			t.Errorf("lesson content below minimum: %q", lesson.Content)
		}
	}
}

func TestExtractStructuredLessons_MidSentenceKeywordIgnored(t *testing.T) {
	input := "Day 1: Introduction\n" +
		"Getting familiar with the basics. Review of Day 1 concepts is scheduled later.\n" +
		"Day 2: Advanced Topics\n" +
		"Deep dive into advanced concepts and patterns."

	lessons := extractStructuredLessons(input)

	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(lessons))
	}
	if lessons[0].Title != "Introduction" {
		t.Errorf("lesson 1 title = %q", lessons[0].Title)
	}
	if !strings.Contains(lessons[0].Content, "scheduled later") {
		t.Errorf("lesson 1 content cut at the mid-sentence mention: %q", lessons[0].Content)
	}
	if lessons[1].Title != "Advanced Topics" {
		t.Errorf("lesson 2 title = %q", lessons[1].Title)
	}
}

func TestExtractStructuredLessons_SingleHeaderRejected(t *testing.T) {
	input := "Day 1: The Only Day\nPlenty of content but just one header in the whole text."

	if lessons := extractStructuredLessons(input); lessons != nil {
		t.Errorf("expected nil for a single header, got %d lessons", len(lessons))
	}
}

func TestExtractBulletLessons(t *testing.T) {
	input := "Agenda for the workshop\n" +
		"• Setting up the environment\n" +
		"Install the interpreter and the editor plugins.\n" +
		"• Writing the first script\n" +
		"Walk through a small script line by line.\n" +
		"x\n"

	lessons := extractBulletLessons(input)

	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(lessons))
	}
	if lessons[0].Title != "Setting up the environment" {
		t.Errorf("lesson 1 title = %q", lessons[0].Title)
	}
	if !strings.Contains(lessons[0].Content, "Install the interpreter") {
		t.Errorf("lesson 1 content missing body: %q", lessons[0].Content)
	}
	if lessons[1].Title != "Writing the first script" {
		t.Errorf("lesson 2 title = %q", lessons[1].Title)
	}
}

func TestExtractBulletLessons_ShortMarkersIgnored(t *testing.T) {
	input := "- ok\n- no\n- eh\n"

	if lessons := extractBulletLessons(input); len(lessons) != 0 {
		t.Errorf("expected no lessons from undersized bullet titles, got %d", len(lessons))
	}
}

func TestExtractSegmentLessons(t *testing.T) {
	input := "First paragraph with a comfortable amount of content to stand alone.\n\n" +
		"Second paragraph, also long enough to be kept as its own segment.\n\n" +
		"no\n\n" +
		"Third paragraph that easily clears the minimum segment length bar."

	lessons := extractSegmentLessons(input)

	if len(lessons) != 3 {
		t.Fatalf("expected 3 lessons, got %d", len(lessons))
	}
}

func TestEmergencyLessons(t *testing.T) {
	words := strings.Repeat("word ", 300)
	lessons := emergencyLessons(words)

	if len(lessons) == 0 || len(lessons) > maxLessonsEmergency {
		t.Fatalf("expected 1..%d lessons, got %d", maxLessonsEmergency, len(lessons))
	}
	if lessons[0].Title != "Course Content Part 1" {
		t.Errorf("lesson 1 title = %q", lessons[0].Title)
	}
	for _, lesson := range lessons {
		if len(lesson.Content) > 803 {
			t.Errorf("emergency content too long: %d", len(lesson.Content))
		}
		if lesson.Duration != "1-2 hours" {
			t.Errorf("duration = %q", lesson.Duration)
		}
	}
}
