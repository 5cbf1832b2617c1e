package roadmap

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func testParser() *Parser {
	return NewParser(slog.New(slog.DiscardHandler))
}

func TestParse_DayHeaders(t *testing.T) {
	input := "Day 1: Introduction\n" +
		"Getting familiar with the basics and setting up the environment.\n" +
		"Day 2: Advanced Topics\n" +
		"Deep dive into advanced concepts and patterns."

	course := testParser().Parse(input)

	if len(course.Lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(course.Lessons))
	}
	if got := course.Lessons[0].Title; got != "Introduction" {
		t.Errorf("lesson 1 title = %q, want %q", got, "Introduction")
	}
	if got := course.Lessons[1].Title; got != "Advanced Topics" {
		t.Errorf("lesson 2 title = %q, want %q", got, "Advanced Topics")
	}
	if course.Lessons[0].LessonNumber != 1 || course.Lessons[1].LessonNumber != 2 {
		t.Errorf("lesson numbers not contiguous: %d, %d",
			course.Lessons[0].LessonNumber, course.Lessons[1].LessonNumber)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	course := testParser().Parse("")

	if course.CourseTitle != "Learning Course" {
		t.Errorf("title = %q, want %q", course.CourseTitle, "Learning Course")
	}
	if course.CourseDescription != "A structured learning course extracted from PDF content." {
		t.Errorf("unexpected description %q", course.CourseDescription)
	}
	if len(course.Lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(course.Lessons))
	}
	lesson := course.Lessons[0]
	if lesson.Title != "Course Introduction" {
		t.Errorf("lesson title = %q, want %q", lesson.Title, "Course Introduction")
	}
	if lesson.Duration != "30 minutes" {
		t.Errorf("lesson duration = %q, want %q", lesson.Duration, "30 minutes")
	}
	if len(lesson.Topics) != 2 {
		t.Errorf("expected 2 default topics, got %v", lesson.Topics)
	}
}

func TestParse_BlankLinesDoNotShrinkTitleWindow(t *testing.T) {
	// Double-spaced preamble: the indicator is the 10th real line but the
	// 19th raw one, so counting raw lines would push it past the window.
	var b strings.Builder
	for i := 1; i <= 9; i++ {
		fmt.Fprintf(&b, "preamble filler entry %d\n\n", i)
	}
	b.WriteString("Course: Advanced Python Mastery Program\n\n")
	b.WriteString("Day 1: Introduction\nGetting familiar with the basics and setting up the environment.\n")
	b.WriteString("Day 2: Advanced Topics\nDeep dive into advanced concepts and patterns.\n")

	course := testParser().Parse(b.String())

	if course.CourseTitle != "Advanced Python Mastery Program" {
		t.Errorf("title = %q, want %q", course.CourseTitle, "Advanced Python Mastery Program")
	}
}

func TestParse_DuplicateHeadings(t *testing.T) {
	section := "## Module\nThis section covers one part of the overall material in detail.\n\n"
	input := strings.Repeat(section, 5)

	course := testParser().Parse(input)

	if len(course.Lessons) != 5 {
		t.Fatalf("expected 5 lessons, got %d", len(course.Lessons))
	}
	want := []string{"Module", "Module (Part 1)", "Module (Part 2)", "Module (Part 3)", "Module (Part 4)"}
	for i, lesson := range course.Lessons {
		if lesson.Title != want[i] {
			t.Errorf("lesson %d title = %q, want %q", i+1, lesson.Title, want[i])
		}
	}
}

func TestParse_Totality(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t  \n"},
		{"short garbage", "x9 !!@@ ##"},
		{"unstructured short", "short text no structure at all here ok"},
		{"binary-ish", string([]byte{0x00, 0x01, 0xff, 0xfe}) + " some text padding to get past the minimum"},
		{"huge", strings.Repeat("lorem ipsum dolor sit amet consectetur ", 5000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := testParser().Parse(tt.input)

			if course.CourseTitle == "" {
				t.Error("course title is empty")
			}
			if course.CourseDescription == "" {
				t.Error("course description is empty")
			}
			if len(course.Lessons) == 0 {
				t.Fatal("no lessons produced")
			}
			if len(course.Lessons) > maxLessonsStructured {
				t.Errorf("lesson count %d exceeds cap", len(course.Lessons))
			}
			seen := map[string]bool{}
			for i, lesson := range course.Lessons {
				if lesson.LessonNumber != i+1 {
					t.Errorf("lesson %d has number %d", i, lesson.LessonNumber)
				}
				if lesson.Title == "" || lesson.Duration == "" || lesson.Content == "" {
					t.Errorf("lesson %d has empty fields: %+v", i+1, lesson)
				}
				key := strings.ToLower(lesson.Title)
				if seen[key] {
					t.Errorf("duplicate lesson title %q", lesson.Title)
				}
				seen[key] = true
			}
		})
	}
}

func TestParse_StrategyEscalation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		strategy string
	}{
		{
			"structured",
			"Week 1: Foundations\nCore concepts explained in enough depth to matter.\nWeek 2: Applications\nApplying the concepts with worked examples throughout.",
			"structured",
		},
		{
			"bullet",
			"Overview of everything\n- Getting around the toolchain\nHow the tools fit together in daily work.\n- Shipping the first feature\nFrom branch to deployed change with review.",
			"bullet",
		},
		{
			"segment",
			"An opening paragraph that is long enough to stand on its own as one segment of material.\n\nA second paragraph, also comfortably past the minimum length for a standalone segment.",
			"segment",
		},
		{
			"emergency",
			"short text no structure at all here ok",
			"emergency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lessons, strategy := testParser().selectLessons(tt.input)
			if strategy != tt.strategy {
				t.Errorf("strategy = %q, want %q", strategy, tt.strategy)
			}
			if len(lessons) == 0 {
				t.Error("no lessons produced")
			}
		})
	}
}

func TestParse_StructuredCap(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&b, "Lesson %d: Topic\nEnough body text for this lesson to count as valid.\n", i)
	}

	course := testParser().Parse(b.String())
	if len(course.Lessons) != maxLessonsStructured {
		t.Errorf("expected cap of %d lessons, got %d", maxLessonsStructured, len(course.Lessons))
	}
}

func TestErrorFallbackCourse(t *testing.T) {
	course := errorFallbackCourse("raw document text", "boom")

	if course.CourseTitle != "Learning Course (Parsing Error)" {
		t.Errorf("title = %q", course.CourseTitle)
	}
	if !strings.Contains(course.CourseDescription, "boom") {
		t.Errorf("description does not mention the error: %q", course.CourseDescription)
	}
	if len(course.Lessons) != 1 || course.Lessons[0].Title != "Original Content" {
		t.Fatalf("unexpected lessons: %+v", course.Lessons)
	}
	if course.Lessons[0].Content != "raw document text" {
		t.Errorf("raw text not preserved: %q", course.Lessons[0].Content)
	}
}
