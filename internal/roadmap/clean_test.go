package roadmap

import (
	"reflect"
	"strings"
	"testing"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "Untitled Lesson"},
		{"whitespace", "   ", "Untitled Lesson"},
		{"leading junk", ": - Introduction", "Introduction"},
		{"markdown heading", "## Getting Started", "Getting Started"},
		{"trailing punctuation", "Setup and Installation.,;", "Setup and Installation"},
		{"en dash", "– Deployment –", "Deployment"},
		{"too short after strip", "--", "Lesson"},
		{"clean passes through", "Advanced Patterns", "Advanced Patterns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanTitle(tt.input); got != tt.want {
				t.Errorf("cleanTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanTitle_LongTitleTruncated(t *testing.T) {
	long := strings.Repeat("verylongword ", 20)
	got := cleanTitle(long)

	if len(got) > maxTitleLen {
		t.Errorf("cleaned title length %d exceeds %d", len(got), maxTitleLen)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated title should end with ellipsis, got %q", got)
	}
	if again := cleanTitle(got); again != got {
		t.Errorf("truncation not stable: %q then %q", got, again)
	}
}

func TestCleanCourse_DuplicateTitles(t *testing.T) {
	course := Course{
		CourseTitle:       "Sample",
		CourseDescription: "Sample description",
		Lessons: []Lesson{
			{Title: "Module", Content: "first lesson body"},
			{Title: "module", Content: "second lesson body"},
			{Title: "MODULE", Content: "third lesson body"},
		},
	}

	cleaned := cleanCourse(course)

	want := []string{"Module", "module (Part 1)", "MODULE (Part 2)"}
	for i, lesson := range cleaned.Lessons {
		if lesson.Title != want[i] {
			t.Errorf("lesson %d title = %q, want %q", i+1, lesson.Title, want[i])
		}
	}
}

func TestCleanCourse_PartSuffixAlreadyInSource(t *testing.T) {
	// The source already uses "(Part 1)" for the second lesson; the rename of
	// the third must skip past it instead of colliding.
	course := Course{
		CourseTitle:       "Sample",
		CourseDescription: "Sample description",
		Lessons: []Lesson{
			{Title: "Module One", Content: "first lesson body"},
			{Title: "Module One (Part 1)", Content: "second lesson body"},
			{Title: "Module One", Content: "third lesson body"},
		},
	}

	cleaned := cleanCourse(course)

	want := []string{"Module One", "Module One (Part 1)", "Module One (Part 2)"}
	seen := map[string]bool{}
	for i, lesson := range cleaned.Lessons {
		if lesson.Title != want[i] {
			t.Errorf("lesson %d title = %q, want %q", i+1, lesson.Title, want[i])
		}
		key := strings.ToLower(lesson.Title)
		if seen[key] {
			t.Errorf("duplicate title after cleaning: %q", lesson.Title)
		}
		seen[key] = true
	}
}

func TestCleanCourse_DefaultsAndRenumbering(t *testing.T) {
	course := Course{
		Lessons: []Lesson{
			{LessonNumber: 7, Title: "", Duration: "", Content: ""},
			{LessonNumber: 2, Title: "Real Lesson", Topics: []string{"x", "Valid Topic", "valid topic"}, Duration: "2 hours", Content: "actual content"},
		},
	}

	cleaned := cleanCourse(course)

	if cleaned.CourseTitle != fallbackTitle {
		t.Errorf("course title = %q, want fallback", cleaned.CourseTitle)
	}
	if cleaned.CourseDescription != fallbackDescription {
		t.Errorf("course description = %q, want fallback", cleaned.CourseDescription)
	}

	first := cleaned.Lessons[0]
	if first.LessonNumber != 1 {
		t.Errorf("first lesson number = %d, want 1", first.LessonNumber)
	}
	if first.Title != "Untitled Lesson" {
		t.Errorf("first lesson title = %q", first.Title)
	}
	if first.Duration != "1 hour" {
		t.Errorf("first lesson duration = %q", first.Duration)
	}
	if first.Content != "Content for Untitled Lesson" {
		t.Errorf("first lesson content = %q", first.Content)
	}

	second := cleaned.Lessons[1]
	if second.LessonNumber != 2 {
		t.Errorf("second lesson number = %d, want 2", second.LessonNumber)
	}
	if !reflect.DeepEqual(second.Topics, []string{"Valid Topic"}) {
		t.Errorf("topics = %v, want short and duplicate entries dropped", second.Topics)
	}
}

func TestCleanCourse_Idempotent(t *testing.T) {
	course := Course{
		CourseTitle:       "",
		CourseDescription: "",
		Lessons: []Lesson{
			{Title: "## Module", Content: "body one"},
			{Title: "Module", Content: "body two"},
			{Title: strings.Repeat("long title segment ", 10), Content: "body three"},
			{Title: "- bullet style", Topics: []string{"a", "Topic One", "topic one"}, Content: ""},
		},
	}

	once := cleanCourse(course)
	twice := cleanCourse(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("cleanCourse is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}
