package enrich

import (
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/coursekit/roadmap-parser/constants"
	"github.com/coursekit/roadmap-parser/internal/roadmap"
)

func testEnricher() *Enricher {
	e := NewEnricher(slog.New(slog.DiscardHandler))
	e.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return e
}

func sampleCourse() roadmap.Course {
	return roadmap.Course{
		CourseTitle:       "Python Foundations",
		CourseDescription: "A short course.",
		Lessons: []roadmap.Lesson{
			{
				LessonNumber: 1,
				Title:        "Python Basics",
				Topics:       []string{"Variables", "Functions", "Modules", "Errors"},
				Duration:     "2 hours",
				Content:      "Learn python syntax and build small scripts.",
			},
			{
				LessonNumber: 2,
				Title:        "Plain Lesson",
				Topics:       []string{},
				Duration:     "45 minutes",
				Content:      "no recognizable vocabulary in here at all",
			},
		},
	}
}

func TestEnrich_SkillTags(t *testing.T) {
	course := testEnricher().Enrich(sampleCourse(), nil)

	first := course.Lessons[0]
	if len(first.SkillTags) == 0 || len(first.SkillTags) > maxSkillTags {
		t.Fatalf("skill tags out of bounds: %v", first.SkillTags)
	}
	if !containsString(first.SkillTags, "learn") {
		t.Errorf("tags %v missing verb from content", first.SkillTags)
	}
	if !containsString(first.SkillTags, "python") {
		t.Errorf("tags %v missing domain tag", first.SkillTags)
	}

	second := course.Lessons[1]
	want := []string{"learn", "practice", "apply"}
	if len(second.SkillTags) != len(want) {
		t.Fatalf("default tags = %v, want %v", second.SkillTags, want)
	}
	for i, tag := range want {
		if second.SkillTags[i] != tag {
			t.Errorf("default tag %d = %q, want %q", i, second.SkillTags[i], tag)
		}
	}
}

func TestEnrich_Resources(t *testing.T) {
	course := testEnricher().Enrich(sampleCourse(), nil)

	resources := course.Lessons[0].Resources
	if len(resources) == 0 || len(resources) > maxResources {
		t.Fatalf("resource count out of bounds: %d", len(resources))
	}
	sawVideo := false
	for _, r := range resources {
		if r.URL == "" || r.Title == "" || r.Kind == "" {
			t.Errorf("incomplete resource: %+v", r)
		}
		if r.Kind == "video" && strings.Contains(r.URL, "youtube.com") {
			sawVideo = true
		}
	}
	if !sawVideo {
		t.Error("no video search resource generated")
	}
}

func TestEnrich_ExercisesAndObjectives(t *testing.T) {
	course := testEnricher().Enrich(sampleCourse(), nil)

	first := course.Lessons[0]
	if len(first.PracticeExercises) != maxExercises {
		t.Fatalf("expected %d exercises, got %d", maxExercises, len(first.PracticeExercises))
	}
	wantDifficulty := []constants.Difficulty{constants.Beginner, constants.Intermediate, constants.Advanced}
	for i, ex := range first.PracticeExercises {
		if ex.Difficulty != wantDifficulty[i] {
			t.Errorf("exercise %d difficulty = %q, want %q", i+1, ex.Difficulty, wantDifficulty[i])
		}
	}
	if len(first.LearningObjectives) != maxObjectives {
		t.Errorf("expected %d objectives, got %v", maxObjectives, first.LearningObjectives)
	}
	if len(first.KeyTakeaways) != maxTakeaways {
		t.Errorf("expected %d takeaways, got %v", maxTakeaways, first.KeyTakeaways)
	}

	second := course.Lessons[1]
	if len(second.PracticeExercises) != 1 {
		t.Errorf("topicless lesson should get one fallback exercise, got %d", len(second.PracticeExercises))
	}
}

func TestEnrich_DailyPlanByDuration(t *testing.T) {
	tests := []struct {
		duration string
		wantDays int
	}{
		{"30 minutes", 1},
		{"2 hours", 2},
		{"6 hours", 3},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			plan := dailyPlan("Sample", DurationToHours(tt.duration))
			if len(plan) != tt.wantDays {
				t.Fatalf("plan for %q has %d days, want %d", tt.duration, len(plan), tt.wantDays)
			}
			for i, day := range plan {
				if day.Day != i+1 {
					t.Errorf("day numbering broken: %+v", day)
				}
				if len(day.Tasks) == 0 {
					t.Errorf("day %d has no tasks", day.Day)
				}
			}
		})
	}
}

func TestEnrich_PlanBlockSuppressesSynthesizedPlans(t *testing.T) {
	blocks := map[roadmap.BlockKind]json.RawMessage{
		roadmap.BlockDailyPlan: json.RawMessage(`[{"day": 1, "task": "read"}]`),
	}

	course := testEnricher().Enrich(sampleCourse(), blocks)

	if course.DailyPlan == nil {
		t.Fatal("course-level daily plan block not carried through")
	}
	for i, lesson := range course.Lessons {
		if lesson.DailyPlan != nil {
			t.Errorf("lesson %d still has a synthesized plan", i+1)
		}
	}
}

func TestEnrich_Meta(t *testing.T) {
	course := testEnricher().Enrich(sampleCourse(), nil)

	meta := course.Meta
	if meta.TotalLessons != 2 {
		t.Errorf("total lessons = %d", meta.TotalLessons)
	}
	if meta.EstimatedHours != 2.75 {
		t.Errorf("estimated hours = %v, want 2.75", meta.EstimatedHours)
	}
	if meta.Difficulty != constants.Beginner {
		t.Errorf("difficulty = %q, want beginner", meta.Difficulty)
	}
	if len(meta.SkillCategories) == 0 || len(meta.SkillCategories) > maxSkillCategories {
		t.Errorf("skill categories out of bounds: %v", meta.SkillCategories)
	}
	if meta.GeneratedAt != time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) {
		t.Errorf("timestamp not taken from clock: %v", meta.GeneratedAt)
	}
}

func TestDurationToHours(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2 hours", 2},
		{"45 minutes", 0.75},
		{"2 hours 30 minutes", 2.5},
		{"1-2 hours", 2},
		{"30-60 minutes", 1},
		{"2 days", 16},
		{"Variable", 1},
		{"", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DurationToHours(tt.input); got != tt.want {
				t.Errorf("DurationToHours(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
