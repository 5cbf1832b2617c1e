// Package enrich augments parsed courses with derived study material:
// skill tags, curated resource links, daily plans, exercises and course
// level metadata. Everything is computed from the course itself, so
// enrichment is deterministic apart from the generation timestamp.
package enrich

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/coursekit/roadmap-parser/constants"
	"github.com/coursekit/roadmap-parser/internal/roadmap"
)

// Resource is a suggested external learning aid.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Kind  string `json:"kind"`
}

// PlanTask is one timed activity inside a study day.
type PlanTask struct {
	Task string `json:"task"`
	Time string `json:"time"`
}

// PlanDay groups the tasks of a single study day.
type PlanDay struct {
	Day   int        `json:"day"`
	Tasks []PlanTask `json:"tasks"`
}

// Exercise is a generated practice assignment.
type Exercise struct {
	Title       string               `json:"title"`
	Difficulty  constants.Difficulty `json:"difficulty"`
	Description string               `json:"description"`
}

// Lesson is a parsed lesson plus its derived study material.
type Lesson struct {
	roadmap.Lesson
	SkillTags          []string   `json:"skill_tags"`
	Resources          []Resource `json:"resources"`
	EnhancedContent    string     `json:"enhanced_content"`
	DailyPlan          []PlanDay  `json:"daily_plan,omitempty"`
	PracticeExercises  []Exercise `json:"practice_exercises"`
	LearningObjectives []string   `json:"learning_objectives"`
	KeyTakeaways       []string   `json:"key_takeaways"`
}

// Meta summarizes the whole course.
type Meta struct {
	TotalLessons    int                  `json:"total_lessons"`
	EstimatedHours  float64              `json:"estimated_hours"`
	SkillCategories []string             `json:"skill_categories"`
	Difficulty      constants.Difficulty `json:"difficulty"`
	GeneratedAt     time.Time            `json:"generated_at"`
}

// Course is the enriched output. The raw block fields carry structured JSON
// found embedded in the source text; a present daily_plan block suppresses
// the synthesized per-lesson plans.
type Course struct {
	CourseTitle       string          `json:"course_title"`
	CourseDescription string          `json:"course_description"`
	Lessons           []Lesson        `json:"lessons"`
	Meta              Meta            `json:"meta"`
	ResourcePack      json.RawMessage `json:"resource_pack,omitempty"`
	DailyPlan         json.RawMessage `json:"daily_plan,omitempty"`
	Quiz              json.RawMessage `json:"quiz,omitempty"`
	Timeline          json.RawMessage `json:"timeline,omitempty"`
}

// Enricher derives study material from parsed courses.
type Enricher struct {
	log *slog.Logger
	now func() time.Time
}

func NewEnricher(log *slog.Logger) *Enricher {
	return &Enricher{log: log, now: time.Now}
}

// Enrich builds the enriched course. blocks may be nil; when present they
// come from roadmap.ExtractJSONBlocks on the same source text.
func (e *Enricher) Enrich(course roadmap.Course, blocks map[roadmap.BlockKind]json.RawMessage) Course {
	hasPlanBlock := blocks[roadmap.BlockDailyPlan] != nil

	out := Course{
		CourseTitle:       course.CourseTitle,
		CourseDescription: course.CourseDescription,
		Lessons:           make([]Lesson, 0, len(course.Lessons)),
		ResourcePack:      blocks[roadmap.BlockResourcePack],
		DailyPlan:         blocks[roadmap.BlockDailyPlan],
		Quiz:              blocks[roadmap.BlockQuiz],
		Timeline:          blocks[roadmap.BlockTimeline],
	}

	totalHours := 0.0
	totalTopics := 0
	categories := []string{}
	seenCategories := map[string]bool{}

	for _, lesson := range course.Lessons {
		hours := DurationToHours(lesson.Duration)
		totalHours += hours
		totalTopics += len(lesson.Topics)

		enriched := Lesson{
			Lesson:             lesson,
			SkillTags:          skillTags(lesson),
			Resources:          buildResources(lesson),
			EnhancedContent:    enhancedContent(lesson),
			PracticeExercises:  practiceExercises(lesson),
			LearningObjectives: learningObjectives(lesson),
			KeyTakeaways:       keyTakeaways(lesson),
		}
		if !hasPlanBlock {
			enriched.DailyPlan = dailyPlan(lesson.Title, hours)
		}
		out.Lessons = append(out.Lessons, enriched)

		for _, tag := range enriched.SkillTags {
			if len(categories) >= maxSkillCategories || seenCategories[tag] {
				continue
			}
			seenCategories[tag] = true
			categories = append(categories, tag)
		}
	}

	out.Meta = Meta{
		TotalLessons:    len(out.Lessons),
		EstimatedHours:  totalHours,
		SkillCategories: categories,
		Difficulty:      courseDifficulty(totalHours, totalTopics),
		GeneratedAt:     e.now().UTC(),
	}

	e.log.Info("enrich.ok",
		"lessons", out.Meta.TotalLessons,
		"hours", out.Meta.EstimatedHours,
		"difficulty", string(out.Meta.Difficulty))
	return out
}

const (
	maxSkillTags       = 6
	maxResources       = 5
	maxExercises       = 3
	maxObjectives      = 4
	maxTakeaways       = 4
	maxSkillCategories = 10
)

// courseDifficulty grades the course from total workload and topic breadth.
func courseDifficulty(hours float64, topics int) constants.Difficulty {
	switch {
	case hours <= 5 && topics <= 10:
		return constants.Beginner
	case hours <= 20 && topics <= 30:
		return constants.Intermediate
	default:
		return constants.Advanced
	}
}

var skillVerbs = []string{
	"learn", "understand", "master", "create", "build", "implement",
	"develop", "analyze", "design", "configure", "optimize",
	"troubleshoot", "deploy", "practice", "apply", "execute",
	"manage", "evaluate", "synthesize",
}

var skillDomains = []struct {
	tag      string
	keywords []string
}{
	{"python", []string{"python", "pip", "django", "flask", "pandas"}},
	{"machine learning", []string{"machine learning", "neural", "model training", "tensorflow", "pytorch", "scikit"}},
	{"data analysis", []string{"data analysis", "sql", "visualization", "statistics", "dataset"}},
	{"web development", []string{"html", "css", "javascript", "frontend", "backend", "api", "http"}},
}

var defaultSkillTags = []string{"learn", "practice", "apply"}

// skillTags scans the lesson text for action verbs and domain vocabulary.
func skillTags(lesson roadmap.Lesson) []string {
	haystack := strings.ToLower(lesson.Title + " " + strings.Join(lesson.Topics, " ") + " " + lesson.Content)

	tags := []string{}
	seen := map[string]bool{}
	add := func(tag string) {
		if len(tags) >= maxSkillTags || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, verb := range skillVerbs {
		if strings.Contains(haystack, verb) {
			add(verb)
		}
	}
	for _, domain := range skillDomains {
		for _, kw := range domain.keywords {
			if strings.Contains(haystack, kw) {
				add(domain.tag)
				break
			}
		}
	}

	if len(tags) == 0 {
		return append([]string{}, defaultSkillTags...)
	}
	return tags
}

// buildResources generates search and documentation links for the lesson's
// leading topics.
func buildResources(lesson roadmap.Lesson) []Resource {
	resources := []Resource{}
	add := func(r Resource) {
		if len(resources) < maxResources {
			resources = append(resources, r)
		}
	}

	topics := lesson.Topics
	if len(topics) > 2 {
		topics = topics[:2]
	}
	if len(topics) == 0 {
		topics = []string{lesson.Title}
	}

	for _, topic := range topics {
		q := url.QueryEscape(topic)
		add(Resource{
			Title: "Video tutorials: " + topic,
			URL:   "https://www.youtube.com/results?search_query=" + q + "+tutorial",
			Kind:  "video",
		})
		add(Resource{
			Title: "Documentation: " + topic,
			URL:   "https://www.google.com/search?q=" + q + "+documentation",
			Kind:  "documentation",
		})
	}

	for _, domain := range skillDomains {
		if !containsString(skillTags(lesson), domain.tag) {
			continue
		}
		switch domain.tag {
		case "python":
			add(Resource{Title: "Python official docs", URL: "https://docs.python.org/3/", Kind: "documentation"})
		case "machine learning":
			add(Resource{Title: "scikit-learn user guide", URL: "https://scikit-learn.org/stable/user_guide.html", Kind: "documentation"})
		case "web development":
			add(Resource{Title: "MDN Web Docs", URL: "https://developer.mozilla.org/", Kind: "documentation"})
		}
	}

	add(Resource{
		Title: "Courses: " + lesson.Title,
		URL:   "https://www.coursera.org/search?query=" + url.QueryEscape(lesson.Title),
		Kind:  "course",
	})
	return resources
}

// enhancedContent reshapes the raw lesson content into presentable study
// material.
func enhancedContent(lesson roadmap.Lesson) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Learning Focus: %s**\n\n", lesson.Title)
	b.WriteString(lesson.Content)
	if len(lesson.Topics) > 0 {
		b.WriteString("\n\nKey topics covered:\n")
		for _, topic := range lesson.Topics {
			b.WriteString("- " + topic + "\n")
		}
	}
	fmt.Fprintf(&b, "\nPractical application: apply the material above in a small self-contained exercise before moving on.")
	return b.String()
}

// dailyPlan splits a lesson into study days based on its estimated hours.
func dailyPlan(title string, hours float64) []PlanDay {
	switch {
	case hours <= 1:
		return []PlanDay{{Day: 1, Tasks: []PlanTask{
			{Task: "Study: " + title, Time: "45 minutes"},
			{Task: "Review and notes", Time: "15 minutes"},
		}}}
	case hours <= 3:
		return []PlanDay{
			{Day: 1, Tasks: []PlanTask{
				{Task: "Study: " + title, Time: "1 hour"},
				{Task: "Guided practice", Time: "30 minutes"},
			}},
			{Day: 2, Tasks: []PlanTask{
				{Task: "Independent practice", Time: "1 hour"},
				{Task: "Review and notes", Time: "30 minutes"},
			}},
		}
	default:
		return []PlanDay{
			{Day: 1, Tasks: []PlanTask{
				{Task: "Study: " + title, Time: "1.5 hours"},
			}},
			{Day: 2, Tasks: []PlanTask{
				{Task: "Guided practice", Time: "1 hour"},
				{Task: "Independent practice", Time: "1 hour"},
			}},
			{Day: 3, Tasks: []PlanTask{
				{Task: "Build a small project", Time: "1.5 hours"},
				{Task: "Review and notes", Time: "30 minutes"},
			}},
		}
	}
}

var exerciseDifficulties = []constants.Difficulty{
	constants.Beginner, constants.Intermediate, constants.Advanced,
}

// practiceExercises turns the leading topics into graded assignments.
func practiceExercises(lesson roadmap.Lesson) []Exercise {
	exercises := []Exercise{}
	for i, topic := range lesson.Topics {
		if i >= maxExercises {
			break
		}
		exercises = append(exercises, Exercise{
			Title:       fmt.Sprintf("Exercise %d: %s", i+1, topic),
			Difficulty:  exerciseDifficulties[i],
			Description: fmt.Sprintf("Work through %s hands-on and write down what was unclear.", topic),
		})
	}
	if len(exercises) == 0 {
		exercises = append(exercises, Exercise{
			Title:       "Exercise 1: " + lesson.Title,
			Difficulty:  constants.Beginner,
			Description: "Summarize the lesson in your own words and list three questions.",
		})
	}
	return exercises
}

func learningObjectives(lesson roadmap.Lesson) []string {
	objectives := []string{}
	for i, topic := range lesson.Topics {
		if i >= maxObjectives {
			break
		}
		objectives = append(objectives, "Understand "+topic)
	}
	if len(objectives) == 0 {
		objectives = append(objectives, "Complete "+lesson.Title)
	}
	return objectives
}

func keyTakeaways(lesson roadmap.Lesson) []string {
	takeaways := []string{}
	for i, topic := range lesson.Topics {
		if i >= maxTakeaways {
			break
		}
		takeaways = append(takeaways, topic+" fundamentals")
	}
	if len(takeaways) == 0 {
		takeaways = append(takeaways, lesson.Title)
	}
	return takeaways
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
