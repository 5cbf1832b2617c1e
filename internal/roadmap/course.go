// Package roadmap turns loosely structured learning-roadmap text into a
// Course with numbered lessons. Parsing is rule based and total: every
// input, including empty or garbage text, yields a well-formed Course.
package roadmap

// Lesson is a single unit of a parsed course.
type Lesson struct {
	LessonNumber int      `json:"lesson_number"`
	Title        string   `json:"title"`
	Topics       []string `json:"topics"`
	Duration     string   `json:"duration"`
	Content      string   `json:"content"`
}

// Course is the structured result of parsing roadmap text.
type Course struct {
	CourseTitle       string   `json:"course_title"`
	CourseDescription string   `json:"course_description"`
	Lessons           []Lesson `json:"lessons"`
}

// Limits applied during parsing and cleanup.
const (
	maxLessonsStructured = 25
	maxLessonsBullet     = 20
	maxLessonsSegment    = 15
	maxLessonsEmergency  = 3

	maxTopicsPerLesson = 12
	maxTopicLen        = 100
	maxTitleLen        = 120
	maxContentLen      = 1000
	maxDescriptionLen  = 400

	minLessonContent = 15
	maxLessonContent = 3000
)
