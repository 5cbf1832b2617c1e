package roadmap

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// foldCaser gives Unicode-correct case-insensitive keys for dedup.
var foldCaser = cases.Fold()

// cleanCourse normalizes a parsed course in place of whatever the strategies
// produced: every field gets a usable default, titles are de-junked and made
// unique, and lessons are renumbered contiguously. Cleaning is idempotent;
// running it on already-clean data changes nothing.
func cleanCourse(course Course) Course {
	if strings.TrimSpace(course.CourseTitle) == "" {
		course.CourseTitle = fallbackTitle
	}
	if strings.TrimSpace(course.CourseDescription) == "" {
		course.CourseDescription = fallbackDescription
	}
	course.CourseDescription = truncateRunes(course.CourseDescription, maxDescriptionLen)

	titleCounts := map[string]int{}
	assigned := map[string]bool{}
	for i := range course.Lessons {
		lesson := &course.Lessons[i]
		lesson.LessonNumber = i + 1
		lesson.Title = cleanTitle(lesson.Title)

		// First occurrence keeps the base title; every "(Part N)" candidate is
		// re-checked against the titles already handed out, so a source that
		// itself contains "X (Part 1)" cannot force a repeat.
		key := foldCaser.String(lesson.Title)
		base := lesson.Title
		title := base
		n := titleCounts[key]
		for assigned[foldCaser.String(title)] {
			n++
			title = fmt.Sprintf("%s (Part %d)", base, n)
		}
		titleCounts[key] = n
		lesson.Title = title
		assigned[foldCaser.String(title)] = true

		lesson.Topics = cleanTopics(lesson.Topics)
		if len(strings.TrimSpace(lesson.Duration)) < 3 {
			lesson.Duration = "1 hour"
		}
		if len(strings.TrimSpace(lesson.Content)) < 5 {
			lesson.Content = "Content for " + lesson.Title
		}
	}
	return course
}

// cleanTitle strips marker junk from both ends and bounds the length. Long
// titles are cut at a word boundary with a trailing ellipsis; a title already
// ending in an ellipsis is left alone so repeated cleaning is stable.
func cleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "Untitled Lesson"
	}
	title = leadingTitleJunk.ReplaceAllString(title, "")
	if !strings.HasSuffix(title, "...") {
		title = trailingTitleJunk.ReplaceAllString(title, "")
	}
	if len(title) > maxTitleLen {
		cut := truncateRunes(title, maxTitleLen-3)
		if idx := strings.LastIndex(cut, " "); idx > 0 {
			cut = cut[:idx]
		}
		title = strings.TrimSpace(cut) + "..."
	}
	if len(title) < 3 {
		return "Lesson"
	}
	return title
}

// cleanTopics always returns a non-nil slice so the field serializes as an
// array, never null.
func cleanTopics(topics []string) []string {
	cleaned := []string{}
	seen := map[string]bool{}
	for _, topic := range topics {
		topic = strings.TrimSpace(topic)
		if len(topic) < 3 {
			continue
		}
		topic = truncateRunes(topic, maxTopicLen)
		key := foldCaser.String(topic)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, topic)
		if len(cleaned) >= maxTopicsPerLesson {
			break
		}
	}
	return cleaned
}
