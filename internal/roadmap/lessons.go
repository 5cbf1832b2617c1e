package roadmap

import (
	"fmt"
	"strings"
)

// extractStructuredLessons tries each header template in order and returns
// the first result with at least two lessons. Returns nil when no template
// produces enough structure.
func extractStructuredLessons(text string) []Lesson {
	for _, tmpl := range lessonTemplates {
		lessons := applyTemplate(tmpl, text)
		if len(lessons) >= 2 {
			return lessons
		}
	}
	return nil
}

// applyTemplate slices text into lessons: each lesson's content spans from
// the end of a header match to the next boundary match after it.
func applyTemplate(tmpl lessonTemplate, text string) []Lesson {
	headers := tmpl.header.FindAllStringSubmatchIndex(text, -1)
	var lessons []Lesson
	for _, m := range headers {
		if len(lessons) >= maxLessonsStructured {
			break
		}
		start := m[1]
		end := len(text)
		if loc := tmpl.boundary.FindStringIndex(text[start:]); loc != nil {
			end = start + loc[0]
		}
		content := strings.TrimSpace(text[start:end])
		if len(content) < minLessonContent || len(content) > maxLessonContent {
			continue
		}
		lessons = append(lessons, buildLesson(len(lessons)+1, content))
	}
	return lessons
}

// extractBulletLessons scans line by line for bullet or enumeration markers.
// A well-sized marker line opens a new lesson; following plain lines become
// its content.
func extractBulletLessons(text string) []Lesson {
	var lessons []Lesson
	var title string
	var body []string

	flush := func() {
		if title == "" {
			return
		}
		content := title
		if len(body) > 0 {
			content += "\n" + strings.Join(body, "\n")
		}
		lessons = append(lessons, buildLessonWithTitle(len(lessons)+1, title, content))
		title = ""
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if len(lessons) >= maxLessonsBullet {
			return lessons
		}
		opened := false
		for _, pat := range bulletPatterns {
			m := pat.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			candidate := strings.TrimSpace(m[1])
			if len(candidate) >= 10 && len(candidate) <= 150 {
				flush()
				title = candidate
				opened = true
			}
			break
		}
		if opened || title == "" {
			continue
		}
		if t := strings.TrimSpace(line); len(t) > 5 {
			body = append(body, t)
		}
	}
	flush()
	if len(lessons) > maxLessonsBullet {
		lessons = lessons[:maxLessonsBullet]
	}
	return lessons
}

// extractSegmentLessons is the last orderly strategy: paragraph segments
// split on blank lines, with a character-count accumulator as backstop when
// the text has too few usable paragraphs.
func extractSegmentLessons(text string) []Lesson {
	var segments []string
	for _, seg := range blankLineSplit.Split(text, -1) {
		trimmed := strings.TrimSpace(seg)
		if len(trimmed) >= 50 {
			segments = append(segments, trimmed)
		}
	}

	if len(segments) < 2 {
		segments = accumulateChunks(text)
	}

	var lessons []Lesson
	for _, seg := range segments {
		if len(lessons) >= maxLessonsSegment {
			break
		}
		lessons = append(lessons, buildLesson(len(lessons)+1, seg))
	}
	return lessons
}

// accumulateChunks joins consecutive lines until each chunk reaches at least
// 100 characters.
func accumulateChunks(text string) []string {
	var chunks []string
	var buf []string
	size := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		buf = append(buf, trimmed)
		size += len(trimmed)
		if size >= 100 {
			chunks = append(chunks, strings.Join(buf, "\n"))
			buf = nil
			size = 0
		}
	}
	if size >= 50 {
		chunks = append(chunks, strings.Join(buf, "\n"))
	}
	return chunks
}

// emergencyLessons guarantees output for text that defeated every strategy:
// the words are dealt into up to three fixed-shape lessons.
func emergencyLessons(text string) []Lesson {
	words := strings.Fields(text)
	chunkSize := len(words) / 3
	if chunkSize < 50 {
		chunkSize = 50
	}

	var lessons []Lesson
	for i := 0; i < len(words) && len(lessons) < maxLessonsEmergency; i += chunkSize {
		end := i + chunkSize
		if end > len(words) {
			end = len(words)
		}
		content := strings.Join(words[i:end], " ")
		if len(content) > 800 {
			content = truncateRunes(content, 800) + "..."
		}
		lessons = append(lessons, Lesson{
			LessonNumber: len(lessons) + 1,
			Title:        fmt.Sprintf("Course Content Part %d", len(lessons)+1),
			Topics:       []string{"Key concepts", "Learning objectives", "Practical applications"},
			Duration:     "1-2 hours",
			Content:      content,
		})
	}
	return lessons
}

// buildLesson derives the lesson title from the first content line, falling
// back to a numbered placeholder when the line is unusable.
func buildLesson(number int, content string) Lesson {
	title := fmt.Sprintf("Lesson %d", number)
	firstLine, _, _ := strings.Cut(content, "\n")
	candidate := trailingTitleJunk.ReplaceAllString(leadingTitleJunk.ReplaceAllString(firstLine, ""), "")
	candidate = strings.TrimSpace(candidate)
	if len(candidate) >= 5 && len(candidate) <= maxTitleLen {
		title = candidate
	}
	return buildLessonWithTitle(number, title, content)
}

func buildLessonWithTitle(number int, title, content string) Lesson {
	if len(content) > maxContentLen {
		content = truncateRunes(content, maxContentLen) + "..."
	}
	return Lesson{
		LessonNumber: number,
		Title:        title,
		Topics:       extractTopics(content),
		Duration:     extractDuration(content),
		Content:      content,
	}
}
