package roadmap

import (
	"strings"
	"unicode"
)

const (
	fallbackTitle       = "Learning Course"
	fallbackDescription = "A comprehensive learning course extracted from PDF content with structured lessons and practical applications."
)

// extractTitle finds the course title using three cascading strategies and a
// constant fallback, so it always returns a usable value.
func extractTitle(lines []string) string {
	// Strategy 1: explicit indicator lines near the top.
	for _, line := range firstN(lines, 15) {
		for _, pat := range titleIndicatorPatterns {
			m := pat.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			candidate := strings.TrimSpace(m[1])
			if len(candidate) >= 10 && len(candidate) <= 120 {
				return candidate
			}
		}
	}

	// Strategy 2: prominent keyword-bearing or title-cased lines.
	for _, line := range firstN(lines, 10) {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < 15 || len(trimmed) > 120 {
			continue
		}
		lower := strings.ToLower(trimmed)
		hasKeyword := false
		for _, kw := range titleKeywords {
			if strings.Contains(lower, kw) {
				hasKeyword = true
				break
			}
		}
		prominent := hasKeyword || isTitleCase(trimmed) || isAllUpper(trimmed)
		if prominent && !pageChapterPrefix.MatchString(trimmed) {
			return trimmed
		}
	}

	// Strategy 3: first substantial non-metadata line.
	for _, line := range firstN(lines, 8) {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < 20 || len(trimmed) > 100 {
			continue
		}
		lower := strings.ToLower(trimmed)
		skip := false
		for _, prefix := range titleSkipPrefixes {
			if strings.HasPrefix(lower, prefix) {
				skip = true
				break
			}
		}
		if !skip {
			return trimmed
		}
	}

	return fallbackTitle
}

// extractDescription finds the course description with the same cascading
// approach as extractTitle.
func extractDescription(lines []string) string {
	// Strategy 1: explicit description indicator lines; a long enough
	// continuation line is appended.
	head := firstN(lines, 25)
	for i, line := range head {
		for _, pat := range descriptionPatterns {
			m := pat.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			candidate := strings.TrimSpace(m[1])
			if len(candidate) < 30 {
				continue
			}
			if i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if len(next) > 20 {
					candidate += " " + next
				}
			}
			return truncateRunes(candidate, maxDescriptionLen)
		}
	}

	// Strategy 2: lines rich in instructional vocabulary.
	for _, line := range firstN(lines, 20) {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < 60 {
			continue
		}
		lower := strings.ToLower(trimmed)
		hits := 0
		for _, kw := range descriptionKeywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits >= 2 {
			return truncateRunes(trimmed, maxDescriptionLen)
		}
	}

	// Strategy 3: any long early line.
	for _, line := range firstN(lines, 15) {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) >= 80 {
			return truncateRunes(trimmed, maxDescriptionLen)
		}
	}

	return fallbackDescription
}

// nonEmptyLines splits text into trimmed lines with blank lines dropped, so
// the fixed-size windows above count real lines rather than formatting gaps.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func firstN(lines []string, n int) []string {
	if len(lines) < n {
		return lines
	}
	return lines[:n]
}

// isTitleCase reports whether every word starting with a letter starts with
// an uppercase letter and has no further uppercase letters.
func isTitleCase(s string) bool {
	words := strings.Fields(s)
	sawCased := false
	for _, w := range words {
		runes := []rune(w)
		for i, r := range runes {
			if !unicode.IsLetter(r) {
				continue
			}
			sawCased = true
			if i == 0 || !unicode.IsLetter(runes[i-1]) {
				if !unicode.IsUpper(r) {
					return false
				}
			} else if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return sawCased
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
