package roadmap

import (
	"regexp"
	"strings"
)

const maxExtractedTopics = 10

// extractTopics pulls topic phrases out of lesson content. Four passes of
// decreasing precision run until enough topics are found; duplicates are
// dropped case-insensitively, first occurrence wins.
func extractTopics(content string) []string {
	var topics []string
	seen := map[string]bool{}

	add := func(topic string) {
		topic = strings.TrimSpace(topic)
		key := strings.ToLower(topic)
		if topic == "" || seen[key] || len(topics) >= maxExtractedTopics {
			return
		}
		seen[key] = true
		topics = append(topics, topic)
	}

	// Pass 1: marker-prefixed lines.
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < 5 || len(trimmed) > 120 {
			continue
		}
		for _, marker := range topicMarkers {
			if !strings.HasPrefix(trimmed, marker) {
				continue
			}
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
			if len(rest) > 3 {
				add(rest)
			}
			break
		}
	}

	// Pass 2: instructional verb phrases.
	for _, pat := range topicVerbPatterns {
		for _, m := range pat.FindAllStringSubmatch(content, -1) {
			candidate := strings.TrimSpace(m[1])
			if len(candidate) >= 5 && len(candidate) <= 100 {
				add(candidate)
			}
		}
	}

	// Pass 3: capitalized phrases, only when the precise passes came up short.
	if len(topics) < 3 {
		found := 0
		for _, m := range capitalizedPhrase.FindAllString(content, -1) {
			if found >= 5 {
				break
			}
			if len(m) < 3 || len(m) > 50 || topicStopwords[strings.ToLower(m)] {
				continue
			}
			before := len(topics)
			add(m)
			if len(topics) > before {
				found++
			}
		}
	}

	// Pass 4: quoted and colon-introduced phrases as a last resort.
	if len(topics) < 2 {
		for _, pat := range []*regexp.Regexp{quotedPhrase, colonPhrase} {
			for _, m := range pat.FindAllStringSubmatch(content, -1) {
				candidate := strings.TrimSpace(m[1])
				if len(candidate) >= 3 && len(candidate) <= 80 {
					add(candidate)
				}
			}
		}
	}

	return topics
}
