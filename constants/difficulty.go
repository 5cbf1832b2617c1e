package constants

import "strings"

// Difficulty is the coarse difficulty level assigned to an enriched course.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

var allDifficulties = []Difficulty{Beginner, Intermediate, Advanced}

func DifficultiesAsStringSlice() []string {
	result := make([]string, len(allDifficulties))
	for i, d := range allDifficulties {
		result[i] = string(d)
	}
	return result
}

// CanonicalizeDifficulty maps freeform level labels (as they appear in roadmap
// text, e.g. "Level: beginner friendly") onto the stable enum.
func CanonicalizeDifficulty(input string) (Difficulty, bool) {
	if input == "" {
		return Beginner, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]Difficulty{
		"beginner friendly": Beginner,
		"intro":             Beginner,
		"introductory":      Beginner,
		"novice":            Beginner,
		"basic":             Beginner,
		"medium":            Intermediate,
		"mid-level":         Intermediate,
		"expert":            Advanced,
		"professional":      Advanced,
	}

	if d, ok := synonyms[normalized]; ok {
		return d, true
	}

	for _, d := range allDifficulties {
		if normalized == strings.ToLower(string(d)) {
			return d, true
		}
	}

	return Beginner, false
}
