package roadmap

import "strings"

// ValidationResult reports whether text looks like a learning roadmap and,
// when it does not, a human-readable reason suitable for surfacing to users.
type ValidationResult struct {
	Valid  bool
	Reason string
}

// Validate checks extracted text for roadmap structure before parsing is
// attempted. It never fails hard: unparseable input is simply reported as
// invalid with a reason.
func Validate(text string) ValidationResult {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 50 {
		return ValidationResult{
			Valid:  false,
			Reason: "PDF content is too short or empty",
		}
	}

	for _, marker := range structureMarkers {
		if marker.MatchString(trimmed) {
			return ValidationResult{Valid: true}
		}
	}

	return ValidationResult{
		Valid:  false,
		Reason: "PDF doesn't appear to contain a structured learning roadmap. Please upload a PDF with course content, lessons, or learning plans.",
	}
}
