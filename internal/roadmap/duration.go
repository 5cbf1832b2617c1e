package roadmap

import (
	"fmt"
	"strconv"
	"strings"
)

// extractDuration sums every explicit time expression in the content. When
// none is present the duration is estimated from reading length instead, so
// the result is never empty.
func extractDuration(content string) string {
	total := 0.0
	for _, unit := range durationUnits {
		for _, m := range unit.pattern.FindAllStringSubmatch(content, -1) {
			value, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			total += value * unit.minutes
		}
	}

	if total > 0 {
		return formatMinutes(total)
	}
	return estimateDuration(content)
}

func formatMinutes(total float64) string {
	minutes := int(total)
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	hours := minutes / 60
	rem := minutes % 60
	if rem > 0 {
		return fmt.Sprintf("%d hours %d minutes", hours, rem)
	}
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}

// estimateDuration assumes a 200 words-per-minute reading pace with extra
// time for exercises.
func estimateDuration(content string) string {
	words := len(strings.Fields(content))
	estimated := float64(words) / 200 * 2.5

	switch {
	case estimated >= 60:
		hours := int(estimated / 60)
		if hours <= 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	case estimated >= 30:
		return "30-60 minutes"
	default:
		return "15-30 minutes"
	}
}
