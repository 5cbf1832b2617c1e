package enrich

import (
	"regexp"
	"strconv"
)

var (
	hoursExpr   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hours?|hrs?)`)
	minutesExpr = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:minutes?|mins?)`)
	daysExpr    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*days?`)
	bareNumber  = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
)

// DurationToHours converts a human duration label ("2 hours 30 minutes",
// "45 minutes", "1-2 hours") into hours. Compound labels sum their parts;
// ranges count their upper bound. Labels without any number ("Variable")
// count as one hour so workload totals stay sane.
func DurationToHours(duration string) float64 {
	total := 0.0
	if v, ok := firstValue(hoursExpr, duration); ok {
		total += v
	}
	if v, ok := firstValue(minutesExpr, duration); ok {
		total += v / 60
	}
	if v, ok := firstValue(daysExpr, duration); ok {
		total += v * 8
	}
	if total > 0 {
		return total
	}
	if v, ok := firstValue(bareNumber, duration); ok {
		return v
	}
	return 1
}

func firstValue(expr *regexp.Regexp, s string) (float64, bool) {
	m := expr.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
