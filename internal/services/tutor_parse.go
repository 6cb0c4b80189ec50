package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The upstream model is asked for raw JSON but routinely wraps it in markdown
// code fences anyway; strip the markers before parsing.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSONObject finds the first top-level brace-delimited substring. The
// model may prepend or append commentary even when instructed not to.
func extractJSONObject(s string) (string, bool) {
	m := jsonObjectPattern.FindString(s)
	if m == "" {
		return "", false
	}
	return m, true
}

// fallbackSchedule assigns deterministic due dates when the upstream schedule
// cannot be used: topicsPerWeek = max(1, floor(hoursPerWeek/2.5)), each topic
// due weeksOffset*7+2 days from today. Keys are stringified flat indices so
// the result feeds the same reconciliation step as the AI path.
func fallbackSchedule(count int, hoursPerWeek float64, today time.Time) map[string]string {
	topicsPerWeek := int(math.Floor(hoursPerWeek / 2.5))
	if topicsPerWeek < 1 {
		topicsPerWeek = 1
	}
	schedule := make(map[string]string, count)
	for i := 0; i < count; i++ {
		weeksOffset := i / topicsPerWeek
		due := today.AddDate(0, 0, weeksOffset*7+2)
		schedule[strconv.Itoa(i)] = due.Format("2006-01-02")
	}
	return schedule
}
