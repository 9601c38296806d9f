package pipeline

import (
	"strings"

	"jobdigest/internal/config"
	"jobdigest/internal/domain"
)

// Matches reports whether the job's title or snippet contains any configured
// keyword, case-insensitive.
func Matches(rules []config.Rule, j domain.Job) bool {
	text := strings.ToLower(j.Title + " " + j.Snippet)

	for _, r := range rules {
		for _, needle := range r.Any {
			n := strings.ToLower(strings.TrimSpace(needle))
			if n == "" {
				continue
			}
			if strings.Contains(text, n) {
				return true
			}
		}
	}
	return false
}
