package pipeline

import (
	"strings"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/util"
)

// Dedupe keeps one job per canonical URL. The first occurrence in input
// order wins; input order is the fixed source order, so the winner is
// deterministic.
func Dedupe(jobs []domain.Job) []domain.Job {
	seen := map[string]bool{}
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		key := strings.ToLower(util.CanonicalURL(j.URL))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, j)
	}
	return out
}
