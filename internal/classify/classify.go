// Package classify decides whether a posting looks free to apply to.
// The rules are plain data so they can be tuned without touching the
// pipeline wiring.
package classify

import (
	"strings"

	"jobdigest/internal/config"
	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/util"
)

type Classifier struct {
	freeDomains []string
	paidMarkers []string
	freePhrases []string
	paidPhrases []string
}

func New(rules config.Rules) *Classifier {
	lower := func(xs []string) []string {
		out := make([]string, 0, len(xs))
		for _, x := range xs {
			x = strings.ToLower(strings.TrimSpace(x))
			if x != "" {
				out = append(out, x)
			}
		}
		return out
	}
	return &Classifier{
		freeDomains: lower(rules.FreeApply.FreeDomains),
		paidMarkers: lower(rules.FreeApply.PaidHostMarkers),
		freePhrases: lower(rules.FreeApply.FreePhrases),
		paidPhrases: lower(rules.FreeApply.PaidPhrases),
	}
}

// Classify is a pure heuristic over one job. It never errors; anything it
// cannot place stays "not confirmed free".
func (c *Classifier) Classify(j domain.Job) bool {
	host := util.ApplyHost(j.URL)
	if host == "" {
		return false
	}

	for _, d := range c.freeDomains {
		if strings.Contains(host, d) {
			return true
		}
	}
	for _, m := range c.paidMarkers {
		if strings.Contains(host, m) {
			return false
		}
	}

	snippet := strings.ToLower(j.Snippet)
	for _, p := range c.paidPhrases {
		if strings.Contains(snippet, p) {
			return false
		}
	}
	for _, p := range c.freePhrases {
		if strings.Contains(snippet, p) {
			return true
		}
	}

	return false
}
