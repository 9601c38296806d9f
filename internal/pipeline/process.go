package pipeline

import (
	"log"

	"jobdigest/internal/classify"
	"jobdigest/internal/config"
	"jobdigest/internal/domain"
)

// Process runs raw postings through normalize, relevance filter, free-to-apply
// classification, and dedupe. Order is preserved end to end; bad postings are
// logged and skipped, never fatal.
func Process(cfg config.Config, raw []domain.RawPosting) []domain.Job {
	classifier := classify.New(cfg.Rules)

	jobs := make([]domain.Job, 0, len(raw))
	for _, rp := range raw {
		j, ok := Normalize(rp)
		if !ok {
			log.Printf("[%s] skipped (missing_fields) title=%q url=%q", rp.Source, rp.Title, rp.URL)
			continue
		}
		if !Matches(cfg.Rules.KeywordRules, j) {
			log.Printf("[%s] skipped (no_keyword_match) title=%q url=%q", j.Source, j.Title, j.URL)
			continue
		}
		j.FreeToApply = classifier.Classify(j)
		jobs = append(jobs, j)
	}

	deduped := Dedupe(jobs)
	log.Printf("[pipeline] %d raw -> %d relevant -> %d unique", len(raw), len(jobs), len(deduped))
	return deduped
}
