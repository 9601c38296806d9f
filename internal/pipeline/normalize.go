package pipeline

import (
	"strings"

	"jobdigest/internal/domain"
)

// Normalize turns a raw posting into a Job. Postings missing a title or link
// are unusable and report ok=false. Same input, same output, always.
func Normalize(raw domain.RawPosting) (domain.Job, bool) {
	title := strings.TrimSpace(raw.Title)
	url := strings.TrimSpace(raw.URL)
	if title == "" || url == "" {
		return domain.Job{}, false
	}
	return domain.Job{
		Title:   title,
		Company: strings.TrimSpace(raw.Company),
		URL:     url,
		Source:  raw.Source,
		Snippet: strings.TrimSpace(raw.Snippet),
	}, true
}
