package types

import (
	"context"

	"jobdigest/internal/domain"
)

// Result is one source's contribution to a run.
type Result struct {
	Source   domain.Source
	Postings []domain.RawPosting
}

// Fetcher pulls raw postings from a single job board. Implementations own
// their transport and parsing quirks; one board being down must never couple
// to another.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) (Result, error)
}
