package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdigest/internal/domain"
)

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	jobs := []domain.Job{
		{Title: "Frontend Engineer", URL: "https://x.co/job", Source: domain.SourceRemotive},
		{Title: "Frontend Engineer (dupe)", URL: "https://x.co/job", Source: domain.SourceRemoteOK},
	}

	out := Dedupe(jobs)
	require.Len(t, out, 1)
	assert.Equal(t, domain.SourceRemotive, out[0].Source)
	assert.Equal(t, "Frontend Engineer", out[0].Title)
}

func TestDedupeCaseAndTrackingInsensitive(t *testing.T) {
	jobs := []domain.Job{
		{Title: "A", URL: "https://X.co/job?utm_source=mail"},
		{Title: "B", URL: " https://x.co/job "},
	}

	out := Dedupe(jobs)
	require.Len(t, out, 1)
	assert.Equal(t, "A", out[0].Title)
}

func TestDedupePreservesOrder(t *testing.T) {
	jobs := []domain.Job{
		{Title: "A", URL: "https://a.co/1"},
		{Title: "B", URL: "https://a.co/2"},
		{Title: "C", URL: "https://a.co/1"},
		{Title: "D", URL: "https://a.co/3"},
	}

	out := Dedupe(jobs)
	require.Len(t, out, 3)
	assert.Equal(t, "A", out[0].Title)
	assert.Equal(t, "B", out[1].Title)
	assert.Equal(t, "D", out[2].Title)
}

func TestDedupeEmptyInput(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}
