package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdigest/internal/config"
	"jobdigest/internal/domain"
)

func testConfig() config.Config {
	return config.Config{Rules: config.DefaultRules()}
}

func TestProcessKeepsOnlyRelevantJobs(t *testing.T) {
	raw := []domain.RawPosting{
		{Title: "Frontend Engineer", URL: "https://a.co/1", Source: domain.SourceRemotive},
		{Title: "Backend Engineer", URL: "https://a.co/2", Source: domain.SourceRemotive},
	}

	out := Process(testConfig(), raw)
	require.Len(t, out, 1)
	assert.Equal(t, "https://a.co/1", out[0].URL)
	assert.Equal(t, "Frontend Engineer", out[0].Title)
}

func TestProcessDropsIncompletePostings(t *testing.T) {
	raw := []domain.RawPosting{
		{Title: "", URL: "https://a.co/1", Source: domain.SourceArbeitnow},
		{Title: "React Developer", URL: "", Source: domain.SourceArbeitnow},
		{Title: "React Developer", URL: "https://a.co/2", Source: domain.SourceArbeitnow},
	}

	out := Process(testConfig(), raw)
	require.Len(t, out, 1)
	assert.Equal(t, "https://a.co/2", out[0].URL)
}

func TestProcessCrossSourceDuplicate(t *testing.T) {
	raw := []domain.RawPosting{
		{Title: "Frontend Engineer", URL: "https://x.co/job", Source: domain.SourceRemotive},
		{Title: "Frontend Engineer", URL: "https://x.co/job", Source: domain.SourceRemoteOK},
	}

	out := Process(testConfig(), raw)
	require.Len(t, out, 1)
	assert.Equal(t, domain.SourceRemotive, out[0].Source)
}

func TestProcessSetsFreeToApply(t *testing.T) {
	raw := []domain.RawPosting{
		{Title: "Frontend Engineer", URL: "https://remotive.com/jobs/1", Source: domain.SourceRemotive},
		{Title: "Frontend Engineer", URL: "https://obscure-board.example/jobs/2", Source: domain.SourceJSJobbs},
	}

	out := Process(testConfig(), raw)
	require.Len(t, out, 2)
	assert.True(t, out[0].FreeToApply)
	assert.False(t, out[1].FreeToApply)
}

// The pipeline holds no state: the same raw input must produce the same
// output on every run.
func TestProcessIdempotent(t *testing.T) {
	raw := []domain.RawPosting{
		{Title: "Frontend Engineer", URL: "https://a.co/1", Source: domain.SourceRemotive},
		{Title: "Vue Developer", Company: "Acme", URL: "https://a.co/2", Source: domain.SourceRemoteOK},
		{Title: "Frontend Engineer", URL: "https://a.co/1", Source: domain.SourceWWR},
	}

	cfg := testConfig()
	first := Process(cfg, raw)
	second := Process(cfg, raw)
	assert.Equal(t, first, second)
}

func TestProcessEmptyInput(t *testing.T) {
	assert.Empty(t, Process(testConfig(), nil))
}
