package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobdigest/internal/config"
	"jobdigest/internal/domain"
)

func TestClassify(t *testing.T) {
	c := New(config.DefaultRules())

	tests := []struct {
		name string
		job  domain.Job
		want bool
	}{
		{
			name: "known free board",
			job:  domain.Job{URL: "https://remotive.com/remote-jobs/1"},
			want: true,
		},
		{
			name: "free board with www prefix",
			job:  domain.Job{URL: "https://www.arbeitnow.com/jobs/abc"},
			want: true,
		},
		{
			name: "paid marker in host",
			job:  domain.Job{URL: "https://premium-jobs.example/listing/1"},
			want: false,
		},
		{
			name: "subscription host",
			job:  domain.Job{URL: "https://subscription.example/apply"},
			want: false,
		},
		{
			name: "unknown host defaults to not confirmed free",
			job:  domain.Job{URL: "https://careers.example.com/jobs/1"},
			want: false,
		},
		{
			name: "free phrase in snippet",
			job: domain.Job{
				URL:     "https://careers.example.com/jobs/1",
				Snippet: "Remote role, no fee to apply",
			},
			want: true,
		},
		{
			name: "paid phrase beats free phrase",
			job: domain.Job{
				URL:     "https://careers.example.com/jobs/1",
				Snippet: "no fee listed but premium access required",
			},
			want: false,
		},
		{
			name: "unparsable url",
			job:  domain.Job{URL: "://not-a-url"},
			want: false,
		},
		{
			name: "empty url",
			job:  domain.Job{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.job))
		})
	}
}

func TestClassifyNeverPanicsOnEmptyRules(t *testing.T) {
	c := New(config.Rules{})
	assert.False(t, c.Classify(domain.Job{URL: "https://remotive.com/jobs/1"}))
}
