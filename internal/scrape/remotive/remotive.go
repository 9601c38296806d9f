package remotive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/types"
	"jobdigest/internal/scrape/util"
)

const defaultBaseURL = "https://remotive.com/api/remote-jobs?category=software-dev"

type Config struct {
	BaseURL string
	Max     int
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Scraper {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Max <= 0 {
		cfg.Max = 5
	}
	return &Scraper{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 30 * time.Second},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return string(domain.SourceRemotive) }

type apiJob struct {
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	URL         string   `json:"url"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

type apiResponse struct {
	Jobs []apiJob `json:"jobs"`
}

func (s *Scraper) Fetch(ctx context.Context) (types.Result, error) {
	result := types.Result{Source: domain.SourceRemotive}

	res, err := util.Get(ctx, s.hc, s.limiter, s.cfg.BaseURL)
	if err != nil {
		return result, fmt.Errorf("remotive get: %w", err)
	}
	defer res.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return result, fmt.Errorf("remotive decode: %w", err)
	}

	for _, j := range body.Jobs {
		if len(result.Postings) >= s.cfg.Max {
			break
		}
		result.Postings = append(result.Postings, domain.RawPosting{
			Title:   util.CleanText(j.Title),
			Company: util.CleanText(j.CompanyName),
			URL:     strings.TrimSpace(j.URL),
			Snippet: snippet(j),
			Source:  domain.SourceRemotive,
		})
	}
	return result, nil
}

// snippet keeps enough text for keyword matching without dragging the full
// job description around.
func snippet(j apiJob) string {
	s := util.CleanText(j.Category + " " + strings.Join(j.Tags, " ") + " " + j.Description)
	const max = 280
	if len(s) > max {
		s = s[:max]
	}
	return s
}
