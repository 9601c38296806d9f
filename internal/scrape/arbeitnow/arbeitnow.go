package arbeitnow

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

const defaultBaseURL = "https://www.arbeitnow.com/api/job-board-api"

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

func (s *Scraper) Name() string { return string(domain.SourceArbeitnow) }

type apiJob struct {
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	Location    string   `json:"location"`
	Remote      bool     `json:"remote"`
}

type apiResponse struct {
	Data []apiJob `json:"data"`
}

func (s *Scraper) Fetch(ctx context.Context) (types.Result, error) {
	result := types.Result{Source: domain.SourceArbeitnow}

	res, err := util.Get(ctx, s.hc, s.limiter, s.cfg.BaseURL)
	if err != nil {
		return result, fmt.Errorf("arbeitnow get: %w", err)
	}
	defer res.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return result, fmt.Errorf("arbeitnow decode: %w", err)
	}

	for _, j := range body.Data {
		if len(result.Postings) >= s.cfg.Max {
			break
		}
		// Board-wide API; only the remote postings belong in the digest.
		if !j.Remote && !strings.Contains(strings.ToLower(j.Location), "remote") {
			continue
		}
		result.Postings = append(result.Postings, domain.RawPosting{
			Title:   util.CleanText(j.Title),
			Company: util.CleanText(j.CompanyName),
			URL:     strings.TrimSpace(j.URL),
			Snippet: util.CleanText(j.Location + " " + strings.Join(j.Tags, " ")),
			Source:  domain.SourceArbeitnow,
		})
	}
	return result, nil
}
