package wwr

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/types"
	"jobdigest/internal/scrape/util"
)

const (
	defaultBaseURL = "https://weworkremotely.com/categories/remote-front-end-programming-jobs"
	origin         = "https://weworkremotely.com"

	maxSections = 3
)

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

func (s *Scraper) Name() string { return string(domain.SourceWWR) }

func (s *Scraper) Fetch(ctx context.Context) (types.Result, error) {
	result := types.Result{Source: domain.SourceWWR}

	res, err := util.Get(ctx, s.hc, s.limiter, s.cfg.BaseURL)
	if err != nil {
		return result, fmt.Errorf("weworkremotely get: %w", err)
	}
	defer res.Body.Close()

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return result, fmt.Errorf("weworkremotely parse html: %w", err)
	}

	doc.Find("section.jobs").EachWithBreak(func(si int, section *goquery.Selection) bool {
		if si >= maxSections || len(result.Postings) >= s.cfg.Max {
			return false
		}
		section.Find("li a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			if len(result.Postings) >= s.cfg.Max {
				return false
			}

			title := util.CleanText(a.Find("span.title").First().Text())
			if title == "" {
				return true
			}
			href, _ := a.Attr("href")
			link := util.ResolveHref(origin, href)
			if link == "" {
				return true
			}

			result.Postings = append(result.Postings, domain.RawPosting{
				Title:   title,
				Company: util.CleanText(a.Find("span.company").First().Text()),
				URL:     link,
				Source:  domain.SourceWWR,
			})
			return true
		})
		return true
	})

	return result, nil
}
