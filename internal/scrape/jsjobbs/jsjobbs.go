package jsjobbs

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
	defaultBaseURL = "https://jsjobbs.com/jobs/remote"
	origin         = "https://jsjobbs.com"
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

func (s *Scraper) Name() string { return string(domain.SourceJSJobbs) }

func (s *Scraper) Fetch(ctx context.Context) (types.Result, error) {
	result := types.Result{Source: domain.SourceJSJobbs}

	res, err := util.Get(ctx, s.hc, s.limiter, s.cfg.BaseURL)
	if err != nil {
		return result, fmt.Errorf("jsjobbs get: %w", err)
	}
	defer res.Body.Close()

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return result, fmt.Errorf("jsjobbs parse html: %w", err)
	}

	doc.Find(".job-card").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if len(result.Postings) >= s.cfg.Max {
			return false
		}

		title := util.CleanText(card.Find(".job-title").First().Text())
		company := util.CleanText(card.Find(".company-name").First().Text())
		href, _ := card.Find("a").First().Attr("href")
		link := util.ResolveHref(origin, href)
		if title == "" || link == "" {
			return true
		}

		result.Postings = append(result.Postings, domain.RawPosting{
			Title:   title,
			Company: company,
			URL:     link,
			Source:  domain.SourceJSJobbs,
		})
		return true
	})

	return result, nil
}
