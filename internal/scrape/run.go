package scrape

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"jobdigest/internal/config"
	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/alertmail"
	"jobdigest/internal/scrape/arbeitnow"
	"jobdigest/internal/scrape/jsjobbs"
	"jobdigest/internal/scrape/remoteok"
	"jobdigest/internal/scrape/remotive"
	"jobdigest/internal/scrape/types"
	"jobdigest/internal/scrape/util"
	"jobdigest/internal/scrape/wwr"
)

const fetchTimeout = 2 * time.Minute

// BuildFetchers assembles the enabled sources in a fixed order. Downstream
// dedupe keeps the first occurrence of a URL, so this order is part of the
// pipeline's contract.
func BuildFetchers(cfg config.Config, limiter *util.HostLimiter, imapPassword string) []types.Fetcher {
	max := cfg.Rules.Sources.MaxPerSource

	var fetchers []types.Fetcher
	if cfg.Rules.Sources.Arbeitnow.Enabled {
		fetchers = append(fetchers, arbeitnow.New(arbeitnow.Config{Max: max}, limiter))
	}
	if cfg.Rules.Sources.Remotive.Enabled {
		fetchers = append(fetchers, remotive.New(remotive.Config{Max: max}, limiter))
	}
	if cfg.Rules.Sources.WWR.Enabled {
		fetchers = append(fetchers, wwr.New(wwr.Config{Max: max}, limiter))
	}
	if cfg.Rules.Sources.JSJobbs.Enabled {
		fetchers = append(fetchers, jsjobbs.New(jsjobbs.Config{Max: max}, limiter))
	}
	if cfg.Rules.Sources.RemoteOK.Enabled {
		fetchers = append(fetchers, remoteok.New(remoteok.Config{Max: max}, limiter))
	}
	if am := cfg.Rules.AlertMail; am.Enabled {
		fetchers = append(fetchers, alertmail.New(alertmail.Config{
			IMAPHost:   am.IMAPHost,
			IMAPPort:   am.IMAPPort,
			Username:   am.Username,
			Password:   imapPassword,
			Mailbox:    am.Mailbox,
			SubjectAny: am.SubjectAny,
			MaxEmails:  am.MaxEmails,
		}))
	}
	return fetchers
}

// RunAll fans the fetchers out and concatenates their postings in fetcher
// order. Collection is indexed by fetcher, not by completion, so the result
// is stable no matter which source answers first. A failing source logs and
// contributes nothing.
func RunAll(ctx context.Context, fetchers []types.Fetcher) []domain.RawPosting {
	results := make([]types.Result, len(fetchers))

	var g errgroup.Group
	for i, f := range fetchers {
		i, f := i, f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, fetchTimeout)
			defer cancel()

			res, err := f.Fetch(fctx)
			if err != nil {
				log.Printf("[%s] fetch error: %v", f.Name(), err)
				return nil // best-effort: don't cancel siblings
			}
			log.Printf("[%s] fetched %d postings", f.Name(), len(res.Postings))
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	var out []domain.RawPosting
	for _, res := range results {
		out = append(out, res.Postings...)
	}
	return out
}
