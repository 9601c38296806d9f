package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"jobdigest/internal/config"
	"jobdigest/internal/mail"
	"jobdigest/internal/pipeline"
	"jobdigest/internal/report"
	"jobdigest/internal/scrape"
	"jobdigest/internal/scrape/util"
	"jobdigest/internal/secrets"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("jobdigest: %v", err)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	cfg, val := config.NormalizeAndValidate(cfg)
	for _, w := range val.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !val.OK() {
		return fmt.Errorf("invalid configuration: %s", strings.Join(val.Errors, "; "))
	}

	// Resolve the sender before touching the network: bad credentials must
	// fail the run up front, not after five fetches.
	var sender mail.Sender
	if cfg.DryRun {
		sender = mail.NewLogSender()
	} else {
		pass, err := secrets.ResolveSMTPPassword(cfg.EmailPass, cfg.EmailUser)
		if err != nil {
			return fmt.Errorf("configuration: %w", err)
		}
		sender = mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: pass,
			From:     cfg.EmailUser,
			To:       cfg.EmailTo,
		})
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}
	lock := flock.New(filepath.Join(cfg.DataDir, "jobdigest.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("run lock: %w", err)
	}
	if !locked {
		return errors.New("another digest run is already in progress")
	}
	defer func() { _ = lock.Unlock() }()

	// Alert-mail password lives in the keychain only; a missing entry
	// silences that one source instead of killing the run.
	imapPass := ""
	if am := cfg.Rules.AlertMail; am.Enabled {
		account := am.KeyringAccount
		if account == "" {
			account = secrets.IMAPKeyringAccount(am.Username, am.IMAPHost)
		}
		imapPass, err = secrets.ResolveIMAPPassword(account)
		if err != nil {
			log.Printf("[alertmail] disabled: %v", err)
			cfg.Rules.AlertMail.Enabled = false
		}
	}

	ctx := context.Background()
	limiter := util.NewHostLimiter(2, 4)

	fetchers := scrape.BuildFetchers(cfg, limiter, imapPass)
	if len(fetchers) == 0 {
		return errors.New("no sources enabled")
	}

	raw := scrape.RunAll(ctx, fetchers)
	jobs := pipeline.Process(cfg, raw)

	now := time.Now()
	html, err := report.Render(jobs, now)
	if err != nil {
		return err
	}

	if err := sender.Send(ctx, report.Subject(now), html); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}

	if cfg.DryRun {
		log.Printf("dry run complete, %d jobs in digest, no email sent (set DRY_RUN=0 to send)", len(jobs))
	} else {
		log.Printf("digest with %d jobs sent to %s", len(jobs), cfg.EmailTo)
	}
	return nil
}
