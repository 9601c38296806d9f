package alertmail

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/emersion/go-imap/v2"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/types"
)

// Config holds the mailbox to scan for job-alert emails.
type Config struct {
	IMAPHost   string
	IMAPPort   int
	Username   string
	Password   string
	Mailbox    string
	SubjectAny []string
	MaxEmails  int
}

// Fetcher turns unseen job-alert emails into raw postings. It is one more
// source in the digest run; a broken mailbox costs that source only.
type Fetcher struct {
	cfg Config
}

func New(cfg Config) *Fetcher {
	if cfg.Mailbox == "" {
		cfg.Mailbox = "INBOX"
	}
	if cfg.IMAPPort == 0 {
		cfg.IMAPPort = 993
	}
	return &Fetcher{cfg: cfg}
}

func (f *Fetcher) Name() string { return string(domain.SourceAlertMail) }

func (f *Fetcher) Fetch(ctx context.Context) (types.Result, error) {
	result := types.Result{Source: domain.SourceAlertMail}

	addr := f.cfg.IMAPHost
	if !strings.Contains(addr, ":") {
		addr = fmt.Sprintf("%s:%d", addr, f.cfg.IMAPPort)
	}

	c, err := dialAndLogin(ctx, addr, f.cfg.Username, f.cfg.Password)
	if err != nil {
		return result, err
	}
	defer logoutAndClose(c)

	if _, err := c.Select(f.cfg.Mailbox, &imap.SelectOptions{ReadOnly: false}).Wait(); err != nil {
		return result, fmt.Errorf("imap select %q: %w", f.cfg.Mailbox, err)
	}

	msgs, err := fetchUnseen(ctx, c, f.cfg.MaxEmails)
	if err != nil {
		return result, err
	}

	var processed []imap.UID
	for _, m := range msgs {
		subj := decodeRFC2047(m.Subject)

		if len(f.cfg.SubjectAny) > 0 && !containsAnyCI(subj, f.cfg.SubjectAny) {
			continue
		}
		if !looksLikeJobAlert(m.From, subj) {
			continue
		}

		jobs, perr := parseJobAlertHTML(htmlBody(m.Raw))
		if perr != nil {
			log.Printf("[alertmail] parse uid=%d subject=%q: %v", m.UID, subj, perr)
			continue
		}

		for _, j := range jobs {
			result.Postings = append(result.Postings, domain.RawPosting{
				Title:   j.Title,
				Company: j.Company,
				URL:     j.URL,
				Snippet: strings.TrimSpace(j.Location + " " + subj),
				Source:  domain.SourceAlertMail,
			})
		}
		processed = append(processed, m.UID)
	}

	// Only fully parsed alerts are marked seen; anything skipped stays
	// unseen for the next run.
	if err := markSeen(c, processed); err != nil {
		log.Printf("[alertmail] mark seen: %v", err)
	}

	return result, nil
}

func containsAnyCI(s string, needles []string) bool {
	ls := strings.ToLower(s)
	for _, n := range needles {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" && strings.Contains(ls, n) {
			return true
		}
	}
	return false
}
