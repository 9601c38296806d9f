package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a cleaned-up copy of cfg plus everything wrong
// with it. Credential checks run here, before any fetcher touches the network.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Rules.FreeApply.FreeDomains = trimList(out.Rules.FreeApply.FreeDomains)
	out.Rules.FreeApply.PaidHostMarkers = trimList(out.Rules.FreeApply.PaidHostMarkers)
	out.Rules.FreeApply.FreePhrases = trimList(out.Rules.FreeApply.FreePhrases)
	out.Rules.FreeApply.PaidPhrases = trimList(out.Rules.FreeApply.PaidPhrases)
	out.Rules.AlertMail.SubjectAny = trimList(out.Rules.AlertMail.SubjectAny)
	for i := range out.Rules.KeywordRules {
		out.Rules.KeywordRules[i].Any = trimList(out.Rules.KeywordRules[i].Any)
	}

	// ---- Validation rules ----

	if !out.DryRun {
		if strings.TrimSpace(out.EmailUser) == "" {
			res.addErr("EMAIL_USER is required when DRY_RUN=0")
		}
		if strings.TrimSpace(out.SMTPHost) == "" {
			res.addErr("SMTP_HOST must not be empty when DRY_RUN=0")
		}
		if out.SMTPPort <= 0 || out.SMTPPort > 65535 {
			res.addErr("SMTP_PORT %d is out of range", out.SMTPPort)
		}
	}

	anyKeyword := false
	for _, r := range out.Rules.KeywordRules {
		if len(r.Any) > 0 {
			anyKeyword = true
		}
	}
	if !anyKeyword {
		res.addWarn("no keyword rules configured; every posting will be dropped as irrelevant")
	}

	if out.Rules.Sources.MaxPerSource <= 0 {
		out.Rules.Sources.MaxPerSource = DefaultRules().Sources.MaxPerSource
	}

	am := &out.Rules.AlertMail
	if am.Enabled {
		if strings.TrimSpace(am.IMAPHost) == "" {
			res.addErr("alert_mail.imap_host is required when alert_mail.enabled=true")
		}
		if am.IMAPPort == 0 {
			am.IMAPPort = 993
		}
		if strings.TrimSpace(am.Username) == "" {
			res.addErr("alert_mail.username is required when alert_mail.enabled=true")
		}
		if strings.TrimSpace(am.Mailbox) == "" {
			am.Mailbox = "INBOX"
		}
		if len(am.SubjectAny) == 0 {
			res.addWarn("alert_mail.search_subject_any is empty; the mail source may parse nothing")
		}
	}

	return out, res
}
