package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Rule is one keyword rule: a job matches the rule when title or snippet
// contains any of the needles (case-insensitive).
type Rule struct {
	Tag string   `yaml:"tag"`
	Any []string `yaml:"any"`
}

type SourceToggle struct {
	Enabled bool `yaml:"enabled"`
}

// Rules is the YAML-sourced half of the configuration: relevance keywords,
// free-to-apply heuristics, and per-source switches.
type Rules struct {
	KeywordRules []Rule `yaml:"keyword_rules"`

	FreeApply struct {
		FreeDomains     []string `yaml:"free_domains"`
		PaidHostMarkers []string `yaml:"paid_host_markers"`
		FreePhrases     []string `yaml:"free_phrases"`
		PaidPhrases     []string `yaml:"paid_phrases"`
	} `yaml:"free_apply"`

	Sources struct {
		MaxPerSource int          `yaml:"max_per_source"`
		Arbeitnow    SourceToggle `yaml:"arbeitnow"`
		Remotive     SourceToggle `yaml:"remotive"`
		RemoteOK     SourceToggle `yaml:"remoteok"`
		JSJobbs      SourceToggle `yaml:"jsjobbs"`
		WWR          SourceToggle `yaml:"weworkremotely"`
	} `yaml:"sources"`

	AlertMail struct {
		Enabled        bool     `yaml:"enabled"`
		IMAPHost       string   `yaml:"imap_host"`
		IMAPPort       int      `yaml:"imap_port"`
		Username       string   `yaml:"username"`
		Mailbox        string   `yaml:"mailbox"`
		SubjectAny     []string `yaml:"search_subject_any"`
		MaxEmails      int      `yaml:"max_emails"`
		KeyringAccount string   `yaml:"keyring_account"`
	} `yaml:"alert_mail"`
}

// Config is the full runtime configuration: credentials and transport from
// the environment, rules from YAML.
type Config struct {
	EmailUser string `env:"EMAIL_USER"`
	EmailPass string `env:"EMAIL_PASS"`
	EmailTo   string `env:"EMAIL_TO"`
	DryRun    bool   `env:"DRY_RUN" envDefault:"1"`
	SMTPHost  string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort  int    `env:"SMTP_PORT" envDefault:"465"`
	DataDir   string `env:"JOBDIGEST_DATA_DIR" envDefault:"."`
	RulesPath string `env:"JOBDIGEST_RULES"`

	Rules Rules `env:"-"`
}

// DefaultRules mirrors the built-in frontend keyword set and free-board list.
func DefaultRules() Rules {
	var r Rules

	r.KeywordRules = []Rule{
		{Tag: "frontend", Any: []string{
			"frontend", "front-end", "react", "vue", "angular",
			"javascript", "web developer", "ui",
		}},
	}

	r.FreeApply.FreeDomains = []string{
		"remotive.com", "remotive.io", "weworkremotely.com", "wellfound.com",
		"angel.co", "jobspresso.co", "indeed.com", "glassdoor.com",
		"builtin.com", "linkedin.com", "stackoverflow.com", "arbeitnow.com",
		"flexjobs.com", "remoteco.com", "workingnotworking.com",
	}
	r.FreeApply.PaidHostMarkers = []string{"premium", "pay", "subscription"}
	r.FreeApply.FreePhrases = []string{"no fee", "free to apply"}
	r.FreeApply.PaidPhrases = []string{"premium access", "membership required"}

	r.Sources.MaxPerSource = 5
	r.Sources.Arbeitnow.Enabled = true
	r.Sources.Remotive.Enabled = true
	r.Sources.RemoteOK.Enabled = true
	r.Sources.JSJobbs.Enabled = true
	r.Sources.WWR.Enabled = true

	r.AlertMail.Mailbox = "INBOX"
	r.AlertMail.IMAPPort = 993
	r.AlertMail.MaxEmails = 50

	return r
}

// LoadRules reads a rules file over the defaults. A missing file is not an
// error; the defaults stand.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return rules, nil
		}
		return rules, fmt.Errorf("read rules file: %w", err)
	}
	if err := yaml.Unmarshal(b, &rules); err != nil {
		return rules, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return rules, nil
}

// FromEnv loads .env if present, parses the environment, and overlays the
// rules file.
func FromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env config: %w", err)
	}

	rules, err := LoadRules(cfg.RulesPath)
	if err != nil {
		return cfg, err
	}
	cfg.Rules = rules

	if cfg.EmailTo == "" {
		cfg.EmailTo = cfg.EmailUser
	}
	return cfg, nil
}
