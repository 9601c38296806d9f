package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASS", "")
	t.Setenv("EMAIL_TO", "")
	t.Setenv("DRY_RUN", "")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("JOBDIGEST_RULES", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.DryRun)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.True(t, cfg.Rules.Sources.Remotive.Enabled)
	assert.False(t, cfg.Rules.AlertMail.Enabled)
}

func TestFromEnvDryRunFlag(t *testing.T) {
	t.Setenv("EMAIL_USER", "me@example.com")
	t.Setenv("EMAIL_PASS", "secret")

	t.Setenv("DRY_RUN", "0")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.DryRun)
	// recipient defaults to the sender
	assert.Equal(t, "me@example.com", cfg.EmailTo)

	t.Setenv("DRY_RUN", "1")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.DryRun)
}

func TestLoadRulesMissingFileKeepsDefaults(t *testing.T) {
	rules, err := LoadRules(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRules().FreeApply.FreeDomains, rules.FreeApply.FreeDomains)
	assert.Equal(t, 5, rules.Sources.MaxPerSource)
}

func TestLoadRulesOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	content := `
keyword_rules:
  - tag: custom
    any: [svelte]
sources:
  max_per_source: 10
  remoteok:
    enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)

	require.Len(t, rules.KeywordRules, 1)
	assert.Equal(t, []string{"svelte"}, rules.KeywordRules[0].Any)
	assert.Equal(t, 10, rules.Sources.MaxPerSource)
	assert.False(t, rules.Sources.RemoteOK.Enabled)
	// untouched sections keep their defaults
	assert.True(t, rules.Sources.Remotive.Enabled)
	assert.NotEmpty(t, rules.FreeApply.FreeDomains)
}

func TestLoadRulesBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	require.NoError(t, os.WriteFile(path, []byte("keyword_rules: {nope"), 0o644))

	_, err := LoadRules(path)
	assert.Error(t, err)
}

func TestNormalizeAndValidateCredentialChecks(t *testing.T) {
	cfg := Config{DryRun: false, SMTPHost: "smtp.gmail.com", SMTPPort: 465, Rules: DefaultRules()}

	_, val := NormalizeAndValidate(cfg)
	require.False(t, val.OK())
	assert.Contains(t, val.Errors[0], "EMAIL_USER")

	cfg.EmailUser = "me@example.com"
	_, val = NormalizeAndValidate(cfg)
	assert.True(t, val.OK())
}

func TestNormalizeAndValidateDryRunSkipsCredentialChecks(t *testing.T) {
	cfg := Config{DryRun: true, Rules: DefaultRules()}
	_, val := NormalizeAndValidate(cfg)
	assert.True(t, val.OK())
}

func TestNormalizeAndValidateAlertMail(t *testing.T) {
	cfg := Config{DryRun: true, Rules: DefaultRules()}
	cfg.Rules.AlertMail.Enabled = true

	_, val := NormalizeAndValidate(cfg)
	require.False(t, val.OK())
	assert.Len(t, val.Errors, 2) // host and username missing

	cfg.Rules.AlertMail.IMAPHost = "imap.gmail.com"
	cfg.Rules.AlertMail.Username = "me@example.com"
	out, val := NormalizeAndValidate(cfg)
	assert.True(t, val.OK())
	assert.Equal(t, "INBOX", out.Rules.AlertMail.Mailbox)
}

func TestNormalizeAndValidateTrimsLists(t *testing.T) {
	cfg := Config{DryRun: true, Rules: DefaultRules()}
	cfg.Rules.KeywordRules = []Rule{{Tag: "t", Any: []string{" react ", "", "React", "vue"}}}

	out, val := NormalizeAndValidate(cfg)
	require.True(t, val.OK())
	assert.Equal(t, []string{"react", "vue"}, out.Rules.KeywordRules[0].Any)
}
