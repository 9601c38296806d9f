package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups the digest's secrets in the OS keychain.
const KeyringService = "jobdigest"

// ResolveSMTPPassword prefers the environment value and falls back to the
// keychain entry for the sender address.
func ResolveSMTPPassword(envValue, sender string) (string, error) {
	if strings.TrimSpace(envValue) != "" {
		return envValue, nil
	}
	if strings.TrimSpace(sender) != "" {
		pw, err := keyring.Get(KeyringService, SMTPKeyringAccount(sender))
		if err == nil && strings.TrimSpace(pw) != "" {
			return pw, nil
		}
	}
	return "", errors.New("SMTP password not found (set EMAIL_PASS or store it in the keychain)")
}

// ResolveIMAPPassword looks up the alert-mail password for the given account.
func ResolveIMAPPassword(account string) (string, error) {
	if strings.TrimSpace(account) == "" {
		return "", errors.New("keyring account name is empty")
	}
	pw, err := keyring.Get(KeyringService, account)
	if err != nil || strings.TrimSpace(pw) == "" {
		return "", errors.New("IMAP password not found in keychain")
	}
	return pw, nil
}

func SetPassword(account, password string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, account, password)
}

func DeletePassword(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}

func SMTPKeyringAccount(sender string) string {
	return fmt.Sprintf("jobdigest:smtp:%s", sender)
}

func IMAPKeyringAccount(username, host string) string {
	return fmt.Sprintf("jobdigest:imap:%s@%s", username, host)
}
