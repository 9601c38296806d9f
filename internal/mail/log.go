package mail

import (
	"context"
	"log"
)

// LogSender is the dry-run sink: the digest goes to the log, nothing goes to
// the network.
type LogSender struct {
	// Logf lets tests capture output; defaults to the standard logger.
	Logf func(format string, args ...any)
}

func NewLogSender() *LogSender {
	return &LogSender{Logf: log.Printf}
}

func (s *LogSender) Send(_ context.Context, subject, htmlBody string) error {
	logf := s.Logf
	if logf == nil {
		logf = log.Printf
	}
	logf("[dry-run] subject: %s", subject)
	logf("[dry-run] body (%d bytes):\n%s", len(htmlBody), clip(htmlBody, 400))
	return nil
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
