// Package email holds the fallback email sender used when no queue is configured.
package email

import (
	"context"
	"log"

	"ikhaya/internal/usecase/interfaces"
)

// LogSender writes emails to the log instead of delivering them.
type LogSender struct{}

var _ interfaces.IEmailSender = LogSender{}

func (LogSender) Send(_ context.Context, msg interfaces.EmailMessage) error {
	log.Printf("[notification][email] log-only to=%s type=%s subject=%q", msg.To, msg.Type, msg.Subject)
	return nil
}
