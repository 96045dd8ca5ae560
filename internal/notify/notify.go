// Package notify delivers transactional email through SendGrid's REST API.
package notify

import (
	"context"
	"log"
)

// LogMailer writes email intents to the process log instead of
// sending. Used when no SendGrid API key is configured and in tests.
type LogMailer struct{}

// SendWelcome logs the welcome email that would have been sent.
func (LogMailer) SendWelcome(ctx context.Context, email string) error {
	log.Printf("mailer disabled: welcome email for %s skipped", email)
	return nil
}

// SendPasswordReset logs the reset link that would have been sent.
func (LogMailer) SendPasswordReset(ctx context.Context, email, link string) error {
	log.Printf("mailer disabled: reset link for %s: %s", email, link)
	return nil
}
