package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"example.com/sweatjunkies/internal/observability"
)

const sendEndpoint = "https://api.sendgrid.com/v3/mail/send"

// SendGridMailer sends email through the SendGrid v3 mail/send API.
// Implements domain.Mailer.
type SendGridMailer struct {
	apiKey string
	from   string
	client *http.Client
	base   string
}

// NewSendGridMailer constructs a mailer for the given API key and
// sender address.
func NewSendGridMailer(apiKey, from string) *SendGridMailer {
	return &SendGridMailer{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
		base:   sendEndpoint,
	}
}

// SendWelcome sends the post-registration welcome email.
func (m *SendGridMailer) SendWelcome(ctx context.Context, email string) error {
	body := fmt.Sprintf("Hi %s, welcome to Sweat Junkies! We're glad to have you.", email)
	return m.send(ctx, email, "Welcome to Sweat Junkies!", body)
}

// SendPasswordReset sends the reset link email.
func (m *SendGridMailer) SendPasswordReset(ctx context.Context, email, link string) error {
	body := fmt.Sprintf("A password reset was requested for your account. Follow this link within one hour to choose a new password: %s", link)
	return m.send(ctx, email, "Reset your Sweat Junkies password", body)
}

type mailRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To []address `json:"to"`
}

type address struct {
	Email string `json:"email"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (m *SendGridMailer) send(ctx context.Context, to, subject, body string) error {
	err := m.doSend(ctx, to, subject, body)
	observability.RecordEmail(err == nil)
	return err
}

func (m *SendGridMailer) doSend(ctx context.Context, to, subject, body string) error {
	payload := mailRequest{
		Personalizations: []personalization{{To: []address{{Email: to}}}},
		From:             address{Email: m.from},
		Subject:          subject,
		Content:          []content{{Type: "text/plain", Value: body}},
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.base, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
