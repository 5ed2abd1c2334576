package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// ResendSender implements Sender using the Resend API.
type ResendSender struct {
	client *resend.Client
	config Config
}

// NewResend creates a new Resend-backed sender.
func NewResend(cfg Config) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// Send implements Sender. The configured from address and subject prefix
// are applied to every message.
func (s *ResendSender) Send(ctx context.Context, email *Email) error {
	req := &resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      email.To,
		Subject: s.config.subject(email.Subject),
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("mailer: failed to send email: %w", err)
	}

	return nil
}

// Ensure ResendSender implements Sender.
var _ Sender = (*ResendSender)(nil)
