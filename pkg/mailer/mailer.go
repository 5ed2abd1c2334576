// Package mailer provides transactional email delivery for the
// application's notifications.
package mailer

import (
	"context"
	"strings"
)

// Config holds email delivery configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey        string `env:"RESEND_API_KEY"`
	FromEmail     string `env:"DEFAULT_FROM_EMAIL" envDefault:"Portal Empleos <noreply@portalempleos.com.mx>"`
	SubjectPrefix string `env:"EMAIL_SUBJECT_PREFIX" envDefault:"[Portal Empleos] "`
}

// Email is a fully-prepared message ready for delivery.
type Email struct {
	To      []string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

// Sender defines the minimal interface that email providers must
// implement.
type Sender interface {
	// Send delivers an email message. The Email must have To, Subject,
	// and a body (HTML or Text) already set.
	Send(ctx context.Context, email *Email) error
}

// subject applies the configured subject prefix, avoiding double prefixes
// on resent messages.
func (c Config) subject(s string) string {
	if c.SubjectPrefix == "" || strings.HasPrefix(s, c.SubjectPrefix) {
		return s
	}
	return c.SubjectPrefix + s
}
