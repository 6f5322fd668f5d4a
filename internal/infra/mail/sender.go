package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/flyfox-ai/funnel/internal/infra/queue"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
}

func NewEmailSender(host string, port int, user, password, from, fromName string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		FromName: fromName,
	}
}

// Deliver renders the template named in the payload and sends it over SMTP.
func (s *EmailSender) Deliver(payload queue.NotificationPayload) error {
	tmpl, ok := emailTemplates[payload.Template]
	if !ok {
		return fmt.Errorf("unknown email template %q", payload.Template)
	}

	t, err := template.New(payload.Template).Parse(tmpl.Body)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, payload); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.From, s.FromName)
	m.SetHeader("To", payload.To)
	m.SetHeader("Subject", tmpl.Subject)
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("SMTP send failed: %w", err)
	}

	return nil
}
