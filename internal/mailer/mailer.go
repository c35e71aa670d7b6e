package mailer

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/ka-tch/webmail/internal/models"
)

// Mailer delivers outbound email over SMTP.
type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (m *Mailer) Send(ctx context.Context, email models.OutboundEmail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("To", email.To)
	msg.SetHeader("From", m.Username)
	msg.SetHeader("Reply-To", email.From)
	msg.SetHeader("Subject", email.Subject)

	msg.SetBody("text/plain", email.Body)

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)

	return dialer.DialAndSend(msg)
}
