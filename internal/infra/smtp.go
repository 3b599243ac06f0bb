package infra

import (
	"fmt"
	"net/smtp"

	"pdvmercado/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for sending receipts and vouchers as PDF attachments.
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.From(),
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Enabled reports whether an SMTP host is configured.
func (m *Mailer) Enabled() bool { return m.host != "" }

// Send delivers a plain-text message with an optional file attachment.
func (m *Mailer) Send(to, subject, body, anexo string) error {
	if !m.Enabled() {
		return fmt.Errorf("mailer: SMTP_HOST não configurado")
	}

	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if anexo != "" {
		if _, err := e.AttachFile(anexo); err != nil {
			return fmt.Errorf("mailer: anexar PDF: %w", err)
		}
	}

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	return e.Send(m.addr, auth)
}
