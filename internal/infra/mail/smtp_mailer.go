// Package mail implements the outbound email notifications over SMTP.
package mail

import (
	"context"
	"log/slog"
	"text/template"

	gomail "github.com/wneessen/go-mail"

	"courier/config"
	"courier/internal/domain/service"
	"courier/internal/errors"
)

// smtpMailer is a concrete implementation of the Mailer interface using an
// SMTP transport.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
// It returns the implementation as a service.Mailer interface.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration must be provided")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTP.Port),
	}
	if cfg.SMTP.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTP.Username),
			gomail.WithPassword(cfg.SMTP.Password),
		)
	} else {
		// Local development relays (e.g. mailpit) speak plain SMTP.
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}

	client, err := gomail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.SMTP.From,
		logger: logger,
	}, nil
}

// SendWelcome greets a freshly registered account.
func (m *smtpMailer) SendWelcome(ctx context.Context, to, name string) error {
	return m.send(ctx, to, "Welcome to Courier", welcomeTemplate, templateData{Name: name})
}

// SendPasswordReset delivers the reset link containing the reset token.
func (m *smtpMailer) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	return m.send(ctx, to, "Reset your Courier password", resetTemplate, templateData{Name: name, ResetURL: resetURL})
}

// SendPasswordResetConfirmation confirms a completed password change.
func (m *smtpMailer) SendPasswordResetConfirmation(ctx context.Context, to, name string) error {
	return m.send(ctx, to, "Your Courier password was changed", resetConfirmationTemplate, templateData{Name: name})
}

func (m *smtpMailer) send(ctx context.Context, to, subject string, tmpl *template.Template, data templateData) error {
	body, err := renderBody(tmpl, data)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to send %q email", subject)
	}

	m.logger.Debug("Email sent", slog.String("subject", subject))

	return nil
}
