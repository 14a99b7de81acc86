package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"

	"escapade/config"
	"escapade/infras/otel"
	"escapade/shared/constant"
)

type Email struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers transactional email through the configured SMTP provider.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type mailerImpl struct {
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Mailer {
	return &mailerImpl{
		config: cfg,
		otel:   ot,
	}
}

func (m *mailerImpl) Send(ctx context.Context, email Email) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("mail.subject", email.Subject)

	smtp := m.config.External.SMTP

	msg := gomail.NewMsg()
	if err = msg.From(smtp.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}

	if err = msg.To(email.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, email.HTML)

	options := []gomail.Option{
		gomail.WithPort(smtp.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(smtp.Username),
		gomail.WithPassword(smtp.Password),
	}

	if smtp.Secure {
		options = append(options, gomail.WithSSLPort(false))
	} else {
		options = append(options, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(smtp.Host, options...)
	if err != nil {
		log.Error().Err(err).Msg("failed to build SMTP client")

		return fmt.Errorf("failed to build SMTP client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Error().Err(err).Str("subject", email.Subject).Msg("failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
