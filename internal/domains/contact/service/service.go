package service

import (
	"context"
	"fmt"
	"html"

	"github.com/rs/zerolog/log"

	"escapade/config"
	"escapade/infras/captcha"
	"escapade/infras/mailer"
	"escapade/infras/otel"
	"escapade/internal/domains/contact/model/dto"
	"escapade/shared/constant"
	"escapade/shared/failure"
)

// Contact handles the public contact form: captcha first, then the admin
// notification and the requester's confirmation email.
type Contact interface {
	Send(ctx context.Context, req dto.ContactRequest) error
}

type serviceImpl struct {
	cfg      *config.Config
	verifier captcha.Verifier
	mailer   mailer.Mailer
	otel     otel.Otel
}

func New(cfg *config.Config, verifier captcha.Verifier, mail mailer.Mailer, ot otel.Otel) Contact {
	return &serviceImpl{
		cfg:      cfg,
		verifier: verifier,
		mailer:   mail,
		otel:     ot,
	}
}

func (s *serviceImpl) Send(ctx context.Context, req dto.ContactRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	ok, err := s.verifier.Verify(ctx, req.CaptchaToken)
	if err != nil {
		log.Error().Err(err).Msg("captcha verification failed")

		return fmt.Errorf("captcha verification failed: %w", err)
	}

	if !ok {
		return failure.BadRequestFromString("captcha verification rejected") //nolint:wrapcheck
	}

	adminNotice := mailer.Email{
		To:      s.cfg.External.SMTP.AdminEmail,
		Subject: fmt.Sprintf("Contact : %s", req.Subject),
		HTML: fmt.Sprintf(
			"<p><strong>%s %s</strong> (%s, %s) a écrit :</p><p>%s</p>",
			html.EscapeString(req.FirstName), html.EscapeString(req.LastName),
			html.EscapeString(req.Email), html.EscapeString(req.Phone),
			html.EscapeString(req.Message),
		),
	}

	if err = s.mailer.Send(ctx, adminNotice); err != nil {
		log.Error().Err(err).Msg("failed to send contact notification")

		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	confirmation := mailer.Email{
		To:      req.Email,
		Subject: "Nous avons bien reçu votre message",
		HTML: fmt.Sprintf(
			"<p>Bonjour %s,</p><p>Merci pour votre message, nous revenons vers vous au plus vite.</p>",
			req.FirstName,
		),
	}

	if err = s.mailer.Send(ctx, confirmation); err != nil {
		log.Error().Err(err).Msg("failed to send contact confirmation")

		return fmt.Errorf("failed to send contact confirmation: %w", err)
	}

	return nil
}
