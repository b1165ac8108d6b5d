package logmail

import (
	"context"

	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/services"
	"go.uber.org/zap"
)

type logEmailService struct {
	logger   *zap.Logger
	cfg      *config.AppConfig
	composer *services.EmailComposer
}

// NewLogEmailService creates an EmailService that writes emails to the log instead of delivering them.
// Used when email delivery is disabled.
func NewLogEmailService(logger *zap.Logger, cfg *config.AppConfig) (services.EmailService, error) {
	composer, err := services.NewEmailComposer(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not create email composer")
	}

	return &logEmailService{
		logger:   logger,
		cfg:      cfg,
		composer: composer,
	}, nil
}

func (s *logEmailService) SendEmail(subject, htmlBody, plainTextBody, senderName, senderEmail, recipientName, recipientEmail string) error {
	s.logger.Info("email delivery disabled, logging email",
		zap.String("subject", subject),
		zap.String("recipient", recipientEmail),
		zap.String("sender", senderEmail),
		zap.Int("body length", len(htmlBody)))
	return nil
}

func (s *logEmailService) SendRegistrationStatusEmail(ctx context.Context, registration entities.Registration) error {
	email, err := s.composer.RegistrationStatusEmail(registration)
	if err != nil {
		return err
	}

	return s.SendEmail(email.Subject, email.Body, "", s.cfg.Email.NoreplyEmailName,
		s.cfg.Email.NoreplyEmailAddr, email.RecipientName, email.RecipientEmail)
}

func (s *logEmailService) SendQuestSelectedEmail(ctx context.Context, quest entities.Quest, selection entities.Selection) error {
	email, err := s.composer.QuestSelectedEmail(quest, selection)
	if err != nil {
		return err
	}

	return s.SendEmail(email.Subject, email.Body, "", s.cfg.Email.NoreplyEmailName,
		s.cfg.Email.NoreplyEmailAddr, email.RecipientName, email.RecipientEmail)
}
