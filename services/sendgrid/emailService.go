package sendgrid

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/services"
	"go.uber.org/zap"
)

type sendgridEmailService struct {
	*sendgrid.Client
	logger   *zap.Logger
	cfg      *config.AppConfig
	composer *services.EmailComposer
}

// NewSendgridEmailService creates an EmailService that delivers emails through the SendGrid API
func NewSendgridEmailService(logger *zap.Logger, cfg *config.AppConfig, client *sendgrid.Client) (services.EmailService, error) {
	composer, err := services.NewEmailComposer(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not create email composer")
	}

	return &sendgridEmailService{
		Client:   client,
		logger:   logger,
		cfg:      cfg,
		composer: composer,
	}, nil
}

func (s *sendgridEmailService) SendEmail(subject, htmlBody, plainTextBody, senderName, senderEmail, recipientName, recipientEmail string) error {
	from := mail.NewEmail(senderName, senderEmail)
	to := mail.NewEmail(recipientName, recipientEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)
	response, err := s.Send(message)

	if err != nil {
		s.logger.Error("could not issue email request",
			zap.String("subject", subject),
			zap.String("recipient", recipientEmail),
			zap.String("sender", senderEmail),
			zap.Error(err))
		return errors.Wrap(err, "could not send email request to SendGrid")
	}

	if response.StatusCode != http.StatusAccepted {
		s.logger.Error("email request was rejected by Sendgrid",
			zap.String("subject", subject),
			zap.String("recipient", recipientEmail),
			zap.String("sender", senderEmail),
			zap.Int("response status code", response.StatusCode),
			zap.String("response body", response.Body))
		return services.ErrSendgridRejectedRequest
	}

	s.logger.Info("email request sent successfully",
		zap.String("subject", subject),
		zap.String("recipient", recipientEmail),
		zap.String("sender", senderEmail))
	return nil
}

func (s *sendgridEmailService) SendRegistrationStatusEmail(ctx context.Context, registration entities.Registration) error {
	email, err := s.composer.RegistrationStatusEmail(registration)
	if err != nil {
		return err
	}

	return s.send(email)
}

func (s *sendgridEmailService) SendQuestSelectedEmail(ctx context.Context, quest entities.Quest, selection entities.Selection) error {
	email, err := s.composer.QuestSelectedEmail(quest, selection)
	if err != nil {
		return err
	}

	return s.send(email)
}

func (s *sendgridEmailService) send(email *services.Email) error {
	return s.SendEmail(
		email.Subject,
		email.Body,
		email.Body,
		s.cfg.Email.NoreplyEmailName,
		s.cfg.Email.NoreplyEmailAddr,
		email.RecipientName,
		email.RecipientEmail)
}
