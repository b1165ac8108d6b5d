package smtp

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/environment"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/utils"
	"go.uber.org/zap"
)

var htmlEmailTemplateStr = `From: %s <%s>
To: %s <%s>
Subject: %s
Mime-Version: 1.0;
Content-Type: text/html; charset="UTF-8";
Content-Transfer-Encoding: 8bit;

%s
`

type smtpEmailService struct {
	logger   *zap.Logger
	cfg      *config.AppConfig
	env      *environment.Env
	client   utils.SMTPClient
	composer *services.EmailComposer

	smtpAuth smtp.Auth
}

// NewSMTPEmailService creates an EmailService that delivers emails through the SMTP server set in the environment
func NewSMTPEmailService(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, client utils.SMTPClient) (services.EmailService, error) {
	composer, err := services.NewEmailComposer(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not create email composer")
	}

	return &smtpEmailService{
		logger:   logger,
		cfg:      cfg,
		env:      env,
		client:   client,
		composer: composer,
		smtpAuth: smtp.PlainAuth("", env.Get(environment.SMTPUsername),
			env.Get(environment.SMTPPassword), env.Get(environment.SMTPHost)),
	}, nil
}

func (s *smtpEmailService) SendEmail(subject, htmlBody, plainTextBody, senderName, senderEmail, recipientName, recipientEmail string) error {
	message := fmt.Sprintf(htmlEmailTemplateStr, senderName, senderEmail, recipientName, recipientEmail, subject, htmlBody)

	err := s.client.SendEmail(fmt.Sprintf("%s:%s", s.env.Get(environment.SMTPHost), s.env.Get(environment.SMTPPort)),
		s.smtpAuth, senderEmail, []string{recipientEmail}, []byte(message))
	if err != nil {
		s.logger.Error("could not send email",
			zap.String("subject", subject),
			zap.String("recipient", recipientEmail),
			zap.Error(err))
		return errors.Wrap(err, "could not send email")
	}

	return nil
}

func (s *smtpEmailService) SendRegistrationStatusEmail(ctx context.Context, registration entities.Registration) error {
	email, err := s.composer.RegistrationStatusEmail(registration)
	if err != nil {
		return err
	}

	return s.send(email)
}

func (s *smtpEmailService) SendQuestSelectedEmail(ctx context.Context, quest entities.Quest, selection entities.Selection) error {
	email, err := s.composer.QuestSelectedEmail(quest, selection)
	if err != nil {
		return err
	}

	return s.send(email)
}

func (s *smtpEmailService) send(email *services.Email) error {
	return s.SendEmail(
		email.Subject,
		email.Body,
		"",
		s.cfg.Email.NoreplyEmailName,
		s.cfg.Email.NoreplyEmailAddr,
		email.RecipientName,
		email.RecipientEmail)
}
