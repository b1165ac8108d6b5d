package services

import (
	"bytes"
	"context"
	"html/template"

	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/templates"
	"github.com/technegotia/tn_quests/utils"
)

var (
	registrationApprovedEmailTemplatePath = "emails/registrationApproved_email.gohtml"
	registrationRejectedEmailTemplatePath = "emails/registrationRejected_email.gohtml"
	questSelectedEmailTemplatePath        = "emails/questSelected_email.gohtml"
)

// EmailService is used to send out emails
type EmailService interface {
	SendEmail(subject, htmlBody, plainTextBody, senderName, senderEmail, recipientName, recipientEmail string) error

	// SendRegistrationStatusEmail tells the team about the organisers' decision on their registration
	SendRegistrationStatusEmail(ctx context.Context, registration entities.Registration) error
	// SendQuestSelectedEmail confirms the team's quest selection
	SendQuestSelectedEmail(ctx context.Context, quest entities.Quest, selection entities.Selection) error
}

// Email is a rendered email ready to be sent
type Email struct {
	Subject        string
	Body           string
	RecipientName  string
	RecipientEmail string
}

type emailBodyTemplateDataModel struct {
	EventName        string
	TeamName         string
	Reason           string
	QuestTitle       string
	QuestDescription string
	SenderName       string
}

// EmailComposer renders the bodies of the emails sent by the EmailService implementations
type EmailComposer struct {
	cfg *config.AppConfig

	registrationApprovedTemplate *template.Template
	registrationRejectedTemplate *template.Template
	questSelectedTemplate        *template.Template
}

// NewEmailComposer loads the email templates
func NewEmailComposer(cfg *config.AppConfig) (*EmailComposer, error) {
	registrationApprovedTemplate, err := utils.LoadTemplate("registration approved", templates.Emails, registrationApprovedEmailTemplatePath)
	if err != nil {
		return nil, errors.Wrap(err, "could not load registration approved template")
	}

	registrationRejectedTemplate, err := utils.LoadTemplate("registration rejected", templates.Emails, registrationRejectedEmailTemplatePath)
	if err != nil {
		return nil, errors.Wrap(err, "could not load registration rejected template")
	}

	questSelectedTemplate, err := utils.LoadTemplate("quest selected", templates.Emails, questSelectedEmailTemplatePath)
	if err != nil {
		return nil, errors.Wrap(err, "could not load quest selected template")
	}

	return &EmailComposer{
		cfg:                          cfg,
		registrationApprovedTemplate: registrationApprovedTemplate,
		registrationRejectedTemplate: registrationRejectedTemplate,
		questSelectedTemplate:        questSelectedTemplate,
	}, nil
}

// RegistrationStatusEmail renders the email for the current status of the registration
func (c *EmailComposer) RegistrationStatusEmail(registration entities.Registration) (*Email, error) {
	var (
		tmpl    *template.Template
		subject string
	)
	switch registration.Status {
	case entities.Approved:
		tmpl, subject = c.registrationApprovedTemplate, c.cfg.Email.RegistrationApprovedSubj
	case entities.Rejected:
		tmpl, subject = c.registrationRejectedTemplate, c.cfg.Email.RegistrationRejectedSubj
	default:
		return nil, errors.Wrapf(ErrInvalidStatus, "no email for status %s", registration.Status)
	}

	return c.render(tmpl, subject, registration.TeamName, registration.UserEmail, emailBodyTemplateDataModel{
		EventName:  c.cfg.Name,
		TeamName:   registration.TeamName,
		Reason:     registration.RejectionReason,
		SenderName: c.cfg.Email.NoreplyEmailName,
	})
}

// QuestSelectedEmail renders the confirmation of a quest selection
func (c *EmailComposer) QuestSelectedEmail(quest entities.Quest, selection entities.Selection) (*Email, error) {
	return c.render(c.questSelectedTemplate, c.cfg.Email.QuestSelectedSubj, selection.TeamName, selection.UserEmail,
		emailBodyTemplateDataModel{
			EventName:        c.cfg.Name,
			TeamName:         selection.TeamName,
			QuestTitle:       quest.Title,
			QuestDescription: quest.Description,
			SenderName:       c.cfg.Email.NoreplyEmailName,
		})
}

func (c *EmailComposer) render(tmpl *template.Template, subject, recipientName, recipientEmail string,
	data emailBodyTemplateDataModel) (*Email, error) {
	var contentBuff bytes.Buffer
	err := tmpl.Execute(&contentBuff, data)
	if err != nil {
		return nil, errors.Wrap(err, "could not construct email")
	}

	return &Email{
		Subject:        subject,
		Body:           contentBuff.String(),
		RecipientName:  recipientName,
		RecipientEmail: recipientEmail,
	}, nil
}
