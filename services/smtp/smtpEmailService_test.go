package smtp

import (
	"context"
	"fmt"
	"net/smtp"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/environment"
	mock_utils "github.com/technegotia/tn_quests/mocks/utils"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/testutils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	testServer   = "localhost"
	testPort     = "1234"
	testUsername = "username"
	testPassword = "password"
)

var testAuth = smtp.PlainAuth("", testUsername, testPassword, testServer)

type emailTestSetup struct {
	ctrl           *gomock.Controller
	emailService   services.EmailService
	mockSMTPClient *mock_utils.MockSMTPClient
}

var testCfg = config.AppConfig{
	Name: "TechNegotia",
	Email: config.EmailConfig{
		NoreplyEmailAddr:         "bob@test.com",
		NoreplyEmailName:         "Bob the Tester",
		RegistrationApprovedSubj: "registration approved",
		RegistrationRejectedSubj: "registration rejected",
		QuestSelectedSubj:        "quest selected",
	},
}

func setupEmailTest(t *testing.T) *emailTestSetup {
	ctrl := gomock.NewController(t)
	mockSMTPClient := mock_utils.NewMockSMTPClient(ctrl)
	testCfgCopy := testCfg

	restore := testutils.SetEnvVars(map[string]string{
		environment.SMTPHost:     testServer,
		environment.SMTPPort:     testPort,
		environment.SMTPUsername: testUsername,
		environment.SMTPPassword: testPassword,
	})
	env := environment.NewEnv(zap.NewNop())
	defer restore()

	emailService, err := NewSMTPEmailService(zap.NewNop(), &testCfgCopy, env, mockSMTPClient)
	assert.NoError(t, err)

	return &emailTestSetup{
		ctrl:           ctrl,
		emailService:   emailService,
		mockSMTPClient: mockSMTPClient,
	}
}

func Test_SendEmail__should_send_correct_message_to_smtp(t *testing.T) {
	setup := setupEmailTest(t)
	defer setup.ctrl.Finish()

	expectedMessage := fmt.Sprintf(htmlEmailTemplateStr, "Bob the Tester", "bob@test.com",
		"Rob the Tester", "rob@test.com", "test email", "test email body")
	setup.mockSMTPClient.EXPECT().SendEmail(fmt.Sprintf("%s:%s", testServer, testPort), testAuth,
		"bob@test.com", []string{"rob@test.com"}, []byte(expectedMessage)).Return(nil).Times(1)

	err := setup.emailService.SendEmail("test email", "test email body", "test email body",
		"Bob the Tester", "bob@test.com", "Rob the Tester", "rob@test.com")

	assert.NoError(t, err)
}

func Test_SendEmail__should_return_error_when_sending_email_fails(t *testing.T) {
	setup := setupEmailTest(t)
	defer setup.ctrl.Finish()

	setup.mockSMTPClient.EXPECT().SendEmail(fmt.Sprintf("%s:%s", testServer, testPort), testAuth,
		"bob@test.com", []string{"rob@test.com"}, gomock.Any()).Return(errors.New("smtp err")).Times(1)

	err := setup.emailService.SendEmail("test email", "test email body", "test email body",
		"Bob the Tester", "bob@test.com", "Rob the Tester", "rob@test.com")

	assert.Error(t, err)
}

func Test_SendRegistrationStatusEmail__should_send_email_to_team(t *testing.T) {
	tests := []struct {
		name            string
		status          entities.RegistrationStatus
		expectedSubject string
	}{
		{
			name:            "approved",
			status:          entities.Approved,
			expectedSubject: "registration approved",
		},
		{
			name:            "rejected",
			status:          entities.Rejected,
			expectedSubject: "registration rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupEmailTest(t)
			defer setup.ctrl.Finish()

			setup.mockSMTPClient.EXPECT().SendEmail(fmt.Sprintf("%s:%s", testServer, testPort), testAuth,
				testCfg.Email.NoreplyEmailAddr, []string{"rob@test.com"}, gomock.Any()).
				DoAndReturn(func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
					assert.Contains(t, string(msg), "Subject: "+tt.expectedSubject)
					assert.Contains(t, string(msg), "To: Robs the Testers <rob@test.com>")
					return nil
				}).Times(1)

			err := setup.emailService.SendRegistrationStatusEmail(context.Background(), entities.Registration{
				TeamName:        "Robs the Testers",
				UserEmail:       "rob@test.com",
				Status:          tt.status,
				RejectionReason: "too late",
			})
			assert.NoError(t, err)
		})
	}
}

func Test_SendRegistrationStatusEmail__should_return_error_for_pending_registration(t *testing.T) {
	setup := setupEmailTest(t)
	defer setup.ctrl.Finish()

	err := setup.emailService.SendRegistrationStatusEmail(context.Background(), entities.Registration{
		UserEmail: "rob@test.com",
		Status:    entities.Pending,
	})

	assert.Equal(t, services.ErrInvalidStatus, errors.Cause(err))
}

func Test_SendQuestSelectedEmail__should_send_email_to_team(t *testing.T) {
	setup := setupEmailTest(t)
	defer setup.ctrl.Finish()

	setup.mockSMTPClient.EXPECT().SendEmail(fmt.Sprintf("%s:%s", testServer, testPort), testAuth,
		testCfg.Email.NoreplyEmailAddr, []string{"rob@test.com"}, gomock.Any()).
		DoAndReturn(func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
			assert.Contains(t, string(msg), "Subject: quest selected")
			assert.Contains(t, string(msg), "Smart campus")
			return nil
		}).Times(1)

	err := setup.emailService.SendQuestSelectedEmail(context.Background(), entities.Quest{Title: "Smart campus"},
		entities.Selection{
			TeamID:    primitive.NewObjectID(),
			TeamName:  "Robs the Testers",
			UserEmail: "rob@test.com",
		})
	assert.NoError(t, err)
}

func Test_SendQuestSelectedEmail__should_return_error_when_sending_email_fails(t *testing.T) {
	setup := setupEmailTest(t)
	defer setup.ctrl.Finish()

	setup.mockSMTPClient.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp err")).Times(1)

	err := setup.emailService.SendQuestSelectedEmail(context.Background(), entities.Quest{Title: "Smart campus"},
		entities.Selection{UserEmail: "rob@test.com"})
	assert.Error(t, err)
}
