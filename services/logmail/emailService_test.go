package logmail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/entities"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testCfg = &config.AppConfig{
	Email: config.EmailConfig{
		NoreplyEmailAddr:  "bob@test.com",
		QuestSelectedSubj: "quest selected",
	},
}

func Test_SendQuestSelectedEmail__should_log_email(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	service, err := NewLogEmailService(zap.New(core), testCfg)
	assert.NoError(t, err)

	err = service.SendQuestSelectedEmail(context.Background(), entities.Quest{Title: "Smart campus"},
		entities.Selection{TeamName: "Robs the Testers", UserEmail: "rob@test.com"})
	assert.NoError(t, err)

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "quest selected", entries[0].ContextMap()["subject"])
	assert.Equal(t, "rob@test.com", entries[0].ContextMap()["recipient"])
}

func Test_SendRegistrationStatusEmail__should_return_error_for_pending_registration(t *testing.T) {
	service, err := NewLogEmailService(zap.NewNop(), testCfg)
	assert.NoError(t, err)

	err = service.SendRegistrationStatusEmail(context.Background(), entities.Registration{Status: entities.Pending})
	assert.Error(t, err)
}
