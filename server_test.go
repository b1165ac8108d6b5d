package main

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/environment"
	mock_v1 "github.com/technegotia/tn_quests/mocks/routers/api/v1"
	"github.com/technegotia/tn_quests/routers"
	"github.com/technegotia/tn_quests/services/live"
	"github.com/technegotia/tn_quests/services/multiplexers"
	"github.com/technegotia/tn_quests/testutils"
	"github.com/technegotia/tn_quests/utils"
	"go.uber.org/zap"
)

func Test_Run__should_stop_cleanly_when_context_is_done(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	restore := testutils.SetEnvVars(map[string]string{environment.Port: "0"})
	env := environment.NewEnv(zap.NewNop())
	restore()

	cfg := &config.AppConfig{
		Storage: config.StorageConfig{Provider: "memory"},
		Quests:  config.QuestsConfig{MaxCapacity: 10, FeedRetryInterval: 1},
	}
	storage, err := multiplexers.NewStorage(zap.NewNop(), cfg, env, utils.NewTimeProvider())
	assert.NoError(t, err)

	mockAPIV1Router := mock_v1.NewMockAPIV1Router(ctrl)
	mockAPIV1Router.EXPECT().RegisterRoutes(testutils.RouterGroupMatcher{Path: "/api/v1"}).Times(1)

	server := NewServer(zap.NewNop(), env, routers.NewMainRouter(zap.NewNop(), mockAPIV1Router),
		live.NewQuestFeed(zap.NewNop(), cfg, storage.QuestService), storage)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
