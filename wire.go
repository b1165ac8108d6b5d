//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/technegotia/tn_quests/authorization"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/environment"
	"github.com/technegotia/tn_quests/routers"
	v1 "github.com/technegotia/tn_quests/routers/api/v1"
	"github.com/technegotia/tn_quests/services/live"
	"github.com/technegotia/tn_quests/services/multiplexers"
	"github.com/technegotia/tn_quests/services/selection"
	"github.com/technegotia/tn_quests/utils"
)

func InitializeServer() (*Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		v1.NewAPIV1Router,
		authorization.NewAuthorizer,
		selection.NewQuestSelectionService,
		wire.Bind(new(selection.QuestWatcher), new(*live.QuestFeed)),
		live.NewQuestFeed,
		multiplexers.NewEmailService,
		wire.FieldsOf(new(*multiplexers.Storage), "UserService", "RegistrationService", "QuestService"),
		multiplexers.NewStorage,
		utils.NewSendgridClient,
		utils.NewSMTPClient,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return nil, nil
}
