package multiplexers

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	sendgridgo "github.com/sendgrid/sendgrid-go"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/environment"
	"github.com/technegotia/tn_quests/repositories"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/services/logmail"
	"github.com/technegotia/tn_quests/services/memory"
	"github.com/technegotia/tn_quests/services/mongo"
	"github.com/technegotia/tn_quests/services/multiplexers/types"
	"github.com/technegotia/tn_quests/services/sendgrid"
	smtplib "github.com/technegotia/tn_quests/services/smtp"
	"github.com/technegotia/tn_quests/utils"
	"go.uber.org/zap"
)

// NewEmailService creates the EmailService of the configured delivery provider
func NewEmailService(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, smtpClient utils.SMTPClient,
	sendGridClient *sendgridgo.Client) (services.EmailService, error) {
	switch types.EmailDeliveryProvider(cfg.Email.EmailDeliveryProvider) {
	case types.SMTP:
		return smtplib.NewSMTPEmailService(logger, cfg, env, smtpClient)
	case types.SendGrid:
		return sendgrid.NewSendgridEmailService(logger, cfg, sendGridClient)
	case types.Disabled:
		return logmail.NewLogEmailService(logger, cfg)
	default:
		return nil, errors.New(fmt.Sprintf("email delivery provider %s is invalid", cfg.Email.EmailDeliveryProvider))
	}
}

// Storage holds the services backed by the configured storage provider
type Storage struct {
	UserService         services.UserService
	RegistrationService services.RegistrationService
	QuestService        services.QuestService

	close func(ctx context.Context) error
}

// Close releases the connection to the backing store
func (s *Storage) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// NewStorage creates the services of the configured storage provider.
// A connection to MongoDB is only made when it is the configured provider.
func NewStorage(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, timeProvider utils.TimeProvider) (*Storage, error) {
	switch types.StorageProvider(cfg.Storage.Provider) {
	case types.Mongo:
		return newMongoStorage(logger, cfg, env, timeProvider)
	case types.Memory:
		logger.Warn("using in-memory storage, data will be lost on restart")
		store := memory.NewStore()
		return &Storage{
			UserService:         memory.NewMemoryUserService(logger, store, timeProvider),
			RegistrationService: memory.NewMemoryRegistrationService(logger, cfg, store, timeProvider),
			QuestService:        memory.NewMemoryQuestService(logger, cfg, store, timeProvider),
		}, nil
	default:
		return nil, errors.New(fmt.Sprintf("storage provider %s is invalid", cfg.Storage.Provider))
	}
}

func newMongoStorage(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, timeProvider utils.TimeProvider) (*Storage, error) {
	db, err := utils.NewDatabase(logger, env)
	if err != nil {
		return nil, err
	}
	disconnect := func(ctx context.Context) error {
		return db.Client().Disconnect(ctx)
	}

	userRepository, err := repositories.NewUserRepository(db)
	if err != nil {
		_ = disconnect(context.Background())
		return nil, errors.Wrap(err, "could not create user repository")
	}
	registrationRepository, err := repositories.NewRegistrationRepository(db)
	if err != nil {
		_ = disconnect(context.Background())
		return nil, errors.Wrap(err, "could not create registration repository")
	}
	questRepository, err := repositories.NewQuestRepository(db)
	if err != nil {
		_ = disconnect(context.Background())
		return nil, errors.Wrap(err, "could not create quest repository")
	}
	selectionRepository, err := repositories.NewQuestSelectionRepository(db)
	if err != nil {
		_ = disconnect(context.Background())
		return nil, errors.Wrap(err, "could not create quest selection repository")
	}

	return &Storage{
		UserService:         mongo.NewMongoUserService(logger, timeProvider, userRepository),
		RegistrationService: mongo.NewMongoRegistrationService(logger, cfg, timeProvider, registrationRepository),
		QuestService: mongo.NewMongoQuestService(logger, cfg, timeProvider, questRepository,
			selectionRepository, registrationRepository),
		close: disconnect,
	}, nil
}
