package config

import (
	"bytes"
	_ "embed"

	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/environment"

	"go.uber.org/config"
)

var (
	//go:embed base.yaml
	baseConfig []byte
	//go:embed development.yaml
	developmentConfig []byte
	//go:embed production.yaml
	productionConfig []byte
)

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name string `yaml:"name"`
	// AuthTokenLifetime is the lifetime of session tokens in seconds
	AuthTokenLifetime int64               `yaml:"auth_token_lifetime"`
	Storage           StorageConfig       `yaml:"storage"`
	Quests            QuestsConfig        `yaml:"quests"`
	Registrations     RegistrationsConfig `yaml:"registrations"`
	Email             EmailConfig         `yaml:"email"`
}

// StorageConfig selects the storage backend
type StorageConfig struct {
	// Provider is either "mongo" or "memory"
	Provider string `yaml:"provider"`
	Database string `yaml:"database"`
}

// QuestsConfig stores the settings of quest selection
type QuestsConfig struct {
	MaxCapacity            int  `yaml:"max_capacity"`
	RequireApproval        bool `yaml:"require_approval"`
	MaxTransactionAttempts int  `yaml:"max_transaction_attempts"`
	// FeedRetryInterval is the wait in seconds before the live feed reconnects to the change source
	FeedRetryInterval int `yaml:"feed_retry_interval"`
}

// RegistrationsConfig stores the settings of team registration
type RegistrationsConfig struct {
	MaxTeamMembers int `yaml:"max_team_members"`
}

// EmailConfig stores the settings of outgoing emails
type EmailConfig struct {
	EmailDeliveryProvider    string `yaml:"email_delivery_provider"`
	NoreplyEmailAddr         string `yaml:"noreply_email_addr"`
	NoreplyEmailName         string `yaml:"noreply_email_name"`
	RegistrationApprovedSubj string `yaml:"registration_approved_subj"`
	RegistrationRejectedSubj string `yaml:"registration_rejected_subj"`
	QuestSelectedSubj        string `yaml:"quest_selected_subj"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	configFiles := []config.YAMLOption{config.Source(bytes.NewReader(baseConfig))}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.Source(bytes.NewReader(productionConfig)))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.Source(bytes.NewReader(developmentConfig)))
	}
	configProvider, err := config.NewYAML(configFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config files")
	}

	var cfg AppConfig
	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate config")
	}

	return &cfg, nil
}
