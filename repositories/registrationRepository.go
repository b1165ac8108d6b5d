package repositories

import (
	"github.com/technegotia/tn_quests/entities"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegistrationRepository is the repository for Registration objects
type RegistrationRepository struct {
	*mongo.Collection
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *mongo.Database) (*RegistrationRepository, error) {
	// one registration per user
	err := createIndex(db, registrationCollection, string(entities.RegistrationUserID), true)
	if err != nil {
		return nil, err
	}

	err = createIndex(db, registrationCollection, string(entities.RegistrationTeamName), true)
	if err != nil {
		return nil, err
	}

	return &RegistrationRepository{
		Collection: db.Collection(registrationCollection),
	}, nil
}
