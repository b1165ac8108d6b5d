package repositories

import (
	"github.com/technegotia/tn_quests/entities"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository is the repository for user objects
type UserRepository struct {
	*mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) (*UserRepository, error) {
	err := createIndex(db, userCollection, string(entities.UserEmail), true)
	if err != nil {
		return nil, err
	}

	return &UserRepository{
		Collection: db.Collection(userCollection),
	}, nil
}
