package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	userCollection           = "users"
	registrationCollection   = "registrations"
	questCollection          = "quests"
	questSelectionCollection = "quest_selections"
)

func createIndex(db *mongo.Database, collection string, field string, unique bool) error {
	_, err := db.Collection(collection).Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(unique),
		},
	)
	return err
}
