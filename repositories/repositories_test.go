// +build integration

package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/technegotia/tn_quests/testutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func countIndexes(t *testing.T, db *mongo.Database, collection string) int {
	cur, err := db.Collection(collection).Indexes().List(context.Background())
	assert.NoError(t, err)
	defer cur.Close(context.Background())

	var noOfIndexes int
	for cur.Next(context.Background()) {
		var index bson.M
		err = cur.Decode(&index)
		assert.NoError(t, err)
		noOfIndexes++
	}
	return noOfIndexes
}

func Test_NewUserRepository__should_return_users_mongo_collection(t *testing.T) {
	db := testutils.ConnectToIntegrationTestDB(t)
	defer db.Collection(userCollection).Drop(context.Background())

	uRepo, err := NewUserRepository(db)
	assert.NoError(t, err)

	assert.Equal(t, "users", uRepo.Name())
	assert.Equal(t, 2, countIndexes(t, db, userCollection))
}

func Test_NewRegistrationRepository__should_return_registrations_mongo_collection(t *testing.T) {
	db := testutils.ConnectToIntegrationTestDB(t)
	defer db.Collection(registrationCollection).Drop(context.Background())

	rRepo, err := NewRegistrationRepository(db)
	assert.NoError(t, err)

	assert.Equal(t, "registrations", rRepo.Name())
	assert.Equal(t, 3, countIndexes(t, db, registrationCollection))
}

func Test_NewQuestRepository__should_return_quests_mongo_collection(t *testing.T) {
	db := testutils.ConnectToIntegrationTestDB(t)
	defer db.Collection(questCollection).Drop(context.Background())

	qRepo, err := NewQuestRepository(db)
	assert.NoError(t, err)

	assert.Equal(t, "quests", qRepo.Name())
	assert.Equal(t, 2, countIndexes(t, db, questCollection))
}

func Test_NewQuestSelectionRepository__should_return_quest_selections_mongo_collection(t *testing.T) {
	db := testutils.ConnectToIntegrationTestDB(t)
	defer db.Collection(questSelectionCollection).Drop(context.Background())

	sRepo, err := NewQuestSelectionRepository(db)
	assert.NoError(t, err)

	assert.Equal(t, "quest_selections", sRepo.Name())
	assert.Equal(t, 3, countIndexes(t, db, questSelectionCollection))
}
