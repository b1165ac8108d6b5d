// +build integration

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/technegotia/tn_quests/environment"
	"github.com/technegotia/tn_quests/testutils"
	"go.uber.org/zap"
)

func Test_NewDatabase__should_return_connection_to_tn_quests_database(t *testing.T) {
	restore := testutils.SetEnvVars(map[string]string{
		environment.MongoUser:       "tn_quests",
		environment.MongoPassword:   "password123",
		environment.MongoHost:       "127.0.0.1:8003",
		environment.MongoDatabase:   "tn_quests",
		environment.MongoReplicaSet: "rs0",
	})
	defer restore()

	env := environment.NewEnv(zap.NewNop())

	db, err := NewDatabase(zap.NewNop(), env)
	assert.NoError(t, err)

	assert.Equal(t, "tn_quests", db.Name())
}

func Test_NewDatabase__should_return_error_when_user_credentials_are_incorrect(t *testing.T) {
	restore := testutils.SetEnvVars(map[string]string{
		environment.MongoUser:       "tn_quests",
		environment.MongoPassword:   "password12",
		environment.MongoHost:       "127.0.0.1:8003",
		environment.MongoDatabase:   "tn_quests",
		environment.MongoReplicaSet: "rs0",
	})
	defer restore()

	env := environment.NewEnv(zap.NewNop())

	_, err := NewDatabase(zap.NewNop(), env)
	assert.Error(t, err)
}
