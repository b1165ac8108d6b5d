package environment

import (
	"testing"

	"go.uber.org/zap"

	"github.com/technegotia/tn_quests/testutils"

	"github.com/stretchr/testify/assert"
)

func testVars() map[string]string {
	return map[string]string{
		Environment:     "testenv",
		Port:            "testport",
		MongoHost:       "testmongohost",
		MongoDatabase:   "testmongodatabase",
		MongoUser:       "testmongouser",
		MongoPassword:   "testmongopassword",
		MongoReplicaSet: "testreplicaset",
		JWTSecret:       "testsecret",
		SendgridAPIKey:  "testsendgridkey",
		SMTPHost:        "testsmtphost",
		SMTPPort:        "testsmtpport",
		SMTPUsername:    "testsmtpusername",
		SMTPPassword:    "testsmtppassword",
	}
}

func Test_NewEnv__should_return_correct_env(t *testing.T) {
	vars := testVars()

	restoreVars := testutils.SetEnvVars(vars)
	defer restoreVars()

	expectedEnv := Env{
		vars: vars,
	}

	assert.Equal(t, expectedEnv, *NewEnv(zap.NewNop()))
}

func Test_NewEnv__should_store_empty_value_for_unset_var(t *testing.T) {
	restoreVars := testutils.UnsetVars(SendgridAPIKey)
	defer restoreVars()

	env := NewEnv(zap.NewNop())

	assert.Equal(t, "", env.Get(SendgridAPIKey))
}

func Test_Get__should_return_correct_value(t *testing.T) {
	env := &Env{
		vars: testVars(),
	}

	for name, value := range testVars() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, value, env.Get(name))
		})
	}
}

func Test_valueOfEnvVar__should_return_correct_value(t *testing.T) {
	restoreVars := testutils.SetEnvVars(map[string]string{"testkey": "testvalue"})
	defer restoreVars()

	value := valueOfEnvVar(zap.NewNop(), "testkey")
	assert.Equal(t, "testvalue", value)
}

func Test_valueOfEnvVar__should_return_empty_string_when_var_not_set(t *testing.T) {
	restoreVars := testutils.UnsetVars("testkey")
	defer restoreVars()

	value := valueOfEnvVar(zap.NewNop(), "testkey")
	assert.Equal(t, "", value)
}
