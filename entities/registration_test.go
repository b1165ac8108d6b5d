package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func Test_HasQuest__should_be_false_for_nil_quest_id(t *testing.T) {
	assert.False(t, Registration{}.HasQuest())
	assert.True(t, Registration{QuestID: primitive.NewObjectID()}.HasQuest())
}

func Test_IsDecision(t *testing.T) {
	tests := []struct {
		status RegistrationStatus
		want   bool
	}{
		{status: Pending, want: false},
		{status: Approved, want: true},
		{status: Rejected, want: true},
		{status: RegistrationStatus("unknown"), want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsDecision())
		})
	}
}

func Test_RegistrationStatusField__should_match_bson_key_of_status(t *testing.T) {
	raw, err := bson.Marshal(Registration{Status: Approved})
	assert.NoError(t, err)

	var doc bson.M
	err = bson.Unmarshal(raw, &doc)
	assert.NoError(t, err)

	assert.Equal(t, string(Approved), doc[string(RegistrationStatusField)])
}
