package repositories

import (
	"github.com/technegotia/tn_quests/entities"
	"go.mongodb.org/mongo-driver/mongo"
)

// QuestRepository is the repository for Quest objects
type QuestRepository struct {
	*mongo.Collection
}

// NewQuestRepository creates a new QuestRepository
func NewQuestRepository(db *mongo.Database) (*QuestRepository, error) {
	err := createIndex(db, questCollection, string(entities.QuestCreatedAt), false)
	if err != nil {
		return nil, err
	}

	return &QuestRepository{
		Collection: db.Collection(questCollection),
	}, nil
}

// QuestSelectionRepository is the repository for the per-team selection index.
// Its unique team_id index makes a second selection by the same team fail inside the selecting transaction.
type QuestSelectionRepository struct {
	*mongo.Collection
}

// NewQuestSelectionRepository creates a new QuestSelectionRepository
func NewQuestSelectionRepository(db *mongo.Database) (*QuestSelectionRepository, error) {
	err := createIndex(db, questSelectionCollection, string(entities.SelectionTeamID), true)
	if err != nil {
		return nil, err
	}

	err = createIndex(db, questSelectionCollection, string(entities.SelectionQuestID), false)
	if err != nil {
		return nil, err
	}

	return &QuestSelectionRepository{
		Collection: db.Collection(questSelectionCollection),
	}, nil
}
