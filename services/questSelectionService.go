package services

import (
	"context"

	"github.com/technegotia/tn_quests/entities"
)

// Unsubscribe stops a quest subscription. Calling it more than once is safe.
type Unsubscribe func()

// QuestSelectionService is the service teams use to select quests and follow the quest board
type QuestSelectionService interface {
	// SelectQuest commits the team registered by userID to the quest.
	// A selection is final, there is no way to change it afterwards.
	SelectQuest(ctx context.Context, userID, teamName, userEmail, questID string) error
	GetUserQuestSelection(ctx context.Context, userID string) (*entities.Quest, *entities.Selection, error)
	// WatchQuests calls onChange with the full catalog right away and after every change to it
	WatchQuests(onChange func([]entities.Quest), onError func(error)) Unsubscribe
}
