package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuestField string

const (
	QuestID          QuestField = "_id"
	QuestTitle       QuestField = "title"
	QuestDescription QuestField = "description"
	QuestCapacity    QuestField = "capacity"
	QuestIsActive    QuestField = "is_active"
	QuestSelections  QuestField = "selections"
	QuestCreatedAt   QuestField = "created_at"
)

// Quest is a problem statement teams can select, limited to Capacity teams
type Quest struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Capacity    int                `json:"capacity" bson:"capacity"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
	// Selections are kept in the order they were made
	Selections []Selection `json:"selections" bson:"selections"`
	CreatedAt  time.Time   `json:"created_at" bson:"created_at"`
}

// SlotsLeft returns the number of teams that can still select the quest.
// An over-subscribed quest has no slots left.
func (q Quest) SlotsLeft() int {
	left := q.Capacity - len(q.Selections)
	if left < 0 {
		return 0
	}
	return left
}

// IsOpen checks if the quest accepts new selections
func (q Quest) IsOpen() bool {
	return q.IsActive && q.SlotsLeft() > 0
}

// SelectionForTeam returns the team's selection on this quest, if any
func (q Quest) SelectionForTeam(teamID primitive.ObjectID) (Selection, bool) {
	for _, selection := range q.Selections {
		if selection.TeamID == teamID {
			return selection, true
		}
	}
	return Selection{}, false
}

// Copy returns a deep copy of the quest
func (q Quest) Copy() Quest {
	if q.Selections != nil {
		selections := make([]Selection, len(q.Selections))
		copy(selections, q.Selections)
		q.Selections = selections
	}
	return q
}

type SelectionField string

const (
	SelectionTeamID     SelectionField = "team_id"
	SelectionQuestID    SelectionField = "quest_id"
	SelectionTeamName   SelectionField = "team_name"
	SelectionUserEmail  SelectionField = "user_email"
	SelectionSelectedAt SelectionField = "selected_at"
)

// Selection is the record of a team committing to a quest
type Selection struct {
	// TeamID is the ID of the user who registered the team
	TeamID     primitive.ObjectID `json:"team_id" bson:"team_id"`
	TeamName   string             `json:"team_name" bson:"team_name"`
	UserEmail  string             `json:"user_email" bson:"user_email"`
	SelectedAt time.Time          `json:"selected_at" bson:"selected_at"`
}

// SelectionIndexEntry is the per-team lookup document for selections.
// There is at most one per team across the whole catalog.
type SelectionIndexEntry struct {
	TeamID     primitive.ObjectID `bson:"team_id"`
	QuestID    primitive.ObjectID `bson:"quest_id"`
	SelectedAt time.Time          `bson:"selected_at"`
}
