package live

import (
	"github.com/technegotia/tn_quests/entities"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoardState is what a team sees on the quest board
type BoardState struct {
	Quests []entities.Quest
	// MyQuest and MySelection are nil while the team has not selected a quest
	MyQuest     *entities.Quest
	MySelection *entities.Selection
}

// SelectionBoard derives a team's selection from catalog snapshots.
// The selection is never taken from the result of a selection request, so the board
// cannot disagree with the catalog. It is not safe for concurrent use.
type SelectionBoard struct {
	teamID  primitive.ObjectID
	state   BoardState
	applied bool
}

// NewSelectionBoard creates a board for the given team. A zero teamID gives a board without a selection.
func NewSelectionBoard(teamID primitive.ObjectID) *SelectionBoard {
	return &SelectionBoard{
		teamID: teamID,
	}
}

// Apply replaces the board state with the one derived from quests and reports
// whether the team's selection changed. The first call always reports a change.
func (b *SelectionBoard) Apply(quests []entities.Quest) (BoardState, bool) {
	next := BoardState{
		Quests: quests,
	}

	if !b.teamID.IsZero() {
		for i := range quests {
			if selection, ok := quests[i].SelectionForTeam(b.teamID); ok {
				quest := quests[i]
				next.MyQuest = &quest
				next.MySelection = &selection
				break
			}
		}
	}

	changed := !b.applied || selectedQuestID(b.state) != selectedQuestID(next)
	b.state = next
	b.applied = true

	return next, changed
}

// State returns the state derived from the last applied snapshot
func (b *SelectionBoard) State() BoardState {
	return b.state
}

func selectedQuestID(state BoardState) primitive.ObjectID {
	if state.MyQuest == nil {
		return primitive.NilObjectID
	}
	return state.MyQuest.ID
}
