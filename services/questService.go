package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/entities"
)

// QuestUpdateParams is a partial update of a quest.
// Allowed keys are QuestTitle, QuestDescription, QuestCapacity and QuestIsActive.
type QuestUpdateParams map[entities.QuestField]interface{}

// QuestService is the service for interactions with the quest catalog.
// It is the only place the capacity and one-quest-per-team invariants are enforced.
type QuestService interface {
	CreateQuest(ctx context.Context, title, description string, capacity int) (*entities.Quest, error)
	// UpdateQuest applies params to the quest. Capacity may be set below the current number of
	// selections, in which case existing selections are kept and no new ones are accepted.
	UpdateQuest(ctx context.Context, id string, params QuestUpdateParams) (*entities.Quest, error)
	// DeleteQuest removes the quest together with all of its selections
	DeleteQuest(ctx context.Context, id string) error

	GetQuest(ctx context.Context, id string) (*entities.Quest, error)
	// GetQuests returns all quests in creation order
	GetQuests(ctx context.Context) ([]entities.Quest, error)

	// TrySelect atomically checks that the quest is active and has a free slot, that the team
	// holds no other selection and (if required) that the team is approved, then records the selection
	TrySelect(ctx context.Context, questID string, selection entities.Selection) error
	// GetSelectionForTeam returns ErrNotFound if the team has not selected a quest
	GetSelectionForTeam(ctx context.Context, teamID string) (*entities.Quest, *entities.Selection, error)

	// WatchQuestChanges signals on notify once the watch is established and after every
	// committed change to the catalog. Signals are sent without blocking, so notify should be buffered.
	// It blocks until ctx is done or the change source fails.
	WatchQuestChanges(ctx context.Context, notify chan<- struct{}) error
}

// ValidateNewQuest checks the fields of a quest about to be created
func ValidateNewQuest(title, description string, capacity, maxCapacity int) error {
	return QuestUpdateParams{
		entities.QuestTitle:       title,
		entities.QuestDescription: description,
		entities.QuestCapacity:    capacity,
	}.Validate(maxCapacity)
}

// Validate checks that only updatable fields are set and that their values are in range
func (p QuestUpdateParams) Validate(maxCapacity int) error {
	if len(p) == 0 {
		return errors.Wrap(ErrInvalidQuestParams, "no fields to update")
	}

	for field, value := range p {
		switch field {
		case entities.QuestTitle, entities.QuestDescription:
			str, ok := value.(string)
			if !ok || len(strings.TrimSpace(str)) == 0 {
				return errors.Wrapf(ErrInvalidQuestParams, "%s must be a non-empty string", field)
			}
		case entities.QuestCapacity:
			capacity, ok := value.(int)
			if !ok || capacity < 1 || (maxCapacity > 0 && capacity > maxCapacity) {
				return errors.Wrapf(ErrInvalidQuestParams, "%s must be between 1 and %d", field, maxCapacity)
			}
		case entities.QuestIsActive:
			if _, ok := value.(bool); !ok {
				return errors.Wrapf(ErrInvalidQuestParams, "%s must be a boolean", field)
			}
		default:
			return errors.Wrapf(ErrInvalidQuestParams, "%s cannot be updated", field)
		}
	}

	return nil
}

// Apply sets the fields in p on the given quest. p must be valid.
func (p QuestUpdateParams) Apply(quest *entities.Quest) {
	for field, value := range p {
		switch field {
		case entities.QuestTitle:
			quest.Title = value.(string)
		case entities.QuestDescription:
			quest.Description = value.(string)
		case entities.QuestCapacity:
			quest.Capacity = value.(int)
		case entities.QuestIsActive:
			quest.IsActive = value.(bool)
		}
	}
}
