package memory

import (
	"context"

	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memoryQuestService struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	store        *Store
	timeProvider utils.TimeProvider
}

// NewMemoryQuestService creates a new QuestService that keeps quests in the given Store
func NewMemoryQuestService(logger *zap.Logger, cfg *config.AppConfig, store *Store, timeProvider utils.TimeProvider) services.QuestService {
	return &memoryQuestService{
		logger:       logger,
		cfg:          cfg,
		store:        store,
		timeProvider: timeProvider,
	}
}

func (s *memoryQuestService) CreateQuest(ctx context.Context, title, description string, capacity int) (*entities.Quest, error) {
	err := services.ValidateNewQuest(title, description, capacity, s.cfg.Quests.MaxCapacity)
	if err != nil {
		return nil, err
	}

	quest := &entities.Quest{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Capacity:    capacity,
		IsActive:    true,
		Selections:  []entities.Selection{},
		CreatedAt:   s.timeProvider.Now(),
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	s.store.quests[quest.ID] = quest
	s.store.questOrder = append(s.store.questOrder, quest.ID)
	s.store.notifyQuestWatchers()

	questCopy := quest.Copy()
	return &questCopy, nil
}

func (s *memoryQuestService) UpdateQuest(ctx context.Context, id string, params services.QuestUpdateParams) (*entities.Quest, error) {
	questID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	err = params.Validate(s.cfg.Quests.MaxCapacity)
	if err != nil {
		return nil, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	quest, ok := s.store.quests[questID]
	if !ok {
		return nil, services.ErrNotFound
	}

	params.Apply(quest)
	if len(quest.Selections) > quest.Capacity {
		s.logger.Warn("quest capacity lowered below number of selections",
			zap.String("quest_id", id), zap.Int("capacity", quest.Capacity), zap.Int("selections", len(quest.Selections)))
	}
	s.store.notifyQuestWatchers()

	questCopy := quest.Copy()
	return &questCopy, nil
}

func (s *memoryQuestService) DeleteQuest(ctx context.Context, id string) error {
	questID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return services.ErrInvalidID
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	quest, ok := s.store.quests[questID]
	if !ok {
		return services.ErrNotFound
	}

	for _, selection := range quest.Selections {
		delete(s.store.selections, selection.TeamID)
		if registration := s.store.registrationForUser(selection.TeamID); registration != nil {
			registration.QuestID = primitive.NilObjectID
		}
	}
	delete(s.store.quests, questID)
	s.store.questOrder = removeID(s.store.questOrder, questID)
	s.store.notifyQuestWatchers()

	return nil
}

func (s *memoryQuestService) GetQuest(ctx context.Context, id string) (*entities.Quest, error) {
	questID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	quest, ok := s.store.quests[questID]
	if !ok {
		return nil, services.ErrNotFound
	}

	questCopy := quest.Copy()
	return &questCopy, nil
}

func (s *memoryQuestService) GetQuests(ctx context.Context) ([]entities.Quest, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	quests := make([]entities.Quest, 0, len(s.store.questOrder))
	for _, questID := range s.store.questOrder {
		quests = append(quests, s.store.quests[questID].Copy())
	}

	return quests, nil
}

func (s *memoryQuestService) TrySelect(ctx context.Context, questID string, selection entities.Selection) error {
	questMongoID, err := primitive.ObjectIDFromHex(questID)
	if err != nil || selection.TeamID.IsZero() {
		return services.ErrInvalidID
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	quest, ok := s.store.quests[questMongoID]
	if !ok {
		return services.ErrQuestNotFound
	} else if !quest.IsActive {
		return services.ErrQuestInactive
	} else if len(quest.Selections) >= quest.Capacity {
		return services.ErrQuestFull
	}

	if _, selected := s.store.selections[selection.TeamID]; selected {
		return services.ErrAlreadySelected
	}

	registration := s.store.registrationForUser(selection.TeamID)
	if s.cfg.Quests.RequireApproval && (registration == nil || registration.Status != entities.Approved) {
		return services.ErrRegistrationNotApproved
	}

	quest.Selections = append(quest.Selections, selection)
	s.store.selections[selection.TeamID] = questMongoID
	if registration != nil {
		registration.QuestID = questMongoID
	}
	s.store.notifyQuestWatchers()

	return nil
}

func (s *memoryQuestService) GetSelectionForTeam(ctx context.Context, teamID string) (*entities.Quest, *entities.Selection, error) {
	teamMongoID, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return nil, nil, services.ErrInvalidID
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	questID, ok := s.store.selections[teamMongoID]
	if !ok {
		return nil, nil, services.ErrNotFound
	}

	quest := s.store.quests[questID].Copy()
	selection, _ := quest.SelectionForTeam(teamMongoID)

	return &quest, &selection, nil
}

func (s *memoryQuestService) WatchQuestChanges(ctx context.Context, notify chan<- struct{}) error {
	watcherID := s.store.addQuestWatcher(notify)
	defer s.store.removeQuestWatcher(watcherID)

	<-ctx.Done()
	return ctx.Err()
}
