package selection

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// QuestWatcher fans catalog snapshots out to subscribers
type QuestWatcher interface {
	Subscribe(onChange func([]entities.Quest), onError func(error)) services.Unsubscribe
}

type questSelectionService struct {
	logger       *zap.Logger
	questService services.QuestService
	questWatcher QuestWatcher
	timeProvider utils.TimeProvider

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewQuestSelectionService creates a QuestSelectionService on top of the quest store and the live feed
func NewQuestSelectionService(logger *zap.Logger, questService services.QuestService, questWatcher QuestWatcher,
	timeProvider utils.TimeProvider) services.QuestSelectionService {
	return &questSelectionService{
		logger:       logger,
		questService: questService,
		questWatcher: questWatcher,
		timeProvider: timeProvider,
		inFlight:     map[string]struct{}{},
	}
}

func (s *questSelectionService) SelectQuest(ctx context.Context, userID, teamName, userEmail, questID string) error {
	teamID, err := primitive.ObjectIDFromHex(userID)
	if err != nil || len(questID) == 0 {
		return services.ErrInvalidID
	}
	if len(strings.TrimSpace(teamName)) == 0 || len(strings.TrimSpace(userEmail)) == 0 {
		return errors.Wrap(services.ErrInvalidQuestParams, "team name and email must be provided")
	}

	if !s.acquire(userID) {
		return services.ErrSelectionInProgress
	}
	defer s.release(userID)

	err = s.questService.TrySelect(ctx, questID, entities.Selection{
		TeamID:     teamID,
		TeamName:   teamName,
		UserEmail:  userEmail,
		SelectedAt: s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Debug("quest selection refused", zap.String("user_id", userID), zap.String("quest_id", questID), zap.Error(err))
		return err
	}

	s.logger.Info("quest selected", zap.String("user_id", userID), zap.String("quest_id", questID), zap.String("team_name", teamName))
	return nil
}

func (s *questSelectionService) GetUserQuestSelection(ctx context.Context, userID string) (*entities.Quest, *entities.Selection, error) {
	if len(userID) == 0 {
		return nil, nil, services.ErrInvalidID
	}

	return s.questService.GetSelectionForTeam(ctx, userID)
}

func (s *questSelectionService) WatchQuests(onChange func([]entities.Quest), onError func(error)) services.Unsubscribe {
	return s.questWatcher.Subscribe(onChange, onError)
}

func (s *questSelectionService) acquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[userID]; busy {
		return false
	}
	s.inFlight[userID] = struct{}{}
	return true
}

func (s *questSelectionService) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, userID)
}
