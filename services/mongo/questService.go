package mongo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/repositories"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoQuestService struct {
	logger                 *zap.Logger
	cfg                    *config.AppConfig
	timeProvider           utils.TimeProvider
	questRepository        *repositories.QuestRepository
	selectionRepository    *repositories.QuestSelectionRepository
	registrationRepository *repositories.RegistrationRepository
}

// NewMongoQuestService creates a new QuestService that uses MongoDB as the storage technology.
// Selections are written in multi-document transactions, so MongoDB must run as a replica set.
func NewMongoQuestService(logger *zap.Logger, cfg *config.AppConfig, timeProvider utils.TimeProvider,
	questRepository *repositories.QuestRepository, selectionRepository *repositories.QuestSelectionRepository,
	registrationRepository *repositories.RegistrationRepository) services.QuestService {
	return &mongoQuestService{
		logger:                 logger,
		cfg:                    cfg,
		timeProvider:           timeProvider,
		questRepository:        questRepository,
		selectionRepository:    selectionRepository,
		registrationRepository: registrationRepository,
	}
}

func (s *mongoQuestService) CreateQuest(ctx context.Context, title, description string, capacity int) (*entities.Quest, error) {
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

	_, err = s.questRepository.InsertOne(ctx, *quest)
	if err != nil {
		return nil, storeError(err, "could not create new quest")
	}

	return quest, nil
}

func (s *mongoQuestService) UpdateQuest(ctx context.Context, id string, params services.QuestUpdateParams) (*entities.Quest, error) {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	err = params.Validate(s.cfg.Quests.MaxCapacity)
	if err != nil {
		return nil, err
	}

	res := s.questRepository.FindOneAndUpdate(ctx, bson.M{
		string(entities.QuestID): mongoID,
	}, bson.M{
		"$set": params,
	}, options.FindOneAndUpdate().SetReturnDocument(options.After))

	quest, err := decodeQuestResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, storeError(err, "could not update quest with ID")
	}

	if len(quest.Selections) > quest.Capacity {
		s.logger.Warn("quest capacity lowered below number of selections",
			zap.String("quest_id", id), zap.Int("capacity", quest.Capacity), zap.Int("selections", len(quest.Selections)))
	}

	return quest, nil
}

func (s *mongoQuestService) DeleteQuest(ctx context.Context, id string) error {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return services.ErrInvalidID
	}

	client := s.questRepository.Database().Client()
	err = runTransaction(ctx, s.logger, client, s.cfg.Quests.MaxTransactionAttempts, func(sessCtx mongo.SessionContext) error {
		res, err := s.questRepository.DeleteOne(sessCtx, bson.M{
			string(entities.QuestID): mongoID,
		})
		if err != nil {
			return errors.Wrap(err, "could not delete quest with ID")
		} else if res.DeletedCount == 0 {
			return services.ErrNotFound
		}

		_, err = s.selectionRepository.DeleteMany(sessCtx, bson.M{
			string(entities.SelectionQuestID): mongoID,
		})
		if err != nil {
			return errors.Wrap(err, "could not delete selections of quest")
		}

		_, err = s.registrationRepository.UpdateMany(sessCtx, bson.M{
			string(entities.RegistrationQuestID): mongoID,
		}, bson.M{
			"$unset": bson.M{string(entities.RegistrationQuestID): ""},
		})
		if err != nil {
			return errors.Wrap(err, "could not release registrations of quest")
		}

		return nil
	})
	if err == services.ErrNotFound || err == services.ErrTransientConflict {
		return err
	} else if err != nil {
		return storeError(err, "could not delete quest")
	}

	return nil
}

func (s *mongoQuestService) GetQuest(ctx context.Context, id string) (*entities.Quest, error) {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.questRepository.FindOne(ctx, bson.M{
		string(entities.QuestID): mongoID,
	})

	quest, err := decodeQuestResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, storeError(err, "could not query for quest with ID")
	}

	return quest, nil
}

func (s *mongoQuestService) GetQuests(ctx context.Context) ([]entities.Quest, error) {
	cur, err := s.questRepository.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{
		{Key: string(entities.QuestCreatedAt), Value: 1},
		{Key: string(entities.QuestID), Value: 1},
	}))
	if err != nil {
		return nil, storeError(err, "could not query for quests")
	}
	defer cur.Close(ctx)

	quests, err := decodeQuestsResult(ctx, cur)
	if err != nil {
		return nil, storeError(err, "could not decode result")
	}

	return quests, nil
}

func (s *mongoQuestService) TrySelect(ctx context.Context, questID string, selection entities.Selection) error {
	questMongoID, err := primitive.ObjectIDFromHex(questID)
	if err != nil || selection.TeamID.IsZero() {
		return services.ErrInvalidID
	}

	client := s.questRepository.Database().Client()
	err = runTransaction(ctx, s.logger, client, s.cfg.Quests.MaxTransactionAttempts, func(sessCtx mongo.SessionContext) error {
		return s.trySelectInTransaction(sessCtx, questMongoID, selection)
	})

	switch err {
	case nil:
		return nil
	case services.ErrQuestNotFound, services.ErrQuestInactive, services.ErrQuestFull,
		services.ErrAlreadySelected, services.ErrRegistrationNotApproved, services.ErrTransientConflict:
		return err
	default:
		return storeError(err, "could not select quest")
	}
}

func (s *mongoQuestService) trySelectInTransaction(sessCtx mongo.SessionContext, questID primitive.ObjectID, selection entities.Selection) error {
	quest, err := decodeQuestResult(s.questRepository.FindOne(sessCtx, bson.M{
		string(entities.QuestID): questID,
	}))
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return services.ErrQuestNotFound
	} else if err != nil {
		return errors.Wrap(err, "could not query for quest with ID")
	}

	if !quest.IsActive {
		return services.ErrQuestInactive
	} else if len(quest.Selections) >= quest.Capacity {
		return services.ErrQuestFull
	}

	err = s.selectionRepository.FindOne(sessCtx, bson.M{
		string(entities.SelectionTeamID): selection.TeamID,
	}).Err()
	if err == nil {
		return services.ErrAlreadySelected
	} else if err != mongo.ErrNoDocuments {
		return errors.Wrap(err, "could not query for selection of team")
	}

	// writing the quest onto the registration makes a concurrent review of it conflict with this transaction
	registrationFilter := bson.M{
		string(entities.RegistrationUserID): selection.TeamID,
	}
	if s.cfg.Quests.RequireApproval {
		registrationFilter[string(entities.RegistrationStatusField)] = entities.Approved
	}
	res, err := s.registrationRepository.UpdateOne(sessCtx, registrationFilter, bson.M{
		"$set": bson.M{string(entities.RegistrationQuestID): questID},
	})
	if err != nil {
		return errors.Wrap(err, "could not update registration of team")
	} else if res.MatchedCount == 0 && s.cfg.Quests.RequireApproval {
		return services.ErrRegistrationNotApproved
	}

	_, err = s.selectionRepository.InsertOne(sessCtx, entities.SelectionIndexEntry{
		TeamID:     selection.TeamID,
		QuestID:    questID,
		SelectedAt: selection.SelectedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return services.ErrAlreadySelected
	} else if err != nil {
		return errors.Wrap(err, "could not record selection of team")
	}

	res, err = s.questRepository.UpdateOne(sessCtx, bson.M{
		string(entities.QuestID):       questID,
		string(entities.QuestIsActive): true,
		"$expr": bson.M{
			"$lt": bson.A{
				bson.M{"$size": "$" + string(entities.QuestSelections)},
				"$" + string(entities.QuestCapacity),
			},
		},
	}, bson.M{
		"$push": bson.M{string(entities.QuestSelections): selection},
	})
	if err != nil {
		return errors.Wrap(err, "could not add selection to quest")
	} else if res.MatchedCount == 0 {
		return services.ErrQuestFull
	}

	return nil
}

func (s *mongoQuestService) GetSelectionForTeam(ctx context.Context, teamID string) (*entities.Quest, *entities.Selection, error) {
	teamMongoID, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return nil, nil, services.ErrInvalidID
	}

	var entry entities.SelectionIndexEntry
	err = s.selectionRepository.FindOne(ctx, bson.M{
		string(entities.SelectionTeamID): teamMongoID,
	}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, nil, services.ErrNotFound
	} else if err != nil {
		return nil, nil, storeError(err, "could not query for selection of team")
	}

	quest, err := s.GetQuest(ctx, entry.QuestID.Hex())
	if err != nil {
		return nil, nil, err
	}

	selection, ok := quest.SelectionForTeam(teamMongoID)
	if !ok {
		return nil, nil, services.ErrNotFound
	}

	return quest, &selection, nil
}

func (s *mongoQuestService) WatchQuestChanges(ctx context.Context, notify chan<- struct{}) error {
	stream, err := s.questRepository.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return storeError(err, "could not open change stream on quests")
	}
	defer stream.Close(context.Background())

	select {
	case notify <- struct{}{}:
	default:
	}

	for stream.Next(ctx) {
		select {
		case notify <- struct{}{}:
		default:
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err := stream.Err(); err != nil {
		return storeError(err, "quests change stream failed")
	}
	return errors.New("quests change stream closed")
}

func decodeQuestResult(res *mongo.SingleResult) (*entities.Quest, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var quest entities.Quest
	err = res.Decode(&quest)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode quest")
	}

	return &quest, nil
}

func decodeQuestsResult(ctx context.Context, cur *mongo.Cursor) ([]entities.Quest, error) {
	quests := []entities.Quest{}
	for cur.Next(ctx) {
		var quest entities.Quest
		err := cur.Decode(&quest)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode quest")
		}
		quests = append(quests, quest)
	}

	return quests, cur.Err()
}
