package mongo

import (
	"context"
	"strings"

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

type mongoRegistrationService struct {
	logger                 *zap.Logger
	cfg                    *config.AppConfig
	timeProvider           utils.TimeProvider
	registrationRepository *repositories.RegistrationRepository
}

// NewMongoRegistrationService creates a new RegistrationService that uses MongoDB as the storage technology
func NewMongoRegistrationService(logger *zap.Logger, cfg *config.AppConfig, timeProvider utils.TimeProvider,
	registrationRepository *repositories.RegistrationRepository) services.RegistrationService {
	return &mongoRegistrationService{
		logger:                 logger,
		cfg:                    cfg,
		timeProvider:           timeProvider,
		registrationRepository: registrationRepository,
	}
}

func (s *mongoRegistrationService) CreateRegistration(ctx context.Context, userID, teamName, userEmail string,
	members []entities.TeamMember, paymentProofURL string) (*entities.Registration, error) {
	userMongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	err = services.ValidateRegistration(teamName, userEmail, members, paymentProofURL, s.cfg.Registrations.MaxTeamMembers)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	registration := &entities.Registration{
		ID:              primitive.NewObjectID(),
		UserID:          userMongoID,
		TeamName:        teamName,
		UserEmail:       userEmail,
		Members:         members,
		PaymentProofURL: paymentProofURL,
		Status:          entities.Pending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err = s.registrationRepository.InsertOne(ctx, *registration)
	if mongo.IsDuplicateKeyError(err) {
		// the unique indexes are on user_id and team_name
		if strings.Contains(err.Error(), string(entities.RegistrationTeamName)) {
			return nil, services.ErrNameTaken
		}
		return nil, services.ErrAlreadyRegistered
	} else if err != nil {
		return nil, storeError(err, "could not create new registration")
	}

	return registration, nil
}

func (s *mongoRegistrationService) GetRegistrations(ctx context.Context) ([]entities.Registration, error) {
	cur, err := s.registrationRepository.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{
		{Key: string(entities.RegistrationCreatedAt), Value: 1},
		{Key: string(entities.RegistrationID), Value: 1},
	}))
	if err != nil {
		return nil, storeError(err, "could not query for registrations")
	}
	defer cur.Close(ctx)

	registrations, err := decodeRegistrationsResult(ctx, cur)
	if err != nil {
		return nil, storeError(err, "could not decode result")
	}

	return registrations, nil
}

func (s *mongoRegistrationService) GetRegistrationWithID(ctx context.Context, id string) (*entities.Registration, error) {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	return s.findRegistration(ctx, bson.M{
		string(entities.RegistrationID): mongoID,
	})
}

func (s *mongoRegistrationService) GetRegistrationForUser(ctx context.Context, userID string) (*entities.Registration, error) {
	userMongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	return s.findRegistration(ctx, bson.M{
		string(entities.RegistrationUserID): userMongoID,
	})
}

func (s *mongoRegistrationService) UpdateRegistrationStatus(ctx context.Context, id string,
	status entities.RegistrationStatus, reason string) (*entities.Registration, error) {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	if !status.IsDecision() {
		return nil, services.ErrInvalidStatus
	}

	filter := bson.M{
		string(entities.RegistrationID): mongoID,
	}
	update := bson.M{
		"$set": bson.M{
			string(entities.RegistrationStatusField): status,
			string(entities.RegistrationUpdatedAt):   s.timeProvider.Now(),
		},
	}
	if status == entities.Rejected {
		// a team that has committed to a quest cannot be rejected
		filter[string(entities.RegistrationQuestID)] = bson.M{"$exists": false}
		update["$set"].(bson.M)[string(entities.RegistrationRejectionReason)] = reason
	} else {
		update["$unset"] = bson.M{string(entities.RegistrationRejectionReason): ""}
	}

	res := s.registrationRepository.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	registration, err := decodeRegistrationResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		if status == entities.Rejected {
			if _, err := s.GetRegistrationWithID(ctx, id); err == nil {
				return nil, services.ErrRegistrationLocked
			}
		}
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, storeError(err, "could not update registration status")
	}

	return registration, nil
}

func (s *mongoRegistrationService) findRegistration(ctx context.Context, filter bson.M) (*entities.Registration, error) {
	registration, err := decodeRegistrationResult(s.registrationRepository.FindOne(ctx, filter))
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, storeError(err, "could not query for registration")
	}

	return registration, nil
}

func decodeRegistrationResult(res *mongo.SingleResult) (*entities.Registration, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var registration entities.Registration
	err = res.Decode(&registration)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode registration")
	}

	return &registration, nil
}

func decodeRegistrationsResult(ctx context.Context, cur *mongo.Cursor) ([]entities.Registration, error) {
	registrations := []entities.Registration{}
	for cur.Next(ctx) {
		var registration entities.Registration
		err := cur.Decode(&registration)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode registration")
		}
		registrations = append(registrations, registration)
	}

	return registrations, cur.Err()
}
