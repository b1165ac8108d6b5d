package mongo

import (
	"context"

	"github.com/pkg/errors"
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

type mongoUserService struct {
	logger         *zap.Logger
	timeProvider   utils.TimeProvider
	userRepository *repositories.UserRepository
}

// NewMongoUserService creates a new UserService that uses MongoDB as the storage technology
func NewMongoUserService(logger *zap.Logger, timeProvider utils.TimeProvider, userRepository *repositories.UserRepository) services.UserService {
	return &mongoUserService{
		logger:         logger,
		timeProvider:   timeProvider,
		userRepository: userRepository,
	}
}

func (s *mongoUserService) CreateUser(ctx context.Context, name, email, password string, role entities.Role) (*entities.User, error) {
	if !role.IsValid() {
		return nil, errors.Errorf("unknown role %s", role)
	}

	// check if email is not taken
	err := s.userRepository.FindOne(ctx, bson.M{
		string(entities.UserEmail): email,
	}).Err()
	if err == nil {
		return nil, services.ErrEmailTaken
	} else if err != mongo.ErrNoDocuments {
		return nil, storeError(err, "could not query for user with email")
	}

	pwdHash, err := utils.GetHashForPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "could not hash password")
	}

	user := &entities.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  pwdHash,
		Role:      role,
		CreatedAt: s.timeProvider.Now(),
	}

	_, err = s.userRepository.InsertOne(ctx, *user)
	if mongo.IsDuplicateKeyError(err) {
		return nil, services.ErrEmailTaken
	} else if err != nil {
		return nil, storeError(err, "could not create new user")
	}

	return user, nil
}

func (s *mongoUserService) GetUsers(ctx context.Context) ([]entities.User, error) {
	cur, err := s.userRepository.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{
		{Key: string(entities.UserCreatedAt), Value: 1},
		{Key: string(entities.UserID), Value: 1},
	}))
	if err != nil {
		return nil, storeError(err, "could not query for users")
	}
	defer cur.Close(ctx)

	users, err := decodeUsersResult(ctx, cur)
	if err != nil {
		return nil, storeError(err, "could not decode result")
	}

	return users, nil
}

func (s *mongoUserService) GetUserWithID(ctx context.Context, userID string) (*entities.User, error) {
	mongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.userRepository.FindOne(ctx, bson.M{
		string(entities.UserID): mongoID,
	})

	user, err := decodeUserResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, storeError(err, "could not query for user with ID")
	}

	return user, nil
}

func (s *mongoUserService) GetUserWithEmail(ctx context.Context, email string) (*entities.User, error) {
	res := s.userRepository.FindOne(ctx, bson.M{
		string(entities.UserEmail): email,
	})

	user, err := decodeUserResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, storeError(err, "could not query for user with email")
	}

	return user, nil
}

func (s *mongoUserService) GetUserWithEmailAndPwd(ctx context.Context, email, pwd string) (*entities.User, error) {
	user, err := s.GetUserWithEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	err = utils.CompareHashAndPassword(user.Password, pwd)
	if err != nil {
		return nil, services.ErrNotFound
	}

	return user, nil
}

func (s *mongoUserService) UpdateUserRoleWithID(ctx context.Context, userID string, role entities.Role) error {
	mongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return services.ErrInvalidID
	}

	if !role.IsValid() {
		return errors.Errorf("unknown role %s", role)
	}

	res, err := s.userRepository.UpdateOne(ctx, bson.M{
		string(entities.UserID): mongoID,
	}, bson.M{
		"$set": bson.M{string(entities.UserRole): role},
	})
	if err != nil {
		return storeError(err, "could not update user with ID")
	}

	if res.MatchedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}

func decodeUserResult(res *mongo.SingleResult) (*entities.User, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var user entities.User
	err = res.Decode(&user)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode user")
	}

	return &user, nil
}

func decodeUsersResult(ctx context.Context, cur *mongo.Cursor) ([]entities.User, error) {
	users := []entities.User{}
	for cur.Next(ctx) {
		var user entities.User
		err := cur.Decode(&user)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode user")
		}
		users = append(users, user)
	}

	return users, cur.Err()
}
