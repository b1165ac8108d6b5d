// +build integration

package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/repositories"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/testutils"
	"github.com/technegotia/tn_quests/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var testUser = entities.User{
	ID:       primitive.NewObjectID(),
	Name:     "Bob the Tester",
	Email:    "test@email.com",
	Password: "password123",
	Role:     entities.Team,
}

func setupUserTest(t *testing.T) (uService *mongoUserService, uRepo *repositories.UserRepository, cleanup func()) {
	db := testutils.ConnectToIntegrationTestDB(t)

	userRepository, err := repositories.NewUserRepository(db)
	if err != nil {
		panic(err)
	}

	uService = &mongoUserService{
		logger:         zap.NewNop(),
		timeProvider:   utils.NewTimeProvider(),
		userRepository: userRepository,
	}

	return uService, userRepository, func() {
		userRepository.Drop(context.Background())
	}
}

func Test_NewMongoUserService__should_return_non_nil_object(t *testing.T) {
	assert.NotNil(t, NewMongoUserService(nil, nil, nil))
}

func Test_User_ErrInvalidID_should_be_returned_when_provided_id_is_invalid(t *testing.T) {
	uService, _, cleanup := setupUserTest(t)
	defer cleanup()

	_, err := uService.GetUserWithID(context.Background(), "invalid ID")
	assert.Equal(t, services.ErrInvalidID, err)

	err = uService.UpdateUserRoleWithID(context.Background(), "invalid ID", entities.Organiser)
	assert.Equal(t, services.ErrInvalidID, err)
}

func Test_CreateUser__should_return_ErrEmailTaken_when_email_is_taken(t *testing.T) {
	uService, uRepo, cleanup := setupUserTest(t)
	defer cleanup()

	_, err := uRepo.InsertOne(context.Background(), testUser)
	assert.NoError(t, err)

	user, err := uService.CreateUser(context.Background(), testUser.Name, testUser.Email, testUser.Password, entities.Team)

	assert.Equal(t, services.ErrEmailTaken, err)
	assert.Nil(t, user)
}

func Test_CreateUser__should_create_correct_user(t *testing.T) {
	uService, uRepo, cleanup := setupUserTest(t)
	defer cleanup()

	user, err := uService.CreateUser(context.Background(), testUser.Name, testUser.Email, testUser.Password, entities.Team)
	assert.NoError(t, err)

	assert.Equal(t, testUser.Name, user.Name)
	assert.NoError(t, utils.CompareHashAndPassword(user.Password, testUser.Password))

	res := uRepo.FindOne(context.Background(), bson.M{
		string(entities.UserID):    user.ID,
		string(entities.UserEmail): testUser.Email,
		string(entities.UserName):  testUser.Name,
		string(entities.UserRole):  entities.Team,
	})

	assert.NoError(t, res.Err())
}

func Test_GetUsers__should_return_expected_users(t *testing.T) {
	uService, _, cleanup := setupUserTest(t)
	defer cleanup()

	bob, err := uService.CreateUser(context.Background(), "Bob", "bob@email.com", "password123", entities.Team)
	assert.NoError(t, err)
	rob, err := uService.CreateUser(context.Background(), "Rob", "rob@email.com", "password123", entities.Organiser)
	assert.NoError(t, err)

	users, err := uService.GetUsers(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, []entities.User{*bob, *rob}, users)
}

func Test_GetUserWithID__should_return_ErrNotFound_when_user_doesnt_exist(t *testing.T) {
	uService, _, cleanup := setupUserTest(t)
	defer cleanup()

	user, err := uService.GetUserWithID(context.Background(), primitive.NewObjectID().Hex())

	assert.Equal(t, services.ErrNotFound, err)
	assert.Nil(t, user)
}

func Test_GetUserWithEmailAndPwd__should_check_password(t *testing.T) {
	uService, _, cleanup := setupUserTest(t)
	defer cleanup()

	created, err := uService.CreateUser(context.Background(), testUser.Name, testUser.Email, testUser.Password, entities.Team)
	assert.NoError(t, err)

	user, err := uService.GetUserWithEmailAndPwd(context.Background(), testUser.Email, testUser.Password)
	assert.NoError(t, err)
	assert.Equal(t, created, user)

	_, err = uService.GetUserWithEmailAndPwd(context.Background(), testUser.Email, "wrong password")
	assert.Equal(t, services.ErrNotFound, err)
}

func Test_UpdateUserRoleWithID__should_update_role(t *testing.T) {
	uService, _, cleanup := setupUserTest(t)
	defer cleanup()

	created, err := uService.CreateUser(context.Background(), testUser.Name, testUser.Email, testUser.Password, entities.Team)
	assert.NoError(t, err)

	err = uService.UpdateUserRoleWithID(context.Background(), created.ID.Hex(), entities.Organiser)
	assert.NoError(t, err)

	user, err := uService.GetUserWithID(context.Background(), created.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, entities.Organiser, user.Role)

	err = uService.UpdateUserRoleWithID(context.Background(), primitive.NewObjectID().Hex(), entities.Organiser)
	assert.Equal(t, services.ErrNotFound, err)
}
