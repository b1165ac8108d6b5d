package main

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/technegotia/tn_quests/entities"
	mock_services "github.com/technegotia/tn_quests/mocks/services"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/services/memory"
	"github.com/technegotia/tn_quests/utils"
	"go.uber.org/zap"
)

func Test_promote__should_promote_existing_user(t *testing.T) {
	userService := memory.NewMemoryUserService(zap.NewNop(), memory.NewStore(), utils.NewTimeProvider())
	existing, err := userService.CreateUser(context.Background(), "Bob", "bob@test.com", "password123", entities.Team)
	assert.NoError(t, err)

	user, created, err := promote(context.Background(), userService, "ignored", "bob@test.com", "")
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, user.ID)

	stored, err := userService.GetUserWithID(context.Background(), existing.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, entities.Organiser, stored.Role)
}

func Test_promote__should_create_missing_user(t *testing.T) {
	userService := memory.NewMemoryUserService(zap.NewNop(), memory.NewStore(), utils.NewTimeProvider())

	user, created, err := promote(context.Background(), userService, "Rob", "rob@test.com", "password123")
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entities.Organiser, user.Role)

	_, err = userService.GetUserWithEmailAndPwd(context.Background(), "rob@test.com", "password123")
	assert.NoError(t, err)
}

func Test_promote__should_require_password_for_missing_user(t *testing.T) {
	userService := memory.NewMemoryUserService(zap.NewNop(), memory.NewStore(), utils.NewTimeProvider())

	_, _, err := promote(context.Background(), userService, "Rob", "rob@test.com", "")
	assert.Error(t, err)
}

func Test_promote__should_return_error_when_user_service_fails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUService := mock_services.NewMockUserService(ctrl)
	mockUService.EXPECT().GetUserWithEmail(gomock.Any(), "rob@test.com").Return(nil, services.ErrStoreUnavailable).Times(1)

	_, _, err := promote(context.Background(), mockUService, "Rob", "rob@test.com", "password123")
	assert.True(t, errors.Is(err, services.ErrStoreUnavailable))
}
