package v1

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/testutils"
)

func TestApiV1Router_Register(t *testing.T) {
	tests := []struct {
		name        string
		params      map[string]string
		prep        func(*apiTestSetup)
		wantResCode int
	}{
		{
			name: "should return 400 when name is not provided",
			params: map[string]string{
				"email":    "bob@test.com",
				"password": "password123",
			},
			wantResCode: http.StatusBadRequest,
		},
		{
			name: "should return 400 when password is not provided",
			params: map[string]string{
				"name":  "Bob the Tester",
				"email": "bob@test.com",
			},
			wantResCode: http.StatusBadRequest,
		},
		{
			name: "should return 400 when email is taken",
			params: map[string]string{
				"name":     "Bob the Tester",
				"email":    "bob@test.com",
				"password": "password123",
			},
			prep: func(setup *apiTestSetup) {
				setup.mockUService.EXPECT().CreateUser(gomock.Any(), "Bob the Tester", "bob@test.com", "password123", entities.Team).
					Return(nil, services.ErrEmailTaken).Times(1)
			},
			wantResCode: http.StatusBadRequest,
		},
		{
			name: "should return 500 when user service returns unknown error",
			params: map[string]string{
				"name":     "Bob the Tester",
				"email":    "bob@test.com",
				"password": "password123",
			},
			prep: func(setup *apiTestSetup) {
				setup.mockUService.EXPECT().CreateUser(gomock.Any(), "Bob the Tester", "bob@test.com", "password123", entities.Team).
					Return(nil, errors.New("service err")).Times(1)
			},
			wantResCode: http.StatusInternalServerError,
		},
		{
			name: "should return 200 and create user with team role",
			params: map[string]string{
				"name":     "Bob the Tester",
				"email":    "bob@test.com",
				"password": "password123",
			},
			prep: func(setup *apiTestSetup) {
				setup.mockUService.EXPECT().CreateUser(gomock.Any(), "Bob the Tester", "bob@test.com", "password123", entities.Team).
					Return(setup.testUser, nil).Times(1)
			},
			wantResCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupAPITest(t)
			defer setup.ctrl.Finish()
			if tt.prep != nil {
				tt.prep(setup)
			}

			testutils.AddRequestWithFormParamsToCtx(setup.testCtx, http.MethodPost, tt.params)

			setup.router.Register(setup.testCtx)

			assert.Equal(t, tt.wantResCode, setup.w.Code)
			if tt.wantResCode == http.StatusOK {
				var res getUserRes
				err := testutils.UnmarshallResponse(setup.w.Body, &res)
				assert.NoError(t, err)
				assert.Equal(t, setup.testUser.ID, res.User.ID)
			}
		})
	}
}

func TestApiV1Router_Login(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		prep        func(*apiTestSetup)
		wantResCode int
		wantRes     *loginRes
	}{
		{
			name:        "should return 400 when email is not provided",
			password:    "password123",
			wantResCode: http.StatusBadRequest,
		},
		{
			name:        "should return 400 when password is not provided",
			email:       "bob@test.com",
			wantResCode: http.StatusBadRequest,
		},
		{
			name:        "should return 401 when user service returns ErrNotFound",
			email:       "bob@test.com",
			password:    "password123",
			wantResCode: http.StatusUnauthorized,
			prep: func(setup *apiTestSetup) {
				setup.mockUService.EXPECT().GetUserWithEmailAndPwd(gomock.Any(), "bob@test.com", "password123").
					Return(nil, services.ErrNotFound).Times(1)
			},
		},
		{
			name:        "should return 500 when user service returns unknown error",
			email:       "bob@test.com",
			password:    "password123",
			wantResCode: http.StatusInternalServerError,
			prep: func(setup *apiTestSetup) {
				setup.mockUService.EXPECT().GetUserWithEmailAndPwd(gomock.Any(), "bob@test.com", "password123").
					Return(nil, errors.New("service err")).Times(1)
			},
		},
		{
			name:        "should return 500 when creating token fails",
			email:       "bob@test.com",
			password:    "password123",
			wantResCode: http.StatusInternalServerError,
			prep: func(setup *apiTestSetup) {
				setup.mockUService.EXPECT().GetUserWithEmailAndPwd(gomock.Any(), "bob@test.com", "password123").
					Return(setup.testUser, nil).Times(1)
				setup.mockTimeProvider.EXPECT().Now().Return(time.Unix(0, 0)).Times(1)
				setup.mockAuthorizer.EXPECT().CreateUserToken(setup.testUser.ID, int64(testAuthTokenLifetime)).
					Return("", errors.New("authorizer err")).Times(1)
			},
		},
		{
			name:     "should return 200 and correct token when logging in succeeds",
			email:    "bob@test.com",
			password: "password123",
			prep: func(setup *apiTestSetup) {
				setup.mockUService.EXPECT().GetUserWithEmailAndPwd(gomock.Any(), "bob@test.com", "password123").
					Return(setup.testUser, nil).Times(1)
				setup.mockTimeProvider.EXPECT().Now().Return(time.Unix(0, 0)).Times(1)
				setup.mockAuthorizer.EXPECT().CreateUserToken(setup.testUser.ID, int64(testAuthTokenLifetime)).
					Return("test_token", nil).Times(1)
			},
			wantResCode: http.StatusOK,
			wantRes: &loginRes{
				Token: "test_token",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupAPITest(t)
			defer setup.ctrl.Finish()
			if tt.prep != nil {
				tt.prep(setup)
			}

			testutils.AddRequestWithFormParamsToCtx(setup.testCtx,
				http.MethodPost,
				map[string]string{
					"email":    tt.email,
					"password": tt.password,
				},
			)

			setup.router.Login(setup.testCtx)

			assert.Equal(t, tt.wantResCode, setup.w.Code)

			if tt.wantRes != nil {
				var actualRes loginRes
				err := testutils.UnmarshallResponse(setup.w.Body, &actualRes)
				assert.NoError(t, err)
				assert.Equal(t, *tt.wantRes, actualRes)
				assert.Equal(t, tt.wantRes.Token, setup.w.Header().Get(authTokenHeader))
			}
		})
	}
}

func TestApiV1Router_GetMe(t *testing.T) {
	setup := setupAPITest(t).asUser(entities.Organiser)
	defer setup.ctrl.Finish()

	testutils.AddRequestWithFormParamsToCtx(setup.testCtx, http.MethodGet, nil)

	setup.router.GetMe(setup.testCtx)

	assert.Equal(t, http.StatusOK, setup.w.Code)
	var res getUserRes
	err := testutils.UnmarshallResponse(setup.w.Body, &res)
	assert.NoError(t, err)
	assert.Equal(t, setup.testUser.ID, res.User.ID)
	assert.Equal(t, entities.Organiser, res.User.Role)
}
