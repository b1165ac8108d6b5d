package memory

import (
	"context"

	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memoryUserService struct {
	logger       *zap.Logger
	store        *Store
	timeProvider utils.TimeProvider
}

// NewMemoryUserService creates a new UserService that keeps users in the given Store
func NewMemoryUserService(logger *zap.Logger, store *Store, timeProvider utils.TimeProvider) services.UserService {
	return &memoryUserService{
		logger:       logger,
		store:        store,
		timeProvider: timeProvider,
	}
}

func (s *memoryUserService) CreateUser(ctx context.Context, name, email, password string, role entities.Role) (*entities.User, error) {
	if !role.IsValid() {
		return nil, errors.Errorf("unknown role %s", role)
	}

	pwdHash, err := utils.GetHashForPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "could not hash password")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, existing := range s.store.users {
		if existing.Email == email {
			return nil, services.ErrEmailTaken
		}
	}

	user := &entities.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  pwdHash,
		Role:      role,
		CreatedAt: s.timeProvider.Now(),
	}
	s.store.users[user.ID] = user
	s.store.userOrder = append(s.store.userOrder, user.ID)

	userCopy := *user
	return &userCopy, nil
}

func (s *memoryUserService) GetUsers(ctx context.Context) ([]entities.User, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	users := make([]entities.User, 0, len(s.store.userOrder))
	for _, id := range s.store.userOrder {
		users = append(users, *s.store.users[id])
	}

	return users, nil
}

func (s *memoryUserService) GetUserWithID(ctx context.Context, userID string) (*entities.User, error) {
	mongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	user, ok := s.store.users[mongoID]
	if !ok {
		return nil, services.ErrNotFound
	}

	userCopy := *user
	return &userCopy, nil
}

func (s *memoryUserService) GetUserWithEmail(ctx context.Context, email string) (*entities.User, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, user := range s.store.users {
		if user.Email == email {
			userCopy := *user
			return &userCopy, nil
		}
	}

	return nil, services.ErrNotFound
}

func (s *memoryUserService) GetUserWithEmailAndPwd(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := s.GetUserWithEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	err = utils.CompareHashAndPassword(user.Password, password)
	if err != nil {
		return nil, services.ErrNotFound
	}

	return user, nil
}

func (s *memoryUserService) UpdateUserRoleWithID(ctx context.Context, userID string, role entities.Role) error {
	mongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return services.ErrInvalidID
	}

	if !role.IsValid() {
		return errors.Errorf("unknown role %s", role)
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	user, ok := s.store.users[mongoID]
	if !ok {
		return services.ErrNotFound
	}
	user.Role = role

	return nil
}
