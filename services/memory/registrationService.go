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

type memoryRegistrationService struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	store        *Store
	timeProvider utils.TimeProvider
}

// NewMemoryRegistrationService creates a new RegistrationService that keeps registrations in the given Store
func NewMemoryRegistrationService(logger *zap.Logger, cfg *config.AppConfig, store *Store, timeProvider utils.TimeProvider) services.RegistrationService {
	return &memoryRegistrationService{
		logger:       logger,
		cfg:          cfg,
		store:        store,
		timeProvider: timeProvider,
	}
}

func (s *memoryRegistrationService) CreateRegistration(ctx context.Context, userID, teamName, userEmail string,
	members []entities.TeamMember, paymentProofURL string) (*entities.Registration, error) {
	userMongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	err = services.ValidateRegistration(teamName, userEmail, members, paymentProofURL, s.cfg.Registrations.MaxTeamMembers)
	if err != nil {
		return nil, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, existing := range s.store.registrations {
		if existing.UserID == userMongoID {
			return nil, services.ErrAlreadyRegistered
		} else if existing.TeamName == teamName {
			return nil, services.ErrNameTaken
		}
	}

	now := s.timeProvider.Now()
	registration := &entities.Registration{
		ID:              primitive.NewObjectID(),
		UserID:          userMongoID,
		TeamName:        teamName,
		UserEmail:       userEmail,
		Members:         append([]entities.TeamMember(nil), members...),
		PaymentProofURL: paymentProofURL,
		Status:          entities.Pending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.store.registrations[registration.ID] = registration
	s.store.regOrder = append(s.store.regOrder, registration.ID)

	return copyRegistration(registration), nil
}

func (s *memoryRegistrationService) GetRegistrations(ctx context.Context) ([]entities.Registration, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	registrations := make([]entities.Registration, 0, len(s.store.regOrder))
	for _, id := range s.store.regOrder {
		registrations = append(registrations, *copyRegistration(s.store.registrations[id]))
	}

	return registrations, nil
}

func (s *memoryRegistrationService) GetRegistrationWithID(ctx context.Context, id string) (*entities.Registration, error) {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	registration, ok := s.store.registrations[mongoID]
	if !ok {
		return nil, services.ErrNotFound
	}

	return copyRegistration(registration), nil
}

func (s *memoryRegistrationService) GetRegistrationForUser(ctx context.Context, userID string) (*entities.Registration, error) {
	userMongoID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	registration := s.store.registrationForUser(userMongoID)
	if registration == nil {
		return nil, services.ErrNotFound
	}

	return copyRegistration(registration), nil
}

func (s *memoryRegistrationService) UpdateRegistrationStatus(ctx context.Context, id string,
	status entities.RegistrationStatus, reason string) (*entities.Registration, error) {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	if !status.IsDecision() {
		return nil, services.ErrInvalidStatus
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	registration, ok := s.store.registrations[mongoID]
	if !ok {
		return nil, services.ErrNotFound
	} else if status == entities.Rejected && registration.HasQuest() {
		return nil, services.ErrRegistrationLocked
	}

	registration.Status = status
	registration.RejectionReason = ""
	if status == entities.Rejected {
		registration.RejectionReason = reason
	}
	registration.UpdatedAt = s.timeProvider.Now()

	return copyRegistration(registration), nil
}

func copyRegistration(registration *entities.Registration) *entities.Registration {
	registrationCopy := *registration
	registrationCopy.Members = append([]entities.TeamMember(nil), registration.Members...)
	return &registrationCopy
}
