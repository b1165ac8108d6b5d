package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/technegotia/tn_quests/entities"
)

var validate = validator.New()

// RegistrationService is the service for interactions with a remote registrations repository
type RegistrationService interface {
	CreateRegistration(ctx context.Context, userID, teamName, userEmail string, members []entities.TeamMember,
		paymentProofURL string) (*entities.Registration, error)

	GetRegistrations(ctx context.Context) ([]entities.Registration, error)
	GetRegistrationWithID(ctx context.Context, id string) (*entities.Registration, error)
	GetRegistrationForUser(ctx context.Context, userID string) (*entities.Registration, error)

	// UpdateRegistrationStatus records an organiser's decision on a registration
	UpdateRegistrationStatus(ctx context.Context, id string, status entities.RegistrationStatus,
		reason string) (*entities.Registration, error)
}

// ValidateRegistration checks the details of a new registration
func ValidateRegistration(teamName, userEmail string, members []entities.TeamMember, paymentProofURL string, maxMembers int) error {
	if len(strings.TrimSpace(teamName)) == 0 {
		return ErrInvalidRegistration
	}
	if err := validate.Var(userEmail, "required,email"); err != nil {
		return ErrInvalidRegistration
	}
	if err := validate.Var(paymentProofURL, "required,url"); err != nil {
		return ErrInvalidRegistration
	}
	if len(members) == 0 || (maxMembers > 0 && len(members) > maxMembers) {
		return ErrInvalidRegistration
	}
	for _, member := range members {
		if err := validate.Struct(member); err != nil {
			return ErrInvalidRegistration
		}
	}
	return nil
}
