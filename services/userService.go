package services

import (
	"context"

	"github.com/technegotia/tn_quests/entities"
)

// UserService is the service for interactions with a remote users repository
type UserService interface {
	CreateUser(ctx context.Context, name, email, password string, role entities.Role) (*entities.User, error)

	GetUsers(ctx context.Context) ([]entities.User, error)
	GetUserWithID(ctx context.Context, userID string) (*entities.User, error)
	GetUserWithEmail(ctx context.Context, email string) (*entities.User, error)
	// GetUserWithEmailAndPwd returns ErrNotFound if the email is unknown or the password does not match
	GetUserWithEmailAndPwd(ctx context.Context, email, password string) (*entities.User, error)

	UpdateUserRoleWithID(ctx context.Context, userID string, role entities.Role) error
}
