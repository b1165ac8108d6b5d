package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserField string

const (
	UserID        UserField = "_id"
	UserName      UserField = "name"
	UserEmail     UserField = "email"
	UserPassword  UserField = "password"
	UserRole      UserField = "role"
	UserCreatedAt UserField = "created_at"
)

// Role is the role of a user within the event
type Role string

const (
	// Team is the role of a user who registers and leads a team
	Team Role = "team"
	// Organiser is the role of a user who runs the event
	Organiser Role = "organiser"
)

// IsValid checks if the role is one of the known roles
func (r Role) IsValid() bool {
	return r == Team || r == Organiser
}

// User is the struct to store registered users
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Role      Role               `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
