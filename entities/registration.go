package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RegistrationField string

const (
	RegistrationID              RegistrationField = "_id"
	RegistrationUserID          RegistrationField = "user_id"
	RegistrationTeamName        RegistrationField = "team_name"
	RegistrationUserEmail       RegistrationField = "user_email"
	RegistrationMembers         RegistrationField = "members"
	RegistrationPaymentProofURL RegistrationField = "payment_proof_url"
	RegistrationStatusField     RegistrationField = "status"
	RegistrationRejectionReason RegistrationField = "rejection_reason"
	RegistrationQuestID         RegistrationField = "quest_id"
	RegistrationCreatedAt       RegistrationField = "created_at"
	RegistrationUpdatedAt       RegistrationField = "updated_at"
)

// RegistrationStatus is the review state of a registration
type RegistrationStatus string

const (
	Pending  RegistrationStatus = "pending"
	Approved RegistrationStatus = "approved"
	Rejected RegistrationStatus = "rejected"
)

// IsDecision checks if the status is one an organiser can set
func (s RegistrationStatus) IsDecision() bool {
	return s == Approved || s == Rejected
}

// TeamMember is a member listed on a registration
type TeamMember struct {
	Name  string `json:"name" bson:"name" validate:"required"`
	Email string `json:"email" bson:"email" validate:"required,email"`
}

// Registration is the struct to store team registrations.
// A team is identified by the user who submitted its registration.
type Registration struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	UserID          primitive.ObjectID `json:"user_id" bson:"user_id"`
	TeamName        string             `json:"team_name" bson:"team_name"`
	UserEmail       string             `json:"user_email" bson:"user_email"`
	Members         []TeamMember       `json:"members" bson:"members"`
	PaymentProofURL string             `json:"payment_proof_url" bson:"payment_proof_url"`
	Status          RegistrationStatus `json:"status" bson:"status"`
	RejectionReason string             `json:"rejection_reason,omitempty" bson:"rejection_reason,omitempty"`
	// QuestID is set once the team has selected a quest
	QuestID   primitive.ObjectID `json:"quest_id,omitempty" bson:"quest_id,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// HasQuest checks if the team has committed to a quest
func (r Registration) HasQuest() bool {
	return !r.QuestID.IsZero()
}
