package services

import "errors"

var (
	// ErrInvalidID is the error returned by services when
	// the id provided in the call to the service is invalid
	ErrInvalidID = errors.New("id was invalid or not provided")
	// ErrNotFound is the error returned by services when
	// the requested object could not be found
	ErrNotFound = errors.New("requested object could not be found")
	// ErrEmailTaken is the error returned by UserService when
	// the email of a new user is already in use
	ErrEmailTaken = errors.New("email is already taken")
	// ErrNameTaken is the error returned by RegistrationService when
	// the team name of a new registration is already in use
	ErrNameTaken = errors.New("team name is already taken")
	// ErrAlreadyRegistered is the error returned by RegistrationService when
	// the user has already submitted a registration
	ErrAlreadyRegistered = errors.New("user has already registered a team")
	// ErrInvalidRegistration is the error returned by RegistrationService when
	// the provided registration details are incomplete or malformed
	ErrInvalidRegistration = errors.New("registration details are invalid")
	// ErrInvalidStatus is the error returned by RegistrationService when
	// the requested status is not a decision an organiser can make
	ErrInvalidStatus = errors.New("registration status is invalid")
	// ErrRegistrationLocked is the error returned by RegistrationService when
	// the decision on a registration can no longer be changed
	ErrRegistrationLocked = errors.New("registration can no longer be changed")

	// ErrInvalidQuestParams is the error returned by QuestService when
	// the provided quest fields are missing or out of range
	ErrInvalidQuestParams = errors.New("quest parameters are invalid")
	// ErrQuestNotFound is the error returned by QuestService when
	// the quest to select does not exist
	ErrQuestNotFound = errors.New("quest could not be found")
	// ErrQuestInactive is the error returned by QuestService when
	// the quest to select has been hidden by an organiser
	ErrQuestInactive = errors.New("quest is not active")
	// ErrQuestFull is the error returned by QuestService when
	// all slots of the quest are taken
	ErrQuestFull = errors.New("quest has no slots left")
	// ErrAlreadySelected is the error returned by QuestService when
	// the team has already selected a quest
	ErrAlreadySelected = errors.New("team has already selected a quest")
	// ErrRegistrationNotApproved is the error returned by QuestService when
	// the team's registration has not been approved
	ErrRegistrationNotApproved = errors.New("team registration is not approved")
	// ErrTransientConflict is the error returned by QuestService when
	// the selection kept conflicting with concurrent writes, the caller should try again
	ErrTransientConflict = errors.New("selection conflicted with other writes, try again")
	// ErrStoreUnavailable is the error returned by services when
	// the backing store cannot be reached
	ErrStoreUnavailable = errors.New("store is unavailable")
	// ErrSelectionInProgress is the error returned by QuestSelectionService when
	// a selection for the same user is already being processed
	ErrSelectionInProgress = errors.New("a selection for this user is already in progress")
	// ErrFeedStopped is the error delivered to quest subscribers that
	// subscribe after the live feed has shut down
	ErrFeedStopped = errors.New("quest feed has stopped")

	// ErrSendgridRejectedRequest is the error returned by EmailService
	// when Sendgrid rejects an email request
	ErrSendgridRejectedRequest = errors.New("email request was rejected by Sendgrid")
)
