package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/routers/api/models"
	"github.com/technegotia/tn_quests/services"
	"go.uber.org/zap"
)

// POST: /api/v1/registrations
// application/json
// Request:  team_name string
//           members []entities.TeamMember
//           payment_proof_url string
// Response: registration entities.Registration
// Headers:  Authorization -> token
func (r *apiV1Router) CreateRegistration(ctx *gin.Context) {
	var req createRegistrationReq
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		r.logger.Debug("could not parse create registration request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "failed to parse request")
		return
	}

	user := currentUser(ctx)
	registration, err := r.registrationService.CreateRegistration(ctx, user.ID.Hex(), req.TeamName, user.Email,
		req.Members, req.PaymentProofURL)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID, services.ErrInvalidRegistration:
			r.logger.Debug("invalid registration", zap.String("user_id", user.ID.Hex()), zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "registration details are invalid")
		case services.ErrNameTaken:
			r.logger.Debug("team name taken", zap.String("team_name", req.TeamName))
			models.SendAPIError(ctx, http.StatusConflict, "team with given name already exists")
		case services.ErrAlreadyRegistered:
			r.logger.Debug("user already registered", zap.String("user_id", user.ID.Hex()))
			models.SendAPIError(ctx, http.StatusConflict, "you have already registered a team")
		default:
			r.logger.Error("could not create registration", zap.String("user_id", user.ID.Hex()), zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getRegistrationRes{
		Registration: *registration,
	})
}

// GET: /api/v1/registrations/me
// Response: registration entities.Registration
// Headers:  Authorization -> token
func (r *apiV1Router) GetMyRegistration(ctx *gin.Context) {
	user := currentUser(ctx)
	registration, err := r.registrationService.GetRegistrationForUser(ctx, user.ID.Hex())
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrNotFound:
			models.SendAPIError(ctx, http.StatusNotFound, "you have not registered a team")
		default:
			r.logger.Error("could not fetch registration", zap.String("user_id", user.ID.Hex()), zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getRegistrationRes{
		Registration: *registration,
	})
}

// GET: /api/v1/registrations
// Response: registrations []entities.Registration
// Headers:  Authorization -> token
func (r *apiV1Router) GetRegistrations(ctx *gin.Context) {
	registrations, err := r.registrationService.GetRegistrations(ctx)
	if err != nil {
		r.logger.Error("could not fetch registrations", zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.JSON(http.StatusOK, getRegistrationsRes{
		Registrations: registrations,
	})
}

// PUT: /api/v1/registrations/:id/status
// x-www-form-urlencoded
// Request:  status entities.RegistrationStatus
//           reason string
// Response: registration entities.Registration
// Headers:  Authorization -> token
func (r *apiV1Router) UpdateRegistrationStatus(ctx *gin.Context) {
	var req struct {
		Status string `form:"status"`
		Reason string `form:"reason"`
	}
	ctx.Bind(&req)

	id := ctx.Param("id")
	registration, err := r.registrationService.UpdateRegistrationStatus(ctx, id,
		entities.RegistrationStatus(req.Status), req.Reason)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid registration id", zap.String("registration_id", id))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid registration id provided")
		case services.ErrInvalidStatus:
			r.logger.Debug("invalid registration status", zap.String("status", req.Status))
			models.SendAPIError(ctx, http.StatusBadRequest, "status must be approved or rejected")
		case services.ErrNotFound:
			models.SendAPIError(ctx, http.StatusNotFound, "registration not found")
		case services.ErrRegistrationLocked:
			r.logger.Debug("registration locked", zap.String("registration_id", id))
			models.SendAPIError(ctx, http.StatusConflict, "the team has already selected a quest")
		default:
			r.logger.Error("could not update registration status", zap.String("registration_id", id), zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	r.logger.Info("registration reviewed", zap.String("registration_id", id), zap.String("status", req.Status))
	err = r.emailService.SendRegistrationStatusEmail(ctx, *registration)
	if err != nil {
		r.logger.Error("could not send registration status email", zap.String("registration_id", id), zap.Error(err))
	}

	ctx.JSON(http.StatusOK, getRegistrationRes{
		Registration: *registration,
	})
}
