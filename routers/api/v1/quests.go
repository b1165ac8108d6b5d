package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/routers/api/models"
	"github.com/technegotia/tn_quests/services"
	"go.uber.org/zap"
)

// GET: /api/v1/quests
// Response: quests []entities.Quest
// Headers:  Authorization -> token
func (r *apiV1Router) GetQuests(ctx *gin.Context) {
	quests, err := r.questService.GetQuests(ctx)
	if err != nil {
		r.handleQuestError(ctx, err, "could not fetch quests")
		return
	}

	ctx.JSON(http.StatusOK, getQuestsRes{
		Quests: visibleQuests(currentUser(ctx), quests),
	})
}

// GET: /api/v1/quests/:id
// Response: quest entities.Quest
// Headers:  Authorization -> token
func (r *apiV1Router) GetQuest(ctx *gin.Context) {
	quest, err := r.questService.GetQuest(ctx, ctx.Param("id"))
	if err != nil {
		r.handleQuestError(ctx, err, "could not fetch quest")
		return
	}

	visible := visibleQuests(currentUser(ctx), []entities.Quest{*quest})
	if len(visible) == 0 {
		models.SendAPIError(ctx, http.StatusNotFound, "quest not found")
		return
	}

	ctx.JSON(http.StatusOK, getQuestRes{
		Quest: visible[0],
	})
}

// POST: /api/v1/quests
// x-www-form-urlencoded
// Request:  title string
//           description string
//           capacity int
// Response: quest entities.Quest
// Headers:  Authorization -> token
func (r *apiV1Router) CreateQuest(ctx *gin.Context) {
	var req struct {
		Title       string `form:"title"`
		Description string `form:"description"`
		Capacity    int    `form:"capacity"`
	}
	err := ctx.ShouldBind(&req)
	if err != nil {
		r.logger.Debug("could not parse create quest request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "failed to parse request")
		return
	}

	quest, err := r.questService.CreateQuest(ctx, req.Title, req.Description, req.Capacity)
	if err != nil {
		r.handleQuestError(ctx, err, "could not create quest")
		return
	}

	r.logger.Info("quest created", zap.String("quest_id", quest.ID.Hex()), zap.String("title", quest.Title))
	ctx.JSON(http.StatusOK, getQuestRes{
		Quest: *quest,
	})
}

// PUT: /api/v1/quests/:id
// x-www-form-urlencoded
// Request:  title string, optional
//           description string, optional
//           capacity int, optional
//           is_active bool, optional
// Response: quest entities.Quest
// Headers:  Authorization -> token
func (r *apiV1Router) UpdateQuest(ctx *gin.Context) {
	params := services.QuestUpdateParams{}
	if title, ok := ctx.GetPostForm(string(entities.QuestTitle)); ok {
		params[entities.QuestTitle] = title
	}
	if description, ok := ctx.GetPostForm(string(entities.QuestDescription)); ok {
		params[entities.QuestDescription] = description
	}
	if rawCapacity, ok := ctx.GetPostForm(string(entities.QuestCapacity)); ok {
		capacity, err := strconv.Atoi(rawCapacity)
		if err != nil {
			r.logger.Debug("invalid capacity", zap.String("capacity", rawCapacity))
			models.SendAPIError(ctx, http.StatusBadRequest, "capacity must be a number")
			return
		}
		params[entities.QuestCapacity] = capacity
	}
	if rawIsActive, ok := ctx.GetPostForm(string(entities.QuestIsActive)); ok {
		isActive, err := strconv.ParseBool(rawIsActive)
		if err != nil {
			r.logger.Debug("invalid is_active", zap.String("is_active", rawIsActive))
			models.SendAPIError(ctx, http.StatusBadRequest, "is_active must be true or false")
			return
		}
		params[entities.QuestIsActive] = isActive
	}

	quest, err := r.questService.UpdateQuest(ctx, ctx.Param("id"), params)
	if err != nil {
		r.handleQuestError(ctx, err, "could not update quest")
		return
	}

	r.logger.Info("quest updated", zap.String("quest_id", quest.ID.Hex()))
	ctx.JSON(http.StatusOK, getQuestRes{
		Quest: *quest,
	})
}

// DELETE: /api/v1/quests/:id
// Headers:  Authorization -> token
func (r *apiV1Router) DeleteQuest(ctx *gin.Context) {
	id := ctx.Param("id")
	err := r.questService.DeleteQuest(ctx, id)
	if err != nil {
		r.handleQuestError(ctx, err, "could not delete quest")
		return
	}

	r.logger.Info("quest deleted", zap.String("quest_id", id))
	ctx.Status(http.StatusOK)
}

// POST: /api/v1/quests/:id/select
// Response: quest entities.Quest
//           selection entities.Selection
// Headers:  Authorization -> token
func (r *apiV1Router) SelectQuest(ctx *gin.Context) {
	user := currentUser(ctx)
	questID := ctx.Param("id")

	teamName, userEmail := user.Name, user.Email
	registration, err := r.registrationService.GetRegistrationForUser(ctx, user.ID.Hex())
	switch errors.Cause(err) {
	case nil:
		teamName, userEmail = registration.TeamName, registration.UserEmail
	case services.ErrNotFound:
		if r.cfg.Quests.RequireApproval {
			r.logger.Debug("quest selection without registration", zap.String("user_id", user.ID.Hex()))
			models.SendAPIError(ctx, http.StatusForbidden, "your team must be registered and approved to select a quest")
			return
		}
	default:
		r.logger.Error("could not fetch registration", zap.String("user_id", user.ID.Hex()), zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	err = r.selectionService.SelectQuest(ctx, user.ID.Hex(), teamName, userEmail, questID)
	if err != nil {
		r.handleQuestError(ctx, err, "could not select quest")
		return
	}

	quest, selection, err := r.selectionService.GetUserQuestSelection(ctx, user.ID.Hex())
	if err != nil {
		r.logger.Error("could not fetch selection after selecting quest", zap.String("user_id", user.ID.Hex()), zap.Error(err))
		ctx.Status(http.StatusOK)
		return
	}

	err = r.emailService.SendQuestSelectedEmail(ctx, *quest, *selection)
	if err != nil {
		r.logger.Error("could not send quest selected email", zap.String("user_id", user.ID.Hex()), zap.Error(err))
	}

	ctx.JSON(http.StatusOK, getSelectionRes{
		Quest:     questForUser(user, quest),
		Selection: selection,
	})
}

// GET: /api/v1/quests/selection/me
// Response: quest entities.Quest
//           selection entities.Selection
// Headers:  Authorization -> token
func (r *apiV1Router) GetMySelection(ctx *gin.Context) {
	user := currentUser(ctx)
	quest, selection, err := r.selectionService.GetUserQuestSelection(ctx, user.ID.Hex())
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrNotFound:
			models.SendAPIError(ctx, http.StatusNotFound, "your team has not selected a quest")
		default:
			r.handleQuestError(ctx, err, "could not fetch selection")
		}
		return
	}

	ctx.JSON(http.StatusOK, getSelectionRes{
		Quest:     questForUser(user, quest),
		Selection: selection,
	})
}

// handleQuestError sends the API error matching err, logging unexpected errors with msg
func (r *apiV1Router) handleQuestError(ctx *gin.Context, err error, msg string) {
	cause := errors.Cause(err)
	switch cause {
	case services.ErrInvalidID:
		models.SendAPIError(ctx, http.StatusBadRequest, "invalid id provided")
	case services.ErrInvalidQuestParams:
		models.SendAPIError(ctx, http.StatusBadRequest, err.Error())
	case services.ErrNotFound, services.ErrQuestNotFound:
		models.SendAPIError(ctx, http.StatusNotFound, "quest not found")
	case services.ErrQuestInactive, services.ErrQuestFull, services.ErrAlreadySelected, services.ErrSelectionInProgress:
		models.SendAPIError(ctx, http.StatusConflict, cause.Error())
	case services.ErrRegistrationNotApproved:
		models.SendAPIError(ctx, http.StatusForbidden, cause.Error())
	case services.ErrTransientConflict, services.ErrStoreUnavailable:
		r.logger.Warn(msg, zap.Error(err))
		models.SendAPIError(ctx, http.StatusServiceUnavailable, "the quest board is busy, try again")
		return
	default:
		r.logger.Error(msg, zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}
	r.logger.Debug(msg, zap.Error(err))
}

// visibleQuests returns the quests user may see. Organisers see every quest.
// Teams see active quests and the quest they selected, without the contact details of other teams.
func visibleQuests(user *entities.User, quests []entities.Quest) []entities.Quest {
	visible := make([]entities.Quest, 0, len(quests))
	for _, quest := range quests {
		if user.Role == entities.Organiser {
			visible = append(visible, quest)
			continue
		}

		_, selected := quest.SelectionForTeam(user.ID)
		if !quest.IsActive && !selected {
			continue
		}

		quest = quest.Copy()
		for i := range quest.Selections {
			if quest.Selections[i].TeamID != user.ID {
				quest.Selections[i].UserEmail = ""
			}
		}
		visible = append(visible, quest)
	}
	return visible
}

// questForUser returns the quest as visibleQuests shows it to user, or nil if it is hidden
func questForUser(user *entities.User, quest *entities.Quest) *entities.Quest {
	if quest == nil {
		return nil
	}
	visible := visibleQuests(user, []entities.Quest{*quest})
	if len(visible) == 0 {
		return nil
	}
	return &visible[0]
}
