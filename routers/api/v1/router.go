package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/technegotia/tn_quests/authorization"
	"github.com/technegotia/tn_quests/config"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/routers/api/models"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/utils"
	"go.uber.org/zap"
)

const (
	authTokenHeader     = "Authorization"
	authTokenQueryParam = "token"
)

var (
	anyRole        = []entities.Role{}
	teamOnly       = []entities.Role{entities.Team}
	organisersOnly = []entities.Role{entities.Organiser}
)

// APIV1Router is the router for v1 of the API
type APIV1Router interface {
	models.Router
	authorization.RouterResource
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	GetMe(ctx *gin.Context)
	CreateRegistration(ctx *gin.Context)
	GetMyRegistration(ctx *gin.Context)
	GetRegistrations(ctx *gin.Context)
	UpdateRegistrationStatus(ctx *gin.Context)
	GetQuests(ctx *gin.Context)
	GetQuest(ctx *gin.Context)
	CreateQuest(ctx *gin.Context)
	UpdateQuest(ctx *gin.Context)
	DeleteQuest(ctx *gin.Context)
	SelectQuest(ctx *gin.Context)
	GetMySelection(ctx *gin.Context)
	StreamQuests(ctx *gin.Context)
}

type apiV1Router struct {
	models.BaseRouter
	logger              *zap.Logger
	cfg                 *config.AppConfig
	authorizer          authorization.Authorizer
	userService         services.UserService
	registrationService services.RegistrationService
	questService        services.QuestService
	selectionService    services.QuestSelectionService
	emailService        services.EmailService
	timeProvider        utils.TimeProvider
}

// NewAPIV1Router creates a APIV1Router
func NewAPIV1Router(logger *zap.Logger, cfg *config.AppConfig, authorizer authorization.Authorizer,
	userService services.UserService, registrationService services.RegistrationService,
	questService services.QuestService, selectionService services.QuestSelectionService,
	emailService services.EmailService, timeProvider utils.TimeProvider) APIV1Router {
	return &apiV1Router{
		logger:              logger,
		cfg:                 cfg,
		authorizer:          authorizer,
		userService:         userService,
		registrationService: registrationService,
		questService:        questService,
		selectionService:    selectionService,
		emailService:        emailService,
		timeProvider:        timeProvider,
	}
}

// RegisterRoutes registers all of the API's (v1) routes to the given router group
func (r *apiV1Router) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)

	usersGroup := routerGroup.Group("/users")
	usersGroup.POST("", r.Register)
	usersGroup.POST("/login", r.Login)
	usersGroup.GET("/me", r.authorizer.WithAuthMiddleware(r, anyRole, r.GetMe))

	registrationsGroup := routerGroup.Group("/registrations")
	registrationsGroup.GET("", r.authorizer.WithAuthMiddleware(r, organisersOnly, r.GetRegistrations))
	registrationsGroup.POST("", r.authorizer.WithAuthMiddleware(r, teamOnly, r.CreateRegistration))
	registrationsGroup.GET("/me", r.authorizer.WithAuthMiddleware(r, teamOnly, r.GetMyRegistration))
	registrationsGroup.PUT("/:id/status", r.authorizer.WithAuthMiddleware(r, organisersOnly, r.UpdateRegistrationStatus))

	questsGroup := routerGroup.Group("/quests")
	questsGroup.GET("", r.authorizer.WithAuthMiddleware(r, anyRole, r.GetQuests))
	questsGroup.POST("", r.authorizer.WithAuthMiddleware(r, organisersOnly, r.CreateQuest))
	questsGroup.GET("/stream", r.authorizer.WithAuthMiddleware(r, anyRole, r.StreamQuests))
	questsGroup.GET("/selection/me", r.authorizer.WithAuthMiddleware(r, teamOnly, r.GetMySelection))
	questsGroup.GET("/:id", r.authorizer.WithAuthMiddleware(r, anyRole, r.GetQuest))
	questsGroup.PUT("/:id", r.authorizer.WithAuthMiddleware(r, organisersOnly, r.UpdateQuest))
	questsGroup.DELETE("/:id", r.authorizer.WithAuthMiddleware(r, organisersOnly, r.DeleteQuest))
	questsGroup.POST("/:id/select", r.authorizer.WithAuthMiddleware(r, teamOnly, r.SelectQuest))
}

// GetAuthToken reads the token from the Authorization header.
// EventSource clients cannot set headers, so the token query parameter is used as a fallback.
func (r *apiV1Router) GetAuthToken(ctx *gin.Context) string {
	if token := ctx.GetHeader(authTokenHeader); len(token) > 0 {
		return token
	}
	return ctx.Query(authTokenQueryParam)
}

func (r *apiV1Router) HandleUnauthorized(ctx *gin.Context) {
	models.SendAPIError(ctx, http.StatusUnauthorized, "you are not authorized to use this operation")
}

func (r *apiV1Router) HandleForbidden(ctx *gin.Context) {
	models.SendAPIError(ctx, http.StatusForbidden, "your role does not allow this operation")
}

// currentUser returns the user put in the context by the auth middleware
func currentUser(ctx *gin.Context) *entities.User {
	user, ok := authorization.UserFromContext(ctx)
	if !ok {
		return &entities.User{}
	}
	return user
}
