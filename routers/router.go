package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/technegotia/tn_quests/routers/api/models"
	v1 "github.com/technegotia/tn_quests/routers/api/v1"
	"go.uber.org/zap"
)

// MainRouter is the router for the whole service
type MainRouter interface {
	models.Router
}

type mainRouter struct {
	models.BaseRouter
	logger      *zap.Logger
	apiV1Router v1.APIV1Router
}

// NewMainRouter creates a new MainRouter
func NewMainRouter(logger *zap.Logger, apiV1Router v1.APIV1Router) MainRouter {
	return &mainRouter{
		logger:      logger,
		apiV1Router: apiV1Router,
	}
}

// RegisterRoutes registers the heartbeat and the routes of all API versions
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)

	apiV1Group := routerGroup.Group("/api/v1")
	r.apiV1Router.RegisterRoutes(apiV1Group)
}
