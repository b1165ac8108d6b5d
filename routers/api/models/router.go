package models

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router registers its routes on a gin router group
type Router interface {
	RegisterRoutes(routerGroup *gin.RouterGroup)
}

// BaseRouter provides the handlers shared by all routers
type BaseRouter struct{}

type heartbeatResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Heartbeat responds to any request with 200
func (r *BaseRouter) Heartbeat(c *gin.Context) {
	message := fmt.Sprintf("request to %s received", c.Request.URL.String())

	c.JSON(http.StatusOK, heartbeatResponse{Status: "OK", Code: http.StatusOK, Message: message})
}
