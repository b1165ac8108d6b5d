package authorization

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// TokenClaims are the claims of a session token. The token only identifies the user,
// roles are always read from the user's stored record.
type TokenClaims struct {
	jwt.StandardClaims
}

// RouterResource is implemented by API routers that use the auth middleware
type RouterResource interface {
	// GetAuthToken extracts the authorization token from given request
	GetAuthToken(ctx *gin.Context) string
	// HandleUnauthorized handles a request without a valid token
	HandleUnauthorized(ctx *gin.Context)
	// HandleForbidden handles a request from a user whose role is not allowed to use the operation
	HandleForbidden(ctx *gin.Context)
}
