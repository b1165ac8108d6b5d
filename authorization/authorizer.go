package authorization

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/technegotia/tn_quests/entities"
	"github.com/technegotia/tn_quests/environment"
	"github.com/technegotia/tn_quests/services"
	"github.com/technegotia/tn_quests/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const userContextKey = "tn_quests_user"

var jwtSigningMethod = jwt.SigningMethodHS256

// Authorizer provides an interface for creating session tokens and guarding routes with them
type Authorizer interface {
	// CreateUserToken creates a token for the given user.
	// Setting expirationDate to 0 will create a token that does not expire.
	CreateUserToken(userID primitive.ObjectID, expirationDate int64) (string, error)
	// GetUserIDFromToken returns the ID of the user the token was issued to.
	// Will return ErrInvalidToken if the token is invalid or expired.
	GetUserIDFromToken(token string) (primitive.ObjectID, error)
	// WithAuthMiddleware wraps handler so that it only runs for requests with a valid token
	// whose user has one of allowedRoles. An empty allowedRoles allows every role.
	// The user is available to handler through UserFromContext.
	WithAuthMiddleware(router RouterResource, allowedRoles []entities.Role, handler gin.HandlerFunc) gin.HandlerFunc
}

func NewAuthorizer(logger *zap.Logger, provider utils.TimeProvider, env *environment.Env, userService services.UserService) Authorizer {
	return &authorizer{
		logger:       logger,
		timeProvider: provider,
		env:          env,
		userService:  userService,
	}
}

type authorizer struct {
	logger       *zap.Logger
	timeProvider utils.TimeProvider
	env          *environment.Env
	userService  services.UserService
}

func (a *authorizer) CreateUserToken(userID primitive.ObjectID, expirationDate int64) (string, error) {
	token := jwt.NewWithClaims(jwtSigningMethod, TokenClaims{
		StandardClaims: jwt.StandardClaims{
			Id:        userID.Hex(),
			IssuedAt:  a.timeProvider.Now().Unix(),
			ExpiresAt: expirationDate,
		},
	})

	return token.SignedString([]byte(a.env.Get(environment.JWTSecret)))
}

func (a *authorizer) GetUserIDFromToken(token string) (primitive.ObjectID, error) {
	var claims TokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwtSigningMethod {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(a.env.Get(environment.JWTSecret)), nil
	})
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(ErrInvalidToken, err.Error())
	}

	userID, err := primitive.ObjectIDFromHex(claims.Id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(ErrInvalidToken, "malformed user id")
	}

	return userID, nil
}

func (a *authorizer) WithAuthMiddleware(router RouterResource, allowedRoles []entities.Role, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := a.GetUserIDFromToken(router.GetAuthToken(ctx))
		if err != nil {
			a.logger.Debug("invalid token", zap.Error(err))
			router.HandleUnauthorized(ctx)
			return
		}

		user, err := a.userService.GetUserWithID(ctx, userID.Hex())
		if err != nil {
			if errors.Cause(err) != services.ErrNotFound {
				a.logger.Error("could not fetch user of token", zap.String("user_id", userID.Hex()), zap.Error(err))
			}
			router.HandleUnauthorized(ctx)
			return
		}

		if !roleAllowed(user.Role, allowedRoles) {
			a.logger.Debug("role not allowed", zap.String("user_id", userID.Hex()), zap.String("role", string(user.Role)))
			router.HandleForbidden(ctx)
			return
		}

		ctx.Set(userContextKey, user)
		handler(ctx)
	}
}

// UserFromContext returns the user set by the auth middleware
func UserFromContext(ctx *gin.Context) (*entities.User, bool) {
	value, exists := ctx.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*entities.User)
	return user, ok
}

// SetUserInContext stores the user the same way the auth middleware does
func SetUserInContext(ctx *gin.Context, user *entities.User) {
	ctx.Set(userContextKey, user)
}

func roleAllowed(role entities.Role, allowedRoles []entities.Role) bool {
	if len(allowedRoles) == 0 {
		return true
	}

	for _, allowed := range allowedRoles {
		if role == allowed {
			return true
		}
	}
	return false
}
