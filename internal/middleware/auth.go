package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"resumebuilder_backend/internal/auth"
	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/pkg/apperrors"
	"resumebuilder_backend/pkg/contextkeys"
)

// Principal is the authenticated caller attached to the request context.
type Principal struct {
	UserID string
	User   *models.User
}

// UserLoader is the slice of the user repository the authenticator needs.
type UserLoader interface {
	FindByID(id string) (*models.User, error)
}

// ResolvePrincipal parses a Bearer token when one is present, loads the user
// it references and attaches the principal to the context. Missing,
// malformed or invalid tokens, and tokens referencing deleted users, leave
// the request anonymous; rejection happens later at RequirePrincipal. This
// keeps public endpoints usable with or without a token.
func ResolvePrincipal(secret []byte, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := auth.ParseToken(tokenStr, secret)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "token rejected", "reason", err.Error())
			c.Next()
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			// A valid token for a user that no longer exists, or a store
			// failure. Either way the request proceeds anonymous.
			logger.CtxWarn(c.Request.Context(), "principal lookup failed",
				"user_id", userID, "error", err.Error())
			c.Next()
			return
		}

		principal := &Principal{UserID: user.ID, User: user}
		c.Set(string(contextkeys.PrincipalKey), principal)

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequirePrincipal aborts with 401 unless ResolvePrincipal attached a
// principal earlier in the chain.
func RequirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			apperrors.HandleError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the authenticated caller, if any.
func CurrentPrincipal(c *gin.Context) (*Principal, bool) {
	val, exists := c.Get(string(contextkeys.PrincipalKey))
	if !exists {
		return nil, false
	}
	principal, ok := val.(*Principal)
	if !ok || principal.UserID == "" {
		return nil, false
	}
	return principal, true
}
