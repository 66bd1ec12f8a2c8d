package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mattys-media/backend/apperrors"
	"github.com/mattys-media/backend/models"
)

const UserKey = "currentUser"

// TokenResolver turns a bearer token into the user record it belongs to.
type TokenResolver interface {
	ResolveToken(ctx context.Context, tokenStr string) (*models.User, error)
}

// AuthRequired guards routes behind a bearer token. The resolved user is
// re-read from the store on every request, so a stale token for a removed
// user fails closed.
func AuthRequired(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(apperrors.ErrUnauthorized.Code, gin.H{"error": apperrors.ErrUnauthorized.Message})
			return
		}

		user, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			appErr := apperrors.Wrap(apperrors.ErrUnauthorized, err)
			if e, ok := err.(*apperrors.Error); ok {
				appErr = e
			}
			c.AbortWithStatusJSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthRequired.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
