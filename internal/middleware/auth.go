package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/morisawa/ideapool/internal/constants"
	apierrors "github.com/morisawa/ideapool/internal/errors"
	"github.com/morisawa/ideapool/internal/services"
)

// RequireAuth verifies the access token from the X-Access-Token header and
// stores the authenticated identity in the request context. All
// verification failures map to the same generic 401.
func RequireAuth(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(constants.HeaderAccessToken)
		if tokenString == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := tokenService.Verify(tokenString, services.TokenKindAccess)
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserEmail, claims.Subject)
		c.Next()
	}
}

// GetUserEmail retrieves the authenticated identity from context
func GetUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyUserEmail)
	if !exists {
		return "", false
	}

	email, ok := value.(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
