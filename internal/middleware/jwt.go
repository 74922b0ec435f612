package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/outpass-api/internal/service"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
	"github.com/hosteldesk/outpass-api/pkg/response"
)

// ContextUserKey is the gin context key storing JWT claims.
const ContextUserKey = "currentUser"

// RequireRole protects routes by requiring a valid session token carrying the
// given role. When enforce is false the middleware attaches claims if present
// but never blocks, which keeps token-less legacy clients working.
func RequireRole(authService *service.AuthService, role string, enforce bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if enforce {
				response.Error(c, appErrors.ErrUnauthorized)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			if enforce {
				response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
				c.Abort()
				return
			}
			c.Next()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			if enforce {
				response.Error(c, err)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if enforce && claims.Role != role {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "insufficient role"))
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}
