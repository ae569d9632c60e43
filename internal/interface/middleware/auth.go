package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/phishguard/phishguard-api/internal/domain/entity"
	"github.com/phishguard/phishguard-api/internal/domain/repository"
	"github.com/phishguard/phishguard-api/pkg/helpers"
	"github.com/phishguard/phishguard-api/pkg/response"
)

// Context keys set by Auth on success.
const (
	CtxUserIDKey = "userID"
	CtxUserKey   = "authUser"
)

// Auth requires an `Authorization: Bearer <token>` header, validates the
// token, and re-reads the user from the store by the token's id. Downstream
// handlers always see this freshly-read identity; client-supplied fields are
// never trusted for identity or role.
func Auth(users repository.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || u == nil {
			// Token may be valid while the account no longer exists.
			response.Error(c, http.StatusUnauthorized, "Not authorized")
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserKey, u)
		c.Next()
	}
}

// AdminOnly requires the authenticated identity to hold the admin role. It
// must run after Auth. Non-admins get 401, matching the rest of the
// authorization failures in this API.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok || !u.IsAdmin() {
			response.Error(c, http.StatusUnauthorized, "Not authorized as an admin")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity resolved by Auth for this request.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
