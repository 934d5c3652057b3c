package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-api/pkg/helpers"
	"github.com/oksasatya/go-blog-api/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
	CtxClaimsKey   = "claims"
)

// Session reads the token cookie, verifies it, and injects the decoded identity
// into the Gin context. A missing or invalid token aborts with 401; verification
// failure is always an error response, never a panic.
func Session(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.TokenCookieName)
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid session token", err.Error())
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Set(CtxClaimsKey, claims)
		c.Next()
	}
}
