package api

import (
	"net/http"
	"strings"

	"scoreserver/internal/auth"
	"scoreserver/internal/httpserver"
)

const userIDContextKey = "userID"

// RequireAuth validates the bearer token on every request in the group it
// is attached to and stashes the resolved user ID on the gin context for
// handlers that need it.
func RequireAuth(issuer *auth.Issuer) httpserver.MiddlewareFunc {
	return func(c *httpserver.Context) error {
		header := c.Gin().GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.Gin().AbortWithStatus(http.StatusUnauthorized)
			return nil
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			c.Gin().AbortWithStatus(http.StatusUnauthorized)
			return nil
		}

		c.Gin().Set(userIDContextKey, claims.UserID)
		return nil
	}
}
