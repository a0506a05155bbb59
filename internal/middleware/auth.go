package middleware

import (
	"net/http"
	"strings"

	"github.com/joshishrau/FacilityFlow/internal/auth"
	"github.com/wb-go/wbf/ginext"
)

// UIDKey is the context key the authenticated uid is stored under.
const UIDKey = "uid"

// Auth resolves the Authorization bearer token to a uid and injects it
// into the request context. Everything beyond the token signature is the
// identity subsystem's problem.
func Auth(verifier *auth.TokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token"},
			)
			return
		}

		uid, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid token"},
			)
			return
		}

		c.Set(UIDKey, uid)
		c.Next()
	}
}
