package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/pkg/helpers"
	"portfolio-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserNameKey  = "userName"
	CtxUserEmailKey = "userEmail"
)

// sessionClaims reads and verifies the session cookie. A missing
// cookie, a forged signature and an expired token all come back as the
// same nil result; callers must not distinguish them.
func sessionClaims(c *gin.Context, jwt *helpers.JWTManager) *helpers.Claims {
	token, err := c.Cookie(helpers.SessionCookie)
	if err != nil || token == "" {
		return nil
	}
	claims, err := jwt.ParseToken(token)
	if err != nil {
		return nil
	}
	return claims
}

// RequireAuth guards API routes: failing requests get a JSON 401.
// On success the acting identity is exposed to the handler; the guard
// itself never touches the database.
func RequireAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := sessionClaims(c, jwt)
		if claims == nil {
			response.Error[any](c, http.StatusUnauthorized, "missing or invalid session token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserNameKey, claims.Name)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}

// RequirePageAuth guards page surfaces: failing requests are redirected
// to the login page instead of receiving a JSON error.
func RequirePageAuth(jwt *helpers.JWTManager, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := sessionClaims(c, jwt)
		if claims == nil {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserNameKey, claims.Name)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}
