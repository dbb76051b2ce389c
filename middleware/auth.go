package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hr-dashboard-server/utils"
)

// AuthMiddleware validates the bearer token and sets the session identity
// into the request context. There is no account table to consult; the claims
// carry everything.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authorization header required",
				"message": "Please provide a valid token",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token format",
				"message": "Token must be in format: Bearer <token>",
			})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token",
				"message": "Token is invalid or expired",
			})
			c.Abort()
			return
		}

		setIdentity(c, claims.UserID, claims.Name, claims.Email, claims.Role)
		c.Next()
	}
}

// WebSocketAuthMiddleware validates tokens passed as a query parameter, the
// only channel available to a browser WebSocket handshake.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Token required",
				"message": "Please provide a valid token in query parameters",
			})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token",
				"message": "Token is invalid or expired",
			})
			c.Abort()
			return
		}

		setIdentity(c, claims.UserID, claims.Name, claims.Email, claims.Role)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated session holds the
// given role. Must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != role {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": "This operation requires the " + role + " role",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func setIdentity(c *gin.Context, id uint, name, email, role string) {
	c.Set("user_id", id)
	c.Set("user_name", name)
	c.Set("user_email", email)
	c.Set("user_role", role)
}
