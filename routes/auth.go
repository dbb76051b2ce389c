package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-dashboard-server/config"
	"hr-dashboard-server/logger"
	"hr-dashboard-server/services"
	"hr-dashboard-server/utils"
)

// RegisterAuthRoutes registers the mocked credential login.
func RegisterAuthRoutes(router *gin.RouterGroup, accounts *services.AccountService) {
	router.POST("/login", func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"message": err.Error(),
			})
			return
		}

		account, ok := accounts.Authenticate(req.Email, req.Password)
		if !ok {
			logger.Warn("failed login attempt for %s from %s", req.Email, c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid credentials",
				"message": "Email or password is incorrect",
			})
			return
		}

		token, err := utils.GenerateToken(account.ID, account.Name, account.Email, account.Role)
		if err != nil {
			logger.Error("token generation failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": "Failed to generate authentication token",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Login successful",
			"token":      token,
			"token_type": "Bearer",
			"expires_in": int64(config.AppConfig.JWT.ExpiryHours) * 3600,
			"user":       account,
		})
	})
}

// RegisterSessionRoutes registers identity routes that require a valid token.
func RegisterSessionRoutes(router *gin.RouterGroup) {
	router.GET("/auth/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.GetUint("user_id"),
			"name":  c.GetString("user_name"),
			"email": c.GetString("user_email"),
			"role":  c.GetString("user_role"),
		})
	})
}
