package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-dashboard-server/services"
)

// RegisterAnalyticsRoutes registers the dashboard analytics routes.
func RegisterAnalyticsRoutes(router *gin.RouterGroup, analytics *services.AnalyticsService) {
	analyticsRoutes := router.Group("/analytics")
	{
		analyticsRoutes.GET("/departments", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"departments": analytics.DepartmentStats(),
			})
		})

		analyticsRoutes.GET("/distribution", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"distribution": analytics.DepartmentDistribution(),
			})
		})

		analyticsRoutes.GET("/bookmark-trends", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"trends": analytics.BookmarkTrends(),
			})
		})
	}
}
