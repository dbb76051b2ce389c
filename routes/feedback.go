package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-dashboard-server/models"
	"hr-dashboard-server/store"
	ws "hr-dashboard-server/websocket"
)

// RegisterFeedbackRoutes registers feedback submission.
func RegisterFeedbackRoutes(router *gin.RouterGroup, st *store.Store, hub *ws.Hub) {
	router.POST("/feedback", submitFeedback(st, hub))
}

// submitFeedback appends a feedback entry and recomputes the target
// employee's rating. The author defaults to the session identity, then to
// "Anonymous".
func submitFeedback(st *store.Store, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.FeedbackCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid feedback data",
				"message": err.Error(),
			})
			return
		}

		if _, ok := st.EmployeeByID(req.EmployeeID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}

		author := req.Author
		if author == "" {
			author = c.GetString("user_name")
		}
		if author == "" {
			author = "Anonymous"
		}

		entry := st.AddFeedback(models.Feedback{
			EmployeeID: req.EmployeeID,
			Rating:     req.Rating,
			Comment:    req.Comment,
			Author:     author,
		})

		hub.Publish(ws.EventFeedbackSubmitted, entry)

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Feedback submitted successfully",
			"feedback": entry,
		})
	}
}
