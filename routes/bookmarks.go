package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hr-dashboard-server/store"
	ws "hr-dashboard-server/websocket"
)

// RegisterBookmarkRoutes registers the bookmark set routes.
func RegisterBookmarkRoutes(router *gin.RouterGroup, st *store.Store, hub *ws.Hub) {
	bookmarkRoutes := router.Group("/bookmarks")
	{
		bookmarkRoutes.GET("", listBookmarks(st))
		bookmarkRoutes.POST("/:id", addBookmark(st, hub))
		bookmarkRoutes.DELETE("/:id", removeBookmark(st, hub))
	}
}

// listBookmarks returns the bookmarked identifiers and their employee
// records in bookmark order.
func listBookmarks(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"bookmarks": st.Bookmarks(),
			"employees": st.BookmarkedEmployees(),
		})
	}
}

// addBookmark inserts the identifier into the bookmark set. Idempotent:
// bookmarking twice, or bookmarking an unknown identifier, succeeds without
// effect.
func addBookmark(st *store.Store, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
			return
		}

		if st.AddBookmark(id) {
			hub.Publish(ws.EventBookmarkAdded, gin.H{"employee_id": id})
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Bookmark added",
			"bookmarked": true,
		})
	}
}

// removeBookmark deletes the identifier from the bookmark set. Removing a
// non-member succeeds without effect.
func removeBookmark(st *store.Store, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
			return
		}

		if st.RemoveBookmark(id) {
			hub.Publish(ws.EventBookmarkRemoved, gin.H{"employee_id": id})
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Bookmark removed",
			"bookmarked": false,
		})
	}
}
