package routes

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hr-dashboard-server/middleware"
	"hr-dashboard-server/models"
	"hr-dashboard-server/services"
	"hr-dashboard-server/store"
	"hr-dashboard-server/utils"
	ws "hr-dashboard-server/websocket"
)

// RegisterEmployeeRoutes registers the directory listing, creation and detail
// routes.
func RegisterEmployeeRoutes(router *gin.RouterGroup, st *store.Store, profiles *services.ProfileService, hub *ws.Hub) {
	router.GET("/employees", listEmployees(st))
	router.POST("/employees", createEmployee(st, hub))
	router.GET("/employees/:id", getEmployee(st, profiles))
	router.GET("/employees/:id/feedback", getEmployeeFeedback(st))
	router.PUT("/employees/:id/rating", middleware.RequireRole("admin"), updateEmployeeRating(st))
}

// listEmployees derives the filtered, paginated directory view. Filter
// parameters run through the search state first, so providing any of them
// re-anchors the view to page one before an explicit page is applied.
func listEmployees(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := store.NewSearchState()

		if search, ok := c.GetQuery("search"); ok {
			state.SetSearchTerm(search)
		}
		if departments, ok := c.GetQuery("departments"); ok {
			state.SetDepartments(splitParam(departments))
		}
		if ratings, ok := c.GetQuery("ratings"); ok {
			values, err := splitIntParam(ratings)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "Invalid ratings filter",
					"message": "ratings must be a comma-separated list of integers",
				})
				return
			}
			state.SetRatings(values)
		}

		if limit, ok := c.GetQuery("limit"); ok {
			size, err := strconv.Atoi(limit)
			if err != nil || state.SetPageSize(size) != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "Invalid page size",
					"message": "limit must be one of 3, 6, 10, 20",
				})
				return
			}
		}
		if page, ok := c.GetQuery("page"); ok {
			p, err := strconv.Atoi(page)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "Invalid page",
					"message": "page must be an integer",
				})
				return
			}
			state.SetPage(p)
		}

		result := state.Resolve(st.Employees())

		c.JSON(http.StatusOK, gin.H{
			"employees":      result.Employees,
			"filtered_count": result.FilteredCount,
			"total_count":    result.TotalCount,
			"pagination": gin.H{
				"page":         result.Page,
				"limit":        result.PageSize,
				"total":        result.FilteredCount,
				"pages":        result.TotalPages,
				"page_numbers": result.PageNumbers,
			},
		})
	}
}

// createEmployee validates the creation form field by field and appends the
// new record. No partial record is created on validation failure.
func createEmployee(st *store.Store, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateEmployeeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"message": err.Error(),
			})
			return
		}

		fieldErrors := validateCreateEmployee(&req, st)
		if len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Validation failed",
				"errors": fieldErrors,
			})
			return
		}

		image := req.Image
		if image == "" {
			image = "/placeholder.svg"
		}

		employee := st.AddEmployee(models.Employee{
			FirstName:  strings.TrimSpace(req.FirstName),
			LastName:   strings.TrimSpace(req.LastName),
			Email:      strings.TrimSpace(req.Email),
			Age:        req.Age,
			Phone:      strings.TrimSpace(req.Phone),
			Department: req.Department,
			Image:      image,
		})

		hub.Publish(ws.EventEmployeeCreated, employee)

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Employee created successfully",
			"employee": employee,
		})
	}
}

// validateCreateEmployee returns per-field error messages for the creation
// form, empty when the form is valid.
func validateCreateEmployee(req *models.CreateEmployeeRequest, st *store.Store) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(req.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !utils.ValidateEmail(email) {
		errs["email"] = "Invalid email format"
	} else if st.EmailExists(email) {
		errs["email"] = "Email already exists"
	}

	if req.Age == 0 {
		errs["age"] = "Age is required"
	} else if req.Age < 18 || req.Age > 100 {
		errs["age"] = "Age must be between 18 and 100"
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		errs["phone"] = "Phone is required"
	} else if !utils.ValidatePhoneNumber(phone) {
		errs["phone"] = "Invalid phone format"
	}

	if req.Department == "" {
		errs["department"] = "Department is required"
	} else if !models.IsValidCreationDepartment(req.Department) {
		errs["department"] = "Unknown department"
	}

	return errs
}

// getEmployee returns the record plus the detail-view supplement: bookmark
// state, bio, performance history, projects and the feedback log.
func getEmployee(st *store.Store, profiles *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
			return
		}

		employee, ok := st.EmployeeByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"employee":            employee,
			"bookmarked":          st.IsBookmarked(id),
			"bio":                 profiles.Bio(employee),
			"performance_history": profiles.PerformanceHistory(id),
			"projects":            profiles.Projects(id),
			"feedback":            st.FeedbackForEmployee(id),
		})
	}
}

// getEmployeeFeedback returns the feedback log for one employee in insertion
// order.
func getEmployeeFeedback(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
			return
		}

		if _, ok := st.EmployeeByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"feedback": st.FeedbackForEmployee(id),
		})
	}
}

// updateEmployeeRating directly overrides a rating, bypassing feedback
// aggregation. Administrative correction path; requires the admin role, which
// is enforced at route registration.
func updateEmployeeRating(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
			return
		}

		var req struct {
			Rating float64 `json:"rating" binding:"required,min=1,max=5"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid rating",
				"message": "rating must be between 1 and 5",
			})
			return
		}

		if !st.UpdateEmployeeRating(id, req.Rating) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Rating updated successfully"})
	}
}

func splitParam(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitIntParam(raw string) ([]int, error) {
	parts := splitParam(raw)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
