package store

import (
	"strings"

	"hr-dashboard-server/models"
)

// SearchFilters is the three-dimensional predicate configuration for the
// employee list. An empty dimension places no restriction; within a dimension
// membership is disjunctive, across dimensions matching is conjunctive.
type SearchFilters struct {
	SearchTerm  string
	Departments []string
	Ratings     []int
}

// IsEmpty reports whether no dimension restricts the list.
func (f SearchFilters) IsEmpty() bool {
	return f.SearchTerm == "" && len(f.Departments) == 0 && len(f.Ratings) == 0
}

// Matches reports whether the employee passes all three filter dimensions.
func (f SearchFilters) Matches(e models.Employee) bool {
	term := strings.ToLower(f.SearchTerm)
	searchMatch := term == "" ||
		strings.Contains(strings.ToLower(e.FirstName), term) ||
		strings.Contains(strings.ToLower(e.LastName), term) ||
		strings.Contains(strings.ToLower(e.Email), term) ||
		strings.Contains(strings.ToLower(e.Department), term)

	departmentMatch := len(f.Departments) == 0
	for _, d := range f.Departments {
		if e.Department == d {
			departmentMatch = true
			break
		}
	}

	ratingMatch := len(f.Ratings) == 0
	for _, r := range f.Ratings {
		if e.Rating == float64(r) {
			ratingMatch = true
			break
		}
	}

	return searchMatch && departmentMatch && ratingMatch
}

// FilterEmployees returns the employees matching the filters, preserving the
// relative order of the input. The input is never mutated.
func FilterEmployees(employees []models.Employee, filters SearchFilters) []models.Employee {
	out := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		if filters.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}
