package store

import (
	"errors"

	"hr-dashboard-server/models"
)

// ErrInvalidPageSize is returned when a requested page size is not offered.
var ErrInvalidPageSize = errors.New("page size is not one of the allowed values")

// SearchState combines the filter configuration with pagination state and
// keeps the two consistent: any filter change resets the view to the first
// page, so the current page can never point past the end of a shrunken
// result set.
type SearchState struct {
	Filters  SearchFilters
	Page     int
	PageSize int
}

// NewSearchState returns an unfiltered state on page one.
func NewSearchState() *SearchState {
	return &SearchState{
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// SetSearchTerm updates the search term and resets to the first page.
func (s *SearchState) SetSearchTerm(term string) {
	s.Filters.SearchTerm = term
	s.Page = 1
}

// SetDepartments updates the department selection and resets to the first page.
func (s *SearchState) SetDepartments(departments []string) {
	s.Filters.Departments = departments
	s.Page = 1
}

// SetRatings updates the rating selection and resets to the first page.
func (s *SearchState) SetRatings(ratings []int) {
	s.Filters.Ratings = ratings
	s.Page = 1
}

// ClearFilters drops all three filter dimensions and resets to the first page.
func (s *SearchState) ClearFilters() {
	s.Filters = SearchFilters{}
	s.Page = 1
}

// SetPage selects a page. Values below one snap to one; values past the end
// of the result set are clamped when the state is resolved, since the bound
// depends on the filtered count.
func (s *SearchState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}

// SetPageSize changes the page size and resets to the first page. Changing
// the window size re-anchors the view rather than leaving the page pointing
// at an arbitrary slice of the reflowed list.
func (s *SearchState) SetPageSize(size int) error {
	if !IsAllowedPageSize(size) {
		return ErrInvalidPageSize
	}
	s.PageSize = size
	s.Page = 1
	return nil
}

// SearchResult is a resolved view of the employee list: the filtered set
// reduced to the visible page, plus everything the client needs to render
// pagination controls.
type SearchResult struct {
	Employees     []models.Employee `json:"employees"`
	FilteredCount int               `json:"filteredCount"`
	TotalCount    int               `json:"totalCount"`
	Page          int               `json:"page"`
	PageSize      int               `json:"pageSize"`
	TotalPages    int               `json:"totalPages"`
	PageNumbers   []string          `json:"pageNumbers"`
}

// Resolve derives the filtered, paginated view of the given employee list.
// The current page is clamped into [1, totalPages] against the filtered
// count before slicing.
func (s *SearchState) Resolve(employees []models.Employee) SearchResult {
	filtered := FilterEmployees(employees, s.Filters)

	totalPages := TotalPages(len(filtered), s.PageSize)
	page := s.Page
	if page > totalPages {
		page = totalPages
	}

	lo, hi := PageBounds(len(filtered), page, s.PageSize)
	return SearchResult{
		Employees:     filtered[lo:hi],
		FilteredCount: len(filtered),
		TotalCount:    len(employees),
		Page:          page,
		PageSize:      s.PageSize,
		TotalPages:    totalPages,
		PageNumbers:   PageNumbers(page, totalPages),
	}
}
