package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hr-dashboard-server/models"
)

func searchFixture(n int) []models.Employee {
	employees := make([]models.Employee, n)
	for i := range employees {
		dept := "Engineering"
		if i%2 == 1 {
			dept = "Sales"
		}
		employees[i] = models.Employee{
			ID:         i + 1,
			FirstName:  "Employee",
			LastName:   "Number",
			Email:      "e@corp.com",
			Department: dept,
			Rating:     float64(i%5 + 1),
		}
	}
	return employees
}

func TestFilterChangeResetsPage(t *testing.T) {
	ast := assert.New(t)

	state := NewSearchState()
	state.SetPage(3)
	state.SetSearchTerm("smith")
	ast.Equal(1, state.Page)

	state.SetPage(2)
	state.SetDepartments([]string{"HR"})
	ast.Equal(1, state.Page)

	state.SetPage(2)
	state.SetRatings([]int{4})
	ast.Equal(1, state.Page)

	state.SetPage(2)
	state.ClearFilters()
	ast.Equal(1, state.Page)
	ast.True(state.Filters.IsEmpty())
}

func TestSetPageSize(t *testing.T) {
	ast := assert.New(t)

	state := NewSearchState()
	ast.Equal(DefaultPageSize, state.PageSize)

	ast.ErrorIs(state.SetPageSize(7), ErrInvalidPageSize)
	ast.Equal(DefaultPageSize, state.PageSize)

	state.SetPage(4)
	ast.NoError(state.SetPageSize(10))
	ast.Equal(10, state.PageSize)
	ast.Equal(1, state.Page, "changing page size re-anchors to page one")
}

func TestResolveClampsPage(t *testing.T) {
	ast := assert.New(t)

	state := NewSearchState()
	state.SetPage(10)

	result := state.Resolve(searchFixture(20))
	ast.Equal(4, result.Page)
	ast.Equal(4, result.TotalPages)
	ast.Len(result.Employees, 2, "last page holds the remainder")
}

func TestResolvePageSplit(t *testing.T) {
	ast := assert.New(t)

	// 20 filtered results with page size 6: pages 1-3 carry 6, page 4 carries 2
	employees := searchFixture(20)
	state := NewSearchState()

	var rebuilt []int
	for page := 1; page <= 4; page++ {
		state.SetPage(page)
		result := state.Resolve(employees)
		if page < 4 {
			ast.Len(result.Employees, 6)
		} else {
			ast.Len(result.Employees, 2)
		}
		for _, e := range result.Employees {
			rebuilt = append(rebuilt, e.ID)
		}
	}
	ast.Len(rebuilt, 20)
	for i, id := range rebuilt {
		ast.Equal(i+1, id)
	}
}

func TestSearchTermSetAndClear(t *testing.T) {
	ast := assert.New(t)

	employees := searchFixture(20)
	state := NewSearchState()

	state.SetDepartments([]string{"Engineering"})
	state.SetPage(2)
	result := state.Resolve(employees)
	ast.Equal(10, result.FilteredCount)
	ast.Equal(20, result.TotalCount)
	ast.Equal(2, result.Page)
	for _, e := range result.Employees {
		ast.Equal("Engineering", e.Department)
	}

	state.ClearFilters()
	result = state.Resolve(employees)
	ast.Equal(result.TotalCount, result.FilteredCount)
	ast.Equal(1, result.Page)
}
