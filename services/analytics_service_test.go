package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-dashboard-server/models"
	"hr-dashboard-server/store"
)

func analyticsStore() *store.Store {
	st := store.New(1)
	st.SetEmployees([]models.Employee{
		{ID: 1, FirstName: "Alice", Department: models.DepartmentEngineering, Rating: 4},
		{ID: 2, FirstName: "Bob", Department: models.DepartmentEngineering, Rating: 5},
		{ID: 3, FirstName: "Carol", Department: models.DepartmentHR, Rating: 2},
		{ID: 4, FirstName: "Dave", Department: models.DepartmentSales, Rating: 3},
	})
	return st
}

func TestDepartmentStats(t *testing.T) {
	ast := assert.New(t)

	svc := NewAnalyticsService(analyticsStore(), 1)
	stats := svc.DepartmentStats()
	require.Len(t, stats, 4)

	byDept := make(map[string]models.DepartmentStat)
	for _, s := range stats {
		byDept[s.Department] = s
	}

	ast.Equal(4.5, byDept[models.DepartmentEngineering].AvgRating)
	ast.Equal(2, byDept[models.DepartmentEngineering].UserCount)
	ast.Equal(2.0, byDept[models.DepartmentHR].AvgRating)
	ast.Equal(0.0, byDept[models.DepartmentSupport].AvgRating, "empty department reports zero")
	ast.Equal(0, byDept[models.DepartmentSupport].UserCount)
}

func TestDepartmentDistribution(t *testing.T) {
	ast := assert.New(t)

	svc := NewAnalyticsService(analyticsStore(), 1)
	dist := svc.DepartmentDistribution()
	require.Len(t, dist, 4)

	counts := make(map[string]int)
	for _, d := range dist {
		counts[d.Department] = d.Count
	}
	ast.Equal(2, counts[models.DepartmentEngineering])
	ast.Equal(1, counts[models.DepartmentHR])
	ast.Equal(1, counts[models.DepartmentSales])
	ast.Equal(0, counts[models.DepartmentSupport])
}

func TestBookmarkTrendsDeterministic(t *testing.T) {
	ast := assert.New(t)

	svc := NewAnalyticsService(analyticsStore(), 9)
	first := svc.BookmarkTrends()
	second := svc.BookmarkTrends()
	ast.Equal(first, second, "same seed yields the same trend numbers")

	require.Len(t, first, 6)
	ast.Equal("July", first[0].Month)
	ast.Equal("December", first[5].Month)
	for _, tr := range first {
		ast.GreaterOrEqual(tr.Bookmarks, 5)
		ast.LessOrEqual(tr.Bookmarks, 20)
		ast.GreaterOrEqual(tr.NewBookmarks, 2)
		ast.LessOrEqual(tr.NewBookmarks, 10)
	}
}

func TestProfileServiceDeterministic(t *testing.T) {
	ast := assert.New(t)

	svc := NewProfileService()
	employee := models.Employee{ID: 7, FirstName: "Alice", LastName: "Nguyen"}

	ast.Equal(svc.Bio(employee), svc.Bio(employee))
	ast.Contains(svc.Bio(employee), "Alice Nguyen")

	history := svc.PerformanceHistory(7)
	require.Len(t, history, 6)
	periods := make([]string, len(history))
	for i, r := range history {
		periods[i] = r.Period
	}
	ast.Equal([]string{"Q1 2024", "Q2 2024", "Q3 2024", "Q4 2024", "Q1 2023", "Q2 2023"}, periods,
		"periods run through the base year before rolling into the previous one")
	ast.Equal(history, svc.PerformanceHistory(7))

	projects := svc.Projects(7)
	ast.GreaterOrEqual(len(projects), 2)
	ast.LessOrEqual(len(projects), 4)
	ast.Equal(projects, svc.Projects(7))
}
