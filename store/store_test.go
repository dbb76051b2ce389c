package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-dashboard-server/models"
)

func rawEmployees() []models.Employee {
	return []models.Employee{
		{ID: 1, FirstName: "Alice", LastName: "Nguyen", Email: "alice@corp.com", Age: 31, Phone: "+1 555-0101"},
		{ID: 2, FirstName: "Bob", LastName: "Smith", Email: "bob@corp.com", Age: 45, Phone: "+1 555-0102"},
		{ID: 3, FirstName: "Carol", LastName: "Jones", Email: "carol@corp.com", Age: 28, Phone: "+1 555-0103"},
	}
}

func TestSetEmployeesEnrichment(t *testing.T) {
	ast := assert.New(t)

	s := New(42)
	s.SetEmployees(rawEmployees())

	for _, e := range s.Employees() {
		ast.Contains(models.EnrichmentDepartments, e.Department)
		ast.GreaterOrEqual(e.Rating, 1.0)
		ast.LessOrEqual(e.Rating, 5.0)
		ast.Equal(e.Rating, float64(int(e.Rating)), "enriched rating is whole-valued")
	}

	// already-assigned values are kept
	preset := rawEmployees()
	preset[0].Department = models.DepartmentFinance
	preset[0].Rating = 3.5
	s.SetEmployees(preset)
	got, ok := s.EmployeeByID(1)
	ast.True(ok)
	ast.Equal(models.DepartmentFinance, got.Department)
	ast.Equal(3.5, got.Rating)
}

func TestEnrichmentIsDeterministic(t *testing.T) {
	ast := assert.New(t)

	a := New(7)
	b := New(7)
	a.SetEmployees(rawEmployees())
	b.SetEmployees(rawEmployees())

	ast.Equal(a.Employees(), b.Employees())
}

func TestSetEmployeesEmptyList(t *testing.T) {
	ast := assert.New(t)

	s := New(1)
	s.SetEmployees(rawEmployees())
	s.SetEmployees(nil)
	ast.Equal(0, s.Count())
}

func TestAddEmployeeAssignsNextID(t *testing.T) {
	ast := assert.New(t)

	s := New(1)
	s.SetEmployees(rawEmployees())

	created := s.AddEmployee(models.Employee{
		FirstName:  "Dana",
		LastName:   "Ward",
		Email:      "dana@corp.com",
		Age:        36,
		Department: models.DepartmentMarketing,
	})
	ast.Equal(4, created.ID)
	ast.GreaterOrEqual(created.Rating, 1.0)
	ast.LessOrEqual(created.Rating, 5.0)
	ast.Equal(4, s.Count())
}

func TestBookmarkIdempotence(t *testing.T) {
	ast := assert.New(t)

	s := New(1)
	s.SetEmployees(rawEmployees())

	ast.True(s.AddBookmark(2))
	ast.False(s.AddBookmark(2), "second add is a no-op")
	ast.Equal([]int{2}, s.Bookmarks())
	ast.True(s.IsBookmarked(2))

	ast.False(s.RemoveBookmark(99), "removing a non-member changes nothing")
	ast.Equal([]int{2}, s.Bookmarks())

	ast.True(s.RemoveBookmark(2))
	ast.False(s.IsBookmarked(2))
	ast.Empty(s.Bookmarks())
}

func TestBookmarkUnknownEmployeeIsInert(t *testing.T) {
	ast := assert.New(t)

	s := New(1)
	s.SetEmployees(rawEmployees())

	ast.True(s.AddBookmark(99))
	ast.True(s.IsBookmarked(99))
	ast.Empty(s.BookmarkedEmployees(), "unknown identifiers resolve to no record")
}

func TestBookmarkedEmployeesOrder(t *testing.T) {
	ast := assert.New(t)

	s := New(1)
	s.SetEmployees(rawEmployees())
	s.AddBookmark(3)
	s.AddBookmark(1)

	got := s.BookmarkedEmployees()
	require.Len(t, got, 2)
	ast.Equal(3, got[0].ID)
	ast.Equal(1, got[1].ID)
}

func TestAddFeedbackRecomputesRating(t *testing.T) {
	ast := assert.New(t)

	s := New(1)
	s.SetEmployees(rawEmployees())

	for _, rating := range []int{5, 3, 4} {
		entry := s.AddFeedback(models.Feedback{EmployeeID: 2, Rating: rating, Comment: "solid work", Author: "HR Admin"})
		ast.NotEmpty(entry.ID)
		ast.False(entry.Date.IsZero())
	}

	got, ok := s.EmployeeByID(2)
	require.True(t, ok)
	ast.Equal(4.0, got.Rating)

	entries := s.FeedbackForEmployee(2)
	require.Len(t, entries, 3)
	ast.Equal([]int{5, 3, 4}, []int{entries[0].Rating, entries[1].Rating, entries[2].Rating}, "insertion order preserved")
}

func TestAddFeedbackRoundsToOneDecimal(t *testing.T) {
	ast := assert.New(t)

	s := New(1)
	s.SetEmployees(rawEmployees())

	s.AddFeedback(models.Feedback{EmployeeID: 1, Rating: 3, Comment: "ok"})
	s.AddFeedback(models.Feedback{EmployeeID: 1, Rating: 4, Comment: "good"})
	s.AddFeedback(models.Feedback{EmployeeID: 1, Rating: 4, Comment: "good again"})

	got, _ := s.EmployeeByID(1)
	ast.Equal(3.7, got.Rating) // 11/3 = 3.666...
}

func TestAddFeedbackUnknownEmployee(t *testing.T) {
	ast := assert.New(t)

	s := New(1)
	s.SetEmployees(rawEmployees())
	before := s.Employees()

	s.AddFeedback(models.Feedback{EmployeeID: 99, Rating: 5, Comment: "ghost"})

	ast.Len(s.FeedbackForEmployee(99), 1, "feedback is still recorded")
	ast.Equal(before, s.Employees(), "no employee record changes")
}

func TestUpdateEmployeeRating(t *testing.T) {
	ast := assert.New(t)

	s := New(1)
	s.SetEmployees(rawEmployees())

	ast.True(s.UpdateEmployeeRating(3, 2.5))
	got, _ := s.EmployeeByID(3)
	ast.Equal(2.5, got.Rating)

	ast.False(s.UpdateEmployeeRating(99, 1))
}

func TestSnapshotRoundTrip(t *testing.T) {
	ast := assert.New(t)

	path := filepath.Join(t.TempDir(), "user-store.json")

	s := Open(1, path)
	s.SetEmployees(rawEmployees())
	s.AddBookmark(2)
	s.AddBookmark(3)
	s.AddFeedback(models.Feedback{EmployeeID: 1, Rating: 5, Comment: "great", Author: "HR User"})

	// a new store over the same file restores bookmarks and feedback only
	restored := Open(1, path)
	ast.Equal([]int{2, 3}, restored.Bookmarks())
	entries := restored.FeedbackForEmployee(1)
	require.Len(t, entries, 1)
	ast.Equal("great", entries[0].Comment)
	ast.Equal(0, restored.Count(), "employees are not persisted")
}

func TestSnapshotMissingFileStartsEmpty(t *testing.T) {
	ast := assert.New(t)

	s := Open(1, filepath.Join(t.TempDir(), "missing.json"))
	ast.Empty(s.Bookmarks())
	ast.Empty(s.FeedbackForEmployee(1))
}
